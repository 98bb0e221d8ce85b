package main

import (
	"github.com/spf13/cobra"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/dice"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/action"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

var castFlags struct {
	id           string
	actor        string
	target       string
	spell        string
	slot         int
	pact         bool
	distance     int
	advantage    bool
	disadvantage bool
}

var castCmd = &cobra.Command{
	Use:   "cast",
	Short: "Cast a spell, spending a slot",
	Example: `  combat-sim cast --actor wizard --spell magic-missile --target goblin-1
  combat-sim cast --actor wizard --spell burning-hands --slot 2 --target goblin-1
  combat-sim cast --actor wizard --spell scorching-ray --slot 2 --target ogre --distance 60 --fetch`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := castFlags
		if f.actor == "" || f.spell == "" {
			return errors.InvalidArgument("--actor and --spell are required")
		}

		if err := sim.ensureCatalog(cmd.Context(), nil, []string{f.spell}); err != nil {
			return err
		}

		out, err := sim.run(cmd.Context(), &action.Request{
			ID:        f.id,
			Type:      action.TypeCastSpell,
			ActorID:   f.actor,
			TargetID:  f.target,
			SpellKey:  f.spell,
			SlotLevel: f.slot,
			UsePact:   f.pact,
			Distance:  f.distance,
			Roll:      dice.Override{Advantage: f.advantage, Disadvantage: f.disadvantage},
		}, true)
		if err != nil {
			return err
		}
		return sim.printOutcome(cmd.OutOrStdout(), out)
	},
}

func init() {
	castCmd.Flags().StringVar(&castFlags.id, "id", "", "action id; repeating an id replays the action instead of resolving it again")
	castCmd.Flags().StringVar(&castFlags.actor, "actor", "", "casting participant id")
	castCmd.Flags().StringVar(&castFlags.target, "target", "", "target participant id, if the spell has one")
	castCmd.Flags().StringVar(&castFlags.spell, "spell", "", "spell key")
	castCmd.Flags().IntVar(&castFlags.slot, "slot", 0, "slot level to spend (0 casts at the spell's own level)")
	castCmd.Flags().BoolVar(&castFlags.pact, "pact", false, "spend a pact magic slot")
	castCmd.Flags().IntVar(&castFlags.distance, "distance", 0, "distance to the target in feet (0 leaves it unspecified)")
	castCmd.Flags().BoolVar(&castFlags.advantage, "advantage", false, "roll spell attacks with advantage")
	castCmd.Flags().BoolVar(&castFlags.disadvantage, "disadvantage", false, "roll spell attacks with disadvantage")
}
