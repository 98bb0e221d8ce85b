package main

import (
	"github.com/spf13/cobra"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/dice"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/action"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

var attackFlags struct {
	id           string
	actor        string
	target       string
	weapon       string
	offHand      bool
	distance     int
	advantage    bool
	disadvantage bool
}

var attackCmd = &cobra.Command{
	Use:   "attack",
	Short: "Take the Attack action against a target",
	Example: `  combat-sim attack --actor fighter --target goblin-1
  combat-sim attack --actor duelist --target goblin-1 --off-hand
  combat-sim attack --actor fighter --target ogre --weapon whip --fetch`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := attackFlags
		if f.actor == "" || f.target == "" {
			return errors.InvalidArgument("--actor and --target are required")
		}

		req := &action.Request{
			ID:        f.id,
			Type:      action.TypeAttack,
			ActorID:   f.actor,
			TargetID:  f.target,
			WeaponKey: f.weapon,
			Distance:  f.distance,
			Roll:      dice.Override{Advantage: f.advantage, Disadvantage: f.disadvantage},
		}
		if f.offHand {
			req.Type = action.TypeOffHandAttack
		}

		var weapons []string
		if f.weapon != "" {
			weapons = append(weapons, f.weapon)
		}
		if err := sim.ensureCatalog(cmd.Context(), weapons, nil); err != nil {
			return err
		}

		out, err := sim.run(cmd.Context(), req, true)
		if err != nil {
			return err
		}
		return sim.printOutcome(cmd.OutOrStdout(), out)
	},
}

func init() {
	attackCmd.Flags().StringVar(&attackFlags.id, "id", "", "action id; repeating an id replays the action instead of resolving it again")
	attackCmd.Flags().StringVar(&attackFlags.actor, "actor", "", "attacking participant id")
	attackCmd.Flags().StringVar(&attackFlags.target, "target", "", "target participant id")
	attackCmd.Flags().StringVar(&attackFlags.weapon, "weapon", "", "weapon key (defaults to the main hand)")
	attackCmd.Flags().BoolVar(&attackFlags.offHand, "off-hand", false, "make the off hand bonus attack instead")
	attackCmd.Flags().IntVar(&attackFlags.distance, "distance", 0, "distance to the target in feet (0 leaves it unspecified)")
	attackCmd.Flags().BoolVar(&attackFlags.advantage, "advantage", false, "roll with advantage")
	attackCmd.Flags().BoolVar(&attackFlags.disadvantage, "disadvantage", false, "roll with disadvantage")
}
