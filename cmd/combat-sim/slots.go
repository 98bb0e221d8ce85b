package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
	rulebook "github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/rulebook/dnd5e"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/shared"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/rules/multiclass"
)

var slotsFlags struct {
	actor   string
	classes []string
}

type slotsReport struct {
	Classes     []rulebook.ClassLevel `json:"classes"`
	CasterLevel int                   `json:"caster_level"`
	Slots       shared.SlotPool       `json:"slots"`
	Pact        shared.PactSlots      `json:"pact"`
}

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "Show the spell slots a class combination grants",
	Example: `  combat-sim slots --class wizard:5
  combat-sim slots --class paladin:4 --class sorcerer:3 --class warlock:2
  combat-sim slots --actor wizard`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			p   *participant.Participant
			err error
		)
		switch {
		case slotsFlags.actor != "":
			p, err = sim.participant(cmd.Context(), slotsFlags.actor)
		case len(slotsFlags.classes) > 0:
			var levels []rulebook.ClassLevel
			levels, err = parseClassLevels(slotsFlags.classes)
			if err != nil {
				return err
			}
			p, err = participant.New(&participant.Config{
				ID:        "slots",
				Name:      "Multiclass",
				Abilities: participant.DefaultAbilityScores,
				Classes:   levels,
			})
		default:
			return errors.InvalidArgument("--actor or at least one --class is required")
		}
		if err != nil {
			return err
		}

		report := &slotsReport{
			Classes:     p.Classes,
			CasterLevel: multiclass.CasterLevel(p.Classes),
			Slots:       sim.engine.CalculateSpellSlots(p),
			Pact:        p.PactSlots,
		}

		w := cmd.OutOrStdout()
		if jsonOutput {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		fmt.Fprintf(w, "Caster level %d\n", report.CasterLevel)
		for i, slot := range report.Slots {
			if slot.Max == 0 {
				continue
			}
			fmt.Fprintf(w, "  Level %d: %d/%d\n", i+1, slot.Current, slot.Max)
		}
		if report.Pact.Max > 0 {
			fmt.Fprintf(w, "  Pact (level %d): %d/%d\n", report.Pact.SlotLevel, report.Pact.Current, report.Pact.Max)
		}
		return nil
	},
}

func init() {
	slotsCmd.Flags().StringVar(&slotsFlags.actor, "actor", "", "show a stored participant's slots")
	slotsCmd.Flags().StringArrayVar(&slotsFlags.classes, "class", nil, "class and level as class:level, repeatable")
}

// parseClassLevels reads entries such as "wizard:3"
func parseClassLevels(specs []string) ([]rulebook.ClassLevel, error) {
	levels := make([]rulebook.ClassLevel, 0, len(specs))
	for _, spec := range specs {
		name, levelStr, ok := strings.Cut(spec, ":")
		if !ok {
			return nil, errors.InvalidArgumentf("class %q must be written as class:level", spec)
		}
		class, err := rulebook.ParseClass(name)
		if err != nil {
			return nil, err
		}
		level, err := strconv.Atoi(levelStr)
		if err != nil || level < 1 {
			return nil, errors.InvalidArgumentf("invalid level in %q", spec)
		}
		levels = append(levels, rulebook.ClassLevel{Class: class, Level: level})
	}
	return levels, nil
}
