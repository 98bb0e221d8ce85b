package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/actionlog"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/shared"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/rules/hazards"
)

var hazardFlags struct {
	actor  string
	hazard string
	detect bool
	skill  string
	list   bool
}

var hazardCmd = &cobra.Command{
	Use:   "hazard",
	Short: "Spring an environmental hazard on a participant",
	Example: `  combat-sim hazard --list
  combat-sim hazard --actor fighter --hazard spiked-pit
  combat-sim hazard --actor duelist --hazard poison-dart-trap --detect --skill investigation`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := hazardFlags
		w := cmd.OutOrStdout()
		if f.list {
			listHazards(w)
			return nil
		}
		if f.actor == "" || f.hazard == "" {
			return errors.InvalidArgument("--actor and --hazard are required")
		}

		def, err := hazards.Lookup(f.hazard)
		if err != nil {
			return err
		}
		p, err := sim.participant(cmd.Context(), f.actor)
		if err != nil {
			return err
		}

		if f.detect {
			found, err := sim.detect(cmd.Context(), w, p, def, f.skill)
			if err != nil {
				return err
			}
			if found {
				printStatus(w, p)
				return nil
			}
		}

		after, err := sim.spring(cmd.Context(), w, p, def)
		if err != nil {
			return err
		}
		printStatus(w, after)
		return nil
	},
}

func init() {
	hazardCmd.Flags().StringVar(&hazardFlags.actor, "actor", "", "participant id")
	hazardCmd.Flags().StringVar(&hazardFlags.hazard, "hazard", "", "hazard key")
	hazardCmd.Flags().BoolVar(&hazardFlags.detect, "detect", false, "search for the hazard first; it is avoided when found")
	hazardCmd.Flags().StringVar(&hazardFlags.skill, "skill", "", "skill used to search (defaults to the hazard's first detection skill)")
	hazardCmd.Flags().BoolVar(&hazardFlags.list, "list", false, "list the built-in hazards")
}

func listHazards(w io.Writer) {
	for _, def := range hazards.Catalog() {
		line := fmt.Sprintf("%-20s %s, %s", def.Key, def.Name, def.Trigger)
		if def.Hidden {
			line += fmt.Sprintf(", hidden (DC %d)", def.DetectionDC)
		}
		if def.Save != nil {
			line += fmt.Sprintf(", DC %d %s save", def.Save.DC, def.Save.Ability.Name())
		}
		fmt.Fprintln(w, line)
	}
}

// detect searches for a hazard and reports whether it was found
func (a *app) detect(ctx context.Context, w io.Writer, p *participant.Participant, def *hazards.Definition, skillName string) (bool, error) {
	var skill shared.Skill
	switch {
	case skillName != "":
		s, err := shared.ParseSkill(skillName)
		if err != nil {
			return false, err
		}
		skill = s
	case len(def.DetectionSkills) > 0:
		skill = def.DetectionSkills[0]
	}

	result, err := a.engine.DetectHazard(p, def, skill)
	if err != nil {
		return false, err
	}
	entry := actionlog.FromDetection("", p, def, result)
	a.record(ctx, entry, p)
	fmt.Fprintln(w, entry.Summary)
	return result.Detected, nil
}

// spring resolves the hazard and commits its delta
func (a *app) spring(ctx context.Context, w io.Writer, p *participant.Participant, def *hazards.Definition) (*participant.Participant, error) {
	result, err := a.engine.InteractWithHazard(p, def)
	if err != nil {
		return nil, err
	}
	if _, err := a.applier.Commit(ctx, result.Delta); err != nil {
		return nil, err
	}

	entry := actionlog.FromHazard(result.Delta.ActionID, p, def, result)
	a.record(ctx, entry, p)
	fmt.Fprintln(w, entry.Summary)
	return result.Participant, nil
}

func (a *app) record(ctx context.Context, entry *actionlog.Entry, p *participant.Participant) {
	if err := a.publisher.Publish(ctx, entry, p, nil); err != nil {
		a.logger.Warn("Failed to publish log entry", "type", entry.Type, "error", err)
	}
}
