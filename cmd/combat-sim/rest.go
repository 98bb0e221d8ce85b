package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/rules/spellcasting"
)

var restFlags struct {
	actor string
	short bool
}

var restCmd = &cobra.Command{
	Use:   "rest",
	Short: "Take a long or short rest",
	Example: `  combat-sim rest --actor wizard
  combat-sim rest --actor warlock --short`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if restFlags.actor == "" {
			return errors.InvalidArgument("--actor is required")
		}

		rested, err := sim.rest(cmd.Context(), restFlags.actor, restFlags.short)
		if err != nil {
			return err
		}

		kind := "long"
		if restFlags.short {
			kind = "short"
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s takes a %s rest\n", rested.Name, kind)
		printStatus(w, rested)
		return nil
	},
}

func init() {
	restCmd.Flags().StringVar(&restFlags.actor, "actor", "", "participant id")
	restCmd.Flags().BoolVar(&restFlags.short, "short", false, "take a short rest, which only restores pact slots")
}

// rest applies a rest to the stored participant and saves it
func (a *app) rest(ctx context.Context, id string, short bool) (*participant.Participant, error) {
	p, err := a.participant(ctx, id)
	if err != nil {
		return nil, err
	}

	rest := spellcasting.LongRest
	if short {
		rest = spellcasting.ShortRest
	}
	rested, err := rest(p)
	if err != nil {
		return nil, err
	}
	if err := a.participants.Save(ctx, rested); err != nil {
		return nil, err
	}
	return rested, nil
}
