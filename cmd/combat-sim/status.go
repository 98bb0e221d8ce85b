package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
)

var statusActor string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show stored participants",
	Example: `  combat-sim status
  combat-sim status --actor goblin-2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := sim.status(cmd.Context(), statusActor)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if jsonOutput {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(list)
		}
		if len(list) == 0 {
			fmt.Fprintln(w, "No participants yet")
			return nil
		}
		for _, p := range list {
			printStatus(w, p)
		}
		return nil
	},
}

func init() {
	statusCmd.Flags().StringVar(&statusActor, "actor", "", "show only this participant")
}

// status returns one participant, or every stored one ordered by id
func (a *app) status(ctx context.Context, id string) ([]*participant.Participant, error) {
	if id == "" {
		return a.participants.List(ctx)
	}
	p, err := a.participant(ctx, id)
	if err != nil {
		return nil, err
	}
	return []*participant.Participant{p}, nil
}
