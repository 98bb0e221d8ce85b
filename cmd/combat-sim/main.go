// Package main is the entry point for the combat simulator
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

var (
	envFile    string
	fetchAPI   bool
	jsonOutput bool

	sim *app
)

var rootCmd = &cobra.Command{
	Use:   "combat-sim",
	Short: "Resolve 5e combat actions from the command line",
	Long: `combat-sim drives the combat resolution engine with a small built-in roster.
Outcomes are committed exactly once through the action ledger, in Redis when
REDIS_ADDR is set and in memory otherwise.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), &appOptions{EnvFile: envFile, FetchAPI: fetchAPI})
		if err != nil {
			return err
		}
		sim = a
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if sim == nil {
			return nil
		}
		return sim.Close()
	},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}
	// a rejected action changed nothing; exit 2 so scripts can retry with another
	if errors.IsRejection(err) {
		fmt.Fprintf(os.Stderr, "Rejected: %v\n", err)
		os.Exit(2)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "read settings from this .env file")
	rootCmd.PersistentFlags().BoolVar(&fetchAPI, "fetch", false, "load weapons, spells and monsters missing from the built-in catalog from the D&D 5e API")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print outcomes as JSON")

	rootCmd.AddCommand(attackCmd)
	rootCmd.AddCommand(castCmd)
	rootCmd.AddCommand(hazardCmd)
	rootCmd.AddCommand(restCmd)
	rootCmd.AddCommand(slotsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(simulateCmd)
}
