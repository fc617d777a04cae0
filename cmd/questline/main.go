// Package main is the entry point for the questline command line
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/questline/internal/config"
)

// cfg is loaded before any subcommand runs
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "questline",
	Short: "Questline progression engine",
	Long: `Questline walks a character through a branching quest chain with
tiered stats, breakthroughs and turn-based boss fights.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(questsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(stateCmd)
}

// setup reads .env, parses the environment and installs the logger
func setup(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read .env: %w", err)
	}

	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))
	return nil
}
