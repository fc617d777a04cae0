package main

import (
	"github.com/spf13/cobra"

	sessionrepo "github.com/KirkDiggler/questline/internal/repositories/session"
)

var stateCmd = &cobra.Command{
	Use:   "state [session-id]",
	Short: "Show a saved session",
	Long: `Show a session saved by play. Sessions outlive the process only in
the redis store, so set QUESTLINE_REDIS_ADDR.`,
	Args: cobra.ExactArgs(1),
	RunE: showState,
}

func showState(cmd *cobra.Command, args []string) error {
	repo, err := newRepository(cfg)
	if err != nil {
		return err
	}

	got, err := repo.Get(cmd.Context(), &sessionrepo.GetInput{SessionID: args[0]})
	if err != nil {
		return err
	}
	return printSummary(got.Session)
}
