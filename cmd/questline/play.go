package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/questline/internal/entities"
	"github.com/KirkDiggler/questline/internal/errors"
	sessionrepo "github.com/KirkDiggler/questline/internal/repositories/session"
	"github.com/KirkDiggler/questline/internal/services/autopilot"
)

var (
	playSessionID      string
	playName           string
	playStopAfter      int
	playInstant        bool
	playChoices        map[string]string
	playFailChallenges bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the quest chain on autopilot",
	Long: `Play the quest chain on autopilot. The session is saved after every
quest; pass --session to resume a saved one. Examples:

  questline play --name Jin --instant
  questline play --session 6f1c... --stop-after 199 --choice 199=jaeha`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playSessionID, "session", "", "Resume a saved session")
	playCmd.Flags().StringVar(&playName, "name", "", "Character name for a new session")
	playCmd.Flags().IntVar(&playStopAfter, "stop-after", 0, "Stop once this quest is completed")
	playCmd.Flags().BoolVar(&playInstant, "instant", false, "Skip the thinking and breakthrough delays")
	playCmd.Flags().StringToStringVar(&playChoices, "choice", nil, "Story choices as quest=option")
	playCmd.Flags().BoolVar(&playFailChallenges, "fail-challenges", false, "Lose every mini-game")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	choices, err := parseChoices(playChoices)
	if err != nil {
		return err
	}

	feed, err := loadFeed(cfg)
	if err != nil {
		return err
	}
	repo, err := newRepository(cfg)
	if err != nil {
		return err
	}

	session, err := resumeSession(ctx, repo, playSessionID)
	if err != nil {
		return err
	}

	game, err := newGame(cfg, gameOptions{
		feed:    feed,
		session: session,
		name:    playName,
		seed:    cfg.Seed,
		instant: playInstant,
	})
	if err != nil {
		return err
	}
	defer game.Close()

	pilot, err := autopilot.New(&autopilot.Config{Service: game, Feed: feed, Repository: repo})
	if err != nil {
		return err
	}

	out, err := pilot.Run(ctx, &autopilot.RunInput{
		StopAfter:      playStopAfter,
		Choices:        choices,
		FailChallenges: playFailChallenges,
	})
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("interrupted: %w", err)
		}
		return err
	}

	fmt.Printf("Completed %d quests in %d battles", len(out.Completed), out.Battles)
	if out.LostAt != 0 {
		fmt.Printf(", lost the fight of quest %d", out.LostAt)
	}
	fmt.Println()
	return printSummary(out.Session)
}

// resumeSession loads a saved session; an empty ID starts a new one
func resumeSession(ctx context.Context, repo sessionrepo.Repository, sessionID string) (*entities.Session, error) {
	if sessionID == "" {
		return nil, nil
	}
	got, err := repo.Get(ctx, &sessionrepo.GetInput{SessionID: sessionID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resume session %s", sessionID)
	}
	return got.Session, nil
}

func parseChoices(raw map[string]string) (map[int]string, error) {
	out := make(map[int]string, len(raw))
	for k, v := range raw {
		id, err := strconv.Atoi(k)
		if err != nil {
			return nil, errors.InvalidArgumentf("choice key %q is not a quest id", k)
		}
		out[id] = v
	}
	return out, nil
}
