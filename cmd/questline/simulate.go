package main

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/questline/internal/content"
	"github.com/KirkDiggler/questline/internal/services/autopilot"
)

var (
	simRuns      int
	simParallel  int
	simStopAfter int
	simSeed      uint64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play many seeded sessions and report how far they get",
	Long: `Simulate runs independent autopilot sessions concurrently, each with
its own seeded dice, and reports where they stall. Examples:

  questline simulate --runs 200 --parallel 8
  questline simulate --stop-after 250 --seed 42`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simRuns, "runs", 50, "Number of sessions to play")
	simulateCmd.Flags().IntVar(&simParallel, "parallel", 4, "Sessions played at once")
	simulateCmd.Flags().IntVar(&simStopAfter, "stop-after", 0, "Stop each session once this quest is completed")
	simulateCmd.Flags().Uint64Var(&simSeed, "seed", 1, "Seed of the first run; run i uses seed+i")
}

// simResult is the outcome of one simulated session
type simResult struct {
	completed int
	lostAt    int
	battles   int
	points    int
	ended     bool
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	if simRuns <= 0 || simParallel <= 0 {
		return fmt.Errorf("--runs and --parallel must be positive")
	}

	feed, err := loadFeed(cfg)
	if err != nil {
		return err
	}

	var (
		mu      sync.Mutex
		results []simResult
	)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(simParallel)
	for i := 0; i < simRuns; i++ {
		seed := simSeed + uint64(i)
		g.Go(func() error {
			res, err := simulateOne(ctx, feed, seed)
			if err != nil {
				return fmt.Errorf("run with seed %d: %w", seed, err)
			}
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	report(results)
	return nil
}

func simulateOne(ctx context.Context, feed *content.Feed, seed uint64) (simResult, error) {
	game, err := newGame(cfg, gameOptions{feed: feed, seed: seed, instant: true, quiet: true})
	if err != nil {
		return simResult{}, err
	}
	defer game.Close()

	pilot, err := autopilot.New(&autopilot.Config{Service: game, Feed: feed})
	if err != nil {
		return simResult{}, err
	}

	out, err := pilot.Run(ctx, &autopilot.RunInput{StopAfter: simStopAfter})
	if err != nil {
		return simResult{}, err
	}
	return simResult{
		completed: len(out.Completed),
		lostAt:    out.LostAt,
		battles:   out.Battles,
		points:    out.Session.Points,
		ended:     out.Ended,
	}, nil
}

func report(results []simResult) {
	var completed, points, battles, ended int
	lost := map[int]int{}
	for _, r := range results {
		completed += r.completed
		points += r.points
		battles += r.battles
		if r.ended {
			ended++
		}
		if r.lostAt != 0 {
			lost[r.lostAt]++
		}
	}

	n := len(results)
	fmt.Printf("Runs: %d\n", n)
	fmt.Printf("Average quests completed: %.1f\n", float64(completed)/float64(n))
	fmt.Printf("Average battles: %.1f\n", float64(battles)/float64(n))
	fmt.Printf("Average points: %.1f\n", float64(points)/float64(n))
	fmt.Printf("Story ended: %d\n", ended)

	if len(lost) == 0 {
		fmt.Println("No battles lost")
		return
	}
	quests := make([]int, 0, len(lost))
	for id := range lost {
		quests = append(quests, id)
	}
	sort.Ints(quests)
	fmt.Println("Lost battles by quest:")
	for _, id := range quests {
		fmt.Printf("  %d: %d\n", id, lost[id])
	}
}
