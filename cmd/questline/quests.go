package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/questline/internal/entities"
)

var questsCmd = &cobra.Command{
	Use:   "quests",
	Short: "List the quest chain",
	Long:  `List every quest of the loaded feed with its requirements and encounter.`,
	RunE:  listQuests,
}

func listQuests(_ *cobra.Command, _ []string) error {
	feed, err := loadFeed(cfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPOINTS\tREQUIRES\tENCOUNTER\tNOTES")
	for _, q := range feed.Quests {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\n",
			q.ID, q.Name, q.Points, requires(q), encounter(q), notes(q))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(feed.StartingRewards) > 0 {
		fmt.Printf("\nStarting rewards: %d\n", len(feed.StartingRewards))
	}
	return nil
}

func requires(q *entities.Quest) string {
	parts := make([]string, 0, len(q.Prerequisites)+1)
	for _, p := range q.Prerequisites {
		parts = append(parts, fmt.Sprint(p))
	}
	if q.RequiresChoiceOf != 0 {
		parts = append(parts, fmt.Sprintf("choice@%d", q.RequiresChoiceOf))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ",")
}

func encounter(q *entities.Quest) string {
	switch {
	case q.Boss != nil:
		return fmt.Sprintf("boss %s %s", q.Boss.Name, tierLine(q.Boss.Stats))
	case len(q.Bosses) > 0:
		names := make([]string, len(q.Bosses))
		for i, b := range q.Bosses {
			names[i] = b.Name
		}
		return "bosses " + strings.Join(names, " & ")
	case len(q.Minions) > 0:
		return fmt.Sprintf("%d minions", len(q.Minions))
	case q.Challenge != entities.ChallengeNone:
		return "challenge " + string(q.Challenge)
	default:
		return "-"
	}
}

func notes(q *entities.Quest) string {
	var parts []string
	if q.ForcedOutcome == entities.ForcedOutcomeAdvance {
		parts = append(parts, "advances on loss")
	}
	if q.HasChoice {
		parts = append(parts, fmt.Sprintf("%d choices", len(q.Choices)))
	}
	if q.Milestone != nil {
		parts = append(parts, "milestone "+q.Milestone.Title)
	}
	if n := len(q.Rewards) + len(q.RangeRewards); n > 0 {
		parts = append(parts, fmt.Sprintf("%d rewards", n))
	}
	return strings.Join(parts, "; ")
}

func tierLine(tiers [entities.StatCount]entities.Tier) string {
	labels := make([]string, len(tiers))
	for i, t := range tiers {
		labels[i] = t.Label()
	}
	return "[" + strings.Join(labels, "/") + "]"
}
