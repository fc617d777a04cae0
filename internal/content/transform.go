package content

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/questline/internal/entities"
	"github.com/KirkDiggler/questline/internal/progression/accumulator"
)

// Dedupe keeps the first quest for each id
func Dedupe(quests []*entities.Quest) []*entities.Quest {
	seen := make(map[int]bool, len(quests))
	out := make([]*entities.Quest, 0, len(quests))
	for _, q := range quests {
		if seen[q.ID] {
			slog.Warn("duplicate quest id dropped", "quest_id", q.ID, "name", q.Name)
			continue
		}
		seen[q.ID] = true
		out = append(out, q)
	}
	return out
}

// keptByChain reports whether the boss chain keeps a quest
func keptByChain(q *entities.Quest) bool {
	return q.IsBossQuest() || q.HasChoice || q.Milestone != nil
}

// BossChain shortens the feed to its boss, choice and milestone quests.
// Each kept quest requires the one kept before it. Rewards of dropped quests
// before the first kept quest are returned as starting rewards; the rest
// fold into the range rewards of the kept quest preceding them.
func BossChain(quests []*entities.Quest) ([]*entities.Quest, []entities.Reward) {
	sorted := append([]*entities.Quest(nil), quests...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	var (
		kept     []*entities.Quest
		starting []entities.Reward
		dropped  int
	)
	for _, q := range sorted {
		if !keptByChain(q) {
			dropped++
			if len(kept) == 0 {
				starting = append(starting, q.Rewards...)
				continue
			}
			anchor := kept[len(kept)-1]
			anchor.RangeRewards = append(anchor.RangeRewards, q.Rewards...)
			continue
		}

		q.Prerequisites = nil
		if len(kept) > 0 {
			q.Prerequisites = []int{kept[len(kept)-1].ID}
		}
		kept = append(kept, q)
	}

	slog.Info("boss chain built",
		"kept", len(kept),
		"dropped", dropped,
		"starting_rewards", len(starting))

	return kept, starting
}

// Rebalance makes each boss reachable on rewards alone. Walking the boss
// quests in order, it compares the units needed to climb from baseline to
// the boss's peak stats with the units granted so far, and pads the quest
// before the boss with +1 stat rewards and a cultivation card for every
// stat that falls short. Forced-outcome bosses are skipped.
func Rebalance(quests []*entities.Quest, baseline [entities.StatCount]entities.Tier) {
	sort.SliceStable(quests, func(i, j int) bool { return quests[i].ID < quests[j].ID })

	var granted [entities.StatCount]int
	for i, q := range quests {
		if q.IsBossQuest() && q.ForcedOutcome == entities.ForcedOutcomeNone && i > 0 {
			if peak, ok := q.PeakEnemyStats(); ok {
				padBefore(quests[i-1], q, peak, baseline, &granted)
			}
		}
		addGranted(&granted, q.Rewards)
		addGranted(&granted, q.RangeRewards)
	}
}

func padBefore(prev, boss *entities.Quest, peak, baseline [entities.StatCount]entities.Tier, granted *[entities.StatCount]int) {
	for i, stat := range entities.AllStats {
		target := min(peak[i], entities.MaxTier)
		deficit := accumulator.UnitsNeededToReach(baseline[i], target) - granted[i]
		if deficit <= 0 {
			continue
		}

		for range deficit {
			prev.Rewards = append(prev.Rewards, entities.Reward{
				Kind:   entities.RewardStat,
				Name:   fmt.Sprintf("%s Training", displayStat(stat)),
				Rarity: entities.RarityBronze,
				Effect: entities.Effect{
					Kind:   entities.EffectStatGrant,
					Raw:    fmt.Sprintf("%s+1", stat),
					Stat:   stat,
					Amount: 1,
				},
			})
		}
		prev.Rewards = append(prev.Rewards, entities.Reward{
			Kind:   entities.RewardCultivation,
			Name:   fmt.Sprintf("%s Cultivation", displayStat(stat)),
			Rarity: entities.RarityBronze,
			Effect: entities.Effect{
				Kind:   entities.EffectCultivation,
				Raw:    "crew_boost",
				Stat:   stat,
				Amount: entities.RarityBronze.CultivationLevel(),
			},
		})
		granted[i] += deficit

		slog.Debug("rebalanced boss approach",
			"boss_quest", boss.ID,
			"padded_quest", prev.ID,
			"stat", stat,
			"units", deficit)
	}
}

func addGranted(granted *[entities.StatCount]int, rewards []entities.Reward) {
	for _, r := range rewards {
		if r.Kind != entities.RewardStat {
			continue
		}
		for i, stat := range entities.AllStats {
			granted[i] += r.Effect.Units(stat)
		}
	}
}

func displayStat(s entities.Stat) string {
	switch s {
	case entities.StatStrength:
		return "Strength"
	case entities.StatSpeed:
		return "Speed"
	default:
		return "Durability"
	}
}
