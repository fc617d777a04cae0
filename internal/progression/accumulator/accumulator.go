// Package accumulator converts stat units into tier advancement.
//
// Below CardGatedTier every unit is a whole tier. From CardGatedTier up,
// units are banked in the stat's progress and a tier is gained once the
// bank covers RequiredUnits for the current tier.
package accumulator

import (
	"github.com/KirkDiggler/questline/internal/entities"
)

var requiredUnits = map[entities.Tier]int{
	entities.TierSSS: 2,
	entities.TierSR:  3,
	entities.TierSSR: 4,
	entities.TierUR:  5,
	entities.TierLR:  6,
	entities.TierMR:  10,
	entities.TierX:   15,
	entities.TierXX:  20,
	entities.TierXXX: 30,
	entities.TierEX:  50,
}

// RequiredUnits returns the banked units needed to leave tier t
func RequiredUnits(t entities.Tier) int {
	if n, ok := requiredUnits[t]; ok {
		return n
	}
	return 1
}

// UnitsNeededToReach returns the units required to go from current to target
// with an empty progress bank.
func UnitsNeededToReach(current, target entities.Tier) int {
	units := 0
	for t := current; t < target; t++ {
		if t < entities.CardGatedTier {
			units++
			continue
		}
		units += RequiredUnits(t)
	}
	return units
}

// Result describes one ApplyUnits call
type Result struct {
	Stat      entities.Stat
	Before    entities.Tier
	After     entities.Tier
	Consumed  int
	Discarded int
}

// Gained reports whether the stat advanced at least one tier
func (r Result) Gained() bool {
	return r.After > r.Before
}

// ApplyUnits spends units on one stat of the block without passing limit.
// Units left over once the limit is reached are discarded. The same rule
// serves the player and crew members.
func ApplyUnits(block *entities.StatBlock, stat entities.Stat, units int, limit entities.Tier) Result {
	tier := block.Tier(stat)
	res := Result{Stat: stat, Before: tier, After: tier}
	if units <= 0 {
		return res
	}
	if limit > entities.MaxTier {
		limit = entities.MaxTier
	}

	for units > 0 && tier < entities.CardGatedTier && tier < limit {
		tier++
		units--
		res.Consumed++
	}

	progress := block.ProgressOf(stat)
	for units > 0 && tier < limit {
		progress++
		units--
		res.Consumed++
		if req := RequiredUnits(tier); progress >= req {
			tier++
			progress -= req
		}
	}

	block.SetTier(stat, tier)
	block.SetProgress(stat, progress)
	res.After = tier
	res.Discarded = units
	return res
}
