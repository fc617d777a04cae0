package entities

import "fmt"

// Stat names one of the three combat stats
type Stat string

// Stat constants
const (
	StatStrength   Stat = "strength"
	StatSpeed      Stat = "speed"
	StatDurability Stat = "durability"
)

// StatCount is the number of combat stats
const StatCount = 3

// AllStats lists the combat stats in display order
var AllStats = []Stat{StatStrength, StatSpeed, StatDurability}

// Index returns the stat's slot in a StatBlock, or -1 when unknown
func (s Stat) Index() int {
	switch s {
	case StatStrength:
		return 0
	case StatSpeed:
		return 1
	case StatDurability:
		return 2
	default:
		return -1
	}
}

// Valid reports whether s names a combat stat
func (s Stat) Valid() bool {
	return s.Index() >= 0
}

// ParseStat validates a stat name
func ParseStat(name string) (Stat, error) {
	s := Stat(name)
	if !s.Valid() {
		return "", fmt.Errorf("unknown stat %q", name)
	}
	return s, nil
}

// StatBlock holds the three combat tiers plus partial unit progress per stat.
// Players and crew members share it so growth rules apply identically.
type StatBlock struct {
	Tiers    [StatCount]Tier `json:"tiers"`
	Progress [StatCount]int  `json:"progress"`
}

// NewStatBlock builds a block from strength, speed and durability tiers
func NewStatBlock(strength, speed, durability Tier) StatBlock {
	return StatBlock{Tiers: [StatCount]Tier{strength, speed, durability}}
}

// Tier returns the current tier of a stat
func (b *StatBlock) Tier(s Stat) Tier {
	return b.Tiers[s.Index()]
}

// SetTier overwrites the tier of a stat
func (b *StatBlock) SetTier(s Stat, t Tier) {
	b.Tiers[s.Index()] = t
}

// ProgressOf returns the partial units banked toward the next tier
func (b *StatBlock) ProgressOf(s Stat) int {
	return b.Progress[s.Index()]
}

// SetProgress overwrites the banked units of a stat
func (b *StatBlock) SetProgress(s Stat, units int) {
	b.Progress[s.Index()] = units
}

// Strength is a shorthand for Tier(StatStrength)
func (b *StatBlock) Strength() Tier { return b.Tiers[0] }

// Speed is a shorthand for Tier(StatSpeed)
func (b *StatBlock) Speed() Tier { return b.Tiers[1] }

// Durability is a shorthand for Tier(StatDurability)
func (b *StatBlock) Durability() Tier { return b.Tiers[2] }
