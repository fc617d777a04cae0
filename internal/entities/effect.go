package entities

// EffectKind tags the variant of an Effect
type EffectKind string

// Effect kinds
const (
	EffectStatGrant    EffectKind = "stat_grant"
	EffectAllStats     EffectKind = "all_stats"
	EffectRandomStat   EffectKind = "random_stat"
	EffectPotential    EffectKind = "potential"
	EffectIntelligence EffectKind = "intelligence"
	EffectDamageBonus  EffectKind = "damage_bonus"
	EffectHeal         EffectKind = "heal"
	EffectShield       EffectKind = "shield"
	EffectCultivation  EffectKind = "cultivation"
	EffectRecruit      EffectKind = "recruit"
	EffectBreakthrough EffectKind = "breakthrough"
	EffectPassive      EffectKind = "passive"
)

// Effect is the parsed form of a reward effect. Only the fields relevant to
// Kind are set.
type Effect struct {
	Kind EffectKind `json:"kind"`
	// Raw is the effect text as authored
	Raw string `json:"raw,omitempty"`

	Stat   Stat `json:"stat,omitempty"`
	Amount int  `json:"amount,omitempty"`
	// Percent marks heal and shield amounts relative to max HP
	Percent bool `json:"percent,omitempty"`
	// Full marks a full heal or a potential jump straight to the cap
	Full bool `json:"full,omitempty"`

	Level   BreakthroughLevel `json:"level,omitempty"`
	Recruit *Recruit          `json:"recruit,omitempty"`
	Tag     string            `json:"tag,omitempty"`
}

// Recruit describes the crew member a recruit effect adds
type Recruit struct {
	Name  string          `json:"name"`
	Stats [StatCount]Tier `json:"stats"`
}

// Clone returns a deep copy
func (e Effect) Clone() Effect {
	if e.Recruit != nil {
		r := *e.Recruit
		e.Recruit = &r
	}
	return e
}

// Units returns the stat units the effect grants to s
func (e Effect) Units(s Stat) int {
	switch e.Kind {
	case EffectStatGrant:
		if e.Stat == s {
			return e.Amount
		}
	case EffectAllStats:
		return e.Amount
	case EffectCultivation:
		if e.Stat == s {
			return e.Amount
		}
	}
	return 0
}
