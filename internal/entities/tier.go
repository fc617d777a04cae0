// Package entities provides core data structures for questline.
package entities

import "math"

// Tier is a rank on the stat scale. 0 is F and 18 is DX; anything above
// MaxTier is off the scale.
type Tier int

// Tier constants
const (
	TierF Tier = iota
	TierE
	TierD
	TierC
	TierB
	TierA
	TierS
	TierSS
	TierSSS
	TierSR
	TierSSR
	TierUR
	TierLR
	TierMR
	TierX
	TierXX
	TierXXX
	TierEX
	TierDX
)

const (
	// MaxTier is the highest measurable tier
	MaxTier = TierDX
	// Unmeasurable labels every tier above MaxTier
	Unmeasurable = MaxTier + 1
	// CardGatedTier is where tiers stop advancing one unit at a time
	CardGatedTier = TierSSS

	geometricFrom = TierMR
)

var tierLabels = [...]string{
	"F", "E", "D", "C", "B", "A", "S", "SS", "SSS",
	"SR", "SSR", "UR", "LR", "MR", "X", "XX", "XXX", "EX", "DX",
}

// Value converts a tier to the number used by damage and HP math.
// Tiers up to LR grow by one per step, MR and above double per step.
func (t Tier) Value() float64 {
	if t < 0 {
		t = 0
	}
	if t < geometricFrom {
		return float64(t) + 1
	}
	return 13 * math.Pow(2, float64(t-geometricFrom))
}

// Label returns the display label, UNMEASURABLE above DX
func (t Tier) Label() string {
	switch {
	case t > MaxTier:
		return "UNMEASURABLE"
	case t < 0:
		return tierLabels[0]
	default:
		return tierLabels[t]
	}
}

// String implements fmt.Stringer
func (t Tier) String() string {
	return t.Label()
}

// Clamp bounds the tier to [0, limit]
func (t Tier) Clamp(limit Tier) Tier {
	if t < 0 {
		return 0
	}
	if t > limit {
		return limit
	}
	return t
}

// ParseTier resolves a display label back to its tier
func ParseTier(label string) (Tier, bool) {
	for i, l := range tierLabels {
		if l == label {
			return Tier(i), true
		}
	}
	return 0, false
}

// ClampInt converts a formula result to int, saturating at the int32 range
// so off-scale enemies do not overflow.
func ClampInt(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	default:
		return int(v)
	}
}

// HitPoints evaluates base + value(durability) x perValue
func HitPoints(base, perValue int, durability Tier) int {
	return ClampInt(float64(base) + durability.Value()*float64(perValue))
}
