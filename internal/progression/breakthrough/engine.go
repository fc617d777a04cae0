// Package breakthrough grants the lump stat bonus of a breakthrough milestone.
package breakthrough

import (
	"log/slog"
	"math"

	"github.com/KirkDiggler/questline/internal/entities"
	"github.com/KirkDiggler/questline/internal/errors"
	"github.com/KirkDiggler/questline/internal/progression/accumulator"
)

// DefaultGrants maps each level to its base unit grant before the
// potential multiplier.
var DefaultGrants = map[entities.BreakthroughLevel]int{
	entities.BreakthroughAwakened:     2,
	entities.BreakthroughAscendant:    3,
	entities.BreakthroughTranscendent: 5,
}

// Multiplier scales a grant by the character's potential
func Multiplier(potential entities.Tier) float64 {
	switch {
	case potential >= entities.TierS:
		return 2.0
	case potential == entities.TierA:
		return 1.5
	case potential == entities.TierB:
		return 1.2
	case potential == entities.TierC:
		return 1.0
	default:
		return 0.8
	}
}

// Config holds the per-level grants
type Config struct {
	Grants map[entities.BreakthroughLevel]int
}

// Engine applies breakthrough grants
type Engine struct {
	grants map[entities.BreakthroughLevel]int
}

// New creates an engine. A nil config uses DefaultGrants.
func New(cfg *Config) *Engine {
	grants := DefaultGrants
	if cfg != nil && len(cfg.Grants) > 0 {
		grants = cfg.Grants
	}
	return &Engine{grants: grants}
}

// ApplyInput holds the state a breakthrough mutates
type ApplyInput struct {
	Level     entities.BreakthroughLevel
	Character *entities.Character
	// Applied records the levels already granted this session
	Applied map[entities.BreakthroughLevel]bool
	// Cap is the player cap resolved for the milestone
	Cap entities.Tier
	// GrantOverride replaces the configured grant when set
	GrantOverride *int
}

// ApplyOutput describes what was granted
type ApplyOutput struct {
	Applied      bool
	UnitsPerStat int
	Results      []accumulator.Result
}

// UnitsPerStat returns round(grant x multiplier) for a level
func (e *Engine) UnitsPerStat(level entities.BreakthroughLevel, potential entities.Tier, override *int) int {
	g := e.grants[level]
	if override != nil {
		g = *override
	}
	return int(math.Round(float64(g) * Multiplier(potential)))
}

// Apply grants the level's units to strength, speed and durability. A level
// is granted at most once; repeated calls leave the character untouched.
func (e *Engine) Apply(input *ApplyInput) (*ApplyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if input.Applied == nil {
		return nil, errors.InvalidArgument("applied set is required")
	}
	if !input.Level.Valid() {
		return nil, errors.InvalidArgumentf("invalid breakthrough level %d", input.Level)
	}

	if input.Applied[input.Level] {
		slog.Debug("breakthrough already applied", "level", input.Level.String())
		return &ApplyOutput{}, nil
	}

	units := e.UnitsPerStat(input.Level, input.Character.Potential, input.GrantOverride)
	out := &ApplyOutput{Applied: true, UnitsPerStat: units}
	for _, stat := range entities.AllStats {
		out.Results = append(out.Results,
			accumulator.ApplyUnits(&input.Character.Stats, stat, units, input.Cap))
	}
	input.Applied[input.Level] = true
	input.Character.RefreshVitals()

	slog.Info("breakthrough applied",
		"level", input.Level.String(),
		"units_per_stat", units,
		"potential", input.Character.Potential.Label(),
		"cap", input.Cap.Label())

	return out, nil
}
