// Package statcap resolves the highest tier a stat may reach at a given
// point of the story.
package statcap

import (
	"github.com/KirkDiggler/questline/internal/entities"
	"github.com/KirkDiggler/questline/internal/errors"
)

// Target is the class of combatant a cap is resolved for
type Target string

// Targets
const (
	TargetPlayer Target = "player"
	TargetCrew   Target = "crew"
	TargetEnemy  Target = "enemy"
	TargetBoss   Target = "boss"
	TargetMinion Target = "minion"
)

// Capped reports whether story progression limits the target
func (t Target) Capped() bool {
	return t == TargetPlayer || t == TargetCrew
}

// View is the read-only story state the policy observes
type View interface {
	IsQuestCompleted(id int) bool
	HighestCompletedQuest() int
	HasCrewMember(name string) bool
	BreakthroughLevel() entities.BreakthroughLevel
	// ActiveBattleQuest returns the quest of the battle in progress, if any
	ActiveBattleQuest() (int, bool)
}

// Context selects what the cap is resolved for. QuestID zero means
// "resolve from the story state".
type Context struct {
	QuestID int
	Target  Target
}

// Band caps quests From..To inclusive
type Band struct {
	From    int
	To      int
	Resolve func(v View) entities.Tier
}

func fixed(t entities.Tier) func(View) entities.Tier {
	return func(View) entities.Tier { return t }
}

// Config names the story flags the bands depend on
type Config struct {
	// FinalUnlockQuestID lifts every cap once completed
	FinalUnlockQuestID int
	// MentorCrewName tightens the 100s band while the mentor trains the player
	MentorCrewName string
	// RivalBossQuestID relaxes the awakened band once the rival is beaten
	RivalBossQuestID int
	DefaultCap       entities.Tier
}

// DefaultConfig returns the story flags of the shipped quest chain
func DefaultConfig() *Config {
	return &Config{
		FinalUnlockQuestID: 499,
		MentorCrewName:     "Yang Gukja",
		RivalBossQuestID:   198,
		DefaultCap:         entities.TierSSS,
	}
}

// Validate validates the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.FinalUnlockQuestID <= 0 {
		vb.RequiredField("FinalUnlockQuestID")
	}
	if c.MentorCrewName == "" {
		vb.RequiredField("MentorCrewName")
	}
	if c.RivalBossQuestID <= 0 {
		vb.RequiredField("RivalBossQuestID")
	}
	errors.ValidateRange("DefaultCap", int(c.DefaultCap), 0, int(entities.MaxTier), vb)
	return vb.Build()
}

// Policy resolves stat caps. It never mutates what it observes, so it is
// safe to call for previews.
type Policy struct {
	cfg   Config
	bands []Band
}

// New creates a policy with the standard progression bands
func New(cfg *Config) (*Policy, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Policy{cfg: *cfg}
	p.bands = []Band{
		{From: 1, To: 99, Resolve: fixed(entities.TierC)},
		{From: 100, To: 149, Resolve: p.mentorBand},
		{From: 150, To: 300, Resolve: p.awakenedBand},
		{From: 301, To: 350, Resolve: fixed(entities.TierUR)},
		{From: 351, To: 489, Resolve: fixed(entities.TierX)},
		{From: 490, To: 497, Resolve: fixed(entities.TierXXX)},
		{From: 498, To: 498, Resolve: fixed(entities.MaxTier)},
	}
	return p, nil
}

// Bands returns the band table in evaluation order
func (p *Policy) Bands() []Band {
	out := make([]Band, len(p.bands))
	copy(out, p.bands)
	return out
}

// ResolveCap returns the highest tier the target may reach
func (p *Policy) ResolveCap(v View, ctx Context) entities.Tier {
	if !ctx.Target.Capped() {
		return entities.MaxTier
	}
	if v.IsQuestCompleted(p.cfg.FinalUnlockQuestID) {
		return entities.MaxTier
	}

	questID := p.ResolveQuestID(v, ctx)
	for _, b := range p.bands {
		if questID >= b.From && questID <= b.To {
			return b.Resolve(v)
		}
	}
	return p.cfg.DefaultCap
}

// ResolveQuestID picks the quest the cap is measured against: the explicit
// value, then the active battle, then the furthest completed quest.
func (p *Policy) ResolveQuestID(v View, ctx Context) int {
	if ctx.QuestID > 0 {
		return ctx.QuestID
	}
	if id, ok := v.ActiveBattleQuest(); ok {
		return id
	}
	return v.HighestCompletedQuest()
}

func (p *Policy) mentorBand(v View) entities.Tier {
	if v.HasCrewMember(p.cfg.MentorCrewName) && v.BreakthroughLevel() < entities.BreakthroughAwakened {
		return entities.TierA
	}
	return entities.TierSSS
}

func (p *Policy) awakenedBand(v View) entities.Tier {
	if v.BreakthroughLevel() < entities.BreakthroughAwakened {
		return entities.TierSSS
	}
	if v.IsQuestCompleted(p.cfg.RivalBossQuestID) {
		return entities.TierSSS
	}
	return entities.TierSS
}
