// Package progression implements the controller that walks a session
// through the quest chain.
package progression

//go:generate mockgen -destination=mock/mock_service.go -package=progressionmock github.com/KirkDiggler/questline/internal/orchestrators/progression Service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/questline/internal/content"
	"github.com/KirkDiggler/questline/internal/engine"
	"github.com/KirkDiggler/questline/internal/entities"
	"github.com/KirkDiggler/questline/internal/errors"
	"github.com/KirkDiggler/questline/internal/pkg/clock"
	"github.com/KirkDiggler/questline/internal/pkg/idgen"
	"github.com/KirkDiggler/questline/internal/progression/breakthrough"
	"github.com/KirkDiggler/questline/internal/progression/statcap"
)

// Service defines the player intents and queries of a game session
type Service interface {
	// CompleteQuest attempts a quest, starting its challenge or battle when it has one
	CompleteQuest(ctx context.Context, input *CompleteQuestInput) (*CompleteQuestOutput, error)

	// ChooseCombatAction plays the player's turn in the active battle
	ChooseCombatAction(ctx context.Context, input *ChooseCombatActionInput) (*ChooseCombatActionOutput, error)

	// UseInventoryCard applies or plays an inventory card
	UseInventoryCard(ctx context.Context, input *UseInventoryCardInput) (*UseInventoryCardOutput, error)

	// MakeStoryChoice settles a branching quest
	MakeStoryChoice(ctx context.Context, input *MakeStoryChoiceInput) (*MakeStoryChoiceOutput, error)

	// ResolveChallenge reports the result of the pending mini-game
	ResolveChallenge(ctx context.Context, input *ResolveChallengeInput) (*ResolveChallengeOutput, error)

	// CancelChallenge aborts the pending mini-game without side effects
	CancelChallenge(ctx context.Context, input *CancelChallengeInput) (*CancelChallengeOutput, error)

	// GetState returns a snapshot of the session
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	// PreviewCap resolves a stat cap without changing anything
	PreviewCap(ctx context.Context, input *PreviewCapInput) (*PreviewCapOutput, error)

	// CurrentBattle returns the active battle
	CurrentBattle(ctx context.Context, input *CurrentBattleInput) (*CurrentBattleOutput, error)

	// Await blocks until no continuation is pending
	Await(ctx context.Context) error

	// Close cancels pending continuations
	Close()
}

// Config holds the dependencies for the progression orchestrator
type Config struct {
	Feed         *content.Feed
	Engine       engine.Engine
	EventBus     events.EventBus
	Scheduler    clock.Scheduler
	Clock        clock.Clock
	IDGenerator  idgen.Generator
	DiceRoller   dice.Roller
	Policy       *statcap.Policy
	Breakthrough *breakthrough.Engine

	ThinkingDelay     time.Duration
	BreakthroughDelay time.Duration

	// Session resumes a saved playthrough; nil starts a new one
	Session       *entities.Session
	CharacterName string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Feed == nil {
		vb.RequiredField("Feed")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.Scheduler == nil {
		vb.RequiredField("Scheduler")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}
	if c.Policy == nil {
		vb.RequiredField("Policy")
	}
	if c.Breakthrough == nil {
		vb.RequiredField("Breakthrough")
	}
	errors.ValidateNonNegative("ThinkingDelay", int64(c.ThinkingDelay), vb)
	errors.ValidateNonNegative("BreakthroughDelay", int64(c.BreakthroughDelay), vb)
	if c.Session != nil && c.Session.Character == nil {
		vb.RequiredField("Session.Character")
	}

	return vb.Build()
}

// activeBattle pairs the running battle with its quest
type activeBattle struct {
	quest  *entities.Quest
	battle *engine.Battle
}

type orchestrator struct {
	feed         *content.Feed
	engine       engine.Engine
	eventBus     events.EventBus
	scheduler    clock.Scheduler
	clock        clock.Clock
	idGen        idgen.Generator
	roller       dice.Roller
	policy       *statcap.Policy
	breakthrough *breakthrough.Engine

	thinkingDelay     time.Duration
	breakthroughDelay time.Duration

	// ctx is used by continuations, which run outside any caller's context
	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	session   *entities.Session
	battle    *activeBattle
	challenge *entities.Quest
	overlay   string

	pending   int
	idle      chan struct{}
	timers    map[uint64]clock.Timer
	nextTimer uint64
	closed    bool
}

// NewOrchestrator creates a new progression orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ctx, cancel := context.WithCancel(context.Background())
	o := &orchestrator{
		feed:              cfg.Feed,
		engine:            cfg.Engine,
		eventBus:          cfg.EventBus,
		scheduler:         cfg.Scheduler,
		clock:             cfg.Clock,
		idGen:             cfg.IDGenerator,
		roller:            cfg.DiceRoller,
		policy:            cfg.Policy,
		breakthrough:      cfg.Breakthrough,
		thinkingDelay:     cfg.ThinkingDelay,
		breakthroughDelay: cfg.BreakthroughDelay,
		ctx:               ctx,
		cancel:            cancel,
		timers:            make(map[uint64]clock.Timer),
	}

	if cfg.Session != nil {
		o.session = cfg.Session.Clone()
		slog.Info("session resumed",
			"session_id", o.session.ID,
			"completed", o.session.CompletedCount,
			"points", o.session.Points)
		return o, nil
	}

	o.startSession(cfg.CharacterName)
	return o, nil
}

func (o *orchestrator) startSession(name string) {
	if name == "" {
		name = "Player"
	}
	now := o.clock.Now()
	character := entities.NewCharacter(o.newID(idgen.PrefixCharacter), name)
	o.session = entities.NewSession(o.newID(idgen.PrefixSession), character, now)

	if len(o.feed.StartingRewards) > 0 {
		ctxQuest := 0
		if len(o.feed.Quests) > 0 {
			ctxQuest = o.feed.Quests[0].ID
		}
		o.session.Queued = o.grantRewards(o.feed.StartingRewards)
		o.applyQueued(ctxQuest, entities.BreakthroughNone)
	}

	slog.Info("session started",
		"session_id", o.session.ID,
		"character", name,
		"starting_rewards", len(o.feed.StartingRewards))

	o.publish(ChangeSessionStarted)
}

func (o *orchestrator) newID(prefix string) string {
	return prefix + "_" + o.idGen.Generate()
}

// checkReady rejects intents while the controller cannot take them
func (o *orchestrator) checkReady() error {
	if o.closed {
		return errors.FailedPrecondition("session is closed")
	}
	if o.pending > 0 {
		return errors.Suspended("waiting for a pending continuation")
	}
	return nil
}

// publish stamps the session and announces the change
func (o *orchestrator) publish(reason string) {
	o.session.LastChange = reason
	o.session.Revision++
	o.session.UpdatedAt = o.clock.Now()

	if err := o.eventBus.Publish(o.ctx, events.NewGameEvent(EventStateChanged, o.session.Clone(), nil)); err != nil {
		slog.Warn("failed to publish state change",
			"session_id", o.session.ID,
			"reason", reason,
			"error", err)
	}
}

// schedule runs fn under the lock after d. The controller is busy until
// every scheduled continuation has run or been cancelled.
func (o *orchestrator) schedule(d time.Duration, fn func()) {
	if o.pending == 0 {
		o.idle = make(chan struct{})
	}
	o.pending++

	id := o.nextTimer
	o.nextTimer++
	o.timers[id] = o.scheduler.AfterFunc(d, func() {
		o.mu.Lock()
		defer o.mu.Unlock()

		if _, ok := o.timers[id]; !ok {
			return
		}
		delete(o.timers, id)

		fn()
		o.done()
	})
}

func (o *orchestrator) done() {
	o.pending--
	if o.pending == 0 {
		close(o.idle)
	}
}

// Await blocks until no continuation is pending
func (o *orchestrator) Await(ctx context.Context) error {
	for {
		o.mu.Lock()
		if o.pending == 0 {
			o.mu.Unlock()
			return nil
		}
		idle := o.idle
		o.mu.Unlock()

		select {
		case <-idle:
		case <-ctx.Done():
			return errors.Canceled("await canceled")
		}
	}
}

// Close cancels pending continuations. The session keeps its last state.
func (o *orchestrator) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return
	}
	o.closed = true
	for id, t := range o.timers {
		t.Stop()
		delete(o.timers, id)
		o.done()
	}
	o.cancel()

	slog.Info("session closed", "session_id", o.session.ID)
}

// GetState returns a snapshot of the session
func (o *orchestrator) GetState(_ context.Context, _ *GetStateInput) (*GetStateOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := &GetStateOutput{
		Session: o.session.Clone(),
		Busy:    o.pending > 0,
		Overlay: o.overlay,
	}
	if o.battle != nil {
		out.Battle = o.battle.battle.Clone()
	}
	if o.challenge != nil {
		out.PendingChallenge = o.challenge.ID
	}
	return out, nil
}

// PreviewCap resolves a stat cap without changing anything
func (o *orchestrator) PreviewCap(_ context.Context, input *PreviewCapInput) (*PreviewCapOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	view := o.view()
	ctx := statcap.Context{QuestID: input.QuestID, Target: input.Target}
	return &PreviewCapOutput{
		Cap:     o.policy.ResolveCap(view, ctx),
		QuestID: o.policy.ResolveQuestID(view, ctx),
	}, nil
}

// CurrentBattle returns a read-only copy of the active battle
func (o *orchestrator) CurrentBattle(_ context.Context, _ *CurrentBattleInput) (*CurrentBattleOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.battle == nil {
		return nil, errors.NotFound("no battle in progress")
	}
	return &CurrentBattleOutput{
		QuestID: o.battle.quest.ID,
		Battle:  o.battle.battle.Clone(),
	}, nil
}
