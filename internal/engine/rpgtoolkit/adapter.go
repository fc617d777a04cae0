// Package rpgtoolkit provides the concrete implementation of the engine interface using rpg-toolkit modules.
package rpgtoolkit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/questline/internal/engine"
	"github.com/KirkDiggler/questline/internal/entities"
	"github.com/KirkDiggler/questline/internal/errors"
	"github.com/KirkDiggler/questline/internal/pkg/rng"
)

// automatedWeights are the odds of attack, defend and skill for crew and enemies
var automatedWeights = []int{3, 1, 1}

var automatedActions = []engine.ActionKind{engine.ActionAttack, engine.ActionDefend, engine.ActionSkill}

// Adapter implements the engine.Engine interface using rpg-toolkit
type Adapter struct {
	eventBus   events.EventBus
	diceRoller dice.Roller
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	EventBus   events.EventBus
	DiceRoller dice.Roller
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.EventBus == nil {
		return errors.InvalidArgument("event bus is required")
	}
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	return nil
}

// NewAdapter creates a new rpg-toolkit engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Adapter{
		eventBus:   cfg.EventBus,
		diceRoller: cfg.DiceRoller,
	}, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// Setup builds the battle and starts it
func (a *Adapter) Setup(ctx context.Context, input *engine.SetupInput) (*engine.SetupOutput, error) {
	b, err := engine.NewBattle(input)
	if err != nil {
		return nil, err
	}
	b.Status = engine.StatusInProgress

	slog.Info("battle started",
		"battle_id", b.ID,
		"quest_id", b.QuestID,
		"topology", b.Topology,
		"combatants", len(b.Combatants),
		"first", b.Current().ID)

	a.publish(ctx, EventBattleStarted, battleSource(b), nil)

	return &engine.SetupOutput{Battle: b}, nil
}

// PlayerAction resolves the player's turn
func (a *Adapter) PlayerAction(ctx context.Context, input *engine.PlayerActionInput) (*engine.ActionOutput, error) {
	if input == nil || input.Battle == nil {
		return nil, errors.InvalidArgument("battle is required")
	}
	b := input.Battle
	if !b.Active() {
		return nil, errors.FailedPrecondition("battle is already resolved")
	}
	actor := b.Current()
	if actor.Role != engine.RolePlayer {
		return nil, errors.FailedPreconditionf("it is %s's turn", actor.Name)
	}

	action := input.Action
	entry := engine.LogEntry{Round: b.Round, ActorID: actor.ID, Action: action.Kind}

	switch action.Kind {
	case engine.ActionAttack:
		if err := a.strike(b, actor, action.TargetHint, false, 0, &entry); err != nil {
			return nil, err
		}

	case engine.ActionDefend:
		actor.Guarding = true
		entry.Message = fmt.Sprintf("%s braces for the next hit", actor.Name)

	case engine.ActionSkillCard:
		card, err := readyCard(b, action.Card, entities.RewardSkill)
		if err != nil {
			return nil, err
		}
		if card.Effect.Kind != entities.EffectDamageBonus {
			return nil, errors.InvalidCardUsef("skill card %s has no damage effect", card.Name)
		}
		if err := a.strike(b, actor, action.TargetHint, true, card.Effect.Amount, &entry); err != nil {
			return nil, err
		}
		b.Cooldowns[card.ID] = engine.CardCooldownRounds

	case engine.ActionSupportCard:
		card, err := readyCard(b, action.Card, entities.RewardSupport)
		if err != nil {
			return nil, err
		}
		if b.SupportUsed[card.ID] {
			return nil, errors.InvalidCardUsef("support card %s was already used this battle", card.Name)
		}
		if err := applySupport(actor, card, &entry); err != nil {
			return nil, err
		}
		b.SupportUsed[card.ID] = true
		b.Cooldowns[card.ID] = engine.CardCooldownRounds

	default:
		return nil, errors.InvalidArgumentf("unknown player action %q", action.Kind)
	}

	return a.finishTurn(ctx, b, actor, entry), nil
}

// AutomatedTurn resolves a crew member's or enemy's turn
func (a *Adapter) AutomatedTurn(ctx context.Context, input *engine.AutomatedTurnInput) (*engine.ActionOutput, error) {
	if input == nil || input.Battle == nil {
		return nil, errors.InvalidArgument("battle is required")
	}
	b := input.Battle
	if !b.Active() {
		return nil, errors.FailedPrecondition("battle is already resolved")
	}
	actor := b.Current()
	if actor.Role == engine.RolePlayer {
		return nil, errors.FailedPrecondition("waiting for the player to act")
	}

	choice, err := rng.Weighted(a.diceRoller, automatedWeights)
	if err != nil {
		return nil, errors.Wrap(err, "failed to choose action")
	}
	kind := automatedActions[choice]
	entry := engine.LogEntry{Round: b.Round, ActorID: actor.ID, Action: kind}

	if kind == engine.ActionDefend {
		actor.Guarding = true
		entry.Message = fmt.Sprintf("%s braces for the next hit", actor.Name)
	} else if err := a.strike(b, actor, "", kind == engine.ActionSkill, 0, &entry); err != nil {
		return nil, err
	}

	return a.finishTurn(ctx, b, actor, entry), nil
}

// CalculateDamage rolls the variance of one hit
func (a *Adapter) CalculateDamage(input *engine.DamageInput) (int, error) {
	if input == nil {
		return 0, errors.InvalidArgument("input is required")
	}
	frac, err := rng.Fraction(a.diceRoller)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll damage")
	}
	base := engine.BaseDamage(input.Attacker, input.Defender, input.Skill)
	return max(1, engine.ApplyVariance(base, frac)+input.Bonus), nil
}

// strike picks a target, rolls damage and lands it. A missing target skips
// the turn instead of failing it.
func (a *Adapter) strike(b *engine.Battle, attacker *engine.Combatant, hint string, skill bool, bonus int, entry *engine.LogEntry) error {
	target, err := a.pickTarget(b, attacker, hint)
	if errors.IsNoLivingTarget(err) {
		slog.Warn("turn skipped", "battle_id", b.ID, "actor", attacker.ID, "reason", err.Error())
		entry.Skipped = true
		entry.Message = fmt.Sprintf("%s finds nobody to hit", attacker.Name)
		return nil
	}
	if err != nil {
		return err
	}

	dmg, err := a.CalculateDamage(&engine.DamageInput{
		Attacker: attacker.Strength(),
		Defender: target.Durability(),
		Skill:    skill,
		Bonus:    bonus,
	})
	if err != nil {
		return err
	}

	hit := b.ApplyHit(target, dmg)
	entry.TargetID = target.ID
	entry.Damage = hit.Damage
	entry.Absorbed = hit.Absorbed
	entry.Guarded = hit.Guarded
	entry.Message = fmt.Sprintf("%s hits %s for %d", attacker.Name, target.Name, hit.Damage)
	return nil
}

// pickTarget applies the targeting rules. Allies strike the single boss, the
// weaker of two bosses, or a random minion; enemies strike a random ally.
func (a *Adapter) pickTarget(b *engine.Battle, attacker *engine.Combatant, hint string) (*engine.Combatant, error) {
	if !attacker.Role.IsAlly() {
		living := b.LivingAllies()
		if len(living) == 0 {
			return nil, errors.NoLivingTarget("no ally is standing")
		}
		return a.pickRandom(living)
	}

	living := b.LivingEnemies()
	if len(living) == 0 {
		return nil, errors.NoLivingTarget("no enemy is standing")
	}
	if hint != "" {
		for _, c := range living {
			if c.ID == hint {
				return c, nil
			}
		}
	}

	switch b.Topology {
	case engine.TopologyTwoBoss:
		weakest := living[0]
		for _, c := range living[1:] {
			if c.HP < weakest.HP {
				weakest = c
			}
		}
		return weakest, nil
	case engine.TopologyMinionWave:
		return a.pickRandom(living)
	default:
		return living[0], nil
	}
}

func (a *Adapter) pickRandom(candidates []*engine.Combatant) (*engine.Combatant, error) {
	idx, err := rng.Index(a.diceRoller, len(candidates))
	if err != nil {
		return nil, errors.Wrap(err, "failed to pick target")
	}
	return candidates[idx], nil
}

func (a *Adapter) finishTurn(ctx context.Context, b *engine.Battle, actor *engine.Combatant, entry engine.LogEntry) *engine.ActionOutput {
	b.Log = append(b.Log, entry)
	out := &engine.ActionOutput{Entry: entry}

	slog.Debug("turn resolved",
		"battle_id", b.ID,
		"round", entry.Round,
		"actor", entry.ActorID,
		"action", entry.Action,
		"target", entry.TargetID,
		"damage", entry.Damage)

	var target core.Entity
	if entry.TargetID != "" {
		target = combatantEntity(b.Combatant(entry.TargetID))
	}
	a.publish(ctx, EventActionResolved, combatantEntity(actor), target)

	if b.CheckResolution() {
		out.Resolved = true
		out.Outcome = b.Outcome()
		slog.Info("battle resolved",
			"battle_id", b.ID,
			"quest_id", b.QuestID,
			"outcome", out.Outcome,
			"rounds", b.Round)
		a.publish(ctx, EventBattleResolved, battleSource(b), nil)
		return out
	}

	b.Advance()
	out.Next = b.Current()
	return out
}

func (a *Adapter) publish(ctx context.Context, eventType string, source, target core.Entity) {
	if err := a.eventBus.Publish(ctx, events.NewGameEvent(eventType, source, target)); err != nil {
		slog.Warn("failed to publish event", "type", eventType, "error", err)
	}
}

func readyCard(b *engine.Battle, card *entities.Card, kind entities.RewardKind) (*entities.Card, error) {
	if card == nil {
		return nil, errors.InvalidCardUse("card is required")
	}
	if card.Kind != kind {
		return nil, errors.InvalidCardUsef("%s is a %s card, not a %s card", card.Name, card.Kind, kind)
	}
	if !b.CardReady(card.ID) {
		return nil, errors.InvalidCardUsef("%s is on cooldown", card.Name)
	}
	return card, nil
}

func applySupport(actor *engine.Combatant, card *entities.Card, entry *engine.LogEntry) error {
	eff := card.Effect
	switch eff.Kind {
	case entities.EffectHeal:
		heal := actor.MaxHP - actor.HP
		if !eff.Full {
			pct := eff.Amount
			if pct <= 0 {
				pct = engine.SupportHealDefault
			}
			heal = min(heal, engine.PercentOf(actor.MaxHP, pct))
		}
		actor.HP += heal
		entry.Healed = heal
		entry.Message = fmt.Sprintf("%s recovers %d HP", actor.Name, heal)
	case entities.EffectShield:
		shield := eff.Amount
		if eff.Percent {
			shield = engine.PercentOf(actor.MaxHP, eff.Amount)
		}
		actor.Shield += shield
		entry.Shielded = shield
		entry.Message = fmt.Sprintf("%s raises a %d point shield", actor.Name, shield)
	default:
		return errors.InvalidCardUsef("support card %s has no combat effect", card.Name)
	}
	return nil
}
