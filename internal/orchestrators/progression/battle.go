package progression

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/questline/internal/engine"
	"github.com/KirkDiggler/questline/internal/entities"
	"github.com/KirkDiggler/questline/internal/errors"
	"github.com/KirkDiggler/questline/internal/pkg/idgen"
)

// startBattle sets up the quest's encounter with the picked crew and hands
// the first turns to the automated fighters when they are faster than the
// player.
func (o *orchestrator) startBattle(ctx context.Context, quest *entities.Quest, crew []engine.CrewParticipant) (*engine.Battle, error) {
	out, err := o.engine.Setup(ctx, &engine.SetupInput{
		BattleID:  o.newID(idgen.PrefixBattle),
		Quest:     quest,
		Character: o.session.Character,
		Crew:      crew,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to set up battle for quest %d", quest.ID)
	}

	o.battle = &activeBattle{quest: quest, battle: out.Battle}

	slog.Info("battle started",
		"session_id", o.session.ID,
		"quest_id", quest.ID,
		"battle_id", out.Battle.ID,
		"topology", out.Battle.Topology,
		"crew", len(crew))

	o.publish(ChangeBattleStarted)
	o.driveAutomated()

	return out.Battle.Clone(), nil
}

// driveAutomated schedules the next automated turn after the thinking delay
func (o *orchestrator) driveAutomated() {
	if o.battle == nil || !o.battle.battle.Active() {
		return
	}
	if o.battle.battle.Current().Role == engine.RolePlayer {
		return
	}
	o.schedule(o.thinkingDelay, o.automatedTurn)
}

// automatedTurn runs as a continuation with the lock held
func (o *orchestrator) automatedTurn() {
	if o.battle == nil {
		return
	}
	out, err := o.engine.AutomatedTurn(o.ctx, &engine.AutomatedTurnInput{Battle: o.battle.battle})
	if err != nil {
		slog.Error("automated turn failed",
			"session_id", o.session.ID,
			"quest_id", o.battle.quest.ID,
			"error", err)
		o.battle = nil
		o.publish(ChangeBattleAborted)
		return
	}
	o.afterTurn(out)
}

// afterTurn resolves the battle or passes the turn on. It reports whether
// the quest was completed.
func (o *orchestrator) afterTurn(out *engine.ActionOutput) bool {
	if !out.Resolved {
		o.publish(ChangeBattleTurn)
		o.driveAutomated()
		return false
	}
	return o.resolveBattle(out.Outcome)
}

// resolveBattle ends the battle. A loss on a forced-outcome quest still
// advances the story.
func (o *orchestrator) resolveBattle(outcome engine.Outcome) bool {
	active := o.battle
	o.battle = nil

	advance := outcome == engine.OutcomeWin ||
		active.quest.ForcedOutcome == entities.ForcedOutcomeAdvance

	slog.Info("battle resolved",
		"session_id", o.session.ID,
		"quest_id", active.quest.ID,
		"outcome", outcome,
		"rounds", active.battle.Round,
		"advance", advance)

	if !advance {
		o.publish(ChangeBattleLost)
		return false
	}
	o.finishQuest(active.quest, true)
	return true
}

// ChooseCombatAction plays the player's turn
func (o *orchestrator) ChooseCombatAction(ctx context.Context, input *ChooseCombatActionInput) (*ChooseCombatActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.checkReady(); err != nil {
		return nil, err
	}

	action := engine.Action{Kind: input.Kind, TargetHint: input.TargetHint}
	switch input.Kind {
	case engine.ActionAttack, engine.ActionDefend:
	case engine.ActionSkillCard, engine.ActionSupportCard:
		card, err := o.inventoryCard(input.CardIndex)
		if err != nil {
			return nil, err
		}
		action.Card = card
	default:
		return nil, errors.InvalidArgumentf("unknown combat action %q", input.Kind)
	}

	return o.playerAction(ctx, action)
}

// playerAction hands the player's move to the engine. Callers hold the lock.
func (o *orchestrator) playerAction(ctx context.Context, action engine.Action) (*ChooseCombatActionOutput, error) {
	if o.battle == nil {
		return nil, errors.FailedPrecondition("no battle in progress")
	}
	b := o.battle.battle

	out, err := o.engine.PlayerAction(ctx, &engine.PlayerActionInput{Battle: b, Action: action})
	if err != nil {
		return nil, err
	}

	completed := o.afterTurn(out)
	return &ChooseCombatActionOutput{
		Entry:          out.Entry,
		Resolved:       out.Resolved,
		Outcome:        out.Outcome,
		QuestCompleted: completed,
		Battle:         b.Clone(),
	}, nil
}

func (o *orchestrator) inventoryCard(index int) (*entities.Card, error) {
	if index < 0 || index >= len(o.session.Inventory) {
		return nil, errors.InvalidCardUsef("no card at inventory slot %d", index)
	}
	return o.session.Inventory[index], nil
}
