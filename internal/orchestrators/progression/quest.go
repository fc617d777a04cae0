package progression

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/questline/internal/engine"
	"github.com/KirkDiggler/questline/internal/entities"
	"github.com/KirkDiggler/questline/internal/errors"
	"github.com/KirkDiggler/questline/internal/pkg/idgen"
	"github.com/KirkDiggler/questline/internal/pkg/rng"
	"github.com/KirkDiggler/questline/internal/progression/accumulator"
	"github.com/KirkDiggler/questline/internal/progression/breakthrough"
	"github.com/KirkDiggler/questline/internal/progression/statcap"
)

// Progression constants
const (
	// BattleWinBonus is added to the points of a won (or forced) battle
	BattleWinBonus = 100
	// IntelligenceEvery completions raise intelligence by one
	IntelligenceEvery = 25
	// PointsPerPotential quest points raise potential by one
	PointsPerPotential = 50
)

// CompleteQuest attempts a quest
func (o *orchestrator) CompleteQuest(ctx context.Context, input *CompleteQuestInput) (*CompleteQuestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	quest, err := o.checkQuest(input.QuestID)
	if err != nil {
		return nil, err
	}
	crew, err := o.selectCrew(input.Crew)
	if err != nil {
		return nil, err
	}

	slog.Info("quest attempted",
		"session_id", o.session.ID,
		"quest_id", quest.ID,
		"challenge", quest.Challenge,
		"combat", quest.HasCombat(),
		"crew", len(crew))

	if quest.Challenge != entities.ChallengeNone {
		o.challenge = quest
		o.publish(ChangeChallengeStarted)
		return &CompleteQuestOutput{Status: QuestInChallenge, Session: o.session.Clone()}, nil
	}

	return o.proceed(ctx, quest, crew)
}

// checkQuest validates that a quest can be attempted now
func (o *orchestrator) checkQuest(id int) (*entities.Quest, error) {
	if err := o.checkReady(); err != nil {
		return nil, err
	}
	if o.session.Ended {
		return nil, errors.GameEnded("the story has ended").WithMeta("reason", o.session.EndReason)
	}
	if o.battle != nil {
		return nil, errors.FailedPreconditionf("quest %d is being fought", o.battle.quest.ID)
	}
	if o.challenge != nil {
		return nil, errors.FailedPreconditionf("quest %d is waiting on its challenge", o.challenge.ID)
	}

	quest, ok := o.feed.Quest(id)
	if !ok {
		return nil, errors.NotFoundf("quest %d not found", id)
	}
	if o.session.IsQuestCompleted(id) {
		return nil, errors.AlreadyExistsf("quest %d is already completed", id)
	}
	if o.session.PendingChoice != 0 {
		return nil, errors.StoryChoiceRequiredf("quest %d is waiting for a story choice", o.session.PendingChoice)
	}
	for _, p := range quest.Prerequisites {
		if !o.session.IsQuestCompleted(p) {
			return nil, errors.PrerequisiteNotMetf("quest %d requires quest %d", id, p).
				WithMeta("missing", p)
		}
	}
	if src := quest.RequiresChoiceOf; src != 0 && o.session.Choices[src] == "" {
		return nil, errors.StoryChoiceRequiredf("quest %d requires the choice of quest %d", id, src)
	}
	return quest, nil
}

// selectCrew resolves the crew members picked for a battle. Every index
// must name a distinct member and at most engine.MaxCrew may fight.
func (o *orchestrator) selectCrew(picks []int) ([]engine.CrewParticipant, error) {
	if len(picks) > engine.MaxCrew {
		return nil, errors.InvalidArgumentf("at most %d crew members may fight, got %d", engine.MaxCrew, len(picks))
	}
	seen := make(map[int]bool, len(picks))
	crew := make([]engine.CrewParticipant, 0, len(picks))
	for _, idx := range picks {
		if idx < 0 || idx >= len(o.session.Crew) {
			return nil, errors.InvalidArgumentf("crew member %d does not exist", idx).WithMeta("crew", idx)
		}
		if seen[idx] {
			return nil, errors.InvalidArgumentf("crew member %d is picked twice", idx).WithMeta("crew", idx)
		}
		seen[idx] = true
		crew = append(crew, engine.CrewParticipant{Index: idx, Member: o.session.Crew[idx]})
	}
	return crew, nil
}

// proceed starts the quest's battle or completes it outright
func (o *orchestrator) proceed(ctx context.Context, quest *entities.Quest, crew []engine.CrewParticipant) (*CompleteQuestOutput, error) {
	if quest.HasCombat() {
		b, err := o.startBattle(ctx, quest, crew)
		if err != nil {
			return nil, err
		}
		return &CompleteQuestOutput{Status: QuestInBattle, Battle: b, Session: o.session.Clone()}, nil
	}

	o.finishQuest(quest, false)
	return &CompleteQuestOutput{
		Status:    QuestCompleted,
		Session:   o.session.Clone(),
		Suspended: o.pending > 0,
	}, nil
}

// finishQuest records completion, grants rewards and settles the quest
func (o *orchestrator) finishQuest(quest *entities.Quest, battleWon bool) {
	s := o.session
	s.Completed[quest.ID] = true
	s.CompletedCount++
	s.Points += quest.Points
	if battleWon {
		s.Points += BattleWinBonus
	}

	c := s.Character
	if s.CompletedCount%IntelligenceEvery == 0 {
		c.Intelligence = min(c.Intelligence+1, entities.IntelligenceMax)
	}
	if gain := quest.Points / PointsPerPotential; gain > 0 {
		c.Potential = min(c.Potential+entities.Tier(gain), entities.PotentialMax)
	}

	rewards := append(append([]entities.Reward(nil), quest.Rewards...), quest.RangeRewards...)
	s.Queued = append(s.Queued, o.grantRewards(rewards)...)

	slog.Info("quest completed",
		"session_id", s.ID,
		"quest_id", quest.ID,
		"points", s.Points,
		"battle_won", battleWon,
		"queued_rewards", len(s.Queued))

	if quest.HasChoice {
		s.PendingChoice = quest.ID
		o.publish(ChangeChoicePending)
		return
	}

	o.publish(ChangeQuestCompleted)
	o.settle(quest)
}

// grantRewards applies the rewards that take effect at once and returns
// the ones that wait for settlement: stat rewards and breakthrough triggers.
// Triggers and recruits also stay in the inventory as passive cards.
func (o *orchestrator) grantRewards(rewards []entities.Reward) []entities.Reward {
	var queued []entities.Reward
	for _, r := range rewards {
		switch {
		case r.Kind == entities.RewardStat && !r.Inventory:
			queued = append(queued, r)
			continue
		case r.Effect.Kind == entities.EffectBreakthrough:
			queued = append(queued, r)
		case r.Effect.Kind == entities.EffectRecruit:
			o.recruit(r)
		case r.Kind == entities.RewardCultivation && r.Effect.Stat == "":
			stat, err := o.rollStat()
			if err != nil {
				slog.Error("failed to roll cultivation stat", "session_id", o.session.ID, "card", r.Name, "error", err)
				continue
			}
			r.Effect.Stat = stat
		}
		o.session.Inventory = append(o.session.Inventory, &entities.Card{
			ID:     o.newID(idgen.PrefixCard),
			Reward: r,
		})
	}
	return queued
}

func (o *orchestrator) rollStat() (entities.Stat, error) {
	idx, err := rng.Index(o.roller, entities.StatCount)
	if err != nil {
		return "", err
	}
	return entities.AllStats[idx], nil
}

func (o *orchestrator) recruit(r entities.Reward) {
	rec := r.Effect.Recruit
	if rec == nil || o.session.HasCrewMember(rec.Name) {
		return
	}
	o.session.Crew = append(o.session.Crew, &entities.CrewMember{
		Name:  rec.Name,
		Stats: entities.StatBlock{Tiers: rec.Stats},
	})
	slog.Info("crew member joined", "session_id", o.session.ID, "name", rec.Name)
}

// settle shows the milestone's breakthrough overlay and then applies the
// queued rewards. Without a milestone they apply at once.
func (o *orchestrator) settle(quest *entities.Quest) {
	if quest.Milestone == nil {
		o.applyQueued(quest.ID, entities.BreakthroughNone)
		return
	}

	milestone := quest.Milestone
	o.overlay = milestone.Title
	slog.Info("breakthrough overlay shown",
		"session_id", o.session.ID,
		"quest_id", quest.ID,
		"title", milestone.Title,
		"level", milestone.Level.String())
	o.publish(ChangeBreakthrough)

	o.schedule(o.breakthroughDelay, func() {
		o.overlay = ""
		o.applyQueued(quest.ID, milestone.Level)
	})
}

// grantBreakthrough applies the lump grant of a level. Only a milestone
// raises the character's breakthrough level; triggers grant the units alone.
func (o *orchestrator) grantBreakthrough(questID int, level entities.BreakthroughLevel, milestone bool) {
	if !level.Valid() {
		return
	}
	c := o.session.Character
	if milestone {
		c.Breakthrough = max(c.Breakthrough, level)
	}

	_, err := o.breakthrough.Apply(&breakthrough.ApplyInput{
		Level:     level,
		Character: c,
		Applied:   o.session.BreakthroughApplied,
		Cap:       o.capFor(statcap.TargetPlayer, questID),
	})
	if err != nil {
		slog.Error("breakthrough failed", "session_id", o.session.ID, "level", level.String(), "error", err)
	}
}

// applyQueued runs the queued breakthrough triggers, then the milestone,
// then drains the queued stat rewards through the accumulator
func (o *orchestrator) applyQueued(questID int, milestone entities.BreakthroughLevel) {
	queued := o.session.Queued
	o.session.Queued = nil
	if len(queued) == 0 && !milestone.Valid() {
		return
	}

	c := o.session.Character
	for _, r := range queued {
		if r.Effect.Kind == entities.EffectBreakthrough {
			o.grantBreakthrough(questID, r.Effect.Level, false)
		}
	}
	o.grantBreakthrough(questID, milestone, true)

	limit := o.capFor(statcap.TargetPlayer, questID)
	for _, r := range queued {
		if r.Effect.Kind == entities.EffectBreakthrough {
			continue
		}
		o.applyStatEffect(c, r.Effect, "", limit)
	}
	c.RefreshVitals()

	slog.Info("rewards applied",
		"session_id", o.session.ID,
		"quest_id", questID,
		"count", len(queued),
		"cap", limit.Label())
	o.publish(ChangeRewardsApplied)
}

// applyStatEffect grants one stat effect to the character. chosen picks the
// stat of a single-stat card; empty keeps the effect's own stat.
func (o *orchestrator) applyStatEffect(c *entities.Character, eff entities.Effect, chosen entities.Stat, limit entities.Tier) []accumulator.Result {
	var results []accumulator.Result
	switch eff.Kind {
	case entities.EffectStatGrant:
		stat := eff.Stat
		if chosen != "" {
			stat = chosen
		}
		results = append(results, accumulator.ApplyUnits(&c.Stats, stat, eff.Amount, limit))
	case entities.EffectAllStats:
		for _, stat := range entities.AllStats {
			results = append(results, accumulator.ApplyUnits(&c.Stats, stat, eff.Amount, limit))
		}
	case entities.EffectRandomStat:
		stat := chosen
		if stat == "" {
			rolled, err := o.rollStat()
			if err != nil {
				slog.Error("failed to roll random stat", "session_id", o.session.ID, "error", err)
				return nil
			}
			stat = rolled
		}
		results = append(results, accumulator.ApplyUnits(&c.Stats, stat, eff.Amount, limit))
	case entities.EffectPotential:
		if eff.Full {
			c.Potential = entities.PotentialMax
		} else {
			c.Potential = min(c.Potential+entities.Tier(eff.Amount), entities.PotentialMax)
		}
	case entities.EffectIntelligence:
		c.Intelligence = min(c.Intelligence+entities.Tier(eff.Amount), entities.IntelligenceMax)
	}
	return results
}

// MakeStoryChoice settles a branching quest
func (o *orchestrator) MakeStoryChoice(_ context.Context, input *MakeStoryChoiceInput) (*MakeStoryChoiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.checkReady(); err != nil {
		return nil, err
	}
	if o.session.PendingChoice == 0 {
		return nil, errors.FailedPrecondition("no story choice is pending")
	}
	if input.QuestID != o.session.PendingChoice {
		return nil, errors.InvalidArgumentf("quest %d is the one waiting for a choice, not %d", o.session.PendingChoice, input.QuestID)
	}
	quest, ok := o.feed.Quest(input.QuestID)
	if !ok {
		return nil, errors.NotFoundf("quest %d not found", input.QuestID)
	}
	choice, ok := quest.Choice(input.OptionID)
	if !ok {
		return nil, errors.InvalidArgumentf("quest %d has no option %q", quest.ID, input.OptionID)
	}

	s := o.session
	s.Choices[quest.ID] = choice.ID
	s.PendingChoice = 0
	s.Queued = append(s.Queued, o.grantRewards(choice.Rewards)...)

	slog.Info("story choice made",
		"session_id", s.ID,
		"quest_id", quest.ID,
		"option", choice.ID,
		"ends_game", choice.EndsGame)

	if choice.EndsGame {
		s.Ended = true
		s.EndReason = choice.Label
		o.publish(ChangeGameEnded)
	} else {
		o.publish(ChangeStoryChoice)
	}

	o.settle(quest)

	return &MakeStoryChoiceOutput{
		Choice:    choice,
		Ended:     s.Ended,
		Suspended: o.pending > 0,
		Session:   s.Clone(),
	}, nil
}

// ResolveChallenge continues or abandons the quest behind the mini-game
func (o *orchestrator) ResolveChallenge(ctx context.Context, input *ResolveChallengeInput) (*ResolveChallengeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.checkReady(); err != nil {
		return nil, err
	}
	quest := o.challenge
	if quest == nil {
		return nil, errors.FailedPrecondition("no challenge is pending")
	}
	crew, err := o.selectCrew(input.Crew)
	if err != nil {
		return nil, err
	}

	slog.Info("challenge resolved",
		"session_id", o.session.ID,
		"quest_id", quest.ID,
		"success", input.Success)

	out := &ResolveChallengeOutput{QuestID: quest.ID}
	if !input.Success {
		o.challenge = nil
		o.publish(ChangeChallengeFailed)
		return out, nil
	}

	o.challenge = nil
	result, err := o.proceed(ctx, quest, crew)
	if err != nil {
		o.challenge = quest
		return nil, err
	}
	out.Quest = result
	return out, nil
}

// CancelChallenge drops the pending challenge without side effects
func (o *orchestrator) CancelChallenge(_ context.Context, _ *CancelChallengeInput) (*CancelChallengeOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.challenge == nil {
		return nil, errors.FailedPrecondition("no challenge is pending")
	}
	id := o.challenge.ID
	o.challenge = nil

	slog.Info("challenge canceled", "session_id", o.session.ID, "quest_id", id)
	return &CancelChallengeOutput{QuestID: id}, nil
}
