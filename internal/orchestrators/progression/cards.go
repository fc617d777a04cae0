package progression

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/KirkDiggler/questline/internal/engine"
	"github.com/KirkDiggler/questline/internal/entities"
	"github.com/KirkDiggler/questline/internal/errors"
	"github.com/KirkDiggler/questline/internal/progression/accumulator"
	"github.com/KirkDiggler/questline/internal/progression/statcap"
)

// UseInventoryCard applies or plays the card at the given slot
func (o *orchestrator) UseInventoryCard(ctx context.Context, input *UseInventoryCardInput) (*UseInventoryCardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.checkReady(); err != nil {
		return nil, err
	}
	card, err := o.inventoryCard(input.Index)
	if err != nil {
		return nil, err
	}

	out := &UseInventoryCardOutput{Card: card.Clone()}
	switch card.Kind {
	case entities.RewardSkill, entities.RewardSupport:
		kind := engine.ActionSkillCard
		if card.Kind == entities.RewardSupport {
			kind = engine.ActionSupportCard
		}
		if o.battle == nil {
			return nil, errors.InvalidCardUsef("%s can only be played in battle", card.Name)
		}
		combat, err := o.playerAction(ctx, engine.Action{Kind: kind, Card: card})
		if err != nil {
			return nil, err
		}
		out.Combat = combat

	case entities.RewardStat:
		if err := o.useStatCard(card, input.Choice); err != nil {
			return nil, err
		}
		out.Consumed = true

	case entities.RewardCultivation:
		if err := o.useCultivationCard(card, input.Choice); err != nil {
			return nil, err
		}
		out.Consumed = true

	default:
		return nil, errors.InvalidCardUsef("%s is a passive card", card.Name)
	}

	if out.Consumed {
		o.session.RemoveCard(input.Index)
		slog.Info("card used",
			"session_id", o.session.ID,
			"card", card.Name,
			"kind", card.Kind,
			"choice", input.Choice)
		o.publish(ChangeCardUsed)
	}

	out.Session = o.session.Clone()
	return out, nil
}

// useStatCard allocates a stat card. Single-stat cards go to the chosen
// stat; all-stat and non-unit cards ignore the choice.
func (o *orchestrator) useStatCard(card *entities.Card, choice string) error {
	var chosen entities.Stat
	switch card.Effect.Kind {
	case entities.EffectStatGrant, entities.EffectRandomStat:
		if choice != "" {
			stat, err := entities.ParseStat(strings.ToLower(choice))
			if err != nil {
				return errors.InvalidArgumentf("unknown stat %q", choice)
			}
			chosen = stat
		}
	}

	c := o.session.Character
	o.applyStatEffect(c, card.Effect, chosen, o.capFor(statcap.TargetPlayer, 0))
	c.RefreshVitals()
	return nil
}

// useCultivationCard trains a crew member. The card is kept when the
// member is already at the crew cap for the stat.
func (o *orchestrator) useCultivationCard(card *entities.Card, choice string) error {
	idx, err := strconv.Atoi(strings.TrimSpace(choice))
	if err != nil || idx < 0 || idx >= len(o.session.Crew) {
		return errors.InvalidCardUsef("%s needs a crew member, got %q", card.Name, choice)
	}
	member := o.session.Crew[idx]

	stat := card.Effect.Stat
	if stat == "" {
		return errors.InvalidCardUsef("%s has no stat to train", card.Name)
	}

	limit := o.capFor(statcap.TargetCrew, 0)
	if member.Stats.Tier(stat) >= limit {
		return errors.InvalidCardUsef("%s is already at the %s cap for %s", member.Name, limit.Label(), stat).
			WithMeta("crew", member.Name)
	}

	units := card.Effect.Amount
	if units <= 0 {
		units = card.Rarity.CultivationLevel()
	}
	res := accumulator.ApplyUnits(&member.Stats, stat, units, limit)

	slog.Info("crew member trained",
		"session_id", o.session.ID,
		"crew", member.Name,
		"stat", stat,
		"before", res.Before.Label(),
		"after", res.After.Label(),
		"discarded", res.Discarded)
	return nil
}
