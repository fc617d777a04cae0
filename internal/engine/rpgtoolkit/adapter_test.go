package rpgtoolkit

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/questline/internal/engine"
	"github.com/KirkDiggler/questline/internal/entities"
	"github.com/KirkDiggler/questline/internal/errors"
)

// maxRoll always lands on the top face of the die being rolled
const maxRoll = 1 << 30

type AdapterTestSuite struct {
	suite.Suite
	bus     *recordingEventBus
	roller  *scriptedRoller
	adapter *Adapter
	ctx     context.Context
}

func TestAdapterSuite(t *testing.T) {
	suite.Run(t, new(AdapterTestSuite))
}

func (s *AdapterTestSuite) SetupTest() {
	s.bus = &recordingEventBus{}
	s.roller = &scriptedRoller{}
	s.ctx = context.Background()

	adapter, err := NewAdapter(&AdapterConfig{
		EventBus:   s.bus,
		DiceRoller: s.roller,
	})
	s.Require().NoError(err)
	s.adapter = adapter
}

func (s *AdapterTestSuite) hero(str, spd, dur entities.Tier) *entities.Character {
	c := entities.NewCharacter("char_1", "Jin")
	c.Stats.Tiers = [entities.StatCount]entities.Tier{str, spd, dur}
	return c
}

func (s *AdapterTestSuite) setup(quest *entities.Quest, hero *entities.Character, crew ...engine.CrewParticipant) *engine.Battle {
	out, err := s.adapter.Setup(s.ctx, &engine.SetupInput{
		BattleID:  "battle_1",
		Quest:     quest,
		Character: hero,
		Crew:      crew,
	})
	s.Require().NoError(err)
	return out.Battle
}

// giveTurn hands the turn to the combatant with the given ID
func (s *AdapterTestSuite) giveTurn(b *engine.Battle, id string) {
	for i, idx := range b.TurnOrder {
		if b.Combatants[idx].ID == id {
			b.CurrentIndex = i
			return
		}
	}
	s.FailNow("no combatant " + id)
}

func bossQuest() *entities.Quest {
	return &entities.Quest{
		ID:   10,
		Name: "Rooftop Duel",
		Boss: &entities.Enemy{Name: "Taesan", Stats: [3]entities.Tier{entities.TierC, entities.TierF, entities.TierC}},
	}
}

func (s *AdapterTestSuite) TestCalculateDamageVarianceRange() {
	input := &engine.DamageInput{Attacker: entities.TierA, Defender: entities.TierC}

	s.roller.queue(1)
	low, err := s.adapter.CalculateDamage(input)
	s.Require().NoError(err)

	s.roller.queue(maxRoll)
	high, err := s.adapter.CalculateDamage(input)
	s.Require().NoError(err)

	// base 6x2-4 = 8, variance 5.6 to 10.4
	s.Equal(6, low)
	s.Equal(10, high)
}

func (s *AdapterTestSuite) TestCalculateDamageSkillAndBonus() {
	s.roller.queue(1)
	dmg, err := s.adapter.CalculateDamage(&engine.DamageInput{
		Attacker: entities.TierA,
		Defender: entities.TierC,
		Skill:    true,
		Bonus:    5,
	})
	s.Require().NoError(err)
	// 8 x 1.5 = 12, low end 8.4 rounds to 8
	s.Equal(13, dmg)
}

func (s *AdapterTestSuite) TestCalculateDamageNeverBelowOne() {
	for _, roll := range []int{1, maxRoll} {
		s.roller.queue(roll)
		dmg, err := s.adapter.CalculateDamage(&engine.DamageInput{
			Attacker: entities.TierF,
			Defender: entities.TierDX,
		})
		s.Require().NoError(err)
		s.Equal(1, dmg)
	}
}

func (s *AdapterTestSuite) TestSetupPublishesAndOrdersBySpeed() {
	quest := &entities.Quest{
		ID:   20,
		Name: "Alley Wave",
		Minions: []entities.Enemy{
			{Name: "Thug", Stats: [3]entities.Tier{entities.TierE, entities.TierD, entities.TierE}},
			{Name: "Thug", Stats: [3]entities.Tier{entities.TierE, entities.TierB, entities.TierE}},
			{Name: "Thug", Stats: [3]entities.Tier{entities.TierE, entities.TierF, entities.TierE}},
			{Name: "Thug", Stats: [3]entities.Tier{entities.TierE, entities.TierC, entities.TierE}},
		},
	}
	crew := []engine.CrewParticipant{
		{Index: 0, Member: &entities.CrewMember{Name: "Gu Hajun", Stats: entities.NewStatBlock(entities.TierB, entities.TierA, entities.TierB)}},
		{Index: 1, Member: &entities.CrewMember{Name: "Dokgo", Stats: entities.NewStatBlock(entities.TierC, entities.TierE, entities.TierC)}},
		{Index: 2, Member: &entities.CrewMember{Name: "Seo", Stats: entities.NewStatBlock(entities.TierD, entities.TierS, entities.TierD)}},
	}

	b := s.setup(quest, s.hero(entities.TierC, entities.TierC, entities.TierC), crew...)

	s.Equal(engine.TopologyMinionWave, b.Topology)
	s.Equal(engine.StatusInProgress, b.Status)
	s.Equal(1, b.Round)
	s.Require().Len(b.TurnOrder, 8)

	seen := map[int]bool{}
	for i, idx := range b.TurnOrder {
		s.False(seen[idx], "combatant %d appears twice", idx)
		seen[idx] = true
		if i > 0 {
			prev := b.Combatants[b.TurnOrder[i-1]]
			s.GreaterOrEqual(prev.Speed().Value(), b.Combatants[idx].Speed().Value())
		}
	}
	s.Equal("crew_2", b.Current().ID)
	s.Equal([]string{EventBattleStarted}, s.bus.types)
}

func (s *AdapterTestSuite) TestDualBossTargetsWeakerBoss() {
	quest := &entities.Quest{
		ID:   30,
		Name: "Twin Heads",
		Bosses: []entities.Enemy{
			{Name: "Left", Stats: [3]entities.Tier{entities.TierC, entities.TierF, entities.TierC}},
			{Name: "Right", Stats: [3]entities.Tier{entities.TierC, entities.TierF, entities.TierC}},
		},
	}
	b := s.setup(quest, s.hero(entities.TierA, entities.TierA, entities.TierC))
	b.Combatant("boss_0").HP = 50
	b.Combatant("boss_1").HP = 10

	s.roller.queue(1)
	out, err := s.adapter.PlayerAction(s.ctx, &engine.PlayerActionInput{
		Battle: b,
		Action: engine.Action{Kind: engine.ActionAttack},
	})
	s.Require().NoError(err)

	s.Equal("boss_1", out.Entry.TargetID)
	s.Equal(6, out.Entry.Damage)
	s.Equal(4, b.Combatant("boss_1").HP)
	s.Equal(50, b.Combatant("boss_0").HP)
	s.False(out.Resolved)
}

func (s *AdapterTestSuite) TestDualBossTargetsSurvivor() {
	quest := &entities.Quest{
		ID: 31,
		Bosses: []entities.Enemy{
			{Name: "Left", Stats: [3]entities.Tier{entities.TierC, entities.TierF, entities.TierC}},
			{Name: "Right", Stats: [3]entities.Tier{entities.TierC, entities.TierF, entities.TierC}},
		},
	}
	b := s.setup(quest, s.hero(entities.TierA, entities.TierA, entities.TierC))
	b.Combatant("boss_1").HP = 0

	s.roller.queue(1)
	out, err := s.adapter.PlayerAction(s.ctx, &engine.PlayerActionInput{
		Battle: b,
		Action: engine.Action{Kind: engine.ActionAttack},
	})
	s.Require().NoError(err)
	s.Equal("boss_0", out.Entry.TargetID)
}

func (s *AdapterTestSuite) TestTargetHintNamesLivingEnemy() {
	quest := &entities.Quest{
		ID: 32,
		Bosses: []entities.Enemy{
			{Name: "Left", Stats: [3]entities.Tier{entities.TierC, entities.TierF, entities.TierC}},
			{Name: "Right", Stats: [3]entities.Tier{entities.TierC, entities.TierF, entities.TierC}},
		},
	}
	b := s.setup(quest, s.hero(entities.TierA, entities.TierA, entities.TierC))
	b.Combatant("boss_1").HP = 10

	s.roller.queue(1)
	out, err := s.adapter.PlayerAction(s.ctx, &engine.PlayerActionInput{
		Battle: b,
		Action: engine.Action{Kind: engine.ActionAttack, TargetHint: "boss_0"},
	})
	s.Require().NoError(err)
	s.Equal("boss_0", out.Entry.TargetID)
}

func (s *AdapterTestSuite) TestGuardHalvesNextHitThenShieldAbsorbs() {
	b := s.setup(bossQuest(), s.hero(entities.TierA, entities.TierA, entities.TierE))
	player := b.Player()

	out, err := s.adapter.PlayerAction(s.ctx, &engine.PlayerActionInput{
		Battle: b,
		Action: engine.Action{Kind: engine.ActionDefend},
	})
	s.Require().NoError(err)
	s.True(player.Guarding)
	s.Equal("boss_0", out.Next.ID)

	// weighted pick 1 is attack, fraction 0 is the low end
	s.roller.queue(1, 1)
	player.Shield = 1
	out, err = s.adapter.AutomatedTurn(s.ctx, &engine.AutomatedTurnInput{Battle: b})
	s.Require().NoError(err)

	// 4x2-2 = 6, low end 4.2 rounds to 4, guarded to 2, shield soaks 1
	s.True(out.Entry.Guarded)
	s.Equal(2, out.Entry.Damage)
	s.Equal(1, out.Entry.Absorbed)
	s.False(player.Guarding)
	s.Equal(0, player.Shield)
	s.Equal(player.MaxHP-1, player.HP)
	s.Equal(2, b.Round)
}

func (s *AdapterTestSuite) TestSkillCardCooldown() {
	b := s.setup(bossQuest(), s.hero(entities.TierA, entities.TierA, entities.TierC))
	card := &entities.Card{ID: "card_1", Reward: entities.Reward{
		Kind:   entities.RewardSkill,
		Name:   "Crushing Palm",
		Effect: entities.Effect{Kind: entities.EffectDamageBonus, Amount: 5},
	}}

	s.roller.queue(1)
	out, err := s.adapter.PlayerAction(s.ctx, &engine.PlayerActionInput{
		Battle: b,
		Action: engine.Action{Kind: engine.ActionSkillCard, Card: card},
	})
	s.Require().NoError(err)
	s.Equal(13, out.Entry.Damage)
	s.False(b.CardReady(card.ID))

	b.CurrentIndex = 0
	bossHP := b.Combatant("boss_0").HP
	_, err = s.adapter.PlayerAction(s.ctx, &engine.PlayerActionInput{
		Battle: b,
		Action: engine.Action{Kind: engine.ActionSkillCard, Card: card},
	})
	s.True(errors.IsInvalidCardUse(err))
	s.Equal(bossHP, b.Combatant("boss_0").HP)

	// the boss turn closes the round and clears the cooldown
	b.CurrentIndex = 1
	s.roller.queue(2)
	_, err = s.adapter.AutomatedTurn(s.ctx, &engine.AutomatedTurnInput{Battle: b})
	s.Require().NoError(err)
	s.True(b.CardReady(card.ID))
}

func (s *AdapterTestSuite) TestSupportCardSingleUse() {
	b := s.setup(bossQuest(), s.hero(entities.TierA, entities.TierA, entities.TierE))
	player := b.Player()
	player.HP = 100
	card := &entities.Card{ID: "card_2", Reward: entities.Reward{
		Kind:   entities.RewardSupport,
		Name:   "Herbal Salve",
		Effect: entities.Effect{Kind: entities.EffectHeal, Amount: 20},
	}}

	out, err := s.adapter.PlayerAction(s.ctx, &engine.PlayerActionInput{
		Battle: b,
		Action: engine.Action{Kind: engine.ActionSupportCard, Card: card},
	})
	s.Require().NoError(err)
	// 20% of 190
	s.Equal(38, out.Entry.Healed)
	s.Equal(138, player.HP)

	b.CurrentIndex = 0
	delete(b.Cooldowns, card.ID)
	_, err = s.adapter.PlayerAction(s.ctx, &engine.PlayerActionInput{
		Battle: b,
		Action: engine.Action{Kind: engine.ActionSupportCard, Card: card},
	})
	s.True(errors.IsInvalidCardUse(err))
}

func (s *AdapterTestSuite) TestSupportShieldPercent() {
	b := s.setup(bossQuest(), s.hero(entities.TierA, entities.TierA, entities.TierE))
	card := &entities.Card{ID: "card_3", Reward: entities.Reward{
		Kind:   entities.RewardSupport,
		Name:   "Iron Skin",
		Effect: entities.Effect{Kind: entities.EffectShield, Amount: 10, Percent: true},
	}}

	out, err := s.adapter.PlayerAction(s.ctx, &engine.PlayerActionInput{
		Battle: b,
		Action: engine.Action{Kind: engine.ActionSupportCard, Card: card},
	})
	s.Require().NoError(err)
	s.Equal(19, out.Entry.Shielded)
	s.Equal(19, b.Player().Shield)
}

func (s *AdapterTestSuite) TestWrongCardKind() {
	b := s.setup(bossQuest(), s.hero(entities.TierA, entities.TierA, entities.TierE))
	card := &entities.Card{ID: "card_4", Reward: entities.Reward{
		Kind:   entities.RewardSupport,
		Name:   "Herbal Salve",
		Effect: entities.Effect{Kind: entities.EffectHeal, Amount: 20},
	}}

	_, err := s.adapter.PlayerAction(s.ctx, &engine.PlayerActionInput{
		Battle: b,
		Action: engine.Action{Kind: engine.ActionSkillCard, Card: card},
	})
	s.True(errors.IsInvalidCardUse(err))

	_, err = s.adapter.PlayerAction(s.ctx, &engine.PlayerActionInput{
		Battle: b,
		Action: engine.Action{Kind: engine.ActionSkillCard},
	})
	s.True(errors.IsInvalidCardUse(err))
}

func (s *AdapterTestSuite) TestTurnOwnership() {
	b := s.setup(bossQuest(), s.hero(entities.TierA, entities.TierA, entities.TierE))

	_, err := s.adapter.AutomatedTurn(s.ctx, &engine.AutomatedTurnInput{Battle: b})
	s.True(errors.IsFailedPrecondition(err))

	b.CurrentIndex = 1
	_, err = s.adapter.PlayerAction(s.ctx, &engine.PlayerActionInput{
		Battle: b,
		Action: engine.Action{Kind: engine.ActionAttack},
	})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *AdapterTestSuite) TestNoLivingTargetSkipsTurn() {
	b := s.setup(bossQuest(), s.hero(entities.TierA, entities.TierA, entities.TierE))
	b.Combatant("boss_0").HP = 0

	out, err := s.adapter.PlayerAction(s.ctx, &engine.PlayerActionInput{
		Battle: b,
		Action: engine.Action{Kind: engine.ActionAttack},
	})
	s.Require().NoError(err)
	s.True(out.Entry.Skipped)
	s.True(out.Resolved)
	s.Equal(engine.OutcomeWin, out.Outcome)
}

func (s *AdapterTestSuite) TestWinPublishesResolution() {
	b := s.setup(bossQuest(), s.hero(entities.TierA, entities.TierA, entities.TierE))
	b.Combatant("boss_0").HP = 1

	s.roller.queue(1)
	out, err := s.adapter.PlayerAction(s.ctx, &engine.PlayerActionInput{
		Battle: b,
		Action: engine.Action{Kind: engine.ActionAttack},
	})
	s.Require().NoError(err)
	s.True(out.Resolved)
	s.Equal(engine.OutcomeWin, out.Outcome)
	s.Nil(out.Next)
	s.Equal([]string{EventBattleStarted, EventActionResolved, EventBattleResolved}, s.bus.types)

	_, err = s.adapter.PlayerAction(s.ctx, &engine.PlayerActionInput{
		Battle: b,
		Action: engine.Action{Kind: engine.ActionAttack},
	})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *AdapterTestSuite) TestLossWhenPlayerFalls() {
	b := s.setup(bossQuest(), s.hero(entities.TierA, entities.TierA, entities.TierE))
	b.Player().HP = 1
	b.CurrentIndex = 1

	s.roller.queue(1, 1)
	out, err := s.adapter.AutomatedTurn(s.ctx, &engine.AutomatedTurnInput{Battle: b})
	s.Require().NoError(err)
	s.True(out.Resolved)
	s.Equal(engine.OutcomeLoss, out.Outcome)
	s.Equal(engine.StatusLost, b.Status)
}

func (s *AdapterTestSuite) TestEnemySkipsFallenCrew() {
	crew := []engine.CrewParticipant{
		{Index: 0, Member: &entities.CrewMember{Name: "Gu Hajun", Stats: entities.NewStatBlock(entities.TierC, entities.TierC, entities.TierC)}},
		{Index: 1, Member: &entities.CrewMember{Name: "Dokgo", Stats: entities.NewStatBlock(entities.TierC, entities.TierC, entities.TierC)}},
	}

	for _, tc := range []struct {
		roll int
		want string
	}{
		{roll: 1, want: "player"},
		{roll: 2, want: "crew_0"},
		{roll: maxRoll, want: "crew_0"},
	} {
		b := s.setup(bossQuest(), s.hero(entities.TierC, entities.TierC, entities.TierC), crew...)
		b.Combatant("crew_1").HP = 0
		s.giveTurn(b, "boss_0")

		s.roller.queue(1, tc.roll, 1)
		out, err := s.adapter.AutomatedTurn(s.ctx, &engine.AutomatedTurnInput{Battle: b})
		s.Require().NoError(err)
		s.Equal(tc.want, out.Entry.TargetID, "roll %d", tc.roll)
		s.Equal(0, b.Combatant("crew_1").HP)
	}
}

func (s *AdapterTestSuite) TestMinionWaveTargetsLivingMinions() {
	quest := &entities.Quest{
		ID:   20,
		Name: "Alley Wave",
		Minions: []entities.Enemy{
			{Name: "Thug", Stats: [3]entities.Tier{entities.TierE, entities.TierF, entities.TierE}},
			{Name: "Thug", Stats: [3]entities.Tier{entities.TierE, entities.TierF, entities.TierE}},
			{Name: "Thug", Stats: [3]entities.Tier{entities.TierE, entities.TierF, entities.TierE}},
		},
	}

	for _, tc := range []struct {
		roll int
		want string
	}{
		{roll: 1, want: "minion_0"},
		{roll: 2, want: "minion_2"},
		{roll: maxRoll, want: "minion_2"},
	} {
		b := s.setup(quest, s.hero(entities.TierC, entities.TierC, entities.TierC))
		b.Combatant("minion_1").HP = 0
		s.giveTurn(b, b.Player().ID)

		s.roller.queue(tc.roll, 1)
		out, err := s.adapter.PlayerAction(s.ctx, &engine.PlayerActionInput{
			Battle: b,
			Action: engine.Action{Kind: engine.ActionAttack},
		})
		s.Require().NoError(err)
		s.Equal(tc.want, out.Entry.TargetID, "roll %d", tc.roll)
		s.Equal(0, b.Combatant("minion_1").HP)
	}
}

func (s *AdapterTestSuite) TestAutomatedTurnWeights() {
	for _, tc := range []struct {
		roll int
		want engine.ActionKind
	}{
		{roll: 1, want: engine.ActionAttack},
		{roll: 2, want: engine.ActionAttack},
		{roll: 3, want: engine.ActionAttack},
		{roll: 4, want: engine.ActionDefend},
		{roll: 5, want: engine.ActionSkill},
	} {
		b := s.setup(bossQuest(), s.hero(entities.TierA, entities.TierA, entities.TierA))
		s.giveTurn(b, "boss_0")
		hp := b.Player().HP

		s.roller.queue(tc.roll)
		if tc.want != engine.ActionDefend {
			s.roller.queue(1)
		}
		out, err := s.adapter.AutomatedTurn(s.ctx, &engine.AutomatedTurnInput{Battle: b})
		s.Require().NoError(err)
		s.Equal(tc.want, out.Entry.Action, "roll %d", tc.roll)

		boss := b.Combatant("boss_0")
		if tc.want == engine.ActionDefend {
			s.True(boss.Guarding)
			s.Equal(hp, b.Player().HP)
		} else {
			s.False(boss.Guarding)
			s.Less(b.Player().HP, hp)
		}
		s.Empty(s.roller.values)
	}
}

func TestNewAdapter(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		adapter, err := NewAdapter(nil)
		assert.Error(t, err)
		assert.Nil(t, adapter)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "config is required")
	})

	t.Run("missing event bus", func(t *testing.T) {
		adapter, err := NewAdapter(&AdapterConfig{})
		assert.Error(t, err)
		assert.Nil(t, adapter)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "event bus is required")
	})

	t.Run("missing dice roller", func(t *testing.T) {
		adapter, err := NewAdapter(&AdapterConfig{EventBus: &recordingEventBus{}})
		assert.Error(t, err)
		assert.Nil(t, adapter)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "dice roller is required")
	})

	t.Run("valid config", func(t *testing.T) {
		adapter, err := NewAdapter(&AdapterConfig{
			EventBus:   &recordingEventBus{},
			DiceRoller: &scriptedRoller{},
		})
		assert.NoError(t, err)
		assert.NotNil(t, adapter)
	})
}

// recordingEventBus keeps the type of every published event
type recordingEventBus struct {
	types []string
}

func (s *recordingEventBus) Publish(_ context.Context, e events.Event) error {
	s.types = append(s.types, e.Type())
	return nil
}
func (s *recordingEventBus) Subscribe(_ string, _ events.Handler) string { return "sub-id" }
func (s *recordingEventBus) SubscribeFunc(_ string, _ int, _ events.HandlerFunc) string {
	return "sub-id"
}
func (s *recordingEventBus) Unsubscribe(_ string) error { return nil }
func (s *recordingEventBus) Clear(_ string)             {}
func (s *recordingEventBus) ClearAll()                  {}

// scriptedRoller returns queued values clamped to the die size, then 1s
type scriptedRoller struct {
	values []int
}

func (r *scriptedRoller) queue(values ...int) {
	r.values = append(r.values, values...)
}

func (r *scriptedRoller) Roll(size int) (int, error) {
	if len(r.values) == 0 {
		return 1, nil
	}
	v := r.values[0]
	r.values = r.values[1:]
	return min(v, size), nil
}

func (r *scriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i], _ = r.Roll(size)
	}
	return out, nil
}
