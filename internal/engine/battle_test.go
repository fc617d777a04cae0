package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/questline/internal/engine"
	"github.com/KirkDiggler/questline/internal/entities"
	"github.com/KirkDiggler/questline/internal/errors"
)

type BattleTestSuite struct {
	suite.Suite
	hero *entities.Character
}

func TestBattleSuite(t *testing.T) {
	suite.Run(t, new(BattleTestSuite))
}

func (s *BattleTestSuite) SetupTest() {
	s.hero = entities.NewCharacter("char_1", "Jin")
	s.hero.Stats.Tiers = [entities.StatCount]entities.Tier{entities.TierC, entities.TierC, entities.TierC}
}

func enemy(name string, spd entities.Tier) entities.Enemy {
	return entities.Enemy{Name: name, Stats: [3]entities.Tier{entities.TierD, spd, entities.TierD}}
}

func (s *BattleTestSuite) TestTopologyFor() {
	boss := enemy("Boss", entities.TierC)

	t, err := engine.TopologyFor(&entities.Quest{ID: 1, Boss: &boss})
	s.Require().NoError(err)
	s.Equal(engine.TopologyBoss, t)

	t, err = engine.TopologyFor(&entities.Quest{ID: 2, Bosses: []entities.Enemy{boss, boss}})
	s.Require().NoError(err)
	s.Equal(engine.TopologyTwoBoss, t)

	t, err = engine.TopologyFor(&entities.Quest{ID: 3, Minions: []entities.Enemy{boss}})
	s.Require().NoError(err)
	s.Equal(engine.TopologyMinionWave, t)

	// a boss wins over a minion list
	t, err = engine.TopologyFor(&entities.Quest{ID: 4, Boss: &boss, Minions: []entities.Enemy{boss}})
	s.Require().NoError(err)
	s.Equal(engine.TopologyBoss, t)

	_, err = engine.TopologyFor(&entities.Quest{ID: 5, Bosses: []entities.Enemy{boss, boss, boss}})
	s.True(errors.IsInvalidArgument(err))

	_, err = engine.TopologyFor(&entities.Quest{ID: 6})
	s.True(errors.IsInvalidArgument(err))
}

func (s *BattleTestSuite) TestNewBattleRejectsLargeCrew() {
	boss := enemy("Boss", entities.TierC)
	crew := make([]engine.CrewParticipant, engine.MaxCrew+1)
	for i := range crew {
		crew[i] = engine.CrewParticipant{Index: i, Member: &entities.CrewMember{Name: "Ally"}}
	}

	_, err := engine.NewBattle(&engine.SetupInput{Quest: &entities.Quest{ID: 1, Boss: &boss}, Character: s.hero, Crew: crew})
	s.True(errors.IsInvalidArgument(err))
}

func (s *BattleTestSuite) TestAdvanceSkipsDeadAndCountsRounds() {
	b, err := engine.NewBattle(&engine.SetupInput{
		BattleID:  "battle_1",
		Quest:     &entities.Quest{ID: 1, Minions: []entities.Enemy{enemy("Fast", entities.TierS), enemy("Slow", entities.TierF)}},
		Character: s.hero,
	})
	s.Require().NoError(err)
	s.Equal([]string{"minion_0", "player", "minion_1"}, []string{
		b.Combatants[b.TurnOrder[0]].ID,
		b.Combatants[b.TurnOrder[1]].ID,
		b.Combatants[b.TurnOrder[2]].ID,
	})

	b.Status = engine.StatusInProgress
	b.Combatant("minion_1").HP = 0
	b.Cooldowns["card_1"] = 1

	b.Advance()
	s.Equal("player", b.Current().ID)
	s.Equal(1, b.Round)

	b.Advance()
	s.Equal("minion_0", b.Current().ID)
	s.Equal(2, b.Round)
	s.True(b.CardReady("card_1"))
}

func (s *BattleTestSuite) TestApplyHitOrder() {
	target := &engine.Combatant{HP: 50, MaxHP: 50, Shield: 3, Guarding: true}
	b := &engine.Battle{}

	hit := b.ApplyHit(target, 9)
	s.True(hit.Guarded)
	s.Equal(5, hit.Damage)
	s.Equal(3, hit.Absorbed)
	s.Equal(48, target.HP)
	s.False(target.Guarding)

	hit = b.ApplyHit(target, 100)
	s.False(hit.Guarded)
	s.Equal(0, target.HP)
	s.False(target.Alive())
}

func (s *BattleTestSuite) TestCheckResolutionPrefersLoss() {
	boss := enemy("Boss", entities.TierC)
	b, err := engine.NewBattle(&engine.SetupInput{Quest: &entities.Quest{ID: 1, Boss: &boss}, Character: s.hero})
	s.Require().NoError(err)
	b.Status = engine.StatusInProgress

	s.False(b.CheckResolution())

	b.Player().HP = 0
	b.Combatant("boss_0").HP = 0
	s.True(b.CheckResolution())
	s.Equal(engine.OutcomeLoss, b.Outcome())
}

func (s *BattleTestSuite) TestCloneIsDeep() {
	boss := enemy("Boss", entities.TierC)
	b, err := engine.NewBattle(&engine.SetupInput{Quest: &entities.Quest{ID: 1, Boss: &boss}, Character: s.hero})
	s.Require().NoError(err)

	c := b.Clone()
	c.Player().HP = 1
	c.Cooldowns["x"] = 2

	s.NotEqual(1, b.Player().HP)
	s.Empty(b.Cooldowns)
}
