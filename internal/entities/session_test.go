package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/questline/internal/entities"
)

type SessionTestSuite struct {
	suite.Suite
	session *entities.Session
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func (s *SessionTestSuite) SetupTest() {
	s.session = entities.NewSession("sess_1", entities.NewCharacter("char_1", "MC"), time.Unix(1700000000, 0))
}

func (s *SessionTestSuite) TestNewCharacterBaseline() {
	c := s.session.Character
	s.Assert().Equal(entities.TierE, c.Stats.Strength())
	s.Assert().Equal(entities.TierE, c.Stats.Speed())
	s.Assert().Equal(entities.TierE, c.Stats.Durability())
	s.Assert().Equal(150+2*20, c.MaxHP)
	s.Assert().Equal(c.MaxHP, c.HP)
	s.Assert().Equal(entities.BreakthroughNone, c.Breakthrough)
}

func (s *SessionTestSuite) TestHighestCompletedQuest() {
	s.Assert().Equal(0, s.session.HighestCompletedQuest())

	s.session.Completed[12] = true
	s.session.Completed[180] = true
	s.session.Completed[40] = true
	s.Assert().Equal(180, s.session.HighestCompletedQuest())
	s.Assert().Equal([]int{12, 40, 180}, s.session.CompletedQuestIDs())
}

func (s *SessionTestSuite) TestCloneIsDeep() {
	s.session.Crew = append(s.session.Crew, &entities.CrewMember{Name: "Yang Gukja"})
	s.session.Inventory = append(s.session.Inventory, &entities.Card{
		ID: "card_1",
		Reward: entities.Reward{
			Kind: entities.RewardSpecial,
			Effect: entities.Effect{
				Kind:    entities.EffectRecruit,
				Recruit: &entities.Recruit{Name: "Gu Hajun"},
			},
		},
	})
	s.session.Completed[1] = true

	clone := s.session.Clone()
	clone.Character.Stats.SetTier(entities.StatStrength, entities.TierS)
	clone.Crew[0].Name = "changed"
	clone.Inventory[0].Effect.Recruit.Name = "changed"
	clone.Completed[2] = true

	s.Assert().Equal(entities.TierE, s.session.Character.Stats.Strength())
	s.Assert().Equal("Yang Gukja", s.session.Crew[0].Name)
	s.Assert().Equal("Gu Hajun", s.session.Inventory[0].Effect.Recruit.Name)
	s.Assert().False(s.session.IsQuestCompleted(2))
}

func (s *SessionTestSuite) TestCardLookupAndRemoval() {
	s.session.Inventory = []*entities.Card{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	s.Assert().Equal(1, s.session.CardIndex("b"))
	s.Assert().Equal(-1, s.session.CardIndex("z"))

	s.session.RemoveCard(1)
	s.Assert().Equal(-1, s.session.CardIndex("b"))
	s.Assert().Len(s.session.Inventory, 2)
}
