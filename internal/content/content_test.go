package content_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/questline/internal/content"
	"github.com/KirkDiggler/questline/internal/entities"
	"github.com/KirkDiggler/questline/internal/errors"
)

type ContentTestSuite struct {
	suite.Suite
}

func TestContentSuite(t *testing.T) {
	suite.Run(t, new(ContentTestSuite))
}

func (s *ContentTestSuite) TestLoadEmbeddedFeed() {
	feed, err := content.Load(content.Options{})
	s.Require().NoError(err)
	s.Require().NotEmpty(feed.Quests)

	for i := 1; i < len(feed.Quests); i++ {
		s.Less(feed.Quests[i-1].ID, feed.Quests[i].ID)
	}

	twin, ok := feed.Quest(250)
	s.Require().True(ok)
	s.Len(twin.Bosses, 2)

	choice, ok := feed.Quest(199)
	s.Require().True(ok)
	s.True(choice.HasChoice)
	ryu, ok := choice.Choice("ryu")
	s.Require().True(ok)
	s.True(ryu.EndsGame)
	jaeha, ok := choice.Choice("jaeha")
	s.Require().True(ok)
	s.Require().Len(jaeha.Rewards, 1)
	s.Equal(entities.RewardSpecial, jaeha.Rewards[0].Kind)
	s.Equal(entities.EffectPassive, jaeha.Rewards[0].Effect.Kind)

	ryuFight, ok := feed.Quest(200)
	s.Require().True(ok)
	s.Equal(entities.ForcedOutcomeAdvance, ryuFight.ForcedOutcome)
	s.Equal(entities.Tier(100), ryuFight.Boss.Strength())

	awaken, ok := feed.Quest(180)
	s.Require().True(ok)
	s.Require().NotNil(awaken.Milestone)
	s.Equal(entities.BreakthroughAwakened, awaken.Milestone.Level)

	hajun, ok := feed.Quest(100)
	s.Require().True(ok)
	s.Equal(entities.TierD, hajun.Boss.Strength())
	s.Equal(entities.TierC, hajun.Boss.Speed())
	recruit := hajun.Rewards[1].Effect.Recruit
	s.Require().NotNil(recruit)
	s.Equal("Gu Hajun", recruit.Name)

	gukja, ok := feed.Quest(101)
	s.Require().True(ok)
	cultivation := gukja.Rewards[1].Effect
	s.Equal(entities.EffectCultivation, cultivation.Kind)
	s.Equal(entities.StatStrength, cultivation.Stat)
	s.Equal(entities.RarityGold.CultivationLevel(), cultivation.Amount)
}

func (s *ContentTestSuite) TestLoadFromPath() {
	path := filepath.Join(s.T().TempDir(), "feed.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(`
quests:
  - id: 1
    name: Start
    points: 10
  - id: 2
    name: Fight
    prerequisites: [1]
    boss: { name: Bully, stats: [E, E, E] }
    minions:
      - { name: Lackey, stats: [0, 0, 0] }
`), 0o600))

	feed, err := content.Load(content.Options{Path: path})
	s.Require().NoError(err)
	s.Equal(2, feed.Len())

	fight, _ := feed.Quest(2)
	s.Empty(fight.Minions)
	s.True(fight.IsBossQuest())
}

func (s *ContentTestSuite) TestLoadMissingFile() {
	_, err := content.Load(content.Options{Path: filepath.Join(s.T().TempDir(), "missing.yaml")})
	s.Error(err)
}

func (s *ContentTestSuite) TestParseRejectsBadFeeds() {
	testCases := []struct {
		name string
		yaml string
	}{
		{name: "empty", yaml: "quests: []"},
		{name: "not yaml", yaml: "quests: [:"},
		{name: "bad tier", yaml: "quests:\n  - id: 1\n    boss: { name: X, stats: [Q, E, E] }"},
		{name: "bad reward type", yaml: "quests:\n  - id: 1\n    rewards:\n      - { type: gem, name: X, effect: strength+1 }"},
		{name: "recruit without block", yaml: "quests:\n  - id: 1\n    rewards:\n      - { type: special, name: X, effect: crew_member_x }"},
		{name: "bad milestone", yaml: "quests:\n  - id: 1\n    milestone: { level: godlike, title: X }"},
		{name: "no id", yaml: "quests:\n  - name: Nameless"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := content.Parse([]byte(tc.yaml))
			s.Error(err)
		})
	}
}

func (s *ContentTestSuite) TestParseKeepsFirstDuplicate() {
	quests, err := content.Parse([]byte(`
quests:
  - { id: 1, name: First }
  - { id: 1, name: Second }
  - { id: 2, name: Other }
`))
	s.Require().NoError(err)
	s.Require().Len(quests, 2)
	s.Equal("First", quests[0].Name)
}

func (s *ContentTestSuite) TestNewFeedValidatesReferences() {
	testCases := []struct {
		name   string
		quests []*entities.Quest
	}{
		{
			name:   "unknown prerequisite",
			quests: []*entities.Quest{{ID: 2, Prerequisites: []int{1}}},
		},
		{
			name: "three bosses",
			quests: []*entities.Quest{{ID: 1, Bosses: []entities.Enemy{
				{Name: "a"}, {Name: "b"}, {Name: "c"},
			}}},
		},
		{
			name:   "choice quest without options",
			quests: []*entities.Quest{{ID: 1, HasChoice: true}},
		},
		{
			name:   "requires choice of a plain quest",
			quests: []*entities.Quest{{ID: 1}, {ID: 2, RequiresChoiceOf: 1}},
		},
		{
			name:   "forced outcome without battle",
			quests: []*entities.Quest{{ID: 1, ForcedOutcome: entities.ForcedOutcomeAdvance}},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := content.NewFeed(tc.quests, nil)
			s.True(errors.IsInvalidArgument(err), "got %v", err)
		})
	}
}
