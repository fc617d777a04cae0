package content

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/questline/internal/entities"
	"github.com/KirkDiggler/questline/internal/errors"
)

// document is the top level of a quest feed file
type document struct {
	Quests []questRecord `yaml:"quests"`
}

type questRecord struct {
	ID               int              `yaml:"id"`
	Name             string           `yaml:"name"`
	Arc              int              `yaml:"arc"`
	Points           int              `yaml:"points"`
	Prerequisites    []int            `yaml:"prerequisites"`
	Rewards          []rewardRecord   `yaml:"rewards"`
	Boss             *enemyRecord     `yaml:"boss"`
	Bosses           []enemyRecord    `yaml:"bosses"`
	Minions          []enemyRecord    `yaml:"minions"`
	HasChoice        bool             `yaml:"has_choice"`
	Choices          []choiceRecord   `yaml:"choices"`
	RequiresChoiceOf int              `yaml:"requires_choice_of"`
	CompleteOnLoss   bool             `yaml:"complete_on_loss"`
	Unbeatable       bool             `yaml:"unbeatable"`
	Milestone        *milestoneRecord `yaml:"milestone"`
	Challenge        string           `yaml:"challenge"`
}

type rewardRecord struct {
	Type      string         `yaml:"type"`
	Name      string         `yaml:"name"`
	Rarity    string         `yaml:"rarity"`
	Effect    string         `yaml:"effect"`
	Inventory bool           `yaml:"inventory"`
	StatType  string         `yaml:"stat_type"`
	Level     int            `yaml:"level"`
	Recruit   *recruitRecord `yaml:"recruit"`
}

type recruitRecord struct {
	Name  string   `yaml:"name"`
	Stats statLine `yaml:"stats"`
}

type enemyRecord struct {
	Name  string   `yaml:"name"`
	Stats statLine `yaml:"stats"`
}

type choiceRecord struct {
	ID         string         `yaml:"id"`
	Label      string         `yaml:"label"`
	Rewards    []rewardRecord `yaml:"rewards"`
	EndsGame   bool           `yaml:"ends_game"`
	GrantsCard *rewardRecord  `yaml:"grants_card"`
}

type milestoneRecord struct {
	Level string `yaml:"level"`
	Title string `yaml:"title"`
}

// tierValue accepts either a tier index (off-scale enemies go past DX) or a
// display label such as "SSR".
type tierValue entities.Tier

// UnmarshalYAML implements yaml.Unmarshaler
func (t *tierValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!int" {
		var n int
		if err := node.Decode(&n); err != nil {
			return err
		}
		if n < 0 {
			return errors.InvalidArgumentf("line %d: tier %d is negative", node.Line, n)
		}
		*t = tierValue(n)
		return nil
	}

	tier, ok := entities.ParseTier(strings.ToUpper(node.Value))
	if !ok {
		return errors.InvalidArgumentf("line %d: unknown tier %q", node.Line, node.Value)
	}
	*t = tierValue(tier)
	return nil
}

// statLine is a strength, speed, durability triple
type statLine [entities.StatCount]tierValue

func (l statLine) tiers() [entities.StatCount]entities.Tier {
	var out [entities.StatCount]entities.Tier
	for i, t := range l {
		out[i] = entities.Tier(t)
	}
	return out
}

var milestoneLevels = map[string]entities.BreakthroughLevel{
	"":             entities.BreakthroughNone,
	"none":         entities.BreakthroughNone,
	"awakened":     entities.BreakthroughAwakened,
	"ascendant":    entities.BreakthroughAscendant,
	"transcendent": entities.BreakthroughTranscendent,
}

func (r *questRecord) toQuest() (*entities.Quest, error) {
	if r.ID <= 0 {
		return nil, errors.InvalidArgumentf("quest %q has no positive id", r.Name)
	}

	q := &entities.Quest{
		ID:               r.ID,
		Name:             r.Name,
		Arc:              r.Arc,
		Points:           r.Points,
		Prerequisites:    append([]int(nil), r.Prerequisites...),
		HasChoice:        r.HasChoice,
		RequiresChoiceOf: r.RequiresChoiceOf,
		Challenge:        entities.ChallengeKind(strings.ToLower(r.Challenge)),
	}

	switch q.Challenge {
	case entities.ChallengeNone, entities.ChallengeQTE, entities.ChallengeQuiz, entities.ChallengeTiming:
	default:
		return nil, errors.InvalidArgumentf("quest %d has unknown challenge %q", r.ID, r.Challenge)
	}

	if r.CompleteOnLoss || r.Unbeatable {
		q.ForcedOutcome = entities.ForcedOutcomeAdvance
	}

	var err error
	if q.Rewards, err = toRewards(r.Rewards); err != nil {
		return nil, errors.Wrapf(err, "quest %d", r.ID)
	}

	if r.Boss != nil {
		q.Boss = &entities.Enemy{Name: r.Boss.Name, Stats: r.Boss.Stats.tiers()}
	}
	for _, e := range r.Bosses {
		q.Bosses = append(q.Bosses, entities.Enemy{Name: e.Name, Stats: e.Stats.tiers()})
	}
	for _, e := range r.Minions {
		q.Minions = append(q.Minions, entities.Enemy{Name: e.Name, Stats: e.Stats.tiers()})
	}

	for _, c := range r.Choices {
		choice, err := c.toChoice()
		if err != nil {
			return nil, errors.Wrapf(err, "quest %d", r.ID)
		}
		q.Choices = append(q.Choices, choice)
	}

	if r.Milestone != nil {
		level, ok := milestoneLevels[strings.ToLower(r.Milestone.Level)]
		if !ok {
			return nil, errors.InvalidArgumentf("quest %d has unknown milestone level %q", r.ID, r.Milestone.Level)
		}
		q.Milestone = &entities.Milestone{Level: level, Title: r.Milestone.Title}
	}

	return q, nil
}

func (c *choiceRecord) toChoice() (entities.Choice, error) {
	if c.ID == "" {
		return entities.Choice{}, errors.InvalidArgumentf("choice %q has no id", c.Label)
	}
	rewards, err := toRewards(c.Rewards)
	if err != nil {
		return entities.Choice{}, errors.Wrapf(err, "choice %s", c.ID)
	}
	if c.GrantsCard != nil {
		card := *c.GrantsCard
		if card.Type == "" {
			card.Type = string(entities.RewardSpecial)
		}
		reward, err := card.toReward()
		if err != nil {
			return entities.Choice{}, errors.Wrapf(err, "choice %s", c.ID)
		}
		rewards = append(rewards, reward)
	}
	return entities.Choice{
		ID:       c.ID,
		Label:    c.Label,
		Rewards:  rewards,
		EndsGame: c.EndsGame,
	}, nil
}

func toRewards(records []rewardRecord) ([]entities.Reward, error) {
	var out []entities.Reward
	for i := range records {
		r, err := records[i].toReward()
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func (r *rewardRecord) toReward() (entities.Reward, error) {
	kind := entities.RewardKind(strings.ToLower(r.Type))
	if !kind.Valid() {
		return entities.Reward{}, errors.InvalidArgumentf("reward %q has unknown type %q", r.Name, r.Type)
	}

	rarity := entities.Rarity(strings.ToLower(r.Rarity))
	if rarity == "" {
		rarity = entities.RarityBronze
	}
	if !rarity.Valid() {
		return entities.Reward{}, errors.InvalidArgumentf("reward %q has unknown rarity %q", r.Name, r.Rarity)
	}

	eff, err := ParseEffect(kind, r.Effect)
	if err != nil {
		return entities.Reward{}, errors.Wrapf(err, "reward %q", r.Name)
	}

	switch eff.Kind {
	case entities.EffectCultivation:
		if r.Level > 0 {
			eff.Amount = r.Level
		}
		if eff.Amount == 0 {
			eff.Amount = rarity.CultivationLevel()
		}
		if r.StatType != "" {
			stat, err := entities.ParseStat(strings.ToLower(r.StatType))
			if err != nil {
				return entities.Reward{}, errors.InvalidArgumentf("reward %q has unknown stat type %q", r.Name, r.StatType)
			}
			eff.Stat = stat
		} else if stat, ok := InferStat(r.Name); ok {
			eff.Stat = stat
		}
	case entities.EffectRecruit:
		if r.Recruit == nil || r.Recruit.Name == "" {
			return entities.Reward{}, errors.InvalidArgumentf("reward %q recruits nobody", r.Name)
		}
		eff.Recruit = &entities.Recruit{Name: r.Recruit.Name, Stats: r.Recruit.Stats.tiers()}
	}

	return entities.Reward{
		Kind:      kind,
		Name:      r.Name,
		Rarity:    rarity,
		Effect:    eff,
		Inventory: r.Inventory && kind == entities.RewardStat,
	}, nil
}
