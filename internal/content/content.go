// Package content loads the static quest feed and prepares it for play.
package content

import (
	_ "embed"
	"log/slog"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/questline/internal/entities"
	"github.com/KirkDiggler/questline/internal/errors"
)

//go:embed quests.yaml
var defaultFeed []byte

// Feed is the loaded quest chain in ascending id order
type Feed struct {
	Quests []*entities.Quest
	// StartingRewards are granted when a session starts. Only the boss
	// chain produces them.
	StartingRewards []entities.Reward

	byID map[int]*entities.Quest
}

// Options controls where the feed comes from and how it is reshaped
type Options struct {
	// Path overrides the embedded feed when set
	Path      string
	BossChain bool
	Rebalance bool
}

// Load reads, validates and transforms the feed
func Load(opts Options) (*Feed, error) {
	data := defaultFeed
	if opts.Path != "" {
		b, err := os.ReadFile(opts.Path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read quest feed %s", opts.Path)
		}
		data = b
	}

	quests, err := Parse(data)
	if err != nil {
		return nil, err
	}

	var starting []entities.Reward
	if opts.BossChain {
		quests, starting = BossChain(quests)
	}
	if opts.Rebalance {
		Rebalance(quests, entities.NewCharacter("", "").Stats.Tiers)
	}

	feed, err := NewFeed(quests, starting)
	if err != nil {
		return nil, err
	}

	slog.Info("quest feed loaded",
		"source", sourceName(opts.Path),
		"quests", len(feed.Quests),
		"boss_chain", opts.BossChain,
		"rebalance", opts.Rebalance)

	return feed, nil
}

func sourceName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}

// Parse decodes a YAML feed and removes duplicate ids
func Parse(data []byte) ([]*entities.Quest, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode quest feed")
	}
	if len(doc.Quests) == 0 {
		return nil, errors.InvalidArgument("quest feed is empty")
	}

	quests := make([]*entities.Quest, 0, len(doc.Quests))
	for i := range doc.Quests {
		q, err := doc.Quests[i].toQuest()
		if err != nil {
			return nil, err
		}
		if q.IsBossQuest() && len(q.Minions) > 0 {
			slog.Warn("boss quest also lists minions, minions ignored", "quest_id", q.ID)
			q.Minions = nil
		}
		quests = append(quests, q)
	}

	return Dedupe(quests), nil
}

// NewFeed sorts the quests and checks that every reference resolves
func NewFeed(quests []*entities.Quest, starting []entities.Reward) (*Feed, error) {
	f := &Feed{
		Quests:          append([]*entities.Quest(nil), quests...),
		StartingRewards: starting,
		byID:            make(map[int]*entities.Quest, len(quests)),
	}
	sort.SliceStable(f.Quests, func(i, j int) bool { return f.Quests[i].ID < f.Quests[j].ID })

	for _, q := range f.Quests {
		if _, dup := f.byID[q.ID]; dup {
			return nil, errors.AlreadyExistsf("quest %d is defined twice", q.ID)
		}
		f.byID[q.ID] = q
	}

	for _, q := range f.Quests {
		if err := f.validate(q); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (f *Feed) validate(q *entities.Quest) error {
	vb := errors.NewValidationBuilder()

	for _, p := range q.Prerequisites {
		if _, ok := f.byID[p]; !ok {
			vb.Fieldf("prerequisites", "unknown quest %d", p)
		}
	}
	if n := len(q.Bosses); n != 0 && n != 2 {
		vb.Fieldf("bosses", "a dual fight needs exactly 2 bosses, got %d", n)
	}
	if q.HasChoice && len(q.Choices) == 0 {
		vb.InvalidField("choices", "choice quest has no options")
	}
	if q.RequiresChoiceOf != 0 {
		src, ok := f.byID[q.RequiresChoiceOf]
		if !ok || !src.HasChoice {
			vb.Fieldf("requires_choice_of", "quest %d is not a choice quest", q.RequiresChoiceOf)
		}
	}
	if q.ForcedOutcome != entities.ForcedOutcomeNone && !q.HasCombat() {
		vb.InvalidField("forced_outcome", "quest has no battle to override")
	}
	if q.Milestone != nil && q.Milestone.Title == "" {
		vb.RequiredField("milestone.title")
	}

	if err := vb.Build(); err != nil {
		return errors.Wrapf(err, "quest %d", q.ID)
	}
	return nil
}

// Quest looks up a quest by id
func (f *Feed) Quest(id int) (*entities.Quest, bool) {
	q, ok := f.byID[id]
	return q, ok
}

// Len returns the number of quests
func (f *Feed) Len() int {
	return len(f.Quests)
}
