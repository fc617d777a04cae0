// Package autopilot plays a session through the quest chain without a
// human at the controls.
package autopilot

import (
	"context"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/questline/internal/content"
	"github.com/KirkDiggler/questline/internal/engine"
	"github.com/KirkDiggler/questline/internal/entities"
	"github.com/KirkDiggler/questline/internal/errors"
	"github.com/KirkDiggler/questline/internal/orchestrators/progression"
	sessionrepo "github.com/KirkDiggler/questline/internal/repositories/session"
)

// DefaultMaxTurns bounds the player turns of a single battle
const DefaultMaxTurns = 500

// Config holds the dependencies for the autopilot
type Config struct {
	Service progression.Service
	Feed    *content.Feed
	// Repository receives a snapshot after every settled quest; nil skips saving
	Repository sessionrepo.Repository
	MaxTurns   int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Service == nil {
		vb.RequiredField("Service")
	}
	if c.Feed == nil {
		vb.RequiredField("Feed")
	}
	errors.ValidateNonNegative("MaxTurns", c.MaxTurns, vb)
	return vb.Build()
}

// RunInput controls one autopilot run
type RunInput struct {
	// StopAfter ends the run once this quest is completed; zero plays on
	StopAfter int
	// Choices picks story options by quest; unlisted quests take the first
	// option that keeps the story going
	Choices map[int]string
	// FailChallenges reports every mini-game as lost
	FailChallenges bool
}

// RunOutput summarizes a run
type RunOutput struct {
	Completed []int
	// LostAt is the quest whose battle was lost, zero when none
	LostAt  int
	Battles int
	Turns   int
	Ended   bool
	Session *entities.Session
}

// Autopilot drives a progression service
type Autopilot struct {
	service  progression.Service
	feed     *content.Feed
	repo     sessionrepo.Repository
	maxTurns int
}

// New creates an autopilot
func New(cfg *Config) (*Autopilot, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	maxTurns := cfg.MaxTurns
	if maxTurns == 0 {
		maxTurns = DefaultMaxTurns
	}
	return &Autopilot{
		service:  cfg.Service,
		feed:     cfg.Feed,
		repo:     cfg.Repository,
		maxTurns: maxTurns,
	}, nil
}

// Run plays quests in feed order until the chain is done, the story ends
// or a battle is lost.
func (a *Autopilot) Run(ctx context.Context, input *RunInput) (*RunOutput, error) {
	if input == nil {
		input = &RunInput{}
	}
	out := &RunOutput{}

	for _, q := range a.feed.Quests {
		if err := ctx.Err(); err != nil {
			return nil, errors.Canceled("autopilot canceled")
		}

		st, err := a.state(ctx)
		if err != nil {
			return nil, err
		}
		if st.Session.Ended {
			break
		}
		if st.Session.IsQuestCompleted(q.ID) {
			continue
		}

		done, err := a.playQuest(ctx, q, st.Session, input, out)
		if err != nil {
			return nil, err
		}
		if !done {
			if out.LostAt != 0 {
				break
			}
			continue
		}
		out.Completed = append(out.Completed, q.ID)

		if err := a.settle(ctx, q, input); err != nil {
			return nil, err
		}
		if err := a.spendCards(ctx); err != nil {
			return nil, err
		}
		if err := a.save(ctx); err != nil {
			return nil, err
		}
		if input.StopAfter != 0 && q.ID == input.StopAfter {
			break
		}
	}

	st, err := a.state(ctx)
	if err != nil {
		return nil, err
	}
	out.Ended = st.Session.Ended
	out.Session = st.Session

	slog.Info("autopilot run finished",
		"session_id", st.Session.ID,
		"completed", len(out.Completed),
		"lost_at", out.LostAt,
		"battles", out.Battles,
		"points", st.Session.Points,
		"ended", out.Ended)

	return out, nil
}

// playQuest attempts one quest and reports whether it was completed.
// Quests whose requirements are not met are skipped.
func (a *Autopilot) playQuest(ctx context.Context, q *entities.Quest, session *entities.Session, input *RunInput, out *RunOutput) (bool, error) {
	var crew []int
	if q.HasCombat() {
		crew = PickCrew(session.Crew)
	}

	res, err := a.service.CompleteQuest(ctx, &progression.CompleteQuestInput{QuestID: q.ID, Crew: crew})
	switch {
	case errors.IsPrerequisiteNotMet(err), errors.IsStoryChoiceRequired(err):
		slog.Debug("quest skipped", "quest_id", q.ID, "reason", errors.GetMessage(err))
		return false, nil
	case err != nil:
		return false, errors.Wrapf(err, "failed to attempt quest %d", q.ID)
	}

	if res.Status == progression.QuestInChallenge {
		resolved, err := a.service.ResolveChallenge(ctx, &progression.ResolveChallengeInput{
			Success: !input.FailChallenges,
			Crew:    crew,
		})
		if err != nil {
			return false, errors.Wrapf(err, "failed to resolve challenge of quest %d", q.ID)
		}
		if resolved.Quest == nil {
			return false, nil
		}
		res = resolved.Quest
	}

	if res.Status == progression.QuestInBattle {
		out.Battles++
		turns, err := a.fight(ctx, q.ID)
		out.Turns += turns
		if err != nil {
			return false, err
		}
	}

	if err := a.service.Await(ctx); err != nil {
		return false, err
	}
	st, err := a.state(ctx)
	if err != nil {
		return false, err
	}
	if !st.Session.IsQuestCompleted(q.ID) {
		out.LostAt = q.ID
		return false, nil
	}
	return true, nil
}

// fight plays the player's turns until the battle resolves
func (a *Autopilot) fight(ctx context.Context, questID int) (int, error) {
	for turns := 0; turns < a.maxTurns; turns++ {
		if err := a.service.Await(ctx); err != nil {
			return turns, err
		}
		current, err := a.service.CurrentBattle(ctx, &progression.CurrentBattleInput{})
		if errors.IsNotFound(err) {
			return turns, nil
		}
		if err != nil {
			return turns, err
		}

		st, err := a.state(ctx)
		if err != nil {
			return turns, err
		}
		action := ChooseAction(current.Battle, st.Session.Inventory)
		if _, err := a.service.ChooseCombatAction(ctx, action); err != nil {
			return turns, errors.Wrapf(err, "failed to act in quest %d", questID)
		}
	}
	return a.maxTurns, errors.FailedPreconditionf("battle of quest %d did not resolve in %d turns", questID, a.maxTurns)
}

// PickCrew returns the indices of the strongest crew members, at most
// engine.MaxCrew of them, strongest first
func PickCrew(crew []*entities.CrewMember) []int {
	picks := make([]int, 0, len(crew))
	for i := range crew {
		picks = append(picks, i)
	}
	sort.SliceStable(picks, func(i, j int) bool {
		return crewPower(crew[picks[i]]) > crewPower(crew[picks[j]])
	})
	if len(picks) > engine.MaxCrew {
		picks = picks[:engine.MaxCrew]
	}
	return picks
}

func crewPower(m *entities.CrewMember) int {
	total := 0
	for _, t := range m.Stats.Tiers {
		total += int(t)
	}
	return total
}

// ChooseAction picks the player's move: a ready support card when badly
// hurt, then a ready skill card, then a plain attack.
func ChooseAction(b *engine.Battle, inventory []*entities.Card) *progression.ChooseCombatActionInput {
	player := b.Player()
	hurt := player != nil && player.HP*10 < player.MaxHP*3

	skill := -1
	for i, card := range inventory {
		switch card.Kind {
		case entities.RewardSupport:
			if hurt && b.CardReady(card.ID) && !b.SupportUsed[card.ID] {
				return &progression.ChooseCombatActionInput{Kind: engine.ActionSupportCard, CardIndex: i}
			}
		case entities.RewardSkill:
			if skill < 0 && card.Effect.Kind == entities.EffectDamageBonus && b.CardReady(card.ID) {
				skill = i
			}
		}
	}
	if skill >= 0 {
		return &progression.ChooseCombatActionInput{Kind: engine.ActionSkillCard, CardIndex: skill}
	}
	return &progression.ChooseCombatActionInput{Kind: engine.ActionAttack}
}

// settle waits out the breakthrough overlay and answers a story choice
func (a *Autopilot) settle(ctx context.Context, q *entities.Quest, input *RunInput) error {
	if err := a.service.Await(ctx); err != nil {
		return err
	}
	st, err := a.state(ctx)
	if err != nil {
		return err
	}
	if st.Session.PendingChoice != q.ID {
		return nil
	}

	option := pickOption(q, input.Choices[q.ID])
	if _, err := a.service.MakeStoryChoice(ctx, &progression.MakeStoryChoiceInput{QuestID: q.ID, OptionID: option}); err != nil {
		return errors.Wrapf(err, "failed to choose %q for quest %d", option, q.ID)
	}
	return a.service.Await(ctx)
}

func pickOption(q *entities.Quest, preferred string) string {
	if _, ok := q.Choice(preferred); ok {
		return preferred
	}
	for _, c := range q.Choices {
		if !c.EndsGame {
			return c.ID
		}
	}
	return q.Choices[0].ID
}

// spendCards allocates stat cards to the weakest stat and cultivation cards
// to the first crew member. Cards that cannot be used stay in the inventory.
func (a *Autopilot) spendCards(ctx context.Context) error {
	for i := 0; ; {
		st, err := a.state(ctx)
		if err != nil {
			return err
		}
		if i >= len(st.Session.Inventory) {
			return nil
		}

		card := st.Session.Inventory[i]
		input := &progression.UseInventoryCardInput{Index: i}
		switch card.Kind {
		case entities.RewardStat:
			input.Choice = string(weakestStat(st.Session.Character))
		case entities.RewardCultivation:
			input.Choice = "0"
		default:
			i++
			continue
		}

		res, err := a.service.UseInventoryCard(ctx, input)
		if errors.IsInvalidCardUse(err) {
			i++
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "failed to use %s", card.Name)
		}
		if !res.Consumed {
			i++
		}
	}
}

func weakestStat(c *entities.Character) entities.Stat {
	weakest := entities.AllStats[0]
	for _, s := range entities.AllStats[1:] {
		if c.Stats.Tier(s) < c.Stats.Tier(weakest) {
			weakest = s
		}
	}
	return weakest
}

func (a *Autopilot) save(ctx context.Context) error {
	if a.repo == nil {
		return nil
	}
	st, err := a.state(ctx)
	if err != nil {
		return err
	}
	if _, err := a.repo.Save(ctx, &sessionrepo.SaveInput{Session: st.Session}); err != nil {
		return errors.Wrapf(err, "failed to save session %s", st.Session.ID)
	}
	return nil
}

func (a *Autopilot) state(ctx context.Context) (*progression.GetStateOutput, error) {
	st, err := a.service.GetState(ctx, &progression.GetStateInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read state")
	}
	return st, nil
}
