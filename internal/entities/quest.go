package entities

// Enemy is a boss or minion stat line from the quest feed
type Enemy struct {
	Name  string          `json:"name"`
	Stats [StatCount]Tier `json:"stats"`
}

// Strength returns the enemy's strength tier
func (e Enemy) Strength() Tier { return e.Stats[0] }

// Speed returns the enemy's speed tier
func (e Enemy) Speed() Tier { return e.Stats[1] }

// Durability returns the enemy's durability tier
func (e Enemy) Durability() Tier { return e.Stats[2] }

// ForcedOutcome overrides how a lost fight counts for progression
type ForcedOutcome string

// Forced outcomes
const (
	ForcedOutcomeNone ForcedOutcome = ""
	// ForcedOutcomeAdvance completes the quest even when the battle is lost
	ForcedOutcomeAdvance ForcedOutcome = "advance"
)

// ChallengeKind names the mini-game that gates a quest
type ChallengeKind string

// Challenge kinds
const (
	ChallengeNone   ChallengeKind = ""
	ChallengeQTE    ChallengeKind = "qte"
	ChallengeQuiz   ChallengeKind = "quiz"
	ChallengeTiming ChallengeKind = "timing"
)

// Choice is one option of a branching quest
type Choice struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Rewards  []Reward `json:"rewards,omitempty"`
	EndsGame bool     `json:"ends_game,omitempty"`
}

// Milestone marks a quest that triggers the breakthrough overlay.
// Level BreakthroughNone shows the overlay without changing the grade.
type Milestone struct {
	Level BreakthroughLevel `json:"level"`
	Title string            `json:"title"`
}

// Quest is a static quest record
type Quest struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Arc           int      `json:"arc"`
	Points        int      `json:"points"`
	Prerequisites []int    `json:"prerequisites,omitempty"`
	Rewards       []Reward `json:"rewards,omitempty"`
	// RangeRewards belong to quests folded into this one by the boss chain
	RangeRewards []Reward `json:"range_rewards,omitempty"`

	Boss    *Enemy  `json:"boss,omitempty"`
	Bosses  []Enemy `json:"bosses,omitempty"`
	Minions []Enemy `json:"minions,omitempty"`

	HasChoice        bool     `json:"has_choice,omitempty"`
	Choices          []Choice `json:"choices,omitempty"`
	RequiresChoiceOf int      `json:"requires_choice_of,omitempty"`

	ForcedOutcome ForcedOutcome `json:"forced_outcome,omitempty"`
	Milestone     *Milestone    `json:"milestone,omitempty"`
	Challenge     ChallengeKind `json:"challenge,omitempty"`
}

// HasCombat reports whether completing the quest requires a battle
func (q *Quest) HasCombat() bool {
	return q.Boss != nil || len(q.Bosses) > 0 || len(q.Minions) > 0
}

// IsBossQuest reports whether the quest is fought against one or two bosses
func (q *Quest) IsBossQuest() bool {
	return q.Boss != nil || len(q.Bosses) > 0
}

// Choice looks up an option by id
func (q *Quest) Choice(id string) (*Choice, bool) {
	for i := range q.Choices {
		if q.Choices[i].ID == id {
			return &q.Choices[i], true
		}
	}
	return nil, false
}

// PeakEnemyStats returns the highest tier per stat across the quest's bosses
func (q *Quest) PeakEnemyStats() ([StatCount]Tier, bool) {
	var peak [StatCount]Tier
	enemies := q.Bosses
	if q.Boss != nil {
		enemies = []Enemy{*q.Boss}
	}
	if len(enemies) == 0 {
		return peak, false
	}
	for _, e := range enemies {
		for i, t := range e.Stats {
			if t > peak[i] {
				peak[i] = t
			}
		}
	}
	return peak, true
}
