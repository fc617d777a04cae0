package entities

import (
	"sort"
	"time"
)

// EntityTypeSession identifies a game session as an event source
const EntityTypeSession = "session"

// Session is the serializable state of one playthrough. A collaborator can
// persist it as-is; battles are ephemeral and never part of it.
type Session struct {
	ID        string        `json:"id"`
	Character *Character    `json:"character"`
	Crew      []*CrewMember `json:"crew"`
	Inventory []*Card       `json:"inventory"`

	Completed      map[int]bool   `json:"completed"`
	CompletedCount int            `json:"completed_count"`
	Points         int            `json:"points"`
	Choices        map[int]string `json:"choices"`
	// PendingChoice is the quest awaiting a story choice, zero when none
	PendingChoice int `json:"pending_choice,omitempty"`

	BreakthroughApplied map[BreakthroughLevel]bool `json:"breakthrough_applied"`
	// Queued holds stat rewards of the last completed quest until its story
	// choice and breakthrough overlay are settled.
	Queued []Reward `json:"queued,omitempty"`

	Ended     bool   `json:"ended"`
	EndReason string `json:"end_reason,omitempty"`

	// LastChange describes the most recent externally observable change
	LastChange string    `json:"last_change,omitempty"`
	Revision   int64     `json:"revision"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewSession starts a playthrough for the given character
func NewSession(id string, character *Character, now time.Time) *Session {
	return &Session{
		ID:                  id,
		Character:           character,
		Crew:                []*CrewMember{},
		Inventory:           []*Card{},
		Completed:           map[int]bool{},
		Choices:             map[int]string{},
		BreakthroughApplied: map[BreakthroughLevel]bool{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// GetID implements core.Entity
func (s *Session) GetID() string { return s.ID }

// GetType implements core.Entity
func (s *Session) GetType() string { return EntityTypeSession }

// IsQuestCompleted reports whether a quest has been completed
func (s *Session) IsQuestCompleted(id int) bool {
	return s.Completed[id]
}

// HighestCompletedQuest returns the largest completed quest id, zero when none
func (s *Session) HighestCompletedQuest() int {
	highest := 0
	for id, done := range s.Completed {
		if done && id > highest {
			highest = id
		}
	}
	return highest
}

// CompletedQuestIDs returns completed quest ids in ascending order
func (s *Session) CompletedQuestIDs() []int {
	ids := make([]int, 0, len(s.Completed))
	for id, done := range s.Completed {
		if done {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// HasCrewMember reports whether a crew member with the name has joined
func (s *Session) HasCrewMember(name string) bool {
	for _, m := range s.Crew {
		if m.Name == name {
			return true
		}
	}
	return false
}

// BreakthroughLevel returns the character's current grade
func (s *Session) BreakthroughLevel() BreakthroughLevel {
	if s.Character == nil {
		return BreakthroughNone
	}
	return s.Character.Breakthrough
}

// CardIndex finds an inventory card by id
func (s *Session) CardIndex(id string) int {
	for i, c := range s.Inventory {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// RemoveCard drops the inventory card at index i
func (s *Session) RemoveCard(i int) {
	s.Inventory = append(s.Inventory[:i], s.Inventory[i+1:]...)
}

// Clone returns a deep copy safe to hand to callers
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	out.Character = s.Character.Clone()

	out.Crew = make([]*CrewMember, len(s.Crew))
	for i, m := range s.Crew {
		out.Crew[i] = m.Clone()
	}
	out.Inventory = make([]*Card, len(s.Inventory))
	for i, c := range s.Inventory {
		out.Inventory[i] = c.Clone()
	}
	out.Completed = make(map[int]bool, len(s.Completed))
	for k, v := range s.Completed {
		out.Completed[k] = v
	}
	out.Choices = make(map[int]string, len(s.Choices))
	for k, v := range s.Choices {
		out.Choices[k] = v
	}
	out.Queued = make([]Reward, len(s.Queued))
	for i, r := range s.Queued {
		r.Effect = r.Effect.Clone()
		out.Queued[i] = r
	}
	out.BreakthroughApplied = make(map[BreakthroughLevel]bool, len(s.BreakthroughApplied))
	for k, v := range s.BreakthroughApplied {
		out.BreakthroughApplied[k] = v
	}
	return &out
}
