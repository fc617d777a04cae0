// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/questline/internal/entities"
)

// SessionBuilder provides a fluent interface for building test Session instances
type SessionBuilder struct {
	session *entities.Session
}

// NewSessionBuilder creates a new builder with a fresh character
func NewSessionBuilder() *SessionBuilder {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return &SessionBuilder{
		session: entities.NewSession("sess-test-123", entities.NewCharacter("char-test-123", "Jin"), now),
	}
}

// WithID sets the session ID
func (b *SessionBuilder) WithID(id string) *SessionBuilder {
	b.session.ID = id
	return b
}

// WithStats sets the character's strength, speed and durability
func (b *SessionBuilder) WithStats(strength, speed, durability entities.Tier) *SessionBuilder {
	b.session.Character.Stats = entities.NewStatBlock(strength, speed, durability)
	b.session.Character.RefreshVitals()
	return b
}

// WithCompleted marks quests completed and adds their count
func (b *SessionBuilder) WithCompleted(ids ...int) *SessionBuilder {
	for _, id := range ids {
		if !b.session.Completed[id] {
			b.session.Completed[id] = true
			b.session.CompletedCount++
		}
	}
	return b
}

// WithPoints sets the quest points
func (b *SessionBuilder) WithPoints(points int) *SessionBuilder {
	b.session.Points = points
	return b
}

// WithCrew adds a crew member at the given tiers
func (b *SessionBuilder) WithCrew(name string, strength, speed, durability entities.Tier) *SessionBuilder {
	b.session.Crew = append(b.session.Crew, &entities.CrewMember{
		Name:  name,
		Stats: entities.NewStatBlock(strength, speed, durability),
	})
	return b
}

// WithCard adds an inventory card
func (b *SessionBuilder) WithCard(id string, reward entities.Reward) *SessionBuilder {
	b.session.Inventory = append(b.session.Inventory, &entities.Card{ID: id, Reward: reward})
	return b
}

// WithChoice records a story choice
func (b *SessionBuilder) WithChoice(questID int, optionID string) *SessionBuilder {
	b.session.Choices[questID] = optionID
	return b
}

// WithBreakthrough sets the character's grade and marks it applied
func (b *SessionBuilder) WithBreakthrough(level entities.BreakthroughLevel) *SessionBuilder {
	b.session.Character.Breakthrough = level
	b.session.BreakthroughApplied[level] = true
	return b
}

// Build returns the built session
func (b *SessionBuilder) Build() *entities.Session {
	return b.session
}
