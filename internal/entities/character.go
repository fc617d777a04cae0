package entities

// BreakthroughLevel is the character's narrative power grade
type BreakthroughLevel int

// Breakthrough levels
const (
	BreakthroughNone BreakthroughLevel = iota
	BreakthroughAwakened
	BreakthroughAscendant
	BreakthroughTranscendent
)

// String returns the display name of the level
func (l BreakthroughLevel) String() string {
	switch l {
	case BreakthroughNone:
		return "None"
	case BreakthroughAwakened:
		return "Awakened"
	case BreakthroughAscendant:
		return "Ascendant"
	case BreakthroughTranscendent:
		return "Transcendent"
	default:
		return "Unknown"
	}
}

// Valid reports whether l is a grantable level (Awakened through Transcendent)
func (l BreakthroughLevel) Valid() bool {
	return l >= BreakthroughAwakened && l <= BreakthroughTranscendent
}

const (
	// PotentialMax caps potential at S
	PotentialMax = TierS
	// IntelligenceMax caps intelligence at S
	IntelligenceMax = TierS

	// EntityTypeCharacter identifies the player character as an event source
	EntityTypeCharacter = "character"
)

// Character is the player's avatar
type Character struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	HP           int               `json:"hp"`
	MaxHP        int               `json:"max_hp"`
	Stats        StatBlock         `json:"stats"`
	Potential    Tier              `json:"potential"`
	Intelligence Tier              `json:"intelligence"`
	Breakthrough BreakthroughLevel `json:"breakthrough"`
}

// NewCharacter creates a character at the starting tiers
func NewCharacter(id, name string) *Character {
	c := &Character{
		ID:    id,
		Name:  name,
		Stats: NewStatBlock(TierE, TierE, TierE),
	}
	c.RefreshVitals()
	return c
}

// RefreshVitals recomputes max HP from durability and restores HP.
// Outside of battle the character is always at full health.
func (c *Character) RefreshVitals() {
	c.MaxHP = HitPoints(150, 20, c.Stats.Durability())
	c.HP = c.MaxHP
}

// GetID implements core.Entity
func (c *Character) GetID() string { return c.ID }

// GetType implements core.Entity
func (c *Character) GetType() string { return EntityTypeCharacter }

// Clone returns a deep copy
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	out := *c
	return &out
}

// CrewMember is a companion recruited through the story
type CrewMember struct {
	Name  string    `json:"name"`
	Stats StatBlock `json:"stats"`
}

// Clone returns a deep copy
func (m *CrewMember) Clone() *CrewMember {
	out := *m
	return &out
}
