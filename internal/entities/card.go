package entities

// RewardKind tags the variant of a Reward
type RewardKind string

// Reward kinds
const (
	RewardStat        RewardKind = "stat"
	RewardSkill       RewardKind = "skill"
	RewardSupport     RewardKind = "support"
	RewardCultivation RewardKind = "cultivation"
	RewardSpecial     RewardKind = "special"
)

// Valid reports whether k is a known kind
func (k RewardKind) Valid() bool {
	switch k {
	case RewardStat, RewardSkill, RewardSupport, RewardCultivation, RewardSpecial:
		return true
	default:
		return false
	}
}

// Rarity grades a card
type Rarity string

// Rarities from lowest to highest
const (
	RarityBronze     Rarity = "bronze"
	RaritySilver     Rarity = "silver"
	RarityGold       Rarity = "gold"
	RarityPlatinum   Rarity = "platinum"
	RarityDiamond    Rarity = "diamond"
	RarityMaster     Rarity = "master"
	RarityChallenger Rarity = "challenger"
)

// CultivationLevel is the unit count a cultivation card of this rarity
// grants when the content does not set one.
func (r Rarity) CultivationLevel() int {
	switch r {
	case RarityGold, RarityPlatinum:
		return 2
	case RarityDiamond:
		return 3
	case RarityMaster, RarityChallenger:
		return 5
	default:
		return 1
	}
}

// Valid reports whether r is a known rarity
func (r Rarity) Valid() bool {
	switch r {
	case RarityBronze, RaritySilver, RarityGold, RarityPlatinum,
		RarityDiamond, RarityMaster, RarityChallenger:
		return true
	default:
		return false
	}
}

// Reward is a typed reward record granted by a quest or story choice
type Reward struct {
	Kind   RewardKind `json:"kind"`
	Name   string     `json:"name"`
	Rarity Rarity     `json:"rarity"`
	Effect Effect     `json:"effect"`
	// Inventory keeps a stat reward as a card the player allocates by hand
	// instead of applying it when the quest completes.
	Inventory bool `json:"inventory,omitempty"`
}

// Card is a reward held in the inventory
type Card struct {
	ID string `json:"id"`
	Reward
}

// Clone returns a deep copy
func (c *Card) Clone() *Card {
	out := *c
	out.Effect = c.Effect.Clone()
	return &out
}
