package testutils

import (
	"github.com/KirkDiggler/questline/internal/entities"
)

// TestCharacterName is the default character name for test fixtures
const TestCharacterName = "Jin"

// CreateTestStatReward creates a stat reward that applies when its quest completes
func CreateTestStatReward(stat entities.Stat, amount int) entities.Reward {
	return entities.Reward{
		Kind:   entities.RewardStat,
		Name:   string(stat) + " training",
		Rarity: entities.RarityBronze,
		Effect: entities.Effect{Kind: entities.EffectStatGrant, Stat: stat, Amount: amount},
	}
}

// CreateTestSkillCard creates a skill card reward with a flat damage bonus
func CreateTestSkillCard(name string, bonus int) entities.Reward {
	return entities.Reward{
		Kind:   entities.RewardSkill,
		Name:   name,
		Rarity: entities.RaritySilver,
		Effect: entities.Effect{Kind: entities.EffectDamageBonus, Amount: bonus},
	}
}

// CreateTestBossQuest creates a boss quest that requires the given quests
func CreateTestBossQuest(id int, boss [entities.StatCount]entities.Tier, prerequisites ...int) *entities.Quest {
	return &entities.Quest{
		ID:            id,
		Name:          "Test Boss Fight",
		Points:        20,
		Prerequisites: prerequisites,
		Boss:          &entities.Enemy{Name: "Test Boss", Stats: boss},
	}
}
