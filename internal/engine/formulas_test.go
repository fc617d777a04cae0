package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/questline/internal/engine"
	"github.com/KirkDiggler/questline/internal/entities"
)

func TestBaseDamage(t *testing.T) {
	testCases := []struct {
		name     string
		attacker entities.Tier
		defender entities.Tier
		skill    bool
		expected float64
	}{
		{name: "strength 6 against durability 4", attacker: entities.TierA, defender: entities.TierC, expected: 8},
		{name: "skill multiplies", attacker: entities.TierA, defender: entities.TierC, skill: true, expected: 12},
		{name: "weak attacker floors at one", attacker: entities.TierF, defender: entities.TierSSS, expected: 1},
		{name: "weak skill floors before multiplying", attacker: entities.TierF, defender: entities.TierSSS, skill: true, expected: 1.5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, engine.BaseDamage(tc.attacker, tc.defender, tc.skill), 1e-9)
		})
	}
}

func TestVarianceRange(t *testing.T) {
	low, high := engine.VarianceRange(8)
	assert.InDelta(t, 5.6, low, 1e-9)
	assert.InDelta(t, 10.4, high, 1e-9)

	assert.Equal(t, 6, engine.ApplyVariance(8, 0))
	assert.Equal(t, 8, engine.ApplyVariance(8, 0.5))
	assert.Equal(t, 10, engine.ApplyVariance(8, 1))
	assert.Equal(t, 1, engine.ApplyVariance(1, 0))
}

func TestHitPoints(t *testing.T) {
	assert.Equal(t, 190, engine.PlayerHP(engine.TopologyBoss, entities.TierE))
	assert.Equal(t, 110, engine.PlayerHP(engine.TopologyMinionWave, entities.TierE))
	assert.Equal(t, 120, engine.CrewHP(engine.TopologyTwoBoss, entities.TierE))
	assert.Equal(t, 110, engine.CrewHP(engine.TopologyMinionWave, entities.TierE))
	assert.Equal(t, 280, engine.EnemyHP(engine.RoleBoss, entities.TierC))
	assert.Equal(t, 80, engine.EnemyHP(engine.RoleMinion, entities.TierC))
}

func TestGuardedDamageRoundsUp(t *testing.T) {
	assert.Equal(t, 1, engine.GuardedDamage(1))
	assert.Equal(t, 3, engine.GuardedDamage(5))
	assert.Equal(t, 4, engine.GuardedDamage(8))
}
