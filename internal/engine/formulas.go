package engine

import (
	"math"

	"github.com/KirkDiggler/questline/internal/entities"
)

// HP constants, as base + value(durability) x per-value
const (
	PlayerBossBaseHP     = 150
	PlayerBossPerValue   = 20
	PlayerMinionBaseHP   = 100
	PlayerMinionPerValue = 5
	BossBaseHP           = 200
	BossPerValue         = 20
	MinionBaseHP         = 60
	MinionPerValue       = 5
	CrewBaseHP           = 100
	// CrewBossPerValue applies in boss and two-boss fights
	CrewBossPerValue = 10
	// CrewWavePerValue applies in minion waves
	CrewWavePerValue = 5
)

// Damage constants
const (
	SkillMultiplier = 1.5
	DamageVariance  = 0.30
	// CardCooldownRounds is how many round ends a used card waits
	CardCooldownRounds = 1
	// SupportHealDefault is the heal percentage of a heal card with no amount
	SupportHealDefault = 20
)

// PlayerHP returns the player's battle HP for the topology
func PlayerHP(t Topology, durability entities.Tier) int {
	if t.IsBossFight() {
		return entities.HitPoints(PlayerBossBaseHP, PlayerBossPerValue, durability)
	}
	return entities.HitPoints(PlayerMinionBaseHP, PlayerMinionPerValue, durability)
}

// CrewHP returns a crew member's battle HP for the topology
func CrewHP(t Topology, durability entities.Tier) int {
	if t.IsBossFight() {
		return entities.HitPoints(CrewBaseHP, CrewBossPerValue, durability)
	}
	return entities.HitPoints(CrewBaseHP, CrewWavePerValue, durability)
}

// EnemyHP returns a boss's or minion's HP
func EnemyHP(role Role, durability entities.Tier) int {
	if role == RoleBoss {
		return entities.HitPoints(BossBaseHP, BossPerValue, durability)
	}
	return entities.HitPoints(MinionBaseHP, MinionPerValue, durability)
}

// BaseDamage is max(1, 2 x value(strength) - value(durability)), times the
// skill multiplier for skills, never below 1.
func BaseDamage(attacker, defender entities.Tier, skill bool) float64 {
	d := math.Max(1, attacker.Value()*2-defender.Value())
	if skill {
		d = math.Max(1, d*SkillMultiplier)
	}
	return d
}

// VarianceRange returns the lowest and highest damage before rounding
func VarianceRange(base float64) (float64, float64) {
	spread := base * DamageVariance
	return base - spread, base + spread
}

// ApplyVariance places the damage inside the variance range using a uniform
// fraction in [0, 1], rounds it and floors it at 1.
func ApplyVariance(base, fraction float64) int {
	low, high := VarianceRange(base)
	d := entities.ClampInt(math.Round(low + (high-low)*fraction))
	if d < 1 {
		return 1
	}
	return d
}

// GuardedDamage halves a hit against a guarding combatant, rounding up
func GuardedDamage(d int) int {
	return (d + 1) / 2
}

// PercentOf returns pct percent of total, rounded
func PercentOf(total, pct int) int {
	return entities.ClampInt(math.Round(float64(total) * float64(pct) / 100))
}
