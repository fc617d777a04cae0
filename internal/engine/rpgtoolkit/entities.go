package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/questline/internal/engine"
)

// Combat event types published on the event bus
const (
	EventBattleStarted  = "combat.battle_started"
	EventActionResolved = "combat.action_resolved"
	EventBattleResolved = "combat.battle_resolved"
)

// battleSource returns the battle as an event source
func battleSource(b *engine.Battle) core.Entity {
	if b == nil {
		return nil
	}
	return b
}

// combatantEntity returns the combatant as an event participant. A nil
// combatant must become a nil interface, not a typed nil.
func combatantEntity(c *engine.Combatant) core.Entity {
	if c == nil {
		return nil
	}
	return c
}
