package engine

import (
	"github.com/KirkDiggler/questline/internal/entities"
)

// Topology is the shape of an encounter
type Topology string

// Topologies
const (
	TopologyBoss       Topology = "boss"
	TopologyTwoBoss    Topology = "two_boss"
	TopologyMinionWave Topology = "minion_wave"
)

// IsBossFight reports whether the player fights one or two bosses
func (t Topology) IsBossFight() bool {
	return t == TopologyBoss || t == TopologyTwoBoss
}

// Role is a combatant's part in the battle
type Role string

// Roles
const (
	RolePlayer Role = "player"
	RoleCrew   Role = "crew"
	RoleBoss   Role = "boss"
	RoleMinion Role = "minion"
)

// IsAlly reports whether the role fights on the player's side
func (r Role) IsAlly() bool {
	return r == RolePlayer || r == RoleCrew
}

// ActionKind is what a combatant does on its turn
type ActionKind string

// Action kinds. Automated combatants choose among attack, defend and skill;
// the player chooses among attack, defend and the two card actions.
const (
	ActionAttack      ActionKind = "attack"
	ActionDefend      ActionKind = "defend"
	ActionSkill       ActionKind = "skill"
	ActionSkillCard   ActionKind = "skill_card"
	ActionSupportCard ActionKind = "support_card"
)

// Status is the battle state
type Status string

// Statuses
const (
	StatusSetup      Status = "setup"
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Outcome is how a resolved battle ended
type Outcome string

// Outcomes
const (
	OutcomeNone Outcome = ""
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
)

// CrewParticipant is a crew member selected for a battle
type CrewParticipant struct {
	// Index is the member's position in the session crew
	Index  int
	Member *entities.CrewMember
}

// SetupInput holds what a battle is built from
type SetupInput struct {
	BattleID  string
	Quest     *entities.Quest
	Character *entities.Character
	Crew      []CrewParticipant
}

// SetupOutput holds the new battle
type SetupOutput struct {
	Battle *Battle
}

// Action is a player's choice for the current turn
type Action struct {
	Kind ActionKind
	// Card is the inventory card for the card actions
	Card *entities.Card
	// TargetHint names a preferred enemy; ignored when not a living enemy
	TargetHint string
}

// PlayerActionInput holds the player's action
type PlayerActionInput struct {
	Battle *Battle
	Action Action
}

// AutomatedTurnInput holds the battle whose current actor is automated
type AutomatedTurnInput struct {
	Battle *Battle
}

// ActionOutput describes one resolved turn
type ActionOutput struct {
	Entry    LogEntry
	Resolved bool
	Outcome  Outcome
	// Next is the combatant whose turn it is now, nil once resolved
	Next *Combatant
}

// DamageInput holds the stats of one hit
type DamageInput struct {
	Attacker entities.Tier
	Defender entities.Tier
	Skill    bool
	// Bonus is flat damage added after variance
	Bonus int
}

// LogEntry records one turn
type LogEntry struct {
	Round    int        `json:"round"`
	ActorID  string     `json:"actor_id"`
	Action   ActionKind `json:"action"`
	TargetID string     `json:"target_id,omitempty"`
	Damage   int        `json:"damage,omitempty"`
	Absorbed int        `json:"absorbed,omitempty"`
	Healed   int        `json:"healed,omitempty"`
	Shielded int        `json:"shielded,omitempty"`
	Guarded  bool       `json:"guarded,omitempty"`
	Skipped  bool       `json:"skipped,omitempty"`
	Message  string     `json:"message"`
}
