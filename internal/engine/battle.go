package engine

import (
	"fmt"
	"sort"

	"github.com/KirkDiggler/questline/internal/entities"
	"github.com/KirkDiggler/questline/internal/errors"
)

const (
	// EntityTypeBattle identifies a battle as an event source
	EntityTypeBattle = "battle"
	// PlayerID is the player's combatant id in every battle
	PlayerID = "player"
	// MaxCrew is the most crew members that may join one battle
	MaxCrew = 3
)

// Combatant is one participant of a battle
type Combatant struct {
	ID       string                            `json:"id"`
	Name     string                            `json:"name"`
	Role     Role                              `json:"role"`
	Stats    [entities.StatCount]entities.Tier `json:"stats"`
	HP       int                               `json:"hp"`
	MaxHP    int                               `json:"max_hp"`
	Shield   int                               `json:"shield"`
	Guarding bool                              `json:"guarding"`
	// CrewIndex is the position in the session crew, -1 for non-crew
	CrewIndex int `json:"crew_index"`
}

// Alive reports whether the combatant can still act
func (c *Combatant) Alive() bool { return c.HP > 0 }

// Strength returns the strength tier
func (c *Combatant) Strength() entities.Tier { return c.Stats[0] }

// Speed returns the speed tier
func (c *Combatant) Speed() entities.Tier { return c.Stats[1] }

// Durability returns the durability tier
func (c *Combatant) Durability() entities.Tier { return c.Stats[2] }

// GetID implements core.Entity
func (c *Combatant) GetID() string { return c.ID }

// GetType implements core.Entity
func (c *Combatant) GetType() string { return string(c.Role) }

// Battle is the state of one encounter. The turn order is fixed when the
// battle is built; fallen combatants keep their slot and are skipped.
type Battle struct {
	ID           string         `json:"id"`
	QuestID      int            `json:"quest_id"`
	Topology     Topology       `json:"topology"`
	Status       Status         `json:"status"`
	Combatants   []*Combatant   `json:"combatants"`
	TurnOrder    []int          `json:"turn_order"`
	CurrentIndex int            `json:"current_index"`
	Round        int            `json:"round"`
	Cooldowns    map[string]int `json:"cooldowns"`
	// SupportUsed holds support cards already played this battle
	SupportUsed map[string]bool `json:"support_used"`
	Log         []LogEntry      `json:"log"`
}

// GetID implements core.Entity
func (b *Battle) GetID() string { return b.ID }

// GetType implements core.Entity
func (b *Battle) GetType() string { return EntityTypeBattle }

// TopologyFor classifies a quest's encounter
func TopologyFor(q *entities.Quest) (Topology, error) {
	switch {
	case len(q.Bosses) > 0:
		if len(q.Bosses) != 2 {
			return "", errors.InvalidArgumentf("quest %d lists %d bosses, a dual fight needs exactly 2", q.ID, len(q.Bosses))
		}
		return TopologyTwoBoss, nil
	case q.Boss != nil:
		return TopologyBoss, nil
	case len(q.Minions) > 0:
		return TopologyMinionWave, nil
	default:
		return "", errors.InvalidArgumentf("quest %d has no combat", q.ID)
	}
}

// NewBattle builds the combatants and turn order for an encounter
func NewBattle(input *SetupInput) (*Battle, error) {
	if input == nil || input.Quest == nil || input.Character == nil {
		return nil, errors.InvalidArgument("quest and character are required")
	}
	if len(input.Crew) > MaxCrew {
		return nil, errors.InvalidArgumentf("at most %d crew members may fight, got %d", MaxCrew, len(input.Crew))
	}
	topology, err := TopologyFor(input.Quest)
	if err != nil {
		return nil, err
	}

	b := &Battle{
		ID:          input.BattleID,
		QuestID:     input.Quest.ID,
		Topology:    topology,
		Status:      StatusSetup,
		Round:       1,
		Cooldowns:   map[string]int{},
		SupportUsed: map[string]bool{},
	}

	player := &Combatant{
		ID:        PlayerID,
		Name:      input.Character.Name,
		Role:      RolePlayer,
		Stats:     input.Character.Stats.Tiers,
		CrewIndex: -1,
	}
	player.MaxHP = PlayerHP(topology, player.Durability())
	b.Combatants = append(b.Combatants, player)

	for _, p := range input.Crew {
		if p.Member == nil {
			return nil, errors.InvalidArgumentf("crew member %d is missing", p.Index)
		}
		c := &Combatant{
			ID:        fmt.Sprintf("crew_%d", p.Index),
			Name:      p.Member.Name,
			Role:      RoleCrew,
			Stats:     p.Member.Stats.Tiers,
			CrewIndex: p.Index,
		}
		c.MaxHP = CrewHP(topology, c.Durability())
		b.Combatants = append(b.Combatants, c)
	}

	switch topology {
	case TopologyBoss:
		b.addEnemies(RoleBoss, []entities.Enemy{*input.Quest.Boss})
	case TopologyTwoBoss:
		b.addEnemies(RoleBoss, input.Quest.Bosses)
	case TopologyMinionWave:
		b.addEnemies(RoleMinion, input.Quest.Minions)
	}

	for _, c := range b.Combatants {
		c.HP = c.MaxHP
	}

	b.TurnOrder = make([]int, len(b.Combatants))
	for i := range b.TurnOrder {
		b.TurnOrder[i] = i
	}
	sort.SliceStable(b.TurnOrder, func(i, j int) bool {
		return b.Combatants[b.TurnOrder[i]].Speed().Value() > b.Combatants[b.TurnOrder[j]].Speed().Value()
	})

	return b, nil
}

func (b *Battle) addEnemies(role Role, enemies []entities.Enemy) {
	for i, e := range enemies {
		c := &Combatant{
			ID:        fmt.Sprintf("%s_%d", role, i),
			Name:      e.Name,
			Role:      role,
			Stats:     e.Stats,
			CrewIndex: -1,
		}
		c.MaxHP = EnemyHP(role, c.Durability())
		b.Combatants = append(b.Combatants, c)
	}
}

// Active reports whether the battle is still being fought
func (b *Battle) Active() bool {
	return b.Status == StatusSetup || b.Status == StatusInProgress
}

// Outcome returns the result of a resolved battle
func (b *Battle) Outcome() Outcome {
	switch b.Status {
	case StatusWon:
		return OutcomeWin
	case StatusLost:
		return OutcomeLoss
	default:
		return OutcomeNone
	}
}

// Current returns the combatant whose turn it is
func (b *Battle) Current() *Combatant {
	if len(b.TurnOrder) == 0 {
		return nil
	}
	return b.Combatants[b.TurnOrder[b.CurrentIndex]]
}

// Player returns the player's combatant
func (b *Battle) Player() *Combatant {
	for _, c := range b.Combatants {
		if c.Role == RolePlayer {
			return c
		}
	}
	return nil
}

// Combatant looks up a participant by id
func (b *Battle) Combatant(id string) *Combatant {
	for _, c := range b.Combatants {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// LivingEnemies returns the bosses or minions still standing
func (b *Battle) LivingEnemies() []*Combatant {
	var out []*Combatant
	for _, c := range b.Combatants {
		if !c.Role.IsAlly() && c.Alive() {
			out = append(out, c)
		}
	}
	return out
}

// LivingAllies returns the player and crew still standing
func (b *Battle) LivingAllies() []*Combatant {
	var out []*Combatant
	for _, c := range b.Combatants {
		if c.Role.IsAlly() && c.Alive() {
			out = append(out, c)
		}
	}
	return out
}

// CardReady reports whether a card is off cooldown
func (b *Battle) CardReady(cardID string) bool {
	return b.Cooldowns[cardID] <= 0
}

// HitResult describes damage landing on a combatant
type HitResult struct {
	Damage   int
	Absorbed int
	Guarded  bool
}

// ApplyHit lands damage on the target: a guard halves it and is spent,
// the shield soaks what it can and the rest comes off HP.
func (b *Battle) ApplyHit(target *Combatant, damage int) HitResult {
	res := HitResult{}
	if target.Guarding {
		damage = GuardedDamage(damage)
		target.Guarding = false
		res.Guarded = true
	}
	res.Damage = damage

	absorbed := min(target.Shield, damage)
	target.Shield -= absorbed
	res.Absorbed = absorbed

	target.HP = max(0, target.HP-(damage-absorbed))
	return res
}

// CheckResolution settles the battle once the player or every enemy falls
func (b *Battle) CheckResolution() bool {
	if !b.Active() {
		return true
	}
	if p := b.Player(); p == nil || !p.Alive() {
		b.Status = StatusLost
		return true
	}
	if len(b.LivingEnemies()) == 0 {
		b.Status = StatusWon
		return true
	}
	return false
}

// Advance moves to the next living combatant. Wrapping past the end of the
// order starts a new round and ticks card cooldowns.
func (b *Battle) Advance() {
	if !b.Active() || len(b.TurnOrder) == 0 {
		return
	}
	for range b.TurnOrder {
		b.CurrentIndex++
		if b.CurrentIndex >= len(b.TurnOrder) {
			b.CurrentIndex = 0
			b.Round++
			b.tickCooldowns()
		}
		if b.Current().Alive() {
			return
		}
	}
}

func (b *Battle) tickCooldowns() {
	for id, n := range b.Cooldowns {
		if n <= 1 {
			delete(b.Cooldowns, id)
			continue
		}
		b.Cooldowns[id] = n - 1
	}
}

// Clone returns a deep copy for read-only callers
func (b *Battle) Clone() *Battle {
	if b == nil {
		return nil
	}
	out := *b
	out.Combatants = make([]*Combatant, len(b.Combatants))
	for i, c := range b.Combatants {
		cc := *c
		out.Combatants[i] = &cc
	}
	out.TurnOrder = append([]int(nil), b.TurnOrder...)
	out.Cooldowns = make(map[string]int, len(b.Cooldowns))
	for k, v := range b.Cooldowns {
		out.Cooldowns[k] = v
	}
	out.SupportUsed = make(map[string]bool, len(b.SupportUsed))
	for k, v := range b.SupportUsed {
		out.SupportUsed[k] = v
	}
	out.Log = append([]LogEntry(nil), b.Log...)
	return &out
}
