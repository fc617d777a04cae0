package progression

import (
	"github.com/KirkDiggler/questline/internal/engine"
	"github.com/KirkDiggler/questline/internal/entities"
	"github.com/KirkDiggler/questline/internal/progression/statcap"
)

// EventStateChanged is published after every externally observable change.
// The event source is a snapshot of the session.
const EventStateChanged = "questline.state_changed"

// Change reasons recorded in the session's LastChange
const (
	ChangeSessionStarted   = "session_started"
	ChangeQuestCompleted   = "quest_completed"
	ChangeChallengeStarted = "challenge_started"
	ChangeChallengeFailed  = "challenge_failed"
	ChangeBattleStarted    = "battle_started"
	ChangeBattleTurn       = "battle_turn"
	ChangeBattleLost       = "battle_lost"
	ChangeBattleAborted    = "battle_aborted"
	ChangeChoicePending    = "choice_pending"
	ChangeStoryChoice      = "story_choice"
	ChangeGameEnded        = "game_ended"
	ChangeBreakthrough     = "breakthrough"
	ChangeRewardsApplied   = "rewards_applied"
	ChangeCardUsed         = "card_used"
)

// QuestStatus describes where CompleteQuest left the quest
type QuestStatus string

// Quest statuses
const (
	// QuestCompleted means the quest is done; rewards may still be waiting
	// on a breakthrough overlay
	QuestCompleted QuestStatus = "completed"
	// QuestInBattle means a battle was started and must be fought out
	QuestInBattle QuestStatus = "in_battle"
	// QuestInChallenge means the mini-game must report back first
	QuestInChallenge QuestStatus = "in_challenge"
)

// CompleteQuestInput requests completion of a quest. Crew names the crew
// members, by index, who join the quest's battle; empty fights alone.
type CompleteQuestInput struct {
	QuestID int
	Crew    []int
}

// CompleteQuestOutput reports how the quest proceeded
type CompleteQuestOutput struct {
	Status  QuestStatus
	Battle  *engine.Battle
	Session *entities.Session
	// Suspended is set while a breakthrough overlay holds the rewards
	Suspended bool
}

// ChooseCombatActionInput is the player's move in the active battle.
// Card actions name the inventory card by index.
type ChooseCombatActionInput struct {
	Kind       engine.ActionKind
	TargetHint string
	CardIndex  int
}

// ChooseCombatActionOutput reports the player's turn
type ChooseCombatActionOutput struct {
	Entry    engine.LogEntry
	Resolved bool
	Outcome  engine.Outcome
	// QuestCompleted is set when the outcome advanced the story
	QuestCompleted bool
	Battle         *engine.Battle
}

// UseInventoryCardInput uses the card at Index. Choice names the stat for
// stat cards and the crew index for cultivation cards.
type UseInventoryCardInput struct {
	Index  int
	Choice string
}

// UseInventoryCardOutput reports the card's effect
type UseInventoryCardOutput struct {
	Card     *entities.Card
	Consumed bool
	// Combat is set when the card was played in battle
	Combat  *ChooseCombatActionOutput
	Session *entities.Session
}

// MakeStoryChoiceInput picks an option of a branching quest
type MakeStoryChoiceInput struct {
	QuestID  int
	OptionID string
}

// MakeStoryChoiceOutput reports the choice
type MakeStoryChoiceOutput struct {
	Choice    *entities.Choice
	Ended     bool
	Suspended bool
	Session   *entities.Session
}

// ResolveChallengeInput carries the mini-game result and the crew picked
// for the battle that may follow it
type ResolveChallengeInput struct {
	Success bool
	Crew    []int
}

// ResolveChallengeOutput reports how the quest continued
type ResolveChallengeOutput struct {
	QuestID int
	// Quest is nil when the challenge failed
	Quest *CompleteQuestOutput
}

// CancelChallengeInput aborts the pending challenge
type CancelChallengeInput struct{}

// CancelChallengeOutput names the aborted quest
type CancelChallengeOutput struct {
	QuestID int
}

// GetStateInput requests a snapshot
type GetStateInput struct{}

// GetStateOutput is a snapshot of the game
type GetStateOutput struct {
	Session *entities.Session
	Battle  *engine.Battle
	// Busy is set while a continuation is pending
	Busy bool
	// Overlay is the breakthrough title on screen, empty when none
	Overlay          string
	PendingChallenge int
}

// PreviewCapInput asks for the cap of a target at a quest. QuestID zero
// resolves the quest from the story state.
type PreviewCapInput struct {
	Target  statcap.Target
	QuestID int
}

// PreviewCapOutput is the resolved cap
type PreviewCapOutput struct {
	Cap     entities.Tier
	QuestID int
}

// CurrentBattleInput requests the active battle
type CurrentBattleInput struct{}

// CurrentBattleOutput is a read-only copy of the active battle
type CurrentBattleOutput struct {
	QuestID int
	Battle  *engine.Battle
}
