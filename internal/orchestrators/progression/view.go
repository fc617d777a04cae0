package progression

import (
	"github.com/KirkDiggler/questline/internal/entities"
	"github.com/KirkDiggler/questline/internal/progression/statcap"
)

// storyView exposes the session and active battle to the cap policy
type storyView struct {
	*entities.Session
	battleQuest int
}

var _ statcap.View = (*storyView)(nil)

// ActiveBattleQuest implements statcap.View
func (v *storyView) ActiveBattleQuest() (int, bool) {
	return v.battleQuest, v.battleQuest != 0
}

func (o *orchestrator) view() *storyView {
	v := &storyView{Session: o.session}
	if o.battle != nil {
		v.battleQuest = o.battle.quest.ID
	}
	return v
}

// capFor resolves the cap for a target at a quest. Zero resolves the quest
// from the story state.
func (o *orchestrator) capFor(target statcap.Target, questID int) entities.Tier {
	return o.policy.ResolveCap(o.view(), statcap.Context{QuestID: questID, Target: target})
}
