// Package engine defines the combat rules and the battle state they act on
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/questline/internal/engine Engine

import (
	"context"
)

// Engine runs turn-order battles. A battle moves from Setup to InProgress
// when built and to Won or Lost when resolved. The engine never decides how
// an outcome counts for story progression.
type Engine interface {
	// Setup builds the battle for a combat quest
	Setup(ctx context.Context, input *SetupInput) (*SetupOutput, error)

	// PlayerAction resolves the player's turn and advances the turn order
	PlayerAction(ctx context.Context, input *PlayerActionInput) (*ActionOutput, error)

	// AutomatedTurn resolves the turn of the current crew member or enemy
	AutomatedTurn(ctx context.Context, input *AutomatedTurnInput) (*ActionOutput, error)

	// CalculateDamage rolls the damage of one hit before guard and shield
	CalculateDamage(input *DamageInput) (int, error)
}
