// Package session stores snapshots of game sessions between runs
package session

import (
	"context"
	"time"

	"github.com/KirkDiggler/questline/internal/entities"
	"github.com/KirkDiggler/questline/internal/errors"
)

const (
	errSessionNil     = "session is required"
	errSessionIDEmpty = "session ID cannot be empty"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=sessionmock github.com/KirkDiggler/questline/internal/repositories/session Repository

// SaveInput contains the session to store
type SaveInput struct {
	Session *entities.Session
}

// SaveOutput reports when the stored snapshot expires
type SaveOutput struct {
	// ExpiresAt is zero when the snapshot never expires
	ExpiresAt time.Time
}

// GetInput names the session to load
type GetInput struct {
	SessionID string
}

// GetOutput contains the loaded session
type GetOutput struct {
	Session *entities.Session
}

// DeleteInput names the session to remove
type DeleteInput struct {
	SessionID string
}

// DeleteOutput is empty
type DeleteOutput struct{}

// Repository defines the interface for session storage operations
type Repository interface {
	// Save stores the session, replacing any earlier snapshot
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get loads a session by ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Delete removes a session
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

func validateSave(input *SaveInput) error {
	if input == nil || input.Session == nil {
		return errors.InvalidArgument(errSessionNil)
	}
	if input.Session.ID == "" {
		return errors.InvalidArgument(errSessionIDEmpty)
	}
	return nil
}
