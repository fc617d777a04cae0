package session

import (
	"context"
	"sync"

	"github.com/KirkDiggler/questline/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string][]byte
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string][]byte),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Save stores a snapshot of the session
func (r *InMemoryRepository) Save(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	data, err := marshal(input.Session)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[input.Session.ID] = data
	return &SaveOutput{}, nil
}

// Get loads a session by ID. Every call decodes a fresh copy.
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.RLock()
	data, exists := r.store[input.SessionID]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.NotFoundf("session %s not found", input.SessionID)
	}

	s, err := unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Session: s}, nil
}

// Delete removes a session
func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.SessionID]; !exists {
		return nil, errors.NotFoundf("session %s not found", input.SessionID)
	}
	delete(r.store, input.SessionID)

	return &DeleteOutput{}, nil
}
