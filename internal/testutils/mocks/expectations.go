// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/questline/internal/entities"
	"github.com/KirkDiggler/questline/internal/errors"
	sessionrepo "github.com/KirkDiggler/questline/internal/repositories/session"
	sessionrepomock "github.com/KirkDiggler/questline/internal/repositories/session/mock"
)

// ExpectSessionLoad sets up the repository to return the session by its ID
func ExpectSessionLoad(ctx context.Context, repo *sessionrepomock.MockRepository, session *entities.Session) {
	repo.EXPECT().
		Get(ctx, &sessionrepo.GetInput{SessionID: session.ID}).
		Return(&sessionrepo.GetOutput{Session: session.Clone()}, nil)
}

// ExpectSessionMissing sets up the repository to report the session as not found
func ExpectSessionMissing(ctx context.Context, repo *sessionrepomock.MockRepository, sessionID string) {
	repo.EXPECT().
		Get(ctx, &sessionrepo.GetInput{SessionID: sessionID}).
		Return(nil, errors.NotFoundf("session %s not found", sessionID))
}

// ExpectSessionSaves captures every saved snapshot into saved
func ExpectSessionSaves(repo *sessionrepomock.MockRepository, saved *[]*entities.Session) {
	repo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionrepo.SaveInput) (*sessionrepo.SaveOutput, error) {
			*saved = append(*saved, input.Session.Clone())
			return &sessionrepo.SaveOutput{}, nil
		}).
		AnyTimes()
}
