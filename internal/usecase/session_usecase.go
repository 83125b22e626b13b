package usecase

import (
	"context"

	"locus/internal/domain/entity"
)

// SessionUsecase turns identity provider events into sessions with a resolved role.
type SessionUsecase interface {
	// Authenticate verifies a bearer token and resolves the session it belongs to.
	Authenticate(ctx context.Context, token string) (*entity.Session, error)
	// HandleEvent applies an identity event and returns the resulting session.
	HandleEvent(ctx context.Context, event entity.IdentityEvent) (*entity.Session, error)
}
