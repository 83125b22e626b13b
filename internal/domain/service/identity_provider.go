package service

import (
	"context"

	"locus/internal/domain/entity"
)

// IdentityProvider verifies bearer tokens issued by the external sign-in system
type IdentityProvider interface {
	// VerifyToken returns the identity carried by a valid token
	VerifyToken(ctx context.Context, token string) (*entity.Identity, error)
}
