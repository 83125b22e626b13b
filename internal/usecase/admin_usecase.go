package usecase

import (
	"context"

	"locus/internal/domain/entity"
)

// AdminUsecase manages user profiles. Every operation requires an admin session.
type AdminUsecase interface {
	// ListUsers returns the profiles matching query, or all of them when query is empty.
	ListUsers(ctx context.Context, session *entity.Session, query string) ([]*entity.UserProfile, error)
	ChangeRole(ctx context.Context, session *entity.Session, uid string, role entity.Role) (*entity.UserProfile, error)
}
