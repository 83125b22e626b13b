package repository

import (
	"context"

	"locus/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrUserNotFound is returned when no profile is stored under a uid.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines user profile persistence.
type UserRepository interface {
	// FindUser retrieves a profile by uid, or ErrUserNotFound.
	FindUser(ctx context.Context, uid string) (*entity.UserProfile, error)

	// CreateUser stores a new profile.
	CreateUser(ctx context.Context, profile *entity.UserProfile) error

	// UpdateUserRole changes the role of an existing profile, or returns ErrUserNotFound.
	UpdateUserRole(ctx context.Context, uid string, role entity.Role) error

	// ListUsers returns every profile.
	ListUsers(ctx context.Context) ([]*entity.UserProfile, error)
}
