package docstore

import (
	"context"

	"locus/config"
	"locus/internal/domain/entity"
	"locus/internal/domain/repository"

	"github.com/pkg/errors"
)

type userRepository struct {
	store      repository.RecordStore
	collection string
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(store repository.RecordStore, cfg *config.Config) repository.UserRepository {
	return &userRepository{
		store:      store,
		collection: cfg.Store.UserCollection,
	}
}

// FindUser retrieves a profile by uid.
func (repo *userRepository) FindUser(ctx context.Context, uid string) (*entity.UserProfile, error) {
	doc, err := repo.store.Get(ctx, repo.collection, uid)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(doc), nil
}

// CreateUser stores a new profile.
func (repo *userRepository) CreateUser(ctx context.Context, profile *entity.UserProfile) error {
	if err := repo.store.Set(ctx, repo.collection, profile.UID, fromUserDomain(profile)); err != nil {
		return errors.Wrap(err, "failed to create user")
	}

	return nil
}

// UpdateUserRole changes the role of an existing profile.
func (repo *userRepository) UpdateUserRole(ctx context.Context, uid string, role entity.Role) error {
	if err := repo.store.Update(ctx, repo.collection, uid, map[string]any{userRole: string(role)}); err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to update user role")
	}

	return nil
}

// ListUsers returns every profile in key order.
func (repo *userRepository) ListUsers(ctx context.Context) ([]*entity.UserProfile, error) {
	docs, err := repo.store.List(ctx, repo.collection, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.UserProfile, 0, len(docs))
	for _, doc := range docs {
		users = append(users, toUserDomain(doc))
	}

	return users, nil
}
