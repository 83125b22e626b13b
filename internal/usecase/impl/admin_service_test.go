package impl

import (
	"context"
	"testing"

	"locus/internal/domain/entity"
	domainerrors "locus/internal/domain/errors"
	"locus/internal/domain/repository"
	mockRepo "locus/internal/mocks/repository"
	"locus/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service  usecase.AdminUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)

	return adminServiceFixtures{
		service:  NewAdminService(userRepo, newTestMetrics(), newTestLogger()),
		userRepo: userRepo,
	}
}

var testProfiles = []*entity.UserProfile{
	{UID: "uid-1", Email: "ana@example.com", DisplayName: "Ana Souza", Role: entity.RoleAdmin},
	{UID: "uid-2", Email: "bruno@example.com", DisplayName: "Bruno", Role: entity.RoleUser},
	{UID: "uid-3", Email: "carla@corp.com", DisplayName: "Carla", Role: entity.RoleUser},
}

func TestAdminService_ListUsers_Query(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{query: "", want: []string{"uid-1", "uid-2", "uid-3"}},
		{query: "EXAMPLE", want: []string{"uid-1", "uid-2"}},
		{query: "souza", want: []string{"uid-1"}},
		{query: "admin", want: []string{"uid-1"}},
		{query: "uid-3", want: []string{"uid-3"}},
		{query: "nobody", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			fx := createTestAdminService(t)
			ctx := context.Background()

			fx.userRepo.EXPECT().ListUsers(ctx).Return(testProfiles, nil)

			users, err := fx.service.ListUsers(ctx, adminSession(), tt.query)
			require.NoError(t, err)

			uids := make([]string, 0, len(users))
			for _, user := range users {
				uids = append(uids, user.UID)
			}
			assert.Equal(t, tt.want, uids)
		})
	}
}

func TestAdminService_ChangeRole(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().UpdateUserRole(ctx, "uid-2", entity.RoleAdmin).Return(nil)
	fx.userRepo.EXPECT().
		FindUser(ctx, "uid-2").
		Return(&entity.UserProfile{UID: "uid-2", Email: "bruno@example.com", Role: entity.RoleAdmin}, nil)

	profile, err := fx.service.ChangeRole(ctx, adminSession(), "uid-2", entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, profile.Role)
}

func TestAdminService_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("non-admin cannot list", func(t *testing.T) {
		fx := createTestAdminService(t)
		_, err := fx.service.ListUsers(ctx, userSession(), "")
		assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	})

	t.Run("non-admin cannot change role", func(t *testing.T) {
		fx := createTestAdminService(t)
		_, err := fx.service.ChangeRole(ctx, userSession(), "uid-2", entity.RoleAdmin)
		assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	})

	t.Run("invalid role", func(t *testing.T) {
		fx := createTestAdminService(t)
		_, err := fx.service.ChangeRole(ctx, adminSession(), "uid-2", "owner")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
	})

	t.Run("absent user", func(t *testing.T) {
		fx := createTestAdminService(t)
		fx.userRepo.EXPECT().UpdateUserRole(ctx, "uid-9", entity.RoleUser).Return(repository.ErrUserNotFound)

		_, err := fx.service.ChangeRole(ctx, adminSession(), "uid-9", entity.RoleUser)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		fx := createTestAdminService(t)
		fx.userRepo.EXPECT().ListUsers(ctx).Return(nil, errors.New("unavailable"))

		_, err := fx.service.ListUsers(ctx, adminSession(), "")
		assert.True(t, domainerrors.IsStoreUnavailable(err))
	})
}
