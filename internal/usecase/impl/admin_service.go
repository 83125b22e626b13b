package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "locus/internal/delivery/context"
	"locus/internal/domain/access"
	"locus/internal/domain/entity"
	domainerrors "locus/internal/domain/errors"
	"locus/internal/domain/repository"
	"locus/internal/domain/service"
	"locus/internal/usecase"

	"github.com/pkg/errors"
)

type adminService struct {
	userRepo repository.UserRepository
	metrics  service.InventoryMetrics
	logger   *slog.Logger
}

// NewAdminService creates a new admin service instance
func NewAdminService(
	userRepo repository.UserRepository,
	metrics service.InventoryMetrics,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		userRepo: userRepo,
		metrics:  metrics,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers matches query case-insensitively against uid, email, display name and role.
func (srv *adminService) ListUsers(ctx context.Context, session *entity.Session, query string) ([]*entity.UserProfile, error) {
	if err := srv.authorize(ctx, session, access.OperationListUsers); err != nil {
		return nil, err
	}

	users, err := srv.userRepo.ListUsers(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, domainerrors.NewStoreUnavailableError(err, "list users")
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return users, nil
	}

	matched := make([]*entity.UserProfile, 0, len(users))
	for _, user := range users {
		if matchesUser(user, needle) {
			matched = append(matched, user)
		}
	}

	return matched, nil
}

// ChangeRole assigns role to the profile stored under uid.
func (srv *adminService) ChangeRole(ctx context.Context, session *entity.Session, uid string, role entity.Role) (*entity.UserProfile, error) {
	if err := srv.authorize(ctx, session, access.OperationChangeRole); err != nil {
		return nil, err
	}

	if !role.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrInvalidRole)
	}

	uid = strings.TrimSpace(uid)
	if err := srv.userRepo.UpdateUserRole(ctx, uid, role); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrUserNotFound, "uid %s", uid)
		}
		srv.log(ctx).Error("Failed to change role", slog.String("uid", uid), slog.Any("error", err))

		return nil, domainerrors.NewStoreUnavailableError(err, "change role of "+uid)
	}

	profile, err := srv.userRepo.FindUser(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrUserNotFound, "uid %s", uid)
		}

		return nil, domainerrors.NewStoreUnavailableError(err, "read user "+uid)
	}

	srv.log(ctx).Info("Role changed",
		slog.String("uid", uid),
		slog.String("role", string(role)),
		slog.String("actor", session.Actor()),
	)

	return profile, nil
}

func (srv *adminService) authorize(ctx context.Context, session *entity.Session, op access.Operation) error {
	if err := access.Authorize(session, op); err != nil {
		if errors.Is(err, domainerrors.ErrPermissionDenied) {
			srv.metrics.AccessDenied(string(op))
			srv.log(ctx).Warn("Operation denied", slog.String("operation", string(op)), slog.String("actor", session.Actor()))
		}

		return err
	}

	return nil
}

func matchesUser(user *entity.UserProfile, needle string) bool {
	for _, value := range []string{user.UID, user.Email, user.DisplayName, string(user.Role)} {
		if strings.Contains(strings.ToLower(value), needle) {
			return true
		}
	}

	return false
}
