package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "locus/internal/delivery/context"
	"locus/internal/domain/entity"
	domainerrors "locus/internal/domain/errors"
	"locus/internal/domain/repository"
	"locus/internal/domain/service"
	"locus/internal/usecase"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	identity service.IdentityProvider
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	identity service.IdentityProvider,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		identity: identity,
		userRepo: userRepo,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate verifies token and resolves the session of the account it names.
func (srv *sessionService) Authenticate(ctx context.Context, token string) (*entity.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	identity, err := srv.identity.VerifyToken(ctx, token)
	if err != nil {
		srv.log(ctx).Debug("Token verification failed", slog.Any("error", err))
		if errors.Is(err, domainerrors.ErrUnauthenticated) {
			return nil, err
		}

		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, err.Error())
	}

	return srv.HandleEvent(ctx, entity.IdentityEvent{Type: entity.IdentitySignIn, Identity: identity})
}

// HandleEvent applies an identity change. Sign-in reads the account profile,
// creating a default one on first sign-in. A profile that cannot be read
// resolves to the user role.
func (srv *sessionService) HandleEvent(ctx context.Context, event entity.IdentityEvent) (*entity.Session, error) {
	switch event.Type {
	case entity.IdentitySignOut:
		srv.log(ctx).Debug("Identity signed out")

		return entity.NewUnauthenticatedSession(), nil
	case entity.IdentitySignIn, entity.IdentitySessionChanged:
	default:
		return nil, errors.Errorf("unknown identity event: %s", event.Type)
	}

	if event.Identity == nil || event.Identity.UID == "" {
		return entity.NewUnauthenticatedSession(), nil
	}

	session := entity.NewResolvingSession(event.Identity)
	session.Role = srv.resolveRole(ctx, event.Identity)
	session.State = entity.SessionResolved

	srv.log(ctx).Debug("Session resolved",
		slog.String("account_id", session.AccountID),
		slog.String("role", string(session.Role)),
	)

	return session, nil
}

func (srv *sessionService) resolveRole(ctx context.Context, identity *entity.Identity) entity.Role {
	profile, err := srv.userRepo.FindUser(ctx, identity.UID)
	if err == nil {
		if !profile.Role.IsValid() {
			srv.log(ctx).Warn("Stored profile has an unknown role, treating as user",
				slog.String("uid", identity.UID),
				slog.String("role", string(profile.Role)),
			)

			return entity.RoleUser
		}

		return profile.Role
	}

	if !errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Failed to read user profile, resolving to user role",
			slog.String("uid", identity.UID),
			slog.Any("error", err),
		)

		return entity.RoleUser
	}

	profile = &entity.UserProfile{
		UID:         identity.UID,
		Email:       identity.Email,
		DisplayName: identity.DisplayName,
		Role:        entity.RoleUser,
	}
	if err := srv.userRepo.CreateUser(ctx, profile); err != nil {
		srv.log(ctx).Warn("Failed to create default user profile",
			slog.String("uid", identity.UID),
			slog.Any("error", err),
		)
	} else {
		srv.log(ctx).Info("Created default user profile", slog.String("uid", identity.UID))
	}

	return entity.RoleUser
}
