package auth

import (
	"context"
	"log/slog"

	"locus/config"
	"locus/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProviderParams holds dependencies for the IdentityProvider, injected by Fx
type ProviderParams struct {
	fx.In

	Ctx         context.Context
	Config      *config.Config
	Logger      *slog.Logger
	FirebaseApp *firebase.App `optional:"true"`
}

// NewIdentityProvider creates the IdentityProvider selected by identity.provider
func NewIdentityProvider(params ProviderParams) (service.IdentityProvider, error) {
	cfg := params.Config.Identity

	switch cfg.Provider {
	case config.IdentityProviderJWT:
		params.Logger.Info("Using JWT identity provider", slog.String("issuer", cfg.Issuer))

		return NewJWTProvider(cfg.JWTSecret, cfg.Issuer)

	case config.IdentityProviderFirebase:
		if params.FirebaseApp == nil {
			return nil, errors.New("firebase app is required for the firebase identity provider")
		}
		params.Logger.Info("Using Firebase identity provider")

		return NewFirebaseProvider(params.Ctx, params.FirebaseApp)

	default:
		return nil, errors.Errorf("unknown identity provider: %s", cfg.Provider)
	}
}
