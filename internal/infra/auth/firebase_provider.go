package auth

import (
	"context"

	"locus/internal/domain/entity"
	domainerrors "locus/internal/domain/errors"
	"locus/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

// firebaseTokenVerifier is the part of the Firebase Auth client the provider uses.
type firebaseTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

// firebaseProvider verifies Firebase Authentication ID tokens.
type firebaseProvider struct {
	client firebaseTokenVerifier
}

// NewFirebaseProvider creates an identity provider on the app's Auth client.
func NewFirebaseProvider(ctx context.Context, app *firebase.App) (service.IdentityProvider, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase Auth client")
	}

	return &firebaseProvider{client: client}, nil
}

// VerifyToken validates an ID token and reads the email and name claims.
func (p *firebaseProvider) VerifyToken(ctx context.Context, idToken string) (*entity.Identity, error) {
	token, err := p.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "invalid Firebase ID token")
	}

	identity := &entity.Identity{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		identity.DisplayName = name
	}

	return identity, nil
}
