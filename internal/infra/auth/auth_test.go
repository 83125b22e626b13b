package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"locus/config"
	domainerrors "locus/internal/domain/errors"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret_key_very_long_for_testing"

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims IdentityClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func validClaims() IdentityClaims {
	return IdentityClaims{
		Email: "ana@example.com",
		Name:  "Ana",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "uid-1",
			Issuer:    "locus",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func TestJWTProvider_VerifyToken(t *testing.T) {
	provider, err := NewJWTProvider(testSecret, "locus")
	require.NoError(t, err)

	identity, err := provider.VerifyToken(context.Background(), signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims()))
	require.NoError(t, err)
	assert.Equal(t, "uid-1", identity.UID)
	assert.Equal(t, "ana@example.com", identity.Email)
	assert.Equal(t, "Ana", identity.DisplayName)
}

func TestJWTProvider_RejectsInvalidTokens(t *testing.T) {
	provider, err := NewJWTProvider(testSecret, "locus")
	require.NoError(t, err)

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	noExpiry := validClaims()
	noExpiry.ExpiresAt = nil

	wrongIssuer := validClaims()
	wrongIssuer.Issuer = "someone-else"

	noSubject := validClaims()
	noSubject.Subject = ""

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "wrong secret", token: signToken(t, jwt.SigningMethodHS256, []byte("other-secret"), validClaims())},
		{name: "wrong algorithm", token: signToken(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims())},
		{name: "expired", token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired)},
		{name: "no expiry", token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noExpiry)},
		{name: "wrong issuer", token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), wrongIssuer)},
		{name: "no subject", token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noSubject)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := provider.VerifyToken(context.Background(), tt.token)
			assert.Nil(t, identity)
			assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
		})
	}
}

func TestNewJWTProvider_RequiresSecret(t *testing.T) {
	_, err := NewJWTProvider("", "")
	assert.Error(t, err)
}

type stubVerifier struct {
	token *firebaseauth.Token
	err   error
}

func (s stubVerifier) VerifyIDToken(context.Context, string) (*firebaseauth.Token, error) {
	return s.token, s.err
}

func TestFirebaseProvider_VerifyToken(t *testing.T) {
	provider := &firebaseProvider{client: stubVerifier{token: &firebaseauth.Token{
		UID:    "uid-7",
		Claims: map[string]any{"email": "rui@example.com", "name": "Rui"},
	}}}

	identity, err := provider.VerifyToken(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, "uid-7", identity.UID)
	assert.Equal(t, "rui@example.com", identity.Email)
	assert.Equal(t, "Rui", identity.DisplayName)

	provider = &firebaseProvider{client: stubVerifier{err: errors.New("token expired")}}
	_, err = provider.VerifyToken(context.Background(), "id-token")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestNewIdentityProvider(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.Identity = config.IdentityConfig{Provider: config.IdentityProviderJWT, JWTSecret: testSecret}
	provider, err := NewIdentityProvider(ProviderParams{Ctx: context.Background(), Config: cfg, Logger: logger})
	require.NoError(t, err)
	assert.NotNil(t, provider)

	cfg.Identity.Provider = config.IdentityProviderFirebase
	_, err = NewIdentityProvider(ProviderParams{Ctx: context.Background(), Config: cfg, Logger: logger})
	assert.Error(t, err)

	cfg.Identity.Provider = "saml"
	_, err = NewIdentityProvider(ProviderParams{Ctx: context.Background(), Config: cfg, Logger: logger})
	assert.Error(t, err)
}
