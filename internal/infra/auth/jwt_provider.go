// Package auth provides concrete implementations of the identity provider.
package auth

import (
	"context"

	"locus/internal/domain/entity"
	domainerrors "locus/internal/domain/errors"
	"locus/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// IdentityClaims are the claims carried by tokens the jwt provider accepts.
// The subject is the account id.
type IdentityClaims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// jwtProvider verifies HS256 tokens signed with a shared secret.
type jwtProvider struct {
	secret []byte
	issuer string
}

// NewJWTProvider is the constructor for jwtProvider.
func NewJWTProvider(secret, issuer string) (service.IdentityProvider, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtProvider{secret: []byte(secret), issuer: issuer}, nil
}

// VerifyToken checks signature, expiry and issuer and returns the identity in the claims.
func (p *jwtProvider) VerifyToken(_ context.Context, tokenString string) (*entity.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if p.issuer != "" {
		opts = append(opts, jwt.WithIssuer(p.issuer))
	}

	claims := &IdentityClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return p.secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "invalid or expired token")
	}

	if claims.Subject == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "token has no subject")
	}

	return &entity.Identity{
		UID:         claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.Name,
	}, nil
}
