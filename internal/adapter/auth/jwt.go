package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"campaign-hub/internal/config/configs"
	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
)

type claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTProvider verifies HS256 bearer tokens issued by the account service.
// The subject claim carries the user id; the optional role claim is passed
// through untouched.
type JWTProvider struct {
	secret   []byte
	issuer   string
	audience string
	leeway   time.Duration
	now      func() time.Time
}

var _ port.IdentityProvider = (*JWTProvider)(nil)

// NewJWTProvider builds a provider from configuration.
func NewJWTProvider(cfg configs.Auth) (*JWTProvider, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	return &JWTProvider{
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		leeway:   cfg.Leeway,
		now:      time.Now,
	}, nil
}

// Authenticate parses and validates raw. Every failure is reported as
// domain.ErrUnauthorized.
func (p *JWTProvider) Authenticate(_ context.Context, raw string) (domain.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(p.leeway),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	}
	if p.issuer != "" {
		opts = append(opts, jwt.WithIssuer(p.issuer))
	}
	if p.audience != "" {
		opts = append(opts, jwt.WithAudience(p.audience))
	}

	parsed, err := jwt.ParseWithClaims(raw, &claims{}, func(*jwt.Token) (any, error) {
		return p.secret, nil
	}, opts...)
	if err != nil {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return domain.Identity{}, domain.ErrUnauthorized.WithMessage("token subject is not a user id")
	}
	return domain.Identity{UserID: userID, Role: c.Role}, nil
}

// Issue signs a token for id valid for ttl. It exists for local
// development and tests; production tokens come from the account service.
func (p *JWTProvider) Issue(id domain.Identity, ttl time.Duration) (string, error) {
	now := p.now()
	rc := jwt.RegisteredClaims{
		Subject:   id.UserID.String(),
		Issuer:    p.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	if p.audience != "" {
		rc.Audience = jwt.ClaimStrings{p.audience}
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{Role: id.Role, RegisteredClaims: rc})
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
