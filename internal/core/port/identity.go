package port

import (
	"context"

	"campaign-hub/internal/core/domain"
)

// IdentityProvider resolves a bearer credential to the calling user. It
// returns domain.ErrUnauthorized for any credential it cannot verify.
type IdentityProvider interface {
	Authenticate(ctx context.Context, token string) (domain.Identity, error)
}
