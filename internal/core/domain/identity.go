package domain

import "github.com/google/uuid"

// Identity is the authenticated caller as reported by the identity
// provider. Only UserID is relied upon for authorization decisions.
type Identity struct {
	UserID uuid.UUID
	Role   string
}
