// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Revocation reasons recorded on a refresh token lineage.
const (
	RevokeReasonLogout = "logout"
	RevokeReasonReuse  = "reuse"
	RevokeReasonManual = "manual"
)

// RefreshToken represents one rotation lineage: the chain of refresh tokens
// descending from a single login. Only the hash of the currently valid token
// is stored; rotation swaps the hash in place with a conditional update so a
// replayed pre-rotation token can be detected and the lineage revoked.
type RefreshToken struct {
	ID            uuid.UUID  // Lineage ID, embedded in refresh token claims as "sid".
	UserID        uuid.UUID  // Links this session to the User it belongs to.
	TokenHash     string     // SHA-256 hash of the currently valid raw refresh token.
	ExpiresAt     time.Time  // When this lineage expires regardless of rotation.
	CreatedAt     time.Time  // When this session was created (the login time).
	RotatedAt     *time.Time // When the hash was last swapped. Nil before first rotation.
	RevokedAt     *time.Time // When the lineage was revoked. Nil while valid.
	RevokedReason string     // One of the RevokeReason constants, empty while valid.
}

// Active reports whether the lineage may still mint access tokens at the given time.
func (t *RefreshToken) Active(now time.Time) bool {
	return t.RevokedAt == nil && t.ExpiresAt.After(now)
}

// SessionInfo is a read model describing one session for session management APIs.
type SessionInfo struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
	ExpiresAt time.Time
	RotatedAt *time.Time
	IsActive  bool
}
