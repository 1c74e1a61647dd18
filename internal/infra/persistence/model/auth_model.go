package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshTokenModel mirrors the 'refresh_tokens' table. One row represents a
// whole rotation lineage: TokenHash always holds the digest of the latest
// issued refresh token, and rotation swaps it in place under a conditional
// update. RevokedAt being set kills every token ever issued for the lineage.
type RefreshTokenModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash     string    `gorm:"type:varchar(255);unique;not null"`
	ExpiresAt     time.Time `gorm:"not null"`
	CreatedAt     time.Time
	RotatedAt     *time.Time
	RevokedAt     *time.Time `gorm:"index"`
	RevokedReason string     `gorm:"type:varchar(20)"`
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
