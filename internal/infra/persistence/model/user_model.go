package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Name         string    `gorm:"type:varchar(100)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:'guardian'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time `gorm:"index"`

	GuardianProfile *GuardianProfileModel `gorm:"foreignKey:UserID"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID"`
	Children        []ChildModel          `gorm:"foreignKey:GuardianID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// GuardianProfileModel mirrors the 'guardian_profiles' table. UserID references users.id (UUID).
type GuardianProfileModel struct {
	UserID      uuid.UUID `gorm:"primaryKey"`
	Phone       string    `gorm:"type:varchar(20)"`
	Address     string    `gorm:"type:text"`
	DeviceToken string    `gorm:"type:varchar(512)"`
	Locale      string    `gorm:"type:varchar(10)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (GuardianProfileModel) TableName() string {
	return "guardian_profiles"
}
