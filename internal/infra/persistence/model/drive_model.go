package model

import (
	"time"

	"github.com/google/uuid"
)

// VaccineDriveModel mirrors the 'vaccine_drives' table. Drives are shared
// resources visible to every authenticated user.
type VaccineDriveModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title       string    `gorm:"type:varchar(200);not null"`
	VaccineName string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	Location    string    `gorm:"type:varchar(255)"`
	StartsAt    time.Time `gorm:"not null;index"`
	EndsAt      time.Time `gorm:"not null"`
	Active      bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (VaccineDriveModel) TableName() string {
	return "vaccine_drives"
}
