package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel mirrors the 'notifications' table.
type NotificationModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Kind      string     `gorm:"type:varchar(20);not null"`
	Title     string     `gorm:"type:varchar(200);not null"`
	Body      string     `gorm:"type:text"`
	DriveID   *uuid.UUID `gorm:"type:uuid"`
	ReadAt    *time.Time
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
