package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditLogModel mirrors the 'audit_logs' table. Rows are append-only; no
// repository exposes update or delete on them.
type AuditLogModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ActorID   *uuid.UUID `gorm:"type:uuid;index"`
	Action    string     `gorm:"type:varchar(50);not null;index"`
	Outcome   string     `gorm:"type:varchar(10);not null"`
	Subject   string     `gorm:"type:varchar(100)"`
	ClientIP  string     `gorm:"type:varchar(45)"`
	Detail    string     `gorm:"type:text"`
	CreatedAt time.Time  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AuditLogModel) TableName() string {
	return "audit_logs"
}
