package model

import (
	"time"

	"github.com/google/uuid"
)

// ChildModel mirrors the 'children' table. GuardianID is the row-level
// isolation key: every non-admin query on this table filters by it.
type ChildModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	GuardianID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	BirthDate   time.Time `gorm:"type:date;not null"`
	Sex         string    `gorm:"type:varchar(10)"`
	BirthCertNo string    `gorm:"type:varchar(50);unique"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Records []VaccineRecordModel `gorm:"foreignKey:ChildID"`
}

// TableName explicitly sets the table name for GORM.
func (ChildModel) TableName() string {
	return "children"
}

// VaccineRecordModel mirrors the 'vaccine_records' table. Ownership is
// derived through the child row, so scoped queries join on children.
type VaccineRecordModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ChildID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	VaccineName    string     `gorm:"type:varchar(100);not null"`
	DoseNumber     int        `gorm:"not null"`
	AdministeredAt time.Time  `gorm:"type:date;not null"`
	AdministeredBy string     `gorm:"type:varchar(100)"`
	DriveID        *uuid.UUID `gorm:"type:uuid"`
	Notes          string     `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (VaccineRecordModel) TableName() string {
	return "vaccine_records"
}
