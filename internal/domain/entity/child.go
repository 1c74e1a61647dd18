// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Child represents one child whose immunizations are tracked. A child is
// owned by exactly one guardian; the owner id is the pivot of row-level
// isolation for the whole record chain underneath it.
type Child struct {
	ID          uuid.UUID // The unique identifier for the child.
	GuardianID  uuid.UUID // The owning guardian's user id.
	Name        string    // The child's name.
	BirthDate   time.Time // Date of birth, used to compute due vaccines.
	Sex         string    // "male", "female" or "other".
	BirthCertNo string    // Birth certificate number. Optional, unique when present.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// VaccineRecord represents a single administered dose for a child.
// Ownership is transitive through the child's guardian.
type VaccineRecord struct {
	ID             uuid.UUID  // The unique identifier for the record.
	ChildID        uuid.UUID  // The child this dose was administered to.
	VaccineName    string     // Vaccine name, e.g. "MMR", "DTaP".
	DoseNumber     int        // 1-based dose number within the vaccine series.
	AdministeredAt time.Time  // When the dose was administered.
	AdministeredBy string     // The clinic or practitioner that administered it.
	DriveID        *uuid.UUID // Set when the dose was given during a drive.
	Notes          string     // Free-form notes, e.g. batch number or reactions.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
