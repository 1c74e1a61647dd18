// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// VaccineDrive is a catalog entity describing a vaccination campaign.
// Drives are read-shared across all users and are not owned by anyone;
// only administrative accounts may create or modify them.
type VaccineDrive struct {
	ID          uuid.UUID // The unique identifier for the drive.
	Title       string    // Public title of the campaign.
	VaccineName string    // Vaccine offered during the drive.
	Description string    // Details shown to guardians.
	Location    string    // Where the drive takes place.
	StartsAt    time.Time // When the drive opens.
	EndsAt      time.Time // When the drive closes.
	Active      bool      // Inactive drives are hidden from listings.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
