// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing one account.
// A user is normally a guardian tracking their children's immunizations;
// administrative accounts carry RoleAdmin instead.
type User struct {
	ID              uuid.UUID        // The unique identifier for the user.
	Email           string           // The user's login identifier, unique across the system.
	Name            string           // The user's display name or real name.
	PasswordHash    string           // bcrypt hash of the password. Never serialized to clients.
	Role            Role             // The single role this account holds.
	GuardianProfile *GuardianProfile // Guardian contact details. Nil until the profile is filled in.
	CreatedAt       time.Time        // Timestamp of when this account was created.
	UpdatedAt       time.Time        // Timestamp of the last modification to this user's data.
}

// GuardianProfile holds contact and delivery preferences for a guardian account.
type GuardianProfile struct {
	UserID      uuid.UUID // Foreign key that links this profile to a core User entity.
	Phone       string    // Contact phone number used on immunization cards.
	Address     string    // Home address, shown to clinics during drives.
	DeviceToken string    // FCM device token for reminder pushes. Empty when push is not set up.
	Locale      string    // Preferred locale for notification text, e.g. "zh-TW".
	UpdatedAt   time.Time // Timestamp of the last modification to this profile.
}
