package service

import "github.com/google/uuid"

// CardQRService generates and parses the QR codes printed on immunization
// cards. The payload identifies a child; scanning clinics resolve it through
// the scoped record API, so the QR itself grants no access.
type CardQRService interface {
	// GenerateCardQR renders a PNG QR code for the child's immunization card.
	GenerateCardQR(childID uuid.UUID) ([]byte, error)

	// ParseCardQR extracts the child id from scanned QR payload data.
	ParseCardQR(qrData string) (uuid.UUID, error)
}
