package qrcode

import (
	"encoding/json"
	"fmt"

	"vaxtrack/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const cardPayloadType = "immunization_card"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// CardQRData represents the QR code payload printed on immunization cards
type CardQRData struct {
	ChildID string `json:"child_id"`
	Type    string `json:"type"`
}

// NewCardQRService creates a new QR code service instance
func NewCardQRService(size int, errorCorrectionLevel string) service.CardQRService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateCardQR renders a PNG QR code for the child's immunization card
func (s *qrcodeService) GenerateCardQR(childID uuid.UUID) ([]byte, error) {
	data := CardQRData{
		ChildID: childID.String(),
		Type:    cardPayloadType,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseCardQR extracts the child id from scanned QR payload data
func (s *qrcodeService) ParseCardQR(qrData string) (uuid.UUID, error) {
	var data CardQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != cardPayloadType {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	childID, err := uuid.Parse(data.ChildID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse child ID: %w", err)
	}

	return childID, nil
}
