package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCardQRService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewCardQRService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestCardQRService_GenerateCardQR(t *testing.T) {
	service := NewCardQRService(256, "M")
	childID := uuid.New()

	qrBytes, err := service.GenerateCardQR(childID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestCardQRService_GenerateCardQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewCardQRService(tt.size, "M")

			qrBytes, err := service.GenerateCardQR(uuid.New())
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestCardQRService_ParseCardQR(t *testing.T) {
	service := NewCardQRService(256, "M")
	childID := uuid.New()

	data := CardQRData{
		ChildID: childID.String(),
		Type:    cardPayloadType,
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParseCardQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, childID, parsedID)
}

func TestCardQRService_ParseCardQR_InvalidJSON(t *testing.T) {
	service := NewCardQRService(256, "M")

	_, err := service.ParseCardQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestCardQRService_ParseCardQR_InvalidType(t *testing.T) {
	service := NewCardQRService(256, "M")

	data := CardQRData{
		ChildID: uuid.New().String(),
		Type:    "invalid_type",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseCardQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestCardQRService_ParseCardQR_InvalidUUID(t *testing.T) {
	service := NewCardQRService(256, "M")

	data := CardQRData{
		ChildID: "not-a-valid-uuid",
		Type:    cardPayloadType,
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseCardQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse child ID")
}
