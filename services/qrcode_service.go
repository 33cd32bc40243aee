// services/qrcode_service.go
package services

import (
	"github.com/skip2/go-qrcode"
)

// GenerateQRCode creates a QR code PNG pointing spectators at the
// public scoreboard URL.
func GenerateQRCode(publicURL string, size int) ([]byte, error) {
	if publicURL == "" {
		publicURL = "http://localhost:8080" // default for local testing
	}

	png, err := qrcode.Encode(publicURL, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	return png, nil
}
