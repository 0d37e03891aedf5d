package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateStoreQR generates a PNG QR code pointing at a seller's store card
	GenerateStoreQR(sellerID uuid.UUID) ([]byte, error)
}
