package qrcode

import (
	"encoding/json"
	"strings"

	"marketplace/config"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	storeType   = "store"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// StoreQRData is the payload encoded in a store QR code
type StoreQRData struct {
	SellerID string `json:"seller_id"`
	Type     string `json:"type"`
	URL      string `json:"url,omitempty"`
}

// New builds the QR code service from configuration
func New(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M", "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
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
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateStoreQR generates a QR code pointing at a seller's store card
func (s *qrcodeService) GenerateStoreQR(sellerID uuid.UUID) ([]byte, error) {
	data := s.storeData(sellerID)

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func (s *qrcodeService) storeData(sellerID uuid.UUID) StoreQRData {
	data := StoreQRData{
		SellerID: sellerID.String(),
		Type:     storeType,
	}
	if s.baseURL != "" {
		data.URL = s.baseURL + "/" + sellerID.String()
	}

	return data
}
