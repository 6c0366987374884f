// Package qrcode renders the order-tracking QR codes embedded in
// confirmation mails and served to the storefront.
package qrcode

import (
	"fmt"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const defaultTrackingBase = "/orders"

type qrcodeService struct {
	trackingBaseURL      string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance. The encoded
// payload is the order tracking URL, so any phone camera lands on the
// tracking page directly.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	base := defaultTrackingBase
	if cfg.SMTP != nil && cfg.SMTP.TrackingBaseURL != "" {
		base = strings.TrimSuffix(cfg.SMTP.TrackingBaseURL, "/")
	}

	return &qrcodeService{
		trackingBaseURL:      base,
		size:                 256,
		errorCorrectionLevel: qrcode.Medium,
	}
}

// GenerateOrderQR renders a PNG QR code encoding the order's tracking URL.
func (s *qrcodeService) GenerateOrderQR(orderID uuid.UUID) ([]byte, error) {
	trackingURL := fmt.Sprintf("%s/%s", s.trackingBaseURL, orderID)

	qrCode, err := qrcode.New(trackingURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
