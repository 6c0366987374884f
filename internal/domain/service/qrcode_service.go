package service

import "github.com/google/uuid"

// QRCodeService defines the interface for generating order-tracking QR codes.
type QRCodeService interface {
	// GenerateOrderQR renders a PNG QR code encoding the tracking URL of the
	// given order.
	GenerateOrderQR(orderID uuid.UUID) ([]byte, error)
}
