package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateLinkQR generates a QR code image for a ward's link code.
	GenerateLinkQR(linkCode string) ([]byte, error)

	// ParseLinkQR parses QR code data and returns the link code.
	ParseLinkQR(qrData string) (string, error)
}
