package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateTourQR renders a PNG QR code that links to a tour page.
	GenerateTourQR(tourURL string) ([]byte, error)
}
