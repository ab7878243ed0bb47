package service

// QRCodeService renders text payloads as QR code images.
type QRCodeService interface {
	// GenerateURLQR encodes the URL as a PNG QR code.
	GenerateURLQR(url string) ([]byte, error)
}
