package service

// QRCodeService defines the interface for asset label generation
type QRCodeService interface {
	// GenerateAssetLabel renders a PNG QR code whose scanned payload is exactly the asset code
	GenerateAssetLabel(code string) ([]byte, error)
}
