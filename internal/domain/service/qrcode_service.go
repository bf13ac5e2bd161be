package service

// QRCodeService renders QR codes for products.
type QRCodeService interface {
	// GenerateProductQR generates a PNG QR code encoding the product payload
	// for the given SKU.
	GenerateProductQR(sku string) ([]byte, error)
}
