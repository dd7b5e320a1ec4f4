package png

import "github.com/skip2/go-qrcode"

// Qr renders content as a size x size pixel QR code PNG.
func Qr(content string, level qrcode.RecoveryLevel, size int) ([]byte, error) {
	return qrcode.Encode(content, level, size)
}

// Scaled renders an already built QR code with scale pixels per module.
func Scaled(q *qrcode.QRCode, scale int) ([]byte, error) {
	if scale < 1 {
		scale = 1
	}
	// negative size means pixels per module
	return q.PNG(-scale)
}
