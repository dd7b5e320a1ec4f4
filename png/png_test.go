package png

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQr(t *testing.T) {
	data, err := Qr("ala ma kota", qrcode.Medium, 300)
	require.NoError(t, err, "failed to generate QR code")

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
}

func TestScaled(t *testing.T) {
	q, err := qrcode.New("ala ma kota", qrcode.Low)
	require.NoError(t, err)
	q.DisableBorder = true

	modules := len(q.Bitmap())

	data, err := Scaled(q, 4)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, modules*4, img.Bounds().Dx())
}
