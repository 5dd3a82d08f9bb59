package otpx

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"

	"github.com/pquerna/otp"
)

// DefaultQRSize is the edge length in pixels of rendered QR codes.
const DefaultQRSize = 256

// QRCodeDataURL renders uri as a square PNG QR code of size pixels and
// returns it as a data URI suitable for an <img> src attribute. A size of
// zero or less uses DefaultQRSize.
func QRCodeDataURL(uri string, size int) (string, error) {
	if size <= 0 {
		size = DefaultQRSize
	}

	key, err := otp.NewKeyFromURL(uri)
	if err != nil {
		return "", fmt.Errorf("%w: parse enrollment uri: %v", ErrRendering, err)
	}

	img, err := key.Image(size, size)
	if err != nil {
		return "", fmt.Errorf("%w: encode qr code: %v", ErrRendering, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("%w: encode png: %v", ErrRendering, err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
