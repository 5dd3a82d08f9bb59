package otpx

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQRCodeDataURL(t *testing.T) {
	uri, err := EnrollmentURI("JBSWY3DPEHPK3PXP", "MyApp", "MyIssuer")
	require.NoError(t, err)

	tests := []struct {
		name string
		size int
		want int
	}{
		{"default size", 0, DefaultQRSize},
		{"custom size", 320, 320},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataURL, err := QRCodeDataURL(uri, tt.size)
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(dataURL, "data:image/png;base64,"))

			raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, "data:image/png;base64,"))
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(raw))
			require.NoError(t, err)
			require.Equal(t, tt.want, img.Bounds().Dx())
			require.Equal(t, tt.want, img.Bounds().Dy())
		})
	}
}

func TestQRCodeDataURL_Deterministic(t *testing.T) {
	uri := "otpauth://totp/MyApp?secret=ABCD1234&issuer=MyIssuer"

	first, err := QRCodeDataURL(uri, 128)
	require.NoError(t, err)
	second, err := QRCodeDataURL(uri, 128)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestQRCodeDataURL_InvalidURI(t *testing.T) {
	_, err := QRCodeDataURL("otpauth://totp/bad\x7f%zz", 128)
	require.ErrorIs(t, err, ErrRendering)
}
