// Package qr renders tracking links as QR code data URLs.
package qr

import (
	"encoding/base64"
	"fmt"

	"github.com/aryan26102004/Bill-Genius/internal/pkg/errs"

	"github.com/skip2/go-qrcode"
)

const imageSize = 256

// Generator implements the QRCodeGenerator port with an in-process PNG
// encoder. No external service is involved.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// DataURL encodes content as a PNG QR code and returns it as a data URL.
func (g *Generator) DataURL(content string) (string, error) {
	if content == "" {
		return "", errs.NewValueIsRequiredError("content")
	}

	png, err := qrcode.Encode(content, qrcode.Medium, imageSize)
	if err != nil {
		return "", fmt.Errorf("encode qr code: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
