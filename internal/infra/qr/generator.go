package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const defaultSize = 512

// Generator renders target URLs into PNG QR codes.
type Generator struct {
	Size int
}

func NewGenerator() *Generator {
	return &Generator{Size: defaultSize}
}

// EncodePNG renders the URL as a PNG at the configured pixel size.
func (g *Generator) EncodePNG(url string) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = defaultSize
	}
	png, err := qrcode.Encode(url, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encoding qr png: %w", err)
	}
	return png, nil
}
