package qr

import (
	"fmt"
	"image/color"

	qrcode "github.com/skip2/go-qrcode"
)

const imageSize = 256

// Render encodes content as a PNG QR code. colorHex picks the foreground
// in #RGB or #RRGGBB form; empty means black. The background is always
// white.
func Render(content, colorHex string) ([]byte, error) {
	if content == "" {
		return nil, fmt.Errorf("qr: content is empty")
	}

	fg, err := parseHexColor(colorHex)
	if err != nil {
		return nil, err
	}

	code, err := qrcode.New(content, qrcode.Low)
	if err != nil {
		return nil, fmt.Errorf("qr: %w", err)
	}
	code.ForegroundColor = fg
	code.BackgroundColor = color.White

	png, err := code.PNG(imageSize)
	if err != nil {
		return nil, fmt.Errorf("qr: %w", err)
	}
	return png, nil
}

func parseHexColor(s string) (color.RGBA, error) {
	if s == "" {
		s = "#000000"
	}
	c := color.RGBA{A: 0xff}

	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		// Double the nibbles: #f0a means #ff00aa.
		c.R *= 17
		c.G *= 17
		c.B *= 17
	default:
		err = fmt.Errorf("length %d", len(s))
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("qr: invalid color %q: %w", s, err)
	}
	return c, nil
}
