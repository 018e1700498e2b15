// Package qrcode generates QR code images as raw PNG bytes or as a data-URI
// string embeddable into an <img> tag. It is a thin wrapper around
// github.com/skip2/go-qrcode with input validation and sensible defaults.
package qrcode

import (
	"encoding/base64"
	"errors"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrEmptyContent is returned when the content string is empty or whitespace.
	ErrEmptyContent = errors.New("qr content cannot be empty")
	// ErrGenerationFailed is returned when the underlying library fails.
	ErrGenerationFailed = errors.New("failed to generate QR code")
)

// defaultSize is the pixel size used when no positive size is specified.
const defaultSize = 256

// Generate creates a PNG QR code encoding content.
func Generate(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = defaultSize
	}
	png, err := skipqrcode.Encode(content, skipqrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrGenerationFailed, err)
	}
	return png, nil
}

// DataURI creates a base64 PNG data URI encoding content.
func DataURI(content string, size int) (string, error) {
	png, err := Generate(content, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
