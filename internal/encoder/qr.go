// Package encoder renders text as QR code images. Encoding is pure: the
// same text and parameters always produce the same image, so results are
// safe to persist once and never regenerate.
package encoder

import (
	"encoding/base64"
	"fmt"
	"strings"

	qr "github.com/skip2/go-qrcode"
)

const dataURLPrefix = "data:image/png;base64,"

type QR struct {
	size  int
	level qr.RecoveryLevel
}

// New creates an encoder with a fixed image size (pixels per edge) and
// error-correction level (low, medium, high, highest).
func New(size int, level string) *QR {
	return &QR{
		size:  size,
		level: recoveryLevel(level),
	}
}

// Encode renders text as a PNG QR code wrapped in a data URL.
func (e *QR) Encode(text string) (string, error) {
	png, err := qr.Encode(text, e.level, e.size)
	if err != nil {
		return "", fmt.Errorf("render qr png: %w", err)
	}

	return dataURLPrefix + base64.StdEncoding.EncodeToString(png), nil
}

func recoveryLevel(name string) qr.RecoveryLevel {
	switch strings.ToLower(name) {
	case "low":
		return qr.Low
	case "high":
		return qr.High
	case "highest":
		return qr.Highest
	default:
		return qr.Medium
	}
}
