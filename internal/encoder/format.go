package encoder

import (
	"errors"
	"image"
)

var errUnknownFormat = errors.New("unknown output format")

// Format is one of the supported output encodings.
type Format int

const (
	PNG Format = iota + 1
	JPEG
	WebP
	GIF
)

// Resolve maps a target token to its Format. Tokens are case-sensitive
// and "jpg" is the only alias.
func Resolve(token string) (Format, bool) {
	switch token {
	case "png":
		return PNG, true
	case "jpg", "jpeg":
		return JPEG, true
	case "webp":
		return WebP, true
	case "gif":
		return GIF, true
	default:
		return 0, false
	}
}

// Tokens returns every accepted target token in resolution order.
func Tokens() []string {
	return []string{"png", "jpg", "jpeg", "webp", "gif"}
}

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case WebP:
		return "webp"
	case GIF:
		return "gif"
	}
	return "unknown"
}

// Extension returns the file extension without dot.
func (f Format) Extension() string { return f.String() }

// MIMEType returns the media type hosts should label the output with.
func (f Format) MIMEType() string {
	switch f {
	case PNG:
		return "image/png"
	case JPEG:
		return "image/jpeg"
	case WebP:
		return "image/webp"
	case GIF:
		return "image/gif"
	}
	return "application/octet-stream"
}

// Encode writes img in this format and returns the complete output.
// No bytes are returned when encoding fails.
func (f Format) Encode(img image.Image) ([]byte, error) {
	switch f {
	case PNG:
		return encodePNG(img)
	case JPEG:
		return encodeJPEG(img)
	case WebP:
		return encodeWebP(img)
	case GIF:
		return encodeGIF(img)
	}
	return nil, errUnknownFormat
}
