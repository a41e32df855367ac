// Package convert re-encodes an in-memory image into another raster format.
//
// The source format is sniffed from the bytes. Decoders for PNG, JPEG, GIF,
// WebP, BMP and TIFF are registered below.
package convert

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/AnyUserName/imgconv/internal/encoder"
	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Convert decodes data, whatever its format, and encodes it as fileType
// (one of encoder.Tokens). On failure it returns a nil slice and an *Error.
// It keeps no state and is safe for concurrent use.
func Convert(data []byte, fileType string) ([]byte, error) {
	img, err := decode(data)
	if err != nil {
		return nil, err
	}

	format, ok := encoder.Resolve(fileType)
	if !ok {
		return nil, &Error{Kind: KindUnsupportedFormat, Token: fileType}
	}

	out, err := format.Encode(img)
	if err != nil {
		return nil, &Error{Kind: KindEncode, Err: err}
	}
	return out, nil
}

// Sniff reports the registered format name of data without decoding
// pixels. Errors are classified the same way as in Convert.
func Sniff(data []byte) (string, error) {
	if len(data) == 0 {
		return "", &Error{Kind: KindRead, Err: errEmptyInput}
	}
	_, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", classifyDecodeErr(err)
	}
	return name, nil
}

func decode(data []byte) (image.Image, error) {
	// Header check first: an unrecognized signature is a read error, a bad
	// header behind a known signature is a decode error.
	if _, err := Sniff(data); err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, classifyDecodeErr(err)
	}
	return img, nil
}

func classifyDecodeErr(err error) error {
	if errors.Is(err, image.ErrFormat) {
		return &Error{Kind: KindRead, Err: err}
	}
	return &Error{Kind: KindDecode, Err: err}
}
