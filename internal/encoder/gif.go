package encoder

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
)

// encodeGIF writes a single frame quantized to the 256-color Plan 9
// palette. Sources wider or taller than 65535 pixels are rejected by the
// GIF encoder.
func encodeGIF(img image.Image) ([]byte, error) {
	var buf bytes.Buffer

	err := imaging.Encode(&buf, img, imaging.GIF, imaging.GIFNumColors(256))
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
