package encoder

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
)

// encodePNG is lossless, so a PNG→PNG conversion keeps every pixel.
func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(64 * 1024)

	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
