package encoder

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
)

// jpegQuality is fixed; callers cannot tune it.
const jpegQuality = 75

func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(64 * 1024)

	err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality))
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
