package encoder

import (
	"bytes"
	"image"

	"github.com/HugoSmits86/nativewebp"
)

// encodeWebP writes lossless VP8L. Must stay cgo-free for the js/wasm build.
func encodeWebP(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(64 * 1024)

	if err := nativewebp.Encode(&buf, img, nil); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
