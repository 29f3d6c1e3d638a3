// Package imaging prepares uploaded images for classification. It decodes
// arbitrary input formats, forces three-channel RGB, resizes to the
// classifier's fixed input dimensions and maps pixels to the value range the
// model was trained on.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/verifeed/verifeed/internal/common"

	_ "image/gif"
	_ "image/jpeg"

	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	// InputSize is the square edge length of the classifier input.
	InputSize = 150
	// Channels is the number of color channels the classifier expects.
	Channels = 3
)

// Tensor is a normalized image in NHWC layout (batch, height, width, channel)
// with a batch size of one.
type Tensor [][][][]float32

// Decode interprets raw upload bytes as an image. All registered formats are
// accepted (PNG, JPEG, GIF, BMP, TIFF, WebP).
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrDecode, err)
	}
	return img, nil
}

// Normalize converts a decoded image into the classifier's input tensor.
// The resize uses the Catmull-Rom kernel, so a given input always produces
// the same tensor. Pixel values are shifted to [-1, 1] (x/127.5 - 1),
// matching the distribution the frozen model was trained with.
func Normalize(img image.Image) Tensor {
	dst := image.NewRGBA(image.Rect(0, 0, InputSize, InputSize))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	rows := make([][][]float32, InputSize)
	for y := 0; y < InputSize; y++ {
		row := make([][]float32, InputSize)
		for x := 0; x < InputSize; x++ {
			px := dst.RGBAAt(x, y)
			row[x] = []float32{
				float32(px.R)/127.5 - 1,
				float32(px.G)/127.5 - 1,
				float32(px.B)/127.5 - 1,
			}
		}
		rows[y] = row
	}

	return Tensor{rows}
}

// EncodePNG renders an image back to PNG bytes for the blob write. Accepted
// uploads are stored re-encoded rather than verbatim, so the stored object is
// always a well-formed PNG regardless of the submitted format.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
