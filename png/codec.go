package png

import (
	"bytes"
	"image"
	stdpng "image/png"

	iconencoder "github.com/wippyai/icon-encoder"
	"github.com/wippyai/icon-encoder/errors"
)

// Codec turns PNG bytes into RGBA pixels and back.
// The container encoders only rely on its output holding IHDR, IDAT and IEND.
type Codec interface {
	Decode(data []byte) (*iconencoder.Image, error)
	Encode(img *iconencoder.Image) ([]byte, error)
}

// StdCodec is a Codec backed by image/png.
type StdCodec struct {
	CompressionLevel stdpng.CompressionLevel
}

// DefaultCodec is used by encoders constructed without an explicit codec.
var DefaultCodec Codec = StdCodec{CompressionLevel: stdpng.BestCompression}

// Decode decodes any PNG color type and bit depth to 8-bit RGBA.
func (c StdCodec) Decode(data []byte) (*iconencoder.Image, error) {
	src, err := stdpng.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Decode(err)
	}
	if n, ok := src.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) && n.Stride == 4*n.Rect.Dx() {
		return &iconencoder.Image{
			Width:  uint32(n.Rect.Dx()),
			Height: uint32(n.Rect.Dy()),
			Pixels: n.Pix,
		}, nil
	}
	return iconencoder.FromImage(src), nil
}

// Encode encodes img as a PNG stream.
func (c StdCodec) Encode(img *iconencoder.Image) ([]byte, error) {
	enc := stdpng.Encoder{CompressionLevel: c.CompressionLevel}
	var buf bytes.Buffer
	if err := enc.Encode(&buf, img.NRGBA()); err != nil {
		return nil, errors.Encode(err)
	}
	return buf.Bytes(), nil
}

// EncodeMinimized encodes img with c and minimizes the result with a
// perceptual sRGB chunk, the form both icon containers embed.
func EncodeMinimized(c Codec, img *iconencoder.Image) ([]byte, error) {
	data, err := c.Encode(img)
	if err != nil {
		return nil, err
	}
	return MinimizeSRGB(data, IntentPerceptual)
}
