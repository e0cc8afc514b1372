package iconencoder

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/wippyai/icon-encoder/errors"
)

// Channel offsets within an interleaved RGBA pixel.
const (
	ChannelR = 0
	ChannelG = 1
	ChannelB = 2
	ChannelA = 3
)

// Image is a decoded raster: row-major, 8 bits per channel, channels
// interleaved R,G,B,A with no row padding. Encoders treat it as read-only.
type Image struct {
	Width  uint32
	Height uint32
	Pixels []byte
}

// NewImage validates the pixel length and copies pixels so later writes to
// the caller's slice cannot reach the encoders.
func NewImage(width, height uint32, pixels []byte) (*Image, error) {
	want := uint64(width) * uint64(height) * 4
	if uint64(len(pixels)) != want {
		return nil, errors.New(errors.PhaseValidate, errors.KindInvalidInput).
			Value(len(pixels)).
			Detail("pixel length %d, want %d for %dx%d", len(pixels), want, width, height).
			Build()
	}
	pix := make([]byte, len(pixels))
	copy(pix, pixels)
	return &Image{Width: width, Height: height, Pixels: pix}, nil
}

// FromImage converts any image.Image to non-premultiplied RGBA.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return &Image{
		Width:  uint32(b.Dx()),
		Height: uint32(b.Dy()),
		Pixels: dst.Pix,
	}
}

// NRGBA returns a view of the image as *image.NRGBA sharing the pixel buffer.
func (m *Image) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    m.Pixels,
		Stride: int(m.Width) * 4,
		Rect:   image.Rect(0, 0, int(m.Width), int(m.Height)),
	}
}

// Channel extracts one channel as a byte per pixel.
func (m *Image) Channel(index int) []byte {
	out := make([]byte, len(m.Pixels)/4)
	for i, j := index, 0; i < len(m.Pixels); i += 4 {
		out[j] = m.Pixels[i]
		j++
	}
	return out
}

func (m *Image) String() string {
	return fmt.Sprintf("%dx%d", m.Width, m.Height)
}
