package ico

import (
	iconencoder "github.com/wippyai/icon-encoder"
	"github.com/wippyai/icon-encoder/internal/binary"
)

const bitmapInfoHeaderSize = 40

// maskStride is the byte length of one AND-mask row, padded to 32 bits.
func maskStride(width uint32) int {
	return int((width + 31) / 32 * 4)
}

// EncodeBMP encodes img as an icon bitmap: a BITMAPINFOHEADER with doubled
// height, 32-bit BGRA rows bottom-up, then a 1-bit AND mask in the same row
// order where a set bit marks a fully transparent pixel.
func EncodeBMP(img *iconencoder.Image) []byte {
	w, h := int(img.Width), int(img.Height)
	stride := w * 4
	colorSize := stride * h
	maskRow := maskStride(img.Width)
	maskSize := maskRow * h

	out := binary.NewLEWriter()
	out.Grow(bitmapInfoHeaderSize + colorSize + maskSize)

	out.WriteU32(bitmapInfoHeaderSize)
	out.WriteI32(int32(w))
	out.WriteI32(int32(h * 2))
	out.WriteU16(1)  // planes
	out.WriteU16(32) // bits per pixel
	out.WriteU32(0)  // BI_RGB
	out.WriteU32(uint32(colorSize + maskSize))
	out.WriteI32(0) // x pixels per meter
	out.WriteI32(0) // y pixels per meter
	out.WriteU32(0) // colors used
	out.WriteU32(0) // colors important

	row := make([]byte, stride)
	for y := h - 1; y >= 0; y-- {
		src := img.Pixels[y*stride : (y+1)*stride]
		for x := 0; x < stride; x += 4 {
			row[x+0] = src[x+2]
			row[x+1] = src[x+1]
			row[x+2] = src[x+0]
			row[x+3] = src[x+3]
		}
		out.WriteBytes(row)
	}

	mask := make([]byte, maskRow)
	for y := h - 1; y >= 0; y-- {
		clear(mask)
		src := img.Pixels[y*stride : (y+1)*stride]
		for x := 0; x < w; x++ {
			if src[x*4+3] == 0 {
				mask[x>>3] |= 0x80 >> (x & 7)
			}
		}
		out.WriteBytes(mask)
	}

	return out.Bytes()
}
