package png

import (
	"encoding/binary"
	"io"

	"github.com/wippyai/icon-encoder/errors"
)

// IHDRSize is the body length of an IHDR chunk.
const IHDRSize = 13

// IHDR is the decoded PNG image header.
type IHDR struct {
	Width       uint32
	Height      uint32
	BitDepth    uint8
	ColorType   uint8
	Compression uint8
	Filter      uint8
	Interlace   uint8
}

// ParseIHDR decodes a 13-byte IHDR body.
func ParseIHDR(body []byte) (IHDR, error) {
	if len(body) < IHDRSize {
		return IHDR{}, errors.Format(errors.PhaseParse, "IHDR body is %d bytes, want %d", len(body), IHDRSize)
	}
	return IHDR{
		Width:       binary.BigEndian.Uint32(body[0:4]),
		Height:      binary.BigEndian.Uint32(body[4:8]),
		BitDepth:    body[8],
		ColorType:   body[9],
		Compression: body[10],
		Filter:      body[11],
		Interlace:   body[12],
	}, nil
}

// Bytes encodes the header as an IHDR chunk body.
func (h IHDR) Bytes() []byte {
	b := make([]byte, IHDRSize)
	binary.BigEndian.PutUint32(b[0:4], h.Width)
	binary.BigEndian.PutUint32(b[4:8], h.Height)
	b[8] = h.BitDepth
	b[9] = h.ColorType
	b[10] = h.Compression
	b[11] = h.Filter
	b[12] = h.Interlace
	return b
}

// PeekIHDR scans the chunk stream for the first IHDR without decoding pixels.
// IHDR is required to come first but some writers ignore that, so every
// chunk is considered.
func PeekIHDR(data []byte) (IHDR, error) {
	cr, err := NewChunkReader(data)
	if err != nil {
		return IHDR{}, err
	}
	for {
		c, err := cr.Next()
		if err == io.EOF {
			return IHDR{}, errors.Format(errors.PhaseParse, "missing IHDR")
		}
		if err != nil {
			return IHDR{}, err
		}
		if c.Tag == TagIHDR {
			return ParseIHDR(c.Data)
		}
	}
}
