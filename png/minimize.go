package png

import (
	"io"

	"go.uber.org/zap"

	"github.com/wippyai/icon-encoder/errors"
)

// SRGBIntent is the rendering intent byte of an sRGB chunk.
type SRGBIntent uint8

const (
	IntentPerceptual           SRGBIntent = 0
	IntentRelativeColorimetric SRGBIntent = 1
	IntentSaturation           SRGBIntent = 2
	IntentAbsoluteColorimetric SRGBIntent = 3
)

// Minimize reduces a PNG stream to IHDR, one merged IDAT and IEND.
// Every other chunk is dropped; pixel data is untouched.
func Minimize(data []byte) ([]byte, error) {
	return minimize(data, 0, false)
}

// MinimizeSRGB is Minimize with a synthesized sRGB chunk placed right after IHDR.
func MinimizeSRGB(data []byte, intent SRGBIntent) ([]byte, error) {
	return minimize(data, intent, true)
}

func minimize(data []byte, intent SRGBIntent, srgb bool) ([]byte, error) {
	cr, err := NewChunkReader(data)
	if err != nil {
		return nil, err
	}

	var (
		ihdr, iend *Chunk
		idat       []byte
		dropped    int
	)
	for {
		c, err := cr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch c.Tag {
		case TagIHDR:
			if ihdr == nil {
				ihdr = &c
			}
		case TagIDAT:
			idat = append(idat, c.Data...)
		case TagIEND:
			if iend == nil {
				iend = &c
			}
		default:
			dropped++
		}
	}
	if ihdr == nil {
		return nil, errors.Format(errors.PhaseParse, "missing IHDR")
	}
	if iend == nil {
		return nil, errors.Format(errors.PhaseParse, "missing IEND")
	}

	out := make([]Chunk, 0, 4)
	out = append(out, Chunk{Tag: TagIHDR, Data: ihdr.Data})
	if srgb {
		out = append(out, Chunk{Tag: TagSRGB, Data: []byte{byte(intent)}})
	}
	if idat == nil {
		idat = []byte{}
	}
	out = append(out,
		Chunk{Tag: TagIDAT, Data: idat},
		Chunk{Tag: TagIEND, Data: iend.Data},
	)

	Logger().Debug("minimized png",
		zap.Int("in", len(data)),
		zap.Int("dropped_chunks", dropped),
		zap.Int("idat", len(idat)))

	return WriteChunks(out), nil
}
