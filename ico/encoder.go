package ico

import (
	"go.uber.org/zap"

	iconencoder "github.com/wippyai/icon-encoder"
	"github.com/wippyai/icon-encoder/internal/binary"
	"github.com/wippyai/icon-encoder/png"
)

const (
	dirHeaderSize = 6
	dirEntrySize  = 16
	iconType      = 1
)

// Format selects how an entry's image is stored.
type Format int

const (
	// FormatAuto stores small images as BMP and the rest as PNG.
	FormatAuto Format = iota
	// FormatPNG always embeds a PNG stream.
	FormatPNG
	// FormatBMP always stores a BMP with an AND mask.
	FormatBMP
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	default:
		return "auto"
	}
}

// Entry is one image of the container, in encode order.
type Entry struct {
	Data   []byte
	Width  uint32
	Height uint32
}

// Encoder accumulates entries and lays them out as an ICO file.
// It is not safe for concurrent use.
type Encoder struct {
	codec   png.Codec
	Entries []Entry
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithCodec sets the PNG pixel codec.
func WithCodec(c png.Codec) Option {
	return func(e *Encoder) {
		e.codec = c
	}
}

// New creates an empty encoder.
func New(opts ...Option) *Encoder {
	e := &Encoder{codec: png.DefaultCodec}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RequiresLegacyBitmap reports whether an image of this size defaults to BMP.
// Older Windows versions only read BMP entries below 64 pixels.
func RequiresLegacyBitmap(width, height uint32) bool {
	return width < 64 || height < 64
}

// AddFromPNG adds an entry from PNG data.
//
// With raw set and a format other than FormatBMP, only the IHDR is read and
// the PNG is stored verbatim whenever it would be stored as PNG anyway.
// Otherwise the PNG is decoded and handled by AddFromRGBA.
func (e *Encoder) AddFromPNG(data []byte, format Format, raw bool) error {
	if raw && format != FormatBMP {
		ihdr, err := png.PeekIHDR(data)
		if err != nil {
			return err
		}
		if format == FormatPNG || !RequiresLegacyBitmap(ihdr.Width, ihdr.Height) {
			e.append(Entry{
				Width:  ihdr.Width,
				Height: ihdr.Height,
				Data:   append([]byte(nil), data...),
			})
			return nil
		}
	}

	img, err := e.codec.Decode(data)
	if err != nil {
		return err
	}
	return e.AddFromRGBA(img, format)
}

// AddFromRGBA adds an entry encoded from img.
func (e *Encoder) AddFromRGBA(img *iconencoder.Image, format Format) error {
	isPNG := format == FormatPNG ||
		(format == FormatAuto && !RequiresLegacyBitmap(img.Width, img.Height))

	var data []byte
	if isPNG {
		var err error
		data, err = png.EncodeMinimized(e.codec, img)
		if err != nil {
			return err
		}
	} else {
		data = EncodeBMP(img)
	}

	e.append(Entry{Width: img.Width, Height: img.Height, Data: data})
	return nil
}

func (e *Encoder) append(ent Entry) {
	e.Entries = append(e.Entries, ent)
	Logger().Debug("ico entry added",
		zap.Uint32("width", ent.Width),
		zap.Uint32("height", ent.Height),
		zap.Int("size", len(ent.Data)))
}

// Encode lays out the container: ICONDIR, one ICONDIRENTRY per entry, then
// the payloads in the same order. All fields are little-endian.
func (e *Encoder) Encode() []byte {
	w := binary.NewLEWriter()
	w.WriteU16(0)
	w.WriteU16(iconType)
	w.WriteU16(uint16(len(e.Entries)))

	offset := uint32(dirHeaderSize + dirEntrySize*len(e.Entries))
	for _, ent := range e.Entries {
		w.Byte(dimByte(ent.Width))
		w.Byte(dimByte(ent.Height))
		w.Byte(0) // color count
		w.Byte(0) // reserved
		w.WriteU16(1)
		w.WriteU16(32)
		w.WriteU32(uint32(len(ent.Data)))
		w.WriteU32(offset)
		offset += uint32(len(ent.Data))
	}
	for _, ent := range e.Entries {
		w.WriteBytes(ent.Data)
	}

	Logger().Debug("ico encoded",
		zap.Int("entries", len(e.Entries)),
		zap.Int("size", w.Len()))

	return w.Bytes()
}

// dimByte stores 256 and above as 0.
func dimByte(v uint32) byte {
	if v >= 256 {
		return 0
	}
	return byte(v)
}
