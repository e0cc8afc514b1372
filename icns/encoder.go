package icns

import (
	"go.uber.org/zap"

	iconencoder "github.com/wippyai/icon-encoder"
	"github.com/wippyai/icon-encoder/errors"
	"github.com/wippyai/icon-encoder/internal/binary"
	"github.com/wippyai/icon-encoder/packbits"
	"github.com/wippyai/icon-encoder/png"
)

const (
	magic      = "icns"
	headerSize = 8
)

// Entry is one resource of the container, in encode order.
type Entry struct {
	Type Type
	Data []byte
}

// Encoder accumulates entries and lays them out as an ICNS file.
// It is not safe for concurrent use.
type Encoder struct {
	codec   png.Codec
	Entries []Entry
	// TOC enables the "TOC " index chunk ahead of the entries.
	TOC bool
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithTOC sets whether Encode writes a table of contents.
func WithTOC(toc bool) Option {
	return func(e *Encoder) {
		e.TOC = toc
	}
}

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

// AddFromPNG adds one entry per type from PNG data.
//
// With raw set, PNG-family types store data as given. All other types
// share a single decode of data, performed on first need. Entries added
// before a failing type are kept.
func (e *Encoder) AddFromPNG(data []byte, types []Type, raw bool) error {
	var img *iconencoder.Image
	for _, t := range types {
		if raw {
			if f, ok := FamilyOf(t); ok && f == FamilyPNG {
				e.append(t, append([]byte(nil), data...))
				continue
			}
		}
		if img == nil {
			decoded, err := e.codec.Decode(data)
			if err != nil {
				return err
			}
			img = decoded
		}
		if err := e.addType(img, t); err != nil {
			return err
		}
	}
	return nil
}

// AddFromRGBA adds one entry per type encoded from img.
func (e *Encoder) AddFromRGBA(img *iconencoder.Image, types []Type) error {
	for _, t := range types {
		if err := e.addType(img, t); err != nil {
			return err
		}
	}
	return nil
}

// AddRaw appends data under an arbitrary tag without validation.
func (e *Encoder) AddRaw(data []byte, t Type) {
	e.append(t, data)
}

// AddDarkICNS embeds a complete encoded ICNS as the dark-appearance variant.
// The embedded entry holds the body with the 8-byte header removed.
func (e *Encoder) AddDarkICNS(data []byte) error {
	if len(data) < headerSize || string(data[:4]) != magic {
		return errors.New(errors.PhaseValidate, errors.KindFormat).
			Path("icns", "dark").
			Detail("missing icns signature").
			Build()
	}
	r := binary.NewReader(data[4:8])
	size, _ := r.ReadU32BE()
	if int64(size) != int64(len(data)) {
		return errors.New(errors.PhaseValidate, errors.KindFormat).
			Path("icns", "dark").
			Value(size).
			Detail("declared size %d, have %d bytes", size, len(data)).
			Build()
	}
	e.append(TypeDark, append([]byte(nil), data[headerSize:]...))
	return nil
}

func (e *Encoder) addType(img *iconencoder.Image, t Type) error {
	f, ok := FamilyOf(t)
	if !ok {
		return errors.UnknownType(string(t))
	}
	data, err := e.encodeFamily(img, f, t)
	if err != nil {
		return err
	}
	e.append(t, data)
	return nil
}

func (e *Encoder) encodeFamily(img *iconencoder.Image, f Family, t Type) ([]byte, error) {
	switch f {
	case FamilyARGB:
		return encodeChannels(img, []byte("ARGB"), true), nil
	case FamilyPNG:
		return png.EncodeMinimized(e.codec, img)
	case FamilyRGB24:
		var header []byte
		if t == TypeIT32 {
			header = make([]byte, 4)
		}
		return encodeChannels(img, header, false), nil
	case FamilyMask8:
		return img.Channel(iconencoder.ChannelA), nil
	}
	return nil, errors.UnknownType(string(t))
}

// encodeChannels compresses each channel separately, alpha first when
// requested, then red, green and blue.
func encodeChannels(img *iconencoder.Image, header []byte, alpha bool) []byte {
	out := append([]byte(nil), header...)
	if alpha {
		out = append(out, packbits.Encode(img.Channel(iconencoder.ChannelA))...)
	}
	for _, c := range []int{iconencoder.ChannelR, iconencoder.ChannelG, iconencoder.ChannelB} {
		out = append(out, packbits.Encode(img.Channel(c))...)
	}
	return out
}

func (e *Encoder) append(t Type, data []byte) {
	e.Entries = append(e.Entries, Entry{Type: t, Data: data})
	Logger().Debug("icns entry added",
		zap.String("type", string(t)),
		zap.Int("size", len(data)))
}

// Encode lays out the container:
//
//	"icns" | u32 total | ["TOC " | u32 size | (tag | u32 size)*] | (tag | u32 size | payload)*
//
// Sizes are big-endian and include their own 8-byte chunk header.
func (e *Encoder) Encode() []byte {
	w := binary.NewBEWriter()
	w.WriteTag(magic)
	w.WriteU32(0)

	if e.TOC {
		w.WriteTag(string(TypeTOC))
		w.WriteU32(uint32(headerSize + headerSize*len(e.Entries)))
		for _, ent := range e.Entries {
			w.WriteTag(string(ent.Type))
			w.WriteU32(uint32(len(ent.Data) + headerSize))
		}
	}

	for _, ent := range e.Entries {
		w.WriteTag(string(ent.Type))
		w.WriteU32(uint32(len(ent.Data) + headerSize))
		w.WriteBytes(ent.Data)
	}

	w.PatchU32(4, uint32(w.Len()))

	Logger().Debug("icns encoded",
		zap.Int("entries", len(e.Entries)),
		zap.Bool("toc", e.TOC),
		zap.Int("size", w.Len()))

	return w.Bytes()
}
