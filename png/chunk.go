package png

import (
	"bytes"
	"io"

	"github.com/wippyai/icon-encoder/errors"
	"github.com/wippyai/icon-encoder/internal/binary"
)

// Signature is the fixed 8-byte prefix of every PNG stream.
const Signature = "\x89PNG\r\n\x1a\n"

// Tag is a chunk type read as a big-endian uint32 of its four ASCII bytes.
type Tag uint32

const (
	TagIHDR Tag = 0x49484452
	TagIDAT Tag = 0x49444154
	TagIEND Tag = 0x49454E44
	TagSRGB Tag = 0x73524742
)

// TagOf converts a four-character chunk name to a Tag.
func TagOf(name string) Tag {
	var b [4]byte
	copy(b[:], name)
	return Tag(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]))
}

// Bytes returns the four tag bytes in stream order.
func (t Tag) Bytes() [4]byte {
	return [4]byte{byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t)}
}

func (t Tag) String() string {
	b := t.Bytes()
	return string(b[:])
}

// Chunk is one tag-length-value record of a PNG stream.
type Chunk struct {
	Data []byte
	Tag  Tag
	CRC  uint32
}

// ChunkReader walks the chunks of an in-memory PNG stream.
// CRCs are returned as stored and never checked.
type ChunkReader struct {
	r *binary.Reader
}

// NewChunkReader checks the signature and positions the reader on the first chunk.
func NewChunkReader(data []byte) (*ChunkReader, error) {
	if len(data) < len(Signature) || !bytes.Equal(data[:len(Signature)], []byte(Signature)) {
		return nil, errors.Format(errors.PhaseParse, "invalid PNG signature")
	}
	r := binary.NewReader(data)
	_, _ = r.ReadBytes(len(Signature))
	return &ChunkReader{r: r}, nil
}

// Next returns the next chunk, or io.EOF once the buffer is exhausted.
// A chunk cut short by the end of the buffer is a format error.
func (cr *ChunkReader) Next() (Chunk, error) {
	if cr.r.Len() == 0 {
		return Chunk{}, io.EOF
	}
	start := cr.r.Position()
	length, err := cr.r.ReadU32BE()
	if err != nil {
		return Chunk{}, truncated(start)
	}
	tag, err := cr.r.ReadU32BE()
	if err != nil {
		return Chunk{}, truncated(start)
	}
	data, err := cr.r.ReadBytes(int(length))
	if err != nil {
		return Chunk{}, truncated(start)
	}
	crc, err := cr.r.ReadU32BE()
	if err != nil {
		return Chunk{}, truncated(start)
	}
	return Chunk{Tag: Tag(tag), Data: data, CRC: crc}, nil
}

func truncated(offset int) *errors.Error {
	return errors.New(errors.PhaseParse, errors.KindFormat).
		Value(offset).
		Detail("truncated chunk at offset %d", offset).
		Build()
}

// ReadChunks parses every chunk of data.
func ReadChunks(data []byte) ([]Chunk, error) {
	cr, err := NewChunkReader(data)
	if err != nil {
		return nil, err
	}
	var chunks []Chunk
	for {
		c, err := cr.Next()
		if err == io.EOF {
			return chunks, nil
		}
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, c)
	}
}

// WriteChunks emits the signature followed by each chunk as
// length | tag | data | crc. The CRC field of the input is ignored and
// recomputed from tag and data.
func WriteChunks(chunks []Chunk) []byte {
	size := len(Signature)
	for _, c := range chunks {
		size += 12 + len(c.Data)
	}

	w := binary.NewBEWriter()
	w.Grow(size)
	w.WriteBytes([]byte(Signature))
	for _, c := range chunks {
		w.WriteU32(uint32(len(c.Data)))
		w.WriteU32(uint32(c.Tag))
		w.WriteBytes(c.Data)
		w.WriteU32(chunkCRC(c.Tag, c.Data))
	}
	return w.Bytes()
}
