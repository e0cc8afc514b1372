package png_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	ierrors "github.com/wippyai/icon-encoder/errors"
	"github.com/wippyai/icon-encoder/png"
)

func TestTag(t *testing.T) {
	tests := []struct {
		name string
		tag  png.Tag
	}{
		{"IHDR", png.TagIHDR},
		{"IDAT", png.TagIDAT},
		{"IEND", png.TagIEND},
		{"sRGB", png.TagSRGB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := png.TagOf(tt.name); got != tt.tag {
				t.Errorf("TagOf(%q) = 0x%08X, want 0x%08X", tt.name, uint32(got), uint32(tt.tag))
			}
			if tt.tag.String() != tt.name {
				t.Errorf("String() = %q, want %q", tt.tag.String(), tt.name)
			}
		})
	}
}

func TestWriteChunksLayout(t *testing.T) {
	data := png.WriteChunks([]png.Chunk{
		{Tag: png.TagIEND, Data: nil, CRC: 0xDEADBEEF},
	})

	want := []byte(png.Signature)
	want = append(want, 0, 0, 0, 0, 'I', 'E', 'N', 'D', 0xAE, 0x42, 0x60, 0x82)
	if !bytes.Equal(data, want) {
		t.Errorf("got %x\nwant %x", data, want)
	}
}

func TestReadChunksRoundTrip(t *testing.T) {
	in := []png.Chunk{
		{Tag: png.TagIHDR, Data: png.IHDR{Width: 3, Height: 5, BitDepth: 8, ColorType: 6}.Bytes()},
		{Tag: png.TagOf("tEXt"), Data: []byte("Comment\x00hi")},
		{Tag: png.TagIDAT, Data: []byte{1, 2, 3}},
		{Tag: png.TagIEND},
	}

	out, err := png.ReadChunks(png.WriteChunks(in))
	if err != nil {
		t.Fatalf("ReadChunks: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("got %d chunks, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i].Tag != in[i].Tag {
			t.Errorf("chunk %d: tag %s, want %s", i, out[i].Tag, in[i].Tag)
		}
		if !bytes.Equal(out[i].Data, in[i].Data) {
			t.Errorf("chunk %d: data %x, want %x", i, out[i].Data, in[i].Data)
		}
		tag := out[i].Tag.Bytes()
		if out[i].CRC != png.CRC32(append(tag[:], in[i].Data...)) {
			t.Errorf("chunk %d: bad crc 0x%08X", i, out[i].CRC)
		}
	}
}

func TestChunkReaderRestartable(t *testing.T) {
	data := png.WriteChunks([]png.Chunk{{Tag: png.TagIHDR, Data: make([]byte, 13)}, {Tag: png.TagIEND}})

	for pass := 0; pass < 2; pass++ {
		cr, err := png.NewChunkReader(data)
		if err != nil {
			t.Fatalf("pass %d: %v", pass, err)
		}
		c, err := cr.Next()
		if err != nil || c.Tag != png.TagIHDR {
			t.Fatalf("pass %d: first chunk %s, %v", pass, c.Tag, err)
		}
		if _, err := cr.Next(); err != nil {
			t.Fatalf("pass %d: second chunk: %v", pass, err)
		}
		if _, err := cr.Next(); err != io.EOF {
			t.Fatalf("pass %d: expected EOF, got %v", pass, err)
		}
	}
}

func TestChunkReaderErrors(t *testing.T) {
	valid := png.WriteChunks([]png.Chunk{{Tag: png.TagIDAT, Data: []byte{1, 2, 3, 4}}})

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short signature", []byte(png.Signature[:4])},
		{"bad signature", append([]byte("\x89PNX\r\n\x1a\n"), valid[8:]...)},
		{"truncated length", valid[:10]},
		{"truncated data", valid[:len(valid)-6]},
		{"missing crc", valid[:len(valid)-4]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := png.ReadChunks(tt.data)
			if !errors.Is(err, ierrors.ErrFormat) {
				t.Errorf("expected format error, got %v", err)
			}
		})
	}
}

func TestChunkReaderIgnoresCRC(t *testing.T) {
	data := png.WriteChunks([]png.Chunk{{Tag: png.TagIEND}})
	binary.BigEndian.PutUint32(data[len(data)-4:], 0)

	chunks, err := png.ReadChunks(data)
	if err != nil {
		t.Fatalf("ReadChunks: %v", err)
	}
	if chunks[0].CRC != 0 {
		t.Errorf("CRC = 0x%08X, want stored value 0", chunks[0].CRC)
	}
}
