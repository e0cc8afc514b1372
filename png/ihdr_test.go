package png_test

import (
	"errors"
	"testing"

	ierrors "github.com/wippyai/icon-encoder/errors"
	"github.com/wippyai/icon-encoder/png"
)

func TestPeekIHDR(t *testing.T) {
	tests := []png.IHDR{
		{Width: 1, Height: 1, BitDepth: 8, ColorType: 6},
		{Width: 16, Height: 32, BitDepth: 16, ColorType: 2, Interlace: 1},
		{Width: 1024, Height: 1024, BitDepth: 1, ColorType: 0, Compression: 0, Filter: 0},
		{Width: 0x7FFFFFFF, Height: 0x10203040, BitDepth: 4, ColorType: 3},
	}

	for _, h := range tests {
		data := png.WriteChunks([]png.Chunk{
			{Tag: png.TagIHDR, Data: h.Bytes()},
			{Tag: png.TagIDAT, Data: []byte{0x78, 0x9c}},
			{Tag: png.TagIEND},
		})
		got, err := png.PeekIHDR(data)
		if err != nil {
			t.Fatalf("PeekIHDR(%dx%d): %v", h.Width, h.Height, err)
		}
		if got != h {
			t.Errorf("PeekIHDR = %+v, want %+v", got, h)
		}
	}
}

func TestPeekIHDRNotFirst(t *testing.T) {
	h := png.IHDR{Width: 48, Height: 64, BitDepth: 8, ColorType: 6}
	data := png.WriteChunks([]png.Chunk{
		{Tag: png.TagOf("tEXt"), Data: []byte("a\x00b")},
		{Tag: png.TagIHDR, Data: h.Bytes()},
	})
	got, err := png.PeekIHDR(data)
	if err != nil {
		t.Fatalf("PeekIHDR: %v", err)
	}
	if got.Width != 48 || got.Height != 64 {
		t.Errorf("got %dx%d, want 48x64", got.Width, got.Height)
	}
}

func TestPeekIHDRErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"not png", []byte("GIF89a..")},
		{"missing IHDR", png.WriteChunks([]png.Chunk{{Tag: png.TagIDAT}, {Tag: png.TagIEND}})},
		{"short IHDR", png.WriteChunks([]png.Chunk{{Tag: png.TagIHDR, Data: []byte{0, 0, 0, 1}}})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := png.PeekIHDR(tt.data)
			if !errors.Is(err, ierrors.ErrFormat) {
				t.Errorf("expected format error, got %v", err)
			}
		})
	}
}
