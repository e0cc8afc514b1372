package icns_test

import (
	"bytes"
	_ "image/png"
	"testing"

	appleicns "github.com/jackmordaunt/icns/v3"

	"github.com/wippyai/icon-encoder/icns"
)

func TestEncodeReadableByIcnsDecoder(t *testing.T) {
	enc := icns.New()
	if err := enc.AddFromRGBA(solid(128, 128, 10, 200, 30, 255), []icns.Type{icns.TypeIC07}); err != nil {
		t.Fatalf("AddFromRGBA: %v", err)
	}
	if err := enc.AddFromPNG(encodePNG(t, solid(256, 256, 0, 0, 255, 128)), []icns.Type{icns.TypeIC08}, true); err != nil {
		t.Fatalf("AddFromPNG: %v", err)
	}

	img, err := appleicns.Decode(bytes.NewReader(enc.Encode()))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 256 || b.Dy() != 256 {
		t.Fatalf("largest image = %v, want 256x256", b)
	}
	_, _, blue, _ := img.At(10, 10).RGBA()
	if blue == 0 {
		t.Errorf("pixel at (10,10) lost its blue channel")
	}
}
