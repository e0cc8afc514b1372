// Package iconencoder converts decoded raster images into Apple ICNS and
// Windows ICO icon containers.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	iconencoder/         Root package with the Image data model
//	├── png/             CRC32, PNG chunk reader/writer, IHDR peek, minimizer, pixel codec
//	├── packbits/        ICNS flavor of PackBits run-length compression
//	├── icns/            ICNS container encoder
//	├── ico/             ICO container encoder with BMP and AND-mask emission
//	├── errors/          Structured error types
//	└── cmd/iconenc/     Command-line front end
//
// # Quick Start
//
// Build an ICNS with a modern and a legacy entry:
//
//	enc := icns.New(icns.WithTOC(true))
//	if err := enc.AddFromPNG(png512, []icns.Type{icns.TypeIC09}, false); err != nil {
//	    log.Fatal(err)
//	}
//	if err := enc.AddFromPNG(png16, []icns.Type{icns.TypeIS32, icns.TypeS8MK}, false); err != nil {
//	    log.Fatal(err)
//	}
//	data := enc.Encode()
//
// Build an ICO, letting the encoder pick PNG or BMP per size:
//
//	enc := ico.New()
//	for _, p := range pngs {
//	    if err := enc.AddFromPNG(p, ico.FormatAuto, false); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	data := enc.Encode()
//
// # Thread Safety
//
// Encoders are NOT safe for concurrent use; each owns its entry list.
// Independent encoders may run on separate goroutines, and an Image may be
// shared between them since encoders never write to it.
package iconencoder
