// Package png reads and writes the PNG chunk stream.
//
// It does not decode pixels itself. The chunk layer is used to peek image
// dimensions from IHDR and to repack a freshly encoded PNG down to the
// chunks an icon container needs:
//
//	IHDR, [sRGB], IDAT (all IDAT data merged), IEND
//
// Pixel decoding and encoding go through the Codec interface; StdCodec
// wraps image/png.
//
// Chunk CRCs are written correctly but never verified on read.
package png
