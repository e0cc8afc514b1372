package binary

import (
	"bytes"
	"encoding/binary"
)

// Writer provides buffered writing of raw bytes. The fixed-width integer
// helpers live on BEWriter and LEWriter; the two are kept apart so a
// container codec never mixes byte orders by accident.
type Writer struct {
	buf *bytes.Buffer
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{buf: &bytes.Buffer{}}
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Grow reserves space for n more bytes.
func (w *Writer) Grow(n int) {
	w.buf.Grow(n)
}

// Byte writes a single byte.
func (w *Writer) Byte(b byte) {
	w.buf.WriteByte(b)
}

// WriteBytes writes a byte slice.
func (w *Writer) WriteBytes(data []byte) {
	w.buf.Write(data)
}

// WriteTag writes s as exactly four bytes, zero-padded or truncated.
func (w *Writer) WriteTag(s string) {
	var tag [4]byte
	copy(tag[:], s)
	w.buf.Write(tag[:])
}

// BEWriter writes big-endian fixed-width integers.
type BEWriter struct {
	Writer
}

// NewBEWriter creates a new big-endian writer.
func NewBEWriter() *BEWriter {
	return &BEWriter{Writer: Writer{buf: &bytes.Buffer{}}}
}

// WriteU16 writes a big-endian uint16.
func (w *BEWriter) WriteU16(v uint16) {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	w.buf.Write(buf[:])
}

// WriteU32 writes a big-endian uint32.
func (w *BEWriter) WriteU32(v uint32) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	w.buf.Write(buf[:])
}

// PatchU32 overwrites four already-written bytes at off with v.
func (w *BEWriter) PatchU32(off int, v uint32) {
	binary.BigEndian.PutUint32(w.buf.Bytes()[off:off+4], v)
}

// LEWriter writes little-endian fixed-width integers.
type LEWriter struct {
	Writer
}

// NewLEWriter creates a new little-endian writer.
func NewLEWriter() *LEWriter {
	return &LEWriter{Writer: Writer{buf: &bytes.Buffer{}}}
}

// WriteU16 writes a little-endian uint16.
func (w *LEWriter) WriteU16(v uint16) {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	w.buf.Write(buf[:])
}

// WriteU32 writes a little-endian uint32.
func (w *LEWriter) WriteU32(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	w.buf.Write(buf[:])
}

// WriteI32 writes a little-endian two's complement int32.
func (w *LEWriter) WriteI32(v int32) {
	w.WriteU32(uint32(v))
}
