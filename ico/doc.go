// Package ico encodes Windows icon (ICO) containers.
//
// Every entry is either an embedded PNG stream or a 32-bit BMP with a 1-bit
// AND mask. FormatAuto picks BMP for images under 64 pixels on either side,
// which older Windows shells require, and PNG otherwise.
//
// Directory records store width and height in one byte each; 256 and
// larger are written as 0.
package ico
