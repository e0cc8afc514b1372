// Package icns encodes Apple icon (ICNS) containers.
//
// Each resource type belongs to one encoding family:
//
//	argb   ic04 ic05                     "ARGB" + PackBits A,R,G,B
//	png    icp4-icp6 ic07-ic14           minimized PNG
//	rgb24  is32 il32 ih32 it32           PackBits R,G,B (it32 has 4 zero bytes first)
//	mask8  s8mk l8mk h8mk t8mk           raw 8-bit alpha
//
// Legacy 24-bit types carry no alpha; pair each with its mask type
// (is32+s8mk, il32+l8mk, ih32+h8mk, it32+t8mk).
//
// Entries are written in the order they were added. An optional "TOC "
// chunk indexes them, and AddDarkICNS nests a second ICNS as the dark
// appearance variant.
package icns
