package icns

// Type is a four-byte ICNS resource tag.
type Type string

const (
	TypeIC04 Type = "ic04"
	TypeIC05 Type = "ic05"

	TypeICP4 Type = "icp4"
	TypeICP5 Type = "icp5"
	TypeICP6 Type = "icp6"
	TypeIC07 Type = "ic07"
	TypeIC08 Type = "ic08"
	TypeIC09 Type = "ic09"
	TypeIC10 Type = "ic10"
	TypeIC11 Type = "ic11"
	TypeIC12 Type = "ic12"
	TypeIC13 Type = "ic13"
	TypeIC14 Type = "ic14"

	TypeIS32 Type = "is32"
	TypeIL32 Type = "il32"
	TypeIH32 Type = "ih32"
	TypeIT32 Type = "it32"

	TypeS8MK Type = "s8mk"
	TypeL8MK Type = "l8mk"
	TypeH8MK Type = "h8mk"
	TypeT8MK Type = "t8mk"

	// TypeTOC tags the table of contents chunk.
	TypeTOC Type = "TOC "

	// TypeDark tags an embedded dark-appearance ICNS body.
	TypeDark Type = "\xfd\xd9\x2f\xa8"
)

// Family groups resource types that share an encoding.
type Family uint8

const (
	FamilyARGB  Family = iota + 1 // PackBits A,R,G,B channels behind an "ARGB" header
	FamilyPNG                     // minimized PNG stream
	FamilyRGB24                   // PackBits R,G,B channels
	FamilyMask8                   // raw alpha channel
)

var familyNames = map[Family]string{
	FamilyARGB:  "argb",
	FamilyPNG:   "png",
	FamilyRGB24: "rgb24",
	FamilyMask8: "mask8",
}

func (f Family) String() string {
	if s, ok := familyNames[f]; ok {
		return s
	}
	return "unknown"
}

var families = map[Type]Family{
	TypeIC04: FamilyARGB,
	TypeIC05: FamilyARGB,

	TypeICP4: FamilyPNG,
	TypeICP5: FamilyPNG,
	TypeICP6: FamilyPNG,
	TypeIC07: FamilyPNG,
	TypeIC08: FamilyPNG,
	TypeIC09: FamilyPNG,
	TypeIC10: FamilyPNG,
	TypeIC11: FamilyPNG,
	TypeIC12: FamilyPNG,
	TypeIC13: FamilyPNG,
	TypeIC14: FamilyPNG,

	TypeIS32: FamilyRGB24,
	TypeIL32: FamilyRGB24,
	TypeIH32: FamilyRGB24,
	TypeIT32: FamilyRGB24,

	TypeS8MK: FamilyMask8,
	TypeL8MK: FamilyMask8,
	TypeH8MK: FamilyMask8,
	TypeT8MK: FamilyMask8,
}

// FamilyOf looks up the encoding family of t.
func FamilyOf(t Type) (Family, bool) {
	f, ok := families[t]
	return f, ok
}

// KnownTypes lists every type the encoder can produce from pixels,
// modern types first.
func KnownTypes() []Type {
	return []Type{
		TypeIC04, TypeIC05, TypeIC11, TypeIC12, TypeIC07, TypeIC13,
		TypeIC08, TypeIC14, TypeIC09, TypeIC10, TypeICP4, TypeICP5, TypeICP6,
		TypeIS32, TypeS8MK, TypeIL32, TypeL8MK, TypeIH32, TypeH8MK, TypeIT32, TypeT8MK,
	}
}

var sizeNames = map[string]Type{
	"16x16":      TypeIC04,
	"32x32":      TypeIC05,
	"16x16@2x":   TypeIC11,
	"32x32@2x":   TypeIC12,
	"128x128":    TypeIC07,
	"128x128@2x": TypeIC13,
	"256x256":    TypeIC08,
	"256x256@2x": TypeIC14,
	"512x512":    TypeIC09,
	"512x512@2x": TypeIC10,
}

// TypeForSizeName maps an iconset size name such as "128x128@2x" to the
// modern resource type Apple uses for it.
func TypeForSizeName(name string) (Type, bool) {
	t, ok := sizeNames[name]
	return t, ok
}
