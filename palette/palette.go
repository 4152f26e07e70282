// Package palette maps RGB colors onto the Launchpad MK2's fixed 128-entry
// color palette.
//
// The device addresses colors by palette index, not by RGB value. Nearest
// picks the index whose chart color is closest to an arbitrary RGB triple,
// which lets callers light pads "fuzzily" with 3-byte palette commands
// instead of the larger direct-RGB frames.
package palette

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Handy palette indexes, named after the colors they light.
const (
	Off    byte = 0
	White  byte = 3
	Red    byte = 5
	Orange byte = 9
	Yellow byte = 13
	Green  byte = 21
	Cyan   byte = 37
	Blue   byte = 45
	Violet byte = 49
	Pink   byte = 53
)

type rgb struct {
	r, g, b uint8
}

// table holds the palette chart: greys first, then four-shade ramps (tint,
// vivid, mid, dark) around the hue wheel, then the extended block of
// brights, pastels, earth tones and deep shades.
var table = [128]rgb{
	{0x00, 0x00, 0x00}, {0x1C, 0x1C, 0x1C}, {0x7C, 0x7C, 0x7C}, {0xFC, 0xFC, 0xFC}, // greys
	{0xFF, 0x4E, 0x48}, {0xFE, 0x0A, 0x00}, {0x5A, 0x00, 0x00}, {0x19, 0x00, 0x00}, // red
	{0xFF, 0xBD, 0x62}, {0xFF, 0x57, 0x00}, {0x5A, 0x1D, 0x00}, {0x24, 0x18, 0x00}, // amber
	{0xFD, 0xFD, 0x21}, {0xFD, 0xFD, 0x00}, {0x58, 0x58, 0x00}, {0x18, 0x18, 0x00}, // yellow
	{0x81, 0xFD, 0x2B}, {0x40, 0xFD, 0x01}, {0x16, 0x5A, 0x01}, {0x13, 0x29, 0x01}, // chartreuse
	{0x35, 0xFD, 0x2B}, {0x00, 0xFE, 0x00}, {0x00, 0x5A, 0x01}, {0x00, 0x18, 0x00}, // green
	{0x35, 0xFC, 0x47}, {0x00, 0xFE, 0x3A}, {0x00, 0x5A, 0x15}, {0x00, 0x18, 0x06}, // spring
	{0x32, 0xFD, 0xB3}, {0x00, 0xFD, 0x91}, {0x00, 0x5A, 0x35}, {0x00, 0x18, 0x10}, // mint
	{0x2F, 0xFC, 0xE9}, {0x00, 0xFB, 0xD2}, {0x00, 0x5A, 0x4A}, {0x00, 0x18, 0x18}, // cyan
	{0x4F, 0xC3, 0xFF}, {0x00, 0xA7, 0xFF}, {0x00, 0x3C, 0x5A}, {0x00, 0x10, 0x18}, // sky
	{0x4E, 0x88, 0xFF}, {0x00, 0x50, 0xFF}, {0x00, 0x1D, 0x5A}, {0x00, 0x08, 0x18}, // ocean
	{0x4E, 0x4E, 0xFF}, {0x0D, 0x00, 0xFE}, {0x05, 0x00, 0x5A}, {0x01, 0x00, 0x18}, // blue
	{0x87, 0x32, 0xFF}, {0x54, 0x00, 0xFF}, {0x1E, 0x00, 0x5A}, {0x0E, 0x00, 0x18}, // violet
	{0xFF, 0x4E, 0xFF}, {0xFF, 0x00, 0xFE}, {0x5A, 0x00, 0x5A}, {0x18, 0x00, 0x18}, // magenta
	{0xFF, 0x4E, 0x87}, {0xFF, 0x07, 0x53}, {0x5A, 0x02, 0x1B}, {0x18, 0x00, 0x08}, // rose
	{0xFF, 0x6A, 0x00}, {0xB3, 0x5F, 0x00}, {0xE8, 0xFD, 0x1C}, {0x6A, 0x8A, 0x00}, // warm brights
	{0x00, 0x8A, 0x4E}, {0x00, 0xB8, 0x6B}, {0x00, 0xFC, 0xA0}, {0x00, 0xC8, 0xC8}, // sea greens
	{0x00, 0x90, 0xFF}, {0x2C, 0x50, 0xC8}, {0x7A, 0x7A, 0xE5}, {0x3A, 0x2C, 0xC8}, // indigos
	{0xFF, 0x00, 0x00}, {0xC8, 0x00, 0x00}, {0x96, 0x00, 0x00}, {0x4A, 0x0E, 0x00}, // crimsons
	{0x19, 0xA0, 0xFF}, {0x00, 0x78, 0xD1}, {0x19, 0x39, 0xFF}, {0x00, 0x00, 0xC8}, // ceruleans
	{0x6A, 0x1E, 0xDC}, {0xB4, 0x1E, 0xDC}, {0xDC, 0x1E, 0xB4}, {0xFF, 0x5D, 0xC8}, // orchids
	{0xFF, 0x8C, 0x19}, {0xFF, 0xB4, 0x19}, {0xB4, 0xFF, 0x19}, {0x19, 0xFF, 0x5D}, // brights
	{0xBF, 0xFF, 0xBA}, {0xBA, 0xFF, 0xE0}, {0xBA, 0xF0, 0xFF}, {0xBF, 0xBA, 0xFF}, // pastels
	{0xFF, 0xBA, 0xF6}, {0xFF, 0xBF, 0xBA}, {0xFF, 0xE3, 0xBA}, {0xFF, 0xFD, 0xBA}, // pastels
	{0xC8, 0xC8, 0x00}, {0x6E, 0x6E, 0x00}, {0xA0, 0x6A, 0x00}, {0x5A, 0x4A, 0x00}, // olives
	{0x8A, 0x5A, 0x1E}, {0x64, 0x4A, 0x28}, {0xB4, 0x8C, 0x64}, {0x78, 0x64, 0x50}, // browns
	{0xFF, 0x78, 0x64}, {0xC8, 0x64, 0x50}, {0x8C, 0x50, 0x46}, {0x5A, 0x3C, 0x37}, // clays
	{0x96, 0xB4, 0xDC}, {0x64, 0x78, 0xA0}, {0x46, 0x50, 0x5A}, {0x78, 0x6E, 0x64}, // slates
	{0x3C, 0x00, 0x00}, {0x00, 0x00, 0x3C}, {0x00, 0x3C, 0x00}, {0x3C, 0x3C, 0x00}, // deep shades
	{0xB4, 0xB4, 0xB4}, {0xD2, 0xD2, 0xD2}, {0xE6, 0xE6, 0xE6}, {0xFC, 0xFC, 0xFC}, // whites
	{0xFF, 0x40, 0x00}, {0xFF, 0xDC, 0x00}, {0x00, 0xDC, 0x32}, {0x00, 0xA0, 0xDC}, // signals
	{0x78, 0x00, 0xDC}, {0xDC, 0x00, 0xA0}, {0xDC, 0x64, 0x00}, {0x64, 0x64, 0x64}, // accents
}

// RGB returns the 8-bit channels of a palette entry. Indexes above 127 are
// out of range and report ok false.
func RGB(index byte) (r, g, b uint8, ok bool) {
	if index > 127 {
		return 0, 0, 0, false
	}
	e := table[index]
	return e.r, e.g, e.b, true
}

// Nearest returns the palette index whose chart color is closest to the
// given RGB triple, measured in Lab space. Ties resolve to the lowest
// index, so the result is deterministic.
func Nearest(r, g, b uint8) byte {
	target := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	best := byte(0)
	bestDist := math.MaxFloat64
	for i, e := range table {
		c := colorful.Color{R: float64(e.r) / 255, G: float64(e.g) / 255, B: float64(e.b) / 255}
		if d := target.DistanceLab(c); d < bestDist {
			best = byte(i)
			bestDist = d
		}
	}
	return best
}
