package protocol

import "fmt"

// ColorLed pairs an addressable position with a palette color.
type ColorLed struct {
	Position byte
	Color    byte
}

// ColorColumn floods one column (0..8) with a palette color.
type ColorColumn struct {
	Column byte
	Color  byte
}

// ColorRow floods one row (0..8) with a palette color.
type ColorRow struct {
	Row   byte
	Color byte
}

// RGBLed pairs a position with a direct red/green/blue value. Each channel
// uses the device's 6-bit range, 0..63.
type RGBLed struct {
	Position byte
	Red      byte
	Green    byte
	Blue     byte
}

// GridMappingMode selects how a first-generation device maps the grid to
// note numbers.
type GridMappingMode byte

const (
	// XYLayout maps 0xXY to column X, row Y, counted from the top left
	// (0x00 top left, 0x77 bottom right).
	XYLayout GridMappingMode = 1

	// DrumRackLayout maps the grid like an Ableton drum rack.
	DrumRackLayout GridMappingMode = 2
)

// code maps the mode to its wire byte, rejecting undefined values.
func (m GridMappingMode) code() (byte, error) {
	switch m {
	case XYLayout, DrumRackLayout:
		return byte(m), nil
	}
	return 0, fmt.Errorf("%w: grid mapping mode %d", ErrMode, byte(m))
}

// Brightness is a first-generation flood level.
type Brightness byte

const (
	BrightnessLow    Brightness = 125
	BrightnessMedium Brightness = 126
	BrightnessHigh   Brightness = 127
)

func (b Brightness) code() (byte, error) {
	switch b {
	case BrightnessLow, BrightnessMedium, BrightnessHigh:
		return byte(b), nil
	}
	return 0, fmt.Errorf("%w: brightness %d", ErrMode, byte(b))
}

// Layout is a MK2 top-level layout.
type Layout byte

const (
	LayoutSession         Layout = 0
	LayoutUser1           Layout = 1
	LayoutUser2           Layout = 2
	LayoutAbletonReserved Layout = 3
	LayoutVolume          Layout = 4
	LayoutPan             Layout = 5
)

func (l Layout) code() (byte, error) {
	if l > LayoutPan {
		return 0, fmt.Errorf("%w: layout %d", ErrMode, byte(l))
	}
	return byte(l), nil
}

// FaderKind selects the behavior of a virtual fader.
type FaderKind byte

const (
	// FaderVolume is a unipolar fader rising from the bottom of the column.
	FaderVolume FaderKind = 0

	// FaderPan is a bipolar fader centered on the middle of the column.
	FaderPan FaderKind = 1
)

func (k FaderKind) code() (byte, error) {
	switch k {
	case FaderVolume, FaderPan:
		return byte(k), nil
	}
	return 0, fmt.Errorf("%w: fader kind %d", ErrMode, byte(k))
}
