package protocol

import "fmt"

// Mk1Reset builds the frame that returns a first-generation device to its
// power-on state: all LEDs off, mapping, buffering and duty cycle defaults
// restored.
//
// Frame structure:
//
//	[0xB0][0x00][0x00]
func Mk1Reset() []byte {
	return []byte{StatusControlChange, CtrlDevice, 0x00}
}

// Mk1GridMapping builds the frame selecting the grid button mapping mode.
//
// Frame structure:
//
//	[0xB0][0x00][MODE]
func Mk1GridMapping(mode GridMappingMode) ([]byte, error) {
	code, err := mode.code()
	if err != nil {
		return nil, err
	}
	return []byte{StatusControlChange, CtrlDevice, code}, nil
}

// Mk1DoubleBuffer builds the frame controlling the device's two LED
// buffers: which one is displayed, which one rapid updates write to,
// whether the device flashes between them, and whether the new update
// buffer is seeded with a copy of the displayed one.
//
// Frame structure:
//
//	[0xB0][0x00][0x20 | display | update<<2 | flash<<3 | copy<<4]
func Mk1DoubleBuffer(display, update, flash, copyBuffer bool) []byte {
	flags := byte(DoubleBufferBase)
	if display {
		flags |= 1 << 0
	}
	if update {
		flags |= 1 << 2
	}
	if flash {
		flags |= 1 << 3
	}
	if copyBuffer {
		flags |= 1 << 4
	}
	return []byte{StatusControlChange, CtrlDevice, flags}
}

// Mk1LightAll builds the frame flooding every LED at one of the three
// fixed brightness levels.
//
// Frame structure:
//
//	[0xB0][0x00][LEVEL]    LEVEL one of 125, 126, 127
func Mk1LightAll(level Brightness) ([]byte, error) {
	code, err := level.code()
	if err != nil {
		return nil, err
	}
	return []byte{StatusControlChange, CtrlDevice, code}, nil
}

// Mk1LightTop builds the frame lighting one top row button. The column
// counts 0..7 from the left; value is a raw 7-bit LED data byte carrying
// the red and green intensities and the buffer flags.
//
// Frame structure:
//
//	[0xB0][0x68+COLUMN][VALUE]
func Mk1LightTop(column, value byte) ([]byte, error) {
	if column > 7 {
		return nil, fmt.Errorf("%w: top row column %d not in 0..7", ErrColumn, column)
	}
	if value > 127 {
		return nil, fmt.Errorf("%w: led data byte %d", ErrColor, value)
	}
	return []byte{StatusControlChange, CtrlTopRowBase + column, value}, nil
}

// Mk1LedData packs one first-generation LED data byte from red and green
// intensities (0..3) and the buffer flags: clear wipes the LED in the
// other buffer, copyBuffer writes the color to both buffers.
//
// Data byte layout:
//
//	[0 0][GREEN][COPY][CLEAR][RED]
func Mk1LedData(red, green byte, clear, copyBuffer bool) (byte, error) {
	if red > 3 || green > 3 {
		return 0, fmt.Errorf("%w: intensities %d/%d not in 0..3", ErrColor, red, green)
	}
	data := green<<4 | red
	if clear {
		data |= 1 << 2
	}
	if copyBuffer {
		data |= 1 << 3
	}
	return data, nil
}

// Mk1FuzzyData approximates an 8-bit RGB color on first-generation
// hardware, which only mixes red and green. Blue leans toward green since
// that is closer on the spectrum.
func Mk1FuzzyData(r, g, b byte, clear, copyBuffer bool) byte {
	effR := int(r) + int(b)/4
	effG := int(g) + (int(b)*3)/4
	if effR > 255 {
		effR = 255
	}
	if effG > 255 {
		effG = 255
	}
	data, _ := Mk1LedData(byte(effR/64), byte(effG/64), clear, copyBuffer)
	return data
}

// Mk1GridFrames builds the rapid update sequence rewriting the whole
// surface in one pass: the 8x8 grid, the top row and the right column,
// exactly 64, 8 and 8 data bytes respectively.
//
// The first frame resets the device's rapid update cursor; each following
// frame carries two consecutive data bytes, walking the grid section first,
// then top, then right:
//
//	[0xB0][0x70][0x00]
//	[0x92][DATA][DATA]    x40
//
// All three section lengths and every data byte are checked before any
// frame is built.
func Mk1GridFrames(grid, top, right []byte) ([][]byte, error) {
	if len(grid) != GridCells {
		return nil, fmt.Errorf("%w: grid section %d bytes, want %d", ErrGrid, len(grid), GridCells)
	}
	if len(top) != GridEdge {
		return nil, fmt.Errorf("%w: top section %d bytes, want %d", ErrGrid, len(top), GridEdge)
	}
	if len(right) != GridEdge {
		return nil, fmt.Errorf("%w: right section %d bytes, want %d", ErrGrid, len(right), GridEdge)
	}
	for _, section := range [][]byte{grid, top, right} {
		for _, b := range section {
			if b > 127 {
				return nil, fmt.Errorf("%w: led data byte %d", ErrColor, b)
			}
		}
	}

	frames := make([][]byte, 0, 1+(GridCells+2*GridEdge)/2)
	frames = append(frames, []byte{StatusControlChange, CtrlTopRowBase + 8, 0x00})
	for _, section := range [][]byte{grid, top, right} {
		for i := 0; i < len(section); i += 2 {
			frames = append(frames, []byte{StatusNoteRapid, section[i], section[i+1]})
		}
	}
	return frames, nil
}
