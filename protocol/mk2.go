package protocol

import "fmt"

// mk2Frame assembles one MK2 system exclusive frame around an opcode and
// its payload.
func mk2Frame(op byte, payload ...byte) []byte {
	frame := make([]byte, 0, len(sysExHeader)+2+len(payload))
	frame = append(frame, sysExHeader...)
	frame = append(frame, op)
	frame = append(frame, payload...)
	frame = append(frame, SysExEnd)
	return frame
}

// Mk2LightAll builds the frame flooding every LED with one palette color.
// The hardware does not accept this command in rapid succession.
//
// Frame structure:
//
//	[0xF0][0x00 0x20 0x29 0x02 0x18][0x0E][COLOR][0xF7]
func Mk2LightAll(color byte) ([]byte, error) {
	if err := CheckColor(color); err != nil {
		return nil, err
	}
	return mk2Frame(OpLightAll, color), nil
}

// Mk2FlashSingle builds the compact frame setting a single pad to flash
// between its current color and the given one. It is smaller than a
// one-element Mk2FlashLEDs batch.
//
// Frame structure:
//
//	[0x91][POSITION][COLOR]
func Mk2FlashSingle(led ColorLed) ([]byte, error) {
	if err := checkLed(led); err != nil {
		return nil, err
	}
	return []byte{StatusNoteFlash, led.Position, led.Color}, nil
}

// Mk2PulseSingle builds the compact frame setting a single pad to pulse.
//
// Frame structure:
//
//	[0x92][POSITION][COLOR]
func Mk2PulseSingle(led ColorLed) ([]byte, error) {
	if err := checkLed(led); err != nil {
		return nil, err
	}
	return []byte{StatusNoteRapid, led.Position, led.Color}, nil
}

// Mk2LightLEDs builds one frame per LED, setting each to its own palette
// color. Up to 80 LEDs form one batch; every element is validated before
// any frame is built.
//
// Frame structure, repeated per LED:
//
//	[0xF0][0x00 0x20 0x29 0x02 0x18][0x0A][POSITION][COLOR][0xF7]
func Mk2LightLEDs(leds []ColorLed) ([][]byte, error) {
	return mk2LedBatch(OpLightLEDs, leds)
}

// Mk2FlashLEDs builds one frame per LED, setting each to flash between its
// current color and the given one. Same batch rules as Mk2LightLEDs.
//
// Frame structure, repeated per LED:
//
//	[0xF0][0x00 0x20 0x29 0x02 0x18][0x23][POSITION][COLOR][0xF7]
func Mk2FlashLEDs(leds []ColorLed) ([][]byte, error) {
	return mk2LedBatch(OpFlashLEDs, leds)
}

// Mk2PulseLEDs builds one frame per LED, setting each to pulse its color.
// Same batch rules as Mk2LightLEDs.
//
// Frame structure, repeated per LED:
//
//	[0xF0][0x00 0x20 0x29 0x02 0x18][0x28][POSITION][COLOR][0xF7]
func Mk2PulseLEDs(leds []ColorLed) ([][]byte, error) {
	return mk2LedBatch(OpPulseLEDs, leds)
}

func mk2LedBatch(op byte, leds []ColorLed) ([][]byte, error) {
	if len(leds) > MaxBatchLEDs {
		return nil, fmt.Errorf("%w: %d leds, max %d", ErrBatch, len(leds), MaxBatchLEDs)
	}
	for _, led := range leds {
		if err := checkLed(led); err != nil {
			return nil, err
		}
	}
	frames := make([][]byte, 0, len(leds))
	for _, led := range leds {
		frames = append(frames, mk2Frame(op, led.Position, led.Color))
	}
	return frames, nil
}

func checkLed(led ColorLed) error {
	if err := CheckPosition(led.Position); err != nil {
		return err
	}
	return CheckColor(led.Color)
}

// Mk2LightColumns builds one frame per entry, flooding each column with its
// own palette color. Up to 9 columns form one batch; every element is
// validated before any frame is built.
//
// Frame structure, repeated per column:
//
//	[0xF0][0x00 0x20 0x29 0x02 0x18][0x0C][COLUMN][COLOR][0xF7]
func Mk2LightColumns(cols []ColorColumn) ([][]byte, error) {
	if len(cols) > MaxBatchColumns {
		return nil, fmt.Errorf("%w: %d columns, max %d", ErrBatch, len(cols), MaxBatchColumns)
	}
	for _, col := range cols {
		if err := CheckColumn(col.Column); err != nil {
			return nil, err
		}
		if err := CheckColor(col.Color); err != nil {
			return nil, err
		}
	}
	frames := make([][]byte, 0, len(cols))
	for _, col := range cols {
		frames = append(frames, mk2Frame(OpLightColumn, col.Column, col.Color))
	}
	return frames, nil
}

// Mk2LightRows builds one frame per entry, flooding each row with its own
// palette color. Up to 9 rows form one batch; every element is validated
// before any frame is built.
//
// Frame structure, repeated per row:
//
//	[0xF0][0x00 0x20 0x29 0x02 0x18][0x0D][ROW][COLOR][0xF7]
func Mk2LightRows(rows []ColorRow) ([][]byte, error) {
	if len(rows) > MaxBatchRows {
		return nil, fmt.Errorf("%w: %d rows, max %d", ErrBatch, len(rows), MaxBatchRows)
	}
	for _, row := range rows {
		if err := CheckRow(row.Row); err != nil {
			return nil, err
		}
		if err := CheckColor(row.Color); err != nil {
			return nil, err
		}
	}
	frames := make([][]byte, 0, len(rows))
	for _, row := range rows {
		frames = append(frames, mk2Frame(OpLightRow, row.Row, row.Color))
	}
	return frames, nil
}

// Mk2ScrollText builds the frame scrolling text across the grid in the
// given color. The screen blanks while the text runs. Text bytes are passed
// through verbatim; the Scroll* control bytes may be embedded to change the
// speed mid-message. A looping scroll is cancelled by sending an empty text
// with loop false.
//
// Frame structure:
//
//	[0xF0][0x00 0x20 0x29 0x02 0x18][0x14][COLOR][LOOP][TEXT...][0xF7]
func Mk2ScrollText(color byte, loop bool, text string) ([]byte, error) {
	if err := CheckColor(color); err != nil {
		return nil, err
	}
	var loopByte byte
	if loop {
		loopByte = 0x01
	}
	payload := make([]byte, 0, 2+len(text))
	payload = append(payload, color, loopByte)
	payload = append(payload, text...)
	return mk2Frame(OpScrollText, payload...), nil
}

// Mk2LightRGB builds the frame setting one pad to a direct RGB value,
// bypassing the palette. Each channel runs 0..63.
//
// Frame structure:
//
//	[0xF0][0x00 0x20 0x29 0x02 0x18][0x0B][POSITION][R][G][B][0xF7]
func Mk2LightRGB(led RGBLed) ([]byte, error) {
	if err := checkRGBLed(led); err != nil {
		return nil, err
	}
	return mk2Frame(OpLightRGB, led.Position, led.Red, led.Green, led.Blue), nil
}

// Mk2LightRGBLEDs builds one frame per LED, setting each to its own direct
// RGB value. Same batch rules as Mk2LightLEDs.
func Mk2LightRGBLEDs(leds []RGBLed) ([][]byte, error) {
	if len(leds) > MaxBatchLEDs {
		return nil, fmt.Errorf("%w: %d leds, max %d", ErrBatch, len(leds), MaxBatchLEDs)
	}
	for _, led := range leds {
		if err := checkRGBLed(led); err != nil {
			return nil, err
		}
	}
	frames := make([][]byte, 0, len(leds))
	for _, led := range leds {
		frames = append(frames, mk2Frame(OpLightRGB, led.Position, led.Red, led.Green, led.Blue))
	}
	return frames, nil
}

func checkRGBLed(led RGBLed) error {
	if err := CheckPosition(led.Position); err != nil {
		return err
	}
	for _, ch := range [3]byte{led.Red, led.Green, led.Blue} {
		if ch > MaxRGB {
			return fmt.Errorf("%w: %d above %d", ErrRGB, ch, MaxRGB)
		}
	}
	return nil
}

// Mk2SelectLayout builds the frame switching the device's top-level layout.
// The volume and pan fader layouts pair with Mk2SetupFader.
//
// Frame structure:
//
//	[0xF0][0x00 0x20 0x29 0x02 0x18][0x22][LAYOUT][0xF7]
func Mk2SelectLayout(layout Layout) ([]byte, error) {
	code, err := layout.code()
	if err != nil {
		return nil, err
	}
	return mk2Frame(OpSelectLayout, code), nil
}

// Mk2SetupFader builds the frame configuring one virtual fader: its column
// (0..7), its kind, the color it lights in, and its initial value (0..127).
// The device must be in the matching fader layout for the fader to show.
//
// Frame structure:
//
//	[0xF0][0x00 0x20 0x29 0x02 0x18][0x2B][NUMBER][KIND][COLOR][VALUE][0xF7]
func Mk2SetupFader(number byte, kind FaderKind, color, value byte) ([]byte, error) {
	if number > MaxFaderNumber {
		return nil, fmt.Errorf("%w: number %d above %d", ErrFader, number, MaxFaderNumber)
	}
	code, err := kind.code()
	if err != nil {
		return nil, err
	}
	if err := CheckColor(color); err != nil {
		return nil, err
	}
	if value > 127 {
		return nil, fmt.Errorf("%w: value %d above 127", ErrFader, value)
	}
	return mk2Frame(OpSetupFader, number, code, color, value), nil
}

// DeviceInquiry builds the universal device inquiry frame. Launchpads of
// both generations answer it with an identity reply naming the device and
// its firmware version.
//
// Frame structure:
//
//	[0xF0][0x7E][0x7F][0x06][0x01][0xF7]
func DeviceInquiry() []byte {
	return []byte{SysExStart, 0x7E, 0x7F, 0x06, 0x01, SysExEnd}
}
