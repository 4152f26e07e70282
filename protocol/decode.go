package protocol

import (
	"bytes"
	"fmt"
)

// CommandKind identifies a decoded command.
type CommandKind uint8

const (
	KindReset CommandKind = iota
	KindGridMapping
	KindDoubleBuffer
	KindLightAllLevel
	KindLightTop
	KindCursorReset
	KindRapidPair
	KindLightAll
	KindFlashSingle
	KindPulseSingle
	KindLightLED
	KindLightColumn
	KindLightRow
	KindScrollText
	KindLightRGB
	KindSelectLayout
	KindFlashLED
	KindPulseLED
	KindSetupFader
	KindInquiry
)

// Command is one decoded frame.
type Command interface {
	// Kind returns the kind of command.
	Kind() CommandKind
}

// Reset is the first-generation power-on reset.
type Reset struct{}

// GridMapping selects the first-generation grid button mapping.
type GridMapping struct {
	Mode GridMappingMode
}

// DoubleBuffer carries the first-generation buffer control flags.
type DoubleBuffer struct {
	Display    bool
	Update     bool
	Flash      bool
	CopyBuffer bool
}

// LightAllLevel floods a first-generation device at a fixed brightness.
type LightAllLevel struct {
	Level Brightness
}

// LightTop lights one first-generation top row button.
type LightTop struct {
	Column byte
	Value  byte
}

// CursorReset rewinds the first-generation rapid update cursor.
type CursorReset struct{}

// RapidPair writes two consecutive LEDs in a rapid update sequence.
type RapidPair struct {
	A byte
	B byte
}

// LightAll floods a MK2 with one palette color.
type LightAll struct {
	Color byte
}

// FlashSingle is the compact MK2 single-pad flash.
type FlashSingle struct {
	Led ColorLed
}

// PulseSingle is the compact MK2 single-pad pulse.
type PulseSingle struct {
	Led ColorLed
}

// LightLED sets one MK2 pad to a palette color.
type LightLED struct {
	Led ColorLed
}

// LightColumn floods one MK2 column.
type LightColumn struct {
	Column ColorColumn
}

// LightRow floods one MK2 row.
type LightRow struct {
	Row ColorRow
}

// ScrollText scrolls text across a MK2 grid.
type ScrollText struct {
	Color byte
	Loop  bool
	Text  string
}

// LightRGB sets one MK2 pad to a direct RGB value.
type LightRGB struct {
	Led RGBLed
}

// SelectLayout switches the MK2 top-level layout.
type SelectLayout struct {
	Layout Layout
}

// FlashLED sets one MK2 pad to flash, SysEx form.
type FlashLED struct {
	Led ColorLed
}

// PulseLED sets one MK2 pad to pulse, SysEx form.
type PulseLED struct {
	Led ColorLed
}

// SetupFader configures one MK2 virtual fader.
type SetupFader struct {
	Number    byte
	FaderKind FaderKind
	Color     byte
	Value     byte
}

// Inquiry is the universal device inquiry.
type Inquiry struct{}

// DecodeMk1 interprets one frame as a first-generation command.
func DecodeMk1(frame []byte) (Command, error) {
	if len(frame) != 3 {
		return nil, fmt.Errorf("%w: %d bytes", ErrFrame, len(frame))
	}
	status, d1, d2 := frame[0], frame[1], frame[2]
	switch status {
	case StatusNoteRapid:
		if d1 > 127 || d2 > 127 {
			return nil, fmt.Errorf("%w: led data bytes %d/%d", ErrColor, d1, d2)
		}
		return RapidPair{A: d1, B: d2}, nil
	case StatusControlChange:
	default:
		return nil, fmt.Errorf("%w: status 0x%02X", ErrFrame, status)
	}
	switch {
	case d1 == CtrlDevice:
		return decodeMk1Ctrl(d2)
	case d1 >= CtrlTopRowBase && d1 < CtrlTopRowBase+8:
		if d2 > 127 {
			return nil, fmt.Errorf("%w: led data byte %d", ErrColor, d2)
		}
		return LightTop{Column: d1 - CtrlTopRowBase, Value: d2}, nil
	case d1 == CtrlTopRowBase+8 && d2 == 0:
		return CursorReset{}, nil
	}
	return nil, fmt.Errorf("%w: controller 0x%02X", ErrFrame, d1)
}

// decodeMk1Ctrl interprets a write to the master control register.
func decodeMk1Ctrl(value byte) (Command, error) {
	switch value {
	case 0:
		return Reset{}, nil
	case byte(XYLayout), byte(DrumRackLayout):
		return GridMapping{Mode: GridMappingMode(value)}, nil
	case byte(BrightnessLow), byte(BrightnessMedium), byte(BrightnessHigh):
		return LightAllLevel{Level: Brightness(value)}, nil
	}
	// Double buffer frames set the base bit and never bits 1, 6 or 7.
	if value&0xE2 == DoubleBufferBase {
		return DoubleBuffer{
			Display:    value&(1<<0) != 0,
			Update:     value&(1<<2) != 0,
			Flash:      value&(1<<3) != 0,
			CopyBuffer: value&(1<<4) != 0,
		}, nil
	}
	return nil, fmt.Errorf("%w: device control value 0x%02X", ErrFrame, value)
}

// DecodeMk2 interprets one frame as a MK2 command.
func DecodeMk2(frame []byte) (Command, error) {
	if len(frame) == 3 {
		switch frame[0] {
		case StatusNoteFlash, StatusNoteRapid:
		default:
			return nil, fmt.Errorf("%w: status 0x%02X", ErrFrame, frame[0])
		}
		led := ColorLed{Position: frame[1], Color: frame[2]}
		if err := checkLed(led); err != nil {
			return nil, err
		}
		if frame[0] == StatusNoteFlash {
			return FlashSingle{Led: led}, nil
		}
		return PulseSingle{Led: led}, nil
	}
	if bytes.Equal(frame, DeviceInquiry()) {
		return Inquiry{}, nil
	}
	if len(frame) < len(sysExHeader)+2 ||
		!bytes.Equal(frame[:len(sysExHeader)], sysExHeader) ||
		frame[len(frame)-1] != SysExEnd {
		return nil, fmt.Errorf("%w: not a launchpad sysex frame", ErrFrame)
	}
	op := frame[len(sysExHeader)]
	payload := frame[len(sysExHeader)+1 : len(frame)-1]

	switch op {
	case OpLightAll:
		if len(payload) != 1 {
			return nil, payloadErr(op, len(payload))
		}
		if err := CheckColor(payload[0]); err != nil {
			return nil, err
		}
		return LightAll{Color: payload[0]}, nil

	case OpLightLEDs, OpFlashLEDs, OpPulseLEDs:
		if len(payload) != 2 {
			return nil, payloadErr(op, len(payload))
		}
		led := ColorLed{Position: payload[0], Color: payload[1]}
		if err := checkLed(led); err != nil {
			return nil, err
		}
		switch op {
		case OpLightLEDs:
			return LightLED{Led: led}, nil
		case OpFlashLEDs:
			return FlashLED{Led: led}, nil
		}
		return PulseLED{Led: led}, nil

	case OpLightColumn:
		if len(payload) != 2 {
			return nil, payloadErr(op, len(payload))
		}
		if err := CheckColumn(payload[0]); err != nil {
			return nil, err
		}
		if err := CheckColor(payload[1]); err != nil {
			return nil, err
		}
		return LightColumn{Column: ColorColumn{Column: payload[0], Color: payload[1]}}, nil

	case OpLightRow:
		if len(payload) != 2 {
			return nil, payloadErr(op, len(payload))
		}
		if err := CheckRow(payload[0]); err != nil {
			return nil, err
		}
		if err := CheckColor(payload[1]); err != nil {
			return nil, err
		}
		return LightRow{Row: ColorRow{Row: payload[0], Color: payload[1]}}, nil

	case OpLightRGB:
		if len(payload) != 4 {
			return nil, payloadErr(op, len(payload))
		}
		led := RGBLed{Position: payload[0], Red: payload[1], Green: payload[2], Blue: payload[3]}
		if err := checkRGBLed(led); err != nil {
			return nil, err
		}
		return LightRGB{Led: led}, nil

	case OpScrollText:
		if len(payload) < 2 {
			return nil, payloadErr(op, len(payload))
		}
		if err := CheckColor(payload[0]); err != nil {
			return nil, err
		}
		if payload[1] > 1 {
			return nil, fmt.Errorf("%w: scroll loop byte 0x%02X", ErrFrame, payload[1])
		}
		return ScrollText{Color: payload[0], Loop: payload[1] == 1, Text: string(payload[2:])}, nil

	case OpSelectLayout:
		if len(payload) != 1 {
			return nil, payloadErr(op, len(payload))
		}
		layout := Layout(payload[0])
		if _, err := layout.code(); err != nil {
			return nil, err
		}
		return SelectLayout{Layout: layout}, nil

	case OpSetupFader:
		if len(payload) != 4 {
			return nil, payloadErr(op, len(payload))
		}
		kind := FaderKind(payload[1])
		if _, err := Mk2SetupFader(payload[0], kind, payload[2], payload[3]); err != nil {
			return nil, err
		}
		return SetupFader{Number: payload[0], FaderKind: kind, Color: payload[2], Value: payload[3]}, nil
	}
	return nil, fmt.Errorf("%w: opcode 0x%02X", ErrFrame, op)
}

func payloadErr(op byte, n int) error {
	return fmt.Errorf("%w: opcode 0x%02X with %d payload bytes", ErrFrame, op, n)
}

func (Reset) Kind() CommandKind         { return KindReset }
func (GridMapping) Kind() CommandKind   { return KindGridMapping }
func (DoubleBuffer) Kind() CommandKind  { return KindDoubleBuffer }
func (LightAllLevel) Kind() CommandKind { return KindLightAllLevel }
func (LightTop) Kind() CommandKind      { return KindLightTop }
func (CursorReset) Kind() CommandKind   { return KindCursorReset }
func (RapidPair) Kind() CommandKind     { return KindRapidPair }
func (LightAll) Kind() CommandKind      { return KindLightAll }
func (FlashSingle) Kind() CommandKind   { return KindFlashSingle }
func (PulseSingle) Kind() CommandKind   { return KindPulseSingle }
func (LightLED) Kind() CommandKind      { return KindLightLED }
func (LightColumn) Kind() CommandKind   { return KindLightColumn }
func (LightRow) Kind() CommandKind      { return KindLightRow }
func (ScrollText) Kind() CommandKind    { return KindScrollText }
func (LightRGB) Kind() CommandKind      { return KindLightRGB }
func (SelectLayout) Kind() CommandKind  { return KindSelectLayout }
func (FlashLED) Kind() CommandKind      { return KindFlashLED }
func (PulseLED) Kind() CommandKind      { return KindPulseLED }
func (SetupFader) Kind() CommandKind    { return KindSetupFader }
func (Inquiry) Kind() CommandKind       { return KindInquiry }
