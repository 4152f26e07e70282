package launchpad

import (
	"gitlab.com/gomidi/midi/v2/drivers"

	"github.com/gridmidi/launchpad/palette"
	"github.com/gridmidi/launchpad/protocol"
)

// mk2Match is the port name substring the Launchpad MK2 registers with the
// system.
const mk2Match = "Launchpad MK2"

// Mk2 is a second-generation device (Launchpad MK2), driven by SysEx
// frames plus the compact flash and pulse forms.
type Mk2 struct {
	*session
}

// GuessMk2 scans the available port names and connects to the first
// second-generation device it finds.
func GuessMk2(opts ...Option) (*Mk2, error) {
	s, err := guess(mk2Match, opts)
	if err != nil {
		return nil, err
	}
	return &Mk2{session: s}, nil
}

// ConnectMk2 opens a second-generation session on a caller-supplied port
// pair, for setups where scanning by name is not enough.
func ConnectMk2(in drivers.In, out drivers.Out, opts ...Option) (*Mk2, error) {
	s, err := connect(in, out, opts)
	if err != nil {
		return nil, err
	}
	return &Mk2{session: s}, nil
}

// LightAll floods every LED with one palette color.
func (d *Mk2) LightAll(color byte) error {
	frame, err := protocol.Mk2LightAll(color)
	if err != nil {
		return err
	}
	return d.Send(frame)
}

// LightLED sets a single pad or button to a palette color.
func (d *Mk2) LightLED(led protocol.ColorLed) error {
	return d.LightLEDs([]protocol.ColorLed{led})
}

// LightLEDs sets up to 80 pads or buttons in one batch. The batch is
// validated as a whole; nothing is sent unless every element is in range.
func (d *Mk2) LightLEDs(leds []protocol.ColorLed) error {
	frames, err := protocol.Mk2LightLEDs(leds)
	if err != nil {
		return err
	}
	return d.sendAll(frames)
}

// FlashSingle sets one pad to flash between its current color and the
// given one, using the compact channel form.
func (d *Mk2) FlashSingle(led protocol.ColorLed) error {
	frame, err := protocol.Mk2FlashSingle(led)
	if err != nil {
		return err
	}
	return d.Send(frame)
}

// PulseSingle sets one pad to pulse the given color, using the compact
// channel form.
func (d *Mk2) PulseSingle(led protocol.ColorLed) error {
	frame, err := protocol.Mk2PulseSingle(led)
	if err != nil {
		return err
	}
	return d.Send(frame)
}

// FlashLEDs sets up to 80 pads or buttons flashing in one batch.
func (d *Mk2) FlashLEDs(leds []protocol.ColorLed) error {
	frames, err := protocol.Mk2FlashLEDs(leds)
	if err != nil {
		return err
	}
	return d.sendAll(frames)
}

// PulseLEDs sets up to 80 pads or buttons pulsing in one batch.
func (d *Mk2) PulseLEDs(leds []protocol.ColorLed) error {
	frames, err := protocol.Mk2PulseLEDs(leds)
	if err != nil {
		return err
	}
	return d.sendAll(frames)
}

// LightColumn floods one column, including its top row button.
func (d *Mk2) LightColumn(column protocol.ColorColumn) error {
	return d.LightColumns([]protocol.ColorColumn{column})
}

// LightColumns floods up to 9 columns in one batch.
func (d *Mk2) LightColumns(columns []protocol.ColorColumn) error {
	frames, err := protocol.Mk2LightColumns(columns)
	if err != nil {
		return err
	}
	return d.sendAll(frames)
}

// LightRow floods one row, including its right column button.
func (d *Mk2) LightRow(row protocol.ColorRow) error {
	return d.LightRows([]protocol.ColorRow{row})
}

// LightRows floods up to 9 rows in one batch.
func (d *Mk2) LightRows(rows []protocol.ColorRow) error {
	frames, err := protocol.Mk2LightRows(rows)
	if err != nil {
		return err
	}
	return d.sendAll(frames)
}

// LightRGB sets a single pad to an exact color, bypassing the palette.
// Channels range over 0..63.
func (d *Mk2) LightRGB(led protocol.RGBLed) error {
	frame, err := protocol.Mk2LightRGB(led)
	if err != nil {
		return err
	}
	return d.Send(frame)
}

// LightRGBLEDs sets up to 80 pads to exact colors in one batch.
func (d *Mk2) LightRGBLEDs(leds []protocol.RGBLed) error {
	frames, err := protocol.Mk2LightRGBLEDs(leds)
	if err != nil {
		return err
	}
	return d.sendAll(frames)
}

// LightFuzzyRGB sets a single pad to the palette color nearest the given
// 8-bit RGB value. Unlike LightRGB it keeps the device in palette mode, so
// flashing and pulsing still work on the pad afterwards.
func (d *Mk2) LightFuzzyRGB(position, r, g, b byte) error {
	return d.LightLED(protocol.ColorLed{Position: position, Color: palette.Nearest(r, g, b)})
}

// ScrollText scrolls text across the grid in the given palette color. The
// text may embed the protocol.ScrollSlowest..ScrollFastest speed bytes to
// change pace mid-string. When loop is set the scroll repeats until
// cancelled; the device reports each completed pass with a SysEx message.
func (d *Mk2) ScrollText(color byte, loop bool, text string) error {
	frame, err := protocol.Mk2ScrollText(color, loop, text)
	if err != nil {
		return err
	}
	return d.Send(frame)
}

// CancelScroll stops a running text scroll.
func (d *Mk2) CancelScroll() error {
	return d.ScrollText(0, false, "")
}

// SelectLayout switches the device to the given layout.
func (d *Mk2) SelectLayout(layout protocol.Layout) error {
	frame, err := protocol.Mk2SelectLayout(layout)
	if err != nil {
		return err
	}
	return d.Send(frame)
}

// SetupFader configures one virtual fader. The device must be in
// LayoutVolume or LayoutPan for faders to be visible.
func (d *Mk2) SetupFader(number byte, kind protocol.FaderKind, color, value byte) error {
	frame, err := protocol.Mk2SetupFader(number, kind, color, value)
	if err != nil {
		return err
	}
	return d.Send(frame)
}

// SetupVolumeFader configures fader number as a volume fader.
func (d *Mk2) SetupVolumeFader(number, color, value byte) error {
	return d.SetupFader(number, protocol.FaderVolume, color, value)
}

// SetupPanFader configures fader number as a pan fader.
func (d *Mk2) SetupPanFader(number, color, value byte) error {
	return d.SetupFader(number, protocol.FaderPan, color, value)
}
