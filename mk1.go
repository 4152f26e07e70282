package launchpad

import (
	"gitlab.com/gomidi/midi/v2/drivers"

	"github.com/gridmidi/launchpad/protocol"
)

// mk1Match is the port name substring the first-generation devices
// register with the system.
const mk1Match = "Launchpad Mini"

// Mk1 is a first-generation device: the original Launchpad, Launchpad S or
// Launchpad Mini. It is driven entirely by 3-byte channel frames.
type Mk1 struct {
	*session
}

// GuessMk1 scans the available port names and connects to the first
// first-generation device it finds.
func GuessMk1(opts ...Option) (*Mk1, error) {
	s, err := guess(mk1Match, opts)
	if err != nil {
		return nil, err
	}
	return &Mk1{session: s}, nil
}

// ConnectMk1 opens a first-generation session on a caller-supplied port
// pair, for setups where scanning by name is not enough.
func ConnectMk1(in drivers.In, out drivers.Out, opts ...Option) (*Mk1, error) {
	s, err := connect(in, out, opts)
	if err != nil {
		return nil, err
	}
	return &Mk1{session: s}, nil
}

// Reset turns off every LED and returns the device to its power-on state.
func (d *Mk1) Reset() error {
	return d.Send(protocol.Mk1Reset())
}

// SetGridMapping selects how the grid maps onto note numbers.
func (d *Mk1) SetGridMapping(mode protocol.GridMappingMode) error {
	frame, err := protocol.Mk1GridMapping(mode)
	if err != nil {
		return err
	}
	return d.Send(frame)
}

// SetDoubleBuffer updates the double buffering state. See
// protocol.Mk1DoubleBuffer for the flag semantics.
func (d *Mk1) SetDoubleBuffer(display, update, flash, copyBuffer bool) error {
	return d.Send(protocol.Mk1DoubleBuffer(display, update, flash, copyBuffer))
}

// LightAll floods every LED at the given brightness.
func (d *Mk1) LightAll(level protocol.Brightness) error {
	frame, err := protocol.Mk1LightAll(level)
	if err != nil {
		return err
	}
	return d.Send(frame)
}

// LightTop lights one button of the top control row.
func (d *Mk1) LightTop(column, value byte) error {
	frame, err := protocol.Mk1LightTop(column, value)
	if err != nil {
		return err
	}
	return d.Send(frame)
}

// LightGrid rewrites the whole surface in one rapid update pass: 64 grid
// values, 8 top row values and 8 right column values, each encoding color
// and double-buffer flags as the device expects them.
func (d *Mk1) LightGrid(grid, top, right []byte) error {
	frames, err := protocol.Mk1GridFrames(grid, top, right)
	if err != nil {
		return err
	}
	return d.sendAll(frames)
}
