// Package launchpad drives Novation Launchpad grid controllers over MIDI.
//
// Two hardware generations are supported: the first (Launchpad, Launchpad S,
// Launchpad Mini) as Mk1, and the Launchpad MK2 as Mk2. Both wrap the same
// session plumbing: one input port feeding a pollable event queue and one
// output port carrying encoded frames (see the protocol package).
//
// A MIDI driver must be registered before ports can be scanned, usually by
// blank-importing rtmididrv in the program's main package:
//
//	import _ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
//
//	pad, err := launchpad.GuessMk2()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer pad.Close()
//
//	pad.LightAll(palette.Green)
//	for _, ev := range pad.Poll() {
//		// ...
//	}
package launchpad

import (
	"strings"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// Device is the capability set shared by both generations: a raw frame
// sender and a pollable event stream.
type Device interface {
	// Send transmits one raw frame to the device.
	Send(frame []byte) error

	// Poll drains and returns the events received since the last call.
	Poll() []MidiEvent

	// Close stops the input listener and releases both ports.
	Close() error

	// String describes the connected port pair.
	String() string
}

// CloseDriver releases the process-wide MIDI driver. Call it once at
// shutdown, after every device is closed.
func CloseDriver() {
	midi.CloseDriver()
}

// ListInputs returns the names of the available MIDI input ports.
func ListInputs() []string {
	ins := midi.GetInPorts()
	names := make([]string, 0, len(ins))
	for _, in := range ins {
		names = append(names, in.String())
	}
	return names
}

// ListOutputs returns the names of the available MIDI output ports.
func ListOutputs() []string {
	outs := midi.GetOutPorts()
	names := make([]string, 0, len(outs))
	for _, out := range outs {
		names = append(names, out.String())
	}
	return names
}

// FindPorts returns the first input and output port whose names contain
// match, without opening them. Pass the pair to ConnectMk1 or ConnectMk2,
// typically when a device registers under a name the Guess functions do
// not cover.
func FindPorts(match string) (drivers.In, drivers.Out, error) {
	in, err := findInPort(midi.GetInPorts(), match)
	if err != nil {
		return nil, nil, err
	}
	out, err := findOutPort(midi.GetOutPorts(), match)
	if err != nil {
		return nil, nil, err
	}
	return in, out, nil
}

// findInPort returns the first input whose name contains match. The match
// is case-sensitive; multiple devices with overlapping names are not
// disambiguated.
func findInPort(ins []drivers.In, match string) (drivers.In, error) {
	for _, in := range ins {
		if strings.Contains(in.String(), match) {
			return in, nil
		}
	}
	return nil, &DeviceNotFoundError{Direction: "input", Match: match}
}

// findOutPort returns the first output whose name contains match.
func findOutPort(outs []drivers.Out, match string) (drivers.Out, error) {
	for _, out := range outs {
		if strings.Contains(out.String(), match) {
			return out, nil
		}
	}
	return nil, &DeviceNotFoundError{Direction: "output", Match: match}
}
