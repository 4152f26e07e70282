package launchpad

import "fmt"

// DeviceNotFoundError reports that no available MIDI port name contained
// the expected substring. Direction tells which side of the connection was
// missing, so a half-plugged device is diagnosable.
type DeviceNotFoundError struct {
	Direction string // "input" or "output"
	Match     string
}

func (e *DeviceNotFoundError) Error() string {
	return fmt.Sprintf("no %s port name contains %q", e.Direction, e.Match)
}
