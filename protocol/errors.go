package protocol

import "errors"

// Validation failures wrap one of these sentinels, so callers can test the
// failing constraint with errors.Is.
var (
	// ErrPosition reports an LED position outside the addressable set.
	ErrPosition = errors.New("invalid led position")

	// ErrColor reports a palette color or data byte above 127.
	ErrColor = errors.New("invalid palette color")

	// ErrColumn reports a column index outside its range.
	ErrColumn = errors.New("invalid column")

	// ErrRow reports a row index outside its range.
	ErrRow = errors.New("invalid row")

	// ErrBatch reports a batch exceeding the protocol's repeat limit.
	ErrBatch = errors.New("batch too large")

	// ErrGrid reports a grid snapshot with wrong section lengths.
	ErrGrid = errors.New("invalid grid dimensions")

	// ErrRGB reports an RGB channel above 63.
	ErrRGB = errors.New("invalid rgb channel")

	// ErrMode reports an enumerated value with no wire code.
	ErrMode = errors.New("invalid mode")

	// ErrFader reports a fader number or value outside its range.
	ErrFader = errors.New("invalid fader")

	// ErrFrame reports a frame the decoder cannot interpret.
	ErrFrame = errors.New("unrecognized frame")
)
