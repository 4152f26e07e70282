package protocol

// Status bytes for the 3-byte channel messages.
const (
	// StatusControlChange is a control change on channel 1. It carries every
	// first-generation control command, and devices report top row button
	// presses with it.
	StatusControlChange = 0xB0

	// StatusNoteOn is a note on message on channel 1, reported by the device
	// for pad presses and releases.
	StatusNoteOn = 0x90

	// StatusNoteFlash is a note on message on channel 2. A MK2 consumes it
	// as a single-pad flash command.
	StatusNoteFlash = 0x91

	// StatusNoteRapid is a note on message on channel 3. First-generation
	// devices consume it as a two-LED rapid update; a MK2 consumes it as a
	// single-pad pulse command.
	StatusNoteRapid = 0x92
)

// System exclusive framing.
const (
	// SysExStart begins every system exclusive frame (0xF0).
	SysExStart = 0xF0

	// SysExEnd terminates every system exclusive frame (0xF7).
	SysExEnd = 0xF7
)

// sysExHeader opens every MK2 command frame: SysExStart, the Novation
// manufacturer ID (00 20 29), product type and number (02 18).
var sysExHeader = []byte{SysExStart, 0x00, 0x20, 0x29, 0x02, 0x18}

// MK2 SysEx opcodes, one per command kind. The values are fixed by the
// hardware and must not change.
const (
	// OpLightLEDs sets one pad to a palette color (repeatable per frame batch).
	OpLightLEDs = 0x0A

	// OpLightRGB sets one pad to a direct 6-bit-per-channel RGB value.
	OpLightRGB = 0x0B

	// OpLightColumn floods one column with a palette color.
	OpLightColumn = 0x0C

	// OpLightRow floods one row with a palette color.
	OpLightRow = 0x0D

	// OpLightAll floods every LED with a palette color.
	OpLightAll = 0x0E

	// OpScrollText scrolls ASCII text across the grid.
	OpScrollText = 0x14

	// OpSelectLayout switches the device's top-level layout.
	OpSelectLayout = 0x22

	// OpFlashLEDs sets one pad to flash between its color and another.
	OpFlashLEDs = 0x23

	// OpPulseLEDs sets one pad to pulse its color.
	OpPulseLEDs = 0x28

	// OpSetupFader configures one virtual fader in the fader layouts.
	OpSetupFader = 0x2B
)

// First-generation controller numbers, sent with StatusControlChange.
const (
	// CtrlDevice is the master control register: reset, grid mapping mode,
	// double buffering and flood commands all write to it.
	CtrlDevice = 0x00

	// CtrlTopRowBase addresses the leftmost top row button; the seven
	// buttons to its right follow consecutively.
	CtrlTopRowBase = 0x68
)

// DoubleBufferBase is the fixed bit pattern OR-ed into every first-generation
// double buffering command.
const DoubleBufferBase = 0x20

// Batch and payload limits fixed by the hardware.
const (
	// MaxBatchLEDs caps the per-LED batch commands (light, flash, pulse, RGB).
	MaxBatchLEDs = 80

	// MaxBatchColumns caps one column flood batch.
	MaxBatchColumns = 9

	// MaxBatchRows caps one row flood batch.
	MaxBatchRows = 9

	// GridCells is the number of pads in the 8x8 main grid.
	GridCells = 64

	// GridEdge is the length of the top row and the right column.
	GridEdge = 8

	// MaxRGB is the largest value of one RGB channel (6-bit).
	MaxRGB = 63

	// MaxFaderNumber is the highest addressable virtual fader.
	MaxFaderNumber = 7

	// MaxColor is the largest palette color index.
	MaxColor = 127
)

// Scroll speed control bytes. Embed them in scroll text to change the speed
// mid-message.
const (
	ScrollSlowest = "\x01"
	ScrollSlower  = "\x02"
	ScrollSlow    = "\x03"
	ScrollNormal  = "\x04"
	ScrollFast    = "\x05"
	ScrollFaster  = "\x06"
	ScrollFastest = "\x07"
)
