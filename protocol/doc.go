// Package protocol builds and decodes the wire frames understood by
// Novation Launchpad grid controllers.
//
// Two hardware generations are covered. The first generation (Launchpad,
// Launchpad S, Launchpad Mini) is driven entirely by 3-byte channel
// messages:
//
//	Control: [0xB0][controller][value]
//	Rapid:   [0x92][data][data]        (two LEDs per frame)
//
// The second generation (Launchpad MK2) is driven by system exclusive
// frames carrying the Novation header and an opcode:
//
//	SysEx: [0xF0][0x00 0x20 0x29 0x02 0x18][OP][PAYLOAD...][0xF7]
//
// plus two compact 3-byte forms for flashing and pulsing a single pad.
//
// # Frame Builders
//
// The Mk1* and Mk2* builders validate every argument and return complete,
// ready-to-send frames. Operations that need several frames return them in
// send order. A builder never returns a partial result: if any element of a
// batch is out of range the whole batch is rejected and nothing is built.
//
//	frame, err := protocol.Mk2LightAll(0)
//	frames, err := protocol.Mk1GridFrames(grid, top, right)
//
// # Decoding
//
// DecodeMk1 and DecodeMk2 turn raw frames back into typed Commands. The two
// generations reuse byte values for different operations, so decoding is
// generation-specific:
//
//	cmd, err := protocol.DecodeMk2(frame)
//
// # Errors
//
// Validation failures wrap a sentinel (ErrPosition, ErrColor, ErrColumn,
// ErrRow, ...) so callers can branch on the failing constraint with
// errors.Is.
//
// # Reference
//
// Byte values follow the Launchpad and Launchpad MK2 programmer's reference
// manuals published by Novation.
package protocol
