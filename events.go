package launchpad

import (
	"sync"

	"github.com/gridmidi/launchpad/protocol"
)

// MidiEvent is one raw 3-byte message received from the device, stamped
// with the driver's delivery time in milliseconds. Pad and button presses
// arrive as note on or control change messages; anything longer or shorter
// than 3 bytes is dropped before it reaches the queue.
type MidiEvent struct {
	Timestamp uint32
	Status    byte
	Data1     byte
	Data2     byte
}

// Position returns the pad or button the event addresses.
func (e MidiEvent) Position() byte { return e.Data1 }

// Down reports whether the event is a press. The devices report releases
// as the same message with zero velocity.
func (e MidiEvent) Down() bool { return e.Data2 > 0 }

// IsPad reports whether the event is a note message, which the devices use
// for the main grid and the right column.
func (e MidiEvent) IsPad() bool { return e.Status == protocol.StatusNoteOn }

// IsTopRow reports whether the event is a control change message, which
// the devices use for the top control row.
func (e MidiEvent) IsTopRow() bool { return e.Status == protocol.StatusControlChange }

// eventQueue buffers events between the driver callback and Poll. The
// callback side appends and the consumer side drains; one mutex guards
// both so arrival order survives.
type eventQueue struct {
	mu     sync.Mutex
	events []MidiEvent
}

func (q *eventQueue) push(e MidiEvent) {
	q.mu.Lock()
	q.events = append(q.events, e)
	q.mu.Unlock()
}

// drain snapshots and clears the queue. It returns nil when nothing is
// pending.
func (q *eventQueue) drain() []MidiEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	events := q.events
	q.events = nil
	return events
}
