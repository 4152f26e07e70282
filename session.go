package launchpad

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2/drivers"
)

// session owns the port pair and event plumbing shared by both device
// generations.
type session struct {
	in    drivers.In
	out   drivers.Out
	stop  func()
	queue eventQueue
	cfg   Config
}

// guess scans the available ports for the first input and output whose
// names contain match, then opens a session on them.
func guess(match string, opts []Option) (*session, error) {
	in, out, err := FindPorts(match)
	if err != nil {
		return nil, err
	}
	return connect(in, out, opts)
}

// connect opens the given port pair and starts the input listener.
func connect(in drivers.In, out drivers.Out, opts []Option) (*session, error) {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := in.Open(); err != nil {
		return nil, fmt.Errorf("failed to open input port %q: %w", in.String(), err)
	}
	if err := out.Open(); err != nil {
		in.Close()
		return nil, fmt.Errorf("failed to open output port %q: %w", out.String(), err)
	}

	s := &session{in: in, out: out, cfg: cfg}
	stop, err := in.Listen(s.onMessage, drivers.ListenConfig{
		OnErr: func(err error) {
			s.logError("input listener error", "err", err)
		},
	})
	if err != nil {
		in.Close()
		out.Close()
		return nil, fmt.Errorf("failed to start listening on %q: %w", in.String(), err)
	}
	s.stop = stop

	s.logInfo("session open", "in", in.String(), "out", out.String())
	return s, nil
}

// onMessage runs on the driver's callback goroutine. Exactly 3-byte
// messages are queued; everything else is dropped. It never blocks.
func (s *session) onMessage(msg []byte, milliseconds int32) {
	if len(msg) != 3 {
		s.logDebug("dropping message", "bytes", len(msg))
		return
	}
	s.queue.push(MidiEvent{
		Timestamp: uint32(milliseconds),
		Status:    msg[0],
		Data1:     msg[1],
		Data2:     msg[2],
	})
}

// Send transmits one raw frame. A failed send leaves the session usable
// for further calls.
func (s *session) Send(frame []byte) error {
	if err := s.out.Send(frame); err != nil {
		return fmt.Errorf("failed to send frame: %w", err)
	}
	return nil
}

// sendAll transmits a frame sequence in order, stopping at the first
// failure.
func (s *session) sendAll(frames [][]byte) error {
	for _, frame := range frames {
		if err := s.Send(frame); err != nil {
			return err
		}
	}
	return nil
}

// Poll returns the events received since the previous call, oldest first,
// or nil when none arrived. It never blocks.
func (s *session) Poll() []MidiEvent {
	return s.queue.drain()
}

// Close stops the input listener before releasing either port, so no
// callback can fire against a closed connection. Close the session before
// calling CloseDriver.
func (s *session) Close() error {
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
	err := s.in.Close()
	if cerr := s.out.Close(); err == nil {
		err = cerr
	}
	return err
}

func (s *session) String() string {
	return fmt.Sprintf("in %q / out %q", s.in.String(), s.out.String())
}

func (s *session) logDebug(msg string, keysAndValues ...interface{}) {
	if s.cfg.Logger != nil {
		s.cfg.Logger.Debug(msg, keysAndValues...)
	}
}

func (s *session) logInfo(msg string, keysAndValues ...interface{}) {
	if s.cfg.Logger != nil {
		s.cfg.Logger.Info(msg, keysAndValues...)
	}
}

func (s *session) logError(msg string, keysAndValues ...interface{}) {
	if s.cfg.Logger != nil {
		s.cfg.Logger.Error(msg, keysAndValues...)
	}
}
