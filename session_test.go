package launchpad

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// fakeIn is an in-memory input port. Tests feed it messages through
// deliver to stand in for the driver callback.
type fakeIn struct {
	name    string
	open    bool
	onMsg   func(msg []byte, milliseconds int32)
	cfg     drivers.ListenConfig
	listens int
}

func (f *fakeIn) Number() int             { return 0 }
func (f *fakeIn) String() string          { return f.name }
func (f *fakeIn) Underlying() interface{} { return nil }
func (f *fakeIn) Open() error             { f.open = true; return nil }
func (f *fakeIn) Close() error            { f.open = false; return nil }
func (f *fakeIn) IsOpen() bool            { return f.open }

func (f *fakeIn) Listen(onMsg func(msg []byte, milliseconds int32), config drivers.ListenConfig) (func(), error) {
	f.onMsg = onMsg
	f.cfg = config
	f.listens++
	return func() { f.onMsg = nil }, nil
}

func (f *fakeIn) deliver(msg []byte, ts int32) {
	if f.onMsg != nil {
		f.onMsg(msg, ts)
	}
}

func (f *fakeIn) fail(err error) {
	if f.cfg.OnErr != nil {
		f.cfg.OnErr(err)
	}
}

// fakeOut records every frame sent to it.
type fakeOut struct {
	name    string
	open    bool
	frames  [][]byte
	sendErr error
}

func (f *fakeOut) Number() int             { return 1 }
func (f *fakeOut) String() string          { return f.name }
func (f *fakeOut) Underlying() interface{} { return nil }
func (f *fakeOut) Open() error             { f.open = true; return nil }
func (f *fakeOut) Close() error            { f.open = false; return nil }
func (f *fakeOut) IsOpen() bool            { return f.open }

func (f *fakeOut) Send(data []byte) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.frames = append(f.frames, append([]byte(nil), data...))
	return nil
}

type failOpenOut struct {
	fakeOut
}

func (f *failOpenOut) Open() error { return errors.New("port busy") }

// recordLogger captures diagnostic messages by level.
type recordLogger struct {
	debugs []string
	infos  []string
	errs   []string
}

func (l *recordLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.debugs = append(l.debugs, msg)
}

func (l *recordLogger) Info(msg string, keysAndValues ...interface{}) {
	l.infos = append(l.infos, msg)
}

func (l *recordLogger) Error(msg string, keysAndValues ...interface{}) {
	l.errs = append(l.errs, msg)
}

func newFakePair(name string) (*fakeIn, *fakeOut) {
	return &fakeIn{name: name}, &fakeOut{name: name}
}

func TestConnectOpensPortsAndListens(t *testing.T) {
	in, out := newFakePair("Launchpad MK2 20:0")
	pad, err := ConnectMk2(in, out)
	require.NoError(t, err)

	assert.True(t, in.IsOpen())
	assert.True(t, out.IsOpen())
	assert.Equal(t, 1, in.listens)
	assert.Equal(t, `in "Launchpad MK2 20:0" / out "Launchpad MK2 20:0"`, pad.String())

	require.NoError(t, pad.Close())
	assert.False(t, in.IsOpen())
	assert.False(t, out.IsOpen())
	assert.Nil(t, in.onMsg, "close must stop the listener")
}

func TestConnectClosesInputWhenOutputFails(t *testing.T) {
	in, _ := newFakePair("Launchpad MK2 20:0")
	out := &failOpenOut{fakeOut{name: "Launchpad MK2 20:0"}}

	_, err := ConnectMk2(in, out)
	require.Error(t, err)
	assert.False(t, in.IsOpen())
}

func TestPollReturnsEventsInArrivalOrder(t *testing.T) {
	in, out := newFakePair("Launchpad MK2 20:0")
	pad, err := ConnectMk2(in, out)
	require.NoError(t, err)
	defer pad.Close()

	in.deliver([]byte{0x90, 11, 127}, 5)
	in.deliver([]byte{0x90, 11, 0}, 9)
	in.deliver([]byte{0xB0, 104, 127}, 12)

	events := pad.Poll()
	require.Len(t, events, 3)
	assert.Equal(t, MidiEvent{Timestamp: 5, Status: 0x90, Data1: 11, Data2: 127}, events[0])
	assert.Equal(t, MidiEvent{Timestamp: 9, Status: 0x90, Data1: 11, Data2: 0}, events[1])
	assert.Equal(t, MidiEvent{Timestamp: 12, Status: 0xB0, Data1: 104, Data2: 127}, events[2])

	assert.Nil(t, pad.Poll(), "drained queue polls as nil")
}

func TestPollDropsNonThreeByteMessages(t *testing.T) {
	in, out := newFakePair("Launchpad MK2 20:0")
	pad, err := ConnectMk2(in, out)
	require.NoError(t, err)
	defer pad.Close()

	in.deliver([]byte{0xF8}, 1)
	in.deliver([]byte{0xF0, 0x7E, 0x00, 0x06, 0x02, 0xF7}, 2)
	in.deliver([]byte{0x90, 22, 64}, 3)

	events := pad.Poll()
	require.Len(t, events, 1)
	assert.Equal(t, byte(22), events[0].Position())
}

func TestSendFailureLeavesSessionUsable(t *testing.T) {
	in, out := newFakePair("Launchpad MK2 20:0")
	pad, err := ConnectMk2(in, out)
	require.NoError(t, err)
	defer pad.Close()

	boom := errors.New("port gone")
	out.sendErr = boom
	require.ErrorIs(t, pad.LightAll(5), boom)

	out.sendErr = nil
	require.NoError(t, pad.LightAll(5))
	require.Len(t, out.frames, 1)
}

func TestWithLoggerReceivesDiagnostics(t *testing.T) {
	in, out := newFakePair("Launchpad MK2 20:0")
	logger := &recordLogger{}
	pad, err := ConnectMk2(in, out, WithLogger(logger))
	require.NoError(t, err)
	defer pad.Close()

	assert.Contains(t, logger.infos, "session open")

	in.deliver([]byte{0xF8}, 1)
	assert.Contains(t, logger.debugs, "dropping message")

	in.fail(errors.New("buffer overflow"))
	assert.Contains(t, logger.errs, "input listener error")
}
