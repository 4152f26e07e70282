package launchpad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridmidi/launchpad/protocol"
)

func newTestMk1(t *testing.T) (*Mk1, *fakeOut) {
	t.Helper()
	in, out := newFakePair("Launchpad Mini 4")
	pad, err := ConnectMk1(in, out)
	require.NoError(t, err)
	t.Cleanup(func() { pad.Close() })
	return pad, out
}

func TestMk1DeviceFrames(t *testing.T) {
	pad, out := newTestMk1(t)

	require.NoError(t, pad.Reset())
	require.NoError(t, pad.SetGridMapping(protocol.DrumRackLayout))
	require.NoError(t, pad.LightAll(protocol.BrightnessMedium))
	require.NoError(t, pad.LightTop(3, 0x30))
	require.NoError(t, pad.SetDoubleBuffer(true, false, false, true))

	require.Equal(t, [][]byte{
		{0xB0, 0x00, 0x00},
		{0xB0, 0x00, 0x02},
		{0xB0, 0x00, 0x7E},
		{0xB0, 0x6B, 0x30},
		{0xB0, 0x00, 0x31},
	}, out.frames)
}

func TestMk1LightGridSendsCursorResetThenPairs(t *testing.T) {
	pad, out := newTestMk1(t)

	grid := make([]byte, 64)
	for i := range grid {
		grid[i] = byte(i)
	}
	top := make([]byte, 8)
	right := make([]byte, 8)

	require.NoError(t, pad.LightGrid(grid, top, right))

	require.Len(t, out.frames, 41)
	assert.Equal(t, []byte{0xB0, 0x70, 0x00}, out.frames[0])
	assert.Equal(t, []byte{0x92, 0x00, 0x01}, out.frames[1])
	assert.Equal(t, []byte{0x92, 0x3E, 0x3F}, out.frames[32])
	assert.Equal(t, []byte{0x92, 0x00, 0x00}, out.frames[33])
}

func TestMk1RejectsInvalidArgumentsWithoutSending(t *testing.T) {
	pad, out := newTestMk1(t)

	require.ErrorIs(t, pad.LightTop(8, 0x30), protocol.ErrColumn)
	require.ErrorIs(t, pad.LightAll(protocol.Brightness(5)), protocol.ErrMode)
	require.ErrorIs(t, pad.SetGridMapping(protocol.GridMappingMode(3)), protocol.ErrMode)
	require.ErrorIs(t,
		pad.LightGrid(make([]byte, 63), make([]byte, 8), make([]byte, 8)),
		protocol.ErrGrid)

	assert.Empty(t, out.frames)
}
