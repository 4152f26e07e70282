package protocol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridmidi/launchpad/protocol"
)

// mustFrame unwraps a single-frame builder result.
func mustFrame(t *testing.T, frame []byte, err error) []byte {
	t.Helper()
	require.NoError(t, err)
	return frame
}

// firstFrame unwraps the first frame of a batch builder result.
func firstFrame(t *testing.T, frames [][]byte, err error) []byte {
	t.Helper()
	require.NoError(t, err)
	require.NotEmpty(t, frames)
	return frames[0]
}

func TestDecodeMk1RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		frame []byte
		want  protocol.Command
	}{
		{"reset", protocol.Mk1Reset(), protocol.Reset{}},
		{
			"grid mapping",
			mustFrame(t, protocol.Mk1GridMapping(protocol.XYLayout)),
			protocol.GridMapping{Mode: protocol.XYLayout},
		},
		{
			"light all",
			mustFrame(t, protocol.Mk1LightAll(protocol.BrightnessMedium)),
			protocol.LightAllLevel{Level: protocol.BrightnessMedium},
		},
		{
			"double buffer",
			protocol.Mk1DoubleBuffer(true, false, true, false),
			protocol.DoubleBuffer{Display: true, Flash: true},
		},
		{
			"top row",
			mustFrame(t, protocol.Mk1LightTop(2, 0x15)),
			protocol.LightTop{Column: 2, Value: 0x15},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := protocol.DecodeMk1(tt.frame)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeMk1GridSequence(t *testing.T) {
	frames, err := protocol.Mk1GridFrames(make([]byte, 64), make([]byte, 8), make([]byte, 8))
	require.NoError(t, err)

	cmd, err := protocol.DecodeMk1(frames[0])
	require.NoError(t, err)
	assert.Equal(t, protocol.CursorReset{}, cmd)

	cmd, err = protocol.DecodeMk1(frames[1])
	require.NoError(t, err)
	assert.Equal(t, protocol.RapidPair{}, cmd)
}

func TestDecodeMk2RoundTrip(t *testing.T) {
	led := protocol.ColorLed{Position: 45, Color: 17}

	tests := []struct {
		name  string
		frame []byte
		want  protocol.Command
	}{
		{
			"light all",
			mustFrame(t, protocol.Mk2LightAll(40)),
			protocol.LightAll{Color: 40},
		},
		{
			"flash single",
			mustFrame(t, protocol.Mk2FlashSingle(led)),
			protocol.FlashSingle{Led: led},
		},
		{
			"pulse single",
			mustFrame(t, protocol.Mk2PulseSingle(led)),
			protocol.PulseSingle{Led: led},
		},
		{
			"light led",
			firstFrame(t, protocol.Mk2LightLEDs([]protocol.ColorLed{led})),
			protocol.LightLED{Led: led},
		},
		{
			"flash led",
			firstFrame(t, protocol.Mk2FlashLEDs([]protocol.ColorLed{led})),
			protocol.FlashLED{Led: led},
		},
		{
			"pulse led",
			firstFrame(t, protocol.Mk2PulseLEDs([]protocol.ColorLed{led})),
			protocol.PulseLED{Led: led},
		},
		{
			"column",
			firstFrame(t, protocol.Mk2LightColumns([]protocol.ColorColumn{{Column: 3, Color: 9}})),
			protocol.LightColumn{Column: protocol.ColorColumn{Column: 3, Color: 9}},
		},
		{
			"row",
			firstFrame(t, protocol.Mk2LightRows([]protocol.ColorRow{{Row: 8, Color: 127}})),
			protocol.LightRow{Row: protocol.ColorRow{Row: 8, Color: 127}},
		},
		{
			"scroll",
			mustFrame(t, protocol.Mk2ScrollText(5, true, "Hi")),
			protocol.ScrollText{Color: 5, Loop: true, Text: "Hi"},
		},
		{
			"rgb",
			mustFrame(t, protocol.Mk2LightRGB(protocol.RGBLed{Position: 81, Red: 1, Green: 2, Blue: 3})),
			protocol.LightRGB{Led: protocol.RGBLed{Position: 81, Red: 1, Green: 2, Blue: 3}},
		},
		{
			"layout",
			mustFrame(t, protocol.Mk2SelectLayout(protocol.LayoutPan)),
			protocol.SelectLayout{Layout: protocol.LayoutPan},
		},
		{
			"fader",
			mustFrame(t, protocol.Mk2SetupFader(7, protocol.FaderVolume, 21, 100)),
			protocol.SetupFader{Number: 7, FaderKind: protocol.FaderVolume, Color: 21, Value: 100},
		},
		{
			"inquiry",
			protocol.DeviceInquiry(),
			protocol.Inquiry{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := protocol.DecodeMk2(tt.frame)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	_, err := protocol.DecodeMk1([]byte{0xB0, 0x00})
	assert.ErrorIs(t, err, protocol.ErrFrame)

	_, err = protocol.DecodeMk1([]byte{0x90, 11, 127})
	assert.ErrorIs(t, err, protocol.ErrFrame)

	_, err = protocol.DecodeMk1([]byte{0xB0, 0x00, 0x03})
	assert.ErrorIs(t, err, protocol.ErrFrame)

	_, err = protocol.DecodeMk2([]byte{0xF0, 0x00, 0x20, 0x29, 0x02, 0x18, 0x44, 0xF7})
	assert.ErrorIs(t, err, protocol.ErrFrame)

	// Missing terminator.
	_, err = protocol.DecodeMk2([]byte{0xF0, 0x00, 0x20, 0x29, 0x02, 0x18, 0x0E, 0x00})
	assert.ErrorIs(t, err, protocol.ErrFrame)

	// Structurally sound but out of range.
	_, err = protocol.DecodeMk2([]byte{0x91, 90, 0})
	assert.ErrorIs(t, err, protocol.ErrPosition)
}

func TestCommandKinds(t *testing.T) {
	assert.Equal(t, protocol.KindReset, protocol.Reset{}.Kind())
	assert.Equal(t, protocol.KindLightAll, protocol.LightAll{}.Kind())
	assert.Equal(t, protocol.KindScrollText, protocol.ScrollText{}.Kind())
	assert.Equal(t, protocol.KindInquiry, protocol.Inquiry{}.Kind())
}
