package protocol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridmidi/launchpad/protocol"
)

// validPositions enumerates every addressable position: the decimal-packed
// grid and right-edge bands plus the top row range.
func validPositions() []byte {
	var ps []byte
	for row := byte(1); row <= 8; row++ {
		for col := byte(1); col <= 9; col++ {
			ps = append(ps, row*10+col)
		}
	}
	for p := byte(104); p <= 111; p++ {
		ps = append(ps, p)
	}
	return ps
}

func TestValidPosition(t *testing.T) {
	valid := make(map[byte]bool)
	for _, p := range validPositions() {
		valid[p] = true
	}
	for i := 0; i <= 255; i++ {
		p := byte(i)
		assert.Equalf(t, valid[p], protocol.ValidPosition(p), "position %d", p)
	}
}

func TestValidColor(t *testing.T) {
	for c := 0; c <= 127; c++ {
		assert.Truef(t, protocol.ValidColor(byte(c)), "color %d", c)
	}
	for c := 128; c <= 255; c++ {
		assert.Falsef(t, protocol.ValidColor(byte(c)), "color %d", c)
	}
}

func TestValidColumnRow(t *testing.T) {
	for i := byte(0); i <= 8; i++ {
		assert.Truef(t, protocol.ValidColumn(i), "column %d", i)
		assert.Truef(t, protocol.ValidRow(i), "row %d", i)
	}
	for _, i := range []byte{9, 10, 100, 255} {
		assert.Falsef(t, protocol.ValidColumn(i), "column %d", i)
		assert.Falsef(t, protocol.ValidRow(i), "row %d", i)
	}
}

func TestCheckedValidators(t *testing.T) {
	require.NoError(t, protocol.CheckPosition(11))
	require.NoError(t, protocol.CheckColor(127))
	require.NoError(t, protocol.CheckColumn(8))
	require.NoError(t, protocol.CheckRow(0))

	assert.ErrorIs(t, protocol.CheckPosition(10), protocol.ErrPosition)
	assert.ErrorIs(t, protocol.CheckColor(128), protocol.ErrColor)
	assert.ErrorIs(t, protocol.CheckColumn(9), protocol.ErrColumn)
	assert.ErrorIs(t, protocol.CheckRow(9), protocol.ErrRow)
}

func TestGridPos(t *testing.T) {
	tests := []struct {
		name     string
		row, col byte
		want     byte
		wantErr  error
	}{
		{"bottom left pad", 1, 1, 11, nil},
		{"top right scene button", 8, 9, 89, nil},
		{"middle", 5, 3, 53, nil},
		{"row zero", 0, 1, 0, protocol.ErrRow},
		{"row nine", 9, 1, 0, protocol.ErrRow},
		{"column zero", 1, 0, 0, protocol.ErrColumn},
		{"column ten", 1, 10, 0, protocol.ErrColumn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := protocol.GridPos(tt.row, tt.col)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, protocol.ValidPosition(got))
		})
	}
}

func TestTopPos(t *testing.T) {
	got, err := protocol.TopPos(0)
	require.NoError(t, err)
	assert.Equal(t, byte(104), got)

	got, err = protocol.TopPos(7)
	require.NoError(t, err)
	assert.Equal(t, byte(111), got)

	_, err = protocol.TopPos(8)
	assert.ErrorIs(t, err, protocol.ErrColumn)
}
