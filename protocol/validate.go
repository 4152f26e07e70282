package protocol

import "fmt"

// ValidPosition reports whether p addresses an LED or control button. Grid
// and right-edge positions pack row and column as decimal digits (tens digit
// 1..8, ones digit 1..9); 104..111 address the top row.
func ValidPosition(p byte) bool {
	if 104 <= p && p <= 111 {
		return true
	}
	return 1 <= p/10 && p/10 <= 8 && p%10 >= 1
}

// ValidColor reports whether c is a palette color index.
func ValidColor(c byte) bool { return c <= MaxColor }

// ValidColumn reports whether c is a column index for the column flood
// command (0..8).
func ValidColumn(c byte) bool { return c <= 8 }

// ValidRow reports whether r is a row index for the row flood command (0..8).
func ValidRow(r byte) bool { return r <= 8 }

// CheckPosition returns an error wrapping ErrPosition when p is outside the
// addressable set.
func CheckPosition(p byte) error {
	if !ValidPosition(p) {
		return fmt.Errorf("%w: %d", ErrPosition, p)
	}
	return nil
}

// CheckColor returns an error wrapping ErrColor when c is above 127.
func CheckColor(c byte) error {
	if !ValidColor(c) {
		return fmt.Errorf("%w: %d", ErrColor, c)
	}
	return nil
}

// CheckColumn returns an error wrapping ErrColumn when c is above 8.
func CheckColumn(c byte) error {
	if !ValidColumn(c) {
		return fmt.Errorf("%w: %d", ErrColumn, c)
	}
	return nil
}

// CheckRow returns an error wrapping ErrRow when r is above 8.
func CheckRow(r byte) error {
	if !ValidRow(r) {
		return fmt.Errorf("%w: %d", ErrRow, r)
	}
	return nil
}

// GridPos packs a grid row (1..8, counting from the bottom) and column
// (1..9, column 9 being the round buttons on the right edge) into a
// position byte.
func GridPos(row, col byte) (byte, error) {
	if row < 1 || row > 8 {
		return 0, fmt.Errorf("%w: grid row %d not in 1..8", ErrRow, row)
	}
	if col < 1 || col > 9 {
		return 0, fmt.Errorf("%w: grid column %d not in 1..9", ErrColumn, col)
	}
	return row*10 + col, nil
}

// TopPos maps a top row button (0..7, left to right) to its position byte.
func TopPos(col byte) (byte, error) {
	if col > 7 {
		return 0, fmt.Errorf("%w: top row column %d not in 0..7", ErrColumn, col)
	}
	return 104 + col, nil
}
