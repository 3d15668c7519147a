package anf

import "github.com/pkg/errors"

var (
	// ErrInvalidLength is returned when a truth table's length is
	// zero or not a power of two.
	ErrInvalidLength = errors.New("truth table length must be a nonzero power of two")

	// ErrWidthTooSmall is returned when an integer type does not
	// have the 2^n bits a packed truth table needs.
	ErrWidthTooSmall = errors.New("integer width too small for truth table")
)

func checkLength(n int) error {
	if n == 0 || n&(n-1) != 0 {
		return errors.Wrapf(ErrInvalidLength, "length %d", n)
	}
	return nil
}
