package anf

// An Unsigned is a machine integer holding a packed truth table. A
// table for n variables needs 2^n bits, so a uint8 covers up to three
// variables and a uint64 up to six.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64
}
