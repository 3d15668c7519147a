package anf

import "math/bits"

const wordBits = 64

// A TruthTable is a boolean function's truth table packed into 64-bit
// words, for functions too wide for a single machine integer. Bit i of
// the table (word i/64, bit i%64) is the function's output for input
// assignment i.
type TruthTable struct {
	NumVars int
	Words   []uint64
}

// NewTruthTable creates an all-false table for a function of numVars
// variables.
func NewTruthTable(numVars int) *TruthTable {
	if numVars < 0 {
		panic("number of variables out of range")
	}
	numWords := 1
	if numVars > 6 {
		numWords = 1 << uint(numVars-6)
	}
	return &TruthTable{
		NumVars: numVars,
		Words:   make([]uint64, numWords),
	}
}

// TruthTableFromBools packs a boolean slice of length 2^n into a
// table of n variables.
func TruthTableFromBools(table []bool) (*TruthTable, error) {
	if err := checkLength(len(table)); err != nil {
		return nil, err
	}
	t := NewTruthTable(bits.TrailingZeros(uint(len(table))))
	for i, v := range table {
		if v {
			t.Words[i>>6] |= 1 << uint(i&63)
		}
	}
	return t, nil
}

// Len returns the number of table entries, 2^NumVars.
func (t *TruthTable) Len() int {
	return 1 << uint(t.NumVars)
}

// Get returns the entry at the given index.
func (t *TruthTable) Get(index int) bool {
	if index < 0 || index >= t.Len() {
		panic("index out of range")
	}
	return t.Words[index>>6]&(1<<uint(index&63)) != 0
}

// Set sets the entry at the given index.
func (t *TruthTable) Set(index int, value bool) {
	if index < 0 || index >= t.Len() {
		panic("index out of range")
	}
	if value {
		t.Words[index>>6] |= 1 << uint(index&63)
	} else {
		t.Words[index>>6] &= ^(uint64(1) << uint(index&63))
	}
}

// Bools unpacks the table into a boolean slice.
func (t *TruthTable) Bools() []bool {
	out := make([]bool, t.Len())
	for i := range out {
		out[i] = t.Words[i>>6]&(1<<uint(i&63)) != 0
	}
	return out
}

// Transform converts the table to its ANF coefficients in place.
// Stages whose shift distance fits inside a word run as a masked
// shift-XOR on every word. Wider stages XOR the first-half words of
// each block into its second-half words, which is the same shift with
// no carries to cross word boundaries. Bits of a partially used word
// above 2^NumVars are left alone. Applying Transform twice restores
// the table.
func (t *TruthTable) Transform() {
	size := uint(t.Len())
	if size <= wordBits {
		w := t.Words[0]
		for half := uint(1); half < size; half <<= 1 {
			w ^= (w & lowHalves[uint64](half, size)) << half
		}
		t.Words[0] = w
		return
	}
	for half := uint(1); half < size; half <<= 1 {
		if half < wordBits {
			m := lowHalves[uint64](half, wordBits)
			for i, w := range t.Words {
				t.Words[i] = w ^ (w&m)<<half
			}
		} else {
			halfWords := int(half >> 6)
			for block := 0; block < len(t.Words); block += halfWords << 1 {
				for i := block; i < block+halfWords; i++ {
					t.Words[i+halfWords] ^= t.Words[i]
				}
			}
		}
	}
}
