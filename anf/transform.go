package anf

import (
	"math/bits"
	"runtime"

	"github.com/pkg/errors"
)

// TransformBools converts a boolean function's truth table to the
// coefficients of its Algebraic Normal Form, in place.
//
// The table must have length 2^n for a function of n variables. Entry
// i holds the function's output for the assignment whose bit k is the
// value of variable x_k. Afterwards entry i holds the coefficient of
// the monomial ANDing every x_k for which bit k of i is set, entry 0
// being the constant term.
//
// The transform is its own inverse: applying it twice restores the
// original table.
func TransformBools(table []bool) error {
	if err := checkLength(len(table)); err != nil {
		return err
	}
	transformBools(table)
	return nil
}

func transformBools(table []bool) {
	for half := 1; half < len(table); half <<= 1 {
		for block := 0; block < len(table); block += half << 1 {
			for i := block; i < block+half; i++ {
				table[i+half] = table[i+half] != table[i]
			}
		}
	}
}

// TransformBoolsParallel is TransformBools with each butterfly stage
// split across GOMAXPROCS goroutines. Stages still run one after
// another. Within a stage every updated position reads only from the
// untouched half of its block, so the split is safe at any chunk
// boundary.
func TransformBoolsParallel(table []bool) error {
	if err := checkLength(len(table)); err != nil {
		return err
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > len(table)/2 {
		workers = len(table) / 2
	}
	if workers < 2 {
		transformBools(table)
		return nil
	}
	chunk := (len(table) + workers - 1) / workers
	done := make(chan struct{}, workers)
	for half := 1; half < len(table); half <<= 1 {
		for w := 0; w < workers; w++ {
			start := w * chunk
			end := start + chunk
			if end > len(table) {
				end = len(table)
			}
			go func(start, end, half int) {
				for i := start; i < end; i++ {
					if i&half != 0 {
						table[i] = table[i] != table[i-half]
					}
				}
				done <- struct{}{}
			}(start, end, half)
		}
		for w := 0; w < workers; w++ {
			<-done
		}
	}
	return nil
}

// TransformUnsigned converts a packed truth table to its ANF
// representation. Bit i of the low 2^numVars bits of rule is the
// function's output for input i; the same positions of the result hold
// the ANF coefficients, and bits above 2^numVars pass through
// unchanged. Cellular automaton rule numbers are packed truth tables,
// so this maps rule numbers to rule numbers: rule 3 of two variables
// (1 XOR x1) transforms to 5.
//
// Fails with ErrWidthTooSmall if T has fewer than 2^numVars bits. The
// transform is its own inverse.
func TransformUnsigned[T Unsigned](rule T, numVars int) (T, error) {
	width := bits.Len64(uint64(^T(0)))
	if numVars < 0 || numVars > bits.TrailingZeros(uint(width)) {
		return rule, errors.Wrapf(ErrWidthTooSmall, "%d-bit type, %d variables", width, numVars)
	}
	return TransformUnsignedUnchecked(rule, numVars), nil
}

// TransformUnsignedUnchecked is TransformUnsigned without the width
// check, for callers that have already validated numVars.
func TransformUnsignedUnchecked[T Unsigned](rule T, numVars int) T {
	size := uint(1) << uint(numVars)
	for half := uint(1); half < size; half <<= 1 {
		rule ^= (rule & lowHalves[T](half, size)) << half
	}
	return rule
}

// lowHalves builds the mask selecting the low half of every
// 2*half-bit block inside the low size bits: half ones then half
// zeros, repeating. The seed block is doubled until it tiles the
// table, and everything above size stays clear.
func lowHalves[T Unsigned](half, size uint) T {
	m := T(1)<<half - 1
	for span := half << 1; span < size; span <<= 1 {
		m |= m << span
	}
	return m
}
