package anf

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// A uint256 packs 2^8 table bits, enough for eight variables.
const maxUint256Vars = 8

// TransformUint256 is TransformUnsigned for 256-bit packed truth
// tables. The input is left untouched and a new value is returned;
// bits above 2^numVars carry over from the input unchanged.
//
// Fails with ErrWidthTooSmall if numVars exceeds eight.
func TransformUint256(rule *uint256.Int, numVars int) (*uint256.Int, error) {
	if numVars < 0 || numVars > maxUint256Vars {
		return nil, errors.Wrapf(ErrWidthTooSmall, "256-bit value, %d variables", numVars)
	}
	size := uint(1) << uint(numVars)
	out := new(uint256.Int).Set(rule)
	one := uint256.NewInt(1)
	var mask, tmp uint256.Int
	for half := uint(1); half < size; half <<= 1 {
		mask.Lsh(one, half)
		mask.SubUint64(&mask, 1)
		for span := half << 1; span < size; span <<= 1 {
			tmp.Lsh(&mask, span)
			mask.Or(&mask, &tmp)
		}
		tmp.And(out, &mask)
		tmp.Lsh(&tmp, half)
		out.Xor(out, &tmp)
	}
	return out, nil
}
