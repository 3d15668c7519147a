package anf_test

import (
	"math/rand"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thomasarmel/fast-boolean-anf-transform/anf"
)

func randomUint256(rng *rand.Rand) *uint256.Int {
	var buf [32]byte
	rng.Read(buf[:])
	return new(uint256.Int).SetBytes(buf[:])
}

func TestTransformUint256(t *testing.T) {
	got, err := anf.TransformUint256(uint256.NewInt(3), 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), got.Uint64())

	got, err = anf.TransformUint256(uint256.NewInt(240), 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(16), got.Uint64())
}

func TestTransformUint256MatchesUnsigned(t *testing.T) {
	rng := rand.New(rand.NewSource(50))
	for numVars := 0; numVars <= 6; numVars++ {
		for i := 0; i < 20; i++ {
			rule := rng.Uint64()
			got, err := anf.TransformUint256(uint256.NewInt(rule), numVars)
			require.NoError(t, err)
			want := anf.TransformUnsignedUnchecked(rule, numVars)
			assert.Equal(t, want, got.Uint64(), "rule %#x with %d variables", rule, numVars)
		}
	}
}

func TestTransformUint256Involution(t *testing.T) {
	rng := rand.New(rand.NewSource(51))
	for i := 0; i < 50; i++ {
		rule := randomUint256(rng)
		once, err := anf.TransformUint256(rule, 8)
		require.NoError(t, err)
		twice, err := anf.TransformUint256(once, 8)
		require.NoError(t, err)
		assert.True(t, rule.Eq(twice), "rule %s", rule)
	}
}

func TestTransformUint256LeavesInputAlone(t *testing.T) {
	rule := uint256.NewInt(0b0011)
	_, err := anf.TransformUint256(rule, 2)
	require.NoError(t, err)
	assert.True(t, rule.Eq(uint256.NewInt(0b0011)))
}

func TestTransformUint256PreservesPadding(t *testing.T) {
	rng := rand.New(rand.NewSource(52))
	for i := 0; i < 50; i++ {
		rule := randomUint256(rng)
		got, err := anf.TransformUint256(rule, 4)
		require.NoError(t, err)
		wantHigh := new(uint256.Int).Rsh(rule, 16)
		gotHigh := new(uint256.Int).Rsh(got, 16)
		assert.True(t, wantHigh.Eq(gotHigh), "rule %s", rule)
	}
}

func TestTransformUint256WidthTooSmall(t *testing.T) {
	_, err := anf.TransformUint256(uint256.NewInt(0), 9)
	require.ErrorIs(t, err, anf.ErrWidthTooSmall)

	_, err = anf.TransformUint256(uint256.NewInt(0), -1)
	require.ErrorIs(t, err, anf.ErrWidthTooSmall)

	_, err = anf.TransformUint256(uint256.NewInt(0), 8)
	require.NoError(t, err)
}
