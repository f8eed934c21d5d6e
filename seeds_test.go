package bytemix

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeeds_Roots(t *testing.T) {
	t.Parallel()
	two64, _ := new(big.Float).SetPrec(128).SetString("1p64") /* 1*2**64 */
	for root, seed := range map[uint64]uint64{2: seedA, 3: seedB} {
		float, conv := new(big.Float).SetPrec(128), &big.Float{}
		trunc, _ := float.SetUint64(root).Sqrt(float).Uint64()
		float.Sub(float, conv.SetUint64(trunc)).Mul(two64, float)
		frac, _ := float.Uint64()
		assert.Equal(t, seed, frac, "sqrt(%d)", root)
	}
}

func TestSeeds_HammingWeight(t *testing.T) {
	t.Parallel()
	for _, seed := range []uint64{seedA, seedB} {
		w := 0
		for ; seed > 0; seed &= seed - 1 {
			w++
		}
		assert.InDelta(t, 32, w, 8)
	}
}
