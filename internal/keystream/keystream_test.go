package keystream

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytes_Reproducible(t *testing.T) {
	t.Parallel()
	a, b := Bytes(42, 4096), Bytes(42, 4096)
	require.Len(t, a, 4096)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, Bytes(43, 4096))
}

func TestReader_ChunkingInvariant(t *testing.T) {
	t.Parallel()
	whole := Bytes(7, 3*bufSize+17)

	r, pieced := New(7), &bytes.Buffer{}
	for _, n := range []int{1, bufSize - 1, bufSize + 3, bufSize, 14} {
		_, err := io.CopyN(pieced, r, int64(n))
		require.NoError(t, err)
	}
	assert.Equal(t, whole, pieced.Bytes())
}

func TestBytes_NotZero(t *testing.T) {
	t.Parallel()
	assert.NotEqual(t, make([]byte, 64), Bytes(0, 64))
}
