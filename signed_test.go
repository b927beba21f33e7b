package ilint_test

import (
	"bytes"
	"math"
	"math/rand"
	"testing"

	"github.com/brimdata/ilint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignedMapping(t *testing.T) {
	t.Parallel()
	for _, c := range loadVectors(t).Signed {
		assert.Equal(t, c.Unsigned, ilint.ToUnsigned(c.Signed), "signed %d", c.Signed)
		assert.Equal(t, c.Signed, ilint.ToSigned(c.Unsigned), "unsigned %d", c.Unsigned)
	}
}

func TestSignedBijection(t *testing.T) {
	t.Parallel()
	vals := []int64{0, 1, -1, math.MaxInt64, math.MinInt64, math.MaxInt64 - 1, math.MinInt64 + 1}
	r := rand.New(rand.NewSource(1))
	for k := 0; k < 10000; k++ {
		vals = append(vals, int64(r.Uint64())>>uint(r.Intn(64)))
	}
	for _, v := range vals {
		require.Equal(t, v, ilint.ToSigned(ilint.ToUnsigned(v)))
		u := uint64(v)
		require.Equal(t, u, ilint.ToUnsigned(ilint.ToSigned(u)))
	}
}

func TestSignedEncoding(t *testing.T) {
	// Small magnitudes of either sign fit in one byte.
	for _, v := range []int64{-124, -1, 0, 1, 123} {
		assert.Len(t, ilint.EncodeInt(v), 1, "value %d", v)
	}
	assert.Len(t, ilint.EncodeInt(124), 2)
	assert.Len(t, ilint.EncodeInt(math.MinInt64), ilint.MaxSize)

	var buf bytes.Buffer
	vals := []int64{math.MinInt64, -505, -1, 0, 247, math.MaxInt64}
	var b []byte
	for _, v := range vals {
		require.NoError(t, ilint.WriteInt(&buf, v))
		b = ilint.AppendInt(b, v)
	}
	assert.Equal(t, buf.Bytes(), b)
	for _, v := range vals {
		i, n, err := ilint.Int(b)
		require.NoError(t, err)
		assert.Equal(t, v, i)
		b = b[n:]
		i, err = ilint.ReadInt(&buf)
		require.NoError(t, err)
		assert.Equal(t, v, i)
	}
}
