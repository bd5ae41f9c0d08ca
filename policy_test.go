package layermap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoldedBitPolicy(t *testing.T) {
	// 0 folds to 0: never promotes.
	for flip := 0; flip < 32; flip++ {
		assert.False(t, FoldedBitPolicy(wordBytes(0), flip))
	}

	// 5 is 0b101: promote at flip 0, not at flip 1, again at flip 2.
	assert.True(t, FoldedBitPolicy(wordBytes(5), 0))
	assert.False(t, FoldedBitPolicy(wordBytes(5), 1))
	assert.True(t, FoldedBitPolicy(wordBytes(5), 2))

	// The flip index wraps modulo 8.
	assert.True(t, FoldedBitPolicy(wordBytes(5), 8))
	assert.False(t, FoldedBitPolicy(wordBytes(5), 9))

	// Bytes that cancel under XOR never promote.
	assert.False(t, FoldedBitPolicy([]byte("aa"), 0))
}

func TestFoldedBitPolicyTextual(t *testing.T) {
	// "ab" folds to 'a'^'b' = 0x03: bits 0 and 1 set.
	assert.True(t, FoldedBitPolicy([]byte("ab"), 0))
	assert.True(t, FoldedBitPolicy([]byte("ab"), 1))
	assert.False(t, FoldedBitPolicy([]byte("ab"), 2))
}

func TestStableKeyBytes(t *testing.T) {
	// All integer kinds with the same low 32 bits fold identically.
	word := stableKeyBytes[uint32](0x01020304)
	assert.Equal(t, word, stableKeyBytes[int](0x01020304))
	assert.Equal(t, word, stableKeyBytes[int64](0x7700000001020304))
	assert.Equal(t, word, stableKeyBytes[uint64](0xAB00000001020304))

	assert.Equal(t, []byte("Shindler"), stableKeyBytes[string]("Shindler"))
	assert.Len(t, stableKeyBytes[uint](9), 4)
}

func TestDefaultCapPolicy(t *testing.T) {
	require.Equal(t, 13, DefaultCapPolicy(0))
	require.Equal(t, 13, DefaultCapPolicy(16))
	// 17 keys: 3*ceil(log2(17))+1 = 3*5+1.
	require.Equal(t, 16, DefaultCapPolicy(17))
	// Exact power of two: 3*10+1.
	require.Equal(t, 31, DefaultCapPolicy(1024))
	require.Equal(t, 34, DefaultCapPolicy(1025))
}
