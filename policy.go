package layermap

import (
	"cmp"
	"encoding/binary"
	"math"
)

// LevelPolicy decides whether a key that already occupies flip+1 layers gets
// promoted one layer further. It must be pure: the same key bytes and flip
// index always produce the same answer.
type LevelPolicy func(key []byte, flip int) bool

// FoldedBitPolicy is the default LevelPolicy. It XOR-folds the key bytes
// down to a single byte and tests bit number flip mod 8. A key whose folded
// byte is zero never leaves the bottom layer.
func FoldedBitPolicy(key []byte, flip int) bool {
	var c byte
	for _, b := range key {
		c ^= b
	}
	return c&(1<<(uint(flip)%8)) != 0
}

// CapPolicy maps the live key count to the maximum number of layers the map
// may hold. No promotion may grow the map past this bound.
type CapPolicy func(size int) int

const defaultHeightCap = 13

// DefaultCapPolicy keeps the cap at 13 for small maps and switches to
// 3*ceil(log2(size))+1 once more than 16 keys are live.
func DefaultCapPolicy(size int) int {
	if size <= 16 {
		return defaultHeightCap
	}
	return 3*int(math.Ceil(math.Log2(float64(size)))) + 1
}

// KeyBytesFunc supplies the stable byte representation of a key. The level
// policy sees keys only through this representation.
type KeyBytesFunc[K cmp.Ordered] func(key K) []byte

// stableKeyBytes covers every ordered builtin. Integer kinds are truncated
// to their low 32 bits so that e.g. int and uint32 keys with equal low words
// promote identically; strings contribute every byte.
func stableKeyBytes[K cmp.Ordered](key K) []byte {
	switch k := any(key).(type) {
	case int:
		return wordBytes(uint32(k))
	case int8:
		return wordBytes(uint32(uint8(k)))
	case int16:
		return wordBytes(uint32(uint16(k)))
	case int32:
		return wordBytes(uint32(k))
	case int64:
		return wordBytes(uint32(k))
	case uint:
		return wordBytes(uint32(k))
	case uint8:
		return wordBytes(uint32(k))
	case uint16:
		return wordBytes(uint32(k))
	case uint32:
		return wordBytes(k)
	case uint64:
		return wordBytes(uint32(k))
	case uintptr:
		return wordBytes(uint32(k))
	case float32:
		return wordBytes(math.Float32bits(k))
	case float64:
		return wordBytes(uint32(math.Float64bits(k)))
	case string:
		return []byte(k)
	default:
		return nil
	}
}

func wordBytes(w uint32) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], w)
	return buf[:]
}
