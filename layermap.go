// Package layermap implements a deterministic layered ordered map: a skip
// list whose node promotion is a pure function of the key's bytes rather
// than a random source. Rebuilding the same insert sequence always
// reproduces the exact same layer structure.
package layermap

import "cmp"

type Option[K cmp.Ordered] func(*config[K])

type config[K cmp.Ordered] struct {
	levelPolicy LevelPolicy
	capPolicy   CapPolicy
	keyBytes    KeyBytesFunc[K]
}

// WithLevelPolicy replaces the promotion decision. The policy must be pure
// or the structure loses its reproducibility guarantee.
func WithLevelPolicy[K cmp.Ordered](policy LevelPolicy) Option[K] {
	return func(cfg *config[K]) {
		if policy != nil {
			cfg.levelPolicy = policy
		}
	}
}

// WithCapPolicy replaces the height-cap heuristic.
func WithCapPolicy[K cmp.Ordered](policy CapPolicy) Option[K] {
	return func(cfg *config[K]) {
		if policy != nil {
			cfg.capPolicy = policy
		}
	}
}

// WithKeyBytes replaces the stable byte representation handed to the level
// policy. Required for key types the builtin extraction does not cover.
func WithKeyBytes[K cmp.Ordered](fn KeyBytesFunc[K]) Option[K] {
	return func(cfg *config[K]) {
		if fn != nil {
			cfg.keyBytes = fn
		}
	}
}

// Entry is a key/value pair returned by range queries.
type Entry[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// LayerMap is a layered ordered map. The zero value is not usable; call New.
//
// All operations are single-threaded: callers needing concurrent access must
// serialize it externally.
type LayerMap[K cmp.Ordered, V any] struct {
	arena arena[K, V]

	// layers[0] is the bottom layer holding every key; the last entry is
	// the always-empty top layer every traversal starts from.
	layers []layerBounds
	size   int

	levelPolicy LevelPolicy
	capPolicy   CapPolicy
	keyBytes    KeyBytesFunc[K]
}

// New returns an empty map with two layers: the bottom layer and the empty
// top layer above it.
func New[K cmp.Ordered, V any](opts ...Option[K]) *LayerMap[K, V] {
	cfg := config[K]{
		levelPolicy: FoldedBitPolicy,
		capPolicy:   DefaultCapPolicy,
		keyBytes:    stableKeyBytes[K],
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	m := &LayerMap[K, V]{
		levelPolicy: cfg.levelPolicy,
		capPolicy:   cfg.capPolicy,
		keyBytes:    cfg.keyBytes,
	}

	botLeft := m.arena.allocSentinel(nilHandle)
	botRight := m.arena.allocSentinel(nilHandle)
	m.arena.at(botLeft).next = botRight
	m.layers = append(m.layers, layerBounds{left: botLeft, right: botRight})
	m.growTop()
	return m
}

// Size returns the number of live keys.
func (m *LayerMap[K, V]) Size() int {
	return m.size
}

func (m *LayerMap[K, V]) IsEmpty() bool {
	return m.size == 0
}

// NumLayers returns the current layer count, including the empty top layer.
// A fresh map reports 2.
func (m *LayerMap[K, V]) NumLayers() int {
	return len(m.layers)
}

// Insert adds a new key/value pair and reports whether it was inserted.
// A key that is already present is rejected without mutation.
func (m *LayerMap[K, V]) Insert(key K, value V) bool {
	pred := m.seekPredecessor(key)
	succ := m.arena.at(pred).next
	if n := m.arena.at(succ); !n.sentinel && n.key == key {
		return false
	}

	below := m.arena.allocNode(key, value, succ, nilHandle)
	m.arena.at(pred).next = below
	m.size++

	// Promotion loop. The horizontal position is recomputed per layer from
	// that layer's own left sentinel; it is independent of the position
	// found below.
	heightCap := m.capPolicy(m.size)
	keyBytes := m.keyBytes(key)
	for flip := 0; m.levelPolicy(keyBytes, flip) && len(m.layers) < heightCap; flip++ {
		target := flip + 1
		if target == len(m.layers)-1 {
			// Promotion is about to land in the empty top layer;
			// materialize a fresh one above it first.
			m.growTop()
		}

		p := m.scanLess(m.layers[target].left, key)
		lifted := m.arena.allocNode(key, value, m.arena.at(p).next, below)
		m.arena.at(p).next = lifted
		m.arena.at(below).up = lifted
		below = lifted
	}
	return true
}

// growTop stacks a new empty layer of two sentinels on top of the current
// top, keeping the vertical links between sentinel chains intact.
func (m *LayerMap[K, V]) growTop() {
	old := m.layers[len(m.layers)-1]
	left := m.arena.allocSentinel(old.left)
	right := m.arena.allocSentinel(old.right)
	m.arena.at(left).next = right
	m.arena.at(old.left).up = left
	m.arena.at(old.right).up = right
	m.layers = append(m.layers, layerBounds{left: left, right: right})
}
