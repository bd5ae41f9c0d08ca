package layermap

// Find returns the value stored under key. Every copy of a key carries the
// same value, so the highest match is good enough.
func (m *LayerMap[K, V]) Find(key K) (V, error) {
	h, _, ok := m.seekMatch(key)
	if !ok {
		var zero V
		return zero, ErrKeyNotFound
	}
	return m.arena.at(h).value, nil
}

// Contains reports whether key is present.
func (m *LayerMap[K, V]) Contains(key K) bool {
	_, _, ok := m.seekMatch(key)
	return ok
}

// Height returns the number of layers occupied by key, counting the bottom
// layer as height 1.
func (m *LayerMap[K, V]) Height(key K) (int, error) {
	_, layer, ok := m.seekMatch(key)
	if !ok {
		return 0, ErrKeyNotFound
	}
	return layer + 1, nil
}

// NextKey returns the smallest key larger than key. It fails with
// ErrKeyNotFound if key is absent and ErrNoSuccessor if key is the maximum.
func (m *LayerMap[K, V]) NextKey(key K) (K, error) {
	var zero K
	h, _, ok := m.seekMatch(key)
	if !ok {
		return zero, ErrKeyNotFound
	}
	succ := m.arena.at(m.bottom(h)).next
	if n := m.arena.at(succ); !n.sentinel {
		return n.key, nil
	}
	return zero, ErrNoSuccessor
}

// PreviousKey returns the largest key smaller than key. It fails with
// ErrKeyNotFound if key is absent and ErrNoPredecessor if key is the minimum.
func (m *LayerMap[K, V]) PreviousKey(key K) (K, error) {
	var zero K
	pred := m.seekPredecessor(key)
	succ := m.arena.at(pred).next
	if n := m.arena.at(succ); n.sentinel || n.key != key {
		return zero, ErrKeyNotFound
	}
	if p := m.arena.at(pred); !p.sentinel {
		return p.key, nil
	}
	return zero, ErrNoPredecessor
}

// IsSmallestKey reports whether key is the current minimum. Unlike a false
// Contains, an absent key is an error.
func (m *LayerMap[K, V]) IsSmallestKey(key K) (bool, error) {
	h, _, ok := m.seekMatch(key)
	if !ok {
		return false, ErrKeyNotFound
	}
	first := m.arena.at(m.layers[0].left).next
	return m.bottom(h) == first, nil
}

// IsLargestKey reports whether key is the current maximum.
func (m *LayerMap[K, V]) IsLargestKey(key K) (bool, error) {
	h, _, ok := m.seekMatch(key)
	if !ok {
		return false, ErrKeyNotFound
	}
	return m.arena.at(m.bottom(h)).next == m.layers[0].right, nil
}

// AllKeysInOrder returns every key in ascending order. The result length
// always equals Size.
func (m *LayerMap[K, V]) AllKeysInOrder() []K {
	keys := make([]K, 0, m.size)
	h := m.bottom(m.layers[len(m.layers)-1].left)
	for h = m.arena.at(h).next; ; h = m.arena.at(h).next {
		n := m.arena.at(h)
		if n.sentinel {
			return keys
		}
		keys = append(keys, n.key)
	}
}

// Range returns all entries with low <= key <= high in ascending order.
func (m *LayerMap[K, V]) Range(low, high K) []Entry[K, V] {
	if low > high {
		return nil
	}
	entries := make([]Entry[K, V], 0, 16)
	pred := m.seekPredecessor(low)
	for h := m.arena.at(pred).next; ; h = m.arena.at(h).next {
		n := m.arena.at(h)
		if n.sentinel || n.key > high {
			return entries
		}
		entries = append(entries, Entry[K, V]{Key: n.key, Value: n.value})
	}
}
