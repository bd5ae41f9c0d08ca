package layermap

// Every public operation funnels through one of the two descents below.
// Both start at the top layer's left sentinel and move right while the
// neighbor satisfies the active comparison, dropping one layer when no
// further rightward move is possible. They differ only in the comparison:
// strict-less for predecessor-seeking consumers (insert, PreviousKey),
// less-or-equal with an early exit on equality for everything else.

// seekPredecessor descends to layer 0 and returns the rightmost node whose
// key is strictly less than key. With no smaller key present this is the
// bottom layer's left sentinel.
func (m *LayerMap[K, V]) seekPredecessor(key K) handle {
	h := m.layers[len(m.layers)-1].left
	for layer := len(m.layers) - 1; ; layer-- {
		h = m.scanLess(h, key)
		if layer == 0 {
			return h
		}
		h = m.arena.at(h).down
	}
}

// scanLess walks right from h while the successor is a real node smaller
// than key, staying within h's layer.
func (m *LayerMap[K, V]) scanLess(h handle, key K) handle {
	for {
		next := m.arena.at(h).next
		n := m.arena.at(next)
		if n.sentinel || n.key >= key {
			return h
		}
		h = next
	}
}

// seekMatch descends with a less-or-equal comparison and stops at the first
// copy of key it meets, which by vertical containment is the copy in the
// key's highest occupied layer. It returns the matching node's handle, its
// layer index, and whether the key exists at all.
func (m *LayerMap[K, V]) seekMatch(key K) (handle, int, bool) {
	h := m.layers[len(m.layers)-1].left
	for layer := len(m.layers) - 1; ; layer-- {
		for {
			next := m.arena.at(h).next
			n := m.arena.at(next)
			if n.sentinel || n.key > key {
				break
			}
			if n.key == key {
				return next, layer, true
			}
			h = next
		}
		if layer == 0 {
			return nilHandle, 0, false
		}
		h = m.arena.at(h).down
	}
}

// bottom follows the vertical chain from h straight down to layer 0.
func (m *LayerMap[K, V]) bottom(h handle) handle {
	for {
		down := m.arena.at(h).down
		if down == nilHandle {
			return h
		}
		h = down
	}
}
