package layermap

// handle is a stable index into the arena. Handles stay valid across arena
// growth, unlike *node pointers, which may move when the slab is reallocated.
type handle = int32

const nilHandle handle = -1

type node[K any, V any] struct {
	key   K
	value V

	// next is the same-layer successor; the layer sequence owns it.
	// down and up point at the same key's copy one layer below/above and
	// are navigation back-references only.
	next handle
	down handle
	up   handle

	// sentinel marks the -inf / +inf boundary nodes of a layer. They never
	// match a lookup and carry zero key/value.
	sentinel bool
}

// arena owns every node of the map in a single growable slab. There is no
// per-node free: dropping the arena drops all nodes at once.
type arena[K any, V any] struct {
	nodes []node[K, V]
}

func (a *arena[K, V]) alloc(n node[K, V]) handle {
	h := handle(len(a.nodes))
	a.nodes = append(a.nodes, n)
	return h
}

func (a *arena[K, V]) allocNode(key K, value V, next, down handle) handle {
	return a.alloc(node[K, V]{key: key, value: value, next: next, down: down, up: nilHandle})
}

func (a *arena[K, V]) allocSentinel(down handle) handle {
	return a.alloc(node[K, V]{next: nilHandle, down: down, up: nilHandle, sentinel: true})
}

// at returns a pointer into the slab. The pointer is invalidated by the next
// alloc, so callers must re-fetch after any allocation.
func (a *arena[K, V]) at(h handle) *node[K, V] {
	return &a.nodes[h]
}

// layerBounds records the sentinel handles delimiting one layer.
type layerBounds struct {
	left  handle
	right handle
}
