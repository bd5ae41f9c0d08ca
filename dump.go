package layermap

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a diagnostic rendering to w, one line per layer from the top
// down. Sentinels show as (-, -):
//
//	(-, -) -> (-, -) -> END
//	(-, -) -> (3, 5) -> (-, -) -> END
func (m *LayerMap[K, V]) Dump(w io.Writer) {
	for layer := len(m.layers) - 1; layer >= 0; layer-- {
		for h := m.layers[layer].left; h != nilHandle; h = m.arena.at(h).next {
			n := m.arena.at(h)
			if n.sentinel {
				fmt.Fprint(w, "(-, -) -> ")
			} else {
				fmt.Fprintf(w, "(%v, %v) -> ", n.key, n.value)
			}
		}
		fmt.Fprintln(w, "END")
	}
}

// String renders Dump into a string.
func (m *LayerMap[K, V]) String() string {
	var sb strings.Builder
	m.Dump(&sb)
	return sb.String()
}

// LayerStat describes one layer of the map.
type LayerStat struct {
	Layer int // 0 is the bottom layer
	Keys  int // real nodes in the layer, sentinels excluded
}

// LayerStats returns per-layer key counts from the bottom layer up. The top
// entry is always empty.
func (m *LayerMap[K, V]) LayerStats() []LayerStat {
	stats := make([]LayerStat, len(m.layers))
	for layer := range m.layers {
		keys := 0
		for h := m.arena.at(m.layers[layer].left).next; !m.arena.at(h).sentinel; h = m.arena.at(h).next {
			keys++
		}
		stats[layer] = LayerStat{Layer: layer, Keys: keys}
	}
	return stats
}
