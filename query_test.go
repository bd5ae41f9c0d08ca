package layermap

import (
	"reflect"
	"strings"
	"testing"
)

func TestContains(t *testing.T) {
	m := New[int, string]()
	if m.Contains(1) {
		t.Fatalf("empty map should not contain 1")
	}
	if !m.Insert(1, "one") {
		t.Fatalf("insert failed")
	}
	if !m.Contains(1) {
		t.Fatalf("expected key 1 to be present")
	}
	if m.Contains(2) {
		t.Fatalf("did not expect key 2")
	}
}

func TestRange(t *testing.T) {
	m := New[int, int]()
	for _, k := range []int{5, 1, 3, 2, 4, 8, 6} {
		if !m.Insert(k, k*10) {
			t.Fatalf("insert failed for key=%d", k)
		}
	}

	entries := m.Range(2, 6)
	gotKeys := make([]int, 0, len(entries))
	for _, e := range entries {
		gotKeys = append(gotKeys, e.Key)
		if e.Value != e.Key*10 {
			t.Fatalf("unexpected value for key=%d: %d", e.Key, e.Value)
		}
	}
	wantKeys := []int{2, 3, 4, 5, 6}
	if !reflect.DeepEqual(gotKeys, wantKeys) {
		t.Fatalf("unexpected range keys: got=%v want=%v", gotKeys, wantKeys)
	}

	if got := m.Range(9, 100); len(got) != 0 {
		t.Fatalf("expected empty range above maximum, got %v", got)
	}
	if got := m.Range(6, 2); got != nil {
		t.Fatalf("expected nil for inverted bounds, got %v", got)
	}
}

func TestDumpFormat(t *testing.T) {
	m := New[int, int]()
	if !m.Insert(3, 5) {
		t.Fatalf("insert failed")
	}

	// Key 3 folds to 0b11: height 3, so layers 0..2 hold it and an empty
	// top layer sits at index 3.
	want := strings.Join([]string{
		"(-, -) -> (-, -) -> END",
		"(-, -) -> (3, 5) -> (-, -) -> END",
		"(-, -) -> (3, 5) -> (-, -) -> END",
		"(-, -) -> (3, 5) -> (-, -) -> END",
		"",
	}, "\n")
	if got := m.String(); got != want {
		t.Fatalf("unexpected dump:\ngot:\n%swant:\n%s", got, want)
	}
}

func TestDumpEmpty(t *testing.T) {
	m := New[int, int]()
	want := "(-, -) -> (-, -) -> END\n(-, -) -> (-, -) -> END\n"
	if got := m.String(); got != want {
		t.Fatalf("unexpected dump of empty map: %q", got)
	}
}

func TestLayerStats(t *testing.T) {
	m := New[uint, uint]()
	for i := uint(0); i < 10; i++ {
		m.Insert(i, i)
	}

	stats := m.LayerStats()
	if len(stats) != m.NumLayers() {
		t.Fatalf("stats length %d != layer count %d", len(stats), m.NumLayers())
	}
	if stats[0].Keys != m.Size() {
		t.Fatalf("bottom layer holds %d keys, want %d", stats[0].Keys, m.Size())
	}
	if top := stats[len(stats)-1]; top.Keys != 0 {
		t.Fatalf("top layer must be empty, holds %d keys", top.Keys)
	}
	for i := 1; i < len(stats); i++ {
		if stats[i].Keys > stats[i-1].Keys {
			t.Fatalf("layer %d holds more keys (%d) than layer %d (%d)",
				i, stats[i].Keys, i-1, stats[i-1].Keys)
		}
	}
}

func TestVerticalContainment(t *testing.T) {
	m := New[uint, uint]()
	for i := uint(0); i < 128; i++ {
		m.Insert(i, i)
	}

	// Every key present in layer i must be present in layer i-1. Collect
	// per-layer key sets through the public dump since layers are not
	// otherwise exposed.
	lines := strings.Split(strings.TrimSuffix(m.String(), "\n"), "\n")
	for i := 0; i+1 < len(lines); i++ {
		upper, lower := lines[i], lines[i+1]
		for _, tok := range strings.Split(upper, " -> ") {
			if tok == "END" || tok == "(-, -)" {
				continue
			}
			if !strings.Contains(lower, tok+" ->") {
				t.Fatalf("entry %s in layer %d missing below", tok, len(lines)-1-i)
			}
		}
	}
}
