// Demo binary: fills a layermap with shuffled integer keys, prints the layer
// dump for small maps, and renders a per-layer occupancy table.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/baxromumarov/layermap"
)

func main() {
	countFlag := flag.Int("n", 32, "number of keys to insert")
	seedFlag := flag.Int64("seed", 1, "seed for the insert order shuffle")
	dumpFlag := flag.Bool("dump", false, "print the full layer dump")
	flag.Parse()

	count := *countFlag
	slog.Info("building layermap", "keys", count, "seed", *seedFlag)

	keys := rand.New(rand.NewSource(*seedFlag)).Perm(count)
	m := layermap.New[int, int]()
	for _, k := range keys {
		m.Insert(k, k*10)
	}

	if *dumpFlag {
		m.Dump(os.Stdout)
	}

	value, err := m.Find(0)
	if err != nil {
		slog.Error("find failed", "err", err)
		os.Exit(1)
	}
	fmt.Printf("size=%d layers=%d find(0)=%d\n", m.Size(), m.NumLayers(), value)

	rows := make([][]string, 0, m.NumLayers())
	stats := m.LayerStats()
	for i := len(stats) - 1; i >= 0; i-- {
		rows = append(rows, []string{
			fmt.Sprintf("S_%d", stats[i].Layer),
			fmt.Sprintf("%d", stats[i].Keys),
			fmt.Sprintf("%.2f", float64(stats[i].Keys)/float64(max(m.Size(), 1))),
			sampleKeyAtLayer(m, stats[i].Layer),
		})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Layer", "Keys", "Fill", "Sample"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

// sampleKeyAtLayer names one key whose height tops out exactly at the given
// layer, to make the vertical structure visible in the table.
func sampleKeyAtLayer(m *layermap.LayerMap[int, int], layer int) string {
	for _, k := range m.AllKeysInOrder() {
		h, err := m.Height(k)
		if err != nil {
			continue
		}
		if h == layer+1 {
			return fmt.Sprintf("key %d, height %d", k, h)
		}
	}
	return "-"
}
