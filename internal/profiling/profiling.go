package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Per-frame CPU timing buckets.

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)
)

// Track returns a stop function that adds the elapsed time to the named bucket.
// Usage: defer profiling.Track("renderer.RenderScene")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		frameTotals[name] += d
		mu.Unlock()
	}
}

// ResetFrame clears the buckets. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(frameTotals)
	mu.Unlock()
}

// Snapshot returns a copy of the current buckets.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(frameTotals))
	for k, v := range frameTotals {
		out[k] = v
	}
	return out
}

// Entry is one bucket in a sorted report.
type Entry struct {
	Name     string
	Duration time.Duration
}

// Top returns at most n buckets, longest first; ties are ordered by name.
func Top(n int) []Entry {
	ss := Snapshot()
	list := make([]Entry, 0, len(ss))
	for k, v := range ss {
		list = append(list, Entry{Name: k, Duration: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Duration != list[j].Duration {
			return list[i].Duration > list[j].Duration
		}
		return list[i].Name < list[j].Name
	})
	if n < len(list) {
		list = list[:n]
	}
	return list
}

// TopN formats the n longest buckets.
// Example: "renderer.Frame:4.2ms, renderer.RenderToTexture:2.1ms"
func TopN(n int) string {
	entries := Top(n)
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, e.Name+":"+formatMs(e.Duration))
	}
	return strings.Join(parts, ", ")
}

// formatMs keeps one decimal and drops a trailing ".0".
func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	s := strconv.FormatFloat(ms, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0") + "ms"
}
