package palette

import (
	"github.com/ironsheep/palette-tools-mcp/internal/colorutil"
)

// CountedColor pairs a color with its observed pixel frequency.
type CountedColor struct {
	Color colorutil.Color
	Count int
}

// Counter is a multiset of colors. Keys are the 8-bit quantized color
// values, so floating-point noise between visually identical pixels
// never splits a count. Adds and lookups are amortized O(1).
type Counter struct {
	counts map[uint32]int
}

// NewCounter returns an empty counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[uint32]int)}
}

// Add increments the count for c's quantized key.
func (ct *Counter) Add(c colorutil.Color) {
	ct.counts[c.Key()]++
}

// Count returns how often c has been added, 0 if never.
func (ct *Counter) Count(c colorutil.Color) int {
	return ct.counts[c.Key()]
}

// Len returns the number of distinct colors seen.
func (ct *Counter) Len() int {
	return len(ct.counts)
}

// Total returns the number of Add calls across all colors.
func (ct *Counter) Total() int {
	total := 0
	for _, n := range ct.counts {
		total += n
	}
	return total
}

// Unique returns every distinct color seen together with its count.
// The order is unspecified; both consumers sort by count themselves.
func (ct *Counter) Unique() []CountedColor {
	out := make([]CountedColor, 0, len(ct.counts))
	for k, n := range ct.counts {
		out = append(out, CountedColor{Color: colorutil.FromKey(k), Count: n})
	}
	return out
}
