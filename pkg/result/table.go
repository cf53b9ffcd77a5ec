// Package result collects polynomials discovered by the tap-mask sweep.
package result

import (
	"sort"
	"sync"
)

// Polynomial records one discovered maximal-period configuration.
type Polynomial struct {
	Width    int    `json:"width"`
	Taps     []int  `json:"taps"`
	TapMask  uint64 `json:"tap_mask"`
	Period   uint64 `json:"period"`
	Notation string `json:"notation"`
}

// Table stores discovered polynomials. Safe for concurrent Add from search
// workers.
type Table struct {
	mu      sync.Mutex
	entries []Polynomial
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{}
}

// Add inserts an entry into the table.
func (t *Table) Add(p Polynomial) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append(t.entries, p)
}

// Entries returns a copy of all entries, sorted by width then tap mask.
func (t *Table) Entries() []Polynomial {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Polynomial, len(t.entries))
	copy(out, t.entries)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Width != out[j].Width {
			return out[i].Width < out[j].Width
		}
		return out[i].TapMask < out[j].TapMask
	})
	return out
}

// Len returns the number of entries.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}
