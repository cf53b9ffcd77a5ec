package poly

import (
	"fmt"
	"sort"

	"github.com/oisee/lfsr-lab/pkg/lfsr"
)

// maximalTaps lists one known maximal-period tap set per width, taken from
// the standard table of primitive polynomials over GF(2). Positions follow
// the pkg/lfsr convention (tap p = term x^p), so e.g. width 4 is x^4+x+1.
var maximalTaps = map[int][]int{
	2:  {1, 0},
	3:  {1, 0},
	4:  {1, 0},
	5:  {2, 0},
	6:  {1, 0},
	7:  {3, 0},
	8:  {4, 3, 2, 0},
	9:  {4, 0},
	10: {3, 0},
	11: {2, 0},
	12: {6, 4, 1, 0},
	13: {4, 3, 1, 0},
	14: {10, 6, 1, 0},
	15: {1, 0},
	16: {12, 3, 1, 0},
	17: {3, 0},
	18: {7, 0},
	19: {5, 2, 1, 0},
	20: {3, 0},
	21: {2, 0},
	22: {1, 0},
	23: {5, 0},
	24: {7, 2, 1, 0},
}

// Maximal returns a known maximal-period polynomial for the given width.
func Maximal(width int) (*Polynomial, error) {
	taps, ok := maximalTaps[width]
	if !ok {
		return nil, fmt.Errorf("%w: no catalog entry for width %d", lfsr.ErrInvalidArgument, width)
	}
	return FromTaps(width, taps)
}

// CatalogWidths returns the widths the catalog covers, ascending.
func CatalogWidths() []int {
	widths := make([]int, 0, len(maximalTaps))
	for w := range maximalTaps {
		widths = append(widths, w)
	}
	sort.Ints(widths)
	return widths
}
