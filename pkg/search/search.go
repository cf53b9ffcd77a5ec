// Package search brute-forces maximal-period tap configurations: every tap
// mask of a given width is stepped from state 1 and kept if its orbit walks
// the full 2^width - 1 nonzero states before returning.
package search

import (
	"fmt"
	"runtime"
	"time"

	"github.com/oisee/lfsr-lab/pkg/lfsr"
	"github.com/oisee/lfsr-lab/pkg/result"
)

// Config holds sweep configuration.
type Config struct {
	Width      int  // Register width to sweep (2-64; cost grows as 4^width)
	NumWorkers int  // Number of parallel workers (defaults to NumCPU)
	Verbose    bool // Print progress
}

// Run sweeps all tap masks of cfg.Width and returns the maximal ones.
func Run(cfg Config) (*result.Table, error) {
	if cfg.Width <= 1 || cfg.Width > lfsr.MaxWidth {
		return nil, fmt.Errorf("%w: width must be in [2, %d], got %d", lfsr.ErrInvalidArgument, lfsr.MaxWidth, cfg.Width)
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = runtime.NumCPU()
	}

	pool := NewSweep(cfg.Width, cfg.NumWorkers)
	startTime := time.Now()

	pool.Run(cfg.Verbose)

	if cfg.Verbose {
		checked, found := pool.Stats()
		elapsed := time.Since(startTime)
		fmt.Printf("  Checked: %d, Found: %d, Elapsed: %s\n", checked, found, elapsed.Round(time.Millisecond))
	}
	return pool.Results, nil
}

// MeasurePeriod walks tapMask from state 1 and reports the step count at
// which state 1 recurs, capped at 2^width - 1 steps. maximal is true only
// when the orbit used the entire budget and still closed on its start; a
// walk that falls into the zero fixed point simply exhausts the budget.
func MeasurePeriod(width int, tapMask uint64) (period uint64, maximal bool) {
	budget := lfsr.WidthMask(width)
	state := uint64(1)
	var steps uint64
	for steps < budget {
		state, _ = lfsr.Step(width, tapMask, state)
		steps++
		if state == 1 {
			return steps, steps == budget
		}
	}
	return steps, false
}

// TapPositions expands a tap mask into positions, highest first.
func TapPositions(mask uint64) []int {
	var taps []int
	for p := lfsr.MaxWidth - 1; p >= 0; p-- {
		if mask&(1<<p) != 0 {
			taps = append(taps, p)
		}
	}
	return taps
}
