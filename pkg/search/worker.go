package search

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/oisee/lfsr-lab/pkg/lfsr"
	"github.com/oisee/lfsr-lab/pkg/poly"
	"github.com/oisee/lfsr-lab/pkg/result"
)

// Sweep manages parallel workers over the tap-mask space of one width.
type Sweep struct {
	Width      int
	NumWorkers int
	Results    *result.Table
	checked    atomic.Int64
	found      atomic.Int64
}

// NewSweep creates a sweep with the given number of workers.
func NewSweep(width, numWorkers int) *Sweep {
	return &Sweep{
		Width:      width,
		NumWorkers: numWorkers,
		Results:    result.NewTable(),
	}
}

// Stats returns sweep statistics.
func (sw *Sweep) Stats() (checked, found int64) {
	return sw.checked.Load(), sw.found.Load()
}

// Run distributes the mask space across workers. Masks without bit 0 are
// skipped up front: without a constant term the transition is not
// invertible, so the orbit cannot be maximal.
func (sw *Sweep) Run(verbose bool) {
	last := lfsr.WidthMask(sw.Width)
	ch := make(chan uint64, 1024)
	go func() {
		for mask := uint64(1); mask <= last; mask += 2 {
			ch <- mask
		}
		close(ch)
	}()

	var wg sync.WaitGroup
	for i := 0; i < sw.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for mask := range ch {
				sw.checkMask(mask, verbose)
			}
		}()
	}
	wg.Wait()
}

// checkMask measures one candidate and records it if maximal.
func (sw *Sweep) checkMask(mask uint64, verbose bool) {
	sw.checked.Add(1)

	period, maximal := MeasurePeriod(sw.Width, mask)
	if !maximal {
		return
	}
	sw.found.Add(1)

	taps := TapPositions(mask)
	notation := ""
	if p, err := poly.FromTaps(sw.Width, taps); err == nil {
		notation = p.String()
	}

	entry := result.Polynomial{
		Width:    sw.Width,
		Taps:     taps,
		TapMask:  mask,
		Period:   period,
		Notation: notation,
	}
	sw.Results.Add(entry)

	if verbose {
		fmt.Printf("  FOUND: %s (mask %0*b, period %d)\n", notation, sw.Width, mask, period)
	}
}
