package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oisee/lfsr-lab/pkg/lfsr"
	"github.com/oisee/lfsr-lab/pkg/poly"
	"github.com/oisee/lfsr-lab/pkg/result"
	"github.com/oisee/lfsr-lab/pkg/search"
	"github.com/oisee/lfsr-lab/pkg/stream"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lfsr",
		Short: "Fibonacci LFSR toolkit — step, stream, and analyze shift registers",
	}

	// demo command: the hard-wired 4-bit lecture register
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the basic 4-bit demo (taps 3,2, initial state 0110)",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := lfsr.New(4, 0b0110, 3, 2)
			if err != nil {
				return err
			}

			fmt.Println("Basic LFSR (n=4, taps=[3 2], init=0110), 30 iterations")
			fmt.Println("Iter  State  NextBit(R0)")
			fmt.Println("-------------------------")
			for i := 1; i <= 30; i++ {
				bits := r.StateBits()
				next := r.NextBit()
				fmt.Printf("%2d    %s      %d\n", i, bits, next)
			}

			r2, err := lfsr.New(4, 0b0110, 3, 2)
			if err != nil {
				return err
			}
			fmt.Printf("\nMeasured period from 0110: %d\n", r2.Period(0))
			return nil
		},
	}

	// general command: reconfiguration walkthrough
	generalCmd := &cobra.Command{
		Use:   "general",
		Short: "Show reconfiguring one register from the basic 4-bit setup to 7 bits",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := lfsr.New(4, 0b0110, 3, 2)
			if err != nil {
				return err
			}
			fmt.Println("General LFSR instantiated as the basic version:")
			fmt.Printf("size=%d, taps=%v, state=%s\n", r.Width(), r.Taps(), r.StateBits())

			if err := r.SetWidth(7); err != nil {
				return err
			}
			if err := r.SetTaps(6, 5); err != nil {
				return err
			}
			if err := r.SetState(0b1010011); err != nil {
				return err
			}
			fmt.Printf("Reconfigured: size=%d, taps=%v, state=%s\n", r.Width(), r.Taps(), r.StateBits())

			var sb strings.Builder
			for _, b := range r.Bits(10) {
				sb.WriteByte('0' + b)
			}
			fmt.Printf("First 10 bits from this configuration: %s\n", sb.String())
			return nil
		},
	}

	// stream command
	var cfg registerFlags
	var count int
	var asBytes bool

	streamCmd := &cobra.Command{
		Use:   "stream",
		Short: "Emit output bits (or packed bytes) for a configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := cfg.build()
			if err != nil {
				return err
			}

			if asBytes {
				buf := make([]byte, (count+7)/8)
				if _, err := stream.NewReader(r).Read(buf); err != nil {
					return err
				}
				fmt.Printf("% X\n", buf)
				return nil
			}

			var sb strings.Builder
			for _, b := range r.Bits(count) {
				sb.WriteByte('0' + b)
			}
			fmt.Println(sb.String())
			return nil
		},
	}
	cfg.install(streamCmd)
	streamCmd.Flags().IntVar(&count, "count", 32, "Number of bits to emit")
	streamCmd.Flags().BoolVar(&asBytes, "bytes", false, "Pack output MSB-first into hex bytes")

	// period command
	var limit uint64

	periodCmd := &cobra.Command{
		Use:   "period",
		Short: "Measure the cycle length of a configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := cfg.build()
			if err != nil {
				return err
			}
			start := r.StateBits()
			p := r.Period(limit)
			fmt.Printf("Period from %s with taps %v: %d (budget %d)\n",
				start, r.Taps(), p, lfsr.WidthMask(r.Width()))
			return nil
		},
	}
	cfg.install(periodCmd)
	periodCmd.Flags().Uint64Var(&limit, "limit", 0, "Step budget (0 = 2^width - 1)")

	// search command
	var width int
	var numWorkers int
	var verbose bool
	var output string

	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Brute-force all tap masks of a width for maximal periods",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := search.Run(search.Config{
				Width:      width,
				NumWorkers: numWorkers,
				Verbose:    verbose,
			})
			if err != nil {
				return err
			}

			entries := table.Entries()
			fmt.Printf("Found %d maximal tap sets for width %d\n", len(entries), width)
			for _, e := range entries {
				fmt.Printf("  %0*b  %s\n", e.Width, e.TapMask, e.Notation)
			}

			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := result.WriteJSON(f, entries); err != nil {
					return err
				}
				fmt.Printf("Written to %s\n", output)
			}
			return nil
		},
	}
	searchCmd.Flags().IntVar(&width, "width", 4, "Register width to sweep")
	searchCmd.Flags().IntVar(&numWorkers, "workers", 0, "Number of workers (0 = NumCPU)")
	searchCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	searchCmd.Flags().StringVar(&output, "output", "", "Output JSON file path")

	rootCmd.AddCommand(demoCmd, generalCmd, streamCmd, periodCmd, searchCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// registerFlags holds the shared register configuration flags.
type registerFlags struct {
	width    int
	state    string
	taps     string
	polySpec string
	maximal  bool
}

func (f *registerFlags) install(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.width, "width", 4, "Register width")
	cmd.Flags().StringVar(&f.state, "state", "1", "Initial state (accepts 0b/0x prefixes)")
	cmd.Flags().StringVar(&f.taps, "taps", "", "Comma-separated tap positions, e.g. 3,2")
	cmd.Flags().StringVar(&f.polySpec, "poly", "", `Feedback polynomial, e.g. "x^4 + x^3 + 1" (overrides --width/--taps)`)
	cmd.Flags().BoolVar(&f.maximal, "maximal", false, "Use the catalog maximal taps for --width")
}

// build resolves the flags into a configured register. Exactly one of
// --taps, --poly, or --maximal selects the feedback configuration.
func (f *registerFlags) build() (*lfsr.Register, error) {
	state, err := strconv.ParseUint(f.state, 0, 64)
	if err != nil {
		return nil, fmt.Errorf("cannot parse state %q: %w", f.state, err)
	}

	var p *poly.Polynomial
	switch {
	case f.polySpec != "":
		if p, err = poly.Parse(f.polySpec); err != nil {
			return nil, err
		}
	case f.maximal:
		if p, err = poly.Maximal(f.width); err != nil {
			return nil, err
		}
	case f.taps != "":
		taps, err := parseTaps(f.taps)
		if err != nil {
			return nil, err
		}
		return lfsr.New(f.width, state, taps...)
	default:
		return nil, fmt.Errorf("one of --taps, --poly, or --maximal is required")
	}
	return p.Register(state)
}

// parseTaps converts "3,2" into tap positions.
func parseTaps(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	taps := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		t, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("cannot parse tap %q: %w", part, err)
		}
		taps = append(taps, t)
	}
	if len(taps) == 0 {
		return nil, fmt.Errorf("no tap positions parsed from %q", s)
	}
	return taps, nil
}
