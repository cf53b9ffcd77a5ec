// Package poly handles feedback polynomials for Fibonacci LFSRs, written in
// the usual algebraic notation, e.g. "x^7 + x^6 + 1".
//
// The leading term fixes the register width; every other exponent is a
// zero-based tap position (the constant term is tap 0), matching the
// convention of pkg/lfsr where a tap at position p contributes x^p.
package poly

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/oisee/lfsr-lab/pkg/lfsr"
)

var polyLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t]+`},
	{Name: "Var", Pattern: `[xX]`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Caret", Pattern: `\^`},
	{Name: "Plus", Pattern: `\+`},
})

// polyAST is the raw parse tree: a sum of terms.
type polyAST struct {
	First *termAST   `parser:"@@"`
	Rest  []*termAST `parser:"( Plus @@ )*"`
}

// termAST is one addend: "x^k", bare "x", or an integer constant.
type termAST struct {
	IsVar bool `parser:"( @Var"`
	Exp   *int `parser:"( Caret @Int )?"`
	Const *int `parser:"| @Int )"`
}

func (t *termAST) exponent() (int, error) {
	if t.IsVar {
		if t.Exp != nil {
			return *t.Exp, nil
		}
		return 1, nil
	}
	if *t.Const != 1 {
		return 0, fmt.Errorf("%w: constant term must be 1, got %d", lfsr.ErrInvalidArgument, *t.Const)
	}
	return 0, nil
}

var polyParser = participle.MustBuild[polyAST](
	participle.Lexer(polyLexer),
	participle.Elide("Whitespace"),
)

// Polynomial is a feedback polynomial over GF(2) with a nonzero constant
// term. Immutable once constructed.
type Polynomial struct {
	degree int
	taps   []int // non-leading exponents, descending
}

// Parse reads algebraic notation like "x^4 + x^3 + 1".
// The polynomial must have degree at least 2, distinct terms, and a
// constant term (without one it shares a factor x and can never be maximal).
func Parse(input string) (*Polynomial, error) {
	ast, err := polyParser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", lfsr.ErrInvalidArgument, err)
	}

	terms := append([]*termAST{ast.First}, ast.Rest...)
	exps := make([]int, 0, len(terms))
	for _, t := range terms {
		e, err := t.exponent()
		if err != nil {
			return nil, err
		}
		exps = append(exps, e)
	}
	return fromExponents(exps, true)
}

// FromTaps builds the polynomial x^width + sum of x^t over the taps. Unlike
// Parse it tolerates a missing constant term, since a Register accepts tap
// sets that do not include position 0 (such configurations are simply never
// maximal).
func FromTaps(width int, taps []int) (*Polynomial, error) {
	if width <= 1 || width > lfsr.MaxWidth {
		return nil, fmt.Errorf("%w: width must be in [2, %d], got %d", lfsr.ErrInvalidArgument, lfsr.MaxWidth, width)
	}
	exps := make([]int, 0, len(taps)+1)
	exps = append(exps, width)
	for _, t := range taps {
		if t < 0 || t >= width {
			return nil, fmt.Errorf("%w: tap position %d outside [0, %d]", lfsr.ErrInvalidArgument, t, width-1)
		}
		exps = append(exps, t)
	}
	return fromExponents(exps, false)
}

func fromExponents(exps []int, requireConstant bool) (*Polynomial, error) {
	sort.Sort(sort.Reverse(sort.IntSlice(exps)))
	for i := 1; i < len(exps); i++ {
		if exps[i] == exps[i-1] {
			return nil, fmt.Errorf("%w: duplicate term x^%d", lfsr.ErrInvalidArgument, exps[i])
		}
	}
	degree := exps[0]
	if degree < 2 {
		return nil, fmt.Errorf("%w: polynomial degree must be at least 2, got %d", lfsr.ErrInvalidArgument, degree)
	}
	if requireConstant && exps[len(exps)-1] != 0 {
		return nil, fmt.Errorf("%w: polynomial must have a constant term", lfsr.ErrInvalidArgument)
	}
	return &Polynomial{degree: degree, taps: exps[1:]}, nil
}

// Degree returns the polynomial degree, i.e. the register width.
func (p *Polynomial) Degree() int { return p.degree }

// Taps returns the tap positions in descending order.
func (p *Polynomial) Taps() []int {
	return append([]int(nil), p.taps...)
}

// TapMask returns the positions as a bitmask, one bit per tap.
func (p *Polynomial) TapMask() uint64 {
	var mask uint64
	for _, t := range p.taps {
		mask |= 1 << t
	}
	return mask
}

// Register constructs an lfsr.Register for this polynomial with the given
// initial state.
func (p *Polynomial) Register(state uint64) (*lfsr.Register, error) {
	return lfsr.New(p.degree, state, p.taps...)
}

// String renders canonical notation, highest exponent first.
func (p *Polynomial) String() string {
	var b strings.Builder
	b.WriteString("x^")
	b.WriteString(strconv.Itoa(p.degree))
	for _, t := range p.taps {
		switch t {
		case 0:
			b.WriteString(" + 1")
		case 1:
			b.WriteString(" + x")
		default:
			b.WriteString(" + x^")
			b.WriteString(strconv.Itoa(t))
		}
	}
	return b.String()
}
