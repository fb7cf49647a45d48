package extrapolate

import (
	"fmt"

	"github.com/katalvlaran/latticewalk/distance"
	"github.com/katalvlaran/latticewalk/lattice"
)

// Polynomial is a degree-2 polynomial in Newton forward-difference form.
type Polynomial struct {
	A0, A1, A2 int
}

// Fit builds the polynomial through samples taken at x = 0, 1, 2.
func Fit(samples [3]int) (Polynomial, error) {
	d1 := samples[1] - samples[0]
	d2 := (samples[2] - samples[1]) - d1
	if d2%2 != 0 {
		return Polynomial{}, fmt.Errorf("%w: second difference %d of samples %v is odd",
			lattice.ErrStrategyAssumption, d2, samples)
	}
	return Polynomial{A0: samples[0], A1: d1, A2: d2 / 2}, nil
}

// At evaluates the polynomial at x.
func (p Polynomial) At(x int) int {
	return p.A0 + p.A1*x + p.A2*x*(x-1)
}

// Options tunes Extrapolate.
type Options struct {
	// Verify takes a fourth sample at r+3N and requires P(3) to match it.
	Verify bool
}

// Option configures Extrapolate via functional arguments.
type Option func(*Options)

// DefaultOptions enables the fourth-sample check.
func DefaultOptions() Options {
	return Options{Verify: true}
}

// WithVerify toggles the fourth-sample check.
func WithVerify(v bool) Option {
	return func(o *Options) {
		o.Verify = v
	}
}

// Estimate records how an extrapolated count was obtained.
type Estimate struct {
	Tiles     int   // q: whole tile widths in the budget
	Remainder int   // r: budget mod N
	Samples   []int // exact counts at r, r+N, r+2N (and r+3N when verified)
	Poly      Polynomial
	Count     int // P(q)
}

// Extrapolate computes the reachable-cell count for budget on l.
func Extrapolate(l *lattice.Lattice, budget int, opts ...Option) (*Estimate, error) {
	if l == nil {
		return nil, distance.ErrLatticeNil
	}
	if budget < 0 {
		return nil, fmt.Errorf("%w: %d", distance.ErrNegativeBudget, budget)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := l.Size()
	if n == 0 {
		return nil, fmt.Errorf("%w: lattice is %d×%d, not square", lattice.ErrStrategyAssumption, l.Rows(), l.Cols())
	}

	k := 3
	if o.Verify {
		k = 4
	}
	est := &Estimate{Tiles: budget / n, Remainder: budget % n, Samples: make([]int, k)}

	// Every sample budget fits in the largest window, so one field serves all.
	radius := est.Remainder + (k-1)*n
	f, err := distance.Build(l, l.Start(), distance.WithWindow(radius), distance.WithToroidal(), distance.WithMaxDepth(radius))
	if err != nil {
		return nil, err
	}
	for i := range est.Samples {
		est.Samples[i] = distance.CountWithin(f, l.Start(), est.Remainder+i*n)
	}

	est.Poly, err = Fit([3]int{est.Samples[0], est.Samples[1], est.Samples[2]})
	if err != nil {
		return nil, err
	}
	if o.Verify && est.Poly.At(3) != est.Samples[3] {
		return nil, fmt.Errorf("%w: fitted P(3)=%d but measured %d",
			lattice.ErrStrategyAssumption, est.Poly.At(3), est.Samples[3])
	}
	est.Count = est.Poly.At(est.Tiles)
	if est.Count < 0 {
		return nil, fmt.Errorf("%w: extrapolated count %d is negative", lattice.ErrStrategyAssumption, est.Count)
	}

	return est, nil
}

// Count is Extrapolate reduced to the final count.
func Count(l *lattice.Lattice, budget int, opts ...Option) (int, error) {
	est, err := Extrapolate(l, budget, opts...)
	if err != nil {
		return 0, err
	}
	return est.Count, nil
}
