package distance_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latticewalk/distance"
	"github.com/katalvlaran/latticewalk/lattice"
)

const sample = `
...........
.....###.#.
.###.##..#.
..#.#...#..
....#.#....
.##..S####.
.##..#...#.
.......##..
.##.#.####.
.##..##.##.
...........
`

// openLattice returns an n×n fully open lattice with the start in the centre.
func openLattice(t testing.TB, n int) *lattice.Lattice {
	t.Helper()
	var b strings.Builder
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == n/2 && j == n/2 {
				b.WriteByte('S')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	l, err := lattice.Parse(b.String())
	require.NoError(t, err)
	return l
}

func mustParse(t testing.TB, text string) *lattice.Lattice {
	t.Helper()
	l, err := lattice.Parse(text)
	require.NoError(t, err)
	return l
}

// TestBuild_Errors verifies invalid inputs and options are rejected.
func TestBuild_Errors(t *testing.T) {
	_, err := distance.Build(nil, lattice.Coord{})
	assert.ErrorIs(t, err, distance.ErrLatticeNil)

	l := mustParse(t, sample)
	_, err = distance.Build(l, lattice.Coord{Row: 1, Col: 5})
	assert.ErrorIs(t, err, distance.ErrBlockedSource)

	_, err = distance.Build(l, lattice.Coord{Row: -1, Col: 0})
	assert.ErrorIs(t, err, distance.ErrBlockedSource, "outside a bounded window")

	_, err = distance.Build(l, l.Start(), distance.WithWindow(-1))
	assert.ErrorIs(t, err, distance.ErrOptionViolation)

	_, err = distance.Build(l, l.Start(), distance.WithMaxDepth(-2))
	assert.ErrorIs(t, err, distance.ErrOptionViolation)
}

// TestBuild_SampleDistances spot-checks the finite field of the sample map.
func TestBuild_SampleDistances(t *testing.T) {
	l := mustParse(t, sample)
	f, err := distance.Build(l, l.Start())
	require.NoError(t, err)

	assert.Equal(t, 11, f.Rows())
	assert.Equal(t, 11, f.Cols())
	assert.Equal(t, lattice.Coord{}, f.Origin())
	assert.Equal(t, l.Start(), f.Source())

	cases := []struct {
		c    lattice.Coord
		want int
	}{
		{lattice.Coord{Row: 5, Col: 5}, 0},
		{lattice.Coord{Row: 5, Col: 4}, 1},
		{lattice.Coord{Row: 4, Col: 5}, 1},
		{lattice.Coord{Row: 5, Col: 3}, 2},
		{lattice.Coord{Row: 6, Col: 4}, 2},
		{lattice.Coord{Row: 3, Col: 5}, 2},
		{lattice.Coord{Row: 1, Col: 5}, distance.Unreached},
		{lattice.Coord{Row: 20, Col: 5}, distance.Unreached},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, f.At(tc.c), "At(%v)", tc.c)
	}
}

// TestBuild_Layering checks the BFS invariant: each reached cell is one more
// than its best reached open neighbour, the source is zero.
func TestBuild_Layering(t *testing.T) {
	l := mustParse(t, sample)
	for _, f := range []*distance.Field{
		mustBuild(t, l, l.Start()),
		mustBuild(t, l, l.Start(), distance.WithWindow(17), distance.WithToroidal()),
		mustBuild(t, l, lattice.Coord{Row: 0, Col: 0}),
	} {
		f.Each(func(c lattice.Coord, d int) {
			if c == f.Source() {
				assert.Equal(t, 0, d)
				return
			}
			best := -1
			for _, s := range lattice.Steps {
				nd := f.At(c.Add(s))
				if nd != distance.Unreached && (best < 0 || nd < best) {
					best = nd
				}
			}
			assert.Equal(t, best+1, d, "cell %v", c)
		})
	}
}

func mustBuild(t testing.TB, l *lattice.Lattice, src lattice.Coord, opts ...distance.Option) *distance.Field {
	t.Helper()
	f, err := distance.Build(l, src, opts...)
	require.NoError(t, err)
	return f
}

// TestBuild_Toroidal verifies floor-modulo addressing for negative offsets.
func TestBuild_Toroidal(t *testing.T) {
	// Tiling blocks every (odd, odd) cell.
	l := mustParse(t, "S.\n.#")
	f := mustBuild(t, l, l.Start(), distance.WithWindow(2), distance.WithToroidal())

	assert.Equal(t, lattice.Coord{Row: -2, Col: -2}, f.Origin())
	assert.Equal(t, 5, f.Rows())
	assert.Equal(t, 1, f.At(lattice.Coord{Row: -1, Col: 0}))
	assert.Equal(t, distance.Unreached, f.At(lattice.Coord{Row: -1, Col: -1}))
	assert.Equal(t, 4, f.At(lattice.Coord{Row: -2, Col: -2}))
	assert.Equal(t, 4, f.At(lattice.Coord{Row: 2, Col: 2}))
	assert.Equal(t, distance.Unreached, f.At(lattice.Coord{Row: 3, Col: 0}), "outside the window")

	bounded := mustBuild(t, l, l.Start(), distance.WithWindow(2))
	assert.Equal(t, distance.Unreached, bounded.At(lattice.Coord{Row: -1, Col: 0}))
	assert.Equal(t, 3, bounded.Reached())
}

// TestBuild_MaxDepth leaves cells beyond the limit unreached.
func TestBuild_MaxDepth(t *testing.T) {
	l := openLattice(t, 11)
	f := mustBuild(t, l, l.Start(), distance.WithMaxDepth(2))
	assert.Equal(t, 13, f.Reached())
	assert.Equal(t, distance.Unreached, f.At(lattice.Coord{Row: 5, Col: 8}))
}

// TestBuild_OnVisit aborts on a hook error and wraps it.
func TestBuild_OnVisit(t *testing.T) {
	l := openLattice(t, 5)
	stop := errors.New("stop")
	visits := 0
	_, err := distance.Build(l, l.Start(), distance.WithOnVisit(func(_ lattice.Coord, depth int) error {
		visits++
		if depth == 1 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, visits, "source plus the first depth-1 cell")
}

// TestCountWithin_Sample reproduces the published finite count: 16 cells after 6 steps.
func TestCountWithin_Sample(t *testing.T) {
	l := mustParse(t, sample)
	f := mustBuild(t, l, l.Start())
	assert.Equal(t, 16, distance.CountWithin(f, l.Start(), 6))
	assert.Equal(t, 16, distance.CountWithin(f, l.Start(), 6), "idempotent")
	assert.Equal(t, 1, distance.CountWithin(f, l.Start(), 0))
}

// TestCountWithin_ParityLaw checks every reached cell against the parity rule.
func TestCountWithin_ParityLaw(t *testing.T) {
	l := mustParse(t, sample)
	f := mustBuild(t, l, l.Start(), distance.WithWindow(15), distance.WithToroidal())
	for _, budget := range []int{3, 8, 13} {
		want := 0
		f.Each(func(c lattice.Coord, d int) {
			if d <= budget && d%2 == budget%2 {
				want++
			}
		})
		assert.Equal(t, want, distance.CountWithin(f, l.Start(), budget), "budget %d", budget)
	}
}

// TestCountExact_OpenDiamond: on an open plane, exactly b steps reach (b+1)² cells.
func TestCountExact_OpenDiamond(t *testing.T) {
	l := openLattice(t, 11)
	got, err := distance.CountExact(l, 2)
	require.NoError(t, err)
	assert.Equal(t, 9, got)

	f := mustBuild(t, l, l.Start(), distance.WithWindow(2), distance.WithToroidal())
	assert.Equal(t, 13, f.Within(2), "diamond of radius 2, both parities")

	for _, b := range []int{0, 1, 7, 30} {
		got, err := distance.CountExact(l, b)
		require.NoError(t, err)
		assert.Equal(t, (b+1)*(b+1), got, "budget %d", b)
	}
}

// TestCountExact_Sample reproduces the published infinite-map counts.
func TestCountExact_Sample(t *testing.T) {
	l := mustParse(t, sample)
	cases := []struct{ budget, want int }{
		{0, 1},
		{6, 16},
		{10, 50},
		{50, 1594},
		{100, 6536},
	}
	if !testing.Short() {
		cases = append(cases, struct{ budget, want int }{500, 167004})
	}
	for _, tc := range cases {
		got, err := distance.CountExact(l, tc.budget)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "budget %d", tc.budget)
	}
}

// TestCountExact_WindowSize: any toroidal window of side ≥ 2b+1 gives the same count.
func TestCountExact_WindowSize(t *testing.T) {
	l := mustParse(t, sample)
	for _, b := range []int{1, 4, 9, 16, 25} {
		exact, err := distance.CountExact(l, b)
		require.NoError(t, err)
		wide := mustBuild(t, l, l.Start(), distance.WithWindow(2*b+3), distance.WithToroidal())
		assert.Equal(t, exact, distance.CountWithin(wide, l.Start(), b), "budget %d", b)
	}

	_, err := distance.CountExact(l, -1)
	assert.ErrorIs(t, err, distance.ErrNegativeBudget)
	_, err = distance.CountExact(nil, 1)
	assert.ErrorIs(t, err, distance.ErrLatticeNil)
}
