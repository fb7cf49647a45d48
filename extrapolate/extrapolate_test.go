package extrapolate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latticewalk/distance"
	"github.com/katalvlaran/latticewalk/extrapolate"
	"github.com/katalvlaran/latticewalk/lattice"
)

// boxed confines the walk to a 3×3 room, so the count never grows.
const boxed = `
#####
#...#
#.S.#
#...#
#####
`

func openLattice(t *testing.T, n int) *lattice.Lattice {
	t.Helper()
	rows := make([]string, n)
	for i := range rows {
		rows[i] = strings.Repeat(".", n)
	}
	mid := []byte(rows[n/2])
	mid[n/2] = 'S'
	rows[n/2] = string(mid)
	l, err := lattice.Parse(strings.Join(rows, "\n"))
	require.NoError(t, err)
	return l
}

// TestFit_RoundTrip: the fitted polynomial reproduces its three samples.
func TestFit_RoundTrip(t *testing.T) {
	for _, s := range [][3]int{
		{0, 0, 0},
		{1, 4, 9},
		{3703, 32957, 91379},
		{10, 7, 2},
	} {
		p, err := extrapolate.Fit(s)
		require.NoError(t, err, "samples %v", s)
		for x := 0; x < 3; x++ {
			assert.Equal(t, s[x], p.At(x), "P(%d) for %v", x, s)
		}
	}
}

// TestFit_OddSecondDifference refuses to round a non-integral a2.
func TestFit_OddSecondDifference(t *testing.T) {
	_, err := extrapolate.Fit([3]int{0, 1, 3})
	assert.ErrorIs(t, err, lattice.ErrStrategyAssumption)
}

// TestPolynomial_At checks the Newton form against a known square.
func TestPolynomial_At(t *testing.T) {
	// (5x+3)² sampled at x=0,1,2 is 9, 64, 169.
	p, err := extrapolate.Fit([3]int{9, 64, 169})
	require.NoError(t, err)
	assert.Equal(t, extrapolate.Polynomial{A0: 9, A1: 55, A2: 25}, p)
	for _, x := range []int{3, 10, 1000} {
		assert.Equal(t, (5*x+3)*(5*x+3), p.At(x))
	}
}

// TestCount_OpenPlane: on an open tiling exactly b steps reach (b+1)² cells.
func TestCount_OpenPlane(t *testing.T) {
	for _, n := range []int{5, 4, 11} {
		l := openLattice(t, n)
		for _, b := range []int{0, 3, 1000, 26501365} {
			got, err := extrapolate.Count(l, b)
			require.NoError(t, err, "n=%d b=%d", n, b)
			assert.Equal(t, (b+1)*(b+1), got, "n=%d b=%d", n, b)
		}
	}
}

// TestExtrapolate_AgreesWithExact cross-checks the fit against brute force.
func TestExtrapolate_AgreesWithExact(t *testing.T) {
	l := openLattice(t, 7)
	est, err := extrapolate.Extrapolate(l, 75)
	require.NoError(t, err)
	assert.Equal(t, 10, est.Tiles)
	assert.Equal(t, 5, est.Remainder)
	assert.Len(t, est.Samples, 4)

	exact, err := distance.CountExact(l, 75)
	require.NoError(t, err)
	assert.Equal(t, exact, est.Count)
}

// TestExtrapolate_Rejects covers the structural failure modes.
func TestExtrapolate_Rejects(t *testing.T) {
	l, err := lattice.Parse(boxed)
	require.NoError(t, err)

	// Samples 4, 5, 4, 5: the fourth sample contradicts the fit.
	_, err = extrapolate.Count(l, 1001)
	assert.ErrorIs(t, err, lattice.ErrStrategyAssumption)

	// Samples 1, 4, 5: the fit turns negative long before q=200.
	_, err = extrapolate.Count(l, 1000, extrapolate.WithVerify(false))
	assert.ErrorIs(t, err, lattice.ErrStrategyAssumption)

	rect, err := lattice.Parse("S..\n...")
	require.NoError(t, err)
	_, err = extrapolate.Count(rect, 1000)
	assert.ErrorIs(t, err, lattice.ErrStrategyAssumption)

	_, err = extrapolate.Count(nil, 10)
	assert.ErrorIs(t, err, distance.ErrLatticeNil)
	_, err = extrapolate.Count(l, -1)
	assert.ErrorIs(t, err, distance.ErrNegativeBudget)
}
