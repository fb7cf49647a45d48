package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latticewalk/lattice"
)

func TestComponents(t *testing.T) {
	l, err := lattice.Parse(sample)
	require.NoError(t, err)
	comps := l.Components()
	require.Len(t, comps, 1, "every open cell of the sample is connected")
	assert.Len(t, comps[0], 81)
	assert.Equal(t, lattice.Coord{}, comps[0][0])
}

func TestComponents_NoWrap(t *testing.T) {
	// The two regions touch only across the tile edge.
	l, err := lattice.Parse("S.#\n##.\n...")
	require.NoError(t, err)
	comps := l.Components()
	require.Len(t, comps, 2)
	assert.ElementsMatch(t, []lattice.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, comps[0])
	assert.ElementsMatch(t, []lattice.Coord{
		{Row: 1, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
	}, comps[1])
}
