package distance_test

import (
	"fmt"

	"github.com/katalvlaran/latticewalk/distance"
	"github.com/katalvlaran/latticewalk/lattice"
)

// ExampleCountWithin counts the cells reachable in exactly two steps on an
// open 5×5 lattice: the centre plus the eight cells at distance two.
func ExampleCountWithin() {
	l, _ := lattice.Parse(".....\n.....\n..S..\n.....\n.....")
	f, _ := distance.Build(l, l.Start())

	fmt.Println("within 2:", f.Within(2))
	fmt.Println("exactly 2:", distance.CountWithin(f, l.Start(), 2))
	// Output:
	// within 2: 13
	// exactly 2: 9
}
