package lattice

import "github.com/zyedidia/generic/queue"

// Components finds the connected regions of open cells inside one tile,
// without wrapping across its edges. Regions are returned in row-major order
// of their first cell; cells within a region are in BFS order.
//
// Time:   O(R·C).
// Memory: O(R·C) for visited flags and output.
func (l *Lattice) Components() [][]Coord {
	seen := make([]bool, len(l.cells))
	var comps [][]Coord

	for i0, c := range l.cells {
		if c != Open || seen[i0] {
			continue
		}
		q := queue.New[int]()
		q.Enqueue(i0)
		seen[i0] = true
		var comp []Coord

		for !q.Empty() {
			u := q.Dequeue()
			p := Coord{Row: u / l.cols, Col: u % l.cols}
			comp = append(comp, p)
			for _, step := range Steps {
				v := p.Add(step)
				if !l.IsOpen(v) {
					continue
				}
				vi := v.Row*l.cols + v.Col
				if !seen[vi] {
					seen[vi] = true
					q.Enqueue(vi)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
