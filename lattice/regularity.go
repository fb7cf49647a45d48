package lattice

import "github.com/zyedidia/generic/mapset"

// OpenRows returns the indices of rows whose every cell is open.
func (l *Lattice) OpenRows() mapset.Set[int] {
	rows := mapset.New[int]()
	for i := 0; i < l.rows; i++ {
		if l.rowOpen(i) {
			rows.Put(i)
		}
	}
	return rows
}

// OpenCols returns the indices of columns whose every cell is open.
func (l *Lattice) OpenCols() mapset.Set[int] {
	cols := mapset.New[int]()
	for j := 0; j < l.cols; j++ {
		if l.colOpen(j) {
			cols.Put(j)
		}
	}
	return cols
}

// HasOpenBorder reports whether the outermost rows and columns are entirely open.
func (l *Lattice) HasOpenBorder() bool {
	return l.rowOpen(0) && l.rowOpen(l.rows-1) && l.colOpen(0) && l.colOpen(l.cols-1)
}

// HasOpenCross reports whether the row and the column through the start are
// entirely open.
func (l *Lattice) HasOpenCross() bool {
	return l.rowOpen(l.start.Row) && l.colOpen(l.start.Col)
}

func (l *Lattice) rowOpen(i int) bool {
	for _, c := range l.cells[i*l.cols : (i+1)*l.cols] {
		if c != Open {
			return false
		}
	}
	return true
}

func (l *Lattice) colOpen(j int) bool {
	for i := 0; i < l.rows; i++ {
		if l.cells[i*l.cols+j] != Open {
			return false
		}
	}
	return true
}
