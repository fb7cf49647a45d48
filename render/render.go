// Package render draws a distance field over its lattice window as text,
// marking the cells reachable in exactly the given number of steps.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/latticewalk/distance"
	"github.com/katalvlaran/latticewalk/lattice"
)

// ErrWindowTooLarge is returned when the window exceeds Options.MaxWindow.
var ErrWindowTooLarge = errors.New("render: window too large")

// Glyphs drawn for each cell class.
const (
	GlyphReachable = 'O'
	GlyphOffParity = ','
)

// Styles holds one lipgloss style per cell class.
type Styles struct {
	Start     lipgloss.Style
	Reachable lipgloss.Style
	OffParity lipgloss.Style
	Open      lipgloss.Style
	Blocked   lipgloss.Style
	Border    lipgloss.Style // tile boundaries in the open and blocked glyphs
}

// DefaultStyles returns the coloured palette.
func DefaultStyles() Styles {
	return Styles{
		Start:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Reachable: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		OffParity: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Open:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Blocked:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Border:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	}
}

// PlainStyles returns unstyled output, for pipes and tests.
func PlainStyles() Styles {
	s := lipgloss.NewStyle()
	return Styles{Start: s, Reachable: s, OffParity: s, Open: s, Blocked: s, Border: s}
}

// Options configures Render.
type Options struct {
	Styles    Styles
	MaxWindow int  // 0 = unlimited
	Tiles     bool // highlight cells on tile boundaries
}

// Render draws f over l: 'S' for the start, 'O' for cells reachable in
// exactly budget steps, ',' for reached cells of the other parity or beyond
// the budget, and the lattice glyph otherwise.
func Render(l *lattice.Lattice, f *distance.Field, budget int, opts Options) (string, error) {
	if opts.MaxWindow > 0 && (f.Rows() > opts.MaxWindow || f.Cols() > opts.MaxWindow) {
		return "", fmt.Errorf("%w: %d×%d exceeds %d", ErrWindowTooLarge, f.Rows(), f.Cols(), opts.MaxWindow)
	}
	var (
		b      strings.Builder
		st     = opts.Styles
		start  = f.Source()
		origin = f.Origin()
		parity = budget % 2
	)
	for i := 0; i < f.Rows(); i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j := 0; j < f.Cols(); j++ {
			c := lattice.Coord{Row: origin.Row + i, Col: origin.Col + j}
			b.WriteString(cell(l, f, c, start, budget, parity, st, opts.Tiles))
		}
	}
	return b.String(), nil
}

func cell(l *lattice.Lattice, f *distance.Field, c, start lattice.Coord, budget, parity int, st Styles, tiles bool) string {
	if c == start {
		return st.Start.Render(string(lattice.MarkStart))
	}
	if d := f.At(c); d != distance.Unreached {
		if d <= budget && c.Manhattan(start)%2 == parity {
			return st.Reachable.Render(string(GlyphReachable))
		}
		return st.OffParity.Render(string(GlyphOffParity))
	}
	w := l.Wrap(c)
	g := string(l.At(w).Rune())
	if tiles && (w.Row == 0 || w.Col == 0) {
		return st.Border.Render(g)
	}
	if l.At(w) == lattice.Blocked {
		return st.Blocked.Render(g)
	}
	return st.Open.Render(g)
}
