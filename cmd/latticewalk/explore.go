package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/latticewalk/config"
	"github.com/katalvlaran/latticewalk/lattice"
	"github.com/katalvlaran/latticewalk/solver"
)

// Explore budget step sizes
const (
	smallStep = 1
	largeStep = 10
)

var flagStart int

var exploreCmd = &cobra.Command{
	Use:   "explore <grid>",
	Short: "Step through budgets interactively",
	Long: `Opens an interactive view of the grid. The step budget is changed with the
arrow keys; the reachable cells are redrawn and recounted on every change.`,
	Args: cobra.ExactArgs(1),
	RunE: runExplore,
}

func init() {
	exploreCmd.Flags().IntVar(&flagStart, "steps", 0, "Initial step budget")
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	l, err := readLattice(args[0])
	if err != nil {
		return err
	}
	if flagStart < 0 {
		return fmt.Errorf("invalid --steps %d: want a non-negative integer", flagStart)
	}

	// Log output would corrupt the alternate screen.
	opts, err := cfg.SolverOptions(log.New(io.Discard))
	if err != nil {
		return err
	}
	m := newExploreModel(l, solver.New(opts...), cfg, colorEnabled(cfg.Render.Color), flagStart)

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// exploreKeyMap defines the key bindings for the explore view.
type exploreKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Strategy key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k exploreKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Strategy, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k exploreKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Strategy, k.Help, k.Quit},
	}
}

func defaultExploreKeyMap() exploreKeyMap {
	return exploreKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "+"),
			key.WithHelp("↑/+", "one more step"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "-"),
			key.WithHelp("↓/-", "one less step"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "right", "l"),
			key.WithHelp("pgup/→", "ten more steps"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "left", "h"),
			key.WithHelp("pgdn/←", "ten less steps"),
		),
		Strategy: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle strategy"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	statStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// exploreModel is the Bubble Tea model for the explore view.
type exploreModel struct {
	lat          *lattice.Lattice
	solver       *solver.Solver
	cfg          config.Config
	color        bool
	budget       int
	showStrategy bool

	// Derived from budget by refresh.
	grid string
	res  solver.Result
	err  error

	help     help.Model
	keys     exploreKeyMap
	width    int
	quitting bool
}

func newExploreModel(l *lattice.Lattice, s *solver.Solver, cfg config.Config, color bool, budget int) exploreModel {
	m := exploreModel{
		lat:          l,
		solver:       s,
		cfg:          cfg,
		color:        color,
		budget:       budget,
		showStrategy: true,
		help:         help.New(),
		keys:         defaultExploreKeyMap(),
	}
	m.refresh()
	return m
}

// refresh recounts and redraws for the current budget.
func (m *exploreModel) refresh() {
	m.res, m.err = m.solver.Count(m.lat, m.budget)
	if m.err != nil {
		m.grid = ""
		return
	}
	grid, err := draw(m.lat, m.budget, m.cfg, m.color)
	if err != nil {
		// Too wide to draw; the count still stands.
		m.grid = errStyle.Render(err.Error())
		return
	}
	m.grid = grid
}

// Init implements tea.Model.
func (m exploreModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.step(smallStep)
		case key.Matches(msg, m.keys.Down):
			m.step(-smallStep)
		case key.Matches(msg, m.keys.PageUp):
			m.step(largeStep)
		case key.Matches(msg, m.keys.PageDown):
			m.step(-largeStep)
		case key.Matches(msg, m.keys.Strategy):
			m.showStrategy = !m.showStrategy
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

// step moves the budget by delta, clamped at zero.
func (m *exploreModel) step(delta int) {
	next := max(m.budget+delta, 0)
	if next == m.budget {
		return
	}
	m.budget = next
	m.refresh()
}

// View implements tea.Model.
func (m exploreModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("latticewalk  %d×%d", m.lat.Rows(), m.lat.Cols())))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("steps %d   reachable %d", m.budget, m.res.Count)
	if m.showStrategy {
		stats += fmt.Sprintf("   strategy %s (%s)", m.res.Strategy, m.res.Elapsed.Round(time.Microsecond))
	}
	b.WriteString(statStyle.Render(stats))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errStyle.Render(m.err.Error()))
	} else {
		b.WriteString(m.grid)
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
