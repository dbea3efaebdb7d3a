// ABOUTME: Bubble Tea adapter: a wrapping Model that overlays a spinner while ops run
// ABOUTME: Wait turns an operation into a tea.Cmd pair (start marker, completion with result)

package teawait

import (
	"sync/atomic"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/devobs/waiting-indicator/pkg/tui/theme"
)

var lastID atomic.Int64

// NextID allocates an identifier for one overlay model, so several can
// coexist in a program without reacting to each other's operations.
func NextID() int {
	return int(lastID.Add(1))
}

// StartMsg marks an operation entering flight on the overlay with ID.
type StartMsg struct {
	ID int
}

// DoneMsg carries one finished operation's outcome. Programs that want the
// result stream instead of the built-in overlay can watch these directly;
// the overlay clears its busy state on every DoneMsg it owns, keeping the
// level-set last-writer-wins behavior of the core controller.
type DoneMsg struct {
	ID    int
	Value any
	Err   error
}

// Wait wraps op in a tea.Cmd that flags the overlay busy, runs the
// operation off the update loop, and delivers a DoneMsg with the outcome.
func Wait(id int, op func() (any, error)) tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return StartMsg{ID: id} },
		func() tea.Msg {
			v, err := op()
			return DoneMsg{ID: id, Value: v, Err: err}
		},
	)
}

// Model wraps a child tea.Model with a waiting overlay.
type Model struct {
	ID int

	child     tea.Model
	spin      spinner.Model
	busy      bool
	showChild bool
	width     int
	height    int
}

// New wraps child with a waiting overlay. showChild keeps the child view
// visible (dimmed) beneath the indicator; otherwise the indicator replaces
// it while busy.
func New(child tea.Model, showChild bool) Model {
	pal := theme.Current().Palette
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(string(pal.Accent)))),
	)
	return Model{
		ID:        NextID(),
		child:     child,
		spin:      sp,
		showChild: showChild,
	}
}

// Busy reports whether an operation is in flight.
func (m Model) Busy() bool {
	return m.busy
}

// Wait runs op through this overlay.
func (m Model) Wait(op func() (any, error)) tea.Cmd {
	return Wait(m.ID, op)
}

func (m Model) Init() tea.Cmd {
	return m.child.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StartMsg:
		if msg.ID != m.ID {
			break
		}
		m.busy = true
		return m, m.spin.Tick
	case DoneMsg:
		if msg.ID != m.ID {
			break
		}
		m.busy = false
		return m, nil
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	var cmd tea.Cmd
	m.child, cmd = m.child.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	child := m.child.View()
	if !m.busy {
		return child
	}

	indicator := m.spin.View()
	if !m.showChild {
		w, h := m.width, m.height
		if w <= 0 {
			w = lipgloss.Width(child)
		}
		if h <= 0 {
			h = lipgloss.Height(child)
		}
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, indicator)
	}

	dimmed := lipgloss.NewStyle().Faint(true).Render(child)
	w := m.width
	if w <= 0 {
		w = lipgloss.Width(child)
	}
	return dimmed + "\n" + lipgloss.PlaceHorizontal(w, lipgloss.Center, indicator)
}
