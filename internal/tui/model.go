// Package tui implements a scrollable, zoomable live view of a
// Universe as a bubbletea program: a braille-dot viewport paired with
// a status line showing generation, population, step size, center,
// and scale, with pan/zoom/step key bindings.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/noctilu/hashlife/universe"
)

const (
	movementFactor = 4
	minScale       = int64(1)
	maxScale       = int64(1) << 48
	maxStep        = uint64(1) << 48
	minDelay       = time.Millisecond
	maxDelay       = time.Second
)

var statusStyle = lipgloss.NewStyle().Faint(true)

// Model is the bubbletea model for the live universe view.
type Model struct {
	universe *universe.Universe
	log      zerolog.Logger

	centerX, centerY int64
	scale            int64
	step             uint64
	delay            time.Duration
	running          bool

	width, height int
}

// New creates a view of u centered on the origin at 1:1 scale,
// advancing one generation per tick when started.
func New(u *universe.Universe, log zerolog.Logger) Model {
	return Model{
		universe: u,
		log:      log,
		scale:    1,
		step:     1,
		delay:    100 * time.Millisecond,
	}
}

type tickMsg time.Time

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.delay, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tickMsg:
		if !m.running {
			return m, nil
		}
		if err := m.universe.Step(m.step); err != nil {
			m.log.Error().Err(err).Msg("step failed, stopping simulation")
			m.running = false
			return m, nil
		}
		return m, m.tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		m.centerY -= movementFactor * m.scale
	case "down", "j":
		m.centerY += movementFactor * m.scale
	case "left", "h":
		m.centerX -= movementFactor * m.scale
	case "right", "l":
		m.centerX += movementFactor * m.scale
	case "shift+up", "K":
		m.centerY -= m.scale
	case "shift+down", "J":
		m.centerY += m.scale
	case "shift+left", "H":
		m.centerX -= m.scale
	case "shift+right", "L":
		m.centerX += m.scale

	case "[":
		if m.scale < maxScale {
			m.scale <<= 1
		}
	case "]":
		if m.scale > minScale {
			m.scale >>= 1
		}
	case "f":
		m.zoomToFit()

	case "-":
		if m.step > 1 {
			m.step >>= 1
		}
	case "=":
		if m.step < maxStep {
			m.step <<= 1
		}
	case "9":
		if m.delay > minDelay {
			m.delay >>= 1
		}
	case "0":
		if m.delay < maxDelay {
			m.delay <<= 1
		}

	case " ":
		if err := m.universe.Step(m.step); err != nil {
			m.log.Error().Err(err).Msg("step failed")
		}
	case "enter":
		m.running = !m.running
		if m.running {
			return m, m.tickCmd()
		}
	}
	return m, nil
}

// zoomToFit centers and scales the view so the whole live region is
// visible, or resets to the origin at 1:1 if the universe is empty.
func (m *Model) zoomToFit() {
	lo, hi, ok := m.universe.BoundingBox()
	if !ok || m.width == 0 || m.height == 0 {
		m.centerX, m.centerY, m.scale = 0, 0, 1
		return
	}
	m.centerX = (lo.X + hi.X) / 2
	m.centerY = (lo.Y + hi.Y) / 2

	cellWidth := float64(hi.X-lo.X+1) / float64(m.width*2)
	cellHeight := float64(hi.Y-lo.Y+1) / float64((m.height-1)*4)
	scale := int64(1)
	for float64(scale) < cellWidth || float64(scale) < cellHeight {
		scale <<= 1
	}
	m.scale = scale
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	body := renderViewport(m.universe, m.centerX, m.centerY, m.scale, m.width, m.height-1)
	status := statusStyle.Render(fmt.Sprintf(
		"gen: %s | pop: %s | step: %d | center: (%d, %d) | scale: %d:1",
		m.universe.Generation(), m.universe.Population(), m.step, m.centerX, m.centerY, m.scale,
	))
	return body + "\n" + status
}
