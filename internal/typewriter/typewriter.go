// Package typewriter reveals a headline one rune at a time on a timer,
// bubbletea-style: the model is immutable-ish, ticks arrive as messages, and
// a generation counter cancels ticks from a superseded run.
package typewriter

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickInterval is the per-rune reveal cadence.
const TickInterval = 18 * time.Millisecond

// Caret marks the reveal position while typing is in progress.
const Caret = "▌"

// TickMsg advances the reveal by one rune. Gen ties the tick to the run
// that scheduled it; stale ticks are dropped.
type TickMsg struct {
	Gen int
}

type Model struct {
	text  []rune
	shown int
	done  bool
	gen   int
}

// New prepares a typewriter for text. With reducedMotion the full string is
// shown immediately and the model reports done without ever ticking.
func New(text string, reducedMotion bool) Model {
	m := Model{text: []rune(text)}
	if reducedMotion || len(m.text) == 0 {
		m.shown = len(m.text)
		m.done = true
	}
	return m
}

// Init schedules the first tick, or nothing when already done.
func (m Model) Init() tea.Cmd {
	if m.done {
		return nil
	}
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	t, ok := msg.(TickMsg)
	if !ok || t.Gen != m.gen || m.done {
		return m, nil
	}
	m.shown++
	if m.shown >= len(m.text) {
		m.shown = len(m.text)
		m.done = true
		return m, nil
	}
	return m, m.tick()
}

// Restart re-runs the reveal from scratch under a possibly changed motion
// preference. Bumping the generation orphans any in-flight tick, so the old
// timer can never advance the new run.
func (m Model) Restart(reducedMotion bool) (Model, tea.Cmd) {
	next := New(string(m.text), reducedMotion)
	next.gen = m.gen + 1
	return next, next.Init()
}

// Done reports whether the full text is revealed.
func (m Model) Done() bool { return m.done }

// View renders the revealed prefix, with the caret while typing.
func (m Model) View() string {
	s := string(m.text[:m.shown])
	if !m.done {
		s += Caret
	}
	return s
}

func (m Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(TickInterval, func(time.Time) tea.Msg { return TickMsg{Gen: gen} })
}
