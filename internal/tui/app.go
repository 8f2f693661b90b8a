package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"northlight/internal/effects"
	"northlight/internal/form"
	"northlight/internal/motion"
	"northlight/internal/scrollspy"
	"northlight/internal/site"
	"northlight/internal/store"
	"northlight/internal/typewriter"
)

const (
	// nav + glow rail above the body, footer below.
	bodyTop      = 2
	footerHeight = 1

	wheelStep = 3
	glowFrame = time.Second / 60
)

type glowTickMsg struct{}

type motionChangedMsg bool

// leadLogMsg reports the outcome of a journal append. Failures only log;
// the simulated send cycle is the contract and cannot fail.
type leadLogMsg struct{ err error }

type appModel struct {
	site    *site.Site
	log     *zap.Logger
	journal *store.Journal
	probe   *motion.Probe

	motionCh <-chan bool
	reduced  bool

	width  int
	height int
	scroll int

	tw      typewriter.Model
	form    form.Model
	glow    *effects.Glow
	tilts   map[string]effects.Tilt
	tracker *scrollspy.Tracker

	glowAnimating bool

	page *pageLayout
}

func newAppModel(s *site.Site, probe *motion.Probe, journal *store.Journal, log *zap.Logger) appModel {
	if log == nil {
		log = zap.NewNop()
	}
	reduced := false
	var ch <-chan bool
	if probe != nil {
		reduced = probe.Reduced()
		ch = probe.Changes()
	}

	m := appModel{
		site:     s,
		log:      log,
		journal:  journal,
		probe:    probe,
		motionCh: ch,
		reduced:  reduced,
		tw:       typewriter.New(s.Headline, reduced),
		form:     form.New(s.Contact.Goals),
		glow:     effects.NewGlow(!reduced),
		tilts:    map[string]effects.Tilt{},
		tracker:  scrollspy.New(s.SectionIDs(), func(string) (scrollspy.Extent, bool) { return scrollspy.Extent{}, false }),
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.tw.Init(), waitMotion(m.motionCh))
}

func waitMotion(ch <-chan bool) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		v, ok := <-ch
		if !ok {
			return nil
		}
		return motionChangedMsg(v)
	}
}

func (m appModel) bodyHeight() int {
	h := m.height - bodyTop - footerHeight
	if h < 1 {
		h = 1
	}
	return h
}

// rebuild re-renders the page and refreshes scrollspy geometry against it.
func (m *appModel) rebuild() {
	m.page = m.buildPage()
	// Pad the page bottom so the last section can reach the top of the
	// viewport; otherwise it could never win the active-section contest.
	ids := m.site.SectionIDs()
	if len(ids) > 0 {
		if ext, ok := m.page.extents[ids[len(ids)-1]]; ok {
			for len(m.page.lines) < ext.Top+m.bodyHeight() {
				m.page.lines = append(m.page.lines, "")
			}
		}
	}
	m.tracker.Refresh(func(id string) (scrollspy.Extent, bool) {
		ext, ok := m.page.extents[id]
		return ext, ok
	})
	m.clampScroll()
}

func (m *appModel) clampScroll() {
	max := len(m.page.lines) - m.bodyHeight()
	if max < 0 {
		max = 0
	}
	if m.scroll > max {
		m.scroll = max
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

func (m *appModel) scrollBy(delta int) {
	m.scroll += delta
	m.clampScroll()
	m.tracker.Observe(m.scroll, m.bodyHeight())
}

func (m *appModel) jumpToSection(idx int) {
	if m.page == nil || idx < 0 || idx >= len(m.site.Sections) {
		return
	}
	id := m.site.Sections[idx].ID
	ext, ok := m.page.extents[id]
	if !ok {
		return
	}
	m.scroll = ext.Top
	m.clampScroll()
	m.tracker.Observe(m.scroll, m.bodyHeight())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.form = m.form.SetWidth(m.cardWidth() - 4)
		m.rebuild()
		m.tracker.Observe(m.scroll, m.bodyHeight())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case glowTickMsg:
		if m.glow.Step() {
			cmds = append(cmds, glowTick())
		} else {
			m.glowAnimating = false
		}
		m.rebuild()
		return m, tea.Batch(cmds...)

	case motionChangedMsg:
		m.reduced = bool(msg)
		m.glow.SetEnabled(!m.reduced)
		m.glowAnimating = false
		if m.reduced {
			// Tilt listeners detach entirely: no card keeps its state.
			m.tilts = map[string]effects.Tilt{}
		}
		var cmd tea.Cmd
		m.tw, cmd = m.tw.Restart(m.reduced)
		m.log.Info("reduced-motion preference changed", zap.Bool("reduced", m.reduced))
		m.rebuild()
		return m, tea.Batch(cmd, waitMotion(m.motionCh))

	case typewriter.TickMsg:
		var cmd tea.Cmd
		m.tw, cmd = m.tw.Update(msg)
		m.rebuild()
		return m, cmd

	case form.SentMsg, form.SettledMsg:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		m.rebuild()
		return m, cmd

	case leadLogMsg:
		if msg.err != nil {
			m.log.Warn("lead journal append failed", zap.Error(msg.err))
		}
		return m, nil
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.Focused() {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.form = m.form.SetFocused(false)
			m.rebuild()
			return m, nil
		}
		statusBefore := m.form.Status()
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		cmds := []tea.Cmd{cmd}
		if statusBefore != form.StatusSending && m.form.Status() == form.StatusSending {
			cmds = append(cmds, m.recordLead(m.form.Draft()))
		}
		m.rebuild()
		return m, tea.Batch(cmds...)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		m.scrollBy(-1)
	case "down", "j":
		m.scrollBy(1)
	case "pgup":
		m.scrollBy(-m.bodyHeight())
	case "pgdown", " ":
		m.scrollBy(m.bodyHeight())
	case "home":
		m.scrollBy(-len(m.pageLines()))
	case "end":
		m.scrollBy(len(m.pageLines()))
	case "enter", "tab":
		if m.tracker.Active() == "contact" {
			m.form = m.form.SetFocused(true)
			m.rebuild()
		}
	default:
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 {
			m.jumpToSection(n - 1)
		}
	}
	return m, nil
}

func (m appModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-wheelStep)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scrollBy(wheelStep)
		return m, nil
	}

	// Motion with no button held drives the decorative effects. Under
	// reduced motion both stay detached.
	if msg.Action != tea.MouseActionMotion || msg.Button != tea.MouseButtonNone || m.reduced {
		return m, nil
	}

	var cmds []tea.Cmd

	if m.width > 1 && m.height > 1 {
		m.glow.SetTarget(
			float64(msg.X)/float64(m.width-1)*100,
			float64(msg.Y)/float64(m.height-1)*100,
		)
		if !m.glowAnimating {
			m.glowAnimating = true
			cmds = append(cmds, glowTick())
		}
	}

	m.updateTilt(msg.X, msg.Y)
	m.rebuild()
	return m, tea.Batch(cmds...)
}

// updateTilt hit-tests the pointer against card regions in page space and
// keeps tilt state only for the card under it; every other card resets to
// neutral, as does leaving all cards.
func (m *appModel) updateTilt(screenX, screenY int) {
	if m.page == nil {
		return
	}
	pageY := screenY - bodyTop + m.scroll
	pageX := screenX

	c, over := m.page.cardAt(pageX, pageY)
	if !over || !strings.HasPrefix(c.id, "svc-") && !strings.HasPrefix(c.id, "case-") {
		if len(m.tilts) > 0 {
			m.tilts = map[string]effects.Tilt{}
		}
		return
	}

	px := (float64(pageX-c.left) + 0.5) / float64(c.width)
	py := (float64(pageY-c.top) + 0.5) / float64(c.height)
	m.tilts = map[string]effects.Tilt{c.id: effects.TiltAt(px, py)}
}

func (m *appModel) recordLead(d form.Draft) tea.Cmd {
	if m.journal == nil {
		return nil
	}
	j := m.journal
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		err := j.Append(ctx, store.Lead{
			Name:    d.Name,
			Email:   d.Email,
			Company: d.Company,
			Goal:    d.Goal,
			Message: d.Message,
		})
		return leadLogMsg{err: err}
	}
}

func glowTick() tea.Cmd {
	return tea.Tick(glowFrame, func(time.Time) tea.Msg { return glowTickMsg{} })
}

func (m appModel) pageLines() []string {
	if m.page == nil {
		return nil
	}
	return m.page.lines
}

func (m appModel) View() string {
	if m.width == 0 || m.page == nil {
		return "Loading…"
	}

	nav := m.renderNav(m.tracker.Active())
	rail := m.renderGlowRail()

	bodyH := m.bodyHeight()
	lines := m.page.lines
	var body []string
	for i := m.scroll; i < m.scroll+bodyH; i++ {
		if i >= 0 && i < len(lines) {
			body = append(body, lines[i])
		} else {
			body = append(body, "")
		}
	}

	footer := styleMuted().Render(m.footerHint())
	parts := []string{nav, rail}
	parts = append(parts, body...)
	parts = append(parts, footer)
	return strings.Join(parts, "\n")
}

func (m appModel) footerHint() string {
	if m.form.Focused() {
		return "tab: next field  ◂ ▸: goal  enter: send  esc: back to page"
	}
	if m.tracker.Active() == "contact" {
		return "enter: fill in the form  ↑/↓: scroll  1-9: jump  q: quit"
	}
	return "↑/↓ wheel: scroll  1-9: jump to section  q: quit"
}
