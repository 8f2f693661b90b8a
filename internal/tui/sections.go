package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"northlight/internal/effects"
	"northlight/internal/form"
	"northlight/internal/scrollspy"
)

// The page is rendered into a flat slice of lines; sections and cards record
// where they landed so scrollspy and mouse hit-testing work on the same
// geometry the user sees.

const (
	pageMargin   = 2  // left margin before card indent
	maxCardWidth = 64 // cards don't stretch on wide terminals
)

type cardRegion struct {
	id     string
	top    int
	left   int
	width  int
	height int
}

type pageLayout struct {
	lines   []string
	extents map[string]scrollspy.Extent
	cards   []cardRegion
}

// cardAt returns the card under a page coordinate, if any.
func (p *pageLayout) cardAt(x, y int) (cardRegion, bool) {
	for _, c := range p.cards {
		if y >= c.top && y < c.top+c.height && x >= c.left && x < c.left+c.width {
			return c, true
		}
	}
	return cardRegion{}, false
}

type pageBuilder struct {
	width   int
	lines   []string
	extents map[string]scrollspy.Extent
	cards   []cardRegion
}

func newPageBuilder(width int) *pageBuilder {
	return &pageBuilder{width: width, extents: map[string]scrollspy.Extent{}}
}

func (b *pageBuilder) add(s string) {
	for _, ln := range strings.Split(s, "\n") {
		b.lines = append(b.lines, ln)
	}
}

func (b *pageBuilder) blank(n int) {
	for i := 0; i < n; i++ {
		b.lines = append(b.lines, "")
	}
}

// addCard renders one tilting card and records its hit region.
func (b *pageBuilder) addCard(id string, tilt effects.Tilt, width int, content ...string) {
	indent := tiltIndent(tilt)
	card := styleCard(!tilt.IsNeutral(), width).Render(strings.Join(content, "\n"))
	top := len(b.lines)
	var height int
	for _, ln := range strings.Split(card, "\n") {
		b.lines = append(b.lines, strings.Repeat(" ", indent)+ln)
		height++
	}
	b.cards = append(b.cards, cardRegion{
		id:     id,
		top:    top,
		left:   indent,
		width:  lipgloss.Width(card),
		height: height,
	})
}

func (b *pageBuilder) section(id string, render func()) {
	top := len(b.lines)
	render()
	b.extents[id] = scrollspy.Extent{Top: top, Height: len(b.lines) - top}
}

func (b *pageBuilder) layout() *pageLayout {
	return &pageLayout{lines: b.lines, extents: b.extents, cards: b.cards}
}

// tiltIndent maps rotateY (±5°) to a small horizontal shift, the terminal
// stand-in for perspective.
func tiltIndent(t effects.Tilt) int {
	return pageMargin + int(math.Round((t.RotateY+5)/2))
}

// cardGlowRow draws the pointer-light inside a card: a dotted rail with the
// marker at the glow's horizontal position, the glyph hinting its vertical
// third.
func cardGlowRow(t effects.Tilt, innerW int) string {
	if innerW < 3 {
		innerW = 3
	}
	pos := int(t.GlowX/100*float64(innerW-1) + 0.5)
	glyph := "✦"
	switch {
	case t.GlowY < 33:
		glyph = "˚"
	case t.GlowY > 66:
		glyph = "⁎"
	}
	var sb strings.Builder
	for i := 0; i < innerW; i++ {
		if i == pos {
			sb.WriteString(glyph)
		} else {
			sb.WriteString("·")
		}
	}
	return styleGlow().Render(sb.String())
}

func (m *appModel) cardWidth() int {
	w := m.width - pageMargin - 10
	if w > maxCardWidth {
		w = maxCardWidth
	}
	if w < 24 {
		w = 24
	}
	return w
}

func (m *appModel) tiltFor(id string) effects.Tilt {
	if t, ok := m.tilts[id]; ok {
		return t
	}
	return effects.Neutral()
}

// buildPage renders every section and records geometry.
func (m *appModel) buildPage() *pageLayout {
	b := newPageBuilder(m.width)
	cardW := m.cardWidth()
	innerW := cardW - 2 // card padding

	margin := strings.Repeat(" ", pageMargin)

	b.section("hero", func() {
		b.blank(1)
		b.add(margin + styleBrand().Render(m.site.Brand))
		b.blank(1)
		b.add(margin + styleHeadline().Render(m.tw.View()))
		b.add(margin + styleMuted().Render(m.site.Tagline))
		// The hero fills most of the first viewport, like a full-height
		// landing header; without this it would scroll past the
		// observation window immediately.
		pad := m.bodyHeight()*2/3 - 5
		if pad < 2 {
			pad = 2
		}
		b.blank(pad)
	})

	b.section("services", func() {
		b.add(margin + styleSectionHeading().Render("Services"))
		b.blank(1)
		for i, svc := range m.site.Services {
			id := fmt.Sprintf("svc-%d", i)
			t := m.tiltFor(id)
			b.addCard(id, t, cardW,
				svc.Icon+" "+lipgloss.NewStyle().Bold(true).Render(svc.Title),
				xansi.Wordwrap(svc.Blurb, innerW, ""),
				cardGlowRow(t, innerW),
			)
			b.blank(1)
		}
	})

	b.section("process", func() {
		b.add(margin + styleSectionHeading().Render("Process"))
		b.blank(1)
		for i, step := range m.site.Process {
			b.add(margin + styleSectionHeading().Render(fmt.Sprintf("%02d", i+1)) + "  " +
				lipgloss.NewStyle().Bold(true).Render(step.Title))
			for _, ln := range strings.Split(xansi.Wordwrap(step.Desc, innerW, ""), "\n") {
				b.add(margin + styleMuted().Render("│   "+ln))
			}
			b.blank(1)
		}
	})

	b.section("work", func() {
		b.add(margin + styleSectionHeading().Render("Selected Work"))
		b.blank(1)
		for i, cs := range m.site.Work {
			id := fmt.Sprintf("case-%d", i)
			t := m.tiltFor(id)
			content := []string{
				styleMuted().Render(cs.Client),
				lipgloss.NewStyle().Bold(true).Render(xansi.Wordwrap(cs.Title, innerW, "")),
				xansi.Wordwrap(cs.Summary, innerW, ""),
			}
			if body := renderMarkdown(cs.Body, innerW); body != "" {
				content = append(content, body)
			}
			if len(cs.Metrics) > 0 {
				content = append(content, styleChip().Render(strings.Join(cs.Metrics, "  ")))
			}
			content = append(content, cardGlowRow(t, innerW))
			b.addCard(id, t, cardW, content...)
			b.blank(1)
		}
	})

	b.section("contact", func() {
		b.add(margin + styleSectionHeading().Render("Contact"))
		b.blank(1)
		b.add(margin + m.site.Contact.Heading)
		b.blank(1)
		b.addCard("contact-card", effects.Neutral(), cardW, m.renderForm(innerW)...)
		b.blank(2)
	})

	return b.layout()
}

func (m *appModel) renderForm(innerW int) []string {
	label := func(field int, text string) string {
		st := styleMuted()
		if m.form.Focused() && m.form.Focus() == field {
			st = styleSectionHeading()
		}
		return st.Render(text)
	}

	out := []string{
		label(form.FieldName, "Name"),
		m.form.FieldView(form.FieldName),
		label(form.FieldEmail, "Email"),
		m.form.FieldView(form.FieldEmail),
		label(form.FieldCompany, "Company"),
		m.form.FieldView(form.FieldCompany),
		label(form.FieldGoal, "Goal"),
		m.form.FieldView(form.FieldGoal),
		label(form.FieldMessage, "Message"),
		m.form.FieldView(form.FieldMessage),
		"",
	}

	switch m.form.Status() {
	case form.StatusSending:
		out = append(out, styleButton(false).Render("Sending…"))
	case form.StatusSent:
		out = append(out, styleOK().Render("Sent ✓ — we'll be in touch."))
	default:
		out = append(out, styleButton(m.form.CanSend()).Render("Send message"))
		if !m.form.CanSend() {
			out = append(out, styleMuted().Render(xansi.Wordwrap(
				"Needs a name (2+), a real email, and a message (10+).", innerW, "")))
		}
	}
	return out
}

// renderNav draws the sticky navigation bar with the active section lit.
func (m *appModel) renderNav(active string) string {
	parts := []string{styleBrand().Render(" " + m.site.Brand + " ")}
	for _, sec := range m.site.Sections {
		parts = append(parts, styleNav(sec.ID == active).Render(sec.Title))
	}
	nav := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if xansi.StringWidth(nav) > m.width {
		nav = xansi.Cut(nav, 0, m.width)
	}
	return nav
}

// renderGlowRail draws the page-wide light under the nav. Empty under
// reduced motion: the glow renders nothing at all, not a static marker.
func (m *appModel) renderGlowRail() string {
	if !m.glow.Enabled() {
		return ""
	}
	w := m.width
	if w < 1 {
		w = 1
	}
	pos := int(m.glow.X/100*float64(w-1) + 0.5)
	var sb strings.Builder
	for i := 0; i < w; i++ {
		switch i {
		case pos:
			sb.WriteString("✺")
		case pos - 1, pos + 1:
			sb.WriteString("∙")
		default:
			sb.WriteString("·")
		}
	}
	return styleGlow().Render(sb.String())
}
