package tui

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	mdMu sync.Mutex
	// Renderers are cached per width+style. Building one with WithAutoStyle
	// can block on terminal background queries, so the style is resolved
	// once from the lipgloss background instead.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

// renderMarkdown renders a case-study body for the detail view. On any
// renderer failure the raw markdown is returned; a degraded body beats a
// blank card.
func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	style := "light"
	if lipgloss.HasDarkBackground() {
		style = "dark"
	}
	key := style + ":" + strconv.Itoa(width)

	mdMu.Lock()
	r := mdRenderers[key]
	mdMu.Unlock()

	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdMu.Lock()
		if existing := mdRenderers[key]; existing != nil {
			r = existing
		} else {
			mdRenderers[key] = rr
			r = rr
		}
		mdMu.Unlock()
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
