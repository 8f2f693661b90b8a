package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"northlight/internal/motion"
	"northlight/internal/site"
	"northlight/internal/store"
)

// Options wires the page's collaborators. Journal may be nil (no lead
// recording); Probe may be nil (motion preference defaults to off).
type Options struct {
	Site    *site.Site
	Probe   *motion.Probe
	Journal *store.Journal
	Log     *zap.Logger
}

// Run starts the landing page and blocks until the user quits.
func Run(opts Options) error {
	applyColorProfilePreference()
	applyThemePreference()

	m := newAppModel(opts.Site, opts.Probe, opts.Journal, opts.Log)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
