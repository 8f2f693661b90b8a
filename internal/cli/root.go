package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"northlight/internal/logging"
	"northlight/internal/motion"
	"northlight/internal/site"
	"northlight/internal/store"
	"northlight/internal/tui"
)

type App struct {
	ContentPath   string
	LeadsPath     string
	PrefsPath     string
	ReducedMotion bool
	DebugLog      string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "northlight",
		Short:        "Northlight Studio — the agency site, in your terminal",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Browse the site
  northlight

  # Record contact submissions locally
  northlight --leads ~/.local/share/northlight/leads.sqlite

  # Skip all animation
  northlight --reduced-motion
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.HasSubCommands() && len(args) > 0 {
				return cmd.Help()
			}
			return runTUI(cmd, app)
		},
	}

	cmd.PersistentFlags().StringVar(&app.ContentPath, "content", "", "Path to an alternate site content YAML (default: embedded content)")
	cmd.PersistentFlags().StringVar(&app.LeadsPath, "leads", "", "Path to a sqlite journal recording contact submissions (default: off)")
	cmd.PersistentFlags().StringVar(&app.PrefsPath, "prefs", "", "Path to the preferences file (default: user config dir)")
	cmd.Flags().BoolVar(&app.ReducedMotion, "reduced-motion", false, "Disable all animation (same as NORTHLIGHT_REDUCED_MOTION=true)")
	cmd.PersistentFlags().StringVar(&app.DebugLog, "debug-log", "", "Write debug logs to this file")

	cmd.AddCommand(newLeadsCmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	log, flush, err := logging.New(app.DebugLog)
	if err != nil {
		return err
	}
	defer flush()

	s, err := site.Load(app.ContentPath)
	if err != nil {
		return err
	}

	if app.ReducedMotion {
		// The flag is a hard override, expressed through the same env var
		// the probe reads (which also disables live file updates).
		if err := os.Setenv("NORTHLIGHT_REDUCED_MOTION", "true"); err != nil {
			return err
		}
	}
	probe := motion.NewProbe(app.PrefsPath, log)
	defer probe.Close()

	var journal *store.Journal
	if strings.TrimSpace(app.LeadsPath) != "" {
		journal, err = store.Open(cmd.Context(), app.LeadsPath)
		if err != nil {
			return err
		}
		defer journal.Close()
	}

	return tui.Run(tui.Options{
		Site:    s,
		Probe:   probe,
		Journal: journal,
		Log:     log,
	})
}
