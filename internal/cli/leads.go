package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"northlight/internal/store"
)

func newLeadsCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "leads",
		Short: "List contact submissions recorded in the leads journal",
		Long: strings.TrimSpace(`
Reads the sqlite journal written by the TUI when --leads is set and prints
every recorded submission, oldest first. The journal uses WAL, so reading
while the TUI runs is fine.
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := strings.TrimSpace(app.LeadsPath)
			if path == "" {
				return errors.New("no journal path: pass --leads <path>")
			}
			j, err := store.Open(cmd.Context(), path)
			if err != nil {
				return err
			}
			defer j.Close()

			leads, err := j.List(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(leads)
			}
			if len(leads) == 0 {
				fmt.Fprintln(out, "No leads recorded.")
				return nil
			}
			for _, l := range leads {
				fmt.Fprintf(out, "%d\t%s\t%s <%s>\t%s\t%s\n",
					l.ID, l.CreatedAt.Format("2006-01-02 15:04"), l.Name, l.Email, l.Goal, oneLine(l.Message))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print leads as JSON")
	return cmd
}

func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > 60 {
		s = s[:57] + "..."
	}
	return s
}
