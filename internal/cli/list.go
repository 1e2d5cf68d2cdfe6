package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"editorscan/internal/editors"
	"editorscan/internal/tui"
)

var listAll bool

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List installed editors",
		Args:    cobra.NoArgs,
		RunE:    runList,
	}
	cmd.Flags().BoolVar(&listAll, "all", false, "Include editors that were not found")
	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if listAll {
		statuses, err := s.detector.Scan(cmd.Context())
		if err != nil {
			return err
		}
		if outputJSON {
			return writeJSON(cmd, statuses)
		}
		printStatusTable(cmd, statuses)
		return nil
	}

	found, err := s.detector.Available(cmd.Context())
	if err != nil {
		return err
	}
	if outputJSON {
		return writeJSON(cmd, found)
	}
	printFoundTable(cmd, found)
	return nil
}

func printFoundTable(cmd *cobra.Command, found []editors.FoundEditor) {
	out := cmd.OutOrStdout()
	if len(found) == 0 {
		fmt.Fprintln(out, "(no supported editors found)")
		return
	}

	fmt.Fprintln(out, tui.HeaderStyle.Render(fmt.Sprintf("%-30s %s", "Editor", "Path")))
	for _, rec := range found {
		fmt.Fprintf(out, "%-30s %s\n", rec.Editor, rec.Path)
	}
}

func printStatusTable(cmd *cobra.Command, statuses []editors.Status) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, tui.HeaderStyle.Render(fmt.Sprintf("%-30s %-8s %s", "Editor", "Status", "Path")))
	for _, st := range statuses {
		status := "missing"
		path := strings.Join(st.Checked, ", ")
		switch {
		case st.Found:
			status = "found"
			path = st.Path
		case st.Error != "":
			status = "error"
		}
		label := tui.StatusStyle(status).Render(fmt.Sprintf("%-8s", status))
		fmt.Fprintf(out, "%-30s %s %s\n", st.Editor, label, path)
		if st.Error != "" {
			fmt.Fprintf(out, "  error: %s\n", st.Error)
		}
		for _, hint := range st.Hints {
			fmt.Fprintf(out, "  hint: %s\n", hint)
		}
	}
}
