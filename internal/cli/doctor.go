package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"editorscan/internal/config"
	"editorscan/internal/editors"
	"editorscan/internal/paths"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration and editor availability",
		Args:  cobra.NoArgs,
		RunE:  runDoctor,
	}
}

type healthCheck struct {
	Name    string `json:"name"`
	Status  string `json:"status"` // "ok", "warning", "error"
	Summary string `json:"summary"`
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	var checks []healthCheck
	checks = append(checks, checkConfig(s.paths, s.cfg, s.cfgErr))

	statuses, err := s.detector.Scan(cmd.Context())
	if err != nil {
		return err
	}
	checks = append(checks, checkEditors(statuses))

	if s.cfgErr == nil {
		checks = append(checks, checkPreferred(s.cfg, statuses))
	}

	return writeDoctorResult(cmd, s.paths.ConfigFile, checks)
}

func checkConfig(pp paths.AppPaths, cfg config.Config, cfgErr error) healthCheck {
	if cfgErr != nil {
		return healthCheck{Name: "Config", Status: "error", Summary: cfgErr.Error()}
	}

	summary := "defaults (no config file)"
	if exists, _ := afero.Exists(configFs, pp.ConfigFile); exists {
		summary = "loaded"
	}

	var warnings, errors int
	for _, v := range cfg.Validate() {
		switch v.Level {
		case "warning":
			warnings++
		case "error":
			errors++
		}
	}

	if errors > 0 {
		return healthCheck{Name: "Config", Status: "error", Summary: fmt.Sprintf("%s; %d errors", summary, errors)}
	}
	if warnings > 0 {
		return healthCheck{Name: "Config", Status: "warning", Summary: fmt.Sprintf("%s; %d warnings", summary, warnings)}
	}
	return healthCheck{Name: "Config", Status: "ok", Summary: summary}
}

func checkEditors(statuses []editors.Status) healthCheck {
	var found []string
	var probeErrors int
	for _, st := range statuses {
		if st.Found {
			found = append(found, st.Editor.String())
		} else if st.Error != "" {
			probeErrors++
		}
	}

	summary := fmt.Sprintf("%d of %d found", len(found), len(statuses))
	if len(found) > 0 {
		summary += ": " + joinComma(found)
	}
	if probeErrors > 0 {
		return healthCheck{
			Name:    "Editors",
			Status:  "warning",
			Summary: fmt.Sprintf("%s; %d could not be probed", summary, probeErrors),
		}
	}
	if len(found) == 0 {
		return healthCheck{Name: "Editors", Status: "warning", Summary: summary}
	}
	return healthCheck{Name: "Editors", Status: "ok", Summary: summary}
}

func checkPreferred(cfg config.Config, statuses []editors.Status) healthCheck {
	if cfg.Editor == "" {
		return healthCheck{Name: "Preferred", Status: "ok", Summary: "not configured; first installed editor is used"}
	}

	want, ok := cfg.PreferredEditor()
	if !ok {
		return healthCheck{
			Name:    "Preferred",
			Status:  "warning",
			Summary: fmt.Sprintf("%q is not a supported label; see `editorscan labels`", cfg.Editor),
		}
	}

	for _, st := range statuses {
		if st.Editor != want {
			continue
		}
		if st.Found {
			return healthCheck{Name: "Preferred", Status: "ok", Summary: fmt.Sprintf("%s at %s", want, st.Path)}
		}
		summary := fmt.Sprintf("%s is not installed", want)
		if len(st.Hints) > 0 {
			summary += "; " + st.Hints[0]
		}
		return healthCheck{Name: "Preferred", Status: "warning", Summary: summary}
	}
	return healthCheck{Name: "Preferred", Status: "error", Summary: fmt.Sprintf("%s was not scanned", want)}
}

func writeDoctorResult(cmd *cobra.Command, configPath string, checks []healthCheck) error {
	if outputJSON {
		return writeJSON(cmd, checks)
	}

	bold := lipgloss.NewStyle().Bold(true).Inline(true)
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Inline(true)
	yellow := lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Inline(true)
	red := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Inline(true)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, bold.Render("EDITOR HEALTH:")+" "+configPath)

	for _, c := range checks {
		var statusStr string
		switch c.Status {
		case "ok":
			statusStr = green.Render("OK")
		case "warning":
			statusStr = yellow.Render("WARN")
		case "error":
			statusStr = red.Render("ERROR")
		}
		fmt.Fprintf(out, "  %-12s %s    %s\n", c.Name+":", statusStr, c.Summary)
	}

	return nil
}

func joinComma(items []string) string {
	if len(items) == 0 {
		return ""
	}
	result := items[0]
	for _, item := range items[1:] {
		result += ", " + item
	}
	return result
}
