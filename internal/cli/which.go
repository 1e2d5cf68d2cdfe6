package cli

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"editorscan/internal/editors"
)

// ErrNoEditor is returned when none of the supported editors is installed.
var ErrNoEditor = errors.New("no supported editor is installed")

var whichEditor string

func newWhichCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "which [label]",
		Short: "Print the path of the preferred installed editor",
		Long: "Print the path of the preferred installed editor.\n\n" +
			"The editor label is taken from the argument, then --editor, then the\n" +
			"config file. When it is unset, unknown, or not installed, the first\n" +
			"installed editor is used.",
		Args: cobra.MaximumNArgs(1),
		RunE: runWhich,
	}
	cmd.Flags().StringVar(&whichEditor, "editor", "", "Preferred editor label, e.g. \"Visual Studio Code\"")
	return cmd
}

func runWhich(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if s.cfgErr != nil {
		return s.cfgErr
	}

	label := s.cfg.Editor
	if whichEditor != "" {
		label = whichEditor
	}
	if len(args) == 1 {
		label = args[0]
	}

	found, err := s.detector.Available(cmd.Context())
	if err != nil {
		return err
	}

	choice, err := choose(found, label, s.log)
	if err != nil {
		return err
	}
	return printChoice(cmd, choice)
}

// choose picks the installed editor matching label, or the first installed
// editor when label is empty, unrecognised, or not installed.
func choose(found []editors.FoundEditor, label string, log logrus.FieldLogger) (editors.FoundEditor, error) {
	if label != "" {
		want, ok := editors.Parse(label)
		if ok {
			for _, rec := range found {
				if rec.Editor == want {
					return rec, nil
				}
			}
			log.WithField("editor", label).Warn("preferred editor is not installed")
		} else {
			log.WithField("editor", label).Warn("unrecognised editor label")
		}
	}

	if len(found) == 0 {
		return editors.FoundEditor{}, ErrNoEditor
	}
	return found[0], nil
}

func printChoice(cmd *cobra.Command, choice editors.FoundEditor) error {
	if outputJSON {
		return writeJSON(cmd, choice)
	}
	fmt.Fprintln(cmd.OutOrStdout(), choice.Path)
	return nil
}
