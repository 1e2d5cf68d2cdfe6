package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"editorscan/internal/tui"
)

// ErrNothingChosen is returned when the picker is dismissed.
var ErrNothingChosen = errors.New("no editor chosen")

func newPickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Interactively choose an installed editor and print its path",
		Args:  cobra.NoArgs,
		RunE:  runPick,
	}
}

func runPick(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	found, err := s.detector.Available(cmd.Context())
	if err != nil {
		return err
	}
	if len(found) == 0 {
		return ErrNoEditor
	}

	// The picker draws on stderr so stdout carries only the chosen path.
	if tui.DetectMode(cmd.ErrOrStderr(), outputJSON) != tui.ModeTUI {
		choice, err := choose(found, s.cfg.Editor, s.log)
		if err != nil {
			return err
		}
		return printChoice(cmd, choice)
	}

	preferred, hasPreferred := s.cfg.PreferredEditor()
	model := tui.NewPickerModel("Choose an editor", found, preferred, hasPreferred)
	choice, ok, err := tui.RunPicker(cmd.InOrStdin(), cmd.ErrOrStderr(), model)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNothingChosen
	}
	return printChoice(cmd, choice)
}
