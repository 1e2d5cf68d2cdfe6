package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"editorscan/internal/editors"
)

// RunPicker runs model as a bubbletea program reading keys from in and
// drawing to out, and returns the user's choice once the program exits.
func RunPicker(in io.Reader, out io.Writer, model PickerModel) (editors.FoundEditor, bool, error) {
	p := tea.NewProgram(model, tea.WithInput(in), tea.WithOutput(out))

	finalModel, err := p.Run()
	if err != nil {
		return editors.FoundEditor{}, false, fmt.Errorf("run picker: %w", err)
	}
	m, ok := finalModel.(PickerModel)
	if !ok {
		return editors.FoundEditor{}, false, fmt.Errorf("unexpected picker model %T", finalModel)
	}
	choice, chosen := m.Choice()
	return choice, chosen, nil
}
