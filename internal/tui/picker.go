package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"editorscan/internal/editors"
)

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Quit   key.Binding
}

func defaultPickerKeys() pickerKeyMap {
	return pickerKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// PickerModel is a bubbletea model that lets the user choose one of the
// installed editors.
type PickerModel struct {
	title  string
	items  []editors.FoundEditor
	cursor int
	chosen int
	done   bool
	keys   pickerKeyMap
}

// NewPickerModel creates a picker over items. The cursor starts on the
// preferred editor when it is among them.
func NewPickerModel(title string, items []editors.FoundEditor, preferred editors.Editor, hasPreferred bool) PickerModel {
	m := PickerModel{
		title:  title,
		items:  items,
		chosen: -1,
		keys:   defaultPickerKeys(),
	}
	if hasPreferred {
		for i, item := range items {
			if item.Editor == preferred {
				m.cursor = i
				break
			}
		}
	}
	return m
}

// Init satisfies the tea.Model interface.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update satisfies the tea.Model interface.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Choose):
		if len(m.items) > 0 {
			m.chosen = m.cursor
		}
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// View satisfies the tea.Model interface.
func (m PickerModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(m.title))
	b.WriteString("\n\n")

	width := 0
	for _, item := range m.items {
		width = max(width, len(item.Editor.String()))
	}
	for i, item := range m.items {
		line := fmt.Sprintf("%-*s  %s", width, item.Editor.String(), item.Path)
		if i == m.cursor {
			b.WriteString(CursorStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	help := []string{}
	for _, binding := range []key.Binding{m.keys.Up, m.keys.Down, m.keys.Choose, m.keys.Quit} {
		h := binding.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(strings.Join(help, " • ")))
	b.WriteString("\n")
	return b.String()
}

// Choice returns the editor the user selected. The boolean is false when the
// picker was dismissed.
func (m PickerModel) Choice() (editors.FoundEditor, bool) {
	if m.chosen < 0 || m.chosen >= len(m.items) {
		return editors.FoundEditor{}, false
	}
	return m.items[m.chosen], true
}
