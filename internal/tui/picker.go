// Package tui implements the interactive terminal components.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Folder is one selectable entry in the picker.
type Folder struct {
	Name      string
	Path      string
	FileCount int
}

// KeyMap defines the picker's keyboard shortcuts.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Accept key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	pickerTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FAFFF"))
	cursorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAFFF"))
	selectedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// PickerModel is a multi-select list of folders to organize.
type PickerModel struct {
	keymap   KeyMap
	folders  []Folder
	selected map[int]bool
	cursor   int
	accepted bool
}

// NewPicker creates a picker over the given folders.
func NewPicker(folders []Folder) PickerModel {
	return PickerModel{
		keymap:   DefaultKeyMap(),
		folders:  folders,
		selected: make(map[int]bool),
	}
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keymap.Down):
		if m.cursor < len(m.folders)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keymap.Toggle):
		m.selected[m.cursor] = !m.selected[m.cursor]
	case key.Matches(keyMsg, m.keymap.Accept):
		m.accepted = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keymap.Quit):
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m PickerModel) View() string {
	var b strings.Builder

	b.WriteString(pickerTitleStyle.Render("📁 Select folders to organize") + "\n\n")

	for i, folder := range m.folders {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		check := "[ ]"
		if m.selected[i] {
			check = selectedStyle.Render("[x]")
		}
		b.WriteString(fmt.Sprintf("%s%s %s (%s) - %d files\n",
			cursor, check, titleCase(folder.Name), folder.Path, folder.FileCount))
	}

	b.WriteString("\n" + helpStyle.Render("space toggle · enter confirm · q quit"))
	return b.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Selection returns the chosen folder paths in display order, or nil when
// the picker was quit without confirming.
func (m PickerModel) Selection() []string {
	if !m.accepted {
		return nil
	}
	var paths []string
	for i, folder := range m.folders {
		if m.selected[i] {
			paths = append(paths, folder.Path)
		}
	}
	return paths
}

// PickFolders runs the picker and returns the selected paths. An empty slice
// means the user selected nothing (or quit): the caller exits cleanly.
func PickFolders(folders []Folder) ([]string, error) {
	if len(folders) == 0 {
		return nil, nil
	}

	program := tea.NewProgram(NewPicker(folders))
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("folder picker failed: %w", err)
	}

	picker, ok := final.(PickerModel)
	if !ok {
		return nil, fmt.Errorf("unexpected picker model type %T", final)
	}
	return picker.Selection(), nil
}
