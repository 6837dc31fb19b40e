package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFolders() []Folder {
	return []Folder{
		{Name: "downloads", Path: "/home/u/Downloads", FileCount: 42},
		{Name: "desktop", Path: "/home/u/Desktop", FileCount: 7},
		{Name: "pictures", Path: "/home/u/Pictures", FileCount: 3},
	}
}

func press(m PickerModel, keys ...string) PickerModel {
	for _, k := range keys {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		if k == "enter" {
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		}
		updated, _ := m.Update(msg)
		m = updated.(PickerModel)
	}
	return m
}

func TestPickerToggleAndAccept(t *testing.T) {
	m := press(NewPicker(testFolders()), "x", "j", "j", "x", "enter")

	got := m.Selection()
	require.Len(t, got, 2)
	assert.Equal(t, []string{"/home/u/Downloads", "/home/u/Pictures"}, got)
}

func TestPickerQuitWithoutAccept(t *testing.T) {
	m := press(NewPicker(testFolders()), "x", "q")
	assert.Nil(t, m.Selection(), "quitting discards the selection")
}

func TestPickerToggleTwiceDeselects(t *testing.T) {
	m := press(NewPicker(testFolders()), "x", "x", "enter")
	assert.Empty(t, m.Selection())
}

func TestPickerCursorBounds(t *testing.T) {
	// Moving past either end must not panic or wrap.
	m := press(NewPicker(testFolders()), "k", "k", "j", "j", "j", "j", "x", "enter")
	assert.Equal(t, []string{"/home/u/Pictures"}, m.Selection())
}

func TestPickerView(t *testing.T) {
	m := press(NewPicker(testFolders()), "x")
	view := m.View()

	assert.Contains(t, view, "Downloads")
	assert.Contains(t, view, "42 files")
	assert.Contains(t, view, "[x]")
	assert.Contains(t, view, "[ ]")
}

func TestPickFoldersEmptyInput(t *testing.T) {
	paths, err := PickFolders(nil)
	require.NoError(t, err)
	assert.Nil(t, paths)
}
