package engine

import (
	"context"

	"autoclean/internal/classify"
	"autoclean/internal/model"
)

// MockPrompter is a scripted Prompter for tests: category choices are looked
// up by file name, and Confirm always answers ConfirmAnswer.
type MockPrompter struct {
	// CategoryChoices maps file name to the label to pick. A missing entry
	// or empty label means skip.
	CategoryChoices map[string]string
	ConfirmAnswer   bool
	SelectCalls     int
	ConfirmCalls    int
}

// SelectCategory returns the scripted choice for the file.
func (m *MockPrompter) SelectCategory(_ context.Context, file *model.FileRecord, _ []string, _ string) (string, error) {
	m.SelectCalls++
	if choice, ok := m.CategoryChoices[file.Name]; ok {
		return choice, nil
	}
	return classify.Skip, nil
}

// Confirm returns the scripted answer.
func (m *MockPrompter) Confirm(_ context.Context, _ string) (bool, error) {
	m.ConfirmCalls++
	return m.ConfirmAnswer, nil
}
