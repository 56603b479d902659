// Package tui implements the interactive selection collaborator with
// bubbletea.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"versus/internal/adapters/tui/views"
	"versus/internal/ports"
)

// Selector runs one compare prompt per call.
type Selector struct{}

// Ensure Selector implements ports.Selector
var _ ports.Selector = (*Selector)(nil)

// NewSelector creates a new Selector
func NewSelector() *Selector {
	return &Selector{}
}

// Select presents the candidates and returns the chosen index, or false
// when the user aborted.
func (s *Selector) Select(candidates []string) (int, bool, error) {
	model := views.NewCompareModel(candidates)
	p := tea.NewProgram(model)

	final, err := p.Run()
	if err != nil {
		return 0, false, fmt.Errorf("run compare prompt: %w", err)
	}

	compare, ok := final.(*views.CompareModel)
	if !ok {
		return 0, false, fmt.Errorf("unexpected model type %T", final)
	}
	if !compare.Chosen() {
		return 0, false, nil
	}
	return compare.Choice(), true, nil
}
