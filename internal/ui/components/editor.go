package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// Editor is a multi-line text area used to edit question text.
type Editor struct {
	Model textarea.Model
}

// NewEditor creates an editor holding text.
func NewEditor(text string, width, height int) Editor {
	ta := textarea.New()
	ta.Placeholder = "Question text..."
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetWidth(width)
	ta.SetHeight(height)
	ta.SetValue(text)
	return Editor{Model: ta}
}

// Focus focuses the text area.
func (e *Editor) Focus() tea.Cmd {
	return e.Model.Focus()
}

// Update handles messages.
func (e Editor) Update(msg tea.Msg) (Editor, tea.Cmd) {
	var cmd tea.Cmd
	e.Model, cmd = e.Model.Update(msg)
	return e, cmd
}

// View renders the editor.
func (e Editor) View() string {
	return e.Model.View()
}

// Value returns the edited text.
func (e Editor) Value() string {
	return e.Model.Value()
}
