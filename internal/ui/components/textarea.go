package components

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// TextArea wraps the bubbles textarea for free-text answers.
type TextArea struct {
	Model textarea.Model
}

func NewTextArea(placeholder string, charLimit int) TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = charLimit
	ta.SetHeight(8)
	ta.Focus()
	return TextArea{Model: ta}
}

func (t TextArea) Init() tea.Cmd {
	return t.Model.Focus()
}

func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextArea) View(width int) string {
	t.Model.SetWidth(width)
	return t.Model.View()
}

// Value is the trimmed text.
func (t TextArea) Value() string {
	return strings.TrimSpace(t.Model.Value())
}

// SetValue replaces the text.
func (t *TextArea) SetValue(s string) {
	t.Model.SetValue(s)
}
