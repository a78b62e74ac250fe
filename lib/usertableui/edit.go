// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package usertableui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/usertable/lib/tui"
	"github.com/bureau-foundation/usertable/lib/user"
)

// editForm holds one text input per editable field of the row being
// edited. Exactly one input has focus.
type editForm struct {
	targetID int
	inputs   []textinput.Model
	focused  int
}

// newEditForm seeds the inputs from draft and focuses the first one.
func newEditForm(draft user.Record) (*editForm, tea.Cmd) {
	form := &editForm{
		targetID: draft.ID,
		inputs:   make([]textinput.Model, len(user.EditableFields)),
	}
	for index, field := range user.EditableFields {
		input := textinput.New()
		input.Prompt = ""
		input.Placeholder = field.Label()
		input.CharLimit = 256
		input.SetValue(draft.Get(field))
		input.CursorEnd()
		form.inputs[index] = input
	}
	return form, form.inputs[0].Focus()
}

// field returns the field whose input has focus.
func (form *editForm) field() user.Field {
	return user.EditableFields[form.focused]
}

// value returns the current text of field's input.
func (form *editForm) value(field user.Field) string {
	for index, editable := range user.EditableFields {
		if editable == field {
			return form.inputs[index].Value()
		}
	}
	return ""
}

// cycle moves focus by delta inputs, wrapping around.
func (form *editForm) cycle(delta int) tea.Cmd {
	form.inputs[form.focused].Blur()
	count := len(form.inputs)
	form.focused = ((form.focused+delta)%count + count) % count
	return form.inputs[form.focused].Focus()
}

// update forwards a message to the focused input. It reports whether
// the value changed.
func (form *editForm) update(message tea.Msg) (bool, tea.Cmd) {
	input := &form.inputs[form.focused]
	before := input.Value()
	var cmd tea.Cmd
	*input, cmd = input.Update(message)
	return input.Value() != before, cmd
}

// cell renders field's input at width columns.
func (form *editForm) cell(field user.Field, width int, theme tui.Theme) string {
	for index, editable := range user.EditableFields {
		if editable != field {
			continue
		}
		input := form.inputs[index]
		input.Width = width - 1
		input.TextStyle = lipgloss.NewStyle().Foreground(theme.CursorForeground)
		input.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.FaintText)
		return tui.FitCell(input.View(), width)
	}
	return tui.FitCell("", width)
}
