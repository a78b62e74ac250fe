// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package usertableui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/usertable/lib/tui"
)

// searchPlaceholder is shown in the empty search bar.
const searchPlaceholder = "Search by name, email or role"

// SearchBar is the single-line search input above the table. The term
// is applied on every keystroke; Enter only returns focus to the rows.
type SearchBar struct {
	input textinput.Model
}

// NewSearchBar returns an unfocused, empty search bar.
func NewSearchBar() SearchBar {
	input := textinput.New()
	input.Prompt = " / "
	input.Placeholder = searchPlaceholder
	input.CharLimit = 256
	return SearchBar{input: input}
}

// Value returns the current term.
func (search SearchBar) Value() string {
	return search.input.Value()
}

// SetValue replaces the term and moves the cursor to its end.
func (search *SearchBar) SetValue(term string) {
	search.input.SetValue(term)
	search.input.CursorEnd()
}

// Focus gives the bar keyboard focus and returns the cursor blink
// command.
func (search *SearchBar) Focus() tea.Cmd {
	return search.input.Focus()
}

// Blur removes keyboard focus.
func (search *SearchBar) Blur() {
	search.input.Blur()
}

// Update forwards a message to the input. It reports whether the term
// changed.
func (search *SearchBar) Update(message tea.Msg) (bool, tea.Cmd) {
	before := search.input.Value()
	var cmd tea.Cmd
	search.input, cmd = search.input.Update(message)
	return search.input.Value() != before, cmd
}

// View renders the bar at the given width. Without focus, a non-empty
// term is shown dimmed and an empty one shows the key hint.
func (search SearchBar) View(theme tui.Theme, width int) string {
	if search.input.Focused() {
		search.input.Width = width - lipgloss.Width(search.input.Prompt) - 1
		search.input.PromptStyle = lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)
		search.input.TextStyle = lipgloss.NewStyle().Foreground(theme.NormalText)
		search.input.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.FaintText)
		return search.input.View()
	}

	style := lipgloss.NewStyle().Foreground(theme.FaintText)
	if search.input.Value() == "" {
		return style.Render(tui.FitCell(" / "+searchPlaceholder, width))
	}
	return style.Render(tui.FitCell(" search: "+search.input.Value(), width))
}
