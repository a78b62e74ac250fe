// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package usertableui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bureau-foundation/usertable/lib/tui"
	"github.com/bureau-foundation/usertable/lib/usertable"
)

// RenderPage renders view as a static bordered table followed by a
// one-line page summary. A width of zero or less lets the table size
// itself to its content.
func RenderPage(view usertable.PageView, theme tui.Theme, width int) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderForeground).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Foreground(theme.NormalText).Padding(0, 1)
	faintStyle := lipgloss.NewStyle().Foreground(theme.FaintText)

	rendered := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.BorderColor)).
		Headers(checkbox(view.AllSelected), "ID", "Name", "Email", "Role")

	if view.Empty() {
		rendered = rendered.Row("", "", noDataText, "", "")
	}
	for _, row := range view.Rows {
		rendered = rendered.Row(
			checkbox(row.Selected),
			strconv.Itoa(row.Record.ID),
			row.Record.Name,
			row.Record.Email,
			row.Record.Role,
		)
	}

	rendered = rendered.StyleFunc(func(rowIndex, column int) lipgloss.Style {
		if rowIndex == table.HeaderRow {
			return headerStyle
		}
		if view.Empty() {
			return cellStyle.Foreground(theme.FaintText)
		}
		style := cellStyle
		row := view.Rows[rowIndex]
		if row.Selected {
			style = style.Background(theme.CheckedBackground)
		}
		if column == 4 {
			style = style.Foreground(theme.RoleColor(row.Record.Role))
		}
		return style
	})
	if width > 0 {
		rendered = rendered.Width(width)
	}

	return rendered.Render() + "\n" + faintStyle.Render(pageSummary(view))
}

// pageSummary describes the page position and counts in one line.
func pageSummary(view usertable.PageView) string {
	summary := fmt.Sprintf("Page %d of %d", view.Page, view.PageCount)
	if view.Search != "" {
		summary += fmt.Sprintf(" · %d of %d users match %q", view.FilteredCount, view.TotalCount, view.Search)
	} else {
		summary += fmt.Sprintf(" · %d users", view.TotalCount)
	}
	return summary
}
