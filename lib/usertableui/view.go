// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package usertableui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/usertable/lib/tui"
	"github.com/bureau-foundation/usertable/lib/user"
	"github.com/bureau-foundation/usertable/lib/usertable"
)

// noDataText is shown in place of rows when the page is empty.
const noDataText = "No data found"

// View implements tea.Model. The screen rows are, top to bottom: title,
// search bar, column header, rule, body rows, rule, pager, status.
func (model Model) View() string {
	width := model.width

	sections := []string{
		model.renderTitle(),
		model.search.View(model.theme, width),
		model.renderColumnHeader(),
		model.renderRule(),
	}
	sections = append(sections, model.renderBody()...)
	sections = append(sections,
		model.renderRule(),
		model.renderPager(),
		model.renderStatus(),
	)
	return strings.Join(sections, "\n")
}

func (model Model) renderTitle() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(model.theme.HeaderForeground)
	faintStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)

	title := " " + titleStyle.Render("Users")
	if name := model.sourceName(); name != "" {
		title += faintStyle.Render("  " + name)
	}

	var counts string
	if model.view.Search != "" {
		counts = fmt.Sprintf("%d of %d users ", model.view.FilteredCount, model.view.TotalCount)
	} else {
		counts = fmt.Sprintf("%d users ", model.view.TotalCount)
	}

	gap := model.width - lipgloss.Width(title) - lipgloss.Width(counts)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + faintStyle.Render(counts)
}

func (model Model) renderColumnHeader() string {
	layout := layoutColumns(model.width)
	style := lipgloss.NewStyle().Bold(true).Foreground(model.theme.HeaderForeground)

	cells := []string{
		" ",
		checkbox(model.view.AllSelected),
		tui.FitCell("ID", idWidth),
		tui.FitCell("Name", layout.name),
		tui.FitCell("Email", layout.email),
		tui.FitCell("Role", layout.role),
		tui.FitCell("Actions", actionsWidth),
	}
	return style.Render(cells[0] + strings.Join(cells[1:], " "))
}

func (model Model) renderRule() string {
	return lipgloss.NewStyle().
		Foreground(model.theme.BorderColor).
		Render(strings.Repeat("─", model.width))
}

// renderBody returns one line per visible row, or the empty-page line.
func (model Model) renderBody() []string {
	if model.view.Empty() {
		text := noDataText
		if model.loading {
			text = "Loading users…"
		}
		style := lipgloss.NewStyle().Foreground(model.theme.FaintText).Width(model.width).Align(lipgloss.Center)
		return []string{style.Render(text)}
	}

	layout := layoutColumns(model.width)
	lines := make([]string, len(model.view.Rows))
	for index, row := range model.view.Rows {
		lines[index] = model.renderRow(row, index == model.cursor && model.focus != FocusSearch, layout)
	}
	return lines
}

func (model Model) renderRow(row usertable.Row, atCursor bool, layout columnLayout) string {
	base := lipgloss.NewStyle().Foreground(model.theme.NormalText)
	switch {
	case row.Editing:
		base = base.Background(model.theme.EditBackground)
	case atCursor:
		base = base.Background(model.theme.CursorBackground).Foreground(model.theme.CursorForeground)
	case row.Selected:
		base = base.Background(model.theme.CheckedBackground)
	}

	marker := " "
	if atCursor {
		marker = "▌"
	}

	checkStyle := base
	if row.Selected {
		checkStyle = checkStyle.Foreground(model.theme.CheckMark)
	}

	var name, email, role, actions string
	if row.Editing && model.form != nil {
		name = model.form.cell(user.FieldName, layout.name, model.theme)
		email = model.form.cell(user.FieldEmail, layout.email, model.theme)
		role = model.form.cell(user.FieldRole, layout.role, model.theme)
		actions = actionLabels(saveLabel, cancelLabel)
	} else {
		name = tui.FitCell(row.Record.Name, layout.name)
		email = tui.FitCell(row.Record.Email, layout.email)
		role = base.Foreground(model.theme.RoleColor(row.Record.Role)).Render(tui.FitCell(row.Record.Role, layout.role))
		actions = actionLabels(editLabel, deleteLabel)
	}

	separator := base.Render(" ")
	return base.Render(marker) +
		checkStyle.Render(checkbox(row.Selected)) + separator +
		base.Render(tui.FitCell(strconv.Itoa(row.Record.ID), idWidth)) + separator +
		base.Render(name) + separator +
		base.Render(email) + separator +
		role + separator +
		base.Foreground(model.theme.FaintText).Render(tui.FitCell(actions, actionsWidth))
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

func actionLabels(first, second string) string {
	return first + strings.Repeat(" ", actionGap) + second
}

func (model Model) renderPager() string {
	segments := layoutPager(model.view)

	var builder strings.Builder
	x := 0
	for _, segment := range segments {
		if segment.startX > x {
			builder.WriteString(strings.Repeat(" ", segment.startX-x))
		}
		builder.WriteString(model.pagerStyle(segment).Render(segment.label))
		x = segment.endX
	}
	return builder.String()
}

func (model Model) pagerStyle(segment pagerSegment) lipgloss.Style {
	switch {
	case segment.current:
		return lipgloss.NewStyle().Bold(true).Underline(true).Foreground(model.theme.PagerCurrent)
	case segment.action == pagerDeleteSelected && segment.enabled:
		return lipgloss.NewStyle().Bold(true).Foreground(model.theme.DangerForeground)
	case segment.enabled:
		return lipgloss.NewStyle().Foreground(model.theme.PagerEnabled)
	default:
		return lipgloss.NewStyle().Foreground(model.theme.PagerDisabled)
	}
}

// renderStatus renders the bottom line: a recent log record when one
// is showing, otherwise the load state and the key help for the
// current focus.
func (model Model) renderStatus() string {
	helpStyle := lipgloss.NewStyle().Foreground(model.theme.HelpText)

	if model.statusMessage != "" {
		color := model.theme.StatusWarn
		if model.statusLevel >= slog.LevelError {
			color = model.theme.StatusError
		}
		return lipgloss.NewStyle().Foreground(color).Bold(true).
			Render(tui.FitCell(" "+model.statusMessage, model.width))
	}

	var parts []string
	switch {
	case model.loading:
		parts = append(parts, "Loading users…")
	case model.loadError != "":
		parts = append(parts, lipgloss.NewStyle().Foreground(model.theme.StatusError).Render("Load failed"))
	}

	parts = append(parts, fmt.Sprintf("Page %d/%d", model.view.Page, model.view.PageCount))
	if model.view.SelectedCount > 0 {
		selected := fmt.Sprintf("%d selected", model.view.SelectedCount)
		if model.view.HiddenSelected > 0 {
			selected += fmt.Sprintf(" (%d not shown)", model.view.HiddenSelected)
		}
		parts = append(parts, selected)
	}

	switch model.focus {
	case FocusSearch:
		parts = append(parts, "[SEARCH] Enter done  Esc clear")
	case FocusEdit:
		parts = append(parts, "[EDIT] Tab next field  Enter save  Esc cancel")
	default:
		parts = append(parts, "q quit  ↑↓ move  ←→ page  / search  space select  a page  e edit  d delete  D delete selected")
	}

	return helpStyle.Render(" " + strings.Join(parts, "  "))
}
