// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package usertableui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/usertable/lib/tui"
	"github.com/bureau-foundation/usertable/lib/usertable"
)

// Fixed screen rows. Everything below rowsStartY depends on how many
// rows the current page has.
const (
	titleY     = 0
	searchY    = 1
	headerY    = 2
	rowsStartY = 4 // Header is followed by a rule.
)

// defaultWidth is used until the first WindowSizeMsg arrives.
const defaultWidth = 100

// Column widths that do not scale with the terminal.
const (
	cursorWidth   = 1
	checkboxWidth = 3
	idWidth       = 5
	actionsWidth  = 13
	minimumWidth  = 6
)

// Action labels in the Actions column. The edit row swaps them for
// save/cancel at the same offsets.
const (
	editLabel   = "edit"
	deleteLabel = "delete"
	saveLabel   = "save"
	cancelLabel = "cancel"
	actionGap   = 2
)

// columnLayout holds the display width of every column. Columns are
// separated by one space and preceded by the cursor marker.
type columnLayout struct {
	name  int
	email int
	role  int
}

func layoutColumns(width int) columnLayout {
	fixed := cursorWidth + checkboxWidth + 1 + idWidth + 1 + actionsWidth + 3
	flexible := width - fixed
	widths := tui.ColumnWidths(flexible, minimumWidth, 3, 4, 2)
	return columnLayout{name: widths[0], email: widths[1], role: widths[2]}
}

// checkboxX returns the screen columns [start, end) of the checkbox.
func (layout columnLayout) checkboxX() (int, int) {
	return cursorWidth, cursorWidth + checkboxWidth
}

// actionsX returns the first screen column of the Actions column.
func (layout columnLayout) actionsX() int {
	return cursorWidth + checkboxWidth + 1 + idWidth + 1 +
		layout.name + 1 + layout.email + 1 + layout.role + 1
}

// rowAction is what a click on a row's Actions cell does.
type rowAction int

const (
	rowActionNone rowAction = iota
	rowActionEdit
	rowActionDelete
	rowActionSave
	rowActionCancel
)

// actionAt maps a screen column to the action label under it.
func (layout columnLayout) actionAt(x int, editing bool) rowAction {
	first, second := editLabel, deleteLabel
	firstAction, secondAction := rowActionEdit, rowActionDelete
	if editing {
		first, second = saveLabel, cancelLabel
		firstAction, secondAction = rowActionSave, rowActionCancel
	}
	start := layout.actionsX()
	if x >= start && x < start+len(first) {
		return firstAction
	}
	start += len(first) + actionGap
	if x >= start && x < start+len(second) {
		return secondAction
	}
	return rowActionNone
}

// bodyHeight returns the number of screen rows the table body uses for
// view: one per row, or one for the "No data found" line.
func bodyHeight(view usertable.PageView) int {
	if view.Empty() {
		return 1
	}
	return len(view.Rows)
}

// pagerY returns the screen row of the pager line. The body is
// followed by a rule.
func pagerY(view usertable.PageView) int {
	return rowsStartY + bodyHeight(view) + 1
}

// pagerAction is what a click on a pager segment does.
type pagerAction int

const (
	pagerDeleteSelected pagerAction = iota
	pagerFirst
	pagerPrevious
	pagerPage
	pagerNext
	pagerLast
	pagerEllipsis
)

// pagerSegment is one clickable label on the pager line.
type pagerSegment struct {
	label   string
	action  pagerAction
	page    int // For pagerPage.
	enabled bool
	current bool

	// Screen columns [startX, endX).
	startX int
	endX   int
}

// maxPageLinks bounds the number of numbered page links shown at once.
const maxPageLinks = 9

// layoutPager returns the pager segments for view with their screen
// positions. The Delete Selected button sits at the left edge and the
// page links follow after a gap.
func layoutPager(view usertable.PageView) []pagerSegment {
	hasPrevious := view.Page > 1
	hasNext := view.Page < view.PageCount

	segments := []pagerSegment{
		{label: "[Delete Selected]", action: pagerDeleteSelected, enabled: view.SelectedCount > 0},
		{label: "« First", action: pagerFirst, enabled: hasPrevious},
		{label: "‹ Prev", action: pagerPrevious, enabled: hasPrevious},
	}

	first, last := pageWindow(view.Page, view.PageCount)
	if first > 1 {
		segments = append(segments, pagerSegment{label: "…", action: pagerEllipsis})
	}
	for page := first; page <= last; page++ {
		segments = append(segments, pagerSegment{
			label:   strconv.Itoa(page),
			action:  pagerPage,
			page:    page,
			enabled: page != view.Page,
			current: page == view.Page,
		})
	}
	if last < view.PageCount {
		segments = append(segments, pagerSegment{label: "…", action: pagerEllipsis})
	}

	segments = append(segments,
		pagerSegment{label: "Next ›", action: pagerNext, enabled: hasNext},
		pagerSegment{label: "Last »", action: pagerLast, enabled: hasNext},
	)

	x := 1
	for index := range segments {
		if index == 1 {
			x += 3
		} else if index > 1 {
			x++
		}
		segments[index].startX = x
		x += lipgloss.Width(segments[index].label)
		segments[index].endX = x
	}
	return segments
}

// pageWindow returns the first and last page numbers to link, keeping
// page near the middle of at most maxPageLinks links.
func pageWindow(page, pageCount int) (int, int) {
	if pageCount <= maxPageLinks {
		return 1, pageCount
	}
	first := page - maxPageLinks/2
	if first < 1 {
		first = 1
	}
	last := first + maxPageLinks - 1
	if last > pageCount {
		last = pageCount
		first = last - maxPageLinks + 1
	}
	return first, last
}

// segmentAt returns the pager segment covering screen column x.
func segmentAt(segments []pagerSegment, x int) (pagerSegment, bool) {
	for _, segment := range segments {
		if x >= segment.startX && x < segment.endX {
			return segment, true
		}
	}
	return pagerSegment{}, false
}
