// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package usertable

import "github.com/bureau-foundation/usertable/lib/user"

// Row is one visible record with its per-row display state.
type Row struct {
	Record user.Record

	// Selected is true when the record's id is in the selection.
	Selected bool

	// Editing is true for the row targeted by the open edit session.
	Editing bool
}

// PageView is a snapshot of everything the view needs to render one
// frame. It shares no mutable state with the Table it came from.
type PageView struct {
	Rows []Row

	Page      int
	PageCount int
	PageSize  int

	// FilteredCount is the number of records matching Search across
	// all pages; TotalCount ignores the search.
	FilteredCount int
	TotalCount    int

	Search string

	AllSelected    bool
	SelectedCount  int
	HiddenSelected int

	// Editing is a copy of the open edit session, or nil.
	Editing *EditSession
}

// Empty reports whether the page has no rows to show.
func (view PageView) Empty() bool {
	return len(view.Rows) == 0
}

// Derive computes the current page from scratch.
func (table *Table) Derive() PageView {
	filtered := table.filtered()
	pageCount := PageCount(len(filtered), table.pageSize)
	page := ClampPage(table.page, pageCount)
	visible := Paginate(filtered, page, table.pageSize)

	view := PageView{
		Rows:          make([]Row, 0, len(visible)),
		Page:          page,
		PageCount:     pageCount,
		PageSize:      table.pageSize,
		FilteredCount: len(filtered),
		TotalCount:    len(table.records),
		Search:        table.search,
		SelectedCount: table.selection.Len(),
	}

	visibleSelected := 0
	for _, record := range visible {
		row := Row{
			Record:   record,
			Selected: table.selection.Has(record.ID),
			Editing:  table.edit != nil && table.edit.TargetID == record.ID,
		}
		if row.Selected {
			visibleSelected++
		}
		view.Rows = append(view.Rows, row)
	}
	view.HiddenSelected = view.SelectedCount - visibleSelected
	view.AllSelected = len(visible) > 0 && view.SelectedCount == len(visible) && visibleSelected == len(visible)

	if table.edit != nil {
		session := *table.edit
		view.Editing = &session
	}
	return view
}
