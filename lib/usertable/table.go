// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package usertable

import (
	"github.com/bureau-foundation/usertable/lib/user"
)

// Table is the mutable state behind the user table: the loaded
// records, the search term, the current page, the selection and the
// optional edit session.
type Table struct {
	records  []user.Record
	pageSize int
	search   string
	page     int

	selection Selection
	edit      *EditSession
}

// NewTable returns an empty table. A pageSize below 1 selects
// [DefaultPageSize].
func NewTable(pageSize int) *Table {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Table{pageSize: pageSize, page: 1}
}

// Load replaces the record set. Records with an id that already
// appeared earlier in the slice are dropped and their ids returned.
// Selected ids that no longer exist are pruned, an edit session whose
// target disappeared is closed, and the page is re-clamped.
func (table *Table) Load(records []user.Record) (duplicates []int) {
	seen := make(map[int]struct{}, len(records))
	loaded := make([]user.Record, 0, len(records))
	for _, record := range records {
		if _, exists := seen[record.ID]; exists {
			duplicates = append(duplicates, record.ID)
			continue
		}
		seen[record.ID] = struct{}{}
		loaded = append(loaded, record)
	}
	table.records = loaded

	table.selection.Retain(func(id int) bool {
		_, exists := seen[id]
		return exists
	})
	if table.edit != nil {
		if _, exists := seen[table.edit.TargetID]; !exists {
			table.edit = nil
		}
	}
	table.clampPage()
	return duplicates
}

// DuplicateIDs returns, in order, the id of every record whose id
// already appeared earlier in records. These are the records Load
// drops.
func DuplicateIDs(records []user.Record) []int {
	var duplicates []int
	seen := make(map[int]struct{}, len(records))
	for _, record := range records {
		if _, exists := seen[record.ID]; exists {
			duplicates = append(duplicates, record.ID)
			continue
		}
		seen[record.ID] = struct{}{}
	}
	return duplicates
}

// Records returns a copy of the full record set in load order.
func (table *Table) Records() []user.Record {
	records := make([]user.Record, len(table.records))
	copy(records, table.records)
	return records
}

// Len returns the number of records in the set, ignoring the search.
func (table *Table) Len() int {
	return len(table.records)
}

// PageSize returns the fixed number of rows per page.
func (table *Table) PageSize() int {
	return table.pageSize
}

// Search returns the current search term.
func (table *Table) Search() string {
	return table.search
}

// SetSearch replaces the search term and returns to the first page.
func (table *Table) SetSearch(term string) {
	table.search = term
	table.page = 1
}

// Page returns the current 1-based page number.
func (table *Table) Page() int {
	return table.page
}

// PageCount returns the number of pages of the filtered set.
func (table *Table) PageCount() int {
	return PageCount(len(table.filtered()), table.pageSize)
}

// GoToPage moves to page, clamped into the valid range.
func (table *Table) GoToPage(page int) {
	table.page = ClampPage(page, table.PageCount())
}

func (table *Table) FirstPage()    { table.GoToPage(1) }
func (table *Table) PreviousPage() { table.GoToPage(table.page - 1) }
func (table *Table) NextPage()     { table.GoToPage(table.page + 1) }
func (table *Table) LastPage()     { table.GoToPage(table.PageCount()) }

// Visible returns the records on the current page.
func (table *Table) Visible() []user.Record {
	return Paginate(table.filtered(), table.page, table.pageSize)
}

// ToggleOne flips the selection state of id.
func (table *Table) ToggleOne(id int) {
	table.selection.Toggle(id)
}

// ToggleAll clears the selection when it holds exactly the visible
// page, otherwise selects exactly the visible page. Selections on other
// pages are dropped in the second case.
func (table *Table) ToggleAll() {
	visible := table.Visible()
	if table.selection.Equals(visible) {
		table.selection.Clear()
		return
	}
	table.selection.Replace(visible)
}

// IsAllSelected reports whether the visible page is non-empty and the
// selection holds exactly its ids.
func (table *Table) IsAllSelected() bool {
	visible := table.Visible()
	return len(visible) > 0 && table.selection.Equals(visible)
}

// IsSelected reports whether id is selected.
func (table *Table) IsSelected(id int) bool {
	return table.selection.Has(id)
}

// SelectedIDs returns the selected ids in ascending order.
func (table *Table) SelectedIDs() []int {
	return table.selection.IDs()
}

// SelectionCount returns the number of selected ids.
func (table *Table) SelectionCount() int {
	return table.selection.Len()
}

// HiddenSelectionCount returns how many selected ids are not on the
// visible page, either because they sit on another page or because the
// search hides them.
func (table *Table) HiddenSelectionCount() int {
	visibleSelected := 0
	for _, record := range table.Visible() {
		if table.selection.Has(record.ID) {
			visibleSelected++
		}
	}
	return table.selection.Len() - visibleSelected
}

// DeleteSelected removes every selected record, including ones not on
// the visible page, and clears the selection. It returns the number of
// records removed.
func (table *Table) DeleteSelected() int {
	if table.selection.Len() == 0 {
		return 0
	}
	removed := table.removeWhere(func(record user.Record) bool {
		return table.selection.Has(record.ID)
	})
	table.selection.Clear()
	table.clampPage()
	return removed
}

// DeleteOne removes the record with the given id. It also drops the id
// from the selection and closes an edit session targeting it. It
// reports whether a record was removed.
func (table *Table) DeleteOne(id int) bool {
	removed := table.removeWhere(func(record user.Record) bool {
		return record.ID == id
	})
	if removed == 0 {
		return false
	}
	table.selection.Remove(id)
	if table.edit != nil && table.edit.TargetID == id {
		table.edit = nil
	}
	table.clampPage()
	return true
}

// removeWhere filters the record set in place and also closes an edit
// session whose target was removed.
func (table *Table) removeWhere(remove func(user.Record) bool) int {
	kept := table.records[:0]
	removed := 0
	for _, record := range table.records {
		if remove(record) {
			removed++
			if table.edit != nil && table.edit.TargetID == record.ID {
				table.edit = nil
			}
			continue
		}
		kept = append(kept, record)
	}
	clear(table.records[len(kept):])
	table.records = kept
	return removed
}

func (table *Table) filtered() []user.Record {
	return Filter(table.records, table.search)
}

func (table *Table) clampPage() {
	table.page = ClampPage(table.page, table.PageCount())
}

func (table *Table) indexOf(id int) int {
	for index, record := range table.records {
		if record.ID == id {
			return index
		}
	}
	return -1
}
