// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package usertable

import (
	"slices"

	"github.com/bureau-foundation/usertable/lib/user"
)

// Selection is a set of record ids. The zero value is an empty set
// ready for use.
type Selection struct {
	ids map[int]struct{}
}

// Has reports whether id is selected.
func (selection *Selection) Has(id int) bool {
	_, exists := selection.ids[id]
	return exists
}

// Len returns the number of selected ids.
func (selection *Selection) Len() int {
	return len(selection.ids)
}

// Toggle adds id if absent, otherwise removes it.
func (selection *Selection) Toggle(id int) {
	if selection.Has(id) {
		delete(selection.ids, id)
		return
	}
	if selection.ids == nil {
		selection.ids = make(map[int]struct{})
	}
	selection.ids[id] = struct{}{}
}

// Remove drops id from the set. Removing an absent id is a no-op.
func (selection *Selection) Remove(id int) {
	delete(selection.ids, id)
}

// Clear empties the set.
func (selection *Selection) Clear() {
	selection.ids = nil
}

// Replace sets the selection to exactly the ids of records.
func (selection *Selection) Replace(records []user.Record) {
	selection.ids = make(map[int]struct{}, len(records))
	for _, record := range records {
		selection.ids[record.ID] = struct{}{}
	}
}

// Equals reports whether the selection contains exactly the ids of
// records and nothing else.
func (selection *Selection) Equals(records []user.Record) bool {
	if len(selection.ids) != len(records) {
		return false
	}
	for _, record := range records {
		if !selection.Has(record.ID) {
			return false
		}
	}
	return true
}

// IDs returns the selected ids in ascending order.
func (selection *Selection) IDs() []int {
	ids := make([]int, 0, len(selection.ids))
	for id := range selection.ids {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Retain drops every id for which keep returns false.
func (selection *Selection) Retain(keep func(id int) bool) {
	for id := range selection.ids {
		if !keep(id) {
			delete(selection.ids, id)
		}
	}
}
