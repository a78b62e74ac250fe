// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package usertable

import (
	"testing"

	"github.com/bureau-foundation/usertable/lib/user"
)

func TestSelectionZeroValue(t *testing.T) {
	var selection Selection
	if selection.Has(1) || selection.Len() != 0 || len(selection.IDs()) != 0 {
		t.Fatal("zero Selection is not empty")
	}
	selection.Remove(1)
	selection.Clear()
	selection.Toggle(3)
	if !selection.Has(3) || selection.Len() != 1 {
		t.Errorf("Toggle on zero value: ids %v", selection.IDs())
	}
}

func TestSelectionToggle(t *testing.T) {
	var selection Selection
	selection.Toggle(5)
	selection.Toggle(2)
	selection.Toggle(5)
	if got := selection.IDs(); !equalInts(got, []int{2}) {
		t.Errorf("IDs() = %v, want [2]", got)
	}
}

func TestSelectionReplaceAndEquals(t *testing.T) {
	records := sampleRecords()[:2]
	var selection Selection
	selection.Toggle(99)
	selection.Replace(records)

	if !selection.Equals(records) {
		t.Errorf("Equals after Replace: ids %v", selection.IDs())
	}
	if selection.Has(99) {
		t.Error("Replace kept an id outside the records")
	}
	if selection.Equals(sampleRecords()[:1]) {
		t.Error("Equals with a subset reported true")
	}
	if selection.Equals([]user.Record{}) {
		t.Error("non-empty selection equals an empty page")
	}

	var empty Selection
	if !empty.Equals(nil) {
		t.Error("empty selection should equal an empty page")
	}
}

func TestSelectionIDsSorted(t *testing.T) {
	var selection Selection
	for _, id := range []int{21, 3, 12, 1} {
		selection.Toggle(id)
	}
	if got := selection.IDs(); !equalInts(got, []int{1, 3, 12, 21}) {
		t.Errorf("IDs() = %v, want ascending", got)
	}
}

func TestSelectionRetain(t *testing.T) {
	var selection Selection
	for id := 1; id <= 6; id++ {
		selection.Toggle(id)
	}
	selection.Retain(func(id int) bool { return id%2 == 0 })
	if got := selection.IDs(); !equalInts(got, []int{2, 4, 6}) {
		t.Errorf("IDs() after Retain = %v, want [2 4 6]", got)
	}
}
