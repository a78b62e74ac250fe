// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package usertable

import (
	"fmt"
	"testing"

	"github.com/bureau-foundation/usertable/lib/user"
)

func sampleRecords() []user.Record {
	return []user.Record{
		{ID: 1, Name: "Aaron Miles", Email: "aaron@mailinator.com", Role: "member"},
		{ID: 2, Name: "Aishwarya Naik", Email: "aishwarya@mailinator.com", Role: "member"},
		{ID: 3, Name: "Arvind Kumar", Email: "arvind@mailinator.com", Role: "admin"},
		{ID: 12, Name: "Caterina Binotto", Email: "caterina@mailinator.com", Role: "member"},
		{ID: 21, Name: "Eliza Wu", Email: "ELIZA@Example.org", Role: "Engineer"},
	}
}

// numberedRecords returns count records with ids 1..count.
func numberedRecords(count int) []user.Record {
	records := make([]user.Record, count)
	for index := range records {
		id := index + 1
		records[index] = user.Record{
			ID:    id,
			Name:  fmt.Sprintf("User %d", id),
			Email: fmt.Sprintf("user%d@example.com", id),
			Role:  "member",
		}
	}
	return records
}

func ids(records []user.Record) []int {
	result := make([]int, len(records))
	for index, record := range records {
		result[index] = record.ID
	}
	return result
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for index := range a {
		if a[index] != b[index] {
			return false
		}
	}
	return true
}

func TestMatches(t *testing.T) {
	record := user.Record{ID: 21, Name: "Eliza Wu", Email: "ELIZA@Example.org", Role: "Engineer"}

	tests := []struct {
		term string
		want bool
	}{
		{"", true},
		{"21", true},
		{"2", true},
		{"1", true},
		{"3", false},
		{"eliza", true},
		{"ELIZA", true},
		{"example.ORG", true},
		{"eng", true},
		{"wu", true},
		{"admin", false},
		{"eliza wu ", false},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%q", test.term), func(t *testing.T) {
			if got := Matches(record, test.term); got != test.want {
				t.Errorf("Matches(%q) = %v, want %v", test.term, got, test.want)
			}
		})
	}
}

func TestFilterEmptyTermReturnsAll(t *testing.T) {
	records := sampleRecords()
	got := Filter(records, "")
	if !equalInts(ids(got), ids(records)) {
		t.Errorf("Filter(\"\") = %v, want %v", ids(got), ids(records))
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	got := Filter(sampleRecords(), "member")
	want := []int{1, 2, 12}
	if !equalInts(ids(got), want) {
		t.Errorf("Filter(member) = %v, want %v", ids(got), want)
	}
}

func TestFilterIDSubstring(t *testing.T) {
	// "1" is a substring of 1, 12 and 21.
	got := Filter(sampleRecords(), "1")
	want := []int{1, 12, 21}
	if !equalInts(ids(got), want) {
		t.Errorf("Filter(1) = %v, want %v", ids(got), want)
	}
}

func TestFilterSoundAndComplete(t *testing.T) {
	records := sampleRecords()
	terms := []string{"", "a", "mail", "ADMIN", "2", "zz", "naik", "@"}
	for _, term := range terms {
		t.Run(term, func(t *testing.T) {
			result := Filter(records, term)
			included := make(map[int]bool, len(result))
			for _, record := range result {
				if !Matches(record, term) {
					t.Errorf("record %d in result does not match %q", record.ID, term)
				}
				included[record.ID] = true
			}
			for _, record := range records {
				if Matches(record, term) && !included[record.ID] {
					t.Errorf("record %d matches %q but is missing from the result", record.ID, term)
				}
			}
		})
	}
}

func TestFilterDoesNotAliasInput(t *testing.T) {
	records := sampleRecords()
	result := Filter(records, "")
	result[0].Name = "changed"
	if records[0].Name == "changed" {
		t.Error("Filter result shares backing storage with its input")
	}
}
