// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package usertable

import (
	"strconv"
	"strings"

	"github.com/bureau-foundation/usertable/lib/user"
)

// Matches reports whether record matches the search term. An empty term
// matches everything. The id is matched as a substring of its decimal
// form; name, email and role are matched case-insensitively. Any one
// field matching is enough.
func Matches(record user.Record, term string) bool {
	if term == "" {
		return true
	}

	if strings.Contains(strconv.Itoa(record.ID), term) {
		return true
	}

	query := strings.ToLower(term)
	return strings.Contains(strings.ToLower(record.Name), query) ||
		strings.Contains(strings.ToLower(record.Email), query) ||
		strings.Contains(strings.ToLower(record.Role), query)
}

// Filter returns the records matching term in their original order.
// The input slice is never modified. An empty term returns a copy of
// the full set so callers can hold the result across later mutations.
func Filter(records []user.Record, term string) []user.Record {
	result := make([]user.Record, 0, len(records))
	for _, record := range records {
		if Matches(record, term) {
			result = append(result, record)
		}
	}
	return result
}
