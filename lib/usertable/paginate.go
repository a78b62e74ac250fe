// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package usertable

import "github.com/bureau-foundation/usertable/lib/user"

// DefaultPageSize is the number of rows per page.
const DefaultPageSize = 10

// PageCount returns the number of pages needed for count items. There
// is always at least one page, even when count is zero.
func PageCount(count, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage returns page limited to the range [1, pageCount].
func ClampPage(page, pageCount int) int {
	if pageCount < 1 {
		pageCount = 1
	}
	if page < 1 {
		return 1
	}
	if page > pageCount {
		return pageCount
	}
	return page
}

// Paginate returns the records on the given 1-based page. The page is
// clamped into range first, so the result is the last page for
// out-of-range requests and empty only when records is empty. The
// returned slice aliases records.
func Paginate(records []user.Record, page, pageSize int) []user.Record {
	if pageSize < 1 {
		pageSize = 1
	}
	page = ClampPage(page, PageCount(len(records), pageSize))

	start := (page - 1) * pageSize
	if start > len(records) {
		start = len(records)
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}
