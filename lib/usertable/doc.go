// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package usertable holds the in-memory state of the user table and
// the operations the view dispatches against it.
//
// [Table] is the single owner of every piece of mutable state: the
// record set, the search term, the current page, the row selection and
// the (at most one) edit session. Callers mutate it through methods and
// read it back through [Table.Derive], which recomputes the filtered,
// paginated [PageView] from scratch. There is no caching and no
// observer graph; Derive is cheap (linear in the record count) and is
// expected to be called after every mutation.
//
// The building blocks are exported as pure functions so they can be
// tested and reused independently of a Table:
//
//   - [Filter] and [Matches]: search-term matching
//   - [PageCount], [ClampPage], [Paginate]: fixed-size pagination
//
// Table is not safe for concurrent use. The terminal UI only touches it
// from the bubbletea Update loop, which serializes all events.
package usertable
