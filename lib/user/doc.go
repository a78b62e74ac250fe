// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package user defines the user record shown by the user table and its
// JSON wire format.
//
// A [Record] is identified by its integer ID; the remaining fields are
// free-form strings that the table can edit. The upstream members
// endpoint serves ids as JSON strings ("1") while other producers use
// numbers, so [Record] decodes either form. Missing string fields are
// not an error: they decode as empty strings and render as blank cells.
//
// [Field] names the editable columns. The id column is deliberately
// absent: identity never changes after load.
//
// This package depends on no other usertable packages.
package user
