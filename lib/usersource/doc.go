// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package usersource loads the user list the table is built from.
//
// A [Source] produces the full record list in one call. [HTTPSource]
// issues a single GET against a JSON endpoint (no retries, no timeout
// beyond the caller's context) through a transport that negotiates
// gzip and zstd content encoding. [FileSource] reads the same JSON
// array from disk and also accepts JSONC (comments and trailing
// commas), which is convenient for hand-maintained fixtures.
//
// Every failure is reported as a [*FetchError] so callers can log the
// source and HTTP status without string matching.
package usersource
