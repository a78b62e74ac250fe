// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package usertableui is the terminal front end for the user table: a
// bubbletea [Model] with a search bar, paginated rows with checkboxes,
// inline editing and a clickable pager, plus [RenderPage] for static
// output.
//
// The model owns no table state of its own. Every key press or click
// calls a method on the [usertable.Table] it was built with and then
// re-derives the visible page; rendering only reads that derived page.
// The initial fetch runs as a tea.Cmd issued from Init, so the first
// frame shows an empty table with a loading note and the rows appear
// when the result message arrives. Fetch failures are logged and leave
// the table empty.
//
// [TUILogHandler] routes slog records into the running program so
// warnings and errors appear on the status line for a few seconds.
package usertableui
