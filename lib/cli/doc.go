// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli holds the small pieces shared by usertable entry points:
// categorized errors with hints ([ToolError]), handled exit codes
// ([ExitError]), the stderr logger for non-interactive runs
// ([NewCommandLogger]) and indented JSON output ([WriteJSON]).
//
// [ExitCode] maps any error returned from a command's run function to
// the process exit status, so main stays a few lines long.
package cli
