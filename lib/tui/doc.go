// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides the shared look of usertable's terminal output:
// the color [Theme] and ANSI-aware cell fitting ([FitCell]). Both the
// interactive view and the static print renderer use it, so a page
// looks the same whether it is browsed or printed.
package tui
