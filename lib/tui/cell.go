// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// FitCell truncates text to width display columns (appending "…" when
// cut) and pads it with spaces to exactly width columns. Escape
// sequences in text do not count toward the width.
func FitCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(text) > width {
		text = ansi.Truncate(text, width, "…")
	}
	if padding := width - ansi.StringWidth(text); padding > 0 {
		text += strings.Repeat(" ", padding)
	}
	return text
}

// ColumnWidths splits total columns across weights proportionally.
// Each column gets at least minimum columns; rounding remainders go to
// the leftmost columns.
func ColumnWidths(total, minimum int, weights ...int) []int {
	widths := make([]int, len(weights))
	if len(weights) == 0 {
		return widths
	}
	weightSum := 0
	for _, weight := range weights {
		weightSum += weight
	}
	if weightSum <= 0 {
		weightSum = len(weights)
		for index := range weights {
			weights[index] = 1
		}
	}

	assigned := 0
	for index, weight := range weights {
		widths[index] = total * weight / weightSum
		assigned += widths[index]
	}
	for index := 0; assigned < total; index = (index + 1) % len(widths) {
		widths[index]++
		assigned++
	}
	for index := range widths {
		if widths[index] < minimum {
			widths[index] = minimum
		}
	}
	return widths
}
