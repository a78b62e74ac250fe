// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for usertable's terminal output. All
// colors use lipgloss ANSI 256-color codes for broad terminal
// compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Cursor row.
	CursorBackground lipgloss.Color
	CursorForeground lipgloss.Color

	// Checked (selected) rows.
	CheckedBackground lipgloss.Color
	CheckMark         lipgloss.Color

	// Row being edited.
	EditBackground lipgloss.Color

	// Role colors. Roles other than admin use RoleMember.
	RoleAdmin  lipgloss.Color
	RoleMember lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Pager labels.
	PagerCurrent  lipgloss.Color
	PagerEnabled  lipgloss.Color
	PagerDisabled lipgloss.Color

	// Status line log levels.
	StatusWarn  lipgloss.Color
	StatusError lipgloss.Color

	// Destructive action hints (delete).
	DangerForeground lipgloss.Color
}

// RoleColor returns the color for a role name. Matching is
// case-insensitive.
func (theme Theme) RoleColor(role string) lipgloss.Color {
	if strings.EqualFold(strings.TrimSpace(role), "admin") {
		return theme.RoleAdmin
	}
	return theme.RoleMember
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	CursorBackground: lipgloss.Color("236"),
	CursorForeground: lipgloss.Color("255"),

	CheckedBackground: lipgloss.Color("238"), // gray
	CheckMark:         lipgloss.Color("114"),

	EditBackground: lipgloss.Color("58"), // dark amber

	RoleAdmin:  lipgloss.Color("208"),
	RoleMember: lipgloss.Color("75"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	PagerCurrent:  lipgloss.Color("75"),
	PagerEnabled:  lipgloss.Color("252"),
	PagerDisabled: lipgloss.Color("240"),

	StatusWarn:  lipgloss.Color("220"),
	StatusError: lipgloss.Color("196"),

	DangerForeground: lipgloss.Color("203"),
}
