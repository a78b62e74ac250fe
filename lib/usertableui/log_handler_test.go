// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package usertableui

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"
)

func TestTUILogHandlerSummarize(t *testing.T) {
	tests := []struct {
		name    string
		handler func(*TUILogHandler) slog.Handler
		attrs   []slog.Attr
		want    string
	}{
		{
			name:    "message only",
			handler: func(h *TUILogHandler) slog.Handler { return h },
			want:    "loaded users",
		},
		{
			name:    "record attrs",
			handler: func(h *TUILogHandler) slog.Handler { return h },
			attrs:   []slog.Attr{slog.Int("count", 10), slog.String("source", "users.json")},
			want:    "loaded users (count=10, source=users.json)",
		},
		{
			name: "handler attrs precede record attrs",
			handler: func(h *TUILogHandler) slog.Handler {
				return h.WithAttrs([]slog.Attr{slog.String("component", "fetch")})
			},
			attrs: []slog.Attr{slog.Int("count", 3)},
			want:  "loaded users (component=fetch, count=3)",
		},
		{
			name: "group prefixes record attrs",
			handler: func(h *TUILogHandler) slog.Handler {
				return h.WithGroup("http")
			},
			attrs: []slog.Attr{slog.Int("status", 403)},
			want:  "loaded users (http.status=403)",
		},
		{
			name:    "nested group attr flattens",
			handler: func(h *TUILogHandler) slog.Handler { return h },
			attrs:   []slog.Attr{slog.Group("page", slog.Int("number", 2), slog.Int("size", 10))},
			want:    "loaded users (page.number=2, page.size=10)",
		},
		{
			name:    "empty attr skipped",
			handler: func(h *TUILogHandler) slog.Handler { return h },
			attrs:   []slog.Attr{{}, slog.Any("error", errors.New("boom"))},
			want:    "loaded users (error=boom)",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			handler := test.handler(NewTUILogHandler(slog.LevelInfo)).(*TUILogHandler)
			record := slog.NewRecord(time.Now(), slog.LevelInfo, "loaded users", 0)
			record.AddAttrs(test.attrs...)
			if got := handler.summarize(record); got != test.want {
				t.Errorf("summarize() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestTUILogHandlerEnabled(t *testing.T) {
	handler := NewTUILogHandler(slog.LevelWarn)
	ctx := context.Background()
	if handler.Enabled(ctx, slog.LevelInfo) {
		t.Error("info enabled at warn level")
	}
	if !handler.Enabled(ctx, slog.LevelWarn) || !handler.Enabled(ctx, slog.LevelError) {
		t.Error("warn or error disabled at warn level")
	}

	var level slog.LevelVar
	level.Set(slog.LevelError)
	dynamic := NewTUILogHandler(&level)
	if dynamic.Enabled(ctx, slog.LevelWarn) {
		t.Error("warn enabled at error level")
	}
	level.Set(slog.LevelDebug)
	if !dynamic.WithGroup("x").Enabled(ctx, slog.LevelDebug) {
		t.Error("derived handler did not follow the level change")
	}
}

func TestTUILogHandlerWithoutProgram(t *testing.T) {
	handler := NewTUILogHandler(slog.LevelInfo)
	logger := slog.New(handler)
	// Records before SetProgram are dropped without error.
	logger.Warn("dropped records with duplicate ids", "ids", []int{2})

	record := slog.NewRecord(time.Now(), slog.LevelError, "x", 0)
	if err := handler.Handle(context.Background(), record); err != nil {
		t.Errorf("Handle() = %v, want nil", err)
	}
}

func TestTUILogHandlerSharesProgram(t *testing.T) {
	handler := NewTUILogHandler(slog.LevelInfo)
	derived := handler.WithAttrs([]slog.Attr{slog.Int("a", 1)}).(*TUILogHandler)
	if derived.program != handler.program {
		t.Error("derived handler has its own program pointer")
	}
	if handler.WithGroup("") != slog.Handler(handler) {
		t.Error("WithGroup(\"\") should return the receiver")
	}
}
