// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package netutil

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestReadResponse(t *testing.T) {
	t.Run("normal body", func(t *testing.T) {
		data, err := ReadResponse(strings.NewReader(`[{"id":"1"}]`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != `[{"id":"1"}]` {
			t.Fatalf("got %q", data)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		data, err := ReadResponse(bytes.NewReader(nil))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(data) != 0 {
			t.Fatalf("expected empty, got %d bytes", len(data))
		}
	})

	t.Run("read error propagates", func(t *testing.T) {
		if _, err := ReadResponse(&failReader{}); err == nil {
			t.Fatal("expected error from failing reader")
		}
	})
}

func TestReadLimited(t *testing.T) {
	t.Run("at limit", func(t *testing.T) {
		data, err := readLimited(strings.NewReader("12345"), 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != "12345" {
			t.Fatalf("got %q", data)
		}
	})

	t.Run("over limit", func(t *testing.T) {
		_, err := readLimited(strings.NewReader("123456"), 5)
		if !errors.Is(err, ErrResponseTooLarge) {
			t.Fatalf("got %v, want ErrResponseTooLarge", err)
		}
	})
}

func TestErrorBody(t *testing.T) {
	t.Run("short body is trimmed", func(t *testing.T) {
		got := ErrorBody(strings.NewReader("  <Error>AccessDenied</Error>\n"))
		if got != "<Error>AccessDenied</Error>" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("long body is truncated", func(t *testing.T) {
		got := ErrorBody(strings.NewReader(strings.Repeat("x", MaxErrorExcerpt*2)))
		if len(got) != MaxErrorExcerpt+len("...") || !strings.HasSuffix(got, "...") {
			t.Fatalf("got %d bytes ending %q", len(got), got[len(got)-5:])
		}
	})

	t.Run("truncation keeps runes whole", func(t *testing.T) {
		body := strings.Repeat("a", MaxErrorExcerpt-1) + "é" + "tail"
		got := ErrorBody(strings.NewReader(body))
		want := strings.Repeat("a", MaxErrorExcerpt-1) + "..."
		if got != want {
			t.Fatalf("got %d bytes, want %d", len(got), len(want))
		}
	})

	t.Run("read error returns empty", func(t *testing.T) {
		if got := ErrorBody(&failReader{}); got != "" {
			t.Fatalf("expected empty from failing reader, got %q", got)
		}
	})
}

// failReader always returns an error on Read.
type failReader struct{}

func (*failReader) Read([]byte) (int, error) {
	return 0, fmt.Errorf("simulated read failure")
}
