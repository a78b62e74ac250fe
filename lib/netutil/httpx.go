// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides bounded HTTP response reading.
//
// ReadResponse caps response bodies at MaxResponseSize and fails with
// ErrResponseTooLarge instead of truncating. ErrorBody returns a short
// excerpt of an error response for log lines.
package netutil

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// MaxResponseSize bounds response body reads: 32 MB.
const MaxResponseSize int64 = 32 << 20

// MaxErrorExcerpt is the number of bytes of an error response body kept
// for diagnostics.
const MaxErrorExcerpt = 512

// ErrResponseTooLarge is returned when a body exceeds MaxResponseSize.
var ErrResponseTooLarge = errors.New("response body exceeds size limit")

// ReadResponse reads a response body of at most MaxResponseSize bytes.
func ReadResponse(body io.Reader) ([]byte, error) {
	return readLimited(body, MaxResponseSize)
}

// ErrorBody returns up to MaxErrorExcerpt bytes of an error response,
// trimmed of surrounding whitespace, with "..." appended when the body
// was longer. Read errors yield whatever was read before the failure.
func ErrorBody(body io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(body, MaxErrorExcerpt+1))
	truncated := len(data) > MaxErrorExcerpt
	if truncated {
		data = data[:MaxErrorExcerpt]
		// Do not split a multi-byte rune.
		for len(data) > 0 && !utf8.Valid(data) {
			data = data[:len(data)-1]
		}
	}
	excerpt := strings.TrimSpace(string(data))
	if truncated {
		excerpt += "..."
	}
	return excerpt
}

func readLimited(body io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(body, limit+1))
	if err != nil {
		return data, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w (%d bytes)", ErrResponseTooLarge, limit)
	}
	return data, nil
}
