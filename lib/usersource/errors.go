// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package usersource

import (
	"errors"
	"fmt"
	"io/fs"
)

// FetchError reports a failed fetch: transport failure, non-2xx status,
// unreadable body or a payload that is not a list of users.
type FetchError struct {
	// Source is the URL or path that was read.
	Source string

	// StatusCode is the HTTP status, or 0 when no response was received
	// or the source is a file.
	StatusCode int

	// Body is an excerpt of a non-2xx response body.
	Body string

	Err error
}

func (err *FetchError) Error() string {
	if err.StatusCode != 0 {
		if err.Body != "" {
			return fmt.Sprintf("fetching users from %s: HTTP %d: %s", err.Source, err.StatusCode, err.Body)
		}
		return fmt.Sprintf("fetching users from %s: HTTP %d", err.Source, err.StatusCode)
	}
	return fmt.Sprintf("fetching users from %s: %v", err.Source, err.Err)
}

func (err *FetchError) Unwrap() error {
	return err.Err
}

// IsNotFound reports whether err is a fetch that failed with HTTP 404
// or a missing file.
func IsNotFound(err error) bool {
	var fetchError *FetchError
	if !errors.As(err, &fetchError) {
		return false
	}
	return fetchError.StatusCode == 404 || errors.Is(fetchError.Err, fs.ErrNotExist)
}
