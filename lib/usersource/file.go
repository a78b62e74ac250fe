// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package usersource

import (
	"context"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/bureau-foundation/usertable/lib/user"
)

// FileSource reads the user list from a local JSON or JSONC file.
type FileSource struct {
	path string
}

// NewFileSource returns a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Describe returns the file path.
func (source *FileSource) Describe() string {
	return source.path
}

// Fetch reads and decodes the file. Comments and trailing commas are
// stripped before decoding regardless of the file extension.
func (source *FileSource) Fetch(ctx context.Context) ([]user.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Source: source.path, Err: err}
	}

	data, err := os.ReadFile(source.path)
	if err != nil {
		return nil, &FetchError{Source: source.path, Err: err}
	}

	records, err := decodeRecords(jsonc.ToJSON(data))
	if err != nil {
		return nil, &FetchError{Source: source.path, Err: fmt.Errorf("decoding users: %w", err)}
	}
	return records, nil
}
