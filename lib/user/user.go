// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package user

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Record is a single user entry.
type Record struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// wireRecord mirrors Record with a raw id so UnmarshalJSON can accept
// both numeric and string encodings.
type wireRecord struct {
	ID    json.RawMessage `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  string          `json:"role"`
}

// UnmarshalJSON decodes a record whose id is either a JSON number or a
// string containing a base-10 integer.
func (record *Record) UnmarshalJSON(data []byte) error {
	var wire wireRecord
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	id, err := parseID(wire.ID)
	if err != nil {
		return err
	}

	*record = Record{
		ID:    id,
		Name:  wire.Name,
		Email: wire.Email,
		Role:  wire.Role,
	}
	return nil
}

func parseID(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	// A missing or null id decodes as 0; Table.Load keeps the first such
	// record and drops the rest as duplicates.
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, nil
	}

	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, fmt.Errorf("user record: id: %w", err)
		}
		text = strings.TrimSpace(text)
	}

	id, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("user record: id %s is not an integer", raw)
	}
	return id, nil
}

// Get returns the value of an editable field.
func (record Record) Get(field Field) string {
	switch field {
	case FieldName:
		return record.Name
	case FieldEmail:
		return record.Email
	case FieldRole:
		return record.Role
	default:
		return ""
	}
}

// With returns a copy of the record with field set to value. Unknown
// fields leave the copy unchanged.
func (record Record) With(field Field, value string) Record {
	switch field {
	case FieldName:
		record.Name = value
	case FieldEmail:
		record.Email = value
	case FieldRole:
		record.Role = value
	}
	return record
}

// Field identifies an editable column of a Record.
type Field string

const (
	FieldName  Field = "name"
	FieldEmail Field = "email"
	FieldRole  Field = "role"
)

// EditableFields lists the editable columns in display order.
var EditableFields = []Field{FieldName, FieldEmail, FieldRole}

// Label returns the column heading for the field.
func (field Field) Label() string {
	switch field {
	case FieldName:
		return "Name"
	case FieldEmail:
		return "Email"
	case FieldRole:
		return "Role"
	default:
		return string(field)
	}
}
