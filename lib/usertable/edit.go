// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package usertable

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/usertable/lib/user"
)

var (
	// ErrEditInProgress is returned by StartEdit when another record
	// is already being edited. The existing draft is left untouched;
	// callers must Save or Cancel it first.
	ErrEditInProgress = errors.New("usertable: an edit is already in progress")

	// ErrNotEditing is returned by UpdateField and Save when no edit
	// session is active.
	ErrNotEditing = errors.New("usertable: no edit in progress")

	// ErrRecordNotFound is returned when an operation names an id that
	// is not in the record set.
	ErrRecordNotFound = errors.New("usertable: record not found")

	// ErrUnknownField is returned by UpdateField for fields that are
	// not editable.
	ErrUnknownField = errors.New("usertable: unknown field")
)

// EditSession is an in-progress edit of one record. Draft starts as a
// full copy of the record and accumulates field changes until the
// session is saved or cancelled.
type EditSession struct {
	TargetID int
	Draft    user.Record
}

// StartEdit opens an edit session for the record with the given id.
// Only one session may be open at a time.
func (table *Table) StartEdit(id int) error {
	if table.edit != nil {
		return fmt.Errorf("%w (record %d)", ErrEditInProgress, table.edit.TargetID)
	}
	index := table.indexOf(id)
	if index < 0 {
		return fmt.Errorf("%w: id %d", ErrRecordNotFound, id)
	}
	table.edit = &EditSession{
		TargetID: id,
		Draft:    table.records[index],
	}
	return nil
}

// UpdateField sets one field of the draft.
func (table *Table) UpdateField(field user.Field, value string) error {
	if table.edit == nil {
		return ErrNotEditing
	}
	if !isEditable(field) {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	table.edit.Draft = table.edit.Draft.With(field, value)
	return nil
}

// Save merges the draft into the record set and closes the session.
// When the target record was deleted while editing, the session is
// closed without merging anything.
func (table *Table) Save() error {
	if table.edit == nil {
		return ErrNotEditing
	}
	session := *table.edit
	table.edit = nil

	index := table.indexOf(session.TargetID)
	if index < 0 {
		return nil
	}
	draft := session.Draft
	draft.ID = session.TargetID
	table.records[index] = draft

	// The edit can move the record in or out of the filtered set.
	table.clampPage()
	return nil
}

// Cancel discards the draft and closes the session. Cancelling with no
// session open is a no-op.
func (table *Table) Cancel() {
	table.edit = nil
}

// Editing returns a copy of the open edit session, if any.
func (table *Table) Editing() (EditSession, bool) {
	if table.edit == nil {
		return EditSession{}, false
	}
	return *table.edit, true
}

func isEditable(field user.Field) bool {
	for _, editable := range user.EditableFields {
		if field == editable {
			return true
		}
	}
	return false
}
