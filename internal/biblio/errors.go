// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package biblio

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownEntryType signals an entry whose type has no key field.
	ErrUnknownEntryType = errors.New("unknown entry type")
	// ErrMissingClause signals a reference id with no owning clause.
	ErrMissingClause = errors.New("no owning clause for reference")
	// ErrNotFound signals an id absent from the bibliography.
	ErrNotFound = errors.New("entry not found")
)

// MissingClauseError reports a reference id that does not resolve to a
// clause entry. It indicates an inconsistent bibliography payload.
type MissingClauseError struct {
	RefID    string
	ClauseID string
}

func (e *MissingClauseError) Error() string {
	if e.ClauseID == "" {
		return fmt.Sprintf("%s: reference %q is not inside any clause", ErrMissingClause.Error(), e.RefID)
	}
	return fmt.Sprintf("%s: reference %q points at clause %q which is not in the bibliography",
		ErrMissingClause.Error(), e.RefID, e.ClauseID)
}

func (e *MissingClauseError) Unwrap() error { return ErrMissingClause }
