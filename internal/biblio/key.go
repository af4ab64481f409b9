// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package biblio

import (
	"fmt"

	"github.com/pdiddy/specnav/pkg/types"
)

// Key returns the searchable text of an entry. An explicit Key wins;
// otherwise the field depends on the entry type. An empty key with a nil
// error means the entry is not searchable. Unknown types are an error.
func Key(e types.Entry) (string, error) {
	if e.Key != "" {
		return e.Key, nil
	}
	switch e.Type {
	case types.EntryClause:
		if e.Title != "" {
			return e.Title, nil
		}
		return e.TitleHTML, nil
	case types.EntryProduction:
		return e.Name, nil
	case types.EntryOp:
		return e.AOID, nil
	case types.EntryTerm:
		return e.Term, nil
	case types.EntryTable, types.EntryFigure, types.EntryExample, types.EntryNote:
		return e.Caption, nil
	case types.EntryStep:
		return e.ID, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEntryType, e.Type)
	}
}
