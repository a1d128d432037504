// Package errors defines the error taxonomy for the HR data pipeline.
//
// Structural problems (missing required columns, colliding headers) are fatal
// and surface as *SchemaError. Data-quality problems never become errors:
// individual values that fail to parse degrade into absent cells and are
// reported as warn-level log entries and per-column counters.
package errors

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
)

// Is and As re-export the stdlib helpers so callers of this package do not
// need a second errors import.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As is the stdlib errors.As.
func As(err error, target any) bool { return stderrors.As(err, target) }

// HeaderCollision records two distinct raw headers that normalize to the same
// canonical key.
type HeaderCollision struct {
	Key    string
	First  string
	Second string
}

// SchemaError reports structural problems with the raw dataset. It always
// enumerates every missing column in one message rather than failing on the
// first.
type SchemaError struct {
	Missing    []string
	Collisions []HeaderCollision
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		missing := append([]string(nil), e.Missing...)
		sort.Strings(missing)
		parts = append(parts, "dataset is missing required columns: "+strings.Join(missing, ", "))
	}
	for _, c := range e.Collisions {
		parts = append(parts, fmt.Sprintf("columns %q and %q both canonicalize to %q", c.First, c.Second, c.Key))
	}
	if len(parts) == 0 {
		return "schema error"
	}
	return strings.Join(parts, "; ")
}

// NewSchemaError creates a SchemaError for missing required columns.
func NewSchemaError(missing []string) *SchemaError {
	return &SchemaError{Missing: missing}
}

// NewCollisionError creates a SchemaError for a canonical-header collision.
func NewCollisionError(key, first, second string) *SchemaError {
	return &SchemaError{Collisions: []HeaderCollision{{Key: key, First: first, Second: second}}}
}

// IsSchemaError reports whether err is (or wraps) a *SchemaError.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return As(err, &se)
}
