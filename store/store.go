// Package store is the persistence layer. Every destination read and write is
// parameterized by the acting user's id; there is no query path without the
// owner filter.
package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned when no record matches both the identifier and the
// acting user. Callers cannot tell a missing row from another user's row.
var ErrNotFound = errors.New("not found")

// ValidationError reports rejected input before any mutation happens.
// Fields maps each offending field name to a message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid input: %s", strings.Join(names, ", "))
}
