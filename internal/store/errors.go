package store

import "errors"

// ErrNotFound is returned by single-row lookups when no row matches.
// Callers match it with errors.Is.
var ErrNotFound = errors.New("not found")
