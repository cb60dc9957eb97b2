package repo

import "errors"

// ErrNotFound is returned when a query matches no row.
var ErrNotFound = errors.New("not found")
