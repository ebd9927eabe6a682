package store

import "errors"

// ErrNotFound is returned by both backends when the requested id does not
// exist. Handlers match it with errors.Is and map it to a 404.
var ErrNotFound = errors.New("record not found")
