package store

import "errors"

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicateNumber is returned when a problem number already exists
// for the same owner.
var ErrDuplicateNumber = errors.New("problem number already exists")
