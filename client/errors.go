package client

import (
	"errors"
	"strings"
)

// ErrUnauthorized is returned when the backend answers 401. The
// configured unauthorized callback has already fired by the time a
// caller sees this error.
var ErrUnauthorized = errors.New("unauthorized")

// ErrNotFound is returned when the backend answers 404 on an operation
// where that is a hard error (update). Get and Delete translate 404
// into nil / false instead.
var ErrNotFound = errors.New("not found")

// Error code for a duplicate problem number, as emitted by this
// repository's own backend.
const CodeDuplicateNumber = "duplicate_number"

// APIError is a non-2xx response carrying the server-supplied message
// from the JSON error body, or the HTTP status text when the body was
// not parseable.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsDuplicateNumber reports whether err is the backend rejecting a
// problem whose number already exists. The structured code is checked
// first; the message-substring match is a compatibility shim for
// backends that only return text.
func IsDuplicateNumber(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.Code == CodeDuplicateNumber {
		return true
	}
	msg := strings.ToLower(apiErr.Message)
	if strings.Contains(msg, "duplicate") {
		return true
	}
	return strings.Contains(msg, "number") && strings.Contains(msg, "exist")
}
