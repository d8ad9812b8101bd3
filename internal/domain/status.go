package domain

import "fmt"

// Status represents the progress of the outstanding lookup.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusError   Status = "error"
)

// ErrorKind classifies a failed lookup.
type ErrorKind string

const (
	// ErrorKindNotFound covers any non-success response from the API.
	ErrorKindNotFound ErrorKind = "not_found"
	// ErrorKindTransport covers network, request and decode failures.
	ErrorKindTransport ErrorKind = "transport"
)

// User-facing messages, one per ErrorKind.
const (
	MessageNotFound  = "User not found"
	MessageTransport = "Unable to reach GitHub"
)

// LookupError is a failed lookup with its classified kind.
// The wrapped error is for logs only and is never shown to users.
type LookupError struct {
	Kind ErrorKind
	Err  error
}

func (e *LookupError) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// Message returns the fixed user-facing message for the error kind.
func (e *LookupError) Message() string {
	if e.Kind == ErrorKindNotFound {
		return MessageNotFound
	}
	return MessageTransport
}
