package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used by repositories so callers can branch on the failing
// persistence step without parsing messages.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicate      = errors.New("record already exists")
	ErrOrderInsert    = errors.New("order header insert failed")
	ErrLineItemInsert = errors.New("order line item insert failed")
)

// ErrorKind is a stable machine-readable classification of a workflow failure.
type ErrorKind string

const (
	KindValidation  ErrorKind = "validation"
	KindReference   ErrorKind = "reference"
	KindPersistence ErrorKind = "persistence"
	KindUnexpected  ErrorKind = "unexpected"
)

// Error carries an ErrorKind alongside the display message so handlers can map
// failures to HTTP statuses without sniffing message strings.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NewReferenceError(message string) *Error {
	return &Error{Kind: KindReference, Message: message}
}

func NewPersistenceError(message string, err error) *Error {
	return &Error{Kind: KindPersistence, Message: message, Err: err}
}

func NewUnexpectedError(message string, err error) *Error {
	return &Error{Kind: KindUnexpected, Message: message, Err: err}
}

// KindOf reports the classification of err, defaulting to KindUnexpected for
// errors that did not originate from this package.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnexpected
}
