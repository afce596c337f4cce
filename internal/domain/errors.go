package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures so the request boundary can decide what to
// show the user without inspecting error strings.
type ErrorKind string

const (
	// KindInvalidFormat marks malformed time/date input. User-correctable.
	KindInvalidFormat ErrorKind = "invalid_format"
	// KindAlreadyPassed marks a timestamp that is not in the future. User-correctable.
	KindAlreadyPassed ErrorKind = "already_passed"
	// KindNoDestinationConfigured marks a team without a default channel. Operator-correctable.
	KindNoDestinationConfigured ErrorKind = "no_destination_configured"
	// KindDuplicateID marks a schedule store insert with an already-used
	// message ID. Message IDs come from Slack, so this should never happen.
	KindDuplicateID ErrorKind = "duplicate_id"
	// KindDeliveryFailure marks a failed roll-call delivery. Retried by the
	// next sweep, never surfaced to the requester.
	KindDeliveryFailure ErrorKind = "delivery_failure"
)

// Error carries a classification and a message safe to show the user,
// separate from the underlying cause.
type Error struct {
	Kind        ErrorKind
	UserMessage string
	Err         error
}

func NewError(kind ErrorKind, userMessage string, err error) *Error {
	return &Error{Kind: kind, UserMessage: userMessage, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.UserMessage)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the classification of err, or an empty kind when err is
// not a domain error.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// UserMessageOf returns the user-facing message of err, or an empty string
// when err carries none.
func UserMessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.UserMessage
	}
	return ""
}
