package cartsync

import (
	"errors"
	"fmt"
)

// ErrMalformed marks a response body that is not the JSON shape the contract promises.
var ErrMalformed = errors.New("cartsync: malformed response")

// TransportError is a network failure or an unreadable response. It never carries a
// shopper-facing reason.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("cartsync: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RejectedError is a non-success status from the cart service. Message is the
// reason found in the body, if any, and is shown to the shopper verbatim.
type RejectedError struct {
	Op      string
	Status  int
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("cartsync: %s: status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("cartsync: %s: status %d: %s", e.Op, e.Status, e.Message)
}

// Reason returns the shopper-facing message for err, or fallback when err carries none.
func Reason(err error, fallback string) string {
	var rej *RejectedError
	if errors.As(err, &rej) && rej.Message != "" {
		return rej.Message
	}
	return fallback
}
