// Package errors provides domain-specific error types for the module.
// Every error carries the ResultCode it collapses to at the hook boundary,
// and all types support unwrapping via errors.As() and errors.Is().
package errors

import (
	stdErrors "errors"
	"fmt"

	"github.com/pamnotify-dev/pamnotify/domain/entities"
)

// CodedError is an error that maps itself onto the host's result vocabulary.
type CodedError interface {
	error
	Code() entities.ResultCode
}

// CodeOf collapses an error into exactly one ResultCode. A nil error is
// Success; an error that does not identify itself is a system error.
func CodeOf(err error) entities.ResultCode {
	if err == nil {
		return entities.Success
	}
	var ce CodedError
	if stdErrors.As(err, &ce) {
		return ce.Code()
	}
	return entities.SystemErr
}

// ItemError reports that the host had no value for a requested session item.
type ItemError struct {
	Item entities.ItemType
	Host entities.ResultCode
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("no value for session item %s: %s", e.Item, e.Host)
}

// Code implements CodedError.
func (e *ItemError) Code() entities.ResultCode {
	return e.Host
}

// ConversationError reports a failed conversation with the host, either
// because the host rejected the prompt or because the text was unsendable
// (embedded NUL maps to BufErr before the host is contacted).
type ConversationError struct {
	Host entities.ResultCode
}

func (e *ConversationError) Error() string {
	return fmt.Sprintf("conversation failed: %s", e.Host)
}

// Code implements CodedError.
func (e *ConversationError) Code() entities.ResultCode {
	return e.Host
}

// RelayError reports a failed notification delivery. Transport failures and
// endpoint rejections carry Ignore so a notification outage never blocks a
// login; local request construction defects carry SystemErr.
type RelayError struct {
	Err        error
	StatusCode int
	Result     entities.ResultCode
}

func (e *RelayError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("notification rejected with status %d", e.StatusCode)
	}
	return fmt.Sprintf("notification delivery failed: %v", e.Err)
}

func (e *RelayError) Unwrap() error {
	return e.Err
}

// Code implements CodedError.
func (e *RelayError) Code() entities.ResultCode {
	return e.Result
}
