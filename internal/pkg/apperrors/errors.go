package apperrors

import (
	"errors"
	"fmt"
)

// ErrConversationNotFound is the only domain error exposed as-is; the HTTP
// layer maps it to 404.
var ErrConversationNotFound = errors.New("conversation not found")

// ServiceError wraps an infrastructure failure (database) once, at the point
// where it crosses into the service layer.
type ServiceError struct {
	Op  string // failing operation, e.g. "create conversation"
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func NewServiceError(op string, err error) *ServiceError {
	return &ServiceError{Op: op, Err: err}
}

// UpstreamError covers failures talking to the chat-completion provider,
// including replies that do not carry usable content.
type UpstreamError struct {
	Malformed bool
	Err       error
}

func (e *UpstreamError) Error() string {
	if e.Malformed {
		return fmt.Sprintf("malformed upstream reply: %v", e.Err)
	}
	return fmt.Sprintf("upstream call failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func NewUpstreamError(err error) *UpstreamError {
	return &UpstreamError{Err: err}
}

func NewMalformedReplyError(reason string) *UpstreamError {
	return &UpstreamError{Malformed: true, Err: errors.New(reason)}
}

// ValidationError carries field-keyed detail for 400 responses.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
