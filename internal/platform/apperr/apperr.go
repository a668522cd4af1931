// Package apperr defines the error taxonomy shared by every resource
// repository: validation, conflict, not-found, capacity-exceeded and
// storage errors. Store-specific error types never cross the service
// boundary; services wrap them here and handlers map the result onto
// HTTP responses.
package apperr

import (
	"errors"
	"net/http"
	"strings"
)

type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries a machine-readable code, a client-safe message and the
// HTTP status a handler should answer with. Cause is for server-side
// logging only and is never serialized.
type Error struct {
	Code       string       `json:"code"`
	Message    string       `json:"-"`
	HTTPStatus int          `json:"-"`
	Fields     []FieldIssue `json:"fields,omitempty"`
	Cause      error        `json:"-"`
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Cause }

func Validation(issues []FieldIssue) *Error {
	messages := make([]string, 0, len(issues))
	for _, issue := range issues {
		messages = append(messages, issue.Message)
	}
	return &Error{
		Code:       "validation_error",
		Message:    strings.Join(messages, " "),
		HTTPStatus: http.StatusBadRequest,
		Fields:     issues,
	}
}

func Conflict(message string) *Error {
	return &Error{Code: "conflict", Message: message, HTTPStatus: http.StatusConflict}
}

func NotFound(resource string) *Error {
	return &Error{Code: "not_found", Message: resource + " not found.", HTTPStatus: http.StatusNotFound}
}

// CapacityExceeded marks an exhausted identifier space. It is fatal for
// the affected scope and requires operator intervention, so it maps to
// a server error rather than a client one.
func CapacityExceeded(message string) *Error {
	return &Error{Code: "capacity_exceeded", Message: message, HTTPStatus: http.StatusInternalServerError}
}

func Storage(cause error) *Error {
	return &Error{
		Code:       "storage_error",
		Message:    "A storage operation failed.",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// From returns err as an *Error, wrapping anything unclassified as a
// storage failure.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Storage(err)
}

// IssueList accumulates validation failures so every missing or invalid
// field is reported together, not just the first one found.
type IssueList struct {
	issues []FieldIssue
}

func (l *IssueList) Add(field, message string) {
	l.issues = append(l.issues, FieldIssue{Field: field, Message: message})
}

func (l *IssueList) Require(field, value, message string) {
	if strings.TrimSpace(value) == "" {
		l.Add(field, message)
	}
}

// Err returns the accumulated issues as a validation error, or nil when
// everything passed.
func (l *IssueList) Err() error {
	if len(l.issues) == 0 {
		return nil
	}
	return Validation(l.issues)
}
