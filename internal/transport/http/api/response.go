package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"paydesk/internal/platform/apperr"
)

type Error struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []apperr.FieldIssue `json:"fields,omitempty"`
}

type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     *Error `json:"error,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func Success(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data, RequestID: requestID})
}

func Created(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusCreated, Envelope{Success: true, Data: data, RequestID: requestID})
}

func Fail(w http.ResponseWriter, status int, code, message, requestID string) {
	WriteJSON(w, status, Envelope{Success: false, Error: &Error{Code: code, Message: message}, RequestID: requestID})
}

// FailErr maps a service error onto the response envelope. The cause of
// a storage error is logged server-side and never serialized.
func FailErr(w http.ResponseWriter, err error, requestID string) {
	appErr := apperr.From(err)
	if appErr.Cause != nil {
		slog.Error("request failed", "code", appErr.Code, "err", appErr.Cause, "requestId", requestID)
	}
	WriteJSON(w, appErr.HTTPStatus, Envelope{
		Success:   false,
		Error:     &Error{Code: appErr.Code, Message: appErr.Message, Fields: appErr.Fields},
		RequestID: requestID,
	})
}
