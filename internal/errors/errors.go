// Package errors provides the error type for failed message requests.
package errors

import (
	"errors"
	"fmt"
)

// ErrRequestFailed matches every RequestFailedError via errors.Is.
var ErrRequestFailed = errors.New("request failed")

// Failure reasons, used only as log fields.
const (
	ReasonNetwork = "network"
	ReasonStatus  = "status"
	ReasonPayload = "payload"
)

// maxBodySnippet bounds how much of an error response body is kept.
const maxBodySnippet = 512

// RequestFailedError is the single failure kind of a message request.
// Network failures, non-2xx responses and malformed payloads all use it;
// only the populated fields differ.
type RequestFailedError struct {
	Endpoint   string
	HTTPStatus int
	Body       string
	Message    string
	Cause      error

	reason string
}

func (e *RequestFailedError) Error() string {
	var msg string
	switch {
	case e.HTTPStatus > 0:
		msg = fmt.Sprintf("request failed [%d] at %s", e.HTTPStatus, e.Endpoint)
	case e.Endpoint != "":
		msg = fmt.Sprintf("request failed at %s", e.Endpoint)
	default:
		msg = "request failed"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause
func (e *RequestFailedError) Unwrap() error {
	return e.Cause
}

// Is allows comparison with the ErrRequestFailed sentinel
func (e *RequestFailedError) Is(target error) bool {
	if target == ErrRequestFailed {
		return true
	}
	_, ok := target.(*RequestFailedError)
	return ok
}

// Reason reports which part of the request failed: network, status or payload.
func (e *RequestFailedError) Reason() string {
	if e.reason == "" {
		return ReasonNetwork
	}
	return e.reason
}

// NewNetworkFailure creates a RequestFailedError for a transport-level failure
func NewNetworkFailure(endpoint string, cause error) *RequestFailedError {
	return &RequestFailedError{
		Endpoint: endpoint,
		Cause:    cause,
		reason:   ReasonNetwork,
	}
}

// NewStatusFailure creates a RequestFailedError for a non-2xx response.
// The body is truncated for diagnostics.
func NewStatusFailure(endpoint string, status int, body string) *RequestFailedError {
	if len(body) > maxBodySnippet {
		body = body[:maxBodySnippet] + "..."
	}
	return &RequestFailedError{
		Endpoint:   endpoint,
		HTTPStatus: status,
		Body:       body,
		Message:    "unexpected status",
		reason:     ReasonStatus,
	}
}

// NewPayloadFailure creates a RequestFailedError for a response whose payload
// does not carry the expected message field
func NewPayloadFailure(endpoint, message string) *RequestFailedError {
	return &RequestFailedError{
		Endpoint: endpoint,
		Message:  message,
		reason:   ReasonPayload,
	}
}

// IsRequestFailed reports whether err is (or wraps) a RequestFailedError
func IsRequestFailed(err error) bool {
	return errors.Is(err, ErrRequestFailed)
}

// GetHTTPStatus extracts the HTTP status from err, or 0 if none is recorded
func GetHTTPStatus(err error) int {
	var rf *RequestFailedError
	if errors.As(err, &rf) {
		return rf.HTTPStatus
	}
	return 0
}

// GetReason extracts the failure reason from err, or "" for foreign errors
func GetReason(err error) string {
	var rf *RequestFailedError
	if errors.As(err, &rf) {
		return rf.Reason()
	}
	return ""
}

// GetEndpoint extracts the requested endpoint from err, or "" if none is recorded
func GetEndpoint(err error) string {
	var rf *RequestFailedError
	if errors.As(err, &rf) {
		return rf.Endpoint
	}
	return ""
}

// GetResponseBody extracts the recorded error response body from err
func GetResponseBody(err error) string {
	var rf *RequestFailedError
	if errors.As(err, &rf) {
		return rf.Body
	}
	return ""
}
