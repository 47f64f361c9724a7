// Package api holds the wire contract of the storefront HTTP API: the
// response envelope, the request and response bodies and the OpenAPI
// document that describes them. The server and the staff client share it.
package api

import (
	"encoding/json"
	"time"
)

// Error codes carried in ErrorBody.Code.
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeConflict          = "CONFLICT"
	CodeIllegalTransition = "INVALID_STATUS_TRANSITION"
	CodeCartEmpty         = "CART_EMPTY"
	CodeMissingSession    = "MISSING_SESSION"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeUnavailable       = "PRODUCT_UNAVAILABLE"
	CodeInternal          = "INTERNAL_ERROR"
)

// SessionHeader identifies the customer session that owns a cart.
const SessionHeader = "X-Session-ID"

type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"requestId,omitempty"`
}

type ErrorBody struct {
	Code             string   `json:"code"`
	Message          string   `json:"message"`
	ValidationErrors []string `json:"validationErrors,omitempty"`
}

// Envelope wraps every response. Data is set on success, Error otherwise.
type Envelope struct {
	Success  bool            `json:"success"`
	Data     json.RawMessage `json:"data,omitempty"`
	Error    *ErrorBody      `json:"error,omitempty"`
	Metadata Metadata        `json:"metadata"`
}

// Success wraps data in a successful envelope.
func Success(data any, meta Metadata) (Envelope, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Success: true, Data: raw, Metadata: meta}, nil
}

// Failure builds an error envelope.
func Failure(body ErrorBody, meta Metadata) Envelope {
	return Envelope{Success: false, Error: &body, Metadata: meta}
}
