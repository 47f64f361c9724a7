package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrStructureIsInvalid marks malformed catalog data. It is fatal for the
	// product it belongs to and is never caused by a customer choice.
	ErrStructureIsInvalid = errors.New("structure is invalid")

	// ErrIllegalTransition marks a status change outside of the allowed set
	// for the current order status.
	ErrIllegalTransition = errors.New("transition is illegal")

	ErrTransport    = errors.New("transport failed")
	ErrTimeout      = errors.New("request timed out")
	ErrConnectivity = errors.New("connection failed")
	ErrRejected     = errors.New("request rejected")
)

// StructureIsInvalidError points at the offending element of a catalog entry.
type StructureIsInvalidError struct {
	Path  string
	Cause error
}

func NewStructureIsInvalidError(path string, cause error) *StructureIsInvalidError {
	return &StructureIsInvalidError{Path: path, Cause: cause}
}

func (e *StructureIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrStructureIsInvalid, e.Path, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrStructureIsInvalid, e.Path)
}

func (e *StructureIsInvalidError) Unwrap() error {
	return ErrStructureIsInvalid
}

// IllegalTransitionError is returned both by the local guard and by the
// authority when a status change is not allowed.
type IllegalTransitionError struct {
	From string
	To   string
}

func NewIllegalTransitionError(from, to fmt.Stringer) *IllegalTransitionError {
	return &IllegalTransitionError{From: from.String(), To: to.String()}
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// TransportKind classifies a failed request/response exchange.
type TransportKind int

const (
	TransportRejected TransportKind = iota
	TransportTimeout
	TransportConnectivity
)

func (k TransportKind) String() string {
	switch k {
	case TransportTimeout:
		return "timeout"
	case TransportConnectivity:
		return "connectivity"
	default:
		return "rejected"
	}
}

// TransportError describes a failed call to the order authority. Rejections
// carry the structured payload returned by the server.
type TransportError struct {
	Kind             TransportKind
	StatusCode       int
	Code             string
	Message          string
	ValidationErrors []string
	Cause            error
}

func NewTimeoutError(cause error) *TransportError {
	return &TransportError{Kind: TransportTimeout, StatusCode: http.StatusRequestTimeout, Code: "TIMEOUT", Cause: cause}
}

func NewConnectivityError(cause error) *TransportError {
	return &TransportError{Kind: TransportConnectivity, Code: "NETWORK_ERROR", Cause: cause}
}

func NewRejectedError(statusCode int, code, message string, validationErrors []string) *TransportError {
	return &TransportError{
		Kind:             TransportRejected,
		StatusCode:       statusCode,
		Code:             code,
		Message:          message,
		ValidationErrors: validationErrors,
	}
}

func (e *TransportError) Error() string {
	var b strings.Builder
	b.WriteString(e.sentinel().Error())
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, ": status %d", e.StatusCode)
	}
	if e.Code != "" {
		fmt.Fprintf(&b, " [%s]", e.Code)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, " %s", e.Message)
	}
	if len(e.ValidationErrors) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(e.ValidationErrors, "; "))
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, " (cause: %v)", e.Cause)
	}
	return b.String()
}

// Retryable reports whether repeating the same request may succeed.
func (e *TransportError) Retryable() bool {
	switch e.Kind {
	case TransportTimeout, TransportConnectivity:
		return true
	default:
		return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
	}
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

func (e *TransportError) Unwrap() error {
	return e.sentinel()
}

func (e *TransportError) sentinel() error {
	switch e.Kind {
	case TransportTimeout:
		return ErrTimeout
	case TransportConnectivity:
		return ErrConnectivity
	default:
		return ErrRejected
	}
}
