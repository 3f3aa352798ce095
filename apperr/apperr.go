// Package apperr defines the stable error kinds surfaced at the API
// boundary. Handlers map kinds to HTTP status codes; internal detail never
// crosses the boundary.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindValidation        Kind = "ValidationError"
	KindProductNotFound   Kind = "ProductNotFound"
	KindInsufficientStock Kind = "InsufficientStock"
	KindPersistence       Kind = "PersistenceFailure"
	KindPaymentInitiation Kind = "PaymentInitiationFailed"
	KindUnknownIntent     Kind = "UnknownPaymentIntent"
)

type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap keeps the underlying error for logs while callers only ever see
// kind and message.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// KindOf returns the kind of err, or an empty kind for plain errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// MessageOf returns the caller-safe message for err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}

// Status maps an error to the HTTP status its kind is reported with.
func Status(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindProductNotFound:
		return http.StatusNotFound
	case KindInsufficientStock:
		return http.StatusConflict
	case KindPaymentInitiation:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
