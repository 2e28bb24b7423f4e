package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes. Codes reuse the standard
// HTTP status numbering as a generic classification, they are not tied to any
// HTTP transport.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// The error kinds the booking flow and its collaborators can produce. Each is
// a distinct sentinel so callers can match with errors.Is.
var (
	InvalidDateRange        = &Failure{Code: http.StatusBadRequest, Message: "check-out date must be after check-in date"}
	RoomUnavailable         = &Failure{Code: http.StatusConflict, Message: "room is not available"}
	InvalidPaymentChoice    = &Failure{Code: http.StatusBadRequest, Message: "invalid payment method selection"}
	InsufficientPoints      = &Failure{Code: http.StatusConflict, Message: "insufficient loyalty points"}
	InvalidRating           = &Failure{Code: http.StatusBadRequest, Message: "rating must be between 1 and 5"}
	PaymentAlreadyAttached  = &Failure{Code: http.StatusConflict, Message: "payment already attached to booking"}
	InvoiceAlreadyGenerated = &Failure{Code: http.StatusConflict, Message: "invoice already generated for booking"}
	PaymentNotAttached      = &Failure{Code: http.StatusPreconditionFailed, Message: "cannot generate invoice before a payment is attached"}
)

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName + " not found",
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
