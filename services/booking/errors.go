package booking

import (
	"errors"
	"fmt"
)

// BookingError is a domain error with a stable code the handlers map to HTTP statuses.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches on Code so wrapped errors compare against the sentinels below.
func (e *BookingError) Is(target error) bool {
	var t *BookingError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

const (
	CodeSessionNotFound    = "sessionNotFound"
	CodeInvalidTransition  = "invalidTransition"
	CodeInvalidSelection   = "invalidSelection"
	CodeAddonNotFound      = "addonNotFound"
	CodeAddonNotEligible   = "addonNotEligible"
	CodeWrongAddonType     = "wrongAddonType"
	CodeInvalidQuantity    = "invalidQuantity"
	CodeDetailsIncomplete  = "detailsIncomplete"
	CodeSubmissionInFlight = "submissionInFlight"
	CodeInquiryFailed      = "inquiryFailed"
)

var (
	ErrSessionNotFound    = &BookingError{Code: CodeSessionNotFound, Message: "booking session not found or expired"}
	ErrInvalidTransition  = &BookingError{Code: CodeInvalidTransition, Message: "action not allowed on the current step"}
	ErrInvalidSelection   = &BookingError{Code: CodeInvalidSelection, Message: "invalid selection"}
	ErrAddonNotFound      = &BookingError{Code: CodeAddonNotFound, Message: "add-on not found in catalog"}
	ErrAddonNotEligible   = &BookingError{Code: CodeAddonNotEligible, Message: "add-on is already included in the plan"}
	ErrWrongAddonType     = &BookingError{Code: CodeWrongAddonType, Message: "operation does not apply to this add-on type"}
	ErrInvalidQuantity    = &BookingError{Code: CodeInvalidQuantity, Message: "invalid quantity"}
	ErrDetailsIncomplete  = &BookingError{Code: CodeDetailsIncomplete, Message: "name, phone and date are required"}
	ErrSubmissionInFlight = &BookingError{Code: CodeSubmissionInFlight, Message: "a submission is already in progress"}
	ErrInquiryFailed      = &BookingError{Code: CodeInquiryFailed, Message: "Failed to send request. Please try again."}
)

func newBookingError(base *BookingError, msg string) error {
	return &BookingError{Code: base.Code, Message: msg}
}
