package httperr

import "errors"

// ===============================
// Business error codes
// ===============================

const (
	CodeValidation        = "validation_error"
	CodeNotFound          = "not_found"
	CodeForbidden         = "forbidden"
	CodeInvalidTransition = "invalid_transition"
	CodeAlreadyReviewed   = "already_reviewed"
	CodeInactiveUser      = "inactive_user"
)

type BusinessError struct {
	Code  string
	Field string
}

func (e BusinessError) Error() string {
	if e.Field != "" {
		return e.Code + ": " + e.Field
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// ErrField reports a validation-style error tied to a single field.
func ErrField(code, field string) error {
	return BusinessError{Code: code, Field: field}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
