package httperr

import (
	"errors"
	"strings"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// ValidationError carries the set of intake fields that were missing or
// malformed. No record is persisted when one is returned.
type ValidationError struct {
	Fields []string
}

func (e ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, ", ")
}

func ErrValidation(fields ...string) error {
	return ValidationError{Fields: fields}
}

func AsValidation(err error) (ValidationError, bool) {
	var ve ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
