package errors

import (
	stderrors "errors"

	"github.com/muhammadheryan/esports-tournament/constant"
)

type CustomError struct {
	errType constant.ErrorType
	errors  []string
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

// Errors returns the per-field messages attached to a validation failure.
func (c CustomError) Errors() []string {
	return c.errors
}

// WithErrors returns a copy of c carrying the given field messages.
func (c CustomError) WithErrors(errs ...string) CustomError {
	c.errors = append(append([]string(nil), c.errors...), errs...)
	return c
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

func NewValidationError(errs []string) CustomError {
	return SetCustomError(constant.ErrInvalidRequest).WithErrors(errs...)
}

// Is reports whether err is a CustomError of the given type.
func Is(err error, errorType constant.ErrorType) bool {
	var ce CustomError
	if !stderrors.As(err, &ce) {
		return false
	}
	return ce.errType == errorType
}
