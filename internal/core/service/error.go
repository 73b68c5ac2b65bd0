package service

import "github.com/pkg/errors"

// ValidationError is returned when submitted data can not be accepted.
// Its message is meant to be displayed to users as is.
type ValidationError struct {
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

func (e *ValidationError) UserMessage() string {
	return e.message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{message: message}
}

var (
	ErrEmptyItem   = NewValidationError("You can't have an empty list item")
	ErrItemTooLong = NewValidationError("Item text is too long")
)

func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
