package apperrors

import "errors"

// ErrInvalidInput indicates that a request payload could not be decoded into the expected schema.
var ErrInvalidInput = errors.New("invalid input")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDivisionByZero indicates that a calculation step would divide by zero,
// e.g. a VAT rate of -100 percent.
var ErrDivisionByZero = errors.New("division by zero")

// ErrConversion indicates that a value could not be represented in the target numeric format
// and was replaced by zero.
var ErrConversion = errors.New("numeric conversion out of range")
