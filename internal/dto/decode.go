package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/SscSPs/booking_ledger_engine/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	// Report fields by their wire names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeError reports a payload that does not match the request schema.
type DecodeError struct {
	Msg string
}

func (e *DecodeError) Error() string {
	return "Invalid input: " + e.Msg
}

func (e *DecodeError) Unwrap() error {
	return apperrors.ErrInvalidInput
}

// DecodeBookingRequest decodes and validates a single booking payload.
func DecodeBookingRequest(data []byte) (*BookingRequest, error) {
	req := &BookingRequest{}
	if err := decode(data, req); err != nil {
		return nil, err
	}
	return req, nil
}

// DecodeBatchBookingRequest decodes and validates a batch payload.
// maxBookings limits the batch size; zero or less means unlimited.
func DecodeBatchBookingRequest(data []byte, maxBookings int) (*BatchBookingRequest, error) {
	req := &BatchBookingRequest{}
	if err := decode(data, req); err != nil {
		return nil, err
	}
	if maxBookings > 0 && len(req.Bookings) > maxBookings {
		return nil, &DecodeError{Msg: fmt.Sprintf("batch of %d bookings exceeds the limit of %d", len(req.Bookings), maxBookings)}
	}
	return req, nil
}

func decode(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return &DecodeError{Msg: err.Error()}
	}
	if err := validate.Struct(v); err != nil {
		return &DecodeError{Msg: describeValidationError(err)}
	}
	return nil
}

func describeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err.Error()
	}

	fe := validationErrs[0]
	// Drop the root struct name from e.g. "BatchBookingRequest.bookings[1].currency".
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	if fe.Tag() == "required" {
		return fmt.Sprintf("missing field `%s`", field)
	}
	return fmt.Sprintf("field `%s` failed the '%s' check", field, fe.Tag())
}
