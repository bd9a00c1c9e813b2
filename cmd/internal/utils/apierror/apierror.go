package apierror

import (
	"dealership/cmd/internal/domain"
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"net/http"
)

// ErrorResponse is what services hand back to routes instead of a plain error:
// it already knows its HTTP status and serializes as the response body.
type ErrorResponse interface {
	error
	Code() int
}

type FieldError struct {
	Field   string `json:"field"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type APIError struct {
	Status  int          `json:"code"`
	Kind    string       `json:"kind"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Code() int { return e.Status }

var (
	InternalServerError = NewKind(http.StatusInternalServerError, "internal", "Internal server error")
	MalformedBodyError  = NewKind(http.StatusBadRequest, "malformed_body", "Request body could not be parsed")
	NotFoundError       = NewKind(http.StatusNotFound, "not_found", "Resource not found")
)

func NewSimple(status int, message string) *APIError {
	return &APIError{Status: status, Kind: kindForStatus(status), Message: message}
}

func NewKind(status int, kind, message string) *APIError {
	return &APIError{Status: status, Kind: kind, Message: message}
}

func NewMissingParamError(param string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Kind:    "missing_field",
		Message: fmt.Sprintf("Missing required parameter: %s", param),
		Fields:  []FieldError{{Field: param, Kind: "missing_field", Message: "is required"}},
	}
}

// FromValidationError turns validator failures into a 400 listing every field.
// The response kind is the kind of the first failing field.
func FromValidationError(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return NewKind(http.StatusBadRequest, "invalid_input", err.Error())
	}

	fields := make([]FieldError, len(verrs))
	for i, fe := range verrs {
		kind := kindForTag(fe.Tag())
		fields[i] = FieldError{Field: fe.Field(), Kind: kind, Message: messageForTag(fe)}
	}

	return &APIError{
		Status:  http.StatusBadRequest,
		Kind:    fields[0].Kind,
		Message: fmt.Sprintf("%s: %s", fields[0].Field, fields[0].Message),
		Fields:  fields,
	}
}

// FromDomainError maps the domain sentinels to responses. Anything else is
// reported as an internal error.
func FromDomainError(err error) ErrorResponse {
	kind := domain.Kind(err)
	if kind == "" {
		return InternalServerError
	}

	status := http.StatusBadRequest
	if errors.Is(err, domain.ErrVehicleNotFound) {
		status = http.StatusNotFound
	}

	resp := &APIError{Status: status, Kind: kind, Message: err.Error()}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Fields = []FieldError{{Field: verr.Field, Kind: kind, Message: verr.Wrapped.Error()}}
	}
	return resp
}

func kindForTag(tag string) string {
	switch tag {
	case "required":
		return "missing_field"
	case "calendardate":
		return "invalid_date"
	case "hourslot":
		return "invalid_hour"
	case "vehicletype", "vehiclemake", "oneof":
		return "invalid_choice"
	case "number", "numeric", "gt", "gte", "lt", "lte", "min", "max":
		return "invalid_numeric_input"
	}
	return "invalid_input"
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "calendardate":
		return "must be a date (YYYY-MM-DD)"
	case "hourslot":
		return "must be one of the hourly slots"
	case "vehicletype":
		return "must be New or Used"
	case "vehiclemake":
		return "is not a make we stock"
	}
	if fe.Param() != "" {
		return fmt.Sprintf("failed %s=%s", fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("failed %s", fe.Tag())
}

func kindForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "invalid_input"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusTooManyRequests:
		return "rate_limited"
	}
	if status >= http.StatusInternalServerError {
		return "internal"
	}
	return "error"
}
