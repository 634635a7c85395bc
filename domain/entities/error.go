package entities

import "fmt"

// ErrorDetail is the structured, serializable form of an SDK error.
// Error types: "type_mismatch", "unknown_attribute", "contract", "lookup",
// "value", "id_conflict", "host", "internal".
type ErrorDetail struct {
	// Wrapped is the detail of the underlying cause, if any.
	Wrapped *ErrorDetail `json:"wrapped,omitempty" yaml:"wrapped,omitempty"`

	// Details carries the error's structured fields (ids, names, type tags).
	Details map[string]any `json:"details,omitempty" yaml:"details,omitempty"`

	// Message is a human-readable description.
	Message string `json:"message" yaml:"message"`

	// Type categorizes the error.
	Type string `json:"type" yaml:"type"`

	// Code is a machine-readable code, usually the member or entity key involved.
	Code string `json:"code,omitempty" yaml:"code,omitempty"`

	// IsNotFound is set for lookups that resolved nothing.
	IsNotFound bool `json:"is_not_found,omitempty" yaml:"is_not_found,omitempty"`
}

// Error implements the error interface.
func (e *ErrorDetail) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if e.Type != "" && e.Type != "internal" {
		msg = fmt.Sprintf("%s: %s", e.Type, msg)
	}
	if e.Code != "" {
		msg = fmt.Sprintf("%s [%s]", msg, e.Code)
	}
	if e.Wrapped != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Wrapped.Error())
	}
	return msg
}

// NewErrorDetail creates an ErrorDetail with the given type and message.
func NewErrorDetail(errorType, message string) *ErrorDetail {
	return &ErrorDetail{
		Type:    errorType,
		Message: message,
	}
}

// WithDetails attaches structured fields and returns e.
func (e *ErrorDetail) WithDetails(details map[string]any) *ErrorDetail {
	e.Details = details
	return e
}

// WithCode sets the code and returns e.
func (e *ErrorDetail) WithCode(code string) *ErrorDetail {
	e.Code = code
	return e
}

// WithWrapped sets the cause detail and returns e.
func (e *ErrorDetail) WithWrapped(cause *ErrorDetail) *ErrorDetail {
	e.Wrapped = cause
	return e
}
