// Package errors provides the SDK's error taxonomy.
// All error types support errors.Is against the package sentinels and errors.As
// against the concrete types; wrapping types also unwrap to their cause.
package errors

import (
	stdErrors "errors"
	"fmt"

	"github.com/robotkit/robotkit-sdk/domain/entities"
)

// Sentinels matched by errors.Is for each error kind.
var (
	ErrTypeMismatch             = stdErrors.New("type mismatch")
	ErrUnknownAttribute         = stdErrors.New("unknown attribute")
	ErrMissingContractAttribute = stdErrors.New("missing contract attribute")
	ErrLookup                   = stdErrors.New("lookup failed")
	ErrValue                    = stdErrors.New("invalid value")
	ErrIDConflict               = stdErrors.New("id conflict")
	ErrHost                     = stdErrors.New("host failure")
)

// ErrorDetail is an alias to entities.ErrorDetail for convenience.
type ErrorDetail = entities.ErrorDetail

// DetailedError is implemented by error types that can describe themselves as
// a structured ErrorDetail.
type DetailedError interface {
	error
	ToErrorDetail() *entities.ErrorDetail
}

// ToErrorDetail converts any error to a structured ErrorDetail, following the
// wrap chain of SDK errors.
func ToErrorDetail(err error) *entities.ErrorDetail {
	if err == nil {
		return nil
	}

	var e *entities.ErrorDetail
	if stdErrors.As(err, &e) {
		return e
	}

	var de DetailedError
	if stdErrors.As(err, &de) {
		return de.ToErrorDetail()
	}

	return &entities.ErrorDetail{
		Message: err.Error(),
		Type:    "internal",
	}
}

func wrappedDetail(err error) *entities.ErrorDetail {
	if err == nil {
		return nil
	}
	return ToErrorDetail(err)
}

// TypeMismatchError reports a wrapped instance that does not satisfy the
// required host type. It is a programming error and is never retried.
type TypeMismatchError struct {
	Required entities.TypeTag
	Actual   entities.TypeTag
}

func (e *TypeMismatchError) Error() string {
	actual := string(e.Actual)
	if actual == "" {
		actual = "<nil>"
	}
	return fmt.Sprintf("type mismatch: %s does not satisfy %s", actual, e.Required)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// ToErrorDetail implements DetailedError.
func (e *TypeMismatchError) ToErrorDetail() *entities.ErrorDetail {
	return entities.NewErrorDetail("type_mismatch", e.Error()).
		WithCode(string(e.Required)).
		WithDetails(map[string]any{"required": string(e.Required), "actual": string(e.Actual)})
}

// UnknownAttributeError reports a name resolved neither by a wrapper nor by the
// host instance it wraps.
//
// ReadOnly is set when the attribute exists but cannot be written.
type UnknownAttributeError struct {
	Owner    string
	Name     string
	ReadOnly bool
}

func (e *UnknownAttributeError) Error() string {
	if e.ReadOnly {
		return fmt.Sprintf("attribute %q of %s is read-only", e.Name, e.Owner)
	}
	return fmt.Sprintf("%s has no attribute %q", e.Owner, e.Name)
}

func (e *UnknownAttributeError) Is(target error) bool {
	return target == ErrUnknownAttribute
}

// ToErrorDetail implements DetailedError.
func (e *UnknownAttributeError) ToErrorDetail() *entities.ErrorDetail {
	return entities.NewErrorDetail("unknown_attribute", e.Error()).
		WithCode(e.Name).
		WithDetails(map[string]any{"owner": e.Owner, "name": e.Name, "read_only": e.ReadOnly})
}

// MissingContractAttributeError reports a concrete definition that leaves a
// required attribute unassigned.
type MissingContractAttributeError struct {
	Attribute string
	Class     string
}

func (e *MissingContractAttributeError) Error() string {
	return fmt.Sprintf("`%s` must be a class attribute of `%s`", e.Attribute, e.Class)
}

func (e *MissingContractAttributeError) Is(target error) bool {
	return target == ErrMissingContractAttribute
}

// ToErrorDetail implements DetailedError.
func (e *MissingContractAttributeError) ToErrorDetail() *entities.ErrorDetail {
	return entities.NewErrorDetail("contract", e.Error()).
		WithCode(e.Attribute).
		WithDetails(map[string]any{"attribute": e.Attribute, "class": e.Class})
}

// LookupError reports a numbered or named entity that could not be resolved.
// Err holds the host failure that caused it, if any.
type LookupError struct {
	Err  error
	Key  any
	Kind string
}

func (e *LookupError) Error() string {
	msg := fmt.Sprintf("lookup of %v failed", e.Key)
	if e.Kind != "" {
		msg = fmt.Sprintf("%s: lookup of %v failed", e.Kind, e.Key)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

func (e *LookupError) Is(target error) bool {
	return target == ErrLookup
}

// ToErrorDetail implements DetailedError.
func (e *LookupError) ToErrorDetail() *entities.ErrorDetail {
	d := entities.NewErrorDetail("lookup", e.Error()).
		WithCode(fmt.Sprint(e.Key)).
		WithWrapped(wrappedDetail(e.Err))
	d.IsNotFound = true
	return d
}

// ValueError reports an invalid value: a checked enumeration code that names no
// member, an alias that resolves to nothing, or a value of the wrong shape.
type ValueError struct {
	Err    error
	Value  any
	Reason string
}

func (e *ValueError) Error() string {
	msg := fmt.Sprintf("invalid value %v", e.Value)
	if e.Reason != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Reason)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

func (e *ValueError) Is(target error) bool {
	return target == ErrValue
}

// ToErrorDetail implements DetailedError.
func (e *ValueError) ToErrorDetail() *entities.ErrorDetail {
	return entities.NewErrorDetail("value", e.Error()).
		WithCode(fmt.Sprint(e.Value)).
		WithWrapped(wrappedDetail(e.Err))
}

// IDConflictError reports an attempt to create an entity over an existing one
// without asking to overwrite it.
type IDConflictError struct {
	Kind string
	ID   int
}

func (e *IDConflictError) Error() string {
	return fmt.Sprintf("%s with id %d already exists", e.Kind, e.ID)
}

func (e *IDConflictError) Is(target error) bool {
	return target == ErrIDConflict
}

// ToErrorDetail implements DetailedError.
func (e *IDConflictError) ToErrorDetail() *entities.ErrorDetail {
	return entities.NewErrorDetail("id_conflict", e.Error()).
		WithCode(fmt.Sprint(e.ID)).
		WithDetails(map[string]any{"kind": e.Kind, "id": e.ID})
}

// HostError wraps a failure raised inside the host while serving a member
// access, including recovered panics.
type HostError struct {
	Err    error
	Type   entities.TypeTag
	Member string
	Panic  bool
}

func (e *HostError) Error() string {
	what := "failed"
	if e.Panic {
		what = "panicked"
	}
	if e.Member != "" {
		return fmt.Sprintf("host %s.%s %s: %v", e.Type, e.Member, what, e.Err)
	}
	return fmt.Sprintf("host %s %s: %v", e.Type, what, e.Err)
}

func (e *HostError) Unwrap() error {
	return e.Err
}

func (e *HostError) Is(target error) bool {
	return target == ErrHost
}

// ToErrorDetail implements DetailedError.
func (e *HostError) ToErrorDetail() *entities.ErrorDetail {
	return entities.NewErrorDetail("host", e.Error()).
		WithCode(e.Member).
		WithDetails(map[string]any{"type": string(e.Type), "panic": e.Panic})
}
