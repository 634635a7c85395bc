package entities

import (
	"fmt"
	"slices"
)

// EnumMember is one named member of a host enumeration.
type EnumMember struct {
	Name string
	Code int
}

// EnumType is a closed host enumeration: an ordered list of named integer codes.
// Distinct names may share a code. EnumType is immutable after construction.
type EnumType struct {
	byName  map[string]int
	name    string
	members []EnumMember
}

// NewEnumType creates an enumeration with the given members, in declaration order.
// A repeated member name keeps its first declaration.
func NewEnumType(name string, members ...EnumMember) *EnumType {
	e := &EnumType{
		name:    name,
		byName:  make(map[string]int, len(members)),
		members: make([]EnumMember, 0, len(members)),
	}
	for _, m := range members {
		if _, dup := e.byName[m.Name]; dup {
			continue
		}
		e.byName[m.Name] = m.Code
		e.members = append(e.members, m)
	}
	return e
}

// Name returns the host name of the enumeration (e.g. "IRobotProjectType").
func (e *EnumType) Name() string {
	return e.name
}

// Members returns a copy of the members in declaration order.
func (e *EnumType) Members() []EnumMember {
	return slices.Clone(e.members)
}

// Names returns the member names in declaration order.
func (e *EnumType) Names() []string {
	names := make([]string, len(e.members))
	for i, m := range e.members {
		names[i] = m.Name
	}
	return names
}

// Codes returns the member codes in declaration order, repeated codes included.
func (e *EnumType) Codes() []int {
	codes := make([]int, len(e.members))
	for i, m := range e.members {
		codes[i] = m.Code
	}
	return codes
}

// Lookup returns the value of the member called name.
func (e *EnumType) Lookup(name string) (EnumValue, bool) {
	code, ok := e.byName[name]
	if !ok {
		return EnumValue{}, false
	}
	return EnumValue{enum: e, code: code}, true
}

// Value converts code to a value of this enumeration without checking that a
// member defines it.
func (e *EnumType) Value(code int) EnumValue {
	return EnumValue{enum: e, code: code}
}

// IsDefined reports whether some member has the given code.
func (e *EnumType) IsDefined(code int) bool {
	for _, m := range e.members {
		if m.Code == code {
			return true
		}
	}
	return false
}

// Attr exposes the enumeration's own attributes by name: "Name", "Names" and "Codes".
func (e *EnumType) Attr(name string) (any, bool) {
	switch name {
	case "Name":
		return e.Name(), true
	case "Names":
		return e.Names(), true
	case "Codes":
		return e.Codes(), true
	}
	return nil, false
}

// EnumValue is a value of a host enumeration. Two values are equal when they
// belong to the same enumeration and carry the same code.
type EnumValue struct {
	enum *EnumType
	code int
}

// Int returns the integer code of the value.
func (v EnumValue) Int() int {
	return v.code
}

// Type returns the enumeration the value belongs to, nil for the zero value.
func (v EnumValue) Type() *EnumType {
	return v.enum
}

// IsZero reports whether v is the zero EnumValue (no enumeration attached).
func (v EnumValue) IsZero() bool {
	return v.enum == nil
}

// Defined reports whether a member of the enumeration carries the value's code.
func (v EnumValue) Defined() bool {
	return v.enum != nil && v.enum.IsDefined(v.code)
}

// Name returns the first member name carrying the value's code, or "" when the
// code is not defined.
func (v EnumValue) Name() string {
	if v.enum == nil {
		return ""
	}
	for _, m := range v.enum.members {
		if m.Code == v.code {
			return m.Name
		}
	}
	return ""
}

// String renders the value as "Enum.MEMBER", or "Enum(code)" for undefined codes.
func (v EnumValue) String() string {
	if v.enum == nil {
		return fmt.Sprintf("<nil>(%d)", v.code)
	}
	if name := v.Name(); name != "" {
		return v.enum.name + "." + name
	}
	return fmt.Sprintf("%s(%d)", v.enum.name, v.code)
}
