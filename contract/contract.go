// Package contract enforces that concrete definitions declare required
// attributes.
//
// A Contract names the attributes every concrete definition must assign. Kinds
// built on a contract (registry kinds, label kinds) call Define from a
// package-level var through MustDefine, so a definition that omits a required
// attribute stops the program at start-up instead of failing on first use.
package contract

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/go-playground/validator/v10"

	"github.com/robotkit/robotkit-sdk/domain/errors"
)

// validate is a package-level singleton; validators cache struct metadata.
var validate = validator.New()

// Contract is an ordered set of required attribute names.
type Contract struct {
	names []string
}

// Require declares the attributes a concrete definition must assign.
func Require(names ...string) *Contract {
	c := &Contract{}
	for _, n := range names {
		if !slices.Contains(c.names, n) {
			c.names = append(c.names, n)
		}
	}
	return c
}

// Extend returns a contract requiring c's attributes and names.
func (c *Contract) Extend(names ...string) *Contract {
	return Require(append(slices.Clone(c.names), names...)...)
}

// Names returns the required attribute names in declaration order.
func (c *Contract) Names() []string {
	return slices.Clone(c.names)
}

// Definition describes one definition checked against a contract.
type Definition struct {
	// Attributes is a struct, or pointer to struct, with one field per attribute.
	Attributes any

	// Init runs before the check, as the definition's own initialisation.
	Init func() error

	// Name identifies the definition in errors.
	Name string

	// Abstract definitions may leave attributes unassigned.
	Abstract bool
}

// Define runs the definition's Init hook, then checks every required
// attribute unless the definition is abstract. An Init error is returned as is.
func (c *Contract) Define(d Definition) error {
	if d.Init != nil {
		if err := d.Init(); err != nil {
			return err
		}
	}
	if d.Abstract {
		return nil
	}
	return c.Check(d.Name, d.Attributes)
}

// MustDefine is like Define but panics on error.
func (c *Contract) MustDefine(d Definition) {
	if err := c.Define(d); err != nil {
		panic(err)
	}
}

// Check reports the first required attribute of attrs that is missing or holds
// a zero value, as a MissingContractAttributeError.
func (c *Contract) Check(class string, attrs any) error {
	v := reflect.ValueOf(attrs)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			break
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		if len(c.names) == 0 {
			return nil
		}
		return &errors.MissingContractAttributeError{Attribute: c.names[0], Class: class}
	}

	for _, name := range c.names {
		f := v.FieldByName(name)
		if !f.IsValid() || !f.CanInterface() {
			return &errors.MissingContractAttributeError{Attribute: name, Class: class}
		}
		if err := validate.Var(f.Interface(), "required"); err != nil {
			return &errors.MissingContractAttributeError{Attribute: name, Class: class}
		}
	}
	return nil
}

// Has reports whether attrs assigns name.
func Has(attrs any, name string) bool {
	return Require(name).Check(fmt.Sprintf("%T", attrs), attrs) == nil
}
