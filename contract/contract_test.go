package contract

import (
	"context"
	stdErrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robotkit/robotkit-sdk/domain/entities"
	"github.com/robotkit/robotkit-sdk/domain/errors"
)

type parent struct {
	A entities.TypeTag
	B entities.DomainTag
}

func TestDefine_MissingAttribute(t *testing.T) {
	c := Require("A", "B")

	err := c.Define(Definition{Name: "Child", Attributes: parent{A: "IRobotNode"}})
	var missing *errors.MissingContractAttributeError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "B", missing.Attribute)
	assert.Equal(t, "Child", missing.Class)
}

func TestDefine_AllAssigned(t *testing.T) {
	c := Require("A", "B")
	attrs := &parent{A: "IRobotNode", B: 1}

	require.NoError(t, c.Define(Definition{Name: "Child", Attributes: attrs}))
	assert.True(t, Has(attrs, "B"))
	assert.False(t, Has(attrs, "C"))
}

func TestDefine_Abstract(t *testing.T) {
	c := Require("A", "B")

	require.NoError(t, c.Define(Definition{Name: "Base", Attributes: parent{}, Abstract: true}))
}

func TestDefine_InitRunsFirst(t *testing.T) {
	c := Require("A", "B")
	attrs := &parent{A: "IRobotNode"}

	err := c.Define(Definition{
		Name:       "Child",
		Attributes: attrs,
		Init: func() error {
			attrs.B = 3
			return nil
		},
	})
	require.NoError(t, err)
}

func TestDefine_InitErrorReturnedAsIs(t *testing.T) {
	boom := stdErrors.New("boom")

	err := Require("A").Define(Definition{Name: "Child", Attributes: parent{}, Init: func() error { return boom }})
	assert.Same(t, boom, err)
}

func TestDefine_InitDoesNotSkipCheck(t *testing.T) {
	err := Require("A").Define(Definition{Name: "Child", Attributes: parent{}, Init: func() error { return nil }})
	assert.ErrorIs(t, err, errors.ErrMissingContractAttribute)
}

func TestCheck_FieldKinds(t *testing.T) {
	type attrs struct {
		Enum   *entities.EnumType
		Result func(context.Context) error
		Kind   entities.LabelKind
		Tag    entities.TypeTag
	}
	c := Require("Enum", "Result", "Kind", "Tag")
	full := attrs{
		Enum:   entities.NewEnumType("E"),
		Result: func(context.Context) error { return nil },
		Kind:   2,
		Tag:    "IRobotLabel",
	}
	require.NoError(t, c.Check("Full", full))

	tests := []struct {
		name   string
		mutate func(*attrs)
		want   string
	}{
		{"nil pointer", func(a *attrs) { a.Enum = nil }, "Enum"},
		{"nil func", func(a *attrs) { a.Result = nil }, "Result"},
		{"zero int", func(a *attrs) { a.Kind = 0 }, "Kind"},
		{"empty string", func(a *attrs) { a.Tag = "" }, "Tag"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := full
			tt.mutate(&a)
			err := c.Check("Partial", &a)
			var missing *errors.MissingContractAttributeError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.want, missing.Attribute)
		})
	}
}

func TestCheck_InterfaceField(t *testing.T) {
	type attrs struct{ Data any }
	c := Require("Data")

	assert.Error(t, c.Check("Nil", attrs{}))
	assert.NoError(t, c.Check("Set", attrs{Data: "x"}))
}

func TestCheck_NotAStruct(t *testing.T) {
	err := Require("A").Check("Scalar", 42)
	assert.ErrorIs(t, err, errors.ErrMissingContractAttribute)

	var nilAttrs *parent
	err = Require("A").Check("Nil", nilAttrs)
	assert.ErrorIs(t, err, errors.ErrMissingContractAttribute)

	assert.NoError(t, Require().Check("Empty", nil))
}

func TestCheck_UnexportedField(t *testing.T) {
	type attrs struct{ hidden string }
	err := Require("hidden").Check("Hidden", attrs{hidden: "x"})
	assert.ErrorIs(t, err, errors.ErrMissingContractAttribute)
}

func TestMustDefine_Panics(t *testing.T) {
	assert.Panics(t, func() {
		Require("A").MustDefine(Definition{Name: "Child", Attributes: parent{}})
	})
	assert.NotPanics(t, func() {
		Require("A").MustDefine(Definition{Name: "Child", Attributes: parent{A: "x"}})
	})
}

func TestRequireAndExtend(t *testing.T) {
	c := Require("A", "B", "A")
	assert.Equal(t, []string{"A", "B"}, c.Names())

	child := c.Extend("C", "B")
	assert.Equal(t, []string{"A", "B", "C"}, child.Names())
	assert.Equal(t, []string{"A", "B"}, c.Names())
}
