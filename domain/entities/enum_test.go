package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnum() *EnumType {
	return NewEnumType("IRobotCaseType",
		EnumMember{Name: "I_CT_SIMPLE", Code: 0},
		EnumMember{Name: "I_CT_COMBINATION", Code: 1},
		EnumMember{Name: "I_CT_CODE_COMBINATION", Code: 1},
	)
}

func TestEnumType_Lookup(t *testing.T) {
	e := testEnum()

	v, ok := e.Lookup("I_CT_COMBINATION")
	require.True(t, ok)
	assert.Equal(t, 1, v.Int())
	assert.Same(t, e, v.Type())

	_, ok = e.Lookup("I_CT_MISSING")
	assert.False(t, ok)
}

func TestEnumType_SharedCodes(t *testing.T) {
	e := testEnum()
	a, _ := e.Lookup("I_CT_COMBINATION")
	b, _ := e.Lookup("I_CT_CODE_COMBINATION")

	assert.Equal(t, a, b)
	assert.Equal(t, "I_CT_COMBINATION", b.Name(), "name resolves to the first member with the code")
	assert.Equal(t, []int{0, 1, 1}, e.Codes())
}

func TestEnumType_Value_Unchecked(t *testing.T) {
	e := testEnum()
	v := e.Value(42)

	assert.Equal(t, 42, v.Int())
	assert.False(t, v.Defined())
	assert.Equal(t, "", v.Name())
	assert.Equal(t, "IRobotCaseType(42)", v.String())
	assert.Equal(t, "IRobotCaseType.I_CT_SIMPLE", e.Value(0).String())
}

func TestEnumType_DuplicateNameKeepsFirst(t *testing.T) {
	e := NewEnumType("E", EnumMember{Name: "A", Code: 1}, EnumMember{Name: "A", Code: 2})
	v, ok := e.Lookup("A")
	require.True(t, ok)
	assert.Equal(t, 1, v.Int())
	assert.Len(t, e.Members(), 1)
}

func TestEnumType_Attr(t *testing.T) {
	e := testEnum()

	name, ok := e.Attr("Name")
	require.True(t, ok)
	assert.Equal(t, "IRobotCaseType", name)

	names, ok := e.Attr("Names")
	require.True(t, ok)
	assert.Equal(t, []string{"I_CT_SIMPLE", "I_CT_COMBINATION", "I_CT_CODE_COMBINATION"}, names)

	_, ok = e.Attr("Parse")
	assert.False(t, ok)
}

func TestEnumValue_Zero(t *testing.T) {
	var v EnumValue
	assert.True(t, v.IsZero())
	assert.False(t, v.Defined())
	assert.Nil(t, v.Type())
}
