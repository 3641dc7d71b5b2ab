package rpn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackSizeValidator(t *testing.T) {
	s := NewStack(nil)
	v := StackSizeValidator{N: 2}
	require.False(t, v.Validate(s))
	s.Push(NewInteger(1))
	require.False(t, v.Validate(s))
	s.Push(NewInteger(2))
	require.True(t, v.Validate(s))
}

func TestStrictTypeValidatorPositionOrder(t *testing.T) {
	s := NewStack(nil)
	s.Push(NewInteger(1))  // bottom -> position 2
	s.Push(NewString("s")) // top -> position 1
	v := StrictTypeValidator{Params: []ParamSpec{{"top", ParamString}, {"bottom", ParamInteger}}}
	require.True(t, v.Validate(s))

	v2 := StrictTypeValidator{Params: []ParamSpec{{"top", ParamInteger}, {"bottom", ParamString}}}
	require.False(t, v2.Validate(s))
}

func TestAnyOfValidatorShortCircuits(t *testing.T) {
	s := NewStack(nil)
	s.Push(NewVec3(Vec3{1, 2, 3}))
	v := AnyOfValidator{Alternatives: []Validator{
		StrictTypeValidator{Params: []ParamSpec{{"x", ParamNumber}}},
		StrictTypeValidator{Params: []ParamSpec{{"v", ParamVec3}}},
	}}
	require.True(t, v.Validate(s))
}
