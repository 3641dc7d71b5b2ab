package rpn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func popInt(t *testing.T, in *Interpreter) int64 {
	t.Helper()
	v, ok := in.Stack.Pop()
	require.True(t, ok)
	require.Equal(t, TagInteger, v.Tag())
	return v.Integer()
}

func popFloat(t *testing.T, in *Interpreter) float64 {
	t.Helper()
	v, ok := in.Stack.Pop()
	require.True(t, ok)
	require.Equal(t, TagDouble, v.Tag())
	return v.Double()
}

func TestArithmeticIntegerPreserving(t *testing.T) {
	in := NewInterpreter()
	require.Equal(t, ResultOK, in.Parse("2 3 +"))
	require.Equal(t, int64(5), popInt(t, in))
}

func TestSubtractionOrder(t *testing.T) {
	// documented convention: "5 3 -" -> top(3) - second(5) = -2
	in := NewInterpreter()
	require.Equal(t, ResultOK, in.Parse("5 3 -"))
	require.Equal(t, int64(-2), popInt(t, in))
}

func TestDivisionOrder(t *testing.T) {
	in := NewInterpreter()
	require.Equal(t, ResultOK, in.Parse("2.0 8.0 /"))
	require.Equal(t, 4.0, popFloat(t, in))
}

func TestIntegerDivideByZeroFallsBackToFloat(t *testing.T) {
	in := NewInterpreter()
	require.Equal(t, ResultOK, in.Parse("0 5 /"))
	got := popFloat(t, in)
	require.True(t, math.IsInf(got, 1))
}

func TestNegBitwiseOnIntegerArithmeticOnDouble(t *testing.T) {
	in := NewInterpreter()
	require.Equal(t, ResultOK, in.Parse("5 NEG"))
	require.Equal(t, int64(^int64(5)), popInt(t, in))

	in2 := NewInterpreter()
	require.Equal(t, ResultOK, in2.Parse("5.0 NEG"))
	require.Equal(t, -5.0, popFloat(t, in2))
}

func TestNegMatchesXorThenComplementScenario(t *testing.T) {
	in := NewInterpreter()
	require.Equal(t, ResultOK, in.Parse("0x55a8 0xaaaa XOR"))
	require.Equal(t, ResultOK, in.Parse("DUP NEG"))
	x := popInt(t, in)
	orig := popInt(t, in)
	require.Equal(t, ^orig, x)
}

func TestAbsOnVec3IsMagnitude(t *testing.T) {
	in := NewInterpreter()
	require.Equal(t, ResultOK, in.Parse("3.0 4.0 0.0 ->VEC3 ABS"))
	require.Equal(t, 5.0, popFloat(t, in))
}

func TestPowAndSqrt(t *testing.T) {
	in := NewInterpreter()
	require.Equal(t, ResultOK, in.Parse("2.0 10.0 POW"))
	require.Equal(t, 1024.0, popFloat(t, in))

	in2 := NewInterpreter()
	require.Equal(t, ResultOK, in2.Parse("16.0 SQRT"))
	require.Equal(t, 4.0, popFloat(t, in2))
}

func TestConstants(t *testing.T) {
	in := NewInterpreter()
	require.Equal(t, ResultOK, in.Parse("k_PI"))
	require.InDelta(t, math.Pi, popFloat(t, in), 1e-12)
	require.Equal(t, ResultOK, in.Parse("k_E"))
	require.InDelta(t, math.E, popFloat(t, in), 1e-12)
}

func TestMinMax(t *testing.T) {
	in := NewInterpreter()
	require.Equal(t, ResultOK, in.Parse("3 7 MIN"))
	require.Equal(t, int64(3), popInt(t, in))
	require.Equal(t, ResultOK, in.Parse("3 7 MAX"))
	require.Equal(t, int64(7), popInt(t, in))
}

func TestVec3AddSub(t *testing.T) {
	in := NewInterpreter()
	require.Equal(t, ResultOK, in.Parse("1.0 2.0 3.0 ->VEC3 1.0 1.0 1.0 ->VEC3 +"))
	v, _ := in.Stack.Pop()
	require.Equal(t, Vec3{X: 2, Y: 3, Z: 4}, v.Vec3())
}
