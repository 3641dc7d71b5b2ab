package rpn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClearEmptiesStack(t *testing.T) {
	in := NewInterpreter()
	require.Equal(t, ResultOK, in.Parse("1 2 3 CLEAR"))
	require.Equal(t, 0, in.Stack.Depth())
}

func TestDupDropSwapOver(t *testing.T) {
	in := NewInterpreter()
	require.Equal(t, ResultOK, in.Parse("1 DUP"))
	require.Equal(t, 2, in.Stack.Depth())

	in2 := NewInterpreter()
	require.Equal(t, ResultOK, in2.Parse("1 2 SWAP"))
	require.Equal(t, int64(1), popInt(t, in2))
	require.Equal(t, int64(2), popInt(t, in2))

	in3 := NewInterpreter()
	require.Equal(t, ResultOK, in3.Parse("1 2 OVER"))
	require.Equal(t, int64(1), popInt(t, in3))
	require.Equal(t, int64(2), popInt(t, in3))
	require.Equal(t, int64(1), popInt(t, in3))
}

func TestDropN(t *testing.T) {
	in := NewInterpreter()
	require.Equal(t, ResultOK, in.Parse("1 2 3 4 2 DROPN"))
	require.Equal(t, int64(2), popInt(t, in))
	require.Equal(t, int64(1), popInt(t, in))
}

func TestDepth(t *testing.T) {
	in := NewInterpreter()
	require.Equal(t, ResultOK, in.Parse("1 2 3 DEPTH"))
	require.Equal(t, int64(3), popInt(t, in))
}

func TestDupNPreservesOrder(t *testing.T) {
	in := NewInterpreter()
	require.Equal(t, ResultOK, in.Parse("1 2 3 2 DUPN"))
	require.Equal(t, int64(3), popInt(t, in))
	require.Equal(t, int64(2), popInt(t, in))
	require.Equal(t, int64(3), popInt(t, in))
	require.Equal(t, int64(2), popInt(t, in))
	require.Equal(t, int64(1), popInt(t, in))
}

func TestNipNRemovesOnlyThePositionNValue(t *testing.T) {
	in := NewInterpreter()
	require.Equal(t, ResultOK, in.Parse("CLEAR 10 9 8 7 6 5 4 3 2 1 5 NIPN"))
	require.Equal(t, 9, in.Stack.Depth())
	for _, want := range []int64{1, 2, 3, 4, 6, 7, 8, 9, 10} {
		require.Equal(t, want, popInt(t, in))
	}
}

func TestPick(t *testing.T) {
	in := NewInterpreter()
	require.Equal(t, ResultOK, in.Parse("1 2 3 2 PICK"))
	require.Equal(t, int64(2), popInt(t, in))
	require.Equal(t, int64(3), popInt(t, in))
}

func TestTuckN(t *testing.T) {
	in := NewInterpreter()
	require.Equal(t, ResultOK, in.Parse("1 2 3 2 TUCKN"))
	require.Equal(t, int64(3), popInt(t, in))
	require.Equal(t, int64(3), popInt(t, in))
	require.Equal(t, int64(2), popInt(t, in))
	require.Equal(t, int64(1), popInt(t, in))
}

func TestReverseWholeStack(t *testing.T) {
	in := NewInterpreter()
	require.Equal(t, ResultOK, in.Parse("1 2 3 REVERSE"))
	require.Equal(t, int64(1), popInt(t, in))
	require.Equal(t, int64(2), popInt(t, in))
	require.Equal(t, int64(3), popInt(t, in))
}

func TestReverseN(t *testing.T) {
	in := NewInterpreter()
	require.Equal(t, ResultOK, in.Parse("1 2 3 4 2 REVERSEN"))
	require.Equal(t, int64(3), popInt(t, in))
	require.Equal(t, int64(4), popInt(t, in))
	require.Equal(t, int64(2), popInt(t, in))
	require.Equal(t, int64(1), popInt(t, in))
}

func TestRollUpAndDown(t *testing.T) {
	in := NewInterpreter()
	require.Equal(t, ResultOK, in.Parse("1 2 3 ROLLU"))
	require.Equal(t, int64(1), popInt(t, in))
	require.Equal(t, int64(3), popInt(t, in))
	require.Equal(t, int64(2), popInt(t, in))

	in2 := NewInterpreter()
	require.Equal(t, ResultOK, in2.Parse("1 2 3 ROLLD"))
	require.Equal(t, int64(2), popInt(t, in2))
	require.Equal(t, int64(1), popInt(t, in2))
	require.Equal(t, int64(3), popInt(t, in2))
}

func TestRotUAndRotD(t *testing.T) {
	in := NewInterpreter()
	require.Equal(t, ResultOK, in.Parse("1 2 3 ROTU"))
	require.Equal(t, int64(1), popInt(t, in))
	require.Equal(t, int64(3), popInt(t, in))
	require.Equal(t, int64(2), popInt(t, in))

	in2 := NewInterpreter()
	require.Equal(t, ResultOK, in2.Parse("1 2 3 ROTD"))
	require.Equal(t, int64(2), popInt(t, in2))
	require.Equal(t, int64(1), popInt(t, in2))
	require.Equal(t, int64(3), popInt(t, in2))
}
