package rpn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForNextAccumulates(t *testing.T) {
	in := NewInterpreter()
	require.Equal(t, ResultOK, in.Parse("0 1 5 FOR i + NEXT"))
	require.Equal(t, int64(15), popInt(t, in))
}

func TestForBodyNeverExecutesWhenStartExceedsEnd(t *testing.T) {
	in := NewInterpreter()
	require.Equal(t, ResultOK, in.Parse("42 5 1 FOR i + NEXT"))
	require.Equal(t, int64(42), popInt(t, in))
}

func TestNestedForUsesInnermostIndex(t *testing.T) {
	in := NewInterpreter()
	require.Equal(t, ResultOK, in.Parse(": PAIRS 0 1 2 FOR 1 2 FOR i + NEXT NEXT ;"))
	require.Equal(t, ResultOK, in.Parse("PAIRS"))
	require.Equal(t, int64(6), popInt(t, in))
}

func TestIIsErrorOutsideLoop(t *testing.T) {
	in := NewInterpreter()
	res := in.Parse("i")
	require.Equal(t, ResultEvalError, res)
	require.Contains(t, in.Status(), "not inside a FOR loop")
}

func TestNextWithoutForIsError(t *testing.T) {
	in := NewInterpreter()
	res := in.Parse("NEXT")
	require.Equal(t, ResultEvalError, res)
}

func TestIfteArgumentOrder(t *testing.T) {
	// "else-val then-val cond IFTE"
	in := NewInterpreter()
	require.Equal(t, ResultOK, in.Parse("10 20 1 1 == IFTE"))
	require.Equal(t, int64(20), popInt(t, in))

	in2 := NewInterpreter()
	require.Equal(t, ResultOK, in2.Parse("10 20 1 2 == IFTE"))
	require.Equal(t, int64(10), popInt(t, in2))
}
