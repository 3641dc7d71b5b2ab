package rpn

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDotSPrintsTopFirst(t *testing.T) {
	var buf bytes.Buffer
	in := NewInterpreter(WithOutput(&buf))
	require.Equal(t, ResultOK, in.Parse("1 2 3 .S"))
	out := buf.String()
	require.Contains(t, out, "[01] {integer}: 3")
	require.Contains(t, out, "[03] {integer}: 1")
}

func TestStringLiteralAtRuntime(t *testing.T) {
	in := NewInterpreter()
	require.Equal(t, ResultOK, in.Parse(`." hello world"`))
	v, ok := in.Stack.Pop()
	require.True(t, ok)
	require.Equal(t, TagString, v.Tag())
	require.Equal(t, "hello world", v.Str())
}

func TestCommentIsDiscardedAtRuntime(t *testing.T) {
	in := NewInterpreter()
	require.Equal(t, ResultOK, in.Parse("1 ( this is ignored ) 2 +"))
	require.Equal(t, int64(3), popInt(t, in))
}

func TestCommentInsideColonDefinition(t *testing.T) {
	in := NewInterpreter()
	require.Equal(t, ResultOK, in.Parse(": ADD1 ( adds one ) 1 + ;"))
	require.Equal(t, ResultOK, in.Parse("4 ADD1"))
	require.Equal(t, int64(5), popInt(t, in))
}

func TestStringLiteralInsideColonDefinitionReplays(t *testing.T) {
	var buf bytes.Buffer
	in := NewInterpreter(WithOutput(&buf))
	require.Equal(t, ResultOK, in.Parse(`: GREET ." hi there" ;`))
	require.Equal(t, ResultOK, in.Parse("GREET"))
	v, ok := in.Stack.Pop()
	require.True(t, ok)
	require.Equal(t, "hi there", v.Str())
}

func TestColonSemicolonRoundTrip(t *testing.T) {
	in := NewInterpreter()
	require.False(t, in.IsCompiling())
	require.Equal(t, ResultOK, in.Parse(": DOUBLE 2 * ;"))
	require.False(t, in.IsCompiling())
	require.True(t, in.WordExists("DOUBLE"))
}

func TestSemicolonWithoutNameIsParseError(t *testing.T) {
	in := NewInterpreter()
	in.isCompiling = true
	res := in.Parse(";")
	require.Equal(t, ResultParseError, res)
	require.Contains(t, in.Status(), "without a word name")
}
