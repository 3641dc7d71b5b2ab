package rpn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackPushPopOrder(t *testing.T) {
	s := NewStack(nil)
	s.Push(NewInteger(1))
	s.Push(NewInteger(2))
	v, ok := s.Pop()
	require.True(t, ok)
	require.Equal(t, int64(2), v.Integer())
	v, ok = s.Pop()
	require.True(t, ok)
	require.Equal(t, int64(1), v.Integer())
	_, ok = s.Pop()
	require.False(t, ok)
}

func TestStackUnderflowWarns(t *testing.T) {
	var msg string
	s := NewStack(func(m string) { msg = m })
	_, ok := s.Pop()
	require.False(t, ok)
	require.Contains(t, msg, "underflow")
}

func TestStackPeekIsOneBasedFromTop(t *testing.T) {
	s := NewStack(nil)
	s.Push(NewInteger(10))
	s.Push(NewInteger(20))
	s.Push(NewInteger(30))
	v, ok := s.Peek(1)
	require.True(t, ok)
	require.Equal(t, int64(30), v.Integer())
	v, _ = s.Peek(3)
	require.Equal(t, int64(10), v.Integer())
}

func TestStackTypedPeekMismatchWarnsAndZeros(t *testing.T) {
	var msg string
	s := NewStack(func(m string) { msg = m })
	s.Push(NewString("hi"))
	got := s.PeekInteger(1)
	require.Equal(t, int64(0), got)
	require.Contains(t, msg, "expected integer")
}

func TestStackRemoveAtAndInsertAt(t *testing.T) {
	s := NewStack(nil)
	s.Push(NewInteger(1))
	s.Push(NewInteger(2))
	s.Push(NewInteger(3))
	v, ok := s.RemoveAt(2)
	require.True(t, ok)
	require.Equal(t, int64(2), v.Integer())
	require.Equal(t, 2, s.Depth())

	s.InsertAt(1, NewInteger(99))
	top, _ := s.Peek(1)
	require.Equal(t, int64(99), top.Integer())

	s.InsertAt(3, NewInteger(-1))
	bottom, _ := s.Peek(3)
	require.Equal(t, int64(-1), bottom.Integer())
}

func TestStackPrintLabelsTopFirst(t *testing.T) {
	s := NewStack(nil)
	s.Push(NewInteger(1))
	s.Push(NewInteger(2))
	var sb strings.Builder
	s.Print("stack", &sb)
	out := sb.String()
	idx1 := strings.Index(out, "[01]")
	idx2 := strings.Index(out, "[02]")
	require.True(t, idx1 >= 0 && idx2 > idx1, "top of stack should be labeled [01]")
}
