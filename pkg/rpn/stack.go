package rpn

import (
	"fmt"
	"io"
)

// Stack is an ordered, LIFO sequence of Values. Indices used by Peek/typed
// peeks are 1-based from the top, matching spec.md §4.2.
//
// A mismatched-tag typed peek/pop does not mutate the stack beyond whatever
// pop that operation implies; it reports the mismatch through warn (usually
// wired to the owning Interpreter's status) and returns a zero-ish default,
// matching the reference behavior described in the spec rather than
// panicking.
type Stack struct {
	values []Value // values[0] is the bottom; the last element is the top
	warn   func(string)
}

// NewStack constructs an empty Stack. warn may be nil, in which case
// mismatch/underflow notices are simply discarded.
func NewStack(warn func(string)) *Stack {
	if warn == nil {
		warn = func(string) {}
	}
	return &Stack{warn: warn}
}

func (s *Stack) Push(v Value) {
	s.values = append(s.values, v)
}

// Pop removes and returns the top value. ok is false on underflow, in which
// case the returned Value is the zero Value and the stack is unchanged.
func (s *Stack) Pop() (Value, bool) {
	n := len(s.values)
	if n == 0 {
		s.warn("stack underflow")
		return Value{}, false
	}
	v := s.values[n-1]
	s.values = s.values[:n-1]
	return v, true
}

func (s *Stack) Depth() int { return len(s.values) }

func (s *Stack) Clear() { s.values = s.values[:0] }

// Peek returns the value at 1-based position i (1 == top) without removing
// it. ok is false when i is out of range.
func (s *Stack) Peek(i int) (Value, bool) {
	n := len(s.values)
	if i < 1 || i > n {
		s.warn(fmt.Sprintf("stack index %d out of range (depth %d)", i, n))
		return Value{}, false
	}
	return s.values[n-i], true
}

func (s *Stack) peekTyped(i int, want Tag) (Value, bool) {
	v, ok := s.Peek(i)
	if !ok {
		return Value{}, false
	}
	if v.Tag() != want {
		s.warn(fmt.Sprintf("stack[%d]: expected %s, found %s", i, want, v.Tag()))
		return Value{}, false
	}
	return v, true
}

func (s *Stack) PeekInteger(i int) int64 {
	v, ok := s.peekTyped(i, TagInteger)
	if !ok {
		return 0
	}
	return v.Integer()
}

func (s *Stack) PeekDouble(i int) float64 {
	v, ok := s.peekTyped(i, TagDouble)
	if !ok {
		return 0
	}
	return v.Double()
}

func (s *Stack) PeekString(i int) string {
	v, ok := s.peekTyped(i, TagString)
	if !ok {
		return ""
	}
	return v.Str()
}

func (s *Stack) PeekBoolean(i int) bool {
	v, ok := s.peekTyped(i, TagBoolean)
	if !ok {
		return false
	}
	return v.Bool()
}

// PeekAsString is the canonical text rendering used by ->STRING and .S: it
// never fails, regardless of tag.
func (s *Stack) PeekAsString(i int) string {
	v, ok := s.Peek(i)
	if !ok {
		return ""
	}
	return v.String()
}

func (s *Stack) popTyped(want Tag) Value {
	v, ok := s.Pop()
	if !ok {
		return Value{}
	}
	if v.Tag() != want {
		s.warn(fmt.Sprintf("popped %s, expected %s", v.Tag(), want))
		return Value{}
	}
	return v
}

func (s *Stack) PopInteger() int64 {
	return s.popTyped(TagInteger).Integer()
}

func (s *Stack) PopDouble() float64 {
	return s.popTyped(TagDouble).Double()
}

func (s *Stack) PopString() string {
	return s.popTyped(TagString).Str()
}

func (s *Stack) PopBoolean() bool {
	return s.popTyped(TagBoolean).Bool()
}

// RemoveAt removes and returns the value at 1-based position i (1 == top),
// shifting everything above it down. ok is false when i is out of range.
func (s *Stack) RemoveAt(i int) (Value, bool) {
	n := len(s.values)
	if i < 1 || i > n {
		s.warn(fmt.Sprintf("stack index %d out of range (depth %d)", i, n))
		return Value{}, false
	}
	idx := n - i
	v := s.values[idx]
	s.values = append(s.values[:idx], s.values[idx+1:]...)
	return v, true
}

// InsertAt inserts v so that it occupies 1-based position i from the top
// once inserted (InsertAt(1, v) is equivalent to Push(v)). i is clamped to
// [1, Depth()+1].
func (s *Stack) InsertAt(i int, v Value) {
	n := len(s.values)
	if i < 1 {
		i = 1
	}
	if i > n+1 {
		i = n + 1
	}
	idx := n - i + 1
	s.values = append(s.values, Value{})
	copy(s.values[idx+1:], s.values[idx:])
	s.values[idx] = v
}

// Print writes a labeled dump of the stack, top first, to w — the ." .S"
// rendering. Grounded on original_source's print_stack().
func (s *Stack) Print(label string, w io.Writer) {
	n := len(s.values)
	fmt.Fprintf(w, "--%20s (%d)--\n", label, n)
	for idx := n; idx >= 1; idx-- {
		v := s.values[idx-1]
		fmt.Fprintf(w, "[%02d] {%s}: %s\n", n-idx+1, v.Tag(), v.String())
	}
	fmt.Fprintln(w, "------------------------")
}
