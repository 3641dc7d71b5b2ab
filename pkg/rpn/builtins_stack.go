package rpn

import "fmt"

var oneIntegerValidator = StrictTypeValidator{Params: []ParamSpec{{"n", ParamInteger}}}
var oneAnyValidator = StrictTypeValidator{Params: []ParamSpec{{"x", ParamAny}}}
var twoAnyValidator = StrictTypeValidator{Params: []ParamSpec{{"y", ParamAny}, {"x", ParamAny}}}

// requireIntArg pops the top Integer and checks the stack still holds at
// least need more items below it, reporting an eval_error (not a
// param_error — the arity here is only known once n is on hand) when it
// doesn't.
func requireIntArg(interp *Interpreter, wordName string) (n int, ok bool) {
	v, _ := interp.Stack.Pop()
	need := int(v.Integer())
	if need < 0 {
		interp.setStatus(fmt.Sprintf("%s: negative count", wordName))
		return 0, false
	}
	if interp.Stack.Depth() < need {
		interp.setStatus(fmt.Sprintf("%s: stack underflow", wordName))
		return 0, false
	}
	return need, true
}

// registerStackWords implements the general stack-shuffling vocabulary.
// Several of these (PICK, ROLLU/ROLLD, the *N family) are HP RPL-style
// generalizations of the classic Forth stack words rather than literal
// Forth primitives — see DESIGN.md for the stack-effect convention chosen
// for each.
func registerStackWords(in *Interpreter) {
	in.AddDefinition("CLEAR", WordDefinition{
		Description: "Empty the stack ( ... -- )",
		Validator:   NoParams,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			interp.Stack.Clear()
			return rest, ResultOK
		},
	})

	in.AddDefinition("DUP", WordDefinition{
		Description: "Duplicate the top value (x -- x x)",
		Validator:   oneAnyValidator,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			v, _ := interp.Stack.Peek(1)
			interp.Stack.Push(v)
			return rest, ResultOK
		},
	})

	in.AddDefinition("DROP", WordDefinition{
		Description: "Discard the top value (x -- )",
		Validator:   oneAnyValidator,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			interp.Stack.Pop()
			return rest, ResultOK
		},
	})

	in.AddDefinition("DROPN", WordDefinition{
		Description: "Discard the top n values (x_n .. x_1 n -- )",
		Validator:   oneIntegerValidator,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			n, ok := requireIntArg(interp, "DROPN")
			if !ok {
				return rest, ResultEvalError
			}
			for i := 0; i < n; i++ {
				interp.Stack.Pop()
			}
			return rest, ResultOK
		},
	})

	in.AddDefinition("SWAP", WordDefinition{
		Description: "Swap the top two values (x y -- y x)",
		Validator:   twoAnyValidator,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			y, _ := interp.Stack.Pop()
			x, _ := interp.Stack.Pop()
			interp.Stack.Push(y)
			interp.Stack.Push(x)
			return rest, ResultOK
		},
	})

	in.AddDefinition("OVER", WordDefinition{
		Description: "Copy the second value to the top (x y -- x y x)",
		Validator:   twoAnyValidator,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			v, _ := interp.Stack.Peek(2)
			interp.Stack.Push(v)
			return rest, ResultOK
		},
	})

	in.AddDefinition("DEPTH", WordDefinition{
		Description: "Push the current stack depth ( -- n)",
		Validator:   NoParams,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			interp.Stack.Push(NewInteger(int64(interp.Stack.Depth())))
			return rest, ResultOK
		},
	})

	in.AddDefinition("DUPN", WordDefinition{
		Description: "Duplicate the top n values as a block (x_n .. x_1 n -- x_n .. x_1 x_n .. x_1)",
		Validator:   oneIntegerValidator,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			n, ok := requireIntArg(interp, "DUPN")
			if !ok {
				return rest, ResultEvalError
			}
			block := make([]Value, n)
			for i := n; i >= 1; i-- {
				block[n-i], _ = interp.Stack.Peek(i)
			}
			for _, v := range block {
				interp.Stack.Push(v)
			}
			return rest, ResultOK
		},
	})

	in.AddDefinition("NIPN", WordDefinition{
		Description: "Remove the single value at position n (1 == top), keeping everything else (.. x_n .. -- .. ..)",
		Validator:   oneIntegerValidator,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			n, ok := requireIntArg(interp, "NIPN")
			if !ok || n < 1 {
				if ok {
					interp.setStatus("NIPN: n must be >= 1")
				}
				return rest, ResultEvalError
			}
			if _, ok := interp.Stack.RemoveAt(n); !ok {
				return rest, ResultEvalError
			}
			return rest, ResultOK
		},
	})

	in.AddDefinition("PICK", WordDefinition{
		Description: "Copy the nth value (1 == top) to the top (.. n -- .. x)",
		Validator:   oneIntegerValidator,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			n, ok := requireIntArg(interp, "PICK")
			if !ok || n < 1 {
				if ok {
					interp.setStatus("PICK: n must be >= 1")
				}
				return rest, ResultEvalError
			}
			v, ok := interp.Stack.Peek(n)
			if !ok {
				return rest, ResultEvalError
			}
			interp.Stack.Push(v)
			return rest, ResultOK
		},
	})

	in.AddDefinition("TUCKN", WordDefinition{
		Description: "Insert a copy of the top value n levels down (x n -- x)",
		Validator:   oneIntegerValidator,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			n, ok := requireIntArg(interp, "TUCKN")
			if !ok || n < 1 {
				if ok {
					interp.setStatus("TUCKN: n must be >= 1")
				}
				return rest, ResultEvalError
			}
			v, ok := interp.Stack.Peek(1)
			if !ok {
				return rest, ResultEvalError
			}
			interp.Stack.InsertAt(n, v)
			return rest, ResultOK
		},
	})

	in.AddDefinition("REVERSE", WordDefinition{
		Description: "Reverse the entire stack ( ... -- ...)",
		Validator:   NoParams,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			reverseTop(interp.Stack, interp.Stack.Depth())
			return rest, ResultOK
		},
	})

	in.AddDefinition("REVERSEN", WordDefinition{
		Description: "Reverse the top n values (x_n .. x_1 n -- x_1 .. x_n)",
		Validator:   oneIntegerValidator,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			n, ok := requireIntArg(interp, "REVERSEN")
			if !ok {
				return rest, ResultEvalError
			}
			reverseTop(interp.Stack, n)
			return rest, ResultOK
		},
	})

	in.AddDefinition("ROLLU", WordDefinition{
		Description: "Rotate the whole stack up by one (x_n .. x_1 -- x_(n-1) .. x_1 x_n)",
		Validator:   NoParams,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			rollUp(interp.Stack, interp.Stack.Depth())
			return rest, ResultOK
		},
	})

	in.AddDefinition("ROLLD", WordDefinition{
		Description: "Rotate the whole stack down by one (x_n .. x_1 -- x_1 x_n .. x_2)",
		Validator:   NoParams,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			rollDown(interp.Stack, interp.Stack.Depth())
			return rest, ResultOK
		},
	})

	in.AddDefinition("ROLLUN", WordDefinition{
		Description: "Rotate the top n values up by one (x_n .. x_1 n -- x_(n-1) .. x_1 x_n)",
		Validator:   oneIntegerValidator,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			n, ok := requireIntArg(interp, "ROLLUN")
			if !ok {
				return rest, ResultEvalError
			}
			rollUp(interp.Stack, n)
			return rest, ResultOK
		},
	})

	in.AddDefinition("ROLLDN", WordDefinition{
		Description: "Rotate the top n values down by one (x_n .. x_1 n -- x_1 x_n .. x_2)",
		Validator:   oneIntegerValidator,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			n, ok := requireIntArg(interp, "ROLLDN")
			if !ok {
				return rest, ResultEvalError
			}
			rollDown(interp.Stack, n)
			return rest, ResultOK
		},
	})

	threeAnyValidator := StrictTypeValidator{Params: []ParamSpec{{"z", ParamAny}, {"y", ParamAny}, {"x", ParamAny}}}

	in.AddDefinition("ROTU", WordDefinition{
		Description: "Rotate the top three values up, Forth ROT (x y z -- y z x)",
		Validator:   threeAnyValidator,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			rollUp(interp.Stack, 3)
			return rest, ResultOK
		},
	})

	in.AddDefinition("ROTD", WordDefinition{
		Description: "Rotate the top three values down, Forth -ROT (x y z -- z x y)",
		Validator:   threeAnyValidator,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			rollDown(interp.Stack, 3)
			return rest, ResultOK
		},
	})
}

func reverseTop(s *Stack, n int) {
	for i, j := 1, n; i < j; i, j = i+1, j-1 {
		vi, _ := s.Peek(i)
		vj, _ := s.Peek(j)
		s.RemoveAt(i)
		s.InsertAt(i, vj)
		s.RemoveAt(j)
		s.InsertAt(j, vi)
	}
}

// rollUp moves the value n levels down to the top, shifting the values
// above it down one level each.
func rollUp(s *Stack, n int) {
	if n < 2 {
		return
	}
	v, ok := s.RemoveAt(n)
	if !ok {
		return
	}
	s.InsertAt(1, v)
}

// rollDown moves the value on top down to level n, shifting the values
// between up one level each.
func rollDown(s *Stack, n int) {
	if n < 2 {
		return
	}
	v, ok := s.RemoveAt(1)
	if !ok {
		return
	}
	s.InsertAt(n, v)
}
