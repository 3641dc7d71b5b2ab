package rpn

import "strings"

// splitLoopBody scans rest, which starts immediately after a FOR, for its
// matching NEXT — tracking nested FOR/NEXT pairs by depth — and returns the
// token text between them (rejoined with single spaces) plus whatever
// follows the matching NEXT. ok is false if no matching NEXT is found
// before rest is exhausted.
func splitLoopBody(rest string) (body, after string, ok bool) {
	depth := 1
	buf := rest
	var tokens []string
	for len(buf) > 0 {
		word, r, _ := NextWord(buf, ' ')
		buf = r
		if word == "" {
			continue
		}
		if word == "FOR" {
			depth++
		}
		if word == "NEXT" {
			depth--
			if depth == 0 {
				return strings.Join(tokens, " "), buf, true
			}
		}
		tokens = append(tokens, word)
	}
	return "", "", false
}

// registerControlWords implements FOR/NEXT/i and IFTE. FOR consumes the
// text of its own loop body directly out of rest (rather than being
// re-invoked once per token by the surrounding evalBuffer loop), which is
// what makes it usable both at the top level and inside a colon-definition
// — see makeUserWordBody in interpreter.go.
func registerControlWords(in *Interpreter) {
	in.AddDefinition("FOR", WordDefinition{
		Description: "Loop: run the body once per index in [start,end] (start end -- )",
		Validator:   StrictTypeValidator{Params: []ParamSpec{{"end", ParamInteger}, {"start", ParamInteger}}},
		Body: func(interp *Interpreter, rest string) (string, Result) {
			start, end := popXY(interp)
			body, after, ok := splitLoopBody(rest)
			if !ok {
				interp.setStatus("FOR: missing matching NEXT")
				return rest, ResultParseError
			}

			interp.loopIndices = append(interp.loopIndices, 0)
			depth := len(interp.loopIndices) - 1
			worst := ResultOK
			for i := start.Integer(); i <= end.Integer(); i++ {
				interp.loopIndices[depth] = i
				res := interp.evalBuffer(body)
				worst = worse(worst, res)
				if res == ResultParseError {
					break
				}
			}
			interp.loopIndices = interp.loopIndices[:depth]
			return after, worst
		},
	})

	in.AddDefinition("NEXT", WordDefinition{
		Description: "Marks the end of a FOR body; never invoked directly",
		Validator:   NoParams,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			interp.setStatus("NEXT without matching FOR")
			return rest, ResultEvalError
		},
	})

	in.AddDefinition("i", WordDefinition{
		Description: "Push the innermost FOR loop's current index ( -- i)",
		Validator:   NoParams,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			if len(interp.loopIndices) == 0 {
				interp.setStatus("i: not inside a FOR loop")
				return rest, ResultEvalError
			}
			interp.Stack.Push(NewInteger(interp.loopIndices[len(interp.loopIndices)-1]))
			return rest, ResultOK
		},
	})

	in.AddDefinition("IFTE", WordDefinition{
		Description: "If-then-else (else-val then-val cond -- then-val|else-val)",
		Validator:   StrictTypeValidator{Params: []ParamSpec{{"cond", ParamBoolean}, {"then-val", ParamAny}, {"else-val", ParamAny}}},
		Body: func(interp *Interpreter, rest string) (string, Result) {
			cond, _ := interp.Stack.Pop()
			thenVal, _ := interp.Stack.Pop()
			elseVal, _ := interp.Stack.Pop()
			if cond.Bool() {
				interp.Stack.Push(thenVal)
			} else {
				interp.Stack.Push(elseVal)
			}
			return rest, ResultOK
		},
	})
}
