package rpn

import "strings"

// commentBody implements "(" at both runtime and compile time: everything
// up to the matching ")" is discarded and never touches the stack or a
// definition being compiled.
func commentBody(interp *Interpreter, rest string) (string, Result) {
	idx := strings.IndexByte(rest, ')')
	if idx < 0 {
		interp.setStatus("unterminated comment")
		return "", ResultParseError
	}
	return strings.TrimPrefix(rest[idx+1:], " "), ResultOK
}

// stringLiteralBody implements the runtime side of ." : push the text up to
// the next '"' as a String.
func stringLiteralBody(interp *Interpreter, rest string) (string, Result) {
	idx := strings.IndexByte(rest, '"')
	if idx < 0 {
		interp.setStatus("unterminated string literal")
		return "", ResultParseError
	}
	interp.Stack.Push(NewString(rest[:idx]))
	return strings.TrimPrefix(rest[idx+1:], " "), ResultOK
}

// registerIOWords implements diagnostic and compile-control words: .S, the
// ." string literal, ( comments, and : / ; colon-definitions. ( and ." both
// need a compile-time entry — compileEval's fallback only accepts tokens
// that already name a runtime word, which comment and literal text never
// does, so both must consume their own trailing text before that check
// ever sees it.
func registerIOWords(in *Interpreter) {
	in.AddDefinition(".S", WordDefinition{
		Description: "Print the stack, top first, to the configured output ( -- )",
		Validator:   NoParams,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			interp.Stack.Print("stack", interp.Output())
			return rest, ResultOK
		},
	})

	in.AddDefinition(`."`, WordDefinition{
		Description: `Push a string literal, terminated by " ( -- s)`,
		Validator:   NoParams,
		Body:        stringLiteralBody,
	})

	in.AddDefinition("(", WordDefinition{
		Description: "Comment, discarded through the matching ')'",
		Validator:   NoParams,
		Body:        commentBody,
	})
	in.compileDict["("] = WordDefinition{
		Description: "Comment, discarded at compile time",
		Body:        commentBody,
	}

	// ." at compile time re-collects its literal text as tokens in
	// newDefinition, gluing the closing quote onto the last word with no
	// separating space so the runtime scan reconstructs the text on replay
	// (see makeUserWordBody). Leading and trailing whitespace is dropped and
	// each inner run of whitespace comes back as a single space.
	in.compileDict[`."`] = WordDefinition{
		Description: "String literal, deferred to word replay",
		Body: func(interp *Interpreter, rest string) (string, Result) {
			idx := strings.IndexByte(rest, '"')
			if idx < 0 {
				interp.setStatus("unterminated string literal")
				return "", ResultParseError
			}
			literal := rest[:idx]
			interp.newDefinition = append(interp.newDefinition, `."`)
			words := strings.Fields(literal)
			if len(words) == 0 {
				interp.newDefinition = append(interp.newDefinition, `"`)
			} else {
				for i, w := range words {
					if i == len(words)-1 {
						w += `"`
					}
					interp.newDefinition = append(interp.newDefinition, w)
				}
			}
			return strings.TrimPrefix(rest[idx+1:], " "), ResultOK
		},
	}

	in.AddDefinition(":", WordDefinition{
		Description: "Begin a colon-definition (name follows)",
		Validator:   NoParams,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			if interp.isCompiling {
				interp.setStatus(": already compiling")
				return rest, ResultParseError
			}
			interp.isCompiling = true
			interp.newWord = ""
			interp.newDefinition = nil
			return rest, ResultOK
		},
	})

	in.compileDict[";"] = WordDefinition{
		Description: "End a colon-definition, installing it into the dictionary",
		Body: func(interp *Interpreter, rest string) (string, Result) {
			name := interp.newWord
			interp.isCompiling = false
			if name == "" {
				interp.setStatus("; without a word name")
				interp.newWord = ""
				interp.newDefinition = nil
				return rest, ResultParseError
			}
			interp.AddDefinition(name, WordDefinition{
				Description: "user-defined word",
				Validator:   NoParams,
				Body:        makeUserWordBody(interp.newDefinition),
			})
			interp.newWord = ""
			interp.newDefinition = nil
			return rest, ResultOK
		},
	}
}
