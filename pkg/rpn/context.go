package rpn

// ContextBody is a word body shaped like WordBody but closing over a typed
// WordContext instead of an opaque any, for hosts that want their machine
// driver or keypad widget handle without a type assertion in every word.
type ContextBody[T any] func(interp *Interpreter, ctx T, rest string) (remaining string, result Result)

// BindContext adapts a ContextBody into a WordDefinition carrying ctx as its
// Context, for use with AddDefinition. This is the shape
// _examples/original_source/ui/rpnkeypad.h's KeypadController and
// cnc-app.h's MachineInterface motivate: a host registers a family of words
// that all close over the same external handle without the interpreter
// ever needing to know what that handle is.
func BindContext[T any](description string, validator Validator, ctx T, body ContextBody[T]) WordDefinition {
	return WordDefinition{
		Description: description,
		Validator:   validator,
		Context:     ctx,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			return body(interp, ctx, rest)
		},
	}
}
