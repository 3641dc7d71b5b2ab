package rpn

var stringPairValidator = StrictTypeValidator{Params: []ParamSpec{{"y", ParamString}, {"x", ParamString}}}
var boolPairValidator = StrictTypeValidator{Params: []ParamSpec{{"y", ParamBoolean}, {"x", ParamBoolean}}}
var oneBooleanValidator = StrictTypeValidator{Params: []ParamSpec{{"x", ParamBoolean}}}

// registerLogicWords implements comparison and boolean/bitwise words.
// Equality is tag-strict (Value.Equal): a String never equals a Number and
// an Integer never equals a Double holding the same magnitude. Ordering is
// polymorphic over Number and String pairs; AND/OR/XOR/NOT are polymorphic
// over Boolean (logical) and Integer (bitwise), matching the original
// runtime tests' "DUP NEG" following an XOR of two Integers.
func registerLogicWords(in *Interpreter) {
	in.AddDefinition("==", WordDefinition{
		Description: "Equal (x y -- x==y)",
		Validator:   twoAnyValidator,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			y, _ := interp.Stack.Pop()
			x, _ := interp.Stack.Pop()
			interp.Stack.Push(NewBoolean(x.Equal(y)))
			return rest, ResultOK
		},
	})

	in.AddDefinition("!=", WordDefinition{
		Description: "Not equal (x y -- x!=y)",
		Validator:   twoAnyValidator,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			y, _ := interp.Stack.Pop()
			x, _ := interp.Stack.Pop()
			interp.Stack.Push(NewBoolean(!x.Equal(y)))
			return rest, ResultOK
		},
	})

	compare := func(name, desc string, numCmp func(x, y float64) bool, strCmp func(x, y string) bool) {
		in.AddDefinition(name, WordDefinition{
			Description: desc,
			Validator:   AnyOfValidator{Alternatives: []Validator{numberPairValidator, stringPairValidator}},
			Body: func(interp *Interpreter, rest string) (string, Result) {
				v, _ := interp.Stack.Peek(1)
				if v.Tag() == TagString {
					y, _ := interp.Stack.Pop()
					x, _ := interp.Stack.Pop()
					interp.Stack.Push(NewBoolean(strCmp(x.Str(), y.Str())))
					return rest, ResultOK
				}
				x, y := popXY(interp)
				interp.Stack.Push(NewBoolean(numCmp(x.AsFloat64(), y.AsFloat64())))
				return rest, ResultOK
			},
		})
	}

	compare("<", "Less than (x y -- x<y)", func(x, y float64) bool { return x < y }, func(x, y string) bool { return x < y })
	compare("<=", "Less than or equal (x y -- x<=y)", func(x, y float64) bool { return x <= y }, func(x, y string) bool { return x <= y })
	compare(">", "Greater than (x y -- x>y)", func(x, y float64) bool { return x > y }, func(x, y string) bool { return x > y })
	compare(">=", "Greater than or equal (x y -- x>=y)", func(x, y float64) bool { return x >= y }, func(x, y string) bool { return x >= y })

	binaryLogic := func(name, desc string, boolFn func(x, y bool) bool, intFn func(x, y int64) int64) {
		in.AddDefinition(name, WordDefinition{
			Description: desc,
			Validator:   AnyOfValidator{Alternatives: []Validator{boolPairValidator, StrictTypeValidator{Params: []ParamSpec{{"y", ParamInteger}, {"x", ParamInteger}}}}},
			Body: func(interp *Interpreter, rest string) (string, Result) {
				v, _ := interp.Stack.Peek(1)
				if v.Tag() == TagBoolean {
					y, _ := interp.Stack.Pop()
					x, _ := interp.Stack.Pop()
					interp.Stack.Push(NewBoolean(boolFn(x.Bool(), y.Bool())))
					return rest, ResultOK
				}
				y, _ := interp.Stack.Pop()
				x, _ := interp.Stack.Pop()
				interp.Stack.Push(NewInteger(intFn(x.Integer(), y.Integer())))
				return rest, ResultOK
			},
		})
	}

	binaryLogic("AND", "Logical/bitwise AND (x y -- x&y)",
		func(x, y bool) bool { return x && y },
		func(x, y int64) int64 { return x & y })
	binaryLogic("OR", "Logical/bitwise OR (x y -- x|y)",
		func(x, y bool) bool { return x || y },
		func(x, y int64) int64 { return x | y })
	binaryLogic("XOR", "Logical/bitwise XOR (x y -- x^y)",
		func(x, y bool) bool { return x != y },
		func(x, y int64) int64 { return x ^ y })

	in.AddDefinition("NOT", WordDefinition{
		Description: "Logical NOT / bitwise complement (x -- !x)",
		Validator:   AnyOfValidator{Alternatives: []Validator{oneBooleanValidator, oneIntegerValidator}},
		Body: func(interp *Interpreter, rest string) (string, Result) {
			v, _ := interp.Stack.Pop()
			if v.Tag() == TagBoolean {
				interp.Stack.Push(NewBoolean(!v.Bool()))
				return rest, ResultOK
			}
			interp.Stack.Push(NewInteger(^v.Integer()))
			return rest, ResultOK
		},
	})
}
