package rpn

import "math"

var numberPairValidator = StrictTypeValidator{Params: []ParamSpec{{"y", ParamNumber}, {"x", ParamNumber}}}
var vec3PairValidator = StrictTypeValidator{Params: []ParamSpec{{"v2", ParamVec3}, {"v1", ParamVec3}}}
var oneNumberValidator = StrictTypeValidator{Params: []ParamSpec{{"x", ParamNumber}}}

// popXY pops the two topmost values, named the way the original source's
// stack-effect comments name them: x was pushed first (now second from the
// top), y was pushed second (now on top). See DESIGN.md for the -/ / order
// decision this feeds.
func popXY(in *Interpreter) (x, y Value) {
	y, _ = in.Stack.Pop()
	x, _ = in.Stack.Pop()
	return
}

func numericPair(x, y Value, intFn func(x, y int64) int64, floatFn func(x, y float64) float64) Value {
	if x.Tag() == TagInteger && y.Tag() == TagInteger {
		return NewInteger(intFn(x.Integer(), y.Integer()))
	}
	return NewDouble(floatFn(x.AsFloat64(), y.AsFloat64()))
}

func numericUnary(v Value, intFn func(int64) int64, floatFn func(float64) float64) Value {
	if v.Tag() == TagInteger {
		return NewInteger(intFn(v.Integer()))
	}
	return NewDouble(floatFn(v.Double()))
}

func registerMathWords(in *Interpreter) {
	// Constants.
	in.AddDefinition("k_PI", WordDefinition{
		Description: "The constant PI ( -- pi)",
		Validator:   NoParams,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			interp.Stack.Push(NewDouble(math.Pi))
			return rest, ResultOK
		},
	})
	in.AddDefinition("k_E", WordDefinition{
		Description: "The constant E ( -- e)",
		Validator:   NoParams,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			interp.Stack.Push(NewDouble(math.E))
			return rest, ResultOK
		},
	})

	// Addition (x y -- x+y); Vec3 + Vec3 componentwise.
	in.AddDefinition("+", WordDefinition{
		Description: "Addition (x y -- x+y)",
		Validator:   AnyOfValidator{Alternatives: []Validator{numberPairValidator, vec3PairValidator}},
		Body: func(interp *Interpreter, rest string) (string, Result) {
			if v, ok := interp.Stack.Peek(1); ok && v.Tag() == TagVec3 {
				b, _ := interp.Stack.Pop()
				a, _ := interp.Stack.Pop()
				v1, v2 := a.Vec3(), b.Vec3()
				interp.Stack.Push(NewVec3(Vec3{X: v1.X + v2.X, Y: v1.Y + v2.Y, Z: v1.Z + v2.Z}))
				return rest, ResultOK
			}
			x, y := popXY(interp)
			interp.Stack.Push(numericPair(x, y,
				func(x, y int64) int64 { return x + y },
				func(x, y float64) float64 { return x + y }))
			return rest, ResultOK
		},
	})

	// Subtraction. The reference sources document "(x y -- y-x)" for this
	// word — inconsistent with the conventional Forth "a b -- a-b" order —
	// and spec.md §9 asks implementers to pick and document a convention.
	// This implementation follows the documented formula literally: the
	// value popped first (the top of stack, y) minus the value popped
	// second (x). "5 3 -" therefore yields 3 - 5 = -2, not 5 - 3.
	in.AddDefinition("-", WordDefinition{
		Description: "Subtract, y-x where y is the top of stack (x y -- y-x)",
		Validator:   AnyOfValidator{Alternatives: []Validator{numberPairValidator, vec3PairValidator}},
		Body: func(interp *Interpreter, rest string) (string, Result) {
			if v, ok := interp.Stack.Peek(1); ok && v.Tag() == TagVec3 {
				b, _ := interp.Stack.Pop()
				a, _ := interp.Stack.Pop()
				v1, v2 := a.Vec3(), b.Vec3()
				interp.Stack.Push(NewVec3(Vec3{X: v2.X - v1.X, Y: v2.Y - v1.Y, Z: v2.Z - v1.Z}))
				return rest, ResultOK
			}
			x, y := popXY(interp)
			interp.Stack.Push(numericPair(x, y,
				func(x, y int64) int64 { return y - x },
				func(x, y float64) float64 { return y - x }))
			return rest, ResultOK
		},
	})

	in.AddDefinition("*", WordDefinition{
		Description: "Multiply (x y -- x*y)",
		Validator:   numberPairValidator,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			x, y := popXY(interp)
			interp.Stack.Push(numericPair(x, y,
				func(x, y int64) int64 { return x * y },
				func(x, y float64) float64 { return x * y }))
			return rest, ResultOK
		},
	})

	// Division, y/x, following the same convention as "-" above: the
	// value popped first (top of stack, y) divided by the value popped
	// second (x). Integer/Integer division by zero falls back to float64
	// division rather than panicking — the result is the platform's
	// ordinary +Inf/-Inf/NaN, not a special case invented for this word.
	in.AddDefinition("/", WordDefinition{
		Description: "Divide, y/x where y is the top of stack (x y -- y/x)",
		Validator:   numberPairValidator,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			x, y := popXY(interp)
			if x.Tag() == TagInteger && y.Tag() == TagInteger && x.Integer() != 0 {
				interp.Stack.Push(NewInteger(y.Integer() / x.Integer()))
			} else {
				interp.Stack.Push(NewDouble(y.AsFloat64() / x.AsFloat64()))
			}
			return rest, ResultOK
		},
	})

	unary := func(name, desc string, intFn func(int64) int64, floatFn func(float64) float64) {
		in.AddDefinition(name, WordDefinition{
			Description: desc,
			Validator:   oneNumberValidator,
			Body: func(interp *Interpreter, rest string) (string, Result) {
				v, _ := interp.Stack.Pop()
				interp.Stack.Push(numericUnary(v, intFn, floatFn))
				return rest, ResultOK
			},
		})
	}

	floatOnlyUnary := func(name, desc string, fn func(float64) float64) {
		in.AddDefinition(name, WordDefinition{
			Description: desc,
			Validator:   oneNumberValidator,
			Body: func(interp *Interpreter, rest string) (string, Result) {
				v, _ := interp.Stack.Pop()
				interp.Stack.Push(NewDouble(fn(v.AsFloat64())))
				return rest, ResultOK
			},
		})
	}

	// NEG is overloaded per spec.md §9 Open Question 3: arithmetic
	// negation on Number, bitwise complement on Integer specifically
	// (a Double has no complement).
	unary("NEG", "Negate; bitwise complement on Integer (x -- -x)",
		func(i int64) int64 { return ^i },
		func(d float64) float64 { return -d })

	in.AddDefinition("ABS", WordDefinition{
		Description: "Absolute value / vector magnitude (x -- |x|)",
		Validator:   AnyOfValidator{Alternatives: []Validator{oneNumberValidator, StrictTypeValidator{Params: []ParamSpec{{"v", ParamVec3}}}}},
		Body: func(interp *Interpreter, rest string) (string, Result) {
			v, _ := interp.Stack.Pop()
			if v.Tag() == TagVec3 {
				vec := v.Vec3()
				interp.Stack.Push(NewDouble(math.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)))
				return rest, ResultOK
			}
			interp.Stack.Push(numericUnary(v,
				func(i int64) int64 {
					if i < 0 {
						return -i
					}
					return i
				}, math.Abs))
			return rest, ResultOK
		},
	})

	unary("SQ", "Square (x -- x^2)",
		func(i int64) int64 { return i * i },
		func(d float64) float64 { return d * d })

	floatOnlyUnary("SQRT", "Square root (x -- sqrt(x))", math.Sqrt)
	floatOnlyUnary("INV", "Invert (x -- 1/x)", func(d float64) float64 { return 1 / d })
	floatOnlyUnary("SIN", "Sine (angle -- sin(angle))", math.Sin)
	floatOnlyUnary("COS", "Cosine (angle -- cos(angle))", math.Cos)
	floatOnlyUnary("TAN", "Tangent (angle -- tan(angle))", math.Tan)
	floatOnlyUnary("ASIN", "Arc sine (x -- asin(x))", math.Asin)
	floatOnlyUnary("ACOS", "Arc cosine (x -- acos(x))", math.Acos)
	floatOnlyUnary("ATAN", "Arc tangent (x -- atan(x))", math.Atan)
	floatOnlyUnary("EXP", "e^x (x -- exp(x))", math.Exp)
	floatOnlyUnary("LN", "Natural log (x -- ln(x))", math.Log)
	floatOnlyUnary("LN2", "Log base 2 (x -- log2(x))", math.Log2)
	floatOnlyUnary("LOG", "Log base 10 (x -- log10(x))", math.Log10)
	floatOnlyUnary("FLOOR", "Floor (x -- floor(x))", math.Floor)
	floatOnlyUnary("CEIL", "Ceiling (x -- ceil(x))", math.Ceil)
	floatOnlyUnary("ROUND", "Round to nearest (x -- round(x))", math.Round)

	in.AddDefinition("POW", WordDefinition{
		Description: "Exponentiation (x y -- x^y)",
		Validator:   numberPairValidator,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			x, y := popXY(interp)
			interp.Stack.Push(NewDouble(math.Pow(x.AsFloat64(), y.AsFloat64())))
			return rest, ResultOK
		},
	})

	in.AddDefinition("ATAN2", WordDefinition{
		Description: "Arc tangent of two variables (y x -- atan2(y,x))",
		Validator:   numberPairValidator,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			x, y := popXY(interp)
			interp.Stack.Push(NewDouble(math.Atan2(x.AsFloat64(), y.AsFloat64())))
			return rest, ResultOK
		},
	})

	in.AddDefinition("HYPOT", WordDefinition{
		Description: "Hypotenuse (x y -- hypot(x,y))",
		Validator:   numberPairValidator,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			x, y := popXY(interp)
			interp.Stack.Push(NewDouble(math.Hypot(x.AsFloat64(), y.AsFloat64())))
			return rest, ResultOK
		},
	})

	in.AddDefinition("MIN", WordDefinition{
		Description: "Minimum (x y -- min(x,y))",
		Validator:   numberPairValidator,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			x, y := popXY(interp)
			interp.Stack.Push(numericPair(x, y,
				func(x, y int64) int64 {
					if x < y {
						return x
					}
					return y
				},
				math.Min))
			return rest, ResultOK
		},
	})

	in.AddDefinition("MAX", WordDefinition{
		Description: "Maximum (x y -- max(x,y))",
		Validator:   numberPairValidator,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			x, y := popXY(interp)
			interp.Stack.Push(numericPair(x, y,
				func(x, y int64) int64 {
					if x > y {
						return x
					}
					return y
				},
				math.Max))
			return rest, ResultOK
		},
	})

	in.AddDefinition("RAND", WordDefinition{
		Description: "Random double in [0,1) ( -- r)",
		Validator:   NoParams,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			interp.Stack.Push(NewDouble(interp.rand()))
			return rest, ResultOK
		},
	})

	in.AddDefinition("RAND48", WordDefinition{
		Description: "drand48-style random double in [0,1) ( -- r)",
		Validator:   NoParams,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			interp.Stack.Push(NewDouble(interp.rand48()))
			return rest, ResultOK
		},
	})
}
