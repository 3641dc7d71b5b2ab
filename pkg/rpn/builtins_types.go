package rpn

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// registerTypeWords implements the value-conversion vocabulary: numeric and
// string coercions, Vec3 construction/destructuring, and the ->ARRAY /
// ->OBJECT family. The array/object words have no counterpart in the
// original word set (a plain stack machine has no container value); they're
// built on JSON text carried in a String value, and are documented here
// rather than left unimplemented. See DESIGN.md for why encoding/json
// (not a third-party codec) is the right call for this one corner.
func registerTypeWords(in *Interpreter) {
	in.AddDefinition("->INT", WordDefinition{
		Description: "Convert to Integer (x -- n)",
		Validator:   oneAnyValidator,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			v, _ := interp.Stack.Pop()
			switch v.Tag() {
			case TagInteger:
				interp.Stack.Push(v)
			case TagDouble:
				interp.Stack.Push(NewInteger(int64(v.Double())))
			case TagBoolean:
				if v.Bool() {
					interp.Stack.Push(NewInteger(1))
				} else {
					interp.Stack.Push(NewInteger(0))
				}
			case TagString:
				n, err := strconv.ParseInt(v.Str(), 0, 64)
				if err != nil {
					interp.setStatus(fmt.Sprintf("->INT: cannot convert '%s'", v.Str()))
					return rest, ResultEvalError
				}
				interp.Stack.Push(NewInteger(n))
			default:
				interp.setStatus("->INT: cannot convert vec3")
				return rest, ResultEvalError
			}
			return rest, ResultOK
		},
	})

	in.AddDefinition("->FLOAT", WordDefinition{
		Description: "Convert to Double (x -- d)",
		Validator:   oneAnyValidator,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			v, _ := interp.Stack.Pop()
			switch v.Tag() {
			case TagInteger:
				interp.Stack.Push(NewDouble(float64(v.Integer())))
			case TagDouble:
				interp.Stack.Push(v)
			case TagBoolean:
				if v.Bool() {
					interp.Stack.Push(NewDouble(1))
				} else {
					interp.Stack.Push(NewDouble(0))
				}
			case TagString:
				d, err := strconv.ParseFloat(v.Str(), 64)
				if err != nil {
					interp.setStatus(fmt.Sprintf("->FLOAT: cannot convert '%s'", v.Str()))
					return rest, ResultEvalError
				}
				interp.Stack.Push(NewDouble(d))
			default:
				interp.setStatus("->FLOAT: cannot convert vec3")
				return rest, ResultEvalError
			}
			return rest, ResultOK
		},
	})

	in.AddDefinition("->STRING", WordDefinition{
		Description: "Convert to String, its canonical rendering (x -- s)",
		Validator:   oneAnyValidator,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			v, _ := interp.Stack.Pop()
			interp.Stack.Push(NewString(v.String()))
			return rest, ResultOK
		},
	})

	in.AddDefinition("->VEC3", WordDefinition{
		Description: "Build a Vec3 from three numbers (x y z -- v)",
		Validator:   StrictTypeValidator{Params: []ParamSpec{{"z", ParamNumber}, {"y", ParamNumber}, {"x", ParamNumber}}},
		Body: func(interp *Interpreter, rest string) (string, Result) {
			z, _ := interp.Stack.Pop()
			y, _ := interp.Stack.Pop()
			x, _ := interp.Stack.Pop()
			interp.Stack.Push(NewVec3(Vec3{X: x.AsFloat64(), Y: y.AsFloat64(), Z: z.AsFloat64()}))
			return rest, ResultOK
		},
	})

	in.AddDefinition("VEC3->", WordDefinition{
		Description: "Destructure a Vec3 (v -- x y z)",
		Validator:   StrictTypeValidator{Params: []ParamSpec{{"v", ParamVec3}}},
		Body: func(interp *Interpreter, rest string) (string, Result) {
			v, _ := interp.Stack.Pop()
			vec := v.Vec3()
			interp.Stack.Push(NewDouble(vec.X))
			interp.Stack.Push(NewDouble(vec.Y))
			interp.Stack.Push(NewDouble(vec.Z))
			return rest, ResultOK
		},
	})

	// The ->VEC3{x,y,z} words build a Vec3 from a single component, leaving
	// the other two unset (NaN) — matching rpn-controller.cpp's ->{X}/->{Y}/
	// ->{Z} (x -- v), not a getter paired with VEC3->.
	component := func(name string, build func(n float64) Vec3) {
		in.AddDefinition(name, WordDefinition{
			Description: fmt.Sprintf("Build a Vec3 with only its %s component set, others NaN (n -- v)", name[len(name)-1:]),
			Validator:   oneNumberValidator,
			Body: func(interp *Interpreter, rest string) (string, Result) {
				v, _ := interp.Stack.Pop()
				interp.Stack.Push(NewVec3(build(v.AsFloat64())))
				return rest, ResultOK
			},
		})
	}
	nan := math.NaN()
	component("->VEC3x", func(n float64) Vec3 { return Vec3{X: n, Y: nan, Z: nan} })
	component("->VEC3y", func(n float64) Vec3 { return Vec3{X: nan, Y: n, Z: nan} })
	component("->VEC3z", func(n float64) Vec3 { return Vec3{X: nan, Y: nan, Z: n} })

	in.AddDefinition("->ARRAY", WordDefinition{
		Description: "Pack the top n values into a JSON array string (x_n .. x_1 n -- s)",
		Validator:   oneIntegerValidator,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			n, ok := requireIntArg(interp, "->ARRAY")
			if !ok {
				return rest, ResultEvalError
			}
			items := make([]Value, n)
			for i := n; i >= 1; i-- {
				items[n-i], _ = interp.Stack.Peek(i)
			}
			for i := 0; i < n; i++ {
				interp.Stack.Pop()
			}
			encoded := make([]any, n)
			for i, v := range items {
				encoded[i] = valueToJSON(v)
			}
			b, err := json.Marshal(encoded)
			if err != nil {
				interp.setStatus(fmt.Sprintf("->ARRAY: %v", err))
				return rest, ResultEvalError
			}
			interp.Stack.Push(NewString(string(b)))
			return rest, ResultOK
		},
	})

	in.AddDefinition("ARRAY->", WordDefinition{
		Description: "Unpack a JSON array string onto the stack (s -- x_n .. x_1 n)",
		Validator:   StrictTypeValidator{Params: []ParamSpec{{"s", ParamString}}},
		Body: func(interp *Interpreter, rest string) (string, Result) {
			s, _ := interp.Stack.Pop()
			var raw []any
			if err := json.Unmarshal([]byte(s.Str()), &raw); err != nil {
				interp.setStatus(fmt.Sprintf("ARRAY->: %v", err))
				return rest, ResultEvalError
			}
			for _, r := range raw {
				interp.Stack.Push(jsonToValue(r))
			}
			interp.Stack.Push(NewInteger(int64(len(raw))))
			return rest, ResultOK
		},
	})

	in.AddDefinition("->OBJECT", WordDefinition{
		Description: "Pack the top n key/value pairs into a JSON object string (k_n v_n .. k_1 v_1 n -- s)",
		Validator:   oneIntegerValidator,
		Body: func(interp *Interpreter, rest string) (string, Result) {
			n, ok := requireIntArg(interp, "->OBJECT")
			if !ok {
				return rest, ResultEvalError
			}
			if interp.Stack.Depth() < 2*n {
				interp.setStatus("->OBJECT: stack underflow")
				return rest, ResultEvalError
			}
			obj := make(map[string]any, n)
			for i := 0; i < n; i++ {
				v, _ := interp.Stack.Pop()
				k, _ := interp.Stack.Pop()
				obj[k.String()] = valueToJSON(v)
			}
			b, err := json.Marshal(obj)
			if err != nil {
				interp.setStatus(fmt.Sprintf("->OBJECT: %v", err))
				return rest, ResultEvalError
			}
			interp.Stack.Push(NewString(string(b)))
			return rest, ResultOK
		},
	})

	in.AddDefinition("OBJECT->", WordDefinition{
		Description: "Unpack a JSON object string onto the stack (s -- k_1 v_1 .. k_n v_n n)",
		Validator:   StrictTypeValidator{Params: []ParamSpec{{"s", ParamString}}},
		Body: func(interp *Interpreter, rest string) (string, Result) {
			s, _ := interp.Stack.Pop()
			var raw map[string]any
			if err := json.Unmarshal([]byte(s.Str()), &raw); err != nil {
				interp.setStatus(fmt.Sprintf("OBJECT->: %v", err))
				return rest, ResultEvalError
			}
			n := 0
			for k, v := range raw {
				interp.Stack.Push(NewString(k))
				interp.Stack.Push(jsonToValue(v))
				n++
			}
			interp.Stack.Push(NewInteger(int64(n)))
			return rest, ResultOK
		},
	})
}

func valueToJSON(v Value) any {
	switch v.Tag() {
	case TagInteger:
		return v.Integer()
	case TagDouble:
		return v.Double()
	case TagBoolean:
		return v.Bool()
	case TagString:
		return v.Str()
	case TagVec3:
		vec := v.Vec3()
		return []float64{vec.X, vec.Y, vec.Z}
	default:
		return nil
	}
}

func jsonToValue(raw any) Value {
	switch t := raw.(type) {
	case float64:
		if t == float64(int64(t)) {
			return NewInteger(int64(t))
		}
		return NewDouble(t)
	case bool:
		return NewBoolean(t)
	case string:
		return NewString(t)
	case []any:
		if len(t) == 3 {
			if x, ok := t[0].(float64); ok {
				if y, ok := t[1].(float64); ok {
					if z, ok := t[2].(float64); ok {
						return NewVec3(Vec3{X: x, Y: y, Z: z})
					}
				}
			}
		}
		b, _ := json.Marshal(t)
		return NewString(string(b))
	default:
		b, _ := json.Marshal(t)
		return NewString(string(b))
	}
}
