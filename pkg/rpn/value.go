package rpn

import "fmt"

// Tag identifies which variant of Value is populated. ParamType.Matches
// compares against each Tag by name, so the numeric order here carries no
// meaning of its own.
type Tag int

const (
	TagInteger Tag = iota
	TagDouble
	TagBoolean
	TagString
	TagVec3
)

func (t Tag) String() string {
	switch t {
	case TagInteger:
		return "integer"
	case TagDouble:
		return "double"
	case TagBoolean:
		return "boolean"
	case TagString:
		return "string"
	case TagVec3:
		return "vec3"
	default:
		return "unknown"
	}
}

// Vec3 is a three-component double-precision vector value.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) String() string {
	return fmt.Sprintf("{x:%f, y:%f, z:%f}", v.X, v.Y, v.Z)
}

// Value is the tagged union carried on the Stack. Only one of the fields is
// meaningful, selected by Tag. Values are immutable once constructed.
type Value struct {
	tag Tag
	i   int64
	d   float64
	b   bool
	s   string
	vec Vec3
}

func NewInteger(i int64) Value   { return Value{tag: TagInteger, i: i} }
func NewDouble(d float64) Value  { return Value{tag: TagDouble, d: d} }
func NewBoolean(b bool) Value    { return Value{tag: TagBoolean, b: b} }
func NewString(s string) Value   { return Value{tag: TagString, s: s} }
func NewVec3(v Vec3) Value       { return Value{tag: TagVec3, vec: v} }

func (v Value) Tag() Tag    { return v.tag }
func (v Value) Integer() int64 { return v.i }
func (v Value) Double() float64 { return v.d }
func (v Value) Bool() bool    { return v.b }
func (v Value) Str() string  { return v.s }
func (v Value) Vec3() Vec3   { return v.vec }

// AsFloat64 widens Integer or Double values to a float64. It panics if the
// value is neither; callers must validate the tag (or rely on a Validator)
// before calling it.
func (v Value) AsFloat64() float64 {
	switch v.tag {
	case TagInteger:
		return float64(v.i)
	case TagDouble:
		return v.d
	default:
		panic(fmt.Sprintf("AsFloat64 called on a %s value", v.tag))
	}
}

// String renders v the way ->STRING and .S do: integer in decimal, double
// via %f, boolean as true/false, string as its bytes, Vec3 as {x:.. y:.. z:..}.
func (v Value) String() string {
	switch v.tag {
	case TagInteger:
		return fmt.Sprintf("%d", v.i)
	case TagDouble:
		return fmt.Sprintf("%f", v.d)
	case TagBoolean:
		if v.b {
			return "true"
		}
		return "false"
	case TagString:
		return v.s
	case TagVec3:
		return v.vec.String()
	default:
		return ""
	}
}

// Equal implements the spec's cross-tag equality rule: values of different
// tags are never equal, even when numerically equivalent (Integer(1) !=
// Double(1.0)).
func (v Value) Equal(o Value) bool {
	if v.tag != o.tag {
		return false
	}
	switch v.tag {
	case TagInteger:
		return v.i == o.i
	case TagDouble:
		return v.d == o.d
	case TagBoolean:
		return v.b == o.b
	case TagString:
		return v.s == o.s
	case TagVec3:
		return v.vec == o.vec
	default:
		return false
	}
}

// ParamType is the parameter-signature-only companion to Tag: it adds Number
// (Integer or Double) and Any (matches everything), neither of which is ever
// a real stack value. Keeping this as a separate enumeration, rather than
// folding Number/Any into Tag, is deliberate — see DESIGN.md.
type ParamType int

const (
	ParamInteger ParamType = iota
	ParamDouble
	ParamBoolean
	ParamString
	ParamVec3
	ParamNumber
	ParamAny
)

func (p ParamType) String() string {
	switch p {
	case ParamInteger:
		return "integer"
	case ParamDouble:
		return "double"
	case ParamBoolean:
		return "boolean"
	case ParamString:
		return "string"
	case ParamVec3:
		return "vec3"
	case ParamNumber:
		return "number"
	case ParamAny:
		return "any"
	default:
		return "unknown"
	}
}

// Matches reports whether a stack value tagged t satisfies this parameter
// type, per spec.md §4.7.
func (p ParamType) Matches(t Tag) bool {
	switch p {
	case ParamInteger:
		return t == TagInteger
	case ParamDouble:
		return t == TagDouble
	case ParamBoolean:
		return t == TagBoolean
	case ParamString:
		return t == TagString
	case ParamVec3:
		return t == TagVec3
	case ParamNumber:
		return t == TagInteger || t == TagDouble
	case ParamAny:
		return true
	default:
		return false
	}
}
