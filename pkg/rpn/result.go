package rpn

// Result is the outcome of parsing a line or dispatching a single word.
// Its ordinal order IS its severity order (spec.md §4.4): ok < dict_error <
// param_error < eval_error < parse_error, so aggregating a line's worst
// Result is just a running max.
type Result int

const (
	ResultOK Result = iota
	ResultDictError
	ResultParamError
	ResultEvalError
	ResultParseError
)

func (r Result) String() string {
	switch r {
	case ResultOK:
		return "ok"
	case ResultDictError:
		return "dict_error"
	case ResultParamError:
		return "param_error"
	case ResultEvalError:
		return "eval_error"
	case ResultParseError:
		return "parse_error"
	default:
		return "unknown_result"
	}
}

func worse(a, b Result) Result {
	if b > a {
		return b
	}
	return a
}
