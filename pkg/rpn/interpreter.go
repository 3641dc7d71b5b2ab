package rpn

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"
)

// Interpreter owns the dictionary, stack, compile state and status string
// exclusively (spec.md §3 "Ownership"). It is single-threaded and
// cooperative: Parse must not be called concurrently on the same instance
// from two goroutines (spec.md §5).
type Interpreter struct {
	Stack *Stack

	runtimeDict dictionary
	compileDict dictionary

	isCompiling   bool
	newWord       string
	newDefinition []string

	status string

	out io.Writer
	log func(format string, args ...any)

	loopIndices []int64

	// rng and rng48 back RAND and RAND48 respectively. The original source
	// draws on two distinct C library generators (rand() and drand48());
	// this keeps that separation instead of collapsing both words onto one
	// stream.
	rng   *rand.Rand
	rng48 *rand.Rand
}

// Option configures an Interpreter at construction time. Grounded on
// _examples/jcorbin-gothird's VMOption pattern (options.go).
type Option func(*Interpreter)

// WithOutput directs .S, .W and similar diagnostic words at w instead of the
// default io.Discard.
func WithOutput(w io.Writer) Option {
	return func(in *Interpreter) { in.out = w }
}

// WithLogger installs a sink for host-visible diagnostics that are not
// carried as a Result — currently just the word-redefinition warning
// spec.md §9 asks for.
func WithLogger(f func(format string, args ...any)) Option {
	return func(in *Interpreter) { in.log = f }
}

// NewInterpreter constructs an Interpreter with the built-in word set
// loaded, an empty stack, and no pending compilation.
func NewInterpreter(opts ...Option) *Interpreter {
	in := &Interpreter{
		runtimeDict: make(dictionary),
		compileDict: make(dictionary),
		out:         io.Discard,
		log:         func(string, ...any) {},
	}
	for _, opt := range opts {
		opt(in)
	}
	in.Stack = NewStack(in.setStatus)
	seed := time.Now().UnixNano()
	in.rng = rand.New(rand.NewSource(seed))
	in.rng48 = rand.New(rand.NewSource(seed ^ 0x5deece66d))

	registerMathWords(in)
	registerStackWords(in)
	registerLogicWords(in)
	registerTypeWords(in)
	registerControlWords(in)
	registerIOWords(in)

	return in
}

func (in *Interpreter) setStatus(msg string) {
	in.status = msg
}

// Status returns the human-readable description of the most recent failure,
// empty on success.
func (in *Interpreter) Status() string { return in.status }

// Output returns the writer diagnostic words should render to.
func (in *Interpreter) Output() io.Writer { return in.out }

// IsCompiling reports whether a colon-definition is in progress.
func (in *Interpreter) IsCompiling() bool { return in.isCompiling }

// AddDefinition registers a host word into the runtime dictionary,
// replacing any existing entry of the same name (spec.md §6).
func (in *Interpreter) AddDefinition(name string, def WordDefinition) {
	if _, exists := in.runtimeDict[name]; exists {
		in.log("redefining word %q", name)
	}
	in.runtimeDict[name] = def
}

func (in *Interpreter) rand() float64   { return in.rng.Float64() }
func (in *Interpreter) rand48() float64 { return in.rng48.Float64() }

// WordExists reports whether name is currently bound in the runtime
// dictionary.
func (in *Interpreter) WordExists(name string) bool {
	_, ok := in.runtimeDict[name]
	return ok
}

// Parse consumes one line of input, updating the stack and status, and
// returns the worst Result encountered (spec.md §4.4).
func (in *Interpreter) Parse(line string) Result {
	in.status = ""
	return in.evalBuffer(line)
}

// ParseFile reads path line by line via parse, stopping at (and returning)
// the first non-ok Result. Grounded on original_source's loadFile.
func (in *Interpreter) ParseFile(path string) Result {
	f, err := os.Open(path)
	if err != nil {
		in.setStatus(fmt.Sprintf("could not open '%s': %v", path, err))
		return ResultParseError
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if res := in.Parse(scanner.Text()); res != ResultOK {
			return res
		}
	}
	if err := scanner.Err(); err != nil {
		in.setStatus(fmt.Sprintf("error reading '%s': %v", path, err))
		return ResultParseError
	}
	return ResultOK
}

// evalBuffer is the shared core loop behind Parse, user-word replay, and
// FOR's body execution: it peels one space-delimited word at a time off buf
// and dispatches it to the compile-time or runtime evaluator, tracking the
// worst Result seen. A parse_error aborts the remainder of buf (spec.md §7:
// "Unterminated comments/strings abort the current line").
func (in *Interpreter) evalBuffer(buf string) Result {
	worst := ResultOK
	for len(buf) > 0 {
		word, rest, _ := NextWord(buf, ' ')
		if word == "" {
			buf = rest
			continue
		}

		var res Result
		if in.isCompiling {
			res, rest = in.compileEval(word, rest)
		} else {
			res, rest = in.runtimeEval(word, rest)
		}
		buf = rest
		worst = worse(worst, res)
		if res == ResultParseError {
			break
		}
	}
	return worst
}

func isNumericLiteral(word string) bool {
	return len(word) > 0 && word[0] >= '0' && word[0] <= '9'
}

// parseNumericLiteral implements spec.md §4.3: a '.' anywhere means double,
// otherwise C-style base detection (0x -> 16, leading 0 -> 8, else 10).
func parseNumericLiteral(word string) (Value, bool) {
	if strings.Contains(word, ".") {
		d, err := strconv.ParseFloat(word, 64)
		if err != nil {
			return Value{}, false
		}
		return NewDouble(d), true
	}
	i, err := strconv.ParseInt(word, 0, 64)
	if err != nil {
		return Value{}, false
	}
	return NewInteger(i), true
}

// runtimeEval is the runtime evaluator of spec.md §4.5.
func (in *Interpreter) runtimeEval(word, rest string) (Result, string) {
	if isNumericLiteral(word) {
		v, ok := parseNumericLiteral(word)
		if !ok {
			in.setStatus(fmt.Sprintf("parse error: invalid numeric literal '%s'", word))
			return ResultParseError, rest
		}
		in.Stack.Push(v)
		return ResultOK, rest
	}

	def, ok := in.runtimeDict[word]
	if !ok {
		in.setStatus(fmt.Sprintf("not found '%s' in dict", word))
		return ResultDictError, rest
	}

	if !def.Validator.Validate(in.Stack) {
		if in.Stack.Depth() < validatorMinDepth(def.Validator) {
			in.setStatus("stack underflow")
		} else {
			in.setStatus(fmt.Sprintf("%s: type error", word))
		}
		return ResultParamError, rest
	}

	newRest, res := def.Body(in, rest)
	return res, newRest
}

// compileEval is the compile-time evaluator of spec.md §4.6.
func (in *Interpreter) compileEval(word, rest string) (Result, string) {
	if in.newWord == "" {
		in.newWord = word
		return ResultOK, rest
	}

	if def, ok := in.compileDict[word]; ok {
		newRest, res := def.Body(in, rest)
		return res, newRest
	}

	if isNumericLiteral(word) {
		if _, ok := parseNumericLiteral(word); !ok {
			in.setStatus(fmt.Sprintf("parse error: invalid numeric literal '%s'", word))
			return ResultParseError, rest
		}
		in.newDefinition = append(in.newDefinition, word)
		return ResultOK, rest
	}

	if _, ok := in.runtimeDict[word]; ok {
		in.newDefinition = append(in.newDefinition, word)
		return ResultOK, rest
	}

	in.setStatus(fmt.Sprintf("unrecognized word at compile time: '%s'", word))
	return ResultParseError, rest
}

func validatorMinDepth(v Validator) int {
	switch t := v.(type) {
	case StackSizeValidator:
		return t.N
	case StrictTypeValidator:
		return len(t.Params)
	case AnyOfValidator:
		min := -1
		for _, alt := range t.Alternatives {
			d := validatorMinDepth(alt)
			if min == -1 || d < min {
				min = d
			}
		}
		if min == -1 {
			return 0
		}
		return min
	default:
		return 0
	}
}

// makeUserWordBody captures tokens by value and re-interprets them, in
// order, against the *current* dictionary on every call — late binding, per
// spec.md §4.6 "User-word body semantics". Rejoining the tokens into a
// space-separated buffer (rather than dispatching each one with a literally
// empty remainder) is a deliberate, documented refinement: it lets control
// words that consume trailing text — FOR above all — see the tokens that
// follow them even when they're running from inside a compiled definition
// instead of directly off a parsed line. See DESIGN.md.
func makeUserWordBody(tokens []string) WordBody {
	buf := strings.Join(tokens, " ")
	return func(in *Interpreter, rest string) (string, Result) {
		res := in.evalBuffer(buf)
		return rest, res
	}
}
