// Package machinestub is a host integration exercising rpn.WordContext /
// rpn.BindContext against a simulated CNC controller, standing in for the
// Qt keypad and GRBL-style controller the original CNC application drove.
// It has no serial port or G-code sender behind it; jogs just update
// in-memory state so word semantics can be tested without hardware.
package machinestub

import (
	"fmt"
	"sync"

	"github.com/elh/rpn/pkg/rpn"
)

// Machine holds the simulated controller state MPOS->/WPOS->/JOG-*/SEND and
// friends read and mutate. Zero value is a machine parked at the origin.
type Machine struct {
	mu sync.Mutex

	machinePos rpn.Vec3
	workOffset rpn.Vec3
	speed      float64
	feed       float64
	sent       []string
}

// Register installs the machine-control word family into in, all closing
// over m via rpn.BindContext.
func Register(in *rpn.Interpreter, m *Machine) {
	noArgs := rpn.NoParams
	oneVec3 := rpn.StrictTypeValidator{Params: []rpn.ParamSpec{{Name: "v", Type: rpn.ParamVec3}}}
	oneNumber := rpn.StrictTypeValidator{Params: []rpn.ParamSpec{{Name: "x", Type: rpn.ParamNumber}}}
	oneString := rpn.StrictTypeValidator{Params: []rpn.ParamSpec{{Name: "s", Type: rpn.ParamString}}}

	in.AddDefinition("MPOS->", rpn.BindContext("Push Machine Position to the stack ( -- mpos )", noArgs, m,
		func(interp *rpn.Interpreter, m *Machine, rest string) (string, rpn.Result) {
			m.mu.Lock()
			pos := m.machinePos
			m.mu.Unlock()
			interp.Stack.Push(rpn.NewVec3(pos))
			return rest, rpn.ResultOK
		}))

	in.AddDefinition("WPOS->", rpn.BindContext("Push Work Position to the stack ( -- wpos )", noArgs, m,
		func(interp *rpn.Interpreter, m *Machine, rest string) (string, rpn.Result) {
			m.mu.Lock()
			wpos := sub(m.machinePos, m.workOffset)
			m.mu.Unlock()
			interp.Stack.Push(rpn.NewVec3(wpos))
			return rest, rpn.ResultOK
		}))

	in.AddDefinition("->WPOS", rpn.BindContext("Set the work offset so the current position reads as newpos ( newpos -- )", oneVec3, m,
		func(interp *rpn.Interpreter, m *Machine, rest string) (string, rpn.Result) {
			v, _ := interp.Stack.Pop()
			m.mu.Lock()
			m.workOffset = sub(m.machinePos, v.Vec3())
			m.mu.Unlock()
			return rest, rpn.ResultOK
		}))

	in.AddDefinition("SPEED->", rpn.BindContext("Push spindle speed to the stack ( -- speed )", noArgs, m,
		func(interp *rpn.Interpreter, m *Machine, rest string) (string, rpn.Result) {
			m.mu.Lock()
			s := m.speed
			m.mu.Unlock()
			interp.Stack.Push(rpn.NewDouble(s))
			return rest, rpn.ResultOK
		}))

	in.AddDefinition("->SPEED", rpn.BindContext("Set spindle speed ( speed -- )", oneNumber, m,
		func(interp *rpn.Interpreter, m *Machine, rest string) (string, rpn.Result) {
			v, _ := interp.Stack.Pop()
			m.mu.Lock()
			m.speed = v.AsFloat64()
			m.mu.Unlock()
			return rest, rpn.ResultOK
		}))

	in.AddDefinition("FEED->", rpn.BindContext("Push jog feed rate to the stack ( -- feed )", noArgs, m,
		func(interp *rpn.Interpreter, m *Machine, rest string) (string, rpn.Result) {
			m.mu.Lock()
			f := m.feed
			m.mu.Unlock()
			interp.Stack.Push(rpn.NewDouble(f))
			return rest, rpn.ResultOK
		}))

	in.AddDefinition("->FEED", rpn.BindContext("Set jog feed rate ( feed -- )", oneNumber, m,
		func(interp *rpn.Interpreter, m *Machine, rest string) (string, rpn.Result) {
			v, _ := interp.Stack.Pop()
			m.mu.Lock()
			m.feed = v.AsFloat64()
			m.mu.Unlock()
			return rest, rpn.ResultOK
		}))

	in.AddDefinition("JOG-R", rpn.BindContext("Jog to a position relative to the current one ( offset -- )", oneVec3, m,
		func(interp *rpn.Interpreter, m *Machine, rest string) (string, rpn.Result) {
			v, _ := interp.Stack.Pop()
			m.mu.Lock()
			m.machinePos = add(m.machinePos, v.Vec3())
			m.mu.Unlock()
			return rest, rpn.ResultOK
		}))

	in.AddDefinition("JOG-WA", rpn.BindContext("Jog to an absolute work position ( wpos -- )", oneVec3, m,
		func(interp *rpn.Interpreter, m *Machine, rest string) (string, rpn.Result) {
			v, _ := interp.Stack.Pop()
			m.mu.Lock()
			m.machinePos = add(v.Vec3(), m.workOffset)
			m.mu.Unlock()
			return rest, rpn.ResultOK
		}))

	in.AddDefinition("JOG-MA", rpn.BindContext("Jog to an absolute machine position ( mpos -- )", oneVec3, m,
		func(interp *rpn.Interpreter, m *Machine, rest string) (string, rpn.Result) {
			v, _ := interp.Stack.Pop()
			m.mu.Lock()
			m.machinePos = v.Vec3()
			m.mu.Unlock()
			return rest, rpn.ResultOK
		}))

	in.AddDefinition("SEND", rpn.BindContext("Send a raw command to the controller ( g-code -- )", oneString, m,
		func(interp *rpn.Interpreter, m *Machine, rest string) (string, rpn.Result) {
			v, _ := interp.Stack.Pop()
			m.mu.Lock()
			m.sent = append(m.sent, v.Str())
			m.mu.Unlock()
			return rest, rpn.ResultOK
		}))
}

// Log returns every command SEND has forwarded to the simulated
// controller, in order.
func (m *Machine) Log() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.sent))
	copy(out, m.sent)
	return out
}

func (m *Machine) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fmt.Sprintf("mpos=%s speed=%.1f feed=%.1f", m.machinePos, m.speed, m.feed)
}

func add(a, b rpn.Vec3) rpn.Vec3 { return rpn.Vec3{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z} }
func sub(a, b rpn.Vec3) rpn.Vec3 { return rpn.Vec3{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z} }
