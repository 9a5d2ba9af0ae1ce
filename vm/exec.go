package vm

import (
	"bytes"

	"github.com/jcorbin/terminfo/lang"
)

// Execution is one run of a compiled program: its dynamic registers,
// parameter slots, program counter, output accumulator and stack. A
// Machine's static registers and delay policy are shared across every
// Execution run against it.
type Execution struct {
	machine  *Machine
	code     []lang.Instruction
	maxParam int

	dynamics      [26]Value
	params        []Value
	stack         Stack
	pc            int
	output        bytes.Buffer
	affectedLines int
	done          bool
}

// NewExecution builds an Execution for code against machine. maxParam is
// the compiled program's highest referenced parameter index.
func NewExecution(machine *Machine, code []lang.Instruction, maxParam int) *Execution {
	return &Execution{machine: machine, code: code, maxParam: maxParam}
}

// Begin resets the execution and seeds it with affectedLines and params,
// failing with RangeError if fewer than maxParam parameters are given.
func (e *Execution) Begin(affectedLines int, params ...Value) error {
	if len(params) < e.maxParam {
		return RangeError{Want: e.maxParam, Got: len(params)}
	}
	e.Reset()
	e.affectedLines = affectedLines
	e.params = params
	return nil
}

// Reset discards all stack/pc/output/register state, back to a fresh
// unstarted execution.
func (e *Execution) Reset() {
	e.dynamics = [26]Value{}
	e.params = nil
	e.stack.Reset()
	e.pc = 0
	e.output.Reset()
	e.affectedLines = 0
	e.done = false
}

// Done reports whether the program counter has run off the end of code.
func (e *Execution) Done() bool { return e.done }

// Output returns the bytes accumulated so far.
func (e *Execution) Output() []byte { return e.output.Bytes() }

// Run begins and single-steps to completion, returning the full output.
func (e *Execution) Run(affectedLines int, params ...Value) ([]byte, error) {
	if err := e.Begin(affectedLines, params...); err != nil {
		return nil, err
	}
	for !e.done {
		if _, err := e.Step(); err != nil {
			return nil, err
		}
	}
	return e.Output(), nil
}

// Step executes the instruction at pc and advances it, reporting whether
// the program has now run to completion.
func (e *Execution) Step() (bool, error) {
	if e.done {
		return true, nil
	}
	if e.pc >= len(e.code) {
		e.done = true
		return true, nil
	}

	delta := 0
	switch ins := e.code[e.pc].(type) {
	case lang.Out:
		e.output.Write(ins.Text)

	case lang.Delay:
		ms := ins.Millis
		if ins.Proportional {
			ms *= e.affectedLines
		}
		if e.machine.DirectOutput && (!e.machine.DisableDelays || ins.Force) {
			e.machine.DelayFunc(ms)
		}

	case lang.Print:
		v, err := e.stack.Pop()
		if err != nil {
			return false, err
		}
		s, err := Format(v, ins.Format, ins.Flags, ins.Width, ins.HasWidth, ins.Precision, ins.HasPrecision, ins.ZeroPad)
		if err != nil {
			return false, err
		}
		e.output.WriteString(s)

	case lang.PushParam:
		if ins.N-1 >= len(e.params) {
			return false, RangeError{Want: ins.N, Got: len(e.params)}
		}
		e.stack.Push(e.params[ins.N-1])

	case lang.PushVar:
		if isStaticName(ins.Name) {
			e.stack.Push(e.machine.Statics[staticIndex(ins.Name)])
		} else {
			e.stack.Push(e.dynamics[dynamicIndex(ins.Name)])
		}

	case lang.SetVar:
		v, err := e.stack.Pop()
		if err != nil {
			return false, err
		}
		if isStaticName(ins.Name) {
			e.machine.Statics[staticIndex(ins.Name)] = v
		} else {
			e.dynamics[dynamicIndex(ins.Name)] = v
		}

	case lang.Constant:
		e.stack.PushInt(ins.Value)

	case lang.Strlen:
		s, err := e.stack.PopStr()
		if err != nil {
			return false, err
		}
		e.stack.PushInt(len(s))

	case lang.ParamInc:
		if len(e.params) > 0 {
			e.params[0] = Int(e.params[0].IntVal() + 1)
		}
		if len(e.params) > 1 {
			e.params[1] = Int(e.params[1].IntVal() + 1)
		}

	case lang.BinOp:
		if err := e.execBinOp(ins.Kind); err != nil {
			return false, err
		}

	case lang.Not:
		v, err := e.stack.PopInt()
		if err != nil {
			return false, err
		}
		e.stack.PushInt(^v)

	case lang.CmpNot:
		v, err := e.stack.Pop()
		if err != nil {
			return false, err
		}
		if v.Truthy() {
			e.stack.PushInt(0)
		} else {
			e.stack.PushInt(1)
		}

	case lang.JumpZero:
		v, err := e.stack.Pop()
		if err != nil {
			return false, err
		}
		if !v.Truthy() {
			delta = ins.Delta
		}

	case lang.Jump:
		delta = ins.Delta

	default:
		return false, RuntimeError{"unrecognized instruction"}
	}

	e.pc += 1 + delta
	if e.pc >= len(e.code) {
		e.done = true
	}
	return e.done, nil
}

func (e *Execution) execBinOp(kind lang.BinOpKind) error {
	if kind == lang.LogicalAnd || kind == lang.LogicalOr {
		b, err := e.stack.Pop()
		if err != nil {
			return err
		}
		a, err := e.stack.Pop()
		if err != nil {
			return err
		}
		var result bool
		if kind == lang.LogicalAnd {
			result = a.Truthy() && b.Truthy()
		} else {
			result = a.Truthy() || b.Truthy()
		}
		e.stack.PushInt(boolInt(result))
		return nil
	}

	b, err := e.stack.PopInt()
	if err != nil {
		return err
	}
	a, err := e.stack.PopInt()
	if err != nil {
		return err
	}

	switch kind {
	case lang.Add:
		e.stack.PushInt(a + b)
	case lang.Sub:
		e.stack.PushInt(a - b)
	case lang.Mul:
		e.stack.PushInt(a * b)
	case lang.Div:
		if b == 0 {
			e.stack.PushInt(0)
		} else {
			e.stack.PushInt(floorDiv(a, b))
		}
	case lang.Mod:
		if b == 0 {
			e.stack.PushInt(0)
		} else {
			e.stack.PushInt(a - floorDiv(a, b)*b)
		}
	case lang.BitAnd:
		e.stack.PushInt(a & b)
	case lang.BitOr:
		e.stack.PushInt(a | b)
	case lang.BitXor:
		e.stack.PushInt(a ^ b)
	case lang.CmpEqual:
		e.stack.PushInt(boolInt(a == b))
	case lang.CmpGreater:
		e.stack.PushInt(boolInt(a > b))
	case lang.CmpLess:
		e.stack.PushInt(boolInt(a < b))
	}
	return nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
