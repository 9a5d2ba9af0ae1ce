package terminfo

import (
	"github.com/jcorbin/terminfo/lang"
	"github.com/jcorbin/terminfo/vm"
)

// Program is a capability string compiled against a Terminal. It may be
// executed many times; each execution begins with a full reset of its
// stack, dynamic registers and output, but shares its Terminal's static
// registers with every other Program compiled from it.
type Program struct {
	terminal  *Terminal
	compiled  lang.Program
	exec      *vm.Execution
	executing bool
}

// MaxUsedParam reports the highest 1-based parameter index this
// program's source referenced.
func (p *Program) MaxUsedParam() int { return p.compiled.MaxUsedParam }

func valuesOf(params []interface{}) ([]Value, error) {
	out := make([]Value, len(params))
	for i, v := range params {
		switch x := v.(type) {
		case int:
			out[i] = Int(x)
		case string:
			out[i] = Str(x)
		case Value:
			out[i] = x
		default:
			return nil, vm.TypeError{Detail: "capability parameters must be int or string"}
		}
	}
	return out, nil
}

// Exec runs the program to completion with the given affectedLines
// (scaling any proportional DELAY) and parameters, and returns the
// produced bytes. It fails if another execution of this same Program is
// already in progress.
func (p *Program) Exec(affectedLines int, params ...interface{}) ([]byte, error) {
	if p.executing {
		return nil, vm.TypeError{Detail: "program is already executing"}
	}
	values, err := valuesOf(params)
	if err != nil {
		return nil, err
	}
	p.executing = true
	defer func() { p.executing = false }()
	return p.exec.Run(affectedLines, values...)
}

// Begin resets the program and seeds it with params for a stepwise run
// via Step, with affectedLines treated as 0, so any proportional DELAY
// waits 0 ms. Use Exec for the common one-shot case.
func (p *Program) Begin(params ...interface{}) error {
	if p.executing {
		return vm.TypeError{Detail: "program is already executing"}
	}
	values, err := valuesOf(params)
	if err != nil {
		return err
	}
	if err := p.exec.Begin(0, values...); err != nil {
		return err
	}
	p.executing = true
	return nil
}

// Step executes the next instruction, reporting whether the program has
// now run to completion.
func (p *Program) Step() (bool, error) {
	done, err := p.exec.Step()
	if done || err != nil {
		p.executing = false
	}
	return done, err
}

// Reset discards all execution state, ready for a fresh Begin or Exec.
func (p *Program) Reset() {
	p.exec.Reset()
	p.executing = false
}

// Output returns the bytes accumulated by the current or most recently
// completed step-wise execution.
func (p *Program) Output() []byte { return p.exec.Output() }

// Done reports whether the current step-wise execution has finished.
func (p *Program) Done() bool { return p.exec.Done() }
