package terminfo

import (
	"github.com/jcorbin/terminfo/lang"
	"github.com/jcorbin/terminfo/vm"
)

// Value is a parameter or stack value: either an integer or a byte
// string.
type Value = vm.Value

// Int wraps an integer as a Value.
func Int(i int) Value { return vm.Int(i) }

// Str wraps a string as a Value.
func Str(s string) Value { return vm.Str(s) }

// Terminal owns the 26 static registers (A-Z) shared by every Program
// compiled against it, along with its delay policy. Programs compiled
// from the same Terminal see each other's static register writes;
// dynamic registers and parameters are private to each execution.
type Terminal struct {
	machine *vm.Machine
}

// NewTerminal returns a Terminal with its static registers zeroed and
// the default time.Sleep delay policy.
func NewTerminal() *Terminal {
	return &Terminal{machine: vm.NewMachine()}
}

// DisableDelays suppresses every non-forced DELAY instruction run
// against this Terminal.
func (t *Terminal) DisableDelays(disable bool) { t.machine.DisableDelays = disable }

// DirectOutput must be set for any DELAY to take effect; it models
// whether output is reaching a real terminal device rather than, say, a
// buffer under test.
func (t *Terminal) DirectOutput(direct bool) { t.machine.DirectOutput = direct }

// SetDelayFunc overrides how DELAY instructions wait. The default
// sleeps via time.Sleep; tests substitute a counting stub.
func (t *Terminal) SetDelayFunc(f func(ms int)) { t.machine.DelayFunc = f }

// Compile lexes and compiles source into a Program bound to this
// Terminal's static registers and delay policy.
func (t *Terminal) Compile(source string) (*Program, error) {
	compiled, err := lang.Compile(source)
	if err != nil {
		return nil, err
	}
	return &Program{
		terminal: t,
		compiled: compiled,
		exec:     vm.NewExecution(t.machine, compiled.Code, compiled.MaxUsedParam),
	}, nil
}
