// Package lang lexes and compiles the ncurses term(5) parameter-string
// language into a linear instruction stream with resolved relative
// jumps, ready for a vm.Execution to run.
package lang

// Instruction is the sealed set of opcodes a compiled Program is made
// of. Each concrete type carries only the fields its opcode needs.
type Instruction interface {
	isInstruction()
}

// Flags are the printf-like flags recognized by the capability
// formatter: '-', '+', '#', ' ' and the leading-only ':' that
// disambiguates '+'/'-' from the arithmetic operators of the same
// glyphs.
type Flags struct {
	Minus bool // left-justify
	Plus  bool // force a '+' sign on non-negative integers
	Hash  bool // alternate form: leading 0 (octal), 0x/0X (hex)
	Space bool // blank instead of a sign for non-negative integers
	Colon bool // leading marker only, no formatting effect of its own
}

// Out appends literal text to the output.
type Out struct{ Text []byte }

// Delay waits Millis milliseconds, scaled by affectedLines if
// Proportional, skipped unless Force when delays are disabled.
type Delay struct {
	Millis       int
	Proportional bool
	Force        bool
}

// Print pops one value and formats it per a term(5) printf conversion.
type Print struct {
	Format       byte
	Flags        Flags
	Width        int
	HasWidth     bool
	Precision    int
	HasPrecision bool
	ZeroPad      bool
}

// PushParam pushes parameter N (1-based).
type PushParam struct{ N int }

// PushVar pushes a register: dynamic if Name is lowercase, static if
// uppercase.
type PushVar struct{ Name byte }

// SetVar pops the stack and stores into a register: dynamic if Name is
// lowercase, static if uppercase.
type SetVar struct{ Name byte }

// Constant pushes a literal integer.
type Constant struct{ Value int }

// Strlen pops a string and pushes its length.
type Strlen struct{}

// ParamInc increments params[0] and params[1] by one, for %i.
type ParamInc struct{}

// BinOpKind names a binary (or logical) stack operation.
type BinOpKind int

const (
	Add BinOpKind = iota
	Sub
	Mul
	Div
	Mod
	BitAnd
	BitOr
	BitXor
	CmpEqual
	CmpGreater
	CmpLess
	LogicalAnd
	LogicalOr
)

// BinOp pops b then a, and pushes the result of a op b.
type BinOp struct{ Kind BinOpKind }

// Not pushes the bitwise complement of the popped integer.
type Not struct{}

// CmpNot pushes 1 if the popped value is falsy (0 or ""), else 0.
type CmpNot struct{}

// JumpZero pops a value; if it is falsy, pc += Delta (relative to the
// jump instruction's own position).
type JumpZero struct{ Delta int }

// Jump unconditionally adds Delta to pc (relative to its own position).
type Jump struct{ Delta int }

func (Out) isInstruction()       {}
func (Delay) isInstruction()     {}
func (Print) isInstruction()     {}
func (PushParam) isInstruction() {}
func (PushVar) isInstruction()   {}
func (SetVar) isInstruction()    {}
func (Constant) isInstruction()  {}
func (Strlen) isInstruction()    {}
func (ParamInc) isInstruction()  {}
func (BinOp) isInstruction()     {}
func (Not) isInstruction()       {}
func (CmpNot) isInstruction()    {}
func (JumpZero) isInstruction()  {}
func (Jump) isInstruction()      {}

// Program is a compiled capability string: a linear instruction stream
// with all jump targets already resolved to relative offsets.
type Program struct {
	Code         []Instruction
	MaxUsedParam int
}
