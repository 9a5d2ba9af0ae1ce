package lang

// The four conditional markers the lexer emits for %? %t %e %;. The
// compiler's lowering pass consumes these and replaces them with
// resolved JumpZero/Jump instructions; they never appear in a finished
// Program.Code.
type markerBeginIf struct{}
type markerThen struct{}
type markerElseIf struct{}
type markerEndIf struct{}

func (markerBeginIf) isInstruction() {}
func (markerThen) isInstruction()    {}
func (markerElseIf) isInstruction()  {}
func (markerEndIf) isInstruction()   {}
