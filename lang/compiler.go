package lang

// Compile lexes and lowers a term(5) capability source string into a
// Program: a linear instruction stream with every conditional resolved
// into relative JumpZero/Jump offsets.
func Compile(source string) (Program, error) {
	raw, err := lex(source)
	if err != nil {
		return Program{}, err
	}

	c := &compiler{items: raw}
	code, stop, err := c.compileSegment()
	if err != nil {
		return Program{}, err
	}
	if stop != nil {
		return Program{}, ParseError{c.pos, "stray conditional marker outside an if"}
	}

	return Program{Code: code, MaxUsedParam: c.maxParam}, nil
}

type compiler struct {
	items    []Instruction
	pos      int
	maxParam int
}

func (c *compiler) trackParam(item Instruction) {
	if pp, ok := item.(PushParam); ok && pp.N > c.maxParam {
		c.maxParam = pp.N
	}
}

// compileSegment compiles a straight-line run of instructions, recursing
// into compileIfBody whenever it meets a nested %?, and returns as soon
// as it meets (without consuming) a %t, %e or %; belonging to an
// enclosing conditional. At the top level, running out of input with no
// such marker is success; inside a conditional it is an error the caller
// diagnoses.
func (c *compiler) compileSegment() ([]Instruction, Instruction, error) {
	var code []Instruction
	for c.pos < len(c.items) {
		item := c.items[c.pos]
		switch item.(type) {
		case markerThen, markerElseIf, markerEndIf:
			return code, item, nil
		case markerBeginIf:
			c.pos++
			ifCode, err := c.compileIfBody()
			if err != nil {
				return nil, nil, err
			}
			code = append(code, ifCode...)
		default:
			c.trackParam(item)
			code = append(code, item)
			c.pos++
		}
	}
	return code, nil, nil
}

// compileIfBody compiles everything from just after a consumed %? up to
// and including its matching %;, lowering the %t/%e chain into resolved
// jumps. Each %e is itself re-scanned as a fresh segment: if what
// follows turns out to end in %t, the %e started another else-if
// condition; otherwise what was scanned is the plain else branch's body
// and the construct must end at the next %;.
func (c *compiler) compileIfBody() ([]Instruction, error) {
	var code []Instruction
	var endJumps []int

	cond, stop, err := c.compileSegment()
	if err != nil {
		return nil, err
	}
	if _, ok := stop.(markerThen); !ok {
		return nil, ParseError{c.pos, "unexpected end of instructions"}
	}
	c.pos++ // consume %t
	code = append(code, cond...)
	jzIdx := len(code)
	code = append(code, JumpZero{})

	for {
		branch, stop, err := c.compileSegment()
		if err != nil {
			return nil, err
		}
		code = append(code, branch...)

		switch stop.(type) {
		case markerEndIf:
			c.pos++ // consume %;
			patchJumpZero(code, jzIdx, len(code))
			patchJumps(code, endJumps, len(code))
			return code, nil

		case markerElseIf:
			c.pos++ // consume %e
			jumpIdx := len(code)
			code = append(code, Jump{})
			endJumps = append(endJumps, jumpIdx)
			patchJumpZero(code, jzIdx, len(code))

			nextCond, nextStop, err := c.compileSegment()
			if err != nil {
				return nil, err
			}
			code = append(code, nextCond...)

			if _, ok := nextStop.(markerThen); ok {
				c.pos++ // consume %t
				jzIdx = len(code)
				code = append(code, JumpZero{})
				continue
			}
			if _, ok := nextStop.(markerEndIf); !ok {
				return nil, ParseError{c.pos, "unexpected end of instructions"}
			}
			c.pos++ // consume %;
			patchJumps(code, endJumps, len(code))
			return code, nil

		default:
			return nil, ParseError{c.pos, "unexpected end of instructions"}
		}
	}
}

func patchJumpZero(code []Instruction, idx, target int) {
	code[idx] = JumpZero{Delta: target - idx - 1}
}

func patchJumps(code []Instruction, idxs []int, target int) {
	for _, idx := range idxs {
		code[idx] = Jump{Delta: target - idx - 1}
	}
}
