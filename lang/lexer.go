package lang

import (
	"math"
	"regexp"
	"strconv"
)

// capRe is the single pass over a capability string. The alternatives are
// told apart by the syntax right after '%' or '$<', with one overlap: a
// printf conversion with a '-' or '+' flag (e.g. "%-5d", "%+d") also
// begins like the %- / %+ operators. The printf alternative is listed
// first, so such input lexes as a conversion.
var capRe = regexp.MustCompile(`` +
	`\$<(?P<delaynum>[0-9]+(?:\.[0-9]+)?)(?P<delaystar>\*)?(?P<delayslash>/)?>` +
	`|%p(?P<pparam>[1-9])` +
	`|%P(?P<setvar>[A-Za-z])` +
	`|%g(?P<getvar>[A-Za-z])` +
	`|%'(?P<charconst>(?:\\.|\^.|[^'\\])+)'` +
	`|%\{(?P<intconst>-?[0-9]+)\}` +
	`|%(?P<pflags>:?[-+# ]*)(?P<pwidth>0?[0-9]+)?(?:\.(?P<pprec>[0-9]+))?(?P<pformat>[cdoxXs])` +
	`|%(?P<singleop>[ilAO!?te;%+\-*/m&|^~=><])`,
)

var capReNames = capRe.SubexpNames()

// lex scans source into a flat raw instruction stream: literal runs
// become Out, and %? %t %e %; become the four flow-control markers for
// the compiler's lowering pass to consume.
func lex(source string) ([]Instruction, error) {
	var out []Instruction
	matches := capRe.FindAllStringSubmatchIndex(source, -1)

	pos := 0
	emitLiteral := func(text string, at int) error {
		if text == "" {
			return nil
		}
		b, err := decodeEscapes(text)
		if err != nil {
			if pe, ok := err.(ParseError); ok {
				pe.Pos += at
				return pe
			}
			return err
		}
		if len(b) > 0 {
			out = append(out, Out{Text: b})
		}
		return nil
	}

	for _, m := range matches {
		start, end := m[0], m[1]
		if start > pos {
			if err := emitLiteral(source[pos:start], pos); err != nil {
				return nil, err
			}
		}

		inst, err := lexOne(source, m)
		if err != nil {
			return nil, err
		}
		if inst != nil {
			out = append(out, inst)
		}

		pos = end
	}
	if pos < len(source) {
		if err := emitLiteral(source[pos:], pos); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func groupText(source string, m []int, name string) (string, bool) {
	for i, n := range capReNames {
		if n != name {
			continue
		}
		s, e := m[2*i], m[2*i+1]
		if s < 0 {
			return "", false
		}
		return source[s:e], true
	}
	return "", false
}

func lexOne(source string, m []int) (Instruction, error) {
	pos := m[0]

	if num, ok := groupText(source, m, "delaynum"); ok {
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return nil, ParseError{pos, "bad delay number"}
		}
		_, star := groupText(source, m, "delaystar")
		_, slash := groupText(source, m, "delayslash")
		return Delay{
			Millis:       int(math.Round(v)),
			Proportional: star,
			Force:        slash,
		}, nil
	}

	if p, ok := groupText(source, m, "pparam"); ok {
		n, _ := strconv.Atoi(p)
		return PushParam{N: n}, nil
	}

	if v, ok := groupText(source, m, "setvar"); ok {
		return SetVar{Name: v[0]}, nil
	}

	if v, ok := groupText(source, m, "getvar"); ok {
		return PushVar{Name: v[0]}, nil
	}

	if body, ok := groupText(source, m, "charconst"); ok {
		c, err := decodeCharConstant(body, pos)
		if err != nil {
			return nil, err
		}
		return Constant{Value: int(c)}, nil
	}

	if n, ok := groupText(source, m, "intconst"); ok {
		v, err := strconv.Atoi(n)
		if err != nil {
			return nil, ParseError{pos, "bad integer constant"}
		}
		return Constant{Value: v}, nil
	}

	if format, ok := groupText(source, m, "pformat"); ok {
		flagStr, _ := groupText(source, m, "pflags")
		flags := Flags{}
		for _, c := range flagStr {
			switch c {
			case '-':
				flags.Minus = true
			case '+':
				flags.Plus = true
			case '#':
				flags.Hash = true
			case ' ':
				flags.Space = true
			case ':':
				flags.Colon = true
			}
		}

		p := Print{Format: format[0], Flags: flags}
		if w, ok := groupText(source, m, "pwidth"); ok {
			if w[0] == '0' {
				p.ZeroPad = true
			}
			width, err := strconv.Atoi(w)
			if err != nil {
				return nil, ParseError{pos, "bad width"}
			}
			p.Width, p.HasWidth = width, true
		}
		if prec, ok := groupText(source, m, "pprec"); ok {
			precision, err := strconv.Atoi(prec)
			if err != nil {
				return nil, ParseError{pos, "bad precision"}
			}
			p.Precision, p.HasPrecision = precision, true
		}
		return p, nil
	}

	op, _ := groupText(source, m, "singleop")
	return lexSingleOp(op[0], pos)
}

func lexSingleOp(c byte, pos int) (Instruction, error) {
	switch c {
	case 'i':
		return ParamInc{}, nil
	case 'l':
		return Strlen{}, nil
	case '+':
		return BinOp{Add}, nil
	case '-':
		return BinOp{Sub}, nil
	case '*':
		return BinOp{Mul}, nil
	case '/':
		return BinOp{Div}, nil
	case 'm':
		return BinOp{Mod}, nil
	case '&':
		return BinOp{BitAnd}, nil
	case '|':
		return BinOp{BitOr}, nil
	case '^':
		return BinOp{BitXor}, nil
	case '~':
		return Not{}, nil
	case '=':
		return BinOp{CmpEqual}, nil
	case '>':
		return BinOp{CmpGreater}, nil
	case '<':
		return BinOp{CmpLess}, nil
	case 'A':
		return BinOp{LogicalAnd}, nil
	case 'O':
		return BinOp{LogicalOr}, nil
	case '!':
		return CmpNot{}, nil
	case '?':
		return markerBeginIf{}, nil
	case 't':
		return markerThen{}, nil
	case 'e':
		return markerElseIf{}, nil
	case ';':
		return markerEndIf{}, nil
	case '%':
		return Out{Text: []byte{'%'}}, nil
	default:
		return nil, ParseError{pos, "unrecognized operator"}
	}
}
