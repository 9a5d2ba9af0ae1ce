package vm

import (
	"strconv"
	"strings"

	"github.com/jcorbin/terminfo/lang"
)

// Format renders v according to one of the term(5) printf-like
// conversions: c d o x X s. width/precision are only honored when
// hasWidth/hasPrecision are set; zeroPad requests '0' fill instead of
// spaces (set by the lexer when the width token began with '0').
func Format(v Value, format byte, flags lang.Flags, width int, hasWidth bool, precision int, hasPrecision bool, zeroPad bool) (string, error) {
	switch format {
	case 'c':
		if !v.IsInt() {
			return "", TypeError{"%c requires an integer"}
		}
		return pad(string(rune(v.IntVal())), width, hasWidth, flags.Minus), nil

	case 's':
		if !v.IsStr() {
			return "", TypeError{"%s requires a string"}
		}
		s := v.StrVal()
		if hasPrecision && precision < len(s) {
			s = s[:precision]
		}
		return pad(s, width, hasWidth, flags.Minus), nil

	case 'd', 'o', 'x', 'X':
		if !v.IsInt() {
			return "", TypeError{"numeric format requires an integer"}
		}
		return formatNumeric(v.IntVal(), format, flags, width, hasWidth, precision, hasPrecision, zeroPad), nil

	default:
		return "", TypeError{"unsupported print format"}
	}
}

func pad(s string, width int, hasWidth bool, leftJustify bool) string {
	if !hasWidth || len(s) >= width {
		return s
	}
	fill := strings.Repeat(" ", width-len(s))
	if leftJustify {
		return s + fill
	}
	return fill + s
}

func formatNumeric(n int, format byte, flags lang.Flags, width int, hasWidth bool, precision int, hasPrecision bool, zeroPad bool) string {
	neg := n < 0
	abs := n
	if neg {
		abs = -n
	}

	var digits string
	switch format {
	case 'd':
		digits = strconv.Itoa(abs)
	case 'o':
		digits = strconv.FormatInt(int64(abs), 8)
	case 'x':
		digits = strconv.FormatInt(int64(abs), 16)
	case 'X':
		digits = strings.ToUpper(strconv.FormatInt(int64(abs), 16))
	}

	if hasPrecision {
		if precision == 0 && abs == 0 {
			digits = ""
		} else if len(digits) < precision {
			digits = strings.Repeat("0", precision-len(digits)) + digits
		}
	}

	sign := ""
	if format == 'd' {
		switch {
		case neg:
			sign = "-"
		case flags.Plus:
			sign = "+"
		case flags.Space:
			sign = " "
		}
	}

	alt := ""
	if flags.Hash {
		switch format {
		case 'o':
			alt = "0"
		case 'x':
			alt = "0x"
		case 'X':
			alt = "0X"
		}
	}
	if format == 'o' && alt == "0" && len(digits) > 0 && digits[0] == '0' {
		alt = "" // cancelled: precision padding already supplied the leading zero
	}

	prefix := sign + alt
	body := prefix + digits

	if !hasWidth || width <= len(body) {
		return body
	}
	fillLen := width - len(body)
	if flags.Minus {
		return body + strings.Repeat(" ", fillLen)
	}
	if zeroPad {
		return prefix + strings.Repeat("0", fillLen) + digits
	}
	return strings.Repeat(" ", fillLen) + body
}
