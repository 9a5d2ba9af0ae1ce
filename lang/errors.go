package lang

import "fmt"

// ParseError reports malformed capability source: an unbalanced
// conditional or an invalid escape sequence.
type ParseError struct {
	Pos    int
	Detail string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("terminfo/lang: parse at %d: %s", e.Pos, e.Detail)
}
