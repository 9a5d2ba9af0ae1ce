package terminfo

import (
	"errors"
	"fmt"
)

// ErrEntryNotFound is returned by Database.Load when the given name isn't
// indexed.
var ErrEntryNotFound = errors.New("terminfo: entry not found")

// ErrNoDefaultTerm is returned by Database.LoadDefault when no terminal
// name is available: the environment variable it reads is unset and no
// fallback was given.
var ErrNoDefaultTerm = errors.New("terminfo: no default terminal")

// FormatError reports a malformed terminfo binary: a bad magic number, a
// short read, or an internal table size that can't be satisfied.
type FormatError struct {
	Op     string
	Detail string
}

func (e FormatError) Error() string {
	return fmt.Sprintf("terminfo: %s: %s", e.Op, e.Detail)
}
