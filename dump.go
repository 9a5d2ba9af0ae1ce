package terminfo

import (
	"fmt"
	"io"
	"sort"
)

// Dump writes a human-readable listing of e's names and capabilities to
// w: names first, then booleans/numbers/strings sorted by key, one per
// line. Extended capabilities are interleaved into the same listing
// (since Entry merges them into the same three maps) but marked with a
// leading '+' when the name isn't one of the standard capability tables,
// so a reader can tell a terminal-specific extension from a standard
// capability at a glance. This is a debugging convenience only; it never
// touches Entry's own state.
func Dump(w io.Writer, e *Entry) error {
	names := e.Names()
	if _, err := fmt.Fprintf(w, "names: %s\n", joinNames(names)); err != nil {
		return err
	}

	if err := dumpBoolSection(w, "booleans", e.booleans, isStandardBool); err != nil {
		return err
	}
	if err := dumpNumSection(w, "numbers", e.numbers, isStandardNumber); err != nil {
		return err
	}
	if err := dumpStrSection(w, "strings", e.strings, isStandardString); err != nil {
		return err
	}
	return nil
}

func joinNames(n Names) string {
	all := n.All()
	out := ""
	for i, s := range all {
		if i > 0 {
			out += "|"
		}
		out += s
	}
	return out
}

func isStandardBool(name string) bool   { return indexOf(BoolNames, name) >= 0 }
func isStandardNumber(name string) bool { return indexOf(NumberNames, name) >= 0 }
func isStandardString(name string) bool { return indexOf(StringNames, name) >= 0 }

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func dumpBoolSection(w io.Writer, title string, m map[string]bool, isStandard func(string) bool) error {
	if _, err := fmt.Fprintf(w, "%s:\n", title); err != nil {
		return err
	}
	for _, k := range sortedKeys(m) {
		if _, err := fmt.Fprintf(w, "  %s%s\n", marker(isStandard, k), k); err != nil {
			return err
		}
	}
	return nil
}

func dumpNumSection(w io.Writer, title string, m map[string]int, isStandard func(string) bool) error {
	if _, err := fmt.Fprintf(w, "%s:\n", title); err != nil {
		return err
	}
	for _, k := range sortedKeys(m) {
		if _, err := fmt.Fprintf(w, "  %s%s=%d\n", marker(isStandard, k), k, m[k]); err != nil {
			return err
		}
	}
	return nil
}

func dumpStrSection(w io.Writer, title string, m map[string][]byte, isStandard func(string) bool) error {
	if _, err := fmt.Fprintf(w, "%s:\n", title); err != nil {
		return err
	}
	for _, k := range sortedKeys(m) {
		if _, err := fmt.Fprintf(w, "  %s%s=%q\n", marker(isStandard, k), k, m[k]); err != nil {
			return err
		}
	}
	return nil
}

func marker(isStandard func(string) bool, name string) string {
	if isStandard(name) {
		return ""
	}
	return "+"
}
