package main

import (
	"io"
	"strings"
	"unicode/utf8"
)

// isLexSpace is the ASCII whitespace classification the lexer uses (spec
// §4.1): space, tab, LF, CR, VT, FF. Deliberately not unicode.IsSpace,
// which would also treat non-ASCII separators as word boundaries.
func isLexSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// readWord implements the lexer contract of spec §4.1: accumulate
// non-whitespace runes into a word, stopping at whitespace or end of
// input. Returns io.EOF when the accumulator is empty and the input is
// exhausted.
func (vm *VM) readWord() (string, error) {
	var sb strings.Builder
	started := false
	for {
		r, n, err := vm.Input.ReadRune()
		if r == 0 && err == nil {
			// the current source advanced to the next queued one without
			// yielding a rune; retry rather than treating it as a NUL byte
			continue
		}
		if err != nil {
			if err == io.EOF {
				if !started {
					return "", io.EOF
				}
				return sb.String(), nil
			}
			return "", err
		}
		if r == utf8.RuneError && n <= 1 {
			return "", lexError{"invalid utf-8 in word"}
		}
		if isLexSpace(r) {
			if started {
				return sb.String(), nil
			}
			continue
		}
		sb.WriteRune(r)
		started = true
	}
}
