package main

import (
	"errors"
	"fmt"
)

// errStackUnderflow is returned (wrapped in no additional context) by both
// typed stacks' Pop/Top when empty; see spec §7 "Stack underflow".
var errStackUnderflow = errors.New("stack underflow")

// lexError reports invalid UTF-8 in a word, or an unexpected end of input
// where a token was required (e.g. the name after `:`).
type lexError struct{ reason string }

func (e lexError) Error() string { return "lex error: " + e.reason }

// unknownWordError reports a name absent from the dictionary and rejected
// by every fallback parser.
type unknownWordError struct{ word string }

func (e unknownWordError) Error() string { return fmt.Sprintf("word %q not defined", e.word) }

// rangeError reports an integer that does not fit a required width, or an
// index out of bounds for an object accessor.
type rangeError struct{ reason string }

func (e rangeError) Error() string { return "range error: " + e.reason }

// compileStateError reports a compiler control word used in the wrong
// state: `:` while compiling, `;`/`then`/`else`/`end`/`repeat` in the wrong
// stage, or `if` nested inside an open conditional.
type compileStateError struct{ reason string }

func (e compileStateError) Error() string { return "compile error: " + e.reason }

// userError is raised by `Sys panic` with caller-supplied text.
type userError struct{ message string }

func (e userError) Error() string { return e.message }

// unimplementedEventError reports a VT100 input sequence the terminal
// decoder does not (yet) translate into a key event; see spec §9
// "Unreplicated dark corners".
type unimplementedEventError struct{ reason string }

func (e unimplementedEventError) Error() string { return "unimplemented event: " + e.reason }
