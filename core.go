package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/arrowsmith-dep/concatty/internal/fileinput"
	"github.com/arrowsmith-dep/concatty/internal/flushio"
	"github.com/arrowsmith-dep/concatty/internal/runeio"
)

// Core bundles the ambient I/O and logging state shared by every word: the
// input stream (§3 "Input stream"), a flush-able output sink, and whatever
// resources the host attached (e.g. a tee file, a pipe feeding the script).
type Core struct {
	logging
	fileinput.Input
	out     flushio.WriteFlusher
	closers []io.Closer
}

// Close releases any closers registered by options, most-recently-attached
// first.
func (core *Core) Close() (err error) {
	for i := len(core.closers) - 1; i >= 0; i-- {
		if cerr := core.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// halt flushes output, logs the failure, and panics with a haltError that
// Run's panicerr.Recover unwinds back into a plain error.
func (core *Core) halt(err error) {
	func() {
		defer func() { recover() }()
		if core.out != nil {
			if ferr := core.out.Flush(); err == nil {
				err = ferr
			}
		}
	}()

	func() {
		defer func() { recover() }()
		core.logf("#", "halt error: %v", err)
	}()

	panic(haltError{err})
}

func (core *Core) writeRune(r rune) {
	if _, err := runeio.WriteANSIRune(core.out, r); err != nil {
		core.halt(err)
	}
}

// readRune blocks for the next rune, flushing pending output first so an
// interactive terminal sees prompts before the read blocks. A rune of 0 with
// a nil error means the input stream advanced to its next queued source
// without producing a rune yet (see fileinput.Input.ReadRune); readRune
// loops past that rather than surfacing it.
func (core *Core) readRune() rune {
	if err := core.out.Flush(); err != nil {
		core.halt(err)
	}

	r, _, err := core.Input.ReadRune()
	for r == 0 {
		if err != nil {
			core.halt(err)
		}
		r, _, err = core.Input.ReadRune()
	}
	return r
}

type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}
func (err haltError) Unwrap() error { return err.error }

// logging implements the VM's single logf hook (teacher's tracing idiom):
// when logfn is unset logging is free, otherwise every mark is padded to a
// stable column width so traces line up.
type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		for _, r := range mark {
			mark = strings.Repeat(string(r), n) + mark
			break
		}
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
