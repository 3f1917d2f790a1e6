package main

import (
	"context"
	"errors"
	"io"

	"github.com/arrowsmith-dep/concatty/internal/panicerr"
)

// New builds a VM with its dictionary fully wired (literals, compiler,
// both stacks' primitives, Var, and the host effect namespaces), then
// applies opts over the defaults.
func New(opts ...VMOption) *VM {
	vm := newVM()
	defaultOptions.apply(vm)
	VMOptions(opts...).apply(vm)
	return vm
}

// Run drives vm to completion, recovering any goroutine panic (including
// the one halt uses to unwind a failure) into a plain error. A clean
// end-of-input is success.
func (vm *VM) Run(ctx context.Context) error {
	err := panicerr.Recover("VM", func() error {
		return vm.run(ctx)
	})
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	var he haltError
	if errors.As(err, &he) {
		err = he.error
	}
	return err
}

func WithInput(r io.Reader) VMOption         { return withInput(r) }
func WithInputWriter(w io.WriterTo) VMOption { return withInputWriter(w) }
func WithOutput(w io.Writer) VMOption        { return withOutput(w) }
func WithTee(w io.Writer) VMOption           { return withTee(w) }
func WithArgs(args ...string) VMOption       { return withArgs(args) }

func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }
