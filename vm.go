package main

import (
	"context"
	"io"
	"math/big"
)

// VM is the whole interpreter: the ambient I/O core, the two typed stacks,
// the dictionary, and the compiler's single builder slot (spec §2).
type VM struct {
	Core

	args []string

	ints Stack[*big.Int]
	objs Stack[Object]

	dict Dictionary
	comp Compiler
}

func newVM() *VM {
	vm := &VM{}
	registerLiteralParsers(&vm.dict)
	registerCompilerWords(&vm.dict)
	registerIntegerWords(&vm.dict)
	registerObjectWords(&vm.dict)
	registerVarWords(&vm.dict)
	registerEffectWords(vm)
	return vm
}

// run is the driver loop (spec §4.9): command-line arguments are pushed
// onto the object stack once, then read_word/resolve/execute repeats until
// end of input.
func (vm *VM) run(ctx context.Context) error {
	for _, a := range vm.args {
		vm.objs.Push(NewObjectText(a))
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		word, err := vm.readWord()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			vm.halt(err)
		}

		w, ok := vm.dict.Get(word)
		if !ok {
			vm.halt(unknownWordError{word})
		}

		vm.logf(">", "%v", word)
		if err := vm.encounter(w); err != nil {
			vm.halt(err)
		}
	}
}
