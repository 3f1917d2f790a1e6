package main

import (
	"os"
	"strings"
)

// registerEffectWords installs the host-provided effect namespaces (spec
// §6): Window, Sys (Fs/panic/Terminal), and String. These consume
// arguments from the stacks like any other word; the "external
// collaborator" boundary from spec §1 is simply that they are the only
// words that touch the outside world (stdout, the filesystem, the
// terminal).
func registerEffectWords(vm *VM) {
	windowNS := &Namespace{}
	windowNS.Define("print", Word{fn: wordWindowPrint})
	vm.dict.Define("Window", windowNS.Word())

	fsNS := &Namespace{}
	fsNS.Define("read", Word{fn: wordFsRead})

	sysNS := &Namespace{}
	sysNS.Define("Fs", fsNS.Word())
	sysNS.Define("panic", Word{fn: wordSysPanic})
	sysNS.Define("Terminal", registerTerminalNamespace())
	vm.dict.Define("Sys", sysNS.Word())

	stringNS := &Namespace{}
	stringNS.Define("decimal", Word{fn: wordStringDecimal})
	stringNS.Define("split", Word{fn: wordStringSplit})
	vm.dict.Define("String", stringNS.Word())
}

func wordWindowPrint(vm *VM) error {
	obj, err := vm.objs.Pop()
	if err != nil {
		return err
	}
	if _, err := vm.out.Write(obj.Data()); err != nil {
		return err
	}
	_, err = vm.out.Write([]byte{'\n'})
	return err
}

func wordFsRead(vm *VM) error {
	path, err := vm.objs.Pop()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path.Text())
	if err != nil {
		return err
	}
	vm.objs.Push(NewObjectBytes(data))
	return nil
}

func wordSysPanic(vm *VM) error {
	obj, err := vm.objs.Pop()
	if err != nil {
		return err
	}
	return userError{obj.Text()}
}

func wordStringDecimal(vm *VM) error {
	v, err := vm.ints.Pop()
	if err != nil {
		return err
	}
	vm.objs.Push(NewObjectText(v.String()))
	return nil
}

// wordStringSplit implements `String split` (spec §6): pop the separator
// code point, pop the text object, push a list whose refs are the pieces
// split on that code point.
func wordStringSplit(vm *VM) error {
	sep, err := vm.ints.Pop()
	if err != nil {
		return err
	}
	obj, err := vm.objs.Pop()
	if err != nil {
		return err
	}
	if !sep.IsInt64() {
		return rangeError{"split separator out of range"}
	}
	r := rune(sep.Int64())
	parts := strings.Split(obj.Text(), string(r))
	refs := make([]Object, len(parts))
	for i, p := range parts {
		refs[i] = NewObjectText(p)
	}
	vm.objs.Push(NewObjectRefs(refs))
	return nil
}
