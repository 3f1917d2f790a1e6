package main

import (
	"fmt"
	"math/big"
	"os"

	"golang.org/x/term"
)

// registerTerminalNamespace builds the `Sys Terminal ...` sub-table (spec
// §6): cursor movement, clearing, printing, and flushing are ANSI escape
// sequences written through the VM's flush-able output; size is read
// straight from the controlling terminal via golang.org/x/term.
func registerTerminalNamespace() Word {
	ns := &Namespace{}
	ns.Define("wait", Word{fn: wordTerminalWait})
	ns.Define("set-cursor", Word{fn: wordTerminalSetCursor})
	ns.Define("clear", Word{fn: func(vm *VM) error { return vm.writeEscape("\x1b[2J") }})
	ns.Define("clear-line", Word{fn: func(vm *VM) error { return vm.writeEscape("\x1b[2K") }})
	ns.Define("print", Word{fn: wordTerminalPrint})
	ns.Define("flush", Word{fn: func(vm *VM) error { return vm.out.Flush() }})
	ns.Define("size", Word{fn: wordTerminalSize})
	return ns.Word()
}

func (vm *VM) writeEscape(seq string) error {
	_, err := vm.out.Write([]byte(seq))
	return err
}

func wordTerminalPrint(vm *VM) error {
	obj, err := vm.objs.Pop()
	if err != nil {
		return err
	}
	_, err = vm.out.Write(obj.Data())
	return err
}

// wordTerminalSetCursor pops y then x (spec §6 table) and moves the cursor
// to (x,y); both coordinates must fit in 16 bits.
func wordTerminalSetCursor(vm *VM) error {
	y, err := vm.ints.Pop()
	if err != nil {
		return err
	}
	x, err := vm.ints.Pop()
	if err != nil {
		return err
	}
	xi, err := fitUint16(x)
	if err != nil {
		return err
	}
	yi, err := fitUint16(y)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(vm.out, "\x1b[%d;%dH", yi+1, xi+1)
	return err
}

func fitUint16(v *big.Int) (int, error) {
	if !v.IsInt64() {
		return 0, rangeError{"coordinate out of range"}
	}
	i := v.Int64()
	if i < 0 || i > 0xFFFF {
		return 0, rangeError{"coordinate out of range"}
	}
	return int(i), nil
}

// wordTerminalSize pushes width then height, in cells (spec §6 table).
func wordTerminalSize(vm *VM) error {
	w, h, err := term.GetSize(int(os.Stdin.Fd()))
	if err != nil {
		return err
	}
	vm.ints.Push(big.NewInt(int64(w)))
	vm.ints.Push(big.NewInt(int64(h)))
	return nil
}

func wordTerminalWait(vm *VM) error {
	key, err := vm.nextKeyEvent()
	if err != nil {
		return err
	}
	vm.ints.Push(big.NewInt(key))
	return nil
}
