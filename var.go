package main

import "math/big"

// registerVarWords installs the Var namespace (spec §4.7): `Var integer
// <name>` and `Var object <name>` each read the following token as a name,
// allocate one mutable cell, and register a getter `<name>` and a setter
// `set:<name>`.
func registerVarWords(dict *Dictionary) {
	ns := &Namespace{}
	ns.Define("integer", Word{immediate: true, fn: varIntegerConstructor})
	ns.Define("object", Word{immediate: true, fn: varObjectConstructor})
	dict.Define("Var", ns.Word())
}

func varIntegerConstructor(vm *VM) error {
	name, err := vm.nextToken()
	if err != nil {
		return err
	}
	cell := new(big.Int)
	vm.dict.Define(name, Word{fn: func(vm *VM) error {
		vm.ints.Push(new(big.Int).Set(cell))
		return nil
	}})
	vm.dict.Define("set:"+name, Word{fn: func(vm *VM) error {
		v, err := vm.ints.Pop()
		if err != nil {
			return err
		}
		cell.Set(v)
		return nil
	}})
	return nil
}

func varObjectConstructor(vm *VM) error {
	name, err := vm.nextToken()
	if err != nil {
		return err
	}
	cell := new(Object)
	vm.dict.Define(name, Word{fn: func(vm *VM) error {
		vm.objs.Push(*cell)
		return nil
	}})
	vm.dict.Define("set:"+name, Word{fn: func(vm *VM) error {
		v, err := vm.objs.Pop()
		if err != nil {
			return err
		}
		*cell = v
		return nil
	}})
	return nil
}
