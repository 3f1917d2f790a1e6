package main

import "math/big"

// registerObjectWords installs the object stack's primitive words (spec
// §4.5).
func registerObjectWords(dict *Dictionary) {
	dict.Define("@dup", Word{fn: func(vm *VM) error {
		o, err := vm.objs.Top()
		if err != nil {
			return err
		}
		vm.objs.Push(o)
		return nil
	}})
	dict.Define("@drop", Word{fn: func(vm *VM) error {
		_, err := vm.objs.Pop()
		return err
	}})
	dict.Define("@swap", Word{fn: func(vm *VM) error {
		b, err := vm.objs.Pop()
		if err != nil {
			return err
		}
		a, err := vm.objs.Pop()
		if err != nil {
			return err
		}
		vm.objs.Push(b)
		vm.objs.Push(a)
		return nil
	}})
	dict.Define("@byte", Word{fn: func(vm *VM) error {
		idx, err := vm.ints.Pop()
		if err != nil {
			return err
		}
		o, err := vm.objs.Pop()
		if err != nil {
			return err
		}
		i, err := indexInRange(idx, o.ByteCount())
		if err != nil {
			return err
		}
		vm.ints.Push(big.NewInt(int64(o.Data()[i])))
		return nil
	}})
	dict.Define("@refs", Word{fn: func(vm *VM) error {
		idx, err := vm.ints.Pop()
		if err != nil {
			return err
		}
		o, err := vm.objs.Pop()
		if err != nil {
			return err
		}
		i, err := indexInRange(idx, o.RefCount())
		if err != nil {
			return err
		}
		vm.objs.Push(o.Refs()[i])
		return nil
	}})
	dict.Define("@bytecount", Word{fn: func(vm *VM) error {
		o, err := vm.objs.Pop()
		if err != nil {
			return err
		}
		vm.ints.Push(big.NewInt(int64(o.ByteCount())))
		return nil
	}})
	dict.Define("@refcount", Word{fn: func(vm *VM) error {
		o, err := vm.objs.Pop()
		if err != nil {
			return err
		}
		vm.ints.Push(big.NewInt(int64(o.RefCount())))
		return nil
	}})
	dict.Define("@concat", Word{fn: func(vm *VM) error {
		rhs, err := vm.objs.Pop()
		if err != nil {
			return err
		}
		lhs, err := vm.objs.Pop()
		if err != nil {
			return err
		}
		vm.objs.Push(lhs.Concat(rhs))
		return nil
	}})
	dict.Define("@slice", Word{fn: wordAtSlice})
	dict.Define("@intoref", Word{fn: func(vm *VM) error {
		o, err := vm.objs.Pop()
		if err != nil {
			return err
		}
		vm.objs.Push(o.IntoRef())
		return nil
	}})
}

// wordAtSlice pops, in order, the refs-range hi/lo and data-range hi/lo
// (the reverse of how a caller pushes `obj dataLo dataHi refLo refHi`),
// then the object itself, and pushes the resulting slice.
func wordAtSlice(vm *VM) error {
	refHi, err := vm.ints.Pop()
	if err != nil {
		return err
	}
	refLo, err := vm.ints.Pop()
	if err != nil {
		return err
	}
	dataHi, err := vm.ints.Pop()
	if err != nil {
		return err
	}
	dataLo, err := vm.ints.Pop()
	if err != nil {
		return err
	}
	o, err := vm.objs.Pop()
	if err != nil {
		return err
	}

	dlo, err := intIndex(dataLo)
	if err != nil {
		return err
	}
	dhi, err := intIndex(dataHi)
	if err != nil {
		return err
	}
	rlo, err := intIndex(refLo)
	if err != nil {
		return err
	}
	rhi, err := intIndex(refHi)
	if err != nil {
		return err
	}

	sliced, err := o.Slice(dlo, dhi, rlo, rhi)
	if err != nil {
		return err
	}
	vm.objs.Push(sliced)
	return nil
}

func intIndex(v *big.Int) (int, error) {
	if !v.IsInt64() {
		return 0, rangeError{"index out of range"}
	}
	return int(v.Int64()), nil
}

func indexInRange(v *big.Int, n int) (int, error) {
	i, err := intIndex(v)
	if err != nil {
		return 0, err
	}
	if i < 0 || i >= n {
		return 0, rangeError{"index out of bounds"}
	}
	return i, nil
}
