package main

import "math/big"

// registerIntegerWords installs the integer stack's primitive words (spec
// §4.5). Binary words pop b (top) then a (second), and push the result of
// `a OP b` — e.g. `x y -` computes x-y, matching scenario 3's `0 #swap -`.
func registerIntegerWords(dict *Dictionary) {
	dict.Define("+", binIntWord(func(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }))
	dict.Define("-", binIntWord(func(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }))
	dict.Define("*", binIntWord(func(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }))

	dict.Define("=", cmpIntWord(func(c int) bool { return c == 0 }))
	dict.Define("<>", cmpIntWord(func(c int) bool { return c != 0 }))
	dict.Define("<", cmpIntWord(func(c int) bool { return c < 0 }))
	dict.Define(">", cmpIntWord(func(c int) bool { return c > 0 }))
	dict.Define("<=", cmpIntWord(func(c int) bool { return c <= 0 }))
	dict.Define(">=", cmpIntWord(func(c int) bool { return c >= 0 }))

	dict.Define("#dup", Word{fn: wordHashDup})
	dict.Define("#2dup", Word{fn: wordHash2Dup})
	dict.Define("#drop", Word{fn: wordHashDrop})
	dict.Define("#swap", Word{fn: wordHashSwap})
	dict.Define("#min", binIntWord(func(a, b *big.Int) *big.Int {
		if a.Cmp(b) <= 0 {
			return new(big.Int).Set(a)
		}
		return new(big.Int).Set(b)
	}))
	dict.Define("#max", binIntWord(func(a, b *big.Int) *big.Int {
		if a.Cmp(b) >= 0 {
			return new(big.Int).Set(a)
		}
		return new(big.Int).Set(b)
	}))

	dict.Define("#bit:shl", shiftIntWord(true))
	dict.Define("#bit:shr", shiftIntWord(false))
	dict.Define("#bit:and", binIntWord(func(a, b *big.Int) *big.Int { return new(big.Int).And(a, b) }))
	dict.Define("#bit:or", binIntWord(func(a, b *big.Int) *big.Int { return new(big.Int).Or(a, b) }))
	dict.Define("#bit:xor", binIntWord(func(a, b *big.Int) *big.Int { return new(big.Int).Xor(a, b) }))
}

func binIntWord(op func(a, b *big.Int) *big.Int) Word {
	return Word{fn: func(vm *VM) error {
		b, err := vm.ints.Pop()
		if err != nil {
			return err
		}
		a, err := vm.ints.Pop()
		if err != nil {
			return err
		}
		vm.ints.Push(op(a, b))
		return nil
	}}
}

func cmpIntWord(pred func(cmp int) bool) Word {
	return Word{fn: func(vm *VM) error {
		b, err := vm.ints.Pop()
		if err != nil {
			return err
		}
		a, err := vm.ints.Pop()
		if err != nil {
			return err
		}
		if pred(a.Cmp(b)) {
			vm.ints.Push(big.NewInt(1))
		} else {
			vm.ints.Push(big.NewInt(0))
		}
		return nil
	}}
}

func wordHashDup(vm *VM) error {
	v, err := vm.ints.Top()
	if err != nil {
		return err
	}
	vm.ints.Push(new(big.Int).Set(v))
	return nil
}

func wordHash2Dup(vm *VM) error {
	b, err := vm.ints.Pop()
	if err != nil {
		return err
	}
	a, err := vm.ints.Pop()
	if err != nil {
		return err
	}
	vm.ints.Push(a)
	vm.ints.Push(b)
	vm.ints.Push(new(big.Int).Set(a))
	vm.ints.Push(new(big.Int).Set(b))
	return nil
}

func wordHashDrop(vm *VM) error {
	_, err := vm.ints.Pop()
	return err
}

func wordHashSwap(vm *VM) error {
	b, err := vm.ints.Pop()
	if err != nil {
		return err
	}
	a, err := vm.ints.Pop()
	if err != nil {
		return err
	}
	vm.ints.Push(b)
	vm.ints.Push(a)
	return nil
}

// shiftIntWord implements #bit:shl/#bit:shr: pop the shift amount, pop the
// value, push the shifted result. The shift amount must convert to a
// non-negative platform index (spec §4.5 "fails if negative or
// overflowing").
func shiftIntWord(left bool) Word {
	return Word{fn: func(vm *VM) error {
		n, err := vm.ints.Pop()
		if err != nil {
			return err
		}
		v, err := vm.ints.Pop()
		if err != nil {
			return err
		}
		if n.Sign() < 0 || !n.IsUint64() || n.Uint64() > (1<<31) {
			return rangeError{"shift amount out of range"}
		}
		shift := uint(n.Uint64())
		res := new(big.Int)
		if left {
			res.Lsh(v, shift)
		} else {
			res.Rsh(v, shift)
		}
		vm.ints.Push(res)
		return nil
	}}
}
