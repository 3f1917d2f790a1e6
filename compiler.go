package main

import (
	"io"
	"math/big"
)

// condStage is a conditional builder's current position between if/then,
// then/else, and else/end (or else/repeat) (spec §3 "Compiler state").
type condStage int

const (
	stageCond condStage = iota
	stageTrue
	stageFalse
)

// condBuilder accumulates the three buffers of an open conditional: the
// re-tested condition code, the true branch, and the false branch. looped
// records that `repeat` was seen before the closing `end`, so the words
// seized into cond are a loop guard re-run on every pass instead of a
// one-shot test.
type condBuilder struct {
	cond, tru, fals []Word
	stage           condStage
	looped          bool
}

// builder is the compiler's single in-progress definition (spec §3
// "Compiler state"). name is empty for the anonymous builder that `if`
// creates implicitly at top level; anon records that this builder exists
// only to host that conditional and must be discarded (and run) at its
// closing word rather than registered in the dictionary.
type builder struct {
	name      string
	immediate bool
	anon      bool
	words     []Word
	cond      *condBuilder
}

func (b *builder) append(w Word) {
	if b.cond != nil {
		switch b.cond.stage {
		case stageCond:
			b.cond.cond = append(b.cond.cond, w)
		case stageTrue:
			b.cond.tru = append(b.cond.tru, w)
		case stageFalse:
			b.cond.fals = append(b.cond.fals, w)
		}
		return
	}
	b.words = append(b.words, w)
}

// Compiler is the single-slot state machine that, when active, intercepts
// non-immediate words and appends them to the builder under construction
// (spec §4.6).
type Compiler struct {
	active bool
	cur    *builder
}

// encounter is the shared dispatch rule used by the driver and by namespace
// leaves: a non-immediate word is appended to the open builder instead of
// executed; everything else runs now.
func (vm *VM) encounter(w Word) error {
	if vm.comp.active && !w.immediate {
		vm.comp.cur.append(w)
		return nil
	}
	return w.Exec(vm)
}

// nextToken reads the next lexer word, turning a clean end-of-input into a
// dedicated lex error since a token was required here.
func (vm *VM) nextToken() (string, error) {
	word, err := vm.readWord()
	if err != nil {
		if err == io.EOF {
			return "", lexError{"expected a word, got end of input"}
		}
		return "", err
	}
	return word, nil
}

func registerCompilerWords(dict *Dictionary) {
	dict.Define(":", Word{immediate: true, fn: wordColon(false)})
	dict.Define(":!", Word{immediate: true, fn: wordColon(true)})
	dict.Define(";", Word{immediate: true, fn: wordSemi})
	dict.Define("if", Word{immediate: true, fn: wordIf})
	dict.Define("then", Word{immediate: true, fn: wordThen})
	dict.Define("else", Word{immediate: true, fn: wordElse})
	dict.Define("end", Word{immediate: true, fn: wordEnd})
	dict.Define("repeat", Word{immediate: true, fn: wordRepeat})
	dict.Define("?", Word{immediate: true, fn: wordQuestion})
	dict.Define("!begin", Word{immediate: true, fn: wordBangBegin})
	dict.Define("!integer", Word{immediate: true, fn: wordBangInteger})
	dict.Define("!call", Word{immediate: true, fn: wordBangCall})
}

func wordColon(immediate bool) func(vm *VM) error {
	return func(vm *VM) error {
		if vm.comp.active {
			return compileStateError{": while already compiling"}
		}
		name, err := vm.nextToken()
		if err != nil {
			return err
		}
		vm.comp.active = true
		vm.comp.cur = &builder{name: name, immediate: immediate}
		return nil
	}
}

func wordSemi(vm *VM) error {
	if !vm.comp.active {
		return compileStateError{"; without :"}
	}
	b := vm.comp.cur
	if b.cond != nil {
		return compileStateError{"; with a conditional still open"}
	}
	body := compiledBody(b.words)
	body.immediate = b.immediate
	vm.comp.active = false
	vm.comp.cur = nil
	if b.name == "" {
		return body.Exec(vm)
	}
	vm.dict.Define(b.name, body)
	return nil
}

// wordIf opens a conditional. Whatever the surrounding builder has already
// accumulated since its start (or since the previous conditional closed)
// becomes the new conditional's cond buffer rather than staying behind as
// one-shot code: this is what makes `repeat` a real loop guard re-tested on
// every pass, since the words computing the test (e.g. `#dup 0 >`) are
// written directly before `if`, not between `if` and `then`.
func wordIf(vm *VM) error {
	if !vm.comp.active {
		vm.comp.active = true
		vm.comp.cur = &builder{anon: true}
	}
	b := vm.comp.cur
	if b.cond != nil {
		return compileStateError{"if nested inside an open conditional"}
	}
	b.cond = &condBuilder{stage: stageCond, cond: b.words}
	b.words = nil
	return nil
}

func (vm *VM) curCond() (*builder, *condBuilder, error) {
	b := vm.comp.cur
	if b == nil || b.cond == nil {
		return nil, nil, compileStateError{"conditional word without an open if"}
	}
	return b, b.cond, nil
}

func wordThen(vm *VM) error {
	_, c, err := vm.curCond()
	if err != nil {
		return err
	}
	if c.stage != stageCond {
		return compileStateError{"then out of sequence"}
	}
	c.stage = stageTrue
	return nil
}

func wordElse(vm *VM) error {
	_, c, err := vm.curCond()
	if err != nil {
		return err
	}
	if c.stage != stageTrue {
		return compileStateError{"else out of sequence"}
	}
	c.stage = stageFalse
	return nil
}

// wordEnd closes the current conditional. `repeat` having already fired for
// this same conditional (c.looped) only changes which body buildCondWord
// produces; end is always the word that actually finalizes and closes it.
func wordEnd(vm *VM) error {
	b, c, err := vm.curCond()
	if err != nil {
		return err
	}
	if c.stage != stageTrue && c.stage != stageFalse {
		return compileStateError{"end out of sequence"}
	}
	built := buildCondWord(c)
	b.cond = nil
	return vm.closeCondBuilder(b, built)
}

// wordRepeat marks the open conditional as a loop and falls through to the
// False stage, so any words between `repeat` and `end` (rare, but not
// forbidden) land in fals as run-once-after-the-loop code. It does not
// close the conditional itself — end does that, for both loops and plain
// conditionals — so `repeat end` is the ordinary closing pair the spec's
// worked loop example uses, not two separate closes.
func wordRepeat(vm *VM) error {
	_, c, err := vm.curCond()
	if err != nil {
		return err
	}
	if c.stage != stageTrue && c.stage != stageFalse {
		return compileStateError{"repeat out of sequence"}
	}
	c.looped = true
	c.stage = stageFalse
	return nil
}

// buildCondWord turns a closed conditional's three buffers into its final
// body: a single test-and-branch for a plain if/then/else/end, or a
// test-and-loop for one marked by repeat (spec §4.6 "repeat — same
// construction as end, but the built body loops").
func buildCondWord(c *condBuilder) Word {
	condBody, truBody, falsBody := compiledBody(c.cond), compiledBody(c.tru), compiledBody(c.fals)
	if !c.looped {
		return Word{fn: func(vm *VM) error {
			if err := condBody.Exec(vm); err != nil {
				return err
			}
			v, err := vm.ints.Pop()
			if err != nil {
				return err
			}
			if v.Sign() != 0 {
				return truBody.Exec(vm)
			}
			return falsBody.Exec(vm)
		}}
	}
	return Word{fn: func(vm *VM) error {
		for {
			if err := condBody.Exec(vm); err != nil {
				return err
			}
			v, err := vm.ints.Pop()
			if err != nil {
				return err
			}
			if v.Sign() == 0 {
				break
			}
			if err := truBody.Exec(vm); err != nil {
				return err
			}
		}
		return falsBody.Exec(vm)
	}}
}

// closeCondBuilder either appends built to the surrounding (named) builder,
// or — when b is the implicit anonymous builder `if` created — discards b
// and runs built immediately (spec §9 "Anonymous conditional at top level").
func (vm *VM) closeCondBuilder(b *builder, built Word) error {
	if b.anon {
		vm.comp.active = false
		vm.comp.cur = nil
		return built.Exec(vm)
	}
	b.words = append(b.words, built)
	return nil
}

func wordQuestion(vm *VM) error {
	name, err := vm.nextToken()
	if err != nil {
		return err
	}
	w, ok := vm.dict.Get(name)
	if !ok {
		return unknownWordError{name}
	}
	if !vm.comp.active {
		return compileStateError{"? used outside of compilation"}
	}
	vm.comp.cur.append(w)
	return nil
}

func wordBangBegin(vm *VM) error {
	if vm.comp.active {
		return compileStateError{"!begin while already compiling"}
	}
	obj, err := vm.objs.Pop()
	if err != nil {
		return err
	}
	name := obj.Text()
	if name == "" {
		return compileStateError{"!begin name must not be empty"}
	}
	vm.comp.active = true
	vm.comp.cur = &builder{name: name}
	return nil
}

func wordBangInteger(vm *VM) error {
	if !vm.comp.active {
		return compileStateError{"!integer outside of compilation"}
	}
	v, err := vm.ints.Pop()
	if err != nil {
		return err
	}
	val := new(big.Int).Set(v)
	vm.comp.cur.append(Word{fn: func(vm *VM) error {
		vm.ints.Push(new(big.Int).Set(val))
		return nil
	}})
	return nil
}

func wordBangCall(vm *VM) error {
	obj, err := vm.objs.Pop()
	if err != nil {
		return err
	}
	name := obj.Text()
	w, ok := vm.dict.Get(name)
	if !ok {
		return unknownWordError{name}
	}
	if vm.comp.active {
		vm.comp.cur.append(w)
		return nil
	}
	return w.Exec(vm)
}
