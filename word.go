package main

// Word is an opaque, clonable executable value: a callable that takes no
// arguments and yields success or a failure, plus an immediate flag (spec
// §3 "Word body"). Word values are plain structs so they are copied freely;
// the closures they hold may share captured state (e.g. a Var cell), which
// is the spec's "reference-shared" body.
type Word struct {
	fn        func(vm *VM) error
	immediate bool
}

// Exec runs the word body directly, bypassing any compiler staging. Used by
// the driver and by namespace dispatch once a leaf word has already been
// routed through encounter.
func (w Word) Exec(vm *VM) error {
	if w.fn == nil {
		return nil
	}
	return w.fn(vm)
}

// compiledBody builds a Word that runs words in order, stopping at the
// first failure (spec §4.6 "The finalized body, when executed, runs the
// accumulated words in order").
func compiledBody(words []Word) Word {
	ws := append([]Word(nil), words...)
	return Word{fn: func(vm *VM) error {
		for _, w := range ws {
			if err := w.Exec(vm); err != nil {
				return err
			}
		}
		return nil
	}}
}
