package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"

	"github.com/arrowsmith-dep/concatty/internal/logio"
	"golang.org/x/term"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("concatty", flag.ContinueOnError)
	trace := fs.Bool("trace", false, "log word resolution and execution")
	dump := fs.String("dump", "", "tee output to this file")
	timeout := fs.Duration("timeout", 0, "overall execution timeout (0 disables)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fmt.Fprintln(os.Stderr, "usage: concatty <script> [args...]")
		return 2
	}
	scriptPath, progArgs := rest[0], rest[1:]

	script, err := os.Open(scriptPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer script.Close()

	log := &logio.Logger{}
	log.SetOutput(os.Stderr)
	defer log.Close()

	opts := []VMOption{
		WithInput(script),
		WithInput(os.Stdin),
		WithOutput(os.Stdout),
		WithArgs(progArgs...),
	}
	if *trace {
		opts = append(opts, WithLogf(log.Leveledf("trace")))
	}
	if *dump != "" {
		f, err := os.Create(*dump)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer f.Close()
		opts = append(opts, WithTee(f))
	}

	vm := New(opts...)
	defer vm.Close()

	restore, err := acquireRawTerminal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer restore()

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	if err := vm.Run(ctx); err != nil {
		log.HaltErrorf(vm.Scan.Location, err)
		return 1
	}
	return log.ExitCode()
}

// acquireRawTerminal puts stdin into raw mode for the duration of the
// program (spec §5 "Resource acquisition"), installing a signal handler so
// an interrupt still restores the terminal before the process exits
// (spec §5: "release is idempotent").
func acquireRawTerminal() (func(), error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return func() {}, nil
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}

	var once sync.Once
	restore := func() {
		once.Do(func() { term.Restore(fd, state) })
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		restore()
		os.Exit(1)
	}()

	return restore, nil
}
