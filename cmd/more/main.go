// Command more is the `more`-style paged viewer: `more [file ...]`, reading
// stdin if no file is given. Exit code is 0 on a normal quit and 1 when a
// named file cannot be opened, the terminal cannot be set up, or
// internal/pager.Run reports a failure.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/conterm/contools/internal/linestore"
	"github.com/conterm/contools/internal/pager"
	"github.com/conterm/contools/internal/term"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	r, closeFn, err := inputFor(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "more:", err)
		return 1
	}
	defer closeFn()

	t, err := term.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "more:", err)
		return 1
	}
	defer t.Close()

	p := pager.New(t)
	code, err := p.Run(context.Background(), r, linestore.PassthroughDecoder)
	if err != nil {
		fmt.Fprintln(os.Stderr, "more:", err)
	}
	return code
}

// inputFor concatenates every named file in order, or falls back to stdin
// when none are given, matching `more file1 file2`'s single continuous
// stream semantics.
func inputFor(args []string) (io.Reader, func() error, error) {
	if len(args) == 0 {
		return os.Stdin, func() error { return nil }, nil
	}

	readers := make([]io.Reader, 0, len(args))
	files := make([]*os.File, 0, len(args))
	for _, name := range args {
		f, err := os.Open(name)
		if err != nil {
			for _, opened := range files {
				opened.Close()
			}
			return nil, nil, err
		}
		files = append(files, f)
		readers = append(readers, f)
	}

	closeAll := func() error {
		var firstErr error
		for _, f := range files {
			if err := f.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return firstErr
	}
	return io.MultiReader(readers...), closeAll, nil
}
