// Command edit is the multiline terminal text editor: `edit [-license] [-a]
// [-b] [-e utf8|utf16|ansi|ascii] [-r] [filename]`, per §6's CLI surface.
// `-r` opens read-only. `-a` and `-b` are accepted and have no effect: this
// build has no ASCII line-drawing or monochrome mode. Exit code 0 on normal quit, non-zero on unrecoverable error
// (window too small, config/terminal setup failure).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/conterm/contools/internal/config"
	"github.com/conterm/contools/internal/editbuffer"
	"github.com/conterm/contools/internal/editor"
	"github.com/conterm/contools/internal/term"
)

const license = `edit - a terminal multiline text editor

Copyright notice and license terms for this build are distributed
alongside the binary.`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	showLicense := fs.Bool("license", false, "print license text and exit")
	asciiLines := fs.Bool("a", false, "ASCII line-drawing (accepted; no effect)")
	monochrome := fs.Bool("b", false, "monochrome (accepted; no effect)")
	encFlag := fs.String("e", "", "file encoding: utf8, utf16, ansi, or ascii")
	readOnly := fs.Bool("r", false, "open read-only")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: edit [-license] [-a] [-b] [-e utf8|utf16|ansi|ascii] [-r] [filename]")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showLicense {
		fmt.Println(license)
		return 0
	}

	// -a/-b are parsed and then ignored: neither the editor nor
	// internal/term has an ASCII line-drawing or monochrome mode to switch.
	_ = asciiLines
	_ = monochrome

	enc, err := parseEncoding(*encFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "edit:", err)
		return 1
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "edit:", err)
		return 1
	}

	t, err := term.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "edit:", err)
		return 1
	}
	defer t.Close()

	e := editor.New(t, cfg, *readOnly)

	if path := fs.Arg(0); path != "" {
		if err := e.Load(path, enc); err != nil {
			fmt.Fprintln(os.Stderr, "edit:", err)
			return 1
		}
	}

	code, err := e.Run(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, "edit:", err)
	}
	return code
}

func parseEncoding(s string) (editbuffer.Encoding, error) {
	switch s {
	case "":
		return editbuffer.AutoDetect, nil
	case "utf8":
		return editbuffer.UTF8, nil
	case "utf16":
		return editbuffer.UTF16LE, nil
	case "ansi":
		return editbuffer.ANSI, nil
	case "ascii":
		return editbuffer.ASCII, nil
	default:
		return 0, fmt.Errorf("unrecognized -e value %q", s)
	}
}

func loadConfig() (*config.Config, error) {
	mgr, err := config.NewConfigManager()
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	return mgr.Config, nil
}
