// Package repl implements the interactive, line-at-a-time SYMLS session:
// one statement per input line, no preprocessing pass, which means no
// comment-stripping, no multi-line continuation, and no subroutine
// harvesting. This is a deliberate, documented limitation of the REPL,
// not something to lift here.
package repl

import (
	"errors"
	"fmt"
	"io"

	"github.com/mattn/go-isatty"

	"github.com/symls-lang/symls/internal/diag"
	"github.com/symls-lang/symls/internal/interp"
	"github.com/symls-lang/symls/internal/keywords"
	"github.com/symls-lang/symls/internal/preprocess"
	"github.com/symls-lang/symls/internal/report"
	"github.com/symls-lang/symls/internal/scanner"
)

const prompt = "symls> "

// Start runs the interactive loop, reading one line at a time from in
// and writing output/prompts to out. A fatal statement error is printed
// and the loop continues to the next prompt; it never terminates the
// session, unlike file-mode execution.
func Start(reg *keywords.Registry, in io.Reader, out, errOut io.Writer, d *diag.Diag) {
	interactive := isInteractive(in)
	d.ReplStarted(interactive)
	defer d.ReplStopped()

	ip := interp.New(reg, in, out, errOut)

	if interactive {
		fmt.Fprintln(out, "SYMLS interactive session")
		fmt.Fprintln(out, "Enter statements one at a time; there is no multi-line or subroutine support here.")
		fmt.Fprintln(out)
	}

	for {
		if interactive {
			fmt.Fprint(out, prompt)
		}
		raw, err := ip.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if interactive {
					fmt.Fprintln(out, "Goodbye!")
				}
				return
			}
			fmt.Fprintln(errOut, err)
			return
		}

		ip.CurrentLine++
		cursor := scanner.Trim(raw, 0)
		if cursor >= len(raw) {
			continue
		}
		line := preprocess.NormaliseLine(raw, cursor)

		err = ip.Interpret(line)
		if err == interp.ErrEnd {
			return
		}
		if err != nil {
			if !report.Fatal(errOut, reg, err) {
				fmt.Fprintln(errOut, err)
			}
			continue
		}
		if interactive {
			fmt.Fprintln(out)
		}
	}
}

func isInteractive(in io.Reader) bool {
	f, ok := in.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
