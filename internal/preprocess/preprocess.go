// Package preprocess implements the SYMLS preprocessor: comment
// stripping, whitespace normalisation, continuation-line joining, and
// subroutine harvesting. It runs once before execution and produces a
// normalised text plus a subroutine table. Nothing here builds an AST;
// the output is still plain lines that the statement executor walks
// directly.
package preprocess

import (
	"bufio"
	"io"
	"strings"

	"github.com/symls-lang/symls/internal/keywords"
	"github.com/symls-lang/symls/internal/scanner"
)

// Result is the output of a preprocessing pass.
type Result struct {
	// Normalised is the whitespace-collapsed, comment-free, continuation-
	// joined program text, one logical statement per line.
	Normalised string
	// Subroutines maps subroutine name to its ordered, normalised body
	// lines, harvested from the normalised text.
	Subroutines map[string][]string
}

// Run preprocesses r's contents and returns the normalised program plus
// its subroutine table.
func Run(r io.Reader, reg *keywords.Registry) (Result, error) {
	var out strings.Builder

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		raw := sc.Text()
		cursor := scanner.Trim(raw, 0)
		if cursor >= len(raw) {
			continue
		}
		if isComment(raw, cursor, reg.Leave) {
			continue
		}

		line := NormaliseLine(raw, cursor)
		if line == "" {
			continue
		}

		out.WriteString(line)
		if continuesToNextLine(line, reg) {
			out.WriteString(" ")
		} else {
			out.WriteString("\n")
		}
	}
	if err := sc.Err(); err != nil {
		return Result{}, err
	}

	normalised := out.String()
	return Result{
		Normalised:  normalised,
		Subroutines: harvestSubroutines(normalised, reg),
	}, nil
}

// isComment reports whether the line's first word is the registry's
// "leave" spelling. Such lines are discarded entirely.
func isComment(raw string, cursor int, leave string) bool {
	tok, _ := scanner.ReadUntilNextSpace(raw, cursor)
	return tok == leave
}

// NormaliseLine strips the line's leading/trailing spaces and collapses
// internal runs of spaces to one, leaving quoted regions untouched. It is
// also used standalone by the REPL, which normalises each line this way
// without the rest of the batch preprocessing pass: no comment-stripping,
// no continuation-joining, no subroutine harvesting.
func NormaliseLine(raw string, cursor int) string {
	var b strings.Builder
	i := cursor
	for i < len(raw) {
		c := raw[i]
		switch {
		case c == '"':
			b.WriteByte(c)
			i++
			for i < len(raw) && raw[i] != '"' {
				b.WriteByte(raw[i])
				i++
			}
			if i < len(raw) {
				b.WriteByte(raw[i])
				i++
			}
		case c != ' ':
			b.WriteByte(c)
			i++
		default:
			s := b.String()
			if len(s) > 0 && s[len(s)-1] != ' ' {
				b.WriteByte(' ')
			}
			i++
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// continuesToNextLine reports whether line's last word is one of
// and/then/else/do, in which case the following source line is joined
// onto it rather than terminated with a newline.
func continuesToNextLine(line string, reg *keywords.Registry) bool {
	lastWord := line
	if idx := strings.LastIndexByte(line, ' '); idx >= 0 {
		lastWord = line[idx+1:]
	}
	switch lastWord {
	case reg.And, reg.Then, reg.Else, reg.Do:
		return true
	default:
		return false
	}
}

// harvestSubroutines scans the normalised text for `subroutine NAME`
// headers and stores everything up to (but not including) a line equal
// to "end" as that subroutine's body. Subroutine bodies are left in
// place in the normalised text; they are not deleted from the top-level
// stream, so a program that falls through into a subroutine definition
// (by omitting its own `end`) will execute it. The intended discipline is
// that top-level code ends with `end` before any subroutine definition.
func harvestSubroutines(normalised string, reg *keywords.Registry) map[string][]string {
	lines := strings.Split(normalised, "\n")
	subs := make(map[string][]string)

	i := 0
	for i < len(lines) {
		line := lines[i]
		cursor := scanner.Trim(line, 0)
		tok, afterTok := scanner.ReadUntilNextSpace(line, cursor)
		if tok != reg.Subroutine {
			i++
			continue
		}

		rest := scanner.Trim(line, afterTok)
		name, _ := scanner.ReadUntilNextSpace(line, rest)

		i++
		var body []string
		for i < len(lines) && lines[i] != reg.End {
			body = append(body, lines[i])
			i++
		}
		subs[name] = body
		i++ // skip the "end" line itself
	}
	return subs
}
