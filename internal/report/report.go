// Package report renders a fatal interpreter error to its configured
// output stream using the fixed protocol "Error at line : N\n<message>\n",
// written directly with fmt.Fprintf rather than through the structured
// logger, since it is wire format the program's own output contract
// depends on, not a diagnostic log line.
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/symls-lang/symls/internal/keywords"
	"github.com/symls-lang/symls/internal/symlserr"
)

// Fatal writes err's protocol text to w if err is a *symlserr.Error,
// using reg to translate the error's kind into its configured message.
// It reports whether err was in fact a fatal interpreter error.
//
// Callers pass whichever stream they consider their error stream; the
// protocol only requires that the text land on standard error or
// standard out, not which one.
func Fatal(w io.Writer, reg *keywords.Registry, err error) bool {
	var se *symlserr.Error
	if !errors.As(err, &se) {
		return false
	}
	fmt.Fprintf(w, "Error at line : %d\n%s\n", se.Line, message(reg, se.Kind))
	return true
}

func message(reg *keywords.Registry, kind symlserr.Kind) string {
	switch kind {
	case symlserr.InvalidSyntax:
		return reg.Errors.InvalidSyntax
	case symlserr.InvalidDataType:
		return reg.Errors.InvalidDataType
	case symlserr.InvalidOperator:
		return reg.Errors.InvalidOperator
	case symlserr.VariableNotFound:
		return reg.Errors.VariableNotFound
	case symlserr.IndexOutOfBounds:
		return reg.Errors.IndexOutOfBounds
	case symlserr.InvalidName:
		return reg.Errors.InvalidName
	default:
		return reg.Errors.InvalidSyntax
	}
}

// Kind returns the string name of err's symlserr.Kind for diagnostic
// logging, or "" if err is not a fatal interpreter error.
func Kind(err error) string {
	var se *symlserr.Error
	if !errors.As(err, &se) {
		return ""
	}
	switch se.Kind {
	case symlserr.InvalidSyntax:
		return "InvalidSyntax"
	case symlserr.InvalidDataType:
		return "InvalidDataType"
	case symlserr.InvalidOperator:
		return "InvalidOperator"
	case symlserr.VariableNotFound:
		return "VariableNotFound"
	case symlserr.IndexOutOfBounds:
		return "IndexOutOfBounds"
	case symlserr.InvalidName:
		return "InvalidName"
	default:
		return "Unknown"
	}
}

// Line returns err's line number if it is a fatal interpreter error.
func Line(err error) int {
	var se *symlserr.Error
	if errors.As(err, &se) {
		return se.Line
	}
	return 0
}
