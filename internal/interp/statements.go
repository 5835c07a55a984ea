package interp

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/symls-lang/symls/internal/classify"
	"github.com/symls-lang/symls/internal/eval"
	"github.com/symls-lang/symls/internal/keywords"
	"github.com/symls-lang/symls/internal/scanner"
	"github.com/symls-lang/symls/internal/symlserr"
	"github.com/symls-lang/symls/internal/values"
)

// execLet implements `let TYPE NAME [is EXPR]` and the array forms
// `let ARRAY-TYPE NAME[-SIZE]`.
func (ip *Interpreter) execLet(expr string, cursor int) error {
	typeTok, cursor := scanner.ReadUntilNextSpace(expr, cursor)
	dtype, ok := ip.Reg.DataTypes()[typeTok]
	if !ok {
		return symlserr.New(symlserr.InvalidDataType, ip.CurrentLine)
	}

	cursor = scanner.Trim(expr, cursor)
	nameTok, cursor := scanner.ReadUntilNextSpace(expr, cursor)

	switch dtype {
	case keywords.TypeIntegerArray, keywords.TypeTextArray, keywords.TypeRealArray:
		return ip.declareArray(dtype, nameTok)
	}

	if !classify.ValidateName(nameTok, ip.Reg.ReservedWords()) {
		return symlserr.New(symlserr.InvalidName, ip.CurrentLine)
	}

	cursor = scanner.Trim(expr, cursor)
	if cursor >= len(expr) {
		switch dtype {
		case keywords.TypeInteger:
			ip.Store.DeclareInteger(nameTok, ip.Reg.DefaultIntegerValue)
		case keywords.TypeText:
			ip.Store.DeclareText(nameTok, ip.Reg.DefaultTextValue)
		case keywords.TypeReal:
			ip.Store.DeclareReal(nameTok, ip.Reg.DefaultRealValue)
		}
		return nil
	}

	isTok, cursor := scanner.ReadUntilNextSpace(expr, cursor)
	if isTok != ip.Reg.Is {
		return symlserr.New(symlserr.InvalidSyntax, ip.CurrentLine)
	}
	cursor = scanner.Trim(expr, cursor)

	switch dtype {
	case keywords.TypeInteger:
		v, _, err := eval.Integer(ip.Reg, ip.Store, ip.CurrentLine, expr, cursor)
		if err != nil {
			return err
		}
		ip.Store.DeclareInteger(nameTok, v)
	case keywords.TypeText:
		v, _, err := eval.Text(ip.Reg, ip.Store, ip.CurrentLine, expr, cursor)
		if err != nil {
			return err
		}
		ip.Store.DeclareText(nameTok, v)
	case keywords.TypeReal:
		v, _, err := eval.Real(ip.Reg, ip.Store, ip.CurrentLine, expr, cursor)
		if err != nil {
			return err
		}
		ip.Store.DeclareReal(nameTok, v)
	}
	return nil
}

// declareArray handles the `NAME[-SIZE]` form of an array declaration:
// NAME alone uses the registry's default array size; NAME-SIZE evaluates
// SIZE as an integer expression.
func (ip *Interpreter) declareArray(dtype keywords.DataType, nameTok string) error {
	name := nameTok
	size := ip.Reg.DefaultArraySize

	if dash := strings.IndexByte(nameTok, '-'); dash >= 0 {
		name = nameTok[:dash]
		sizeExpr := nameTok[dash+1:]
		n, _, err := eval.Integer(ip.Reg, ip.Store, ip.CurrentLine, sizeExpr, 0)
		if err != nil {
			return err
		}
		size = int(n)
	}

	if !classify.ValidateName(name, ip.Reg.ReservedWords()) {
		return symlserr.New(symlserr.InvalidName, ip.CurrentLine)
	}

	switch dtype {
	case keywords.TypeIntegerArray:
		ip.Store.DeclareIntegerArray(name, size, ip.Reg.DefaultIntegerValue)
	case keywords.TypeTextArray:
		ip.Store.DeclareTextArray(name, size, ip.Reg.DefaultTextValue)
	case keywords.TypeRealArray:
		ip.Store.DeclareRealArray(name, size, ip.Reg.DefaultRealValue)
	}
	return nil
}

// execPrint implements `print ITEM [then ITEM ...]`: string literals
// print without their quotes, identifiers print their resolved value,
// and `then` chains further items onto the same statement.
func (ip *Interpreter) execPrint(expr string, cursor int) error {
	cursor = scanner.Trim(expr, cursor)
	if cursor >= len(expr) {
		return nil
	}

	tok, cursor := scanner.ReadUntilNextSpace(expr, cursor)
	if classify.IsString(tok) {
		fmt.Fprint(ip.Stdout, tok[1:len(tok)-1])
	} else {
		ref, err := ip.resolve(tok)
		if err != nil {
			return err
		}
		if !ref.Found() {
			return symlserr.New(symlserr.VariableNotFound, ip.CurrentLine)
		}
		switch ref.Kind {
		case values.KindInteger:
			v, _ := ref.GetInt()
			fmt.Fprint(ip.Stdout, v)
		case values.KindText:
			v, _ := ref.GetText()
			fmt.Fprint(ip.Stdout, v)
		case values.KindReal:
			v, _ := ref.GetReal()
			fmt.Fprint(ip.Stdout, formatReal(v))
		}
	}

	cursor = scanner.Trim(expr, cursor)
	if cursor >= len(expr) {
		return nil
	}
	thenTok, cursor := scanner.ReadUntilNextSpace(expr, cursor)
	if thenTok != ip.Reg.Then {
		return symlserr.New(symlserr.InvalidSyntax, ip.CurrentLine)
	}
	return ip.execPrint(expr, cursor)
}

// execRead implements `read NAME [then NAME ...]`, consuming
// whitespace-delimited tokens from standard input per the variable's kind.
func (ip *Interpreter) execRead(expr string, cursor int) error {
	cursor = scanner.Trim(expr, cursor)
	if cursor >= len(expr) {
		return nil
	}

	tok, cursor := scanner.ReadUntilNextSpace(expr, cursor)
	ref, err := ip.resolve(tok)
	if err != nil {
		return err
	}
	if !ref.Found() {
		return symlserr.New(symlserr.VariableNotFound, ip.CurrentLine)
	}

	word, err := ip.readWord()
	if err != nil {
		return err
	}

	switch ref.Kind {
	case values.KindInteger:
		n, parseErr := strconv.ParseInt(word, 10, 64)
		if parseErr != nil {
			return symlserr.New(symlserr.InvalidSyntax, ip.CurrentLine)
		}
		*ref.Int = n
	case values.KindText:
		*ref.Text = word
	case values.KindReal:
		n, parseErr := strconv.ParseFloat(word, 64)
		if parseErr != nil {
			return symlserr.New(symlserr.InvalidSyntax, ip.CurrentLine)
		}
		*ref.Real = n
	}

	cursor = scanner.Trim(expr, cursor)
	if cursor >= len(expr) {
		return nil
	}
	thenTok, cursor := scanner.ReadUntilNextSpace(expr, cursor)
	if thenTok != ip.Reg.Then {
		return symlserr.New(symlserr.InvalidSyntax, ip.CurrentLine)
	}
	return ip.execRead(expr, cursor)
}

// readWord pulls the next whitespace-delimited token from standard
// input, sharing the interpreter's single buffered reader so that REPL
// line reads and in-program `read` statements never desynchronise over
// separately buffered copies of the same stream. Exhausted input is
// treated as an InvalidSyntax error; the taxonomy has no separate "end
// of input" category.
func (ip *Interpreter) readWord() (string, error) {
	var b strings.Builder
	for {
		r, _, err := ip.in.ReadRune()
		if err != nil {
			if b.Len() > 0 {
				return b.String(), nil
			}
			return "", symlserr.New(symlserr.InvalidSyntax, ip.CurrentLine)
		}
		if unicode.IsSpace(r) {
			if b.Len() > 0 {
				return b.String(), nil
			}
			continue
		}
		b.WriteRune(r)
	}
}

// execAssignment implements the fallback form `NAME is EXPR`: head is
// already-consumed first token (the variable name).
func (ip *Interpreter) execAssignment(expr string, cursor int, name string) error {
	ref, err := ip.resolve(name)
	if err != nil {
		return err
	}
	if !ref.Found() {
		return symlserr.New(symlserr.VariableNotFound, ip.CurrentLine)
	}

	cursor = scanner.Trim(expr, cursor)
	isTok, cursor := scanner.ReadUntilNextSpace(expr, cursor)
	if isTok != ip.Reg.Is {
		return symlserr.New(symlserr.InvalidSyntax, ip.CurrentLine)
	}
	cursor = scanner.Trim(expr, cursor)

	switch ref.Kind {
	case values.KindInteger:
		v, _, err := eval.Integer(ip.Reg, ip.Store, ip.CurrentLine, expr, cursor)
		if err != nil {
			return err
		}
		*ref.Int = v
	case values.KindText:
		v, _, err := eval.Text(ip.Reg, ip.Store, ip.CurrentLine, expr, cursor)
		if err != nil {
			return err
		}
		*ref.Text = v
	case values.KindReal:
		v, _, err := eval.Real(ip.Reg, ip.Store, ip.CurrentLine, expr, cursor)
		if err != nil {
			return err
		}
		*ref.Real = v
	}
	return nil
}
