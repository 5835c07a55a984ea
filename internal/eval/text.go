package eval

import (
	"github.com/symls-lang/symls/internal/classify"
	"github.com/symls-lang/symls/internal/keywords"
	"github.com/symls-lang/symls/internal/scanner"
	"github.com/symls-lang/symls/internal/store"
	"github.com/symls-lang/symls/internal/symlserr"
)

// Text evaluates a text expression. Concatenation via the registry's
// Plus spelling is the only text operator; anything else after the first
// operand is InvalidSyntax.
func Text(reg *keywords.Registry, st *store.Store, line int, expr string, pos int) (string, int, error) {
	pos = scanner.Trim(expr, pos)
	if pos >= len(expr) {
		return "", pos, nil
	}

	tok, pos := scanner.ReadUntilNextSpace(expr, pos)

	var result string
	if classify.IsString(tok) {
		result = tok[1 : len(tok)-1]
	} else {
		ref, err := st.Resolve(tok, line, indexEvaluator(reg, st, line))
		if err != nil {
			return "", pos, err
		}
		v, ok := ref.GetText()
		if !ok {
			return "", pos, symlserr.New(symlserr.VariableNotFound, line)
		}
		result = v
	}

	if scanner.AtEnd(expr, pos) {
		return result, pos, nil
	}

	pos = scanner.Trim(expr, pos)
	opTok, pos := scanner.ReadUntilNextSpace(expr, pos)
	if opTok != reg.Plus {
		return "", pos, symlserr.New(symlserr.InvalidSyntax, line)
	}

	pos = scanner.Trim(expr, pos)
	rhs, pos, err := Text(reg, st, line, expr, pos)
	if err != nil {
		return "", pos, err
	}
	return result + rhs, pos, nil
}
