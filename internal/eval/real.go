package eval

import (
	"math"
	"strconv"

	"github.com/symls-lang/symls/internal/classify"
	"github.com/symls-lang/symls/internal/keywords"
	"github.com/symls-lang/symls/internal/scanner"
	"github.com/symls-lang/symls/internal/store"
	"github.com/symls-lang/symls/internal/symlserr"
)

// Real evaluates a real (IEEE-754 double) expression, structurally
// identical to Integer: right-associative, no precedence, integer
// variables widen to real.
func Real(reg *keywords.Registry, st *store.Store, line int, expr string, pos int) (float64, int, error) {
	pos = scanner.Trim(expr, pos)
	if pos >= len(expr) {
		return 0, pos, nil
	}

	tok, pos := scanner.ReadUntilNextSpace(expr, pos)

	var result float64
	if classify.IsNumber(tok) {
		n, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return 0, pos, symlserr.New(symlserr.InvalidSyntax, line)
		}
		result = n
	} else {
		ref, err := st.Resolve(tok, line, indexEvaluator(reg, st, line))
		if err != nil {
			return 0, pos, err
		}
		v, ok := ref.GetReal()
		if !ok {
			return 0, pos, symlserr.New(symlserr.VariableNotFound, line)
		}
		result = v
	}

	if scanner.AtEnd(expr, pos) {
		return result, pos, nil
	}

	pos = scanner.Trim(expr, pos)
	opTok, pos := scanner.ReadUntilNextSpace(expr, pos)
	op, ok := reg.MathOperators()[opTok]
	if !ok {
		return 0, pos, symlserr.New(symlserr.InvalidSyntax, line)
	}

	rhs, pos, err := Real(reg, st, line, expr, pos)
	if err != nil {
		return 0, pos, err
	}

	switch op {
	case keywords.OpPlus:
		result += rhs
	case keywords.OpMinus:
		result -= rhs
	case keywords.OpUpon:
		result /= rhs
	case keywords.OpInto:
		result *= rhs
	case keywords.OpModulo:
		result = math.Mod(result, rhs)
	case keywords.OpExponent:
		result = math.Pow(result, rhs)
	}
	return result, pos, nil
}
