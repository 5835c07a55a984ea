package eval

import (
	"github.com/symls-lang/symls/internal/classify"
	"github.com/symls-lang/symls/internal/keywords"
	"github.com/symls-lang/symls/internal/scanner"
	"github.com/symls-lang/symls/internal/store"
	"github.com/symls-lang/symls/internal/symlserr"
	"github.com/symls-lang/symls/internal/values"
)

// Condition evaluates "<lhs> is <op> <rhs>" and reports the boolean
// result. The left operand's first token decides which typed comparator
// runs: a quoted literal compares as text, a numeric literal as integer
// or real depending on whether it contains '.', and an identifier
// compares according to the resolved variable's kind.
//
// Dispatch is keyed on the left operand alone, so an integer left operand
// compared against a real-looking right operand (e.g. `n is less-than
// 3.5`) evaluates the right side with the integer evaluator and fails
// rather than truncating it. Arrange the more general operand first to
// get real comparison.
func Condition(reg *keywords.Registry, st *store.Store, line int, expr string) (bool, error) {
	pos := scanner.Trim(expr, 0)
	if pos >= len(expr) {
		return false, nil
	}

	tok, _ := scanner.ReadUntilNextSpace(expr, pos)

	switch {
	case classify.IsString(tok):
		return textCondition(reg, st, line, expr)
	case classify.IsNumber(tok):
		if classify.IsReal(tok) {
			return realCondition(reg, st, line, expr)
		}
		return integerCondition(reg, st, line, expr)
	default:
		ref, err := st.Resolve(tok, line, indexEvaluator(reg, st, line))
		if err != nil {
			return false, err
		}
		switch ref.Kind {
		case values.KindInteger:
			return integerCondition(reg, st, line, expr)
		case values.KindText:
			return textCondition(reg, st, line, expr)
		case values.KindReal:
			return realCondition(reg, st, line, expr)
		default:
			return false, symlserr.New(symlserr.VariableNotFound, line)
		}
	}
}

// splitOnIs locates the registry's "is" keyword at top level and splits
// the condition into its left/right halves plus the logic-operator token
// between them.
func splitOnIs(reg *keywords.Registry, expr string) (left, opTok, right string, ok bool) {
	isPos, found := scanner.FindKeyword(expr, 0, reg.Is)
	if !found {
		return "", "", "", false
	}
	left = expr[:isPos]
	pos := isPos + len(reg.Is)
	pos = scanner.Trim(expr, pos)
	opTok, pos = scanner.ReadUntilNextSpace(expr, pos)
	pos = scanner.Trim(expr, pos)
	right = expr[pos:]
	return left, opTok, right, true
}

func integerCondition(reg *keywords.Registry, st *store.Store, line int, expr string) (bool, error) {
	left, opTok, right, ok := splitOnIs(reg, expr)
	if !ok {
		return false, symlserr.New(symlserr.InvalidSyntax, line)
	}
	op, ok := reg.LogicOperators()[opTok]
	if !ok {
		return false, symlserr.New(symlserr.InvalidOperator, line)
	}
	a, _, err := Integer(reg, st, line, left, 0)
	if err != nil {
		return false, err
	}
	b, _, err := Integer(reg, st, line, right, 0)
	if err != nil {
		return false, err
	}
	switch op {
	case keywords.OpLessThan:
		return a < b, nil
	case keywords.OpGreaterThan:
		return a > b, nil
	case keywords.OpEqualTo:
		return a == b, nil
	case keywords.OpNotEqualTo:
		return a != b, nil
	}
	return false, symlserr.New(symlserr.InvalidOperator, line)
}

func realCondition(reg *keywords.Registry, st *store.Store, line int, expr string) (bool, error) {
	left, opTok, right, ok := splitOnIs(reg, expr)
	if !ok {
		return false, symlserr.New(symlserr.InvalidSyntax, line)
	}
	op, ok := reg.LogicOperators()[opTok]
	if !ok {
		return false, symlserr.New(symlserr.InvalidOperator, line)
	}
	a, _, err := Real(reg, st, line, left, 0)
	if err != nil {
		return false, err
	}
	b, _, err := Real(reg, st, line, right, 0)
	if err != nil {
		return false, err
	}
	switch op {
	case keywords.OpLessThan:
		return a < b, nil
	case keywords.OpGreaterThan:
		return a > b, nil
	case keywords.OpEqualTo:
		return a == b, nil
	case keywords.OpNotEqualTo:
		return a != b, nil
	}
	return false, symlserr.New(symlserr.InvalidOperator, line)
}

func textCondition(reg *keywords.Registry, st *store.Store, line int, expr string) (bool, error) {
	left, opTok, right, ok := splitOnIs(reg, expr)
	if !ok {
		return false, symlserr.New(symlserr.InvalidSyntax, line)
	}
	op, ok := reg.LogicOperators()[opTok]
	if !ok {
		return false, symlserr.New(symlserr.InvalidOperator, line)
	}
	a, _, err := Text(reg, st, line, left, 0)
	if err != nil {
		return false, err
	}
	b, _, err := Text(reg, st, line, right, 0)
	if err != nil {
		return false, err
	}
	switch op {
	case keywords.OpLessThan:
		return a < b, nil
	case keywords.OpGreaterThan:
		return a > b, nil
	case keywords.OpEqualTo:
		return a == b, nil
	case keywords.OpNotEqualTo:
		return a != b, nil
	}
	return false, symlserr.New(symlserr.InvalidOperator, line)
}
