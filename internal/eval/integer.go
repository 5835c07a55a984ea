// Package eval implements the three mutually recursive, right-associative
// expression evaluators and the condition evaluator. Each evaluator reads
// one string, advancing an explicit cursor. There is no separate
// tokeniser or AST; the evaluator recurses directly over the source text.
package eval

import (
	"strconv"

	"github.com/symls-lang/symls/internal/classify"
	"github.com/symls-lang/symls/internal/keywords"
	"github.com/symls-lang/symls/internal/scanner"
	"github.com/symls-lang/symls/internal/store"
	"github.com/symls-lang/symls/internal/symlserr"
)

// Integer evaluates an integer expression starting at pos, returning the
// value and the cursor position just past what it consumed.
//
// Associativity is right-associative with no operator precedence:
// "2 minus 3 minus 4" evaluates as 2 - (3 - 4) = 3, because the
// right-hand side of every operator is itself a full recursive call to
// Integer rather than a single operand.
func Integer(reg *keywords.Registry, st *store.Store, line int, expr string, pos int) (int64, int, error) {
	pos = scanner.Trim(expr, pos)
	if pos >= len(expr) {
		return 0, pos, nil
	}

	tok, pos := scanner.ReadUntilNextSpace(expr, pos)

	var result int64
	if classify.IsNumber(tok) {
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return 0, pos, symlserr.New(symlserr.InvalidSyntax, line)
		}
		result = n
	} else {
		ref, err := st.Resolve(tok, line, indexEvaluator(reg, st, line))
		if err != nil {
			return 0, pos, err
		}
		v, ok := ref.GetInt()
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

	rhs, pos, err := Integer(reg, st, line, expr, pos)
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
		result %= rhs
	case keywords.OpExponent:
		result = integerPower(result, rhs)
	}
	return result, pos, nil
}

// integerPower computes base**exponent by repeated multiplication. For a
// non-positive exponent the loop body never runs and the result is 1.
func integerPower(base, exponent int64) int64 {
	result := int64(1)
	for i := int64(0); i < exponent; i++ {
		result *= base
	}
	return result
}

// indexEvaluator adapts Integer into the store.EvalIndex callback shape
// the resolver needs to evaluate an array index sub-expression.
func indexEvaluator(reg *keywords.Registry, st *store.Store, line int) store.EvalIndex {
	return func(expr string) (int64, error) {
		v, _, err := Integer(reg, st, line, expr, 0)
		return v, err
	}
}
