// Package keywords holds the rebindable vocabulary of a SYMLS program:
// statement keywords, math/logic operators, data type spellings, error
// messages, and the defaults used when a declaration omits an initialiser.
package keywords

// Registry is the closed, rebindable vocabulary of a running interpreter.
// A fresh Registry carries the built-in spellings; internal/config rebinds
// individual fields from symlsConfig.json at startup. Once a program
// starts executing, the Registry is read-only: keyword spellings are
// fixed for the duration of a program run.
type Registry struct {
	Let, Is, If, Else, Then, Skip, Stop, Do, While, Escape, Recheck,
	TillHere, And, Goto, Read, Print, Newline, Leave, End, Subroutine string

	Plus, Minus, Upon, Into, Modulo, Exponent string

	LessThan, GreaterThan, EqualTo, NotEqualTo string

	Integer, Text, Real, IntegerArray, TextArray, RealArray string

	Errors ErrorMessages

	DefaultArraySize     int
	DefaultIntegerValue  int64
	DefaultRealValue     float64
	DefaultTextValue     string
}

// ErrorMessages localises the interpreter's fatal error taxonomy.
type ErrorMessages struct {
	InvalidSyntax    string
	InvalidDataType  string
	InvalidOperator  string
	VariableNotFound string
	IndexOutOfBounds string
	InvalidName      string
}

// Default returns the built-in (un-configured) registry, matching the
// spellings baked into the original interpreter.
func Default() *Registry {
	return &Registry{
		Let: "let", Is: "is", If: "if", Else: "else", Then: "then",
		Skip: "skip", Stop: "stop", Do: "do", While: "while",
		Escape: "escape", Recheck: "recheck", TillHere: "till-here",
		And: "and", Goto: "goto", Read: "read", Print: "print",
		Newline: "newline", Leave: "leave", End: "end", Subroutine: "subroutine",

		Plus: "plus", Minus: "minus", Upon: "upon", Into: "into",
		Modulo: "modulo", Exponent: "exponent",

		LessThan: "less-than", GreaterThan: "greater-than",
		EqualTo: "equal-to", NotEqualTo: "not-equal-to",

		Integer: "integer", Text: "text", Real: "real",
		IntegerArray: "integer-array", TextArray: "text-array", RealArray: "real-array",

		Errors: ErrorMessages{
			InvalidSyntax:    "Invalid syntax",
			InvalidDataType:  "Invalid data type",
			InvalidOperator:  "Invalid operator",
			VariableNotFound: "Variable not found",
			IndexOutOfBounds: "Index out of bounds",
			InvalidName:      "Invalid name",
		},

		DefaultArraySize:     64,
		DefaultIntegerValue:  0,
		DefaultRealValue:     0.0,
		DefaultTextValue:     "",
	}
}

// MathOperators maps every currently-bound math operator spelling to its
// canonical operator id, for use by the integer/real/text evaluators.
func (r *Registry) MathOperators() map[string]MathOp {
	return map[string]MathOp{
		r.Plus: OpPlus, r.Minus: OpMinus, r.Upon: OpUpon,
		r.Into: OpInto, r.Modulo: OpModulo, r.Exponent: OpExponent,
	}
}

// LogicOperators maps every currently-bound comparison spelling to its
// canonical operator id, for use by the condition evaluator.
func (r *Registry) LogicOperators() map[string]LogicOp {
	return map[string]LogicOp{
		r.LessThan: OpLessThan, r.GreaterThan: OpGreaterThan,
		r.EqualTo: OpEqualTo, r.NotEqualTo: OpNotEqualTo,
	}
}

// DataTypes maps every currently-bound data-type spelling to its kind id.
func (r *Registry) DataTypes() map[string]DataType {
	return map[string]DataType{
		r.Integer: TypeInteger, r.Text: TypeText, r.Real: TypeReal,
		r.IntegerArray: TypeIntegerArray, r.TextArray: TypeTextArray, r.RealArray: TypeRealArray,
	}
}

// ReservedWords rebuilds the reserved-word set from the registry's
// *current* spellings, exactly as the original configure() rebuilds
// reservedWords from the (possibly rebound) keyword/operator/datatype
// tables rather than keeping a fixed literal list.
func (r *Registry) ReservedWords() map[string]struct{} {
	words := []string{
		r.Let, r.Is, r.If, r.Else, r.Then, r.Skip, r.Stop, r.Do, r.While,
		r.Escape, r.Recheck, r.TillHere, r.And, r.Goto, r.Read, r.Print,
		r.Newline, r.Leave, r.End, r.Subroutine,
		r.Plus, r.Minus, r.Upon, r.Into, r.Modulo, r.Exponent,
		r.LessThan, r.GreaterThan, r.EqualTo, r.NotEqualTo,
		r.Integer, r.Text, r.Real, r.IntegerArray, r.TextArray, r.RealArray,
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// MathOp is the canonical id of an arithmetic operator, stable across
// keyword rebinding.
type MathOp int

const (
	OpPlus MathOp = iota
	OpMinus
	OpUpon
	OpInto
	OpModulo
	OpExponent
)

// LogicOp is the canonical id of a comparison operator.
type LogicOp int

const (
	OpLessThan LogicOp = iota
	OpGreaterThan
	OpEqualTo
	OpNotEqualTo
)

// DataType is the canonical id of a declarable type.
type DataType int

const (
	TypeInteger DataType = iota
	TypeText
	TypeReal
	TypeIntegerArray
	TypeTextArray
	TypeRealArray
)
