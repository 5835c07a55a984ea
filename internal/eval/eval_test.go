package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symls-lang/symls/internal/eval"
	"github.com/symls-lang/symls/internal/keywords"
	"github.com/symls-lang/symls/internal/store"
)

func TestInteger_RightAssociative(t *testing.T) {
	reg := keywords.Default()
	st := store.New()

	// 2 minus 3 minus 4 == 2 - (3 - 4) == 3
	v, _, err := eval.Integer(reg, st, 1, "2 minus 3 minus 4", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)
}

func TestInteger_VariableAndPlus(t *testing.T) {
	reg := keywords.Default()
	st := store.New()
	st.DeclareInteger("x", 10)

	v, _, err := eval.Integer(reg, st, 1, "x plus 5", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(15), v)
}

func TestInteger_ExponentNonPositive(t *testing.T) {
	reg := keywords.Default()
	st := store.New()

	// the loop-based power() never runs for exponent <= 0, yielding 1
	v, _, err := eval.Integer(reg, st, 1, "5 exponent 0", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	v, _, err = eval.Integer(reg, st, 1, "5 exponent -2", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	v, _, err = eval.Integer(reg, st, 1, "2 exponent 3", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(8), v)
}

func TestInteger_UnknownVariable(t *testing.T) {
	reg := keywords.Default()
	st := store.New()
	_, _, err := eval.Integer(reg, st, 1, "ghost plus 1", 0)
	require.Error(t, err)
}

func TestReal_WidensInteger(t *testing.T) {
	reg := keywords.Default()
	st := store.New()
	st.DeclareInteger("x", 4)

	v, _, err := eval.Real(reg, st, 1, "x plus 0.5", 0)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, v, 0.0001)
}

func TestText_Concatenation(t *testing.T) {
	reg := keywords.Default()
	st := store.New()
	st.DeclareText("name", "world")

	v, _, err := eval.Text(reg, st, 1, `"hello " plus name`, 0)
	require.NoError(t, err)
	assert.Equal(t, "hello world", v)
}

func TestText_RejectsNonPlusOperator(t *testing.T) {
	reg := keywords.Default()
	st := store.New()
	_, _, err := eval.Text(reg, st, 1, `"a" minus "b"`, 0)
	require.Error(t, err)
}

func TestCondition_Integer(t *testing.T) {
	reg := keywords.Default()
	st := store.New()
	st.DeclareInteger("n", 5)

	take, err := eval.Condition(reg, st, 1, "n is greater-than 3")
	require.NoError(t, err)
	assert.True(t, take)

	take, err = eval.Condition(reg, st, 1, "n is less-than 3")
	require.NoError(t, err)
	assert.False(t, take)
}

func TestCondition_UnrecognisedOperatorIsError(t *testing.T) {
	reg := keywords.Default()
	st := store.New()
	st.DeclareInteger("n", 5)

	_, err := eval.Condition(reg, st, 1, "n is banana 3")
	require.Error(t, err, "an unrecognised comparison operator must be InvalidOperator, not a silent fallthrough")
}

func TestCondition_Text(t *testing.T) {
	reg := keywords.Default()
	st := store.New()
	st.DeclareText("name", "ada")

	take, err := eval.Condition(reg, st, 1, `name is equal-to "ada"`)
	require.NoError(t, err)
	assert.True(t, take)
}
