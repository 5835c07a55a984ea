package preprocess_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symls-lang/symls/internal/keywords"
	"github.com/symls-lang/symls/internal/preprocess"
)

func TestRun_StripsCommentsAndCollapsesWhitespace(t *testing.T) {
	reg := keywords.Default()
	src := "leave this is a comment\n" +
		"let   integer   x   is   5\n" +
		"print x\n"

	result, err := preprocess.Run(strings.NewReader(src), reg)
	require.NoError(t, err)

	assert.Equal(t, "let integer x is 5\nprint x\n", result.Normalised)
}

func TestRun_PreservesQuotedSpacing(t *testing.T) {
	reg := keywords.Default()
	src := `print   "hello   world"` + "\n"

	result, err := preprocess.Run(strings.NewReader(src), reg)
	require.NoError(t, err)
	assert.Equal(t, `print "hello   world"`+"\n", result.Normalised)
}

func TestRun_JoinsContinuationLines(t *testing.T) {
	reg := keywords.Default()
	src := "let integer n is 5 and\n" +
		"print n\n"

	result, err := preprocess.Run(strings.NewReader(src), reg)
	require.NoError(t, err)
	assert.Equal(t, "let integer n is 5 and print n\n", result.Normalised)
}

func TestRun_Idempotent(t *testing.T) {
	reg := keywords.Default()
	src := "leave a comment\n" +
		"let   integer  n  is  5  and\n" +
		"print n\n"

	first, err := preprocess.Run(strings.NewReader(src), reg)
	require.NoError(t, err)

	second, err := preprocess.Run(strings.NewReader(first.Normalised), reg)
	require.NoError(t, err)

	assert.Equal(t, first.Normalised, second.Normalised)
}

func TestRun_HarvestsSubroutines(t *testing.T) {
	reg := keywords.Default()
	src := "let integer x is 0\n" +
		"goto bump\n" +
		"print x\n" +
		"end\n" +
		"subroutine bump\n" +
		"x is x plus 41\n" +
		"end\n"

	result, err := preprocess.Run(strings.NewReader(src), reg)
	require.NoError(t, err)

	require.Contains(t, result.Subroutines, "bump")
	assert.Equal(t, []string{"x is x plus 41"}, result.Subroutines["bump"])
}

func TestRun_MultipleSubroutinesHarvestIndependently(t *testing.T) {
	reg := keywords.Default()
	src := "subroutine first\n" +
		"print 1\n" +
		"end\n" +
		"subroutine second\n" +
		"print 2\n" +
		"end\n"

	result, err := preprocess.Run(strings.NewReader(src), reg)
	require.NoError(t, err)

	assert.Equal(t, []string{"print 1"}, result.Subroutines["first"])
	assert.Equal(t, []string{"print 2"}, result.Subroutines["second"])
}
