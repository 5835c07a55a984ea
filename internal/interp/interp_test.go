package interp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symls-lang/symls/internal/interp"
	"github.com/symls-lang/symls/internal/keywords"
	"github.com/symls-lang/symls/internal/preprocess"
)

// runProgram preprocesses and runs src to completion (either "end" or the
// last line), returning everything written to standard output.
func runProgram(t *testing.T, src string) string {
	t.Helper()
	reg := keywords.Default()

	result, err := preprocess.Run(strings.NewReader(src), reg)
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	ip := interp.New(reg, strings.NewReader(""), &stdout, &stderr)
	ip.Subroutines = result.Subroutines

	for _, line := range strings.Split(result.Normalised, "\n") {
		if line == "" {
			continue
		}
		ip.CurrentLine++
		err := ip.Interpret(line)
		if err == interp.ErrEnd {
			break
		}
		require.NoError(t, err, "stderr: %s", stderr.String())
	}
	return stdout.String()
}

func TestScenario_HelloWorld(t *testing.T) {
	src := `let text greeting is "Hello, world"` + "\n" + `print greeting` + "\n"
	assert.Equal(t, "Hello, world", runProgram(t, src))
}

func TestScenario_RightAssociativeSubtraction(t *testing.T) {
	src := "let integer x is 2 minus 3 minus 4\n" + "print x\n"
	assert.Equal(t, "3", runProgram(t, src))
}

func TestScenario_IfElseChained(t *testing.T) {
	src := "let integer n is 5\n" +
		`if n is greater-than 3 then print "big" else print "small" stop and print "!"` + "\n"
	assert.Equal(t, "big!", runProgram(t, src))
}

func TestScenario_WhileWithEscape(t *testing.T) {
	src := "let integer i is 0\n" +
		"while i is less-than 10 do i is i plus 1 and if i is equal-to 3 then escape else skip stop till-here and print i\n"
	assert.Equal(t, "3", runProgram(t, src))
}

func TestScenario_ArrayReadWrite(t *testing.T) {
	src := "let integer-array A-3\n" +
		"A-0 is 7 and A-1 is A-0 plus 1 and print A-1\n"
	assert.Equal(t, "8", runProgram(t, src))
}

func TestScenario_SubroutineViaGoto(t *testing.T) {
	src := "let integer x is 0\n" +
		"goto bump\n" +
		"print x\n" +
		"end\n" +
		"subroutine bump\n" +
		"x is x plus 41\n" +
		"end\n"
	assert.Equal(t, "41", runProgram(t, src))
}

func TestIfElse_NestedIfPairing(t *testing.T) {
	// A nested if inside the true branch must not let its else satisfy
	// the outer if.
	src := "let integer n is 1\n" +
		`if n is equal-to 1 then if n is equal-to 2 then print "inner-true" else print "inner-false" stop else print "outer-false" stop` + "\n"
	assert.Equal(t, "inner-false", runProgram(t, src))
}

func TestWhile_Recheck(t *testing.T) {
	src := "let integer i is 0\n" +
		"let integer skipped is 0\n" +
		"while i is less-than 3 do i is i plus 1 and recheck and skipped is skipped plus 1 till-here and print skipped\n"
	// recheck only skips the *next* iteration's body (the rest of the
	// current body still runs): the loop body runs on iterations 1, 3, 5
	// (i reaches 1, 2, 3) and skips on 2, 4, so "skipped" also lands at 3.
	assert.Equal(t, "3", runProgram(t, src))
}
