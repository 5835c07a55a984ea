package repl_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/symls-lang/symls/internal/diag"
	"github.com/symls-lang/symls/internal/keywords"
	"github.com/symls-lang/symls/internal/repl"
)

func TestStart_NonInteractiveExecutesLineByLine(t *testing.T) {
	reg := keywords.Default()
	in := strings.NewReader("let integer x is 2 minus 3 minus 4\nprint x\n")
	var out, errOut bytes.Buffer

	repl.Start(reg, in, &out, &errOut, diag.New(&bytes.Buffer{}))

	assert.Equal(t, "3", out.String())
	assert.Empty(t, errOut.String())
}

func TestStart_FatalErrorIsNonTerminal(t *testing.T) {
	reg := keywords.Default()
	in := strings.NewReader("ghost is 5\nlet integer x is 1\nprint x\n")
	var out, errOut bytes.Buffer

	repl.Start(reg, in, &out, &errOut, diag.New(&bytes.Buffer{}))

	assert.Contains(t, errOut.String(), "Error at line : 1")
	assert.Equal(t, "1", out.String(), "execution must continue after a fatal statement error")
}
