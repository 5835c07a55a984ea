package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symls-lang/symls/internal/scanner"
)

func TestTrim(t *testing.T) {
	assert.Equal(t, 0, scanner.Trim("abc", 0))
	assert.Equal(t, 3, scanner.Trim("   abc", 0))
	assert.Equal(t, 3, scanner.Trim("   ", 0))
}

func TestReadUntilNextSpace(t *testing.T) {
	tok, next := scanner.ReadUntilNextSpace("let integer x", 0)
	assert.Equal(t, "let", tok)
	assert.Equal(t, 3, next)

	tok, next = scanner.ReadUntilNextSpace(`"hello world" then`, 0)
	assert.Equal(t, `"hello world"`, tok)
	assert.Equal(t, 13, next)
}

func TestReadUntilNextSpace_UnterminatedQuote(t *testing.T) {
	tok, next := scanner.ReadUntilNextSpace(`"unterminated`, 0)
	assert.Equal(t, `"unterminated`, tok)
	assert.Equal(t, len(`"unterminated`), next)
}

func TestFindKeyword_SkipsQuotedRegions(t *testing.T) {
	expr := `print "and then some" and print "done"`
	pos, found := scanner.FindKeyword(expr, 0, "and")
	require.True(t, found)
	assert.Equal(t, "and", expr[pos:pos+3])
	// the match must be the top-level "and", not the one inside the string
	assert.Greater(t, pos, len(`print "and then some" `)-1)
}

func TestFindKeyword_NeverMatchesInsideQuotes(t *testing.T) {
	expr := `print "and" stop`
	_, found := scanner.FindKeyword(expr, 0, "and")
	assert.False(t, found, "and inside the quoted literal must not be reported")
}

func TestMatchAt_RequiresWordBoundary(t *testing.T) {
	assert.False(t, scanner.MatchAt("android", 0, "and"))
	assert.True(t, scanner.MatchAt("and roid", 0, "and"))
}

func TestAtEnd(t *testing.T) {
	assert.True(t, scanner.AtEnd("   ", 0))
	assert.True(t, scanner.AtEnd("abc", 3))
	assert.False(t, scanner.AtEnd("abc", 0))
}
