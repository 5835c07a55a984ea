package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/symls-lang/symls/internal/classify"
)

func TestIsNumber(t *testing.T) {
	assert.True(t, classify.IsNumber("42"))
	assert.True(t, classify.IsNumber("-42"))
	assert.True(t, classify.IsNumber("3.14"))
	assert.False(t, classify.IsNumber(""))
	assert.False(t, classify.IsNumber("abc"))
	assert.False(t, classify.IsNumber("3.1.4"))
}

func TestIsReal(t *testing.T) {
	assert.True(t, classify.IsReal("3.14"))
	assert.False(t, classify.IsReal("42"))
	assert.False(t, classify.IsReal("abc"))
}

func TestIsString(t *testing.T) {
	assert.True(t, classify.IsString(`"hello"`))
	assert.True(t, classify.IsString(`""`))
	assert.False(t, classify.IsString(`"unterminated`))
	assert.False(t, classify.IsString(`hello`))
}

func TestValidateName(t *testing.T) {
	reserved := map[string]struct{}{"let": {}, "if": {}}

	assert.True(t, classify.ValidateName("total", reserved))
	assert.True(t, classify.ValidateName("x1", reserved))
	assert.False(t, classify.ValidateName("", reserved))
	assert.False(t, classify.ValidateName("1x", reserved), "names may not start with a digit")
	assert.False(t, classify.ValidateName("let", reserved), "reserved words are never valid names")
	assert.False(t, classify.ValidateName("a-b", reserved), "hyphen is reserved for array indexing")
}

func TestValidateName_FullDigitRange(t *testing.T) {
	reserved := map[string]struct{}{}
	// The source's equivalent check only rejects a leading '0' (a '0'..'0'
	// typo for '0'..'9'); every leading digit must be rejected here.
	for d := byte('0'); d <= '9'; d++ {
		name := string(d) + "name"
		assert.False(t, classify.ValidateName(name, reserved), "leading digit %q should be rejected", d)
	}
}
