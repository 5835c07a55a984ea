// Package scanner moves a cursor over a normalised source line, quote-aware
// at every turn. There is no token stream. Callers advance the cursor
// themselves and read exactly the next token they need, which lets the
// evaluators and statement executor interpret the line directly instead of
// through a separate tokeniser/parser pass.
package scanner

// Trim advances pos over any run of ASCII spaces. Tabs and other
// whitespace are not treated as separators; the preprocessor guarantees
// single-space normalisation before execution ever sees a line.
func Trim(s string, pos int) int {
	for pos < len(s) && s[pos] == ' ' {
		pos++
	}
	return pos
}

// ReadUntilNextSpace reads one token starting at pos: characters up to the
// next space or end of string, unless the token opens with a double quote,
// in which case it reads up to and including the matching closing quote so
// the token keeps its surrounding quotes intact. Returns the token and the
// position just past it.
func ReadUntilNextSpace(s string, pos int) (token string, next int) {
	if pos >= len(s) {
		return "", pos
	}
	start := pos
	if s[pos] == '"' {
		pos++
		for pos < len(s) && s[pos] != '"' {
			pos++
		}
		if pos < len(s) {
			pos++ // include the closing quote
		}
		return s[start:pos], pos
	}
	for pos < len(s) && s[pos] != ' ' {
		pos++
	}
	return s[start:pos], pos
}

// SkipQuoted advances pos past a double-quoted region starting at pos
// (s[pos] == '"'). If the quote is unterminated, pos lands at len(s).
// Callers should `continue` their scan loop after calling this, not add an
// extra increment on top of the returned position.
func SkipQuoted(s string, pos int) int {
	pos++ // past the opening quote
	for pos < len(s) && s[pos] != '"' {
		pos++
	}
	if pos < len(s) {
		pos++ // past the closing quote
	}
	return pos
}

// isBoundary reports whether the byte at s[pos] either doesn't exist
// (end of string) or is a space or quote, the delimiters a keyword match
// requires on both sides.
func isBoundary(s string, pos int) bool {
	if pos < 0 || pos >= len(s) {
		return true
	}
	return s[pos] == ' ' || s[pos] == '"'
}

// MatchAt reports whether keyword occurs at exactly pos in s, delimited
// by a space or string boundary on both sides. It does not itself skip
// quoted regions; callers scanning forward should test for an opening
// quote and call SkipQuoted before trying MatchAt.
func MatchAt(s string, pos int, keyword string) bool {
	n := len(keyword)
	if pos < 0 || pos+n > len(s) || s[pos:pos+n] != keyword {
		return false
	}
	return (pos == 0 || isBoundary(s, pos-1)) && isBoundary(s, pos+n)
}

// FindKeyword searches forward from pos for keyword, delimited by a space
// or string boundary on both sides, skipping any double-quoted region
// entirely (a keyword can never be found inside a string literal). It
// returns the position of the match and true on success; on failure it
// returns len(s), false.
func FindKeyword(s string, pos int, keyword string) (int, bool) {
	for pos < len(s) {
		if s[pos] == '"' {
			pos = SkipQuoted(s, pos)
			continue
		}
		if MatchAt(s, pos, keyword) {
			return pos, true
		}
		pos++
	}
	return len(s), false
}

// AtEnd reports whether pos has reached the end of s, or s is empty from
// pos onward after trimming: the scanner's "nothing left to read" check.
func AtEnd(s string, pos int) bool {
	return Trim(s, pos) >= len(s)
}
