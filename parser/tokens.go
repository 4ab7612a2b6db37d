package parser

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// Token codes
const (
	whitespaceCode = iota + 1
	singleQuotedCode
	doubleQuotedCode
	wordCode
)

// Token definitions
var (
	whitespaceToken   = parsly.NewToken(whitespaceCode, "Whitespace", matcher.NewWhiteSpace())
	singleQuotedToken = parsly.NewToken(singleQuotedCode, "SingleQuoted", &quotedMatcher{quote: '\''})
	doubleQuotedToken = parsly.NewToken(doubleQuotedCode, "DoubleQuoted", &quotedMatcher{quote: '"', escaped: true})
	wordToken         = parsly.NewToken(wordCode, "Word", &wordMatcher{})
)

// quotedMatcher matches a quoted segment including both quote characters.
// An unterminated quote yields no match; the parser reports it as an error.
type quotedMatcher struct {
	quote   byte
	escaped bool
}

func (m *quotedMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize

	if pos >= size || input[pos] != m.quote {
		return 0
	}
	for i := pos + 1; i < size; i++ {
		if m.escaped && input[i] == '\\' {
			i++
			continue
		}
		if input[i] == m.quote {
			return i - pos + 1
		}
	}
	return 0
}

// wordMatcher matches an unquoted segment up to whitespace or a quote
// character; a backslash escapes the character that follows it.
type wordMatcher struct{}

func (m *wordMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize

	matched := 0
	for i := pos; i < size; {
		c := input[i]
		if c == '\'' || c == '"' || isSpace(c) {
			break
		}
		if c == '\\' && i+1 < size {
			matched += 2
			i += 2
			continue
		}
		matched++
		i++
	}
	return matched
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
