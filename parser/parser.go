// Package parser tokenizes a raw input line into a command name and ordered
// arguments, honoring single/double quoting and backslash escapes the way an
// interactive shell does.
package parser

import (
	"errors"
	"strings"

	"github.com/viant/parsly"
)

var (
	ErrUnclosedQuote  = errors.New("unclosed quote")
	ErrTrailingEscape = errors.New("unescaped trailing backslash")
)

// Command is a parsed input line. A blank line parses to a Command with an
// empty name, which the dispatcher treats as a no-op.
type Command struct {
	Name string
	Args []string
}

// IsEmpty reports whether the command carries no name.
func (c *Command) IsEmpty() bool {
	return c == nil || c.Name == ""
}

// Parse splits input on whitespace, keeping quoted substrings as one token.
// Adjacent segments concatenate into a single token (a'b c' -> "ab c").
func Parse(input string) (*Command, error) {
	cursor := parsly.NewCursor("", []byte(input), 0)
	var tokens []string

	for cursor.Pos < cursor.InputSize {
		cursor.MatchOne(whitespaceToken)
		if cursor.Pos >= cursor.InputSize {
			break
		}
		token, err := matchToken(cursor)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}

	result := &Command{}
	if len(tokens) > 0 {
		result.Name = tokens[0]
		result.Args = tokens[1:]
	}
	return result, nil
}

// matchToken consumes one whitespace-delimited token, which may span several
// quoted and unquoted segments.
func matchToken(cursor *parsly.Cursor) (string, error) {
	builder := &strings.Builder{}
	for cursor.Pos < cursor.InputSize {
		if isSpace(cursor.Input[cursor.Pos]) {
			break
		}
		matched := cursor.MatchAny(singleQuotedToken, doubleQuotedToken, wordToken)
		switch matched.Code {
		case singleQuotedCode:
			text := matched.Text(cursor)
			builder.WriteString(text[1 : len(text)-1])
		case doubleQuotedCode:
			text := matched.Text(cursor)
			builder.WriteString(unescapeQuoted(text[1 : len(text)-1]))
		case wordCode:
			text, err := unescapeWord(matched.Text(cursor))
			if err != nil {
				return "", err
			}
			builder.WriteString(text)
		default:
			// the only unmatched prefix is an opening quote with no terminator
			return "", ErrUnclosedQuote
		}
	}
	return builder.String(), nil
}

// unescapeQuoted resolves backslash escapes inside a double-quoted segment;
// only \" and \\ are special, any other backslash stays literal.
func unescapeQuoted(text string) string {
	if !strings.Contains(text, `\`) {
		return text
	}
	builder := &strings.Builder{}
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '\\' && i+1 < len(text) {
			next := text[i+1]
			if next != '"' && next != '\\' {
				builder.WriteByte('\\')
			}
			builder.WriteByte(next)
			i++
			continue
		}
		builder.WriteByte(c)
	}
	return builder.String()
}

// unescapeWord resolves backslash escapes in an unquoted segment.
func unescapeWord(text string) (string, error) {
	if !strings.Contains(text, `\`) {
		return text, nil
	}
	builder := &strings.Builder{}
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '\\' {
			if i+1 >= len(text) {
				return "", ErrTrailingEscape
			}
			builder.WriteByte(text[i+1])
			i++
			continue
		}
		builder.WriteByte(c)
	}
	return builder.String(), nil
}
