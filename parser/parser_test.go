package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		expectName  string
		expectArgs  []string
		expectErr   error
	}{
		{
			description: "simple command",
			input:       "ls -la /tmp",
			expectName:  "ls",
			expectArgs:  []string{"-la", "/tmp"},
		},
		{
			description: "blank input is a no-op command",
			input:       "   \t ",
			expectName:  "",
		},
		{
			description: "empty input",
			input:       "",
			expectName:  "",
		},
		{
			description: "double quotes keep spaces",
			input:       `mkdir "my dir"`,
			expectName:  "mkdir",
			expectArgs:  []string{"my dir"},
		},
		{
			description: "single quotes are literal",
			input:       `echo 'a "b" \n c'`,
			expectName:  "echo",
			expectArgs:  []string{`a "b" \n c`},
		},
		{
			description: "adjacent segments concatenate",
			input:       `cp a'b c'd dst`,
			expectName:  "cp",
			expectArgs:  []string{"ab cd", "dst"},
		},
		{
			description: "escaped quote inside double quotes",
			input:       `echo "say \"hi\""`,
			expectName:  "echo",
			expectArgs:  []string{`say "hi"`},
		},
		{
			description: "backslash escapes a space",
			input:       `cat my\ file`,
			expectName:  "cat",
			expectArgs:  []string{"my file"},
		},
		{
			description: "unterminated double quote",
			input:       `echo "oops`,
			expectErr:   ErrUnclosedQuote,
		},
		{
			description: "unterminated single quote",
			input:       `echo 'oops`,
			expectErr:   ErrUnclosedQuote,
		},
		{
			description: "trailing backslash",
			input:       `echo oops\`,
			expectErr:   ErrTrailingEscape,
		},
	}

	for _, testCase := range testCases {
		parsed, err := Parse(testCase.input)
		if testCase.expectErr != nil {
			assert.ErrorIs(t, err, testCase.expectErr, testCase.description)
			continue
		}
		if !assert.NoError(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expectName, parsed.Name, testCase.description)
		assert.Equal(t, testCase.expectArgs, parsed.Args, testCase.description)
		assert.Equal(t, testCase.expectName == "", parsed.IsEmpty(), testCase.description)
	}
}
