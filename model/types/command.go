package types

import (
	"context"
)

type Signatures []Signature

func (s Signatures) Lookup(name string) *Signature {
	for i := range s {
		sig := &s[i]
		if sig.Name == name {
			return sig
		}
	}
	return nil
}

// Signature describes a single builtin command exposed by a service.
type Signature struct {
	Name        string
	Usage       string
	Description string
}

// Executable is a builtin command implementation. Executables are pure
// functions of the request plus filesystem/process side effects; they never
// mutate session state directly.
type Executable func(ctx context.Context, request *Request) (*Response, error)

// Request carries everything a command needs for one invocation.
type Request struct {
	// Raw is the unparsed input line, used verbatim by the external runner so
	// that shell constructs (pipes, redirections) survive tokenizing.
	Raw string

	// Args holds the parsed arguments (command name excluded).
	Args []string

	// Cwd is the session working directory the command resolves paths against.
	Cwd string

	// History holds the session's prior input lines, oldest first. Populated
	// by the dispatcher for commands that render it.
	History []string

	// Stream, when set, receives output chunks in production order as an
	// external command emits them. Buffered output is still returned in the
	// Response text.
	Stream func(chunk string)
}

// Response is the render-ready result of one command. The presentation layer
// displays Text as-is and must not re-interpret it.
type Response struct {
	Text    string `json:"text,omitempty"`
	IsError bool   `json:"isError,omitempty"`

	// NewCwd is set only by a navigation command; the dispatcher is the sole
	// component that applies it to the session.
	NewCwd string `json:"newCwd,omitempty"`

	// Clear asks the presentation layer to reset its output buffer.
	Clear bool `json:"clear,omitempty"`
}
