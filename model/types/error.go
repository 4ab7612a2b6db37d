package types

import (
	"errors"
	"fmt"
	"time"
)

// Kind classifies a command failure. Every failure a handler or the runner
// produces carries exactly one kind; the dispatcher converts it into an error
// response and nothing propagates past it unhandled.
type Kind string

const (
	KindParse         Kind = "parse"
	KindNotFound      Kind = "notFound"
	KindNotADirectory Kind = "notADirectory"
	KindIsADirectory  Kind = "isADirectory"
	KindAlreadyExists Kind = "alreadyExists"
	KindLaunch        Kind = "launch"
	KindUnavailable   Kind = "unavailable"
	KindCancelled     Kind = "cancelled"
	KindTimeout       Kind = "timeout"
	KindDenied        Kind = "denied"
	KindInternal      Kind = "internal"
)

// CommandError is the failure type shared by all handlers and the runner.
type CommandError struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

func NewParseError(err error) error {
	return &CommandError{Kind: KindParse, Msg: "invalid input", Err: err}
}

func NewNotFoundError(location string) error {
	return &CommandError{Kind: KindNotFound, Msg: fmt.Sprintf("no such file or directory: %s", location)}
}

func NewNotADirectoryError(location string) error {
	return &CommandError{Kind: KindNotADirectory, Msg: fmt.Sprintf("not a directory: %s", location)}
}

func NewIsADirectoryError(location string) error {
	return &CommandError{Kind: KindIsADirectory, Msg: fmt.Sprintf("is a directory: %s", location)}
}

func NewUsageError(usage string) error {
	return &CommandError{Kind: KindParse, Msg: fmt.Sprintf("usage: %s", usage)}
}

func NewAlreadyExistsError(location string) error {
	return &CommandError{Kind: KindAlreadyExists, Msg: fmt.Sprintf("already exists: %s", location)}
}

func NewLaunchError(command string, err error) error {
	return &CommandError{Kind: KindLaunch, Msg: fmt.Sprintf("failed to launch %v", command), Err: err}
}

func NewUnavailableError(source string, err error) error {
	return &CommandError{Kind: KindUnavailable, Msg: fmt.Sprintf("%v unavailable", source), Err: err}
}

func NewCancelledError(command string) error {
	return &CommandError{Kind: KindCancelled, Msg: fmt.Sprintf("cancelled: %v", command)}
}

func NewTimeoutError(command string, limit time.Duration) error {
	return &CommandError{Kind: KindTimeout, Msg: fmt.Sprintf("%v: timed out after %s", command, limit)}
}

func NewDeniedError(command string) error {
	return &CommandError{Kind: KindDenied, Msg: fmt.Sprintf("denied by policy: %v", command)}
}

func NewInternalError(err error) error {
	return &CommandError{Kind: KindInternal, Msg: "internal error", Err: err}
}

func NewCommandNotFoundError(name string) error {
	return &CommandError{Kind: KindNotFound, Msg: fmt.Sprintf("command %v not found", name)}
}

// KindOf returns the kind carried by err, or KindInternal when err carries
// none. A nil error has no kind.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the supplied kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
