package session

import (
	"time"

	"github.com/webterm/webshell/internal/clock"
	"github.com/webterm/webshell/internal/idgen"
	"github.com/webterm/webshell/model/types"
)

// Status describes the outcome recorded for one dispatched command.
type Status string

const (
	StatusOK        Status = "ok"
	StatusError     Status = "error"
	StatusCancelled Status = "cancelled"
)

// Record is one input/output/status tuple in the session history. Records are
// immutable once appended.
type Record struct {
	Input  string     `json:"input"`
	Output string     `json:"output,omitempty"`
	Status Status     `json:"status"`
	Kind   types.Kind `json:"kind,omitempty"`
	At     time.Time  `json:"at"`
}

// Session holds one user's interaction lifetime: the current working
// directory and an append-only, order-preserving command history. A session is
// owned by a single logical thread of control; concurrent sessions each own an
// independent instance.
type Session struct {
	ID      string
	Cwd     string
	history []*Record
}

// New creates a session rooted at the supplied working directory.
func New(workdir string) *Session {
	return &Session{
		ID:  idgen.New(),
		Cwd: workdir,
	}
}

// Append adds a record to the history; the timestamp defaults to now.
func (s *Session) Append(record *Record) {
	if record.At.IsZero() {
		record.At = clock.Now()
	}
	s.history = append(s.history, record)
}

// ChangeDir updates the working directory. Callers (the dispatcher) only
// invoke it with a path a navigation command successfully resolved, which
// keeps the cwd pointing at an existing directory.
func (s *Session) ChangeDir(cwd string) {
	if cwd == "" {
		return
	}
	s.Cwd = cwd
}

// History returns the ordered records; the returned slice is a copy, the
// records themselves are shared and must not be mutated.
func (s *Session) History() []*Record {
	result := make([]*Record, len(s.history))
	copy(result, s.history)
	return result
}

// Inputs returns the raw input lines in dispatch order.
func (s *Session) Inputs() []string {
	result := make([]string, 0, len(s.history))
	for _, record := range s.history {
		result = append(result, record.Input)
	}
	return result
}
