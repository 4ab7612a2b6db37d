// Package runner executes non-builtin commands on the host shell. Commands
// run through a cached gosh local session, so shell constructs such as pipes
// and redirections behave the way they do in an interactive terminal.
package runner

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/viant/gosh"
	grunner "github.com/viant/gosh/runner"
	"github.com/viant/gosh/runner/local"
	"github.com/webterm/webshell/model/types"
)

// shell "command not found" exit status
const exitNotFound = 127

const defaultTimeout = time.Minute

// Service runs external commands for one session. The mutex serialises
// execution: no two external commands run concurrently within one session.
type Service struct {
	mux     sync.Mutex
	session *gosh.Service
	timeout time.Duration
	env     map[string]string
}

// Option customises the runner.
type Option func(*Service)

// WithTimeout sets the hard per-command timeout; zero keeps the default.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// WithEnv sets extra environment variables for the shell session.
func WithEnv(env map[string]string) Option {
	return func(s *Service) { s.env = env }
}

// New creates a runner service.
func New(options ...Option) *Service {
	result := &Service{timeout: defaultTimeout}
	for _, option := range options {
		option(result)
	}
	return result
}

// Execute runs the raw input line in the request working directory and
// captures its output. A non-zero exit status yields an error response with
// the captured output; a timed-out or cancelled command yields an error.
// No failure is silently swallowed.
func (s *Service) Execute(ctx context.Context, request *types.Request) (*types.Response, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	session, err := s.getSession(ctx)
	if err != nil {
		return nil, types.NewLaunchError(request.Raw, err)
	}
	if err := s.applyWorkdir(ctx, session, request.Cwd); err != nil {
		return nil, types.NewLaunchError(request.Raw, err)
	}

	options := []grunner.Option{grunner.WithTimeout(int(s.timeout.Milliseconds()))}
	if request.Stream != nil {
		stream := request.Stream
		options = append(options, grunner.WithListener(func(stdout string, hasMore bool) {
			if stdout != "" {
				stream(stdout)
			}
		}))
	}

	// the deadline starts before Run, so it is always expired by the time
	// gosh's own timer tears the command down
	runCtx, cancelRun := context.WithTimeout(ctx, s.timeout)
	defer cancelRun()

	output, status, err := session.Run(runCtx, request.Raw, options...)
	if ctx.Err() != nil {
		// the child was torn down with the context
		s.reset()
		return nil, types.NewCancelledError(request.Raw)
	}
	if runCtx.Err() != nil {
		// the hard timeout fired; the shell state is unknown
		s.reset()
		return nil, types.NewTimeoutError(request.Raw, s.timeout)
	}
	if err != nil {
		// the shell transport itself failed
		s.reset()
		return nil, types.NewLaunchError(request.Raw, err)
	}
	output = strings.TrimRight(output, "\r\n")
	if output != "" {
		output += "\n"
	}

	if status == exitNotFound {
		return nil, types.NewLaunchError(request.Raw, fmt.Errorf("%s", strings.TrimSpace(output)))
	}
	if status != 0 {
		return &types.Response{Text: output, IsError: true}, nil
	}
	return &types.Response{Text: output}, nil
}

// getSession returns the cached shell session, creating it on first use.
func (s *Service) getSession(ctx context.Context) (*gosh.Service, error) {
	if s.session != nil {
		return s.session, nil
	}
	var options []grunner.Option
	if len(s.env) > 0 {
		options = append(options, grunner.WithEnvironment(s.env))
	}
	session, err := gosh.New(ctx, local.New(options...))
	if err != nil {
		return nil, err
	}
	s.session = session
	return session, nil
}

// applyWorkdir moves the shell session into the request working directory.
// The shell is persistent and the previous command may have moved it
// elsewhere, so the change runs before every command and its exit status is
// checked.
func (s *Service) applyWorkdir(ctx context.Context, session *gosh.Service, cwd string) error {
	if cwd == "" {
		return nil
	}
	output, status, err := session.Run(ctx, fmt.Sprintf("cd %q", cwd))
	if err != nil {
		return err
	}
	if status != 0 {
		return fmt.Errorf("cd %s: %s", cwd, strings.TrimSpace(output))
	}
	return nil
}

// reset drops the cached session so the next command starts a fresh shell.
func (s *Service) reset() {
	if s.session != nil {
		_ = s.session.Close()
		s.session = nil
	}
}

// Close releases the shell session.
func (s *Service) Close(ctx context.Context) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.session == nil {
		return nil
	}
	err := s.session.Close()
	s.session = nil
	return err
}
