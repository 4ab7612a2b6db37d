package webshell

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/webterm/webshell/extension"
	"github.com/webterm/webshell/internal/clock"
	"github.com/webterm/webshell/logs"
	"github.com/webterm/webshell/model/session"
	"github.com/webterm/webshell/model/types"
	"github.com/webterm/webshell/parser"
	"github.com/webterm/webshell/policy"
	"github.com/webterm/webshell/service/builtin/fs"
	"github.com/webterm/webshell/service/builtin/sessionctl"
	"github.com/webterm/webshell/service/builtin/sysinfo"
	"github.com/webterm/webshell/service/runner"
	"github.com/webterm/webshell/tracing"
)

// Service is the dispatcher: the single entry point accepting raw command
// text against a session. It decides builtin versus external execution,
// appends every outcome to the session history and is the only component
// that mutates session state.
type Service struct {
	config            *Config
	builtins          *extension.Builtins
	runner            *runner.Service
	logger            *slog.Logger
	policy            *policy.Policy
	stream            func(chunk string)
	extensionServices []types.Service
	runnerOptions     []runner.Option
	tracingEnabled    bool
	tracingVersion    string
	tracingOutput     string
}

// New creates a service with the default builtin set registered.
func New(options ...Option) (*Service, error) {
	result := &Service{
		config: DefaultConfig(),
		logger: logs.Nop(),
	}
	for _, option := range options {
		option(result)
	}
	if err := result.config.Validate(); err != nil {
		return nil, err
	}
	if result.policy == nil && result.config.Policy != nil {
		result.policy = policy.FromConfig(result.config.Policy)
	}
	if result.tracingEnabled {
		if err := tracing.Init("webshell", result.tracingVersion, result.tracingOutput); err != nil {
			return nil, err
		}
	}

	runnerOptions := result.runnerOptions
	if result.config.CommandTimeoutMs > 0 {
		runnerOptions = append(runnerOptions,
			runner.WithTimeout(time.Duration(result.config.CommandTimeoutMs)*time.Millisecond))
	}
	result.runner = runner.New(runnerOptions...)

	builtins, err := extension.NewBuiltins(fs.New(), sysinfo.New())
	if err != nil {
		return nil, err
	}
	result.builtins = builtins
	if err := builtins.Register(sessionctl.New(result.config.HistoryLimit, builtins.Signatures)); err != nil {
		return nil, err
	}
	for _, service := range result.extensionServices {
		if err := builtins.Register(service); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// NewSession creates a session rooted at the configured working directory.
func (s *Service) NewSession() *session.Session {
	workdir := s.config.Workdir
	if workdir == "" {
		if cwd, err := os.Getwd(); err == nil {
			workdir = cwd
		}
	}
	return session.New(workdir)
}

// Builtins exposes the command registry, mostly for embedding hosts that
// render their own help surface.
func (s *Service) Builtins() *extension.Builtins {
	return s.builtins
}

// History returns the session's ordered records for display.
func (s *Service) History(sess *session.Session) []*session.Record {
	return sess.History()
}

// Dispatch parses and executes one command against the session. It never
// returns a fault: every failure, including an internal panic, is converted
// into an error response, and every command, successful or not, appends
// exactly one history record.
func (s *Service) Dispatch(ctx context.Context, sess *session.Session, raw string) (response *types.Response) {
	ctx, span := tracing.StartSpan(ctx, "webshell.dispatch")
	started := clock.Now()
	var dispatchErr error
	concluded := false

	conclude := func(result *types.Response, err error) *types.Response {
		concluded = true
		dispatchErr = err
		return s.conclude(sess, raw, result, err, started)
	}
	defer func() {
		if r := recover(); r != nil {
			dispatchErr = types.NewInternalError(fmt.Errorf("%v", r))
			if !concluded {
				response = s.conclude(sess, raw, nil, dispatchErr, started)
			}
		}
		span.WithAttributes(map[string]string{"command": raw})
		tracing.EndSpan(span, dispatchErr)
	}()

	parsed, err := parser.Parse(raw)
	if err != nil {
		return conclude(nil, types.NewParseError(err))
	}
	if parsed.IsEmpty() {
		// blank input is a no-op, not a command: nothing to record
		return &types.Response{}
	}

	commandPolicy := policy.FromContext(ctx)
	if commandPolicy == nil {
		commandPolicy = s.policy
	}
	if !commandPolicy.Approve(ctx, parsed.Name, parsed.Args) {
		return conclude(nil, types.NewDeniedError(parsed.Name))
	}

	request := &types.Request{
		Raw:     raw,
		Args:    parsed.Args,
		Cwd:     sess.Cwd,
		History: sess.Inputs(),
		Stream:  s.stream,
	}
	var result *types.Response
	if executable, ok := s.builtins.Lookup(parsed.Name); ok {
		result, err = executable(ctx, request)
	} else {
		result, err = s.runner.Execute(ctx, request)
	}
	return conclude(result, err)
}

// conclude converts a failure into an error response, records the outcome
// and applies a directory change. This is the single session mutation point.
func (s *Service) conclude(sess *session.Session, raw string, result *types.Response, err error, started time.Time) *types.Response {
	if err != nil {
		result = &types.Response{Text: err.Error(), IsError: true}
	}
	if result == nil {
		result = &types.Response{}
	}

	kind := types.KindOf(err)
	status := session.StatusOK
	switch {
	case kind == types.KindCancelled:
		status = session.StatusCancelled
	case err != nil || result.IsError:
		status = session.StatusError
	}
	sess.Append(&session.Record{
		Input:  raw,
		Output: result.Text,
		Status: status,
		Kind:   kind,
	})
	if result.NewCwd != "" {
		sess.ChangeDir(result.NewCwd)
	}
	s.logger.Info("dispatched",
		"session", sess.ID,
		"command", raw,
		"status", string(status),
		"durationMs", time.Since(started).Milliseconds())
	return result
}

// Close releases the external runner's shell session.
func (s *Service) Close(ctx context.Context) error {
	return s.runner.Close(ctx)
}
