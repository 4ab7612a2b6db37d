package webshell

import (
	"log/slog"

	"github.com/webterm/webshell/model/types"
	"github.com/webterm/webshell/policy"
	"github.com/webterm/webshell/service/runner"
)

// Option customises the service.
type Option func(s *Service)

// WithConfig replaces the whole configuration.
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			s.config = config
		}
	}
}

// WithWorkdir sets the initial session working directory.
func WithWorkdir(workdir string) Option {
	return func(s *Service) { s.config.Workdir = workdir }
}

// WithLogger replaces the dispatcher logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithBuiltinServices registers additional builtin services; later
// registrations win on command-name conflicts.
func WithBuiltinServices(services ...types.Service) Option {
	return func(s *Service) {
		s.extensionServices = append(s.extensionServices, services...)
	}
}

// WithStream sets the default streaming sink passed to every command; long
// running external commands deliver output chunks through it in order.
func WithStream(stream func(chunk string)) Option {
	return func(s *Service) { s.stream = stream }
}

// WithPolicy sets the default command policy, used when the dispatch context
// carries none.
func WithPolicy(p *policy.Policy) Option {
	return func(s *Service) { s.policy = p }
}

// WithRunnerOptions passes extra options to the external runner (environment,
// timeout override).
func WithRunnerOptions(options ...runner.Option) Option {
	return func(s *Service) {
		s.runnerOptions = append(s.runnerOptions, options...)
	}
}

// WithTracing enables OpenTelemetry tracing with the stdout exporter; an
// empty outputFile writes to os.Stdout.
func WithTracing(serviceVersion, outputFile string) Option {
	return func(s *Service) {
		s.tracingVersion = serviceVersion
		s.tracingOutput = outputFile
		s.tracingEnabled = true
	}
}
