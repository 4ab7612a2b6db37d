// Package sessionctl implements the session-facing builtins: help, history
// and clear. The handlers only see the read-only history view the dispatcher
// injects into the request.
package sessionctl

import (
	"context"
	"fmt"
	"strings"

	"github.com/webterm/webshell/model/types"
)

const name = "sessionctl"

// DefaultHistoryLimit caps how many records the history command renders.
const DefaultHistoryLimit = 20

// Service provides the session control builtins.
type Service struct {
	historyLimit int
	signatures   func() types.Signatures
}

// New creates the service. The signatures provider is evaluated lazily so the
// registry can register this service before all others are known.
func New(historyLimit int, signatures func() types.Signatures) *Service {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &Service{historyLimit: historyLimit, signatures: signatures}
}

// Name returns the service name
func (s *Service) Name() string {
	return name
}

// Commands returns the builtin command signatures
func (s *Service) Commands() types.Signatures {
	return types.Signatures{
		{Name: "help", Usage: "help", Description: "list builtin commands"},
		{Name: "history", Usage: "history", Description: "show recent commands"},
		{Name: "clear", Usage: "clear", Description: "reset the output buffer"},
	}
}

// Command returns the executable for the specified command
func (s *Service) Command(name string) (types.Executable, error) {
	switch name {
	case "help":
		return s.help, nil
	case "history":
		return s.history, nil
	case "clear":
		return s.clear, nil
	default:
		return nil, types.NewCommandNotFoundError(name)
	}
}

func (s *Service) help(ctx context.Context, request *types.Request) (*types.Response, error) {
	builder := &strings.Builder{}
	builder.WriteString("Built-in commands:\n")
	var signatures types.Signatures
	if s.signatures != nil {
		signatures = s.signatures()
	}
	for _, signature := range signatures {
		builder.WriteString(fmt.Sprintf("  %-22s %s\n", signature.Usage, signature.Description))
	}
	builder.WriteString("Anything else runs on the host shell.")
	return &types.Response{Text: builder.String()}, nil
}

func (s *Service) history(ctx context.Context, request *types.Request) (*types.Response, error) {
	if len(request.History) == 0 {
		return &types.Response{Text: "No command history"}, nil
	}
	start := 0
	if len(request.History) > s.historyLimit {
		start = len(request.History) - s.historyLimit
	}
	lines := make([]string, 0, len(request.History)-start)
	for i := start; i < len(request.History); i++ {
		lines = append(lines, fmt.Sprintf("%d: %s", i+1, request.History[i]))
	}
	return &types.Response{Text: strings.Join(lines, "\n")}, nil
}

func (s *Service) clear(ctx context.Context, request *types.Request) (*types.Response, error) {
	return &types.Response{Text: "Cleared output", Clear: true}, nil
}
