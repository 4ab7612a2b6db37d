// Package policy provides an optional per-command approval layer carried via
// context. It is decoupled from the dispatcher: a nil *Policy means "execute
// everything" and is the zero-cost default, so embedding hosts opt in only
// when they want to gate destructive commands such as rm -r.
package policy

import (
	"context"
	"strings"
)

// Execution modes recognised by the dispatcher.
const (
	ModeAsk  = "ask"  // ask before every gated command
	ModeAuto = "auto" // execute automatically (default)
	ModeDeny = "deny" // block gated commands outright
)

// AskFunc is invoked when Mode==ask. Returning true approves the command.
// Implementations may mutate the policy, for example switching to ModeAuto
// after the first approval.
type AskFunc func(ctx context.Context, command string, args []string, p *Policy) bool

// Policy holds the approval settings for a session.
//
//   - Mode controls the high-level behaviour (ask / auto / deny).
//   - AllowList and BlockList filter by command name regardless of Mode.
//   - Ask is consulted only when Mode==ask.
type Policy struct {
	Mode      string
	AllowList []string // whitelist (empty => all)
	BlockList []string // blacklist
	Ask       AskFunc
}

// Config is the declarative, serialisable part of a Policy.
type Config struct {
	Mode      string   `json:"mode,omitempty" yaml:"mode,omitempty"`
	AllowList []string `json:"allow,omitempty" yaml:"allow,omitempty"`
	BlockList []string `json:"block,omitempty" yaml:"block,omitempty"`
}

// ToConfig converts a runtime Policy into a persistable Config.
func ToConfig(p *Policy) *Config {
	if p == nil {
		return nil
	}
	return &Config{
		Mode:      p.Mode,
		AllowList: append([]string(nil), p.AllowList...),
		BlockList: append([]string(nil), p.BlockList...),
	}
}

// FromConfig converts a stored Config back to a runtime Policy (without Ask).
func FromConfig(c *Config) *Policy {
	if c == nil {
		return nil
	}
	return &Policy{
		Mode:      c.Mode,
		AllowList: append([]string(nil), c.AllowList...),
		BlockList: append([]string(nil), c.BlockList...),
	}
}

// IsAllowed evaluates AllowList / BlockList by case-insensitive command name.
// BlockList has priority; an empty AllowList allows everything.
func (p *Policy) IsAllowed(command string) bool {
	if p == nil {
		return true
	}
	normalized := strings.ToLower(command)
	for _, blocked := range p.BlockList {
		if normalized == strings.ToLower(blocked) {
			return false
		}
	}
	if len(p.AllowList) == 0 {
		return true
	}
	for _, allowed := range p.AllowList {
		if normalized == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}

// Approve runs the full decision for one command: list filtering first, then
// the mode. ModeAsk without an Ask func behaves like ModeDeny.
func (p *Policy) Approve(ctx context.Context, command string, args []string) bool {
	if p == nil {
		return true
	}
	if !p.IsAllowed(command) {
		return false
	}
	switch p.Mode {
	case ModeDeny:
		return false
	case ModeAsk:
		if p.Ask == nil {
			return false
		}
		return p.Ask(ctx, command, args, p)
	default:
		return true
	}
}

type ctxKeyT struct{}

var ctxKey ctxKeyT

// WithPolicy embeds the policy in ctx.
func WithPolicy(ctx context.Context, p *Policy) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey, p)
}

// FromContext extracts the policy, or nil when none is set.
func FromContext(ctx context.Context) *Policy {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxKey).(*Policy); ok {
		return v
	}
	return nil
}
