// Package logs builds the slog logger used by the dispatcher. Output fans
// out to a local text handler plus any extra handlers the embedding host
// supplies (journald, files, collectors).
package logs

import (
	"context"
	"io"
	"log/slog"

	slogmulti "github.com/samber/slog-multi"
)

// Level is the shared level var; hosts may lower it to debug at runtime.
var Level = new(slog.LevelVar)

// New returns a logger writing text records to writer and fanning out to any
// extra handlers.
func New(writer io.Writer, extra ...slog.Handler) *slog.Logger {
	handlers := make([]slog.Handler, 0, 1+len(extra))
	handlers = append(handlers, slog.NewTextHandler(writer, &slog.HandlerOptions{Level: Level}))
	handlers = append(handlers, extra...)
	return slog.New(slogmulti.Fanout(handlers...))
}

// Nop returns a logger that discards every record.
func Nop() *slog.Logger {
	return slog.New(discardHandler{})
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
