package ui

import (
	"context"
	"errors"
	"io"
	"log/slog"
)

// MultiHandler fans each record out to every wrapped handler that accepts it.
type MultiHandler struct {
	handlers []slog.Handler
}

// NewMultiHandler returns a handler that writes to all of hs.
func NewMultiHandler(hs ...slog.Handler) *MultiHandler {
	return &MultiHandler{handlers: hs}
}

// Enabled reports whether any wrapped handler accepts level.
func (m *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range m.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		next[i] = h.WithAttrs(attrs)
	}
	return &MultiHandler{handlers: next}
}

func (m *MultiHandler) WithGroup(name string) slog.Handler {
	next := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		next[i] = h.WithGroup(name)
	}
	return &MultiHandler{handlers: next}
}

// LogOptions selects where diagnostics go.
type LogOptions struct {
	Stderr  io.Writer
	Quiet   bool      // discard stderr diagnostics entirely
	Verbose bool      // include debug records on stderr
	File    io.Writer // optional JSON sink, always at debug level
}

// NewLogger builds the process logger from opts.
func NewLogger(opts LogOptions) *slog.Logger {
	var stderrHandler slog.Handler = slog.DiscardHandler
	if !opts.Quiet && opts.Stderr != nil {
		level := slog.LevelInfo
		if opts.Verbose {
			level = slog.LevelDebug
		}
		stderrHandler = slog.NewTextHandler(opts.Stderr, &slog.HandlerOptions{Level: level})
	}
	if opts.File == nil {
		return slog.New(stderrHandler)
	}
	jsonHandler := slog.NewJSONHandler(opts.File, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(NewMultiHandler(stderrHandler, jsonHandler))
}
