// Package logger provides the structured-logging handler used by the
// synacorvm CLI: a slog.Handler that always writes to standard error,
// and optionally tees to a log file, formatting each record as a single
// line of "timestamp level message attr...".
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Handler is a slog.Handler that renders one line per record and fans
// it out to stderr and an optional file sink under a shared mutex.
type Handler struct {
	out   io.Writer // optional extra sink (e.g. a log file); may be nil
	level slog.Leveler
	mu    *sync.Mutex
	attrs []slog.Attr
}

// New builds a Handler. file may be nil to log only to stderr. opts may
// be nil, in which case the default slog level (Info) applies.
func New(file io.Writer, opts *slog.HandlerOptions) *Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{
		out:   file,
		level: level,
		mu:    &sync.Mutex{},
	}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &Handler{out: h.out, level: h.level, mu: h.mu, attrs: merged}
}

func (h *Handler) WithGroup(_ string) slog.Handler {
	// No group namespacing: a one-line CLI log has no nested attribute
	// trees worth prefixing.
	return h
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	strs := make([]string, 0, 3+r.NumAttrs()+len(h.attrs))
	strs = append(strs, r.Time.Format("2006/01/02 15:04:05"), r.Level.String()+":", r.Message)

	for _, a := range h.attrs {
		strs = append(strs, a.String())
	}
	r.Attrs(func(a slog.Attr) bool {
		strs = append(strs, a.String())
		return true
	})

	line := []byte(strings.Join(strs, " ") + "\n")

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := os.Stderr.Write(line)
	if h.out != nil {
		if _, ferr := h.out.Write(line); ferr != nil && err == nil {
			err = ferr
		}
	}
	return err
}
