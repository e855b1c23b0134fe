// Package trace implements the optional per-instruction execution trace:
// a write-only diagnostic, routed through the same structured logger as
// startup/shutdown messages, that never participates in control flow.
package trace

import (
	"log/slog"
	"strings"

	"github.com/synacorvm/synacorvm/util/hex"
)

// Tracer logs one line per executed instruction at Debug level. A nil
// *Tracer is valid and simply discards every call, so the interpreter can
// hold an always-present field and skip a separate enabled/disabled
// branch at each fetch.
type Tracer struct {
	log *slog.Logger
}

// New builds a Tracer that writes through log.
func New(log *slog.Logger) *Tracer {
	return &Tracer{log: log}
}

// Instr records one executed instruction: its address, mnemonic, and raw
// operand words (before operand resolution).
func (t *Tracer) Instr(pc uint16, mnemonic string, operands []uint16) {
	if t == nil {
		return
	}
	var b strings.Builder
	hex.FormatWord(&b, operands)
	t.log.Debug("exec",
		slog.Int("pc", int(pc)),
		slog.String("op", mnemonic),
		slog.Any("operands", operands),
		slog.String("operands_hex", strings.TrimSpace(b.String())),
	)
}
