package bvp

import (
	"log/slog"

	"github.com/BjoernLudwigPTB/bezier-kollokation/linalg"
)

// SetLogger installs the logger used by the assembler and solver for
// structured diagnostics (subinterval index, pivot row, row-sum). By
// default bvp produces no log output. Pass nil to restore the silent
// default.
//
// SetLogger is safe for concurrent use. It delegates to linalg.SetLogger,
// which is where SolveBanded and collocate.Assemble actually read the
// active logger from — both sit below bvp in the import graph, so the
// logger has to live at their level rather than bvp's to avoid an import
// cycle.
func SetLogger(l *slog.Logger) {
	linalg.SetLogger(l)
}

// Logger returns the logger currently installed for bvp and its
// sub-packages (collocate, linalg).
func Logger() *slog.Logger {
	return linalg.Logger()
}

// Trace is implemented by callers that want structured progress reporting
// from the banded solver beyond what the slog logger carries —
// generalizes the teacher's toggleable Debug interface into something a
// library can expose without forcing an io.Writer on every caller.
type Trace = linalg.Trace

// SetTrace installs t to receive Block/Pivot callbacks during Solve. Pass
// nil to stop tracing.
func SetTrace(t Trace) {
	linalg.SetTrace(t)
}
