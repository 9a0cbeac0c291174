package place

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
)

// LevelTrace is a custom slog level one step above Info, mirroring this
// codebase's convention elsewhere for per-iteration placement detail
// that's too chatty for Info but still worth a toggle.
const LevelTrace slog.Level = slog.LevelInfo + 1

// TraceEnabled gates Trace output. It is false by default; callers flip
// it on to see per-iteration detail during debugging.
var TraceEnabled = false

// Trace logs msg at LevelTrace when TraceEnabled is set.
func Trace(msg string, args ...any) {
	if !TraceEnabled {
		return
	}
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// DiagnosticsTable renders this session's iteration history as a table:
// iteration, solve mode, anchor strength, recorded cost and best cost.
// It is a pure read of already-recorded history, never a placement
// input.
func (s *Session) DiagnosticsTable() string {
	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("placement session %s", s.id))
	t.AppendHeader(table.Row{"iteration", "solveMode", "pseudoWeightFactor", "cost", "bestCost"})

	for _, rec := range s.history {
		t.AppendRow(table.Row{rec.Iteration, rec.SolveMode, rec.PseudoWeightFactor, rec.Cost, rec.BestCost})
	}

	return t.Render()
}
