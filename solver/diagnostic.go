package solver

import "log/slog"

// Diagnostic reports that an assembled matrix failed the
// IsSymmetricAndFinite assertion: a programmer error in the B2B/anchor
// assembly, not a data problem. The affected solve is aborted and that
// iteration is skipped; nothing is retried internally.
type Diagnostic struct {
	Axis   string // "X" or "Y"
	Reason string
}

// OnDiagnostic receives every Diagnostic raised while building a linear
// system. The default logs via slog, matching this codebase's Trace
// convention elsewhere (see package place); callers that want the error
// surfaced differently may replace it before calling BuildSystem.
var OnDiagnostic = func(d Diagnostic) {
	slog.Error("solver diagnostic", "axis", d.Axis, "reason", d.Reason)
}
