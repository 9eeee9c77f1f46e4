// Package telemetry defines the small, abstract logger and metrics seam
// that the catalog, schema, and foundry components accept (spec §4.H).
//
// Components never import log/slog or a metrics client directly; they
// depend only on [Logger] and [Metrics]. A zero-value [NoopLogger] and
// [NoopMetrics] satisfy both interfaces as side-effect-free defaults. A
// caller wanting real output backs [Logger] with a [log/slog.Logger] built
// via the sibling log package (see [NewSlogLogger]), which in turn supports
// the JSON/logfmt handlers and CLI flag wiring described in that package's
// documentation.
package telemetry
