// Package core provides a small, stable facade over bugsniff's internal
// analysis engine for external integrations. It deliberately re-exports a
// narrow API surface so other tools can depend on a stable import path
// without reaching into internal implementation packages.
//
// Example:
//
//	cfg := core.Config{Root: ".", Threads: 0}
//	summary, err := core.Scan(cfg)
//	if err != nil { /* handle */ }
//	_ = core.MarshalSummary(os.Stdout, summary)
package core
