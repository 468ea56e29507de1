// Package orchestration runs averaging strategies concurrently over a shared
// source grid and cross-checks their outputs against the sequential
// reference. It decouples execution from presentation via the
// ProgressReporter and ResultPresenter interfaces.
package orchestration
