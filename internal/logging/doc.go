// Package logging provides a unified logging interface for stencilcalc.
// It abstracts the underlying zerolog implementation so that strategies,
// orchestration and the application layer log through the same Logger
// with structured fields.
package logging
