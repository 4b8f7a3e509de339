package ggapp

import "errors"

// Errors surfaced by Run. Probing-stage anomalies are never among them:
// collectors and the probe absorb their failures into safe defaults. Only
// adapter-level failures, after a backend has been committed to, reach
// the caller — and they are terminal, never retried against the other
// backend.
var (
	// ErrAlreadyRunning is returned when Run is called while another
	// application run is in progress in this process.
	ErrAlreadyRunning = errors.New("ggapp: application already running")

	// ErrBackendNotAvailable is returned when no adapter is registered
	// for the selected backend kind.
	ErrBackendNotAvailable = errors.New("ggapp: backend not available")

	// ErrNilAppFactory is returned when Run is called without a factory.
	ErrNilAppFactory = errors.New("ggapp: nil app factory")
)
