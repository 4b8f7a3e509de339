package ggapp

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggapp/platform"
	"github.com/gogpu/ggapp/probe"
)

// runPhase is the runner's state. Transitions are strictly sequential
// and non-retrying: Collecting → Probing (only when the decision needs
// the capability probe) → Deciding → Delegating → Terminated.
type runPhase uint8

const (
	phaseCollecting runPhase = iota
	phaseProbing
	phaseDeciding
	phaseDelegating
	phaseTerminated
)

// String returns the phase name.
func (p runPhase) String() string {
	switch p {
	case phaseCollecting:
		return "collecting"
	case phaseProbing:
		return "probing"
	case phaseDeciding:
		return "deciding"
	case phaseDelegating:
		return "delegating"
	case phaseTerminated:
		return "terminated"
	default:
		return "invalid"
	}
}

// running guards against overlapping runs in one process. It is released
// when Run returns, so sequential runs (tests, relaunch after exit) work.
var running atomic.Bool

// runner orchestrates one selection-and-delegation cycle. The collect,
// probe, and adapter lookups are function fields so tests can drive the
// pipeline without a display or GPU.
type runner struct {
	name    string
	cfg     BackendConfiguration
	factory AppFactory

	collect    func() platform.Signals
	probe      func() probe.Result
	adapterFor func(BackendKind) Adapter

	phase runPhase
}

// newRunner wires a runner to the real collectors, probe, and registry.
func newRunner(name string, cfg BackendConfiguration, factory AppFactory) *runner {
	return &runner{
		name:       name,
		cfg:        cfg,
		factory:    factory,
		collect:    platform.Collect,
		probe:      probe.Run,
		adapterFor: adapterFor,
	}
}

// Run selects a rendering backend for the host and runs the application
// on it. It blocks for the application's entire lifetime and returns
// when the backend's run loop exits normally.
//
// Selection is synchronous and happens exactly once, on the calling
// goroutine, before any rendering begins. Call Run from the main
// goroutine: windowing backends require it on most platforms.
//
// The only failures Run reports after selection are adapter-level ones
// (init or run loop); there is no automatic fallback to the other
// backend, because a failure after selection indicates an environment
// mismatch that re-selection cannot fix safely.
func Run(name string, cfg BackendConfiguration, factory AppFactory) error {
	if factory == nil {
		return ErrNilAppFactory
	}
	if !running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer running.Store(false)

	return newRunner(name, cfg, factory).run()
}

// run executes the phase machine.
func (r *runner) run() error {
	r.enter(phaseCollecting)
	sig := r.collect()

	if needsProbe(sig, r.cfg) {
		r.enter(phaseProbing)
		sig.GL = r.probe().GL
	}

	r.enter(phaseDeciding)
	decision := Decide(sig, r.cfg)
	Logger().Info("ggapp: backend selected",
		"backend", decision.Kind,
		"reason", decision.Reason,
	)

	r.enter(phaseDelegating)
	err := r.delegate(decision.Kind)

	r.enter(phaseTerminated)
	return err
}

// delegate hands control to the chosen adapter for the rest of the
// application's lifetime.
func (r *runner) delegate(kind BackendKind) error {
	adapter := r.adapterFor(kind)
	if adapter == nil {
		return fmt.Errorf("%w: %s", ErrBackendNotAvailable, kind)
	}

	if err := adapter.Init(r.name, r.cfg); err != nil {
		return fmt.Errorf("ggapp: %s backend init: %w", adapter.Name(), err)
	}
	defer adapter.Close()

	var st Storage
	if r.cfg.persistent {
		fs, err := openFileStorage(r.name)
		if err != nil {
			Logger().Warn("ggapp: persistence unavailable", "error", err)
		} else {
			st = fs
		}
	}

	// Capture the app the adapter builds so lifecycle hooks can run
	// after the loop exits, whichever backend drove it.
	var app App
	factory := func(dc *gg.Context) App {
		app = r.factory(dc)
		return app
	}

	interop := newInterop(kind, adapter.Name())
	runErr := adapter.Run(factory, interop)

	if app != nil {
		if saver, ok := app.(Saver); ok && st != nil {
			saver.Save(st)
			if err := st.Flush(); err != nil {
				Logger().Warn("ggapp: saving state failed", "error", err)
			}
		}
		if exiter, ok := app.(ExitHandler); ok {
			exiter.OnExit()
		}
	}

	if runErr != nil {
		return fmt.Errorf("ggapp: %s backend run: %w", adapter.Name(), runErr)
	}
	return nil
}

// enter advances the phase machine.
func (r *runner) enter(p runPhase) {
	r.phase = p
	Logger().Debug("ggapp: runner phase", "phase", p)
}
