package ggapp

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggapp/platform"
	"github.com/gogpu/ggapp/probe"
)

// fakeAdapter records lifecycle calls and drives the app a fixed number
// of frames without any window or GPU.
type fakeAdapter struct {
	name    string
	frames  int
	initErr error
	runErr  error

	initCalled  bool
	runCalled   bool
	closeCalled bool
}

func (f *fakeAdapter) Name() string { return f.name }

func (f *fakeAdapter) Init(appName string, cfg BackendConfiguration) error {
	f.initCalled = true
	return f.initErr
}

func (f *fakeAdapter) Close() { f.closeCalled = true }

func (f *fakeAdapter) Run(factory AppFactory, interop *BackendInterop) error {
	f.runCalled = true
	if f.runErr != nil {
		return f.runErr
	}
	dc := gg.NewContext(8, 8)
	defer dc.Close()
	app := factory(dc)
	for i := 0; i < f.frames; i++ {
		app.Update(dc, interop)
	}
	return nil
}

// countingApp counts Update and lifecycle callbacks.
type countingApp struct {
	updates int
	exits   int
	saved   bool
}

func (a *countingApp) Update(dc *gg.Context, backend *BackendInterop) { a.updates++ }
func (a *countingApp) OnExit()                                        { a.exits++ }
func (a *countingApp) Save(st Storage)                                { a.saved = true }

// testRunner wires a runner to fixed signals, a stubbed probe, and a
// fake adapter.
func testRunner(sig platform.Signals, cfg BackendConfiguration, ad *fakeAdapter, app App) (*runner, *int) {
	probeCalls := 0
	r := newRunner("runner-test", cfg, func(dc *gg.Context) App { return app })
	r.collect = func() platform.Signals { return sig }
	r.probe = func() probe.Result {
		probeCalls++
		return probe.Result{GL: platform.GLVersion{Major: 4, Minor: 6}}
	}
	r.adapterFor = func(kind BackendKind) Adapter { return ad }
	return r, &probeCalls
}

func TestRunnerDelegatesLifecycle(t *testing.T) {
	ad := &fakeAdapter{name: "fake", frames: 5}
	app := &countingApp{}
	sig := platform.Signals{OS: platform.OSLinux, DisplayServer: platform.DisplayWayland}
	r, probeCalls := testRunner(sig, autoCfg(), ad, app)

	if err := r.run(); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !ad.initCalled || !ad.runCalled || !ad.closeCalled {
		t.Errorf("adapter lifecycle: init=%v run=%v close=%v, want all true",
			ad.initCalled, ad.runCalled, ad.closeCalled)
	}
	if app.updates != 5 {
		t.Errorf("app updates = %d, want 5", app.updates)
	}
	if app.exits != 1 {
		t.Errorf("OnExit calls = %d, want 1", app.exits)
	}
	if *probeCalls != 0 {
		t.Errorf("probe calls = %d, want 0 (wayland settles the choice)", *probeCalls)
	}
	if r.phase != phaseTerminated {
		t.Errorf("final phase = %v, want %v", r.phase, phaseTerminated)
	}
}

func TestRunnerProbesOnlyWhenNeeded(t *testing.T) {
	ad := &fakeAdapter{name: "fake", frames: 1}
	sig := platform.Signals{OS: platform.OSWindows} // no RDP, no virt → probe
	r, probeCalls := testRunner(sig, autoCfg(), ad, &countingApp{})

	if err := r.run(); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if *probeCalls != 1 {
		t.Errorf("probe calls = %d, want 1", *probeCalls)
	}
}

func TestRunnerForcedBackendSkipsProbe(t *testing.T) {
	ad := &fakeAdapter{name: "fake", frames: 1}
	sig := platform.Signals{OS: platform.OSWindows}
	cfg := autoCfg().WithForcedBackend(Software)
	r, probeCalls := testRunner(sig, cfg, ad, &countingApp{})

	if err := r.run(); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if *probeCalls != 0 {
		t.Errorf("probe calls = %d, want 0 under forced backend", *probeCalls)
	}
}

func TestRunnerSurfacesInitFailure(t *testing.T) {
	wantErr := errors.New("no display")
	ad := &fakeAdapter{name: "fake", initErr: wantErr}
	sig := platform.Signals{OS: platform.OSDarwin}
	r, _ := testRunner(sig, autoCfg(), ad, &countingApp{})

	err := r.run()
	if !errors.Is(err, wantErr) {
		t.Fatalf("run() error = %v, want wrapped %v", err, wantErr)
	}
	if ad.runCalled {
		t.Error("Run called after failed Init")
	}
	if r.phase != phaseTerminated {
		t.Errorf("final phase = %v, want %v", r.phase, phaseTerminated)
	}
}

func TestRunnerSurfacesRunFailure(t *testing.T) {
	wantErr := errors.New("loop crashed")
	ad := &fakeAdapter{name: "fake", runErr: wantErr}
	sig := platform.Signals{OS: platform.OSDarwin}
	r, _ := testRunner(sig, autoCfg(), ad, &countingApp{})

	if err := r.run(); !errors.Is(err, wantErr) {
		t.Fatalf("run() error = %v, want wrapped %v", err, wantErr)
	}
	if !ad.closeCalled {
		t.Error("adapter not closed after run failure")
	}
}

func TestRunnerMissingAdapter(t *testing.T) {
	sig := platform.Signals{OS: platform.OSDarwin}
	r, _ := testRunner(sig, autoCfg(), nil, &countingApp{})
	r.adapterFor = func(BackendKind) Adapter { return nil }

	if err := r.run(); !errors.Is(err, ErrBackendNotAvailable) {
		t.Fatalf("run() error = %v, want ErrBackendNotAvailable", err)
	}
}

func TestRunRejectsNilFactory(t *testing.T) {
	if err := Run("x", DefaultConfiguration(), nil); !errors.Is(err, ErrNilAppFactory) {
		t.Fatalf("Run(nil factory) error = %v, want ErrNilAppFactory", err)
	}
}

func TestRunRejectsOverlappingRuns(t *testing.T) {
	if !running.CompareAndSwap(false, true) {
		t.Fatal("runner guard already held")
	}
	defer running.Store(false)

	err := Run("x", DefaultConfiguration(), func(dc *gg.Context) App { return &countingApp{} })
	if !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("Run() during active run error = %v, want ErrAlreadyRunning", err)
	}
}

func TestRunPhaseSequence(t *testing.T) {
	var phases []runPhase
	ad := &fakeAdapter{name: "fake", frames: 1}
	sig := platform.Signals{OS: platform.OSWindows}
	r, _ := testRunner(sig, autoCfg(), ad, &countingApp{})

	// Wrap enter by replaying through the recorded field after run.
	orig := r.probe
	r.probe = func() probe.Result {
		phases = append(phases, r.phase)
		return orig()
	}
	origAdapterFor := r.adapterFor
	r.adapterFor = func(k BackendKind) Adapter {
		phases = append(phases, r.phase)
		return origAdapterFor(k)
	}

	if err := r.run(); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	want := []runPhase{phaseProbing, phaseDelegating}
	if len(phases) != len(want) {
		t.Fatalf("observed phases = %v, want %v", phases, want)
	}
	for i := range want {
		if phases[i] != want[i] {
			t.Errorf("phase[%d] = %v, want %v", i, phases[i], want[i])
		}
	}
}
