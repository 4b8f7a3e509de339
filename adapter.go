package ggapp

import "sync"

// Adapter is the capability interface both rendering backends implement:
// an identical lifecycle contract wrapping the underlying library.
//
// Init commits resources for the coming run; Run blocks for the
// application's entire lifetime, building the user app through the
// factory once a drawing context exists; Close releases whatever Init
// acquired. Once Run is entered, the selection engine is finished — the
// event loop and frame dispatch belong to the adapter.
type Adapter interface {
	// Name returns the adapter identifier (e.g. "gogpu", "software").
	Name() string

	// Init prepares the backend for the named application.
	Init(appName string, cfg BackendConfiguration) error

	// Run drives the application until its loop exits.
	Run(factory AppFactory, interop *BackendInterop) error

	// Close releases all backend resources.
	Close()
}

// AdapterFactory creates a new adapter instance.
type AdapterFactory func() Adapter

// adapterRegistry holds the registered adapters, keyed by backend kind.
var (
	adapterMu sync.RWMutex
	adapters  = make(map[BackendKind]AdapterFactory)
)

// RegisterAdapter registers an adapter factory for a backend kind,
// replacing any previous registration. Both built-in adapters register
// themselves on package init; replacing them is useful for tests.
func RegisterAdapter(kind BackendKind, factory AdapterFactory) {
	adapterMu.Lock()
	defer adapterMu.Unlock()
	adapters[kind] = factory
}

// adapterFor returns a fresh adapter for the kind, or nil if none is
// registered.
func adapterFor(kind BackendKind) Adapter {
	adapterMu.RLock()
	factory, ok := adapters[kind]
	adapterMu.RUnlock()
	if !ok {
		return nil
	}
	return factory()
}

// RegisteredBackends returns the kinds that currently have an adapter.
func RegisteredBackends() []BackendKind {
	adapterMu.RLock()
	defer adapterMu.RUnlock()
	kinds := make([]BackendKind, 0, len(adapters))
	for kind := range adapters {
		kinds = append(kinds, kind)
	}
	return kinds
}
