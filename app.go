package ggapp

import "github.com/gogpu/gg"

// App is the user application driven by whichever backend was selected.
type App interface {
	// Update is called once per rendered frame with the drawing context
	// and a handle to the active backend. The interop handle is only
	// valid for the duration of the call.
	Update(dc *gg.Context, backend *BackendInterop)
}

// AppFactory builds the user application once the backend's drawing
// context exists. The accelerated backend creates its context lazily on
// the first frame, so the factory may run after Run has been delegated.
type AppFactory func(dc *gg.Context) App

// ExitHandler is implemented by apps that want a callback when the run
// loop exits normally.
type ExitHandler interface {
	OnExit()
}

// Saver is implemented by apps that persist state. Save is called once
// before OnExit when persistence is enabled in the configuration; the
// storage is flushed afterwards.
type Saver interface {
	Save(st Storage)
}
