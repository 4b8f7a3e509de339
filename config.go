package ggapp

import (
	"image"
	"os"
)

// envBackend forces a backend from the environment, in the spirit of
// LIBGL_ALWAYS_SOFTWARE: "software" or "accelerated" ("gogpu" also
// accepted). Read by DefaultConfiguration, so an explicit
// WithForcedBackend in code still wins.
const envBackend = "GGAPP_BACKEND"

// FrameHandler receives each frame rendered by the software backend.
// The image is only valid for the duration of the call. Returning an
// error stops the run loop and surfaces from Run.
type FrameHandler func(frame image.Image) error

// BackendConfiguration carries the caller's policy knobs and window
// options. It is immutable for the lifetime of a run: every With method
// returns a modified copy, in the builder style of gogpu.DefaultConfig.
type BackendConfiguration struct {
	forced     BackendKind
	hasForced  bool
	noProbe    bool
	title      string
	width      int
	height     int
	targetFPS  int
	onFrame    FrameHandler
	maxFrames  int
	persistent bool
}

// DefaultConfiguration returns the standard configuration: automatic
// backend selection with probing enabled, an 800×600 window, and a 60
// frames-per-second software loop. The GGAPP_BACKEND environment
// variable, when set to a valid kind, pre-forces the backend.
func DefaultConfiguration() BackendConfiguration {
	cfg := BackendConfiguration{
		width:     800,
		height:    600,
		targetFPS: 60,
	}
	if kind, ok := ParseBackendKind(os.Getenv(envBackend)); ok {
		cfg.forced = kind
		cfg.hasForced = true
	}
	return cfg
}

// WithForcedBackend overrides selection outright: the given kind is used
// without consulting any signal or running any probe.
func (c BackendConfiguration) WithForcedBackend(kind BackendKind) BackendConfiguration {
	c.forced = kind
	c.hasForced = true
	return c
}

// WithAutoSelect clears any forced backend (including one injected by the
// GGAPP_BACKEND environment variable).
func (c BackendConfiguration) WithAutoSelect() BackendConfiguration {
	c.forced = Software
	c.hasForced = false
	return c
}

// WithoutProbing disables the offscreen capability probe. When selection
// would otherwise depend on the probe, the software backend is chosen.
func (c BackendConfiguration) WithoutProbing() BackendConfiguration {
	c.noProbe = true
	return c
}

// WithTitle sets the window title. Defaults to the application name
// passed to Run.
func (c BackendConfiguration) WithTitle(title string) BackendConfiguration {
	c.title = title
	return c
}

// WithSize sets the initial surface size in pixels.
func (c BackendConfiguration) WithSize(width, height int) BackendConfiguration {
	if width > 0 && height > 0 {
		c.width = width
		c.height = height
	}
	return c
}

// WithTargetFPS sets the software backend's frame rate. Values <= 0 keep
// the default. The accelerated backend renders at VSync and ignores this.
func (c BackendConfiguration) WithTargetFPS(fps int) BackendConfiguration {
	if fps > 0 {
		c.targetFPS = fps
	}
	return c
}

// WithFrameHandler delivers every software-rendered frame to fn.
// The accelerated backend presents to its own window and ignores this.
func (c BackendConfiguration) WithFrameHandler(fn FrameHandler) BackendConfiguration {
	c.onFrame = fn
	return c
}

// WithMaxFrames stops the software backend's loop after n frames.
// Zero (the default) runs until quit is requested.
func (c BackendConfiguration) WithMaxFrames(n int) BackendConfiguration {
	if n > 0 {
		c.maxFrames = n
	}
	return c
}

// WithPersistence enables on-disk key/value state for apps implementing
// Saver, stored under the user config directory by application name.
func (c BackendConfiguration) WithPersistence() BackendConfiguration {
	c.persistent = true
	return c
}

// ForcedBackend returns the forced kind and whether one is set.
func (c BackendConfiguration) ForcedBackend() (BackendKind, bool) {
	return c.forced, c.hasForced
}

// ProbingDisabled reports whether the offscreen probe is disabled.
func (c BackendConfiguration) ProbingDisabled() bool {
	return c.noProbe
}

// Size returns the configured surface size.
func (c BackendConfiguration) Size() (width, height int) {
	return c.width, c.height
}

// Title returns the configured window title ("" means the app name).
func (c BackendConfiguration) Title() string {
	return c.title
}
