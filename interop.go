package ggapp

import (
	"image"
	"sync/atomic"
	"time"

	"github.com/gogpu/gpucontext"
)

// BackendInterop is the per-frame handle to the active backend. It is
// owned by the runner and borrowed by App.Update for the duration of each
// call: read-only identity plus backend-specific escape hatches.
type BackendInterop struct {
	kind BackendKind
	name string

	provider  gpucontext.DeviceProvider
	image     func() image.Image
	quit      func()
	lastFrame atomic.Int64 // nanoseconds
	quitFlag  atomic.Bool
}

// newInterop creates the handle for a committed backend. Adapters fill
// the escape hatches they support before entering their run loop.
func newInterop(kind BackendKind, name string) *BackendInterop {
	return &BackendInterop{kind: kind, name: name}
}

// Kind returns the selected backend kind.
func (b *BackendInterop) Kind() BackendKind { return b.kind }

// BackendName returns the active adapter's name ("gogpu" or "software").
func (b *BackendInterop) BackendName() string { return b.name }

// GPUContextProvider exposes the accelerated backend's GPU device
// provider for sharing resources with other gogpu consumers.
// It returns nil on the software backend, and on the accelerated backend
// before the first frame.
func (b *BackendInterop) GPUContextProvider() gpucontext.DeviceProvider {
	return b.provider
}

// Image returns the current CPU frame on the software backend.
// It returns nil on the accelerated backend.
func (b *BackendInterop) Image() image.Image {
	if b.image == nil {
		return nil
	}
	return b.image()
}

// LastFrameTime returns how long the previous frame's update and present
// took. Zero before the second frame.
func (b *BackendInterop) LastFrameTime() time.Duration {
	return time.Duration(b.lastFrame.Load())
}

// RequestQuit asks the active backend to stop its run loop. The software
// backend stops after the current frame. On the accelerated backend
// shutdown belongs to the window (close event), so this is a no-op there.
func (b *BackendInterop) RequestQuit() {
	b.quitFlag.Store(true)
	if b.quit != nil {
		b.quit()
	}
}

// quitRequested reports whether RequestQuit has been called.
func (b *BackendInterop) quitRequested() bool {
	return b.quitFlag.Load()
}

// setLastFrame records the previous frame's duration.
func (b *BackendInterop) setLastFrame(d time.Duration) {
	b.lastFrame.Store(int64(d))
}
