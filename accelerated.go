package ggapp

import (
	"fmt"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"

	// Register gg's GPU accelerator so canvas drawing runs on the GPU.
	_ "github.com/gogpu/gg/gpu"
)

// acceleratedAdapter runs the application in a gogpu window, drawing
// through a ggcanvas bridge so gg content renders with GPU acceleration.
// The window's own event loop owns all control flow after Run is entered.
type acceleratedAdapter struct {
	app *gogpu.App
}

// init registers the accelerated adapter on package import.
func init() {
	RegisterAdapter(Accelerated, func() Adapter {
		return &acceleratedAdapter{}
	})
}

// Name returns the adapter identifier.
func (a *acceleratedAdapter) Name() string {
	return BackendNameGoGPU
}

// Init creates the gogpu application for the coming run. Window and
// surface creation happen inside Run's event loop, so failures there
// surface from Run, not here.
func (a *acceleratedAdapter) Init(appName string, cfg BackendConfiguration) error {
	title := cfg.Title()
	if title == "" {
		title = appName
	}
	width, height := cfg.Size()

	a.app = gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(title).
		WithSize(width, height))
	return nil
}

// Close releases the accelerator's GPU session resources. Window and
// canvas resources are released by the gogpu resource tracker when the
// run loop shuts down.
func (a *acceleratedAdapter) Close() {
	a.app = nil
}

// Run enters the window's event loop and blocks until it exits. The user
// app and its canvas are created lazily on the first frame, once the
// surface has a real size and a GPU context provider exists.
func (a *acceleratedAdapter) Run(factory AppFactory, interop *BackendInterop) error {
	var (
		canvas *ggcanvas.Canvas
		app    App
	)

	a.app.OnDraw(func(dc *gogpu.Context) {
		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 {
			return
		}

		if canvas == nil {
			provider := a.app.GPUContextProvider()
			if provider == nil {
				return
			}
			c, err := ggcanvas.New(provider, w, h)
			if err != nil {
				Logger().Warn("ggapp: canvas creation failed", "error", err)
				return
			}
			canvas = c
			interop.provider = provider
		}

		if cw, ch := canvas.Size(); cw != w || ch != h {
			if err := canvas.Resize(w, h); err != nil {
				Logger().Warn("ggapp: canvas resize failed", "error", err)
				return
			}
		}

		if app == nil {
			app = factory(canvas.Context())
		}

		start := time.Now()
		if err := canvas.Draw(func(cc *gg.Context) {
			app.Update(cc, interop)
		}); err != nil {
			Logger().Warn("ggapp: draw failed", "error", err)
			return
		}
		if err := canvas.RenderTo(dc.AsTextureDrawer()); err != nil {
			Logger().Warn("ggapp: present failed", "error", err)
			return
		}
		interop.setLastFrame(time.Since(start))
	})

	// Drain the GPU queue and destroy session resources while the
	// device is still alive.
	a.app.OnClose(func() {
		gg.CloseAccelerator()
	})

	if err := a.app.Run(); err != nil {
		return fmt.Errorf("gogpu run loop: %w", err)
	}
	return nil
}
