package ggapp

import (
	"fmt"
	"time"

	"github.com/gogpu/gg"
)

// softwareAdapter renders every frame on the CPU with gg's software
// rasterizer. No GPU driver, window system, or graphics context is
// touched; frames are delivered to the configured FrameHandler.
type softwareAdapter struct {
	dc  *gg.Context
	cfg BackendConfiguration
}

// init registers the software adapter on package import.
func init() {
	RegisterAdapter(Software, func() Adapter {
		return &softwareAdapter{}
	})
}

// Name returns the adapter identifier.
func (a *softwareAdapter) Name() string {
	return BackendNameSoftware
}

// Init creates the CPU drawing context.
func (a *softwareAdapter) Init(appName string, cfg BackendConfiguration) error {
	width, height := cfg.Size()
	a.dc = gg.NewContext(width, height)
	a.cfg = cfg
	return nil
}

// Close releases the drawing context.
func (a *softwareAdapter) Close() {
	if a.dc != nil {
		_ = a.dc.Close()
		a.dc = nil
	}
}

// Run drives the fixed-rate frame loop: update, present, pace. The loop
// exits when the app requests quit, the frame budget is exhausted, or
// the frame handler fails.
func (a *softwareAdapter) Run(factory AppFactory, interop *BackendInterop) error {
	interop.image = a.dc.Image

	app := factory(a.dc)

	fps := a.cfg.targetFPS
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	frames := 0
	for {
		start := time.Now()
		app.Update(a.dc, interop)
		if a.cfg.onFrame != nil {
			if err := a.cfg.onFrame(a.dc.Image()); err != nil {
				return fmt.Errorf("frame handler: %w", err)
			}
		}
		interop.setLastFrame(time.Since(start))
		frames++

		// Exit checks come before the tick wait so the final frame does
		// not pay an extra idle frame period.
		if interop.quitRequested() {
			return nil
		}
		if a.cfg.maxFrames > 0 && frames >= a.cfg.maxFrames {
			return nil
		}

		<-ticker.C
	}
}
