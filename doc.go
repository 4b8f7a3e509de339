// Package ggapp selects a rendering backend at application start and
// runs a gg application on it.
//
// # Overview
//
// Some hosts cannot reliably drive GPU-accelerated rendering: forwarded
// X11 displays, RDP sessions, virtual machines with incomplete guest GL
// drivers, bare installs without GPU drivers. ggapp decides — once, at
// startup, from heuristic platform signals and an optional offscreen
// capability probe — whether to run the application on the accelerated
// gogpu backend or on gg's CPU software rasterizer, then delegates the
// application's lifecycle to whichever backend was chosen.
//
// # Quick Start
//
//	type myApp struct{}
//
//	func (m *myApp) Update(dc *gg.Context, backend *ggapp.BackendInterop) {
//		dc.ClearWithColor(gg.White)
//		dc.SetRGB(0.2, 0.4, 0.8)
//		dc.DrawCircle(256, 256, 100)
//		dc.Fill()
//	}
//
//	func main() {
//		cfg := ggapp.DefaultConfiguration().WithTitle("hello").WithSize(512, 512)
//		if err := ggapp.Run("hello", cfg, func(dc *gg.Context) ggapp.App {
//			return &myApp{}
//		}); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Selection Policy
//
// First match wins, in confidence order: explicit override (including
// the GGAPP_BACKEND environment variable), always-capable OS family
// (macOS, BSD), Wayland, local vs. remote X11, RDP session,
// virtualization guest drivers, and finally a real offscreen context
// probe against the GL 3.2 floor. Every unreadable signal fails toward
// the software backend. The policy is deliberately heuristic: it cannot
// recognize every hypervisor or driver, and absence of a signal is not
// a negative result.
//
// Selection happens exactly once per run; there is no fallback to the
// other backend after delegation.
//
// # Diagnostics
//
// By default ggapp logs nothing. Call SetLogger to see signals, the
// decision and its reason, and adapter lifecycle events. The
// ggapp-doctor command prints the same pipeline for the current host.
package ggapp
