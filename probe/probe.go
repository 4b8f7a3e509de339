// Package probe determines real driver-reported GPU capability by
// creating a minimal offscreen rendering context, querying it, and
// releasing it unconditionally.
//
// The probe is the weakest and most expensive signal in the backend
// decision, so it runs last and only when no stronger signal settled the
// choice. It never fails the run: any creation or query error is absorbed
// into an unknown version, which the decision treats as insufficient for
// acceleration.
package probe

import (
	"strconv"
	"strings"

	"github.com/gogpu/ggapp/platform"
)

// Result is the outcome of a successful capability probe.
type Result struct {
	// GL is the driver-reported capability version. Zero when unknown.
	GL platform.GLVersion
	// Adapter is the GPU adapter name (e.g. "NVIDIA GeForce RTX 3080").
	Adapter string
	// Driver is the driver version string as reported by the adapter.
	Driver string
}

// Prober creates a scoped offscreen context and reports its capability.
// Implementations must release every acquired resource on every exit
// path, including failures.
type Prober interface {
	Probe() (Result, error)
}

// Run executes the default offscreen probe and absorbs failures: on any
// error it logs at Warn and returns a zero Result (version unknown).
// An unprobable system is assumed incapable of acceleration.
func Run() Result {
	res, err := New().Probe()
	if err != nil {
		logger().Warn("probe: offscreen context probe failed", "error", err)
		return Result{}
	}
	logger().Debug("probe: capability probed",
		"adapter", res.Adapter,
		"driver", res.Driver,
		"gl", res.GL,
	)
	return res
}

// webgpuBaseline is the capability reported when the offscreen device was
// created through a modern API (Vulkan, Metal, DX12) whose driver string
// carries no GL-style version. Hardware that opens a WebGPU device sits
// strictly above the GL 3.2 floor; 4.3 is the conventional equivalence.
var webgpuBaseline = platform.GLVersion{Major: 4, Minor: 3}

// versionFromDriver derives a capability version from an adapter's driver
// string. GL-flavored drivers report a leading "major.minor"; everything
// else (marketing versions, empty strings) falls back to the WebGPU
// baseline, since the device was already created successfully.
func versionFromDriver(driver string) platform.GLVersion {
	if v, ok := parseGLVersion(driver); ok {
		return v
	}
	return webgpuBaseline
}

// parseGLVersion extracts a leading GL-style "major.minor" pair from a
// driver version string (e.g. "3.1 Mesa 23.2.1" or "4.6.0 NVIDIA 535.146").
// Values outside the plausible GL range are rejected.
func parseGLVersion(s string) (platform.GLVersion, bool) {
	s = strings.TrimSpace(s)
	head, _, _ := strings.Cut(s, " ")
	major, rest, ok := strings.Cut(head, ".")
	if !ok {
		return platform.GLVersion{}, false
	}
	minor, _, _ := strings.Cut(rest, ".")

	maj, err := strconv.Atoi(major)
	if err != nil {
		return platform.GLVersion{}, false
	}
	min, err := strconv.Atoi(minor)
	if err != nil {
		return platform.GLVersion{}, false
	}
	if maj < 1 || maj > 4 || min < 0 || min > 9 {
		return platform.GLVersion{}, false
	}
	return platform.GLVersion{Major: maj, Minor: min}, true
}
