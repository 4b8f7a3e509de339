// Package platform collects the capability signals the backend decision
// is made from: OS family, display-server identity, remote-session status,
// and virtualization driver presence.
//
// Collection never fails: a signal that cannot be read is reported as
// unknown/absent, and the decision policy treats it as the safe default.
// Collectors read OS state (environment, registry, session metrics) but
// perform no writes and need no elevated privileges.
package platform

import (
	"fmt"
	"strings"
)

// OSFamily classifies the host operating system for the decision policy.
type OSFamily uint8

const (
	// OSUnknown is any platform without a dedicated collector.
	OSUnknown OSFamily = iota
	// OSDarwin is macOS.
	OSDarwin
	// OSBSD covers the BSD family (FreeBSD, NetBSD, OpenBSD, DragonFly).
	OSBSD
	// OSLinux is Linux.
	OSLinux
	// OSWindows is Windows.
	OSWindows
)

// String returns the family name.
func (f OSFamily) String() string {
	switch f {
	case OSDarwin:
		return "darwin"
	case OSBSD:
		return "bsd"
	case OSLinux:
		return "linux"
	case OSWindows:
		return "windows"
	default:
		return "unknown"
	}
}

// DisplayServer identifies the active display-server protocol on Linux.
type DisplayServer uint8

const (
	// DisplayNone means no display server was detected.
	DisplayNone DisplayServer = iota
	// DisplayX11 means an X11 connection is active.
	DisplayX11
	// DisplayWayland means a Wayland compositor is active.
	DisplayWayland
)

// String returns the protocol name.
func (d DisplayServer) String() string {
	switch d {
	case DisplayX11:
		return "x11"
	case DisplayWayland:
		return "wayland"
	default:
		return "none"
	}
}

// VirtDriver identifies a known virtualization guest driver by name.
// Detection is name-based and deliberately unverified against loaded
// drivers; KVM and Hyper-V are never reported (KVM is known-compatible,
// Hyper-V is an absent signal, not a negative result).
type VirtDriver uint8

const (
	// VirtNone means no known virtualization driver name matched.
	VirtNone VirtDriver = iota
	// VirtVirtualBox is the VirtualBox guest OpenGL driver.
	VirtVirtualBox
	// VirtVMware is the VMware 3D guest driver.
	VirtVMware
	// VirtUnknown means driver names could not be enumerated.
	VirtUnknown
)

// String returns the driver name.
func (v VirtDriver) String() string {
	switch v {
	case VirtVirtualBox:
		return "virtualbox"
	case VirtVMware:
		return "vmware"
	case VirtUnknown:
		return "unknown"
	default:
		return "none"
	}
}

// GLVersion is a driver-reported OpenGL capability version.
// The zero value means the version is unknown (probe failed or never ran).
type GLVersion struct {
	Major int
	Minor int
}

// Known reports whether the version was actually probed.
func (v GLVersion) Known() bool { return v.Major > 0 }

// AtLeast reports whether the version is known and >= major.minor.
func (v GLVersion) AtLeast(major, minor int) bool {
	if !v.Known() {
		return false
	}
	if v.Major != major {
		return v.Major > major
	}
	return v.Minor >= minor
}

// String returns "major.minor", or "unknown" for the zero value.
func (v GLVersion) String() string {
	if !v.Known() {
		return "unknown"
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Signals is an immutable snapshot of the host's capability signals,
// collected once at startup and consumed by the decision policy.
//
// RemoteDisplay is meaningful only with DisplayX11; RDPSession and
// VirtDriver only with OSWindows. GL is filled in by the offscreen probe
// after collection, and only when the decision actually needs it.
type Signals struct {
	OS            OSFamily
	DisplayServer DisplayServer
	RemoteDisplay bool
	RDPSession    bool
	VirtDriver    VirtDriver
	GL            GLVersion
}

// collector produces the platform's signal snapshot. One variant exists
// per OS family, selected at compile time via build tags.
type collector interface {
	collect() Signals
}

// Collect reads the host's capability signals.
// It never fails; unreadable signals are reported as unknown/absent.
func Collect() Signals {
	sig := newCollector().collect()
	logger().Debug("platform: signals collected",
		"os", sig.OS,
		"display", sig.DisplayServer,
		"remote", sig.RemoteDisplay,
		"rdp", sig.RDPSession,
		"virt", sig.VirtDriver,
	)
	return sig
}

// displayServerFromEnv derives the display-server identity from the
// DISPLAY and WAYLAND_DISPLAY environment values. An X11 display is
// considered remote unless it names a local transport (":0"-style or
// a "/unix:" socket path). XWayland sessions set DISPLAY and are
// classified as X11 on purpose: that is the transport GL would use.
func displayServerFromEnv(x11Display, waylandDisplay string) (DisplayServer, bool) {
	if x11Display != "" {
		remote := !strings.HasPrefix(x11Display, ":") && !strings.Contains(x11Display, "/unix:")
		return DisplayX11, remote
	}
	if waylandDisplay != "" {
		return DisplayWayland, false
	}
	return DisplayNone, false
}

// matchVirtualizationDriver matches enumerated driver or library names
// against known virtualization signatures. Matching is name-based only.
func matchVirtualizationDriver(names []string) VirtDriver {
	for _, name := range names {
		n := strings.ToLower(name)
		switch {
		case strings.Contains(n, "vboxgl") || strings.Contains(n, "vboxvideo"):
			return VirtVirtualBox
		case strings.Contains(n, "vm3d") || strings.Contains(n, "vmware svga"):
			return VirtVMware
		}
	}
	return VirtNone
}
