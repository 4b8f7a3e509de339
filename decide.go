package ggapp

import (
	"fmt"

	"github.com/gogpu/ggapp/platform"
)

// Minimum GL capability for the accelerated backend.
const (
	minGLMajor = 3
	minGLMinor = 2
)

// Decision is the outcome of the selection policy: the committed backend
// kind and the rule that produced it, for logging and diagnostics.
type Decision struct {
	Kind   BackendKind
	Reason string
}

// Decide maps capability signals and configuration to a backend kind.
// It is pure and deterministic: no global state, no re-evaluation.
//
// The rules form an explicit first-match-wins priority list encoding the
// confidence ranking: explicit user intent, then OS-class guarantee,
// display-transport guarantee, session-type guarantee, heuristic
// driver-name guarantee, and last the empirical capability probe (the
// weakest signal, consulted only through sig.GL, which the runner fills
// in only when a probe was actually needed).
func Decide(sig platform.Signals, cfg BackendConfiguration) Decision {
	// 1. Explicit configuration override wins outright.
	if kind, ok := cfg.ForcedBackend(); ok {
		return Decision{Kind: kind, Reason: "forced by configuration"}
	}

	// 2. macOS and the BSDs are treated as always-capable.
	if sig.OS == platform.OSDarwin || sig.OS == platform.OSBSD {
		return Decision{Kind: Accelerated, Reason: "always-capable OS family"}
	}

	if sig.OS == platform.OSLinux {
		// 3. Wayland is capable unconditionally; no remote heuristic applies.
		if sig.DisplayServer == platform.DisplayWayland {
			return Decision{Kind: Accelerated, Reason: "wayland display"}
		}
		// 4. X11: a forwarded display makes GL unusably slow.
		if sig.DisplayServer == platform.DisplayX11 {
			if sig.RemoteDisplay {
				return Decision{Kind: Software, Reason: "remote X11 display"}
			}
			return Decision{Kind: Accelerated, Reason: "local X11 display"}
		}
		// No display server detected: fall through to the probe.
	}

	if sig.OS == platform.OSWindows {
		// 5. RDP sessions get the software renderer, short-circuiting
		// every remaining Windows check.
		if sig.RDPSession {
			return Decision{Kind: Software, Reason: "RDP session"}
		}
		// 6. Known virtualization guest GL drivers crash or refuse the
		// accelerated path.
		switch sig.VirtDriver {
		case platform.VirtVirtualBox, platform.VirtVMware:
			return Decision{
				Kind:   Software,
				Reason: fmt.Sprintf("%s guest driver", sig.VirtDriver),
			}
		}
	}

	// 7. Empirical capability: driver-reported GL version from the
	// offscreen probe. Unknown (probe failed, disabled, or never run)
	// fails toward software.
	if cfg.ProbingDisabled() {
		return Decision{Kind: Software, Reason: "probing disabled"}
	}
	if sig.GL.AtLeast(minGLMajor, minGLMinor) {
		return Decision{
			Kind:   Accelerated,
			Reason: fmt.Sprintf("GL %s >= %d.%d", sig.GL, minGLMajor, minGLMinor),
		}
	}
	return Decision{
		Kind:   Software,
		Reason: fmt.Sprintf("GL %s below %d.%d", sig.GL, minGLMajor, minGLMinor),
	}
}

// needsProbe reports whether Decide would reach the capability probe for
// these signals, i.e. whether rules 1–6 all pass without firing. The
// runner uses it to skip the probe's real context creation whenever a
// stronger signal already settles the choice.
func needsProbe(sig platform.Signals, cfg BackendConfiguration) bool {
	if _, ok := cfg.ForcedBackend(); ok {
		return false
	}
	if cfg.ProbingDisabled() {
		return false
	}
	switch sig.OS {
	case platform.OSDarwin, platform.OSBSD:
		return false
	case platform.OSLinux:
		return sig.DisplayServer == platform.DisplayNone
	case platform.OSWindows:
		if sig.RDPSession {
			return false
		}
		return sig.VirtDriver != platform.VirtVirtualBox &&
			sig.VirtDriver != platform.VirtVMware
	default:
		return true
	}
}
