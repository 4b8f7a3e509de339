package ggapp

import "strings"

// BackendKind identifies which of the two rendering backends a run commits to.
// The kind is decided exactly once per run and never re-evaluated.
type BackendKind uint8

const (
	// Software is the CPU rasterization path. It needs no GPU driver and is
	// the fail-safe choice whenever capability signals are missing or bad.
	Software BackendKind = iota

	// Accelerated is the GPU rendering path (gogpu window + gg GPU
	// acceleration). It requires working driver support on the host.
	Accelerated
)

// Backend adapter name constants.
const (
	// BackendNameSoftware is the name reported by the software adapter.
	BackendNameSoftware = "software"
	// BackendNameGoGPU is the name reported by the accelerated adapter.
	BackendNameGoGPU = "gogpu"
)

// String returns the lowercase kind name.
func (k BackendKind) String() string {
	switch k {
	case Software:
		return "software"
	case Accelerated:
		return "accelerated"
	default:
		return "unknown"
	}
}

// ParseBackendKind converts a user-supplied name to a BackendKind.
// Accepted spellings, case-insensitively: "software", "accelerated",
// and the adapter name "gogpu" as an alias for accelerated.
func ParseBackendKind(s string) (BackendKind, bool) {
	switch strings.ToLower(s) {
	case BackendNameSoftware:
		return Software, true
	case "accelerated", BackendNameGoGPU:
		return Accelerated, true
	default:
		return Software, false
	}
}
