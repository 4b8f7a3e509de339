//go:build windows && (amd64 || 386)

package platform

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/windows/registry"
)

// servicesKey advertises every installed driver by subkey name.
const servicesKey = `SYSTEM\CurrentControlSet\Services`

// guestGLLibraries are guest 3D driver DLLs shipped by hypervisor tools.
// vm3dgl64.dll is the VMware 3D driver (too incomplete for accelerated
// rendering, crashes the process); VBoxGL.dll is the VirtualBox OpenGL
// driver (missing required extensions).
var guestGLLibraries = []string{"vm3dgl64.dll", "VBoxGL.dll"}

// detectVirtDriver enumerates advertised driver names and matches them
// against known virtualization signatures. x86/x86-64 only; other
// architectures compile the stub. The check is name-based and unverified
// against actually-loaded drivers — that imprecision is part of the
// policy. KVM and Hyper-V are not checked.
func detectVirtDriver() VirtDriver {
	if v := matchVirtualizationDriver(guestLibraryNames()); v != VirtNone {
		return v
	}

	names, err := serviceNames()
	if err != nil {
		logger().Warn("platform: cannot enumerate driver services", "error", err)
		return VirtUnknown
	}
	return matchVirtualizationDriver(names)
}

// guestLibraryNames returns the known guest GL library names present in
// System32. Presence of the file is the signal; it is never loaded.
func guestLibraryNames() []string {
	root := os.Getenv("SystemRoot")
	if root == "" {
		root = `C:\Windows`
	}
	var present []string
	for _, lib := range guestGLLibraries {
		if _, err := os.Stat(filepath.Join(root, "System32", lib)); err == nil {
			present = append(present, lib)
		}
	}
	return present
}

// serviceNames lists driver service subkey names from the registry.
func serviceNames() ([]string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, servicesKey, registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		return nil, err
	}
	defer k.Close()
	return k.ReadSubKeyNames(-1)
}
