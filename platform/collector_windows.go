//go:build windows

package platform

import (
	"golang.org/x/sys/windows"
)

// smRemoteSession is the GetSystemMetrics index reporting whether the
// calling process runs inside a Remote Desktop session. This is the
// standard session-type metric; registry-based GPU redirection settings
// are deliberately not consulted because they cannot be verified to
// reflect real hardware capability.
const smRemoteSession = 0x1000

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetSystemMetrics = user32.NewProc("GetSystemMetrics")
)

type windowsCollector struct{}

func newCollector() collector {
	return windowsCollector{}
}

func (windowsCollector) collect() Signals {
	return Signals{
		OS:         OSWindows,
		RDPSession: isRemoteSession(),
		VirtDriver: detectVirtDriver(),
	}
}

// isRemoteSession reports whether an RDP session is active.
// A failed metric call is an absent signal, not a positive one.
func isRemoteSession() bool {
	if err := procGetSystemMetrics.Find(); err != nil {
		logger().Warn("platform: GetSystemMetrics unavailable", "error", err)
		return false
	}
	ret, _, _ := procGetSystemMetrics.Call(uintptr(smRemoteSession))
	return ret != 0
}
