//go:build linux

package platform

import "os"

// linuxCollector identifies the active display-server protocol and, for
// X11, whether the display connection is forwarded over a network
// transport (SSH-tunneled X11 and the like), where GL is unusable.
type linuxCollector struct{}

func newCollector() collector {
	return linuxCollector{}
}

func (linuxCollector) collect() Signals {
	server, remote := displayServerFromEnv(
		os.Getenv("DISPLAY"),
		os.Getenv("WAYLAND_DISPLAY"),
	)
	return Signals{
		OS:            OSLinux,
		DisplayServer: server,
		RemoteDisplay: remote,
	}
}
