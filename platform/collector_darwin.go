//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package platform

import "runtime"

// darwinCollector covers macOS and the BSD family. These platforms are
// treated as always-capable: no display-server or session probing applies.
type darwinCollector struct{}

func newCollector() collector {
	return darwinCollector{}
}

func (darwinCollector) collect() Signals {
	family := OSBSD
	if runtime.GOOS == "darwin" {
		family = OSDarwin
	}
	return Signals{OS: family}
}
