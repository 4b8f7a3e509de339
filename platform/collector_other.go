//go:build !windows && !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package platform

// otherCollector covers platforms without a dedicated collector.
// No signals can be read; the decision falls through to the offscreen
// capability probe.
type otherCollector struct{}

func newCollector() collector {
	return otherCollector{}
}

func (otherCollector) collect() Signals {
	return Signals{OS: OSUnknown}
}
