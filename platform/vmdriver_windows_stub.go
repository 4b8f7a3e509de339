//go:build windows && !amd64 && !386

package platform

// detectVirtDriver reports no signal on non-x86 targets. The known
// virtualization GL drivers only exist for x86 guests; on arm64 the
// common hypervisor path is KVM/virtio, which works with acceleration.
func detectVirtDriver() VirtDriver {
	return VirtNone
}
