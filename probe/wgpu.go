package probe

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"
)

// adapterDesc is the subset of adapter info the probe reports.
type adapterDesc struct {
	name   string
	driver string
}

// wgpuProber probes capability through an offscreen gogpu/wgpu device:
// instance → adapter → device, query, release. No window or surface is
// ever created. The acquisition steps are function fields so tests can
// verify the release discipline without a GPU.
type wgpuProber struct {
	requestAdapter func() (core.AdapterID, error)
	requestDevice  func(core.AdapterID) (core.DeviceID, error)
	adapterInfo    func(core.AdapterID) (adapterDesc, error)
	releaseDevice  func(core.DeviceID)
	releaseAdapter func(core.AdapterID)
}

// New returns the default offscreen prober backed by gogpu/wgpu.
func New() Prober {
	return &wgpuProber{
		requestAdapter: requestAdapter,
		requestDevice:  requestDevice,
		adapterInfo:    adapterInfo,
		releaseDevice:  releaseDevice,
		releaseAdapter: releaseAdapter,
	}
}

// Probe acquires a minimal offscreen context, queries the adapter, and
// releases everything. Release is deferred so it runs on every exit path.
func (p *wgpuProber) Probe() (Result, error) {
	adapter, err := p.requestAdapter()
	if err != nil {
		return Result{}, fmt.Errorf("request adapter: %w", err)
	}
	defer p.releaseAdapter(adapter)

	device, err := p.requestDevice(adapter)
	if err != nil {
		return Result{}, fmt.Errorf("create device: %w", err)
	}
	defer p.releaseDevice(device)

	info, err := p.adapterInfo(adapter)
	if err != nil {
		return Result{}, fmt.Errorf("query adapter info: %w", err)
	}

	return Result{
		GL:      versionFromDriver(info.driver),
		Adapter: info.name,
		Driver:  info.driver,
	}, nil
}

func requestAdapter() (core.AdapterID, error) {
	instance := core.NewInstance(&gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
	})
	return instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
}

func requestDevice(adapter core.AdapterID) (core.DeviceID, error) {
	return core.RequestDevice(adapter, &gputypes.DeviceDescriptor{
		Label:          "ggapp-capability-probe",
		RequiredLimits: gputypes.DefaultLimits(),
	})
}

func adapterInfo(adapter core.AdapterID) (adapterDesc, error) {
	info, err := core.GetAdapterInfo(adapter)
	if err != nil {
		return adapterDesc{}, err
	}
	return adapterDesc{name: info.Name, driver: info.Driver}, nil
}

func releaseDevice(device core.DeviceID) {
	if device.IsZero() {
		return
	}
	if err := core.DeviceDrop(device); err != nil {
		logger().Warn("probe: error releasing device", "error", err)
	}
}

func releaseAdapter(adapter core.AdapterID) {
	if adapter.IsZero() {
		return
	}
	if err := core.AdapterDrop(adapter); err != nil {
		logger().Warn("probe: error releasing adapter", "error", err)
	}
}
