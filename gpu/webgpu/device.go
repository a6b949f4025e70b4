package webgpu

import (
	"github.com/kilngpu/kiln/gpu"
	"github.com/oliverbestmann/webgpu/wgpu"
)

// Device wraps a wgpu device.
type Device struct {
	device *wgpu.Device
}

var _ gpu.Device = (*Device)(nil)

// WGPU exposes the underlying handle for callers that encode their own
// command buffers.
func (d *Device) WGPU() *wgpu.Device {
	return d.device
}

func (d *Device) Poll(wait bool) bool {
	return d.device.Poll(wait, nil)
}

func (d *Device) Release() {
	if d.device != nil {
		d.device.Release()
		d.device = nil
	}
}

// Queue wraps the device's command queue.
type Queue struct {
	queue *wgpu.Queue
}

func (q *Queue) WGPU() *wgpu.Queue {
	return q.queue
}

// Submit hands finished command buffers to the GPU.
func (q *Queue) Submit(commands ...*wgpu.CommandBuffer) wgpu.SubmissionIndex {
	return q.queue.Submit(commands...)
}

func (q *Queue) Release() {
	if q.queue != nil {
		q.queue.Release()
		q.queue = nil
	}
}
