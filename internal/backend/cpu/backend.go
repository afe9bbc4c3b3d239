// Package cpu implements the pure Go CPU backend used to evaluate kernels over tensors.
package cpu

import (
	"github.com/born-ml/density/internal/parallel"
	"github.com/born-ml/density/internal/tensor"
)

// CPUBackend implements tensor operations on CPU, splitting large
// elementwise work across goroutines.
type CPUBackend struct {
	device tensor.Device
	cfg    parallel.Config
}

// New creates a new CPU backend with parallel.DefaultConfig.
func New() *CPUBackend {
	return NewWithConfig(parallel.DefaultConfig())
}

// NewWithConfig creates a CPU backend with the given parallel execution settings.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
		cfg:    cfg,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Config returns the parallel execution settings.
func (cpu *CPUBackend) Config() parallel.Config {
	return cpu.cfg
}
