// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/density/internal/backend/cpu"
	"github.com/born-ml/density/internal/parallel"
	"github.com/born-ml/density/tensor"
)

// Backend represents the CPU backend implementation.
//
// CPU backend provides pure Go implementations of the tensor operations
// the kernels need, running large elementwise maps on several goroutines.
type Backend = internalcpu.CPUBackend

// Config controls how the backend splits elementwise work across goroutines.
type Config = parallel.Config

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend with DefaultConfig.
//
// Example:
//
//	import (
//	    "github.com/born-ml/density/backend/cpu"
//	    "github.com/born-ml/density/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}

// NewWithConfig creates a CPU backend with explicit parallel settings.
//
// Example:
//
//	backend := cpu.NewWithConfig(cpu.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1024})
func NewWithConfig(cfg Config) *Backend {
	return internalcpu.NewWithConfig(cfg)
}

// DefaultConfig returns parallel settings sized to the number of CPUs.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}

// Sequential returns settings that keep all work on the calling goroutine.
func Sequential() Config {
	return parallel.Sequential()
}
