// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/density/internal/tensor"

// Backend defines the interface that all compute backends must implement.
//
// Implementations:
//   - backend/cpu: Pure Go, parallel over large tensors
//
// Example:
//
//	import (
//	    "github.com/born-ml/density/backend/cpu"
//	    "github.com/born-ml/density/tensor"
//	)
//
//	backend := cpu.New()
//	x := tensor.Full[float64](tensor.Shape{4}, 0.25, backend)
//	y := backend.Map(x.Raw(), math.Sqrt) // raw float64 tensor of 0.5s
type Backend interface {
	Cast(x *RawTensor, dtype DataType) *RawTensor          // Convert to a data type (may share x's buffer).
	Map(x *RawTensor, fn func(float64) float64) *RawTensor // Elementwise map over a float64 tensor.

	// Metadata.
	Name() string   // Backend name (e.g., "CPU").
	Device() Device // Device type.
}

// Compile-time check that internal Backend implements public Backend.
var _ Backend = tensor.Backend(nil)
