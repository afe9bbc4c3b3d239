// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the numeric arrays that the density kernels are
// evaluated over.
//
// # Overview
//
// This package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - Row-major storage of any rank, including scalars (Shape{})
//   - A small Backend interface: dtype conversion and elementwise map
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/density/backend/cpu"
//	    "github.com/born-ml/density/kernel"
//	    "github.com/born-ml/density/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x, _ := tensor.FromSlice([]float32{-1, 0, 0.5}, tensor.Shape{3}, backend)
//	    y := kernel.EpanechnikovTensor(x) // Tensor[float64] of shape [3]
//	}
//
// # Supported Data Types
//
// Tensors hold the types in the DType constraint:
//   - float32, float64 (floating-point)
//   - int32, int64 (signed integers)
//   - uint8 (unsigned integers)
//   - bool (masks)
//
// Kernels accept the Real subset (everything but bool) and always
// produce float64 tensors.
package tensor
