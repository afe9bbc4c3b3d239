// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Conversion between all tensor data types
//   - Elementwise float64 maps, split across goroutines for large tensors
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
//	    x := tensor.Linspace(-2, 2, 401, backend)
//	    y := kernel.GaussTensor(x, 0, 0.5, true)
//	}
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each tensor operation
// is isolated and does not share mutable state. Results do not depend
// on the parallel settings.
package cpu
