// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/density/internal/tensor"

// RawTensor is the low-level, untyped tensor representation.
//
// Backends read and write RawTensor values directly; most users work with
// Tensor[T, B] and reach the raw form through Tensor.Raw.
//
// Example:
//
//	raw, err := tensor.NewRaw(tensor.Shape{2, 2}, tensor.Float64, tensor.CPU)
//	copy(raw.AsFloat64(), []float64{1, 2, 3, 4})
type RawTensor = tensor.RawTensor
