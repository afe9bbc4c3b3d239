// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package kernel provides statistical density kernels evaluated on
// scalars, slices and tensors.
//
// # Kernels
//
//	Gauss(x, mean, sigma, normalize)  exp(-((x-mean)/sigma)²/2), optionally / (sigma·sqrt(2π))
//	Box(x)                            1 if |x| <= 0.5
//	Triangular(x)                     1-|x| if |x| <= 1
//	Trigonometric(x)                  1+cos(2π|x|) if |x| <= 0.5
//	Epanechnikov(x)                   3/4·(1-x²) if |x| <= 1
//
// All kernels are 0 outside their support. A Gaussian with sigma == 0
// returns GaussSentinel (1e30) instead of dividing by zero. No kernel
// returns an error; non-finite inputs flow through the arithmetic.
//
// # Tensors and slices
//
// Every kernel has a Tensor form and a Slice form that apply the scalar
// kernel to each element, widening the element to float64 first:
//
//	backend := cpu.New()
//	x, _ := tensor.FromSlice([]int32{-1, 0, 1}, tensor.Shape{3}, backend)
//	y := kernel.EpanechnikovTensor(x)          // [0 0.75 0], float64
//	z := kernel.GaussSlice([]float32{0, 1}, 0, 1, true)
//
// Apply and ApplySlice do the same for any Func, so user kernels get the
// same treatment:
//
//	cosine := func(x float64) float64 { ... }
//	y := kernel.Apply(x, cosine)
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use.
package kernel
