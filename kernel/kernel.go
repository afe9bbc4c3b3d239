// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package kernel

import (
	"github.com/born-ml/density/internal/kernel"
	"github.com/born-ml/density/tensor"
)

// Func is a scalar kernel: a pure function of one real variable.
type Func = kernel.Func

// Kind names one of the built-in kernels.
type Kind = kernel.Kind

// Built-in kernels.
const (
	KindGaussian      Kind = kernel.KindGaussian
	KindBox           Kind = kernel.KindBox
	KindTriangular    Kind = kernel.KindTriangular
	KindTrigonometric Kind = kernel.KindTrigonometric
	KindEpanechnikov  Kind = kernel.KindEpanechnikov
)

const (
	// GaussSentinel is returned by Gauss when sigma is exactly zero.
	GaussSentinel = kernel.GaussSentinel

	// Sqrt2Pi is the literal sqrt(2π) used to normalize Gauss.
	Sqrt2Pi = kernel.Sqrt2Pi
)

// Kinds lists every built-in kernel.
func Kinds() []Kind { return kernel.Kinds() }

// ParseKind looks a kernel up by name, ignoring case ("gauss" and
// "gaussian" both name the Gaussian).
func ParseKind(name string) (Kind, error) { return kernel.ParseKind(name) }

// Scalar kernels

// Gauss evaluates the Gaussian kernel at x.
//
// Example:
//
//	kernel.Gauss(0, 0, 1, false) // 1
//	kernel.Gauss(0, 0, 1, true)  // 0.3989...
//	kernel.Gauss(5, 0, 0, true)  // 1e30 (degenerate sigma)
func Gauss(x, mean, sigma float64, normalize bool) float64 {
	return kernel.Gauss(x, mean, sigma, normalize)
}

// GaussFunc fixes the Gaussian parameters and returns it as a Func.
func GaussFunc(mean, sigma float64, normalize bool) Func {
	return kernel.GaussFunc(mean, sigma, normalize)
}

// Box is 1 on [-0.5, 0.5] and 0 elsewhere.
func Box(x float64) float64 { return kernel.Box(x) }

// Triangular is 1-|x| on [-1, 1] and 0 elsewhere.
func Triangular(x float64) float64 { return kernel.Triangular(x) }

// Trigonometric is 1+cos(2π|x|) on [-0.5, 0.5] and 0 elsewhere.
func Trigonometric(x float64) float64 { return kernel.Trigonometric(x) }

// Epanechnikov is 3/4·(1-x²) on [-1, 1] and 0 elsewhere.
func Epanechnikov(x float64) float64 { return kernel.Epanechnikov(x) }

// Eval evaluates f at x widened to float64.
//
// Example:
//
//	kernel.Eval(kernel.Box, int32(0)) // 1
func Eval[T tensor.Real](f Func, x T) float64 {
	return kernel.Eval(f, x)
}

// Lifting

// Apply evaluates f at every element of x, returning a float64 tensor of
// the same shape on the same backend.
func Apply[T tensor.Real, B tensor.Backend](x *tensor.Tensor[T, B], f Func) *tensor.Tensor[float64, B] {
	return kernel.Apply(x, f)
}

// ApplySlice evaluates f at every element of xs.
func ApplySlice[T tensor.Real](xs []T, f Func) []float64 {
	return kernel.ApplySlice(xs, f)
}

// Lift returns the tensor-valued counterpart of f.
//
// Example:
//
//	box := kernel.Lift[float32, *cpu.Backend](kernel.Box)
//	y := box(x)
func Lift[T tensor.Real, B tensor.Backend](f Func) func(*tensor.Tensor[T, B]) *tensor.Tensor[float64, B] {
	return kernel.Lift[T, B](f)
}

// Tensor kernels

// GaussTensor evaluates Gauss at every element of x.
func GaussTensor[T tensor.Real, B tensor.Backend](x *tensor.Tensor[T, B], mean, sigma float64, normalize bool) *tensor.Tensor[float64, B] {
	return kernel.GaussTensor(x, mean, sigma, normalize)
}

// BoxTensor evaluates Box at every element of x.
func BoxTensor[T tensor.Real, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[float64, B] {
	return kernel.BoxTensor(x)
}

// TriangularTensor evaluates Triangular at every element of x.
func TriangularTensor[T tensor.Real, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[float64, B] {
	return kernel.TriangularTensor(x)
}

// TrigonometricTensor evaluates Trigonometric at every element of x.
func TrigonometricTensor[T tensor.Real, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[float64, B] {
	return kernel.TrigonometricTensor(x)
}

// EpanechnikovTensor evaluates Epanechnikov at every element of x.
func EpanechnikovTensor[T tensor.Real, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[float64, B] {
	return kernel.EpanechnikovTensor(x)
}

// Slice kernels

// GaussSlice evaluates Gauss at every element of xs.
func GaussSlice[T tensor.Real](xs []T, mean, sigma float64, normalize bool) []float64 {
	return kernel.GaussSlice(xs, mean, sigma, normalize)
}

// BoxSlice evaluates Box at every element of xs.
func BoxSlice[T tensor.Real](xs []T) []float64 { return kernel.BoxSlice(xs) }

// TriangularSlice evaluates Triangular at every element of xs.
func TriangularSlice[T tensor.Real](xs []T) []float64 { return kernel.TriangularSlice(xs) }

// TrigonometricSlice evaluates Trigonometric at every element of xs.
func TrigonometricSlice[T tensor.Real](xs []T) []float64 { return kernel.TrigonometricSlice(xs) }

// EpanechnikovSlice evaluates Epanechnikov at every element of xs.
func EpanechnikovSlice[T tensor.Real](xs []T) []float64 { return kernel.EpanechnikovSlice(xs) }
