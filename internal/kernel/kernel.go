// Package kernel implements the density kernels: Gaussian, box, triangular,
// trigonometric and Epanechnikov, on scalars, slices and tensors.
package kernel

import "math"

// Func is a scalar kernel: a pure function of one real variable.
type Func func(x float64) float64

const (
	// GaussSentinel is returned by Gauss when sigma is exactly zero.
	GaussSentinel = 1.0e30

	// Sqrt2Pi is sqrt(2π) as a fixed literal so normalized results are
	// reproducible bit for bit.
	Sqrt2Pi = 2.50662827463100024
)

// Gauss evaluates the Gaussian kernel exp(-(x-mean)²/(2σ²)) at x.
// With normalize set the result is divided by σ·sqrt(2π), making it the
// normal probability density. A sigma of exactly zero yields GaussSentinel.
func Gauss(x, mean, sigma float64, normalize bool) float64 {
	if sigma == 0 {
		return GaussSentinel
	}
	arg := (x - mean) / sigma
	core := math.Exp(-0.5 * arg * arg)
	if !normalize {
		return core
	}
	return core / (sigma * Sqrt2Pi)
}

// GaussFunc fixes the Gaussian parameters and returns it as a Func.
func GaussFunc(mean, sigma float64, normalize bool) Func {
	return func(x float64) float64 {
		return Gauss(x, mean, sigma, normalize)
	}
}

// Box is 1 on [-0.5, 0.5] and 0 elsewhere.
func Box(x float64) float64 {
	if math.Abs(x) <= 0.5 {
		return 1
	}
	return 0
}

// Triangular is 1-|x| on [-1, 1] and 0 elsewhere.
func Triangular(x float64) float64 {
	v := math.Abs(x)
	if v <= 1 {
		return 1 - v
	}
	return 0
}

// Trigonometric is 1+cos(2π|x|) on [-0.5, 0.5] and 0 elsewhere.
// It peaks at 2 and is not normalized.
func Trigonometric(x float64) float64 {
	v := math.Abs(x)
	if v <= 0.5 {
		return 1 + math.Cos(2*math.Pi*v)
	}
	return 0
}

// Epanechnikov is 3/4·(1-x²) on [-1, 1] and 0 elsewhere.
func Epanechnikov(x float64) float64 {
	v := math.Abs(x)
	if v <= 1 {
		return 0.75 * (1 - v*v)
	}
	return 0
}
