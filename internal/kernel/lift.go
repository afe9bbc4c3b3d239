package kernel

import "github.com/born-ml/density/internal/tensor"

// Apply evaluates f at every element of x. Elements are widened to
// float64 first; the result is a new float64 tensor of the same shape
// on the same backend, and x is left untouched.
//
// Example:
//
//	x, _ := tensor.FromSlice([]int32{-1, 0, 1}, tensor.Shape{3}, cpu.New())
//	y := kernel.Apply(x, kernel.Triangular) // [0 1 0]
func Apply[T tensor.Real, B tensor.Backend](x *tensor.Tensor[T, B], f Func) *tensor.Tensor[float64, B] {
	b := x.Backend()
	wide := b.Cast(x.Raw(), tensor.Float64)
	defer wide.Release()
	return tensor.New[float64, B](b.Map(wide, f), b)
}

// ApplySlice evaluates f at every element of xs, widened to float64,
// returning a new slice of the same length.
func ApplySlice[T tensor.Real](xs []T, f Func) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = f(float64(v))
	}
	return out
}

// Lift turns a scalar kernel into its tensor-valued counterpart.
func Lift[T tensor.Real, B tensor.Backend](f Func) func(*tensor.Tensor[T, B]) *tensor.Tensor[float64, B] {
	return func(x *tensor.Tensor[T, B]) *tensor.Tensor[float64, B] {
		return Apply(x, f)
	}
}

// Eval evaluates f at a single value widened to float64.
func Eval[T tensor.Real](f Func, x T) float64 {
	return f(float64(x))
}

// GaussTensor evaluates Gauss at every element of x with fixed parameters.
func GaussTensor[T tensor.Real, B tensor.Backend](x *tensor.Tensor[T, B], mean, sigma float64, normalize bool) *tensor.Tensor[float64, B] {
	return Apply(x, GaussFunc(mean, sigma, normalize))
}

// BoxTensor evaluates Box at every element of x.
func BoxTensor[T tensor.Real, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[float64, B] {
	return Apply(x, Box)
}

// TriangularTensor evaluates Triangular at every element of x.
func TriangularTensor[T tensor.Real, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[float64, B] {
	return Apply(x, Triangular)
}

// TrigonometricTensor evaluates Trigonometric at every element of x.
func TrigonometricTensor[T tensor.Real, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[float64, B] {
	return Apply(x, Trigonometric)
}

// EpanechnikovTensor evaluates Epanechnikov at every element of x.
func EpanechnikovTensor[T tensor.Real, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[float64, B] {
	return Apply(x, Epanechnikov)
}

// GaussSlice evaluates Gauss at every element of xs with fixed parameters.
func GaussSlice[T tensor.Real](xs []T, mean, sigma float64, normalize bool) []float64 {
	return ApplySlice(xs, GaussFunc(mean, sigma, normalize))
}

// BoxSlice evaluates Box at every element of xs.
func BoxSlice[T tensor.Real](xs []T) []float64 { return ApplySlice(xs, Box) }

// TriangularSlice evaluates Triangular at every element of xs.
func TriangularSlice[T tensor.Real](xs []T) []float64 { return ApplySlice(xs, Triangular) }

// TrigonometricSlice evaluates Trigonometric at every element of xs.
func TrigonometricSlice[T tensor.Real](xs []T) []float64 { return ApplySlice(xs, Trigonometric) }

// EpanechnikovSlice evaluates Epanechnikov at every element of xs.
func EpanechnikovSlice[T tensor.Real](xs []T) []float64 { return ApplySlice(xs, Epanechnikov) }
