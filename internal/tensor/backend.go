package tensor

// Backend defines what a compute backend must provide for the density
// kernels: dtype conversion and an elementwise float64 map.
//
// Implementations:
//   - CPU: pure Go, optionally parallel (internal/backend/cpu)
type Backend interface {
	// Cast converts x to dtype. When the dtype already matches, the
	// result is a Clone sharing x's buffer, so callers must not write
	// into it. The caller releases the result when done.
	Cast(x *RawTensor, dtype DataType) *RawTensor

	// Map returns a new Float64 tensor with the same shape as x where
	// element i is fn(x[i]). x must be Float64 and is left untouched.
	Map(x *RawTensor, fn func(float64) float64) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
