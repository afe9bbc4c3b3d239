package tensor

import "fmt"

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float32](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy), b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}
	return New[T, B](raw, b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float32](Shape{3, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Linspace creates a 1D float64 tensor of n evenly spaced values from
// start to stop inclusive. Panics if n < 1.
//
// Example:
//
//	grid := tensor.Linspace(-3, 3, 61, backend)
func Linspace[B Backend](start, stop float64, n int, b B) *Tensor[float64, B] {
	if n < 1 {
		panic(fmt.Sprintf("linspace: need at least one point, got %d", n))
	}
	t := Zeros[float64, B](Shape{n}, b)
	data := t.Data()
	if n == 1 {
		data[0] = start
		return t
	}
	step := (stop - start) / float64(n-1)
	for i := range data {
		data[i] = start + float64(i)*step
	}
	data[n-1] = stop
	return t
}
