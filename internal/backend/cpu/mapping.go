package cpu

import (
	"fmt"

	"github.com/born-ml/density/internal/parallel"
	"github.com/born-ml/density/internal/tensor"
)

// Map applies fn to every element of a Float64 tensor and returns a new
// tensor of the same shape. Large tensors are split across goroutines;
// each output element depends only on its own input element.
func (cpu *CPUBackend) Map(x *tensor.RawTensor, fn func(float64) float64) *tensor.RawTensor {
	if x.DType() != tensor.Float64 {
		panic(fmt.Sprintf("map: unsupported dtype %s (only float64 supported)", x.DType()))
	}

	result, err := tensor.NewRaw(x.Shape(), tensor.Float64, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("map: %v", err))
	}

	src := x.AsFloat64()
	dst := result.AsFloat64()
	parallel.ForRange(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = fn(src[i])
		}
	}, cpu.cfg)

	return result
}
