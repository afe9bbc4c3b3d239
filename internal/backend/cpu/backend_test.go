package cpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/density/internal/parallel"
	"github.com/born-ml/density/internal/tensor"
)

// Verify that CPUBackend implements tensor.Backend.
var _ tensor.Backend = (*CPUBackend)(nil)

func TestBackendMetadata(t *testing.T) {
	backend := New()
	assert.Equal(t, "CPU", backend.Name())
	assert.Equal(t, tensor.CPU, backend.Device())
	assert.Equal(t, parallel.DefaultConfig(), backend.Config())
}

func TestCastToFloat64(t *testing.T) {
	backend := New()

	tests := []struct {
		name  string
		dtype tensor.DataType
		fill  func(r *tensor.RawTensor)
	}{
		{"float32", tensor.Float32, func(r *tensor.RawTensor) { copy(r.AsFloat32(), []float32{-1.5, 0, 2.25}) }},
		{"int32", tensor.Int32, func(r *tensor.RawTensor) { copy(r.AsInt32(), []int32{-1, 0, 2}) }},
		{"int64", tensor.Int64, func(r *tensor.RawTensor) { copy(r.AsInt64(), []int64{-1, 0, 2}) }},
		{"uint8", tensor.Uint8, func(r *tensor.RawTensor) { copy(r.AsUint8(), []uint8{1, 0, 2}) }},
		{"bool", tensor.Bool, func(r *tensor.RawTensor) { copy(r.AsBool(), []bool{true, false, true}) }},
	}

	want := map[string][]float64{
		"float32": {-1.5, 0, 2.25},
		"int32":   {-1, 0, 2},
		"int64":   {-1, 0, 2},
		"uint8":   {1, 0, 2},
		"bool":    {1, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := tensor.NewRaw(tensor.Shape{3}, tt.dtype, backend.Device())
			require.NoError(t, err)
			tt.fill(x)

			result := backend.Cast(x, tensor.Float64)
			assert.Equal(t, tensor.Float64, result.DType())
			assert.True(t, result.Shape().Equal(tensor.Shape{3}))
			assert.Equal(t, want[tt.name], result.AsFloat64())
		})
	}
}

func TestCastSameDTypeSharesBuffer(t *testing.T) {
	backend := New()
	x, err := tensor.NewRaw(tensor.Shape{2}, tensor.Float64, backend.Device())
	require.NoError(t, err)

	x.AsFloat64()[1] = 2.5

	same := backend.Cast(x, tensor.Float64)
	assert.NotSame(t, x, same)
	assert.Equal(t, []float64{0, 2.5}, same.AsFloat64())
	assert.False(t, x.IsUnique(), "result shares the input buffer")

	same.Release()
	assert.True(t, x.IsUnique())
	assert.Equal(t, []float64{0, 2.5}, x.AsFloat64())
}

func TestCastNarrowing(t *testing.T) {
	backend := New()
	x, err := tensor.NewRaw(tensor.Shape{2, 2}, tensor.Float64, backend.Device())
	require.NoError(t, err)
	copy(x.AsFloat64(), []float64{1.9, -2.5, 0, 3})

	i := backend.Cast(x, tensor.Int32)
	assert.Equal(t, []int32{1, -2, 0, 3}, i.AsInt32())

	b := backend.Cast(x, tensor.Bool)
	assert.Equal(t, []bool{true, true, false, true}, b.AsBool())
}

func TestMap(t *testing.T) {
	tests := []struct {
		name  string
		cfg   parallel.Config
		shape tensor.Shape
	}{
		{"sequential 1D", parallel.Sequential(), tensor.Shape{5}},
		{"sequential 2D", parallel.Sequential(), tensor.Shape{2, 3}},
		{"parallel large", parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 16}, tensor.Shape{10, 100}},
		{"scalar", parallel.DefaultConfig(), tensor.Shape{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := NewWithConfig(tt.cfg)
			x, err := tensor.NewRaw(tt.shape, tensor.Float64, backend.Device())
			require.NoError(t, err)
			src := x.AsFloat64()
			for i := range src {
				src[i] = float64(i) - 3
			}

			result := backend.Map(x, math.Abs)

			assert.True(t, result.Shape().Equal(tt.shape))
			for i, v := range result.AsFloat64() {
				assert.Equal(t, math.Abs(float64(i)-3), v, "element %d", i)
				assert.Equal(t, float64(i)-3, src[i], "input must not change")
			}
		})
	}
}

func TestMapParallelMatchesSequential(t *testing.T) {
	seq := NewWithConfig(parallel.Sequential())
	par := NewWithConfig(parallel.Config{Enabled: true, NumWorkers: 8, MinChunkSize: 4})

	x, err := tensor.NewRaw(tensor.Shape{4097}, tensor.Float64, tensor.CPU)
	require.NoError(t, err)
	for i := range x.AsFloat64() {
		x.AsFloat64()[i] = math.Sin(float64(i))
	}

	fn := func(v float64) float64 { return math.Exp(-0.5 * v * v) }
	assert.Equal(t, seq.Map(x, fn).AsFloat64(), par.Map(x, fn).AsFloat64())
}

func TestMapRejectsNonFloat64(t *testing.T) {
	backend := New()
	x, err := tensor.NewRaw(tensor.Shape{2}, tensor.Float32, backend.Device())
	require.NoError(t, err)

	assert.Panics(t, func() { backend.Map(x, math.Abs) })
}
