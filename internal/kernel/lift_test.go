package kernel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/density/internal/backend/cpu"
	"github.com/born-ml/density/internal/parallel"
	"github.com/born-ml/density/internal/tensor"
)

func TestApplyElementwise(t *testing.T) {
	backend := cpu.New()
	inputs := []float64{-1.2, -0.5, 0, 0.3, 0.5, 0.75, 2}

	kernels := []struct {
		name   string
		scalar Func
		tensor func(*tensor.Tensor[float64, *cpu.CPUBackend]) *tensor.Tensor[float64, *cpu.CPUBackend]
	}{
		{"box", Box, BoxTensor[float64, *cpu.CPUBackend]},
		{"triangular", Triangular, TriangularTensor[float64, *cpu.CPUBackend]},
		{"trigonometric", Trigonometric, TrigonometricTensor[float64, *cpu.CPUBackend]},
		{"epanechnikov", Epanechnikov, EpanechnikovTensor[float64, *cpu.CPUBackend]},
	}

	for _, k := range kernels {
		t.Run(k.name, func(t *testing.T) {
			x, err := tensor.FromSlice(inputs, tensor.Shape{len(inputs)}, backend)
			require.NoError(t, err)

			y := k.tensor(x)

			require.True(t, y.Shape().Equal(x.Shape()))
			for i, v := range inputs {
				assert.Equal(t, k.scalar(v), y.At(i), "%s(%v)", k.name, v)
			}
			assert.Equal(t, inputs, x.Data(), "input must not change")
		})
	}
}

func TestApplyPreservesShape(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.FromSlice([]float32{0, 0.25, 0.5, 1, -1, 2}, tensor.Shape{2, 3}, backend)
	require.NoError(t, err)

	y := TriangularTensor(x)

	assert.Equal(t, tensor.Float64, y.DType())
	assert.True(t, y.Shape().Equal(tensor.Shape{2, 3}))
	assert.Equal(t, []float64{1, 0.75, 0.5, 0, 0, 0}, y.Data())
	assert.Equal(t, 0.5, y.At(0, 2))
	assert.Same(t, backend, y.Backend())
}

func TestApplyWidensIntegers(t *testing.T) {
	backend := cpu.New()

	xi, err := tensor.FromSlice([]int32{-2, -1, 0, 1, 2}, tensor.Shape{5}, backend)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0.75, 0, 0}, EpanechnikovTensor(xi).Data())

	xu, err := tensor.FromSlice([]uint8{0, 1}, tensor.Shape{2}, backend)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0}, BoxTensor(xu).Data())

	xl, err := tensor.FromSlice([]int64{3}, tensor.Shape{}, backend)
	require.NoError(t, err)
	assert.Equal(t, 1.0, GaussTensor(xl, 3, 2, false).Item())
}

func TestApplyReleasesWidenedInput(t *testing.T) {
	backends := map[string]tensor.Backend{"cpu": cpu.New(), "mock": tensor.NewMockBackend()}

	for name, backend := range backends {
		t.Run(name, func(t *testing.T) {
			x, err := tensor.FromSlice([]float64{-1, 0, 0.5}, tensor.Shape{3}, backend)
			require.NoError(t, err)

			y := Apply(x, Triangular)
			assert.Equal(t, []float64{0, 1, 0.5}, y.Data())
			assert.True(t, x.Raw().IsUnique(), "input buffer still shared after Apply")
			assert.Equal(t, []float64{-1, 0, 0.5}, x.Data())

			again := Apply(x, Triangular)
			assert.Equal(t, y.Data(), again.Data())

			xi, err := tensor.FromSlice([]int32{0, 1}, tensor.Shape{2}, backend)
			require.NoError(t, err)
			assert.Equal(t, []float64{1, 0}, Apply(xi, Triangular).Data())
			assert.True(t, xi.Raw().IsUnique())
		})
	}
}

func TestGaussTensor(t *testing.T) {
	backend := cpu.New()
	inputs := []float64{-2, -1, 0, 1, 2, 3.5}
	x, err := tensor.FromSlice(inputs, tensor.Shape{3, 2}, backend)
	require.NoError(t, err)

	for _, normalize := range []bool{false, true} {
		y := GaussTensor(x, 0.5, 1.25, normalize)
		require.True(t, y.Shape().Equal(tensor.Shape{3, 2}))
		for i, v := range inputs {
			assert.Equal(t, Gauss(v, 0.5, 1.25, normalize), y.Data()[i])
		}
	}
}

func TestGaussTensorZeroSigma(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.FromSlice([]float64{-1, 0, math.NaN(), 1e9}, tensor.Shape{4}, backend)
	require.NoError(t, err)

	y := GaussTensor(x, 0, 0, true)
	assert.Equal(t, []float64{1e30, 1e30, 1e30, 1e30}, y.Data())
}

func TestApplyParallelBitIdentical(t *testing.T) {
	n := 10000
	inputs := make([]float64, n)
	for i := range inputs {
		inputs[i] = math.Sin(float64(i)) * 1.5
	}

	seq := cpu.NewWithConfig(parallel.Sequential())
	par := cpu.NewWithConfig(parallel.Config{Enabled: true, NumWorkers: 8, MinChunkSize: 16})

	xs, err := tensor.FromSlice(inputs, tensor.Shape{100, 100}, seq)
	require.NoError(t, err)
	xp, err := tensor.FromSlice(inputs, tensor.Shape{100, 100}, par)
	require.NoError(t, err)

	for _, f := range []Func{Box, Triangular, Trigonometric, Epanechnikov, GaussFunc(0.2, 0.7, true)} {
		assert.Equal(t, Apply(xs, f).Data(), Apply(xp, f).Data())
		assert.Equal(t, ApplySlice(inputs, f), Apply(xp, f).Data())
	}
}

func TestApplyWithMockBackend(t *testing.T) {
	backend := tensor.NewMockBackend()
	x, err := tensor.FromSlice([]float32{0, 0.5, 1}, tensor.Shape{3}, backend)
	require.NoError(t, err)

	assert.Equal(t, []float64{2, Trigonometric(0.5), 0}, TrigonometricTensor(x).Data())
}

func TestLift(t *testing.T) {
	backend := cpu.New()
	box := Lift[int64, *cpu.CPUBackend](Box)

	x, err := tensor.FromSlice([]int64{0, 1, -1}, tensor.Shape{3}, backend)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 0, 0}, box(x).Data())
}

func TestSliceOverloads(t *testing.T) {
	xs := []float64{-0.5, 0, 0.5000001}

	assert.Equal(t, []float64{1, 1, 0}, BoxSlice(xs))
	assert.Equal(t, []float64{0.5, 1, Triangular(0.5000001)}, TriangularSlice(xs))
	assert.Equal(t, []float64{Trigonometric(-0.5), 2, 0}, TrigonometricSlice(xs))
	assert.Equal(t, []float64{0.5625, 0.75, Epanechnikov(0.5000001)}, EpanechnikovSlice(xs))
	assert.Equal(t, []float64{Gauss(-0.5, 0, 1, false), 1, Gauss(0.5000001, 0, 1, false)}, GaussSlice(xs, 0, 1, false))

	assert.Equal(t, []float64{0.75, 0}, EpanechnikovSlice([]int32{0, 1}))
	assert.Empty(t, BoxSlice([]float32{}))
}

func TestEval(t *testing.T) {
	assert.Equal(t, 0.75, Eval(Epanechnikov, int32(0)))
	assert.Equal(t, 1.0, Eval(Box, uint8(0)))
	assert.Equal(t, Triangular(float64(float32(0.1))), Eval(Triangular, float32(0.1)))
}
