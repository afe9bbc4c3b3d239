package tensor

import "fmt"

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a simple sequential backend for testing.
// It implements all operations naively for correctness verification.
type MockBackend struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the device type.
func (m *MockBackend) Device() Device {
	return CPU
}

// Cast converts x to dtype through float64, one element at a time.
func (m *MockBackend) Cast(x *RawTensor, dtype DataType) *RawTensor {
	if x.DType() == dtype {
		return x.Clone()
	}
	result, err := NewRaw(x.Shape(), dtype, m.Device())
	if err != nil {
		panic(fmt.Sprintf("cast: %v", err))
	}
	for i := 0; i < x.NumElements(); i++ {
		m.setFloat(result, i, m.getFloat(x, i))
	}
	return result
}

// Map applies fn to every element of a Float64 tensor.
func (m *MockBackend) Map(x *RawTensor, fn func(float64) float64) *RawTensor {
	result, err := NewRaw(x.Shape(), Float64, m.Device())
	if err != nil {
		panic(fmt.Sprintf("map: %v", err))
	}
	src := x.AsFloat64()
	dst := result.AsFloat64()
	for i, v := range src {
		dst[i] = fn(v)
	}
	return result
}

func (m *MockBackend) getFloat(t *RawTensor, i int) float64 {
	switch t.DType() {
	case Float32:
		return float64(t.AsFloat32()[i])
	case Float64:
		return t.AsFloat64()[i]
	case Int32:
		return float64(t.AsInt32()[i])
	case Int64:
		return float64(t.AsInt64()[i])
	case Uint8:
		return float64(t.AsUint8()[i])
	case Bool:
		if t.AsBool()[i] {
			return 1
		}
		return 0
	default:
		panic(fmt.Sprintf("unsupported dtype %s", t.DType()))
	}
}

func (m *MockBackend) setFloat(t *RawTensor, i int, v float64) {
	switch t.DType() {
	case Float32:
		t.AsFloat32()[i] = float32(v)
	case Float64:
		t.AsFloat64()[i] = v
	case Int32:
		t.AsInt32()[i] = int32(v)
	case Int64:
		t.AsInt64()[i] = int64(v)
	case Uint8:
		t.AsUint8()[i] = uint8(v)
	case Bool:
		t.AsBool()[i] = v != 0
	default:
		panic(fmt.Sprintf("unsupported dtype %s", t.DType()))
	}
}
