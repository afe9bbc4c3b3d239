package kernel

import (
	"fmt"
	"strings"
)

// Kind names one of the kernels in this package.
type Kind int

// Supported kernels.
const (
	KindGaussian Kind = iota
	KindBox
	KindTriangular
	KindTrigonometric
	KindEpanechnikov
)

// Kinds lists every supported kernel in declaration order.
func Kinds() []Kind {
	return []Kind{KindGaussian, KindBox, KindTriangular, KindTrigonometric, KindEpanechnikov}
}

// String returns the lower-case kernel name.
func (k Kind) String() string {
	switch k {
	case KindGaussian:
		return "gaussian"
	case KindBox:
		return "box"
	case KindTriangular:
		return "triangular"
	case KindTrigonometric:
		return "trigonometric"
	case KindEpanechnikov:
		return "epanechnikov"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind looks a kernel up by name, ignoring case.
// "gauss" is accepted as an alias for "gaussian".
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gauss", "gaussian":
		return KindGaussian, nil
	case "box":
		return KindBox, nil
	case "triangular":
		return KindTriangular, nil
	case "trigonometric":
		return KindTrigonometric, nil
	case "epanechnikov":
		return KindEpanechnikov, nil
	}
	return 0, fmt.Errorf("unknown kernel %q", name)
}

// Func returns the scalar kernel for k. KindGaussian is the unnormalized
// standard kernel (mean 0, sigma 1); use GaussFunc for other parameters.
// Panics on an unknown Kind.
func (k Kind) Func() Func {
	switch k {
	case KindGaussian:
		return GaussFunc(0, 1, false)
	case KindBox:
		return Box
	case KindTriangular:
		return Triangular
	case KindTrigonometric:
		return Trigonometric
	case KindEpanechnikov:
		return Epanechnikov
	}
	panic(fmt.Sprintf("kernel: no function for %s", k))
}
