package artifact

import (
	"errors"
	"fmt"
)

const (
	KindStandard = "standard"
	KindMinMax   = "minmax"
	KindIdentity = "identity"
)

// StandardScaler computes (x - mean) / scale per feature.
type StandardScaler struct {
	mean  []float64
	scale []float64
}

func NewStandardScaler(mean, scale []float64) (*StandardScaler, error) {
	if len(mean) == 0 || len(mean) != len(scale) {
		return nil, fmt.Errorf("standard scaler: mean has %d values, scale has %d", len(mean), len(scale))
	}
	for i, s := range scale {
		if s == 0 {
			return nil, fmt.Errorf("standard scaler: scale[%d] is zero", i)
		}
	}
	return &StandardScaler{mean: clone(mean), scale: clone(scale)}, nil
}

func (s *StandardScaler) Kind() string { return KindStandard }
func (s *StandardScaler) Dim() int     { return len(s.mean) }

func (s *StandardScaler) Transform(x []float64) ([]float64, error) {
	if err := checkLen("standard scaler", x, len(s.mean)); err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = (v - s.mean[i]) / s.scale[i]
	}
	return out, nil
}

// MinMaxScaler computes x * scale + min per feature, where min and scale
// are the fitted offsets rather than the data minimum.
type MinMaxScaler struct {
	offset []float64
	scale  []float64
}

func NewMinMaxScaler(offset, scale []float64) (*MinMaxScaler, error) {
	if len(offset) == 0 || len(offset) != len(scale) {
		return nil, fmt.Errorf("minmax scaler: min has %d values, scale has %d", len(offset), len(scale))
	}
	return &MinMaxScaler{offset: clone(offset), scale: clone(scale)}, nil
}

func (s *MinMaxScaler) Kind() string { return KindMinMax }
func (s *MinMaxScaler) Dim() int     { return len(s.offset) }

func (s *MinMaxScaler) Transform(x []float64) ([]float64, error) {
	if err := checkLen("minmax scaler", x, len(s.offset)); err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v*s.scale[i] + s.offset[i]
	}
	return out, nil
}

// IdentityScaler passes features through unchanged.
type IdentityScaler struct {
	dim int
}

func NewIdentityScaler(dim int) (*IdentityScaler, error) {
	if dim <= 0 {
		return nil, errors.New("identity scaler: dim must be positive")
	}
	return &IdentityScaler{dim: dim}, nil
}

func (s *IdentityScaler) Kind() string { return KindIdentity }
func (s *IdentityScaler) Dim() int     { return s.dim }

func (s *IdentityScaler) Transform(x []float64) ([]float64, error) {
	if err := checkLen("identity scaler", x, s.dim); err != nil {
		return nil, err
	}
	return clone(x), nil
}

func clone(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	return out
}
