// Package artifact loads and applies the fitted feature scaler and
// regression model exported by the training pipeline.
package artifact

import (
	"context"
	"fmt"
)

// Scaler transforms a raw feature vector into the space the model was
// trained on.
type Scaler interface {
	Kind() string
	Dim() int
	Transform(x []float64) ([]float64, error)
}

// Model maps a scaled feature vector to its predicted outputs.
type Model interface {
	Kind() string
	InputDim() int
	OutputDim() int
	Predict(x []float64) ([]float64, error)
}

// Bundle is a scaler and the model fitted alongside it. A loaded bundle
// is never mutated.
type Bundle struct {
	Scaler Scaler
	Model  Model
}

// Source provides artifact bundles.
type Source interface {
	Load(ctx context.Context) (*Bundle, error)
}

// Check verifies that the scaler and the model both accept features
// inputs and that the model produces at least outputs values.
func (b *Bundle) Check(features, outputs int) error {
	if b.Scaler.Dim() != features {
		return fmt.Errorf("scaler expects %d features, have %d", b.Scaler.Dim(), features)
	}
	if b.Model.InputDim() != features {
		return fmt.Errorf("model expects %d features, have %d", b.Model.InputDim(), features)
	}
	if b.Model.OutputDim() < outputs {
		return fmt.Errorf("model produces %d outputs, need %d", b.Model.OutputDim(), outputs)
	}
	return nil
}

// Apply scales x and runs the model on the result.
func (b *Bundle) Apply(x []float64) ([]float64, error) {
	scaled, err := b.Scaler.Transform(x)
	if err != nil {
		return nil, err
	}
	return b.Model.Predict(scaled)
}

func checkLen(what string, x []float64, want int) error {
	if len(x) != want {
		return fmt.Errorf("%s: expected %d features, got %d", what, want, len(x))
	}
	return nil
}
