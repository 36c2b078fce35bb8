package predictor

import (
	"context"

	"github.com/sokoverse/level-predictor/types"
)

// Predictor defines the interface for predicting level generation metrics.
type Predictor interface {
	// Predict returns the rounded generation time, success chance (as a
	// percentage) and attempt count for a validated request. Failures
	// are returned as *types.PredictionError.
	Predict(ctx context.Context, req types.PredictionRequest) (*types.PredictionResult, error)

	// Name returns the name of the predictor implementation.
	Name() string
}
