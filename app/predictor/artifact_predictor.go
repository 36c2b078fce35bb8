package predictor

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/sokoverse/level-predictor/app/artifact"
	"github.com/sokoverse/level-predictor/types"
)

const (
	// featureCount is the length of the model input vector.
	featureCount = 4
	// outputCount is the number of model outputs consumed.
	outputCount = 3
)

// ArtifactPredictor applies a fitted scaler and regression model to the
// level parameters.
type ArtifactPredictor struct {
	source artifact.Source
}

// NewArtifactPredictor creates a predictor that obtains its artifacts
// from source on every call. Wrap source in an artifact.CachedSource to
// load them once.
func NewArtifactPredictor(source artifact.Source) *ArtifactPredictor {
	return &ArtifactPredictor{source: source}
}

func (p *ArtifactPredictor) Name() string {
	return "artifact-predictor"
}

func (p *ArtifactPredictor) Predict(ctx context.Context, req types.PredictionRequest) (*types.PredictionResult, error) {
	bundle, err := p.source.Load(ctx)
	if err != nil {
		return nil, types.NewPredictionError("cannot load artifacts", err)
	}
	if bundle == nil || bundle.Scaler == nil || bundle.Model == nil {
		return nil, types.NewPredictionError("cannot load artifacts", errors.New("source returned no artifacts"))
	}
	if err := bundle.Check(featureCount, outputCount); err != nil {
		return nil, types.NewPredictionError("artifact shape mismatch", err)
	}

	out, err := bundle.Apply(req.Features())
	if err != nil {
		return nil, types.NewPredictionError("inference failed", err)
	}
	if len(out) < outputCount {
		return nil, types.NewPredictionError("inference failed",
			fmt.Errorf("model returned %d values, need %d", len(out), outputCount))
	}
	for i, v := range out[:outputCount] {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, types.NewPredictionError("inference failed",
				fmt.Errorf("model output %d is not finite: %v", i, v))
		}
	}

	return &types.PredictionResult{
		GenerationTime: Round3(out[0]),
		// rounded first, then scaled to a percentage.
		SuccessChance: Round3(out[1]) * 100,
		Attempts:      Round3(out[2]),
	}, nil
}
