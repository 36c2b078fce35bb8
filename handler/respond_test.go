package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sokoverse/level-predictor/app/level"
	"github.com/sokoverse/level-predictor/types"
	"github.com/stretchr/testify/assert"
)

type stubPredictor struct {
	res   *types.PredictionResult
	err   error
	calls int
}

func (s *stubPredictor) Name() string { return "stub" }

func (s *stubPredictor) Predict(context.Context, types.PredictionRequest) (*types.PredictionResult, error) {
	s.calls++
	return s.res, s.err
}

func TestEvaluate_Success(t *testing.T) {
	p := &stubPredictor{res: &types.PredictionResult{GenerationTime: 1.5, SuccessChance: 87.5, Attempts: 4}}
	out := Evaluate(context.Background(), p, level.FromInts(8, 9, 3, 6), false)

	assert.Equal(t, http.StatusOK, out.Status)
	assert.NoError(t, out.Err)
	want := types.PredictionResponse{
		Message:           "Prediction successful",
		PredictionRequest: types.PredictionRequest{Height: 8, Width: 9, Boxes: 3, MinWalls: 6},
		PredictionResult:  types.PredictionResult{GenerationTime: 1.5, SuccessChance: 87.5, Attempts: 4},
	}
	if diff := cmp.Diff(want, out.Body); diff != "" {
		t.Errorf("unexpected response (-want +got):\n%s", diff)
	}
}

func TestEvaluate_ValidationSkipsPredictor(t *testing.T) {
	p := &stubPredictor{}
	out := Evaluate(context.Background(), p, level.FromInts(8, 8, 5, 6), false)

	assert.Equal(t, http.StatusBadRequest, out.Status)
	assert.Equal(t, types.ErrorResponse{Error: level.MsgBoxes}, out.Body)
	assert.Zero(t, p.calls)
}

func TestEvaluate_PredictionFailure(t *testing.T) {
	perr := types.NewPredictionError("cannot load artifacts", errors.New("open prediction/model.yaml: no such file or directory"))

	out := Evaluate(context.Background(), &stubPredictor{err: perr}, level.FromInts(8, 8, 3, 6), false)
	assert.Equal(t, http.StatusInternalServerError, out.Status)
	assert.Equal(t, types.ErrorResponse{
		Error:   "Prediction failed",
		Details: "cannot load artifacts: open prediction/model.yaml: no such file or directory",
	}, out.Body)
	assert.Same(t, perr, out.Err)

	out = Evaluate(context.Background(), &stubPredictor{err: perr}, level.FromInts(8, 8, 3, 6), true)
	assert.Equal(t, types.ErrorResponse{Error: "Prediction failed", Details: msgDetailsWithheld}, out.Body)
}
