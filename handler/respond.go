package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/sokoverse/level-predictor/app/level"
	"github.com/sokoverse/level-predictor/app/predictor"
	"github.com/sokoverse/level-predictor/types"
)

const (
	msgSuccess         = "Prediction successful"
	msgFailed          = "Prediction failed"
	msgDetailsWithheld = "internal error, see server logs"
)

// Outcome is a fully built response: either every stage succeeded or
// exactly one stage failed.
type Outcome struct {
	Status int
	Body   interface{}
	// Err is the error that produced a non-200 outcome.
	Err error
}

// Evaluate runs validation, prediction and response building for one
// request.
func Evaluate(ctx context.Context, p predictor.Predictor, raw level.RawRequest, hideDetails bool) Outcome {
	req, err := level.Validate(raw)
	if err != nil {
		var verr *types.ValidationError
		if errors.As(err, &verr) {
			return Outcome{Status: http.StatusBadRequest, Body: types.ErrorResponse{Error: verr.Msg}, Err: err}
		}
		return Outcome{Status: http.StatusBadRequest, Body: types.ErrorResponse{Error: err.Error()}, Err: err}
	}

	res, err := p.Predict(ctx, req)
	if err != nil {
		details := err.Error()
		if hideDetails {
			details = msgDetailsWithheld
		}
		return Outcome{
			Status: http.StatusInternalServerError,
			Body:   types.ErrorResponse{Error: msgFailed, Details: details},
			Err:    err,
		}
	}

	return Outcome{
		Status: http.StatusOK,
		Body: types.PredictionResponse{
			Message:           msgSuccess,
			PredictionRequest: req,
			PredictionResult:  *res,
		},
	}
}
