package level

import (
	"github.com/sokoverse/level-predictor/types"
)

const (
	MinSide  = 5
	MaxSide  = 12
	MinWalls = 5
	MaxWalls = 12
)

// Messages returned to the caller, one per check.
const (
	MsgDimensions = "Width and Height must be between 5 and 12"
	MsgBoxes      = "Boxes must be 2, 3, or 4"
	MsgMinWalls   = "minWalls must be between 5 and 12"
)

// Field labels carried by validation errors.
const (
	FieldDimensions = "dimensions"
	FieldBoxes      = types.FieldBoxes
	FieldMinWalls   = types.FieldMinWalls
)

var allowedBoxes = map[int]bool{2: true, 3: true, 4: true}

// Validate checks the request and returns the typed parameters. Checks
// run in a fixed order (width and height, then boxes, then minWalls) and
// the first failure is returned as a *types.ValidationError. An unset
// field fails its own check.
func Validate(raw RawRequest) (types.PredictionRequest, error) {
	if !inRange(raw.Width, MinSide, MaxSide) || !inRange(raw.Height, MinSide, MaxSide) {
		return types.PredictionRequest{}, types.NewValidationError(FieldDimensions, MsgDimensions)
	}
	if raw.Boxes == nil || !allowedBoxes[*raw.Boxes] {
		return types.PredictionRequest{}, types.NewValidationError(FieldBoxes, MsgBoxes)
	}
	if !inRange(raw.MinWalls, MinWalls, MaxWalls) {
		return types.PredictionRequest{}, types.NewValidationError(FieldMinWalls, MsgMinWalls)
	}
	return types.PredictionRequest{
		Height:   *raw.Height,
		Width:    *raw.Width,
		Boxes:    *raw.Boxes,
		MinWalls: *raw.MinWalls,
	}, nil
}

func inRange(v *int, lo, hi int) bool {
	return v != nil && *v >= lo && *v <= hi
}
