package types

// Field names used to label validation failures.
const (
	FieldBoxes    = "boxes"
	FieldMinWalls = "minWalls"
)

// PredictionRequest is a validated set of level parameters.
type PredictionRequest struct {
	Height   int `json:"height"`
	Width    int `json:"width"`
	Boxes    int `json:"boxes"`
	MinWalls int `json:"minWalls"`
}

// Features returns the model input in training order.
func (r PredictionRequest) Features() []float64 {
	return []float64{
		float64(r.Height),
		float64(r.Width),
		float64(r.Boxes),
		float64(r.MinWalls),
	}
}

// PredictionResult holds the three model outputs after rounding.
// SuccessChance is a percentage.
type PredictionResult struct {
	GenerationTime float64 `json:"level_generation_time"`
	SuccessChance  float64 `json:"level_success_chance"`
	Attempts       float64 `json:"level_attempts"`
}

// PredictionResponse is the success payload of the predict endpoint.
type PredictionResponse struct {
	Message string `json:"message"`
	PredictionRequest
	PredictionResult
}

// ErrorResponse is the failure payload of the predict endpoint.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
