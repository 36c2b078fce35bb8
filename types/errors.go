package types

// ValidationError is returned when the caller supplied out-of-range or
// malformed level parameters.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Msg: msg}
}

// PredictionError is returned when the artifacts could not be loaded or
// applied. Msg is safe to show to callers, Err carries the diagnostics.
type PredictionError struct {
	Msg string
	Err error
}

func (e *PredictionError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *PredictionError) Unwrap() error { return e.Err }

func NewPredictionError(msg string, err error) *PredictionError {
	return &PredictionError{Msg: msg, Err: err}
}
