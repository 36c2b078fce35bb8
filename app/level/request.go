// Package level parses and validates the level parameters accepted by
// the generation-rate predictor.
package level

import (
	"encoding/json"
	"math"
)

// RawRequest holds the four level parameters as decoded from the
// request body. A nil field was absent, null, non-numeric or not a
// whole number.
type RawRequest struct {
	Height   *int
	Width    *int
	Boxes    *int
	MinWalls *int
}

// Parse decodes a JSON object into a RawRequest. It never fails: a body
// that is not a JSON object produces a request with every field unset,
// which Validate then rejects.
func Parse(body []byte) RawRequest {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return RawRequest{}
	}
	return RawRequest{
		Height:   intField(fields, "height"),
		Width:    intField(fields, "width"),
		Boxes:    intField(fields, "boxes"),
		MinWalls: intField(fields, "minWalls"),
	}
}

// FromInts builds a RawRequest with every field set.
func FromInts(height, width, boxes, minWalls int) RawRequest {
	return RawRequest{
		Height:   &height,
		Width:    &width,
		Boxes:    &boxes,
		MinWalls: &minWalls,
	}
}

func intField(fields map[string]json.RawMessage, name string) *int {
	raw, ok := fields[name]
	if !ok {
		return nil
	}
	// strings, booleans, objects and null all fail here.
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil
	}
	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return nil
	}
	v := int(f)
	return &v
}
