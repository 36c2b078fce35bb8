package artifact

import (
	"encoding/json"
	"fmt"

	"github.com/ghodss/yaml"
)

type header struct {
	Kind string `json:"kind"`
}

type scalerDoc struct {
	Mean  []float64 `json:"mean"`
	Min   []float64 `json:"min"`
	Scale []float64 `json:"scale"`
	Dim   int       `json:"dim"`
}

type modelDoc struct {
	Coef       [][]float64 `json:"coef"`
	Intercept  []float64   `json:"intercept"`
	Activation string      `json:"activation"`
	Layers     []Layer     `json:"layers"`
	Inputs     int         `json:"inputs"`
	Values     []float64   `json:"values"`
}

// toJSON accepts YAML or JSON and returns the JSON form along with the
// artifact kind.
func toJSON(data []byte) ([]byte, string, error) {
	b, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, "", err
	}
	h := new(header)
	if err := json.Unmarshal(b, h); err != nil {
		return nil, "", err
	}
	if h.Kind == "" {
		return nil, "", fmt.Errorf("missing artifact kind")
	}
	return b, h.Kind, nil
}

// ParseScaler decodes a scaler document.
func ParseScaler(data []byte) (Scaler, error) {
	b, kind, err := toJSON(data)
	if err != nil {
		return nil, err
	}
	doc := new(scalerDoc)
	if err := json.Unmarshal(b, doc); err != nil {
		return nil, err
	}
	switch kind {
	case KindStandard:
		return NewStandardScaler(doc.Mean, doc.Scale)
	case KindMinMax:
		return NewMinMaxScaler(doc.Min, doc.Scale)
	case KindIdentity:
		return NewIdentityScaler(doc.Dim)
	default:
		return nil, fmt.Errorf("unknown scaler kind %s", kind)
	}
}

// ParseModel decodes a model document.
func ParseModel(data []byte) (Model, error) {
	b, kind, err := toJSON(data)
	if err != nil {
		return nil, err
	}
	doc := new(modelDoc)
	if err := json.Unmarshal(b, doc); err != nil {
		return nil, err
	}
	switch kind {
	case KindLinear:
		return NewLinearModel(doc.Coef, doc.Intercept)
	case KindMLP:
		return NewMLPModel(doc.Activation, doc.Layers)
	case KindConstant:
		return NewConstantModel(doc.Inputs, doc.Values)
	default:
		return nil, fmt.Errorf("unknown model kind %s", kind)
	}
}
