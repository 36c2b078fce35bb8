package artifact

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	KindLinear   = "linear"
	KindMLP      = "mlp"
	KindConstant = "constant"
)

// LinearModel is a multi-output linear regression: y = coef·x + intercept.
// coef has one row per output.
type LinearModel struct {
	coef      *mat.Dense
	intercept *mat.VecDense
}

func NewLinearModel(coef [][]float64, intercept []float64) (*LinearModel, error) {
	w, err := dense("linear model coef", coef)
	if err != nil {
		return nil, err
	}
	rows, _ := w.Dims()
	if len(intercept) != rows {
		return nil, fmt.Errorf("linear model: %d coef rows but %d intercepts", rows, len(intercept))
	}
	return &LinearModel{
		coef:      w,
		intercept: mat.NewVecDense(rows, clone(intercept)),
	}, nil
}

func (m *LinearModel) Kind() string { return KindLinear }

func (m *LinearModel) InputDim() int {
	_, c := m.coef.Dims()
	return c
}

func (m *LinearModel) OutputDim() int {
	r, _ := m.coef.Dims()
	return r
}

func (m *LinearModel) Predict(x []float64) ([]float64, error) {
	if err := checkLen("linear model", x, m.InputDim()); err != nil {
		return nil, err
	}
	var out mat.VecDense
	out.MulVec(m.coef, mat.NewVecDense(len(x), clone(x)))
	out.AddVec(&out, m.intercept)
	return mat.Col(nil, 0, &out), nil
}

// Layer is one dense layer of a multi-layer perceptron. Weights are
// stored inputs × outputs.
type Layer struct {
	Weights [][]float64 `json:"weights"`
	Biases  []float64   `json:"biases"`
}

type mlpLayer struct {
	weights *mat.Dense
	biases  *mat.VecDense
}

// MLPModel is a feed-forward regressor. Hidden layers use the configured
// activation, the output layer is linear.
type MLPModel struct {
	activation string
	act        func(float64) float64
	layers     []mlpLayer
}

var activations = map[string]func(float64) float64{
	"identity": func(v float64) float64 { return v },
	"relu":     func(v float64) float64 { return math.Max(0, v) },
	"tanh":     math.Tanh,
	"logistic": func(v float64) float64 { return 1 / (1 + math.Exp(-v)) },
}

func NewMLPModel(activation string, layers []Layer) (*MLPModel, error) {
	if activation == "" {
		activation = "relu"
	}
	act, ok := activations[activation]
	if !ok {
		return nil, fmt.Errorf("mlp model: unknown activation %q", activation)
	}
	if len(layers) == 0 {
		return nil, errors.New("mlp model: no layers")
	}
	m := &MLPModel{activation: activation, act: act}
	prev := -1
	for i, l := range layers {
		w, err := dense(fmt.Sprintf("mlp layer %d weights", i), l.Weights)
		if err != nil {
			return nil, err
		}
		in, out := w.Dims()
		if prev != -1 && in != prev {
			return nil, fmt.Errorf("mlp model: layer %d takes %d inputs, previous layer emits %d", i, in, prev)
		}
		if len(l.Biases) != out {
			return nil, fmt.Errorf("mlp model: layer %d has %d outputs but %d biases", i, out, len(l.Biases))
		}
		m.layers = append(m.layers, mlpLayer{
			weights: w,
			biases:  mat.NewVecDense(out, clone(l.Biases)),
		})
		prev = out
	}
	return m, nil
}

func (m *MLPModel) Kind() string { return KindMLP }

func (m *MLPModel) InputDim() int {
	in, _ := m.layers[0].weights.Dims()
	return in
}

func (m *MLPModel) OutputDim() int {
	_, out := m.layers[len(m.layers)-1].weights.Dims()
	return out
}

func (m *MLPModel) Predict(x []float64) ([]float64, error) {
	if err := checkLen("mlp model", x, m.InputDim()); err != nil {
		return nil, err
	}
	h := mat.NewVecDense(len(x), clone(x))
	for i, l := range m.layers {
		var next mat.VecDense
		next.MulVec(l.weights.T(), h)
		next.AddVec(&next, l.biases)
		if i < len(m.layers)-1 {
			for j := 0; j < next.Len(); j++ {
				next.SetVec(j, m.act(next.AtVec(j)))
			}
		}
		h = &next
	}
	return mat.Col(nil, 0, h), nil
}

// ConstantModel returns the same outputs for every input of the right
// length.
type ConstantModel struct {
	inputs int
	values []float64
}

func NewConstantModel(inputs int, values []float64) (*ConstantModel, error) {
	if inputs <= 0 {
		return nil, errors.New("constant model: inputs must be positive")
	}
	if len(values) == 0 {
		return nil, errors.New("constant model: no values")
	}
	return &ConstantModel{inputs: inputs, values: clone(values)}, nil
}

func (m *ConstantModel) Kind() string   { return KindConstant }
func (m *ConstantModel) InputDim() int  { return m.inputs }
func (m *ConstantModel) OutputDim() int { return len(m.values) }

func (m *ConstantModel) Predict(x []float64) ([]float64, error) {
	if err := checkLen("constant model", x, m.inputs); err != nil {
		return nil, err
	}
	return clone(m.values), nil
}

func dense(what string, rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: empty matrix", what)
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d", what, i, len(r), cols)
		}
		data = append(data, r...)
	}
	return mat.NewDense(len(rows), cols, data), nil
}
