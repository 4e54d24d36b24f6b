package annealing

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/capclust"
	"github.com/hupe1980/capclust/distance"
)

// Model is the portable form of a fitted solver: everything Predict needs,
// plus the training labels. It is what modelstore persists.
//
// Metric records the solver's configured metric by stable name. A solver
// fitted with a custom Distance function restores with that declared metric;
// callers that need the custom function back must re-inject it via the
// Options of NewFromModel.
type Model struct {
	K            int         `json:"k"`
	Distribution []float64   `json:"distribution"`
	Metric       string      `json:"metric"`
	Centers      [][]float64 `json:"centers"`
	Eta          []float64   `json:"eta"`
	Demand       []float64   `json:"demand"`
	Beta         float64     `json:"beta"`
	Labels       []int       `json:"labels"`
}

// Snapshot exports the fitted state as a Model. It requires a prior Fit.
func (s *Solver) Snapshot() (*Model, error) {
	if !s.fitted {
		return nil, capclust.ErrNotFitted
	}

	k, _ := s.centers.Dims()
	centers := make([][]float64, k)
	for j := 0; j < k; j++ {
		centers[j] = append([]float64(nil), s.centers.RawRowView(j)...)
	}

	return &Model{
		K:            s.k,
		Distribution: s.Distribution(),
		Metric:       s.opts.Metric.String(),
		Centers:      centers,
		Eta:          append([]float64(nil), s.eta...),
		Demand:       append([]float64(nil), s.demand...),
		Beta:         s.beta,
		Labels:       s.Labels(),
	}, nil
}

// NewFromModel reconstructs a fitted solver from a Model. The returned
// solver can Predict (and Rebalance against the original point set) without
// refitting. Options are applied on top of the model's metric, so a custom
// Distance can be re-injected.
func NewFromModel(m *Model, optFns ...func(o *Options)) (*Solver, error) {
	metric, ok := distance.ByName(m.Metric)
	if !ok {
		return nil, fmt.Errorf("model references unknown metric %q", m.Metric)
	}

	withMetric := append([]func(o *Options){func(o *Options) {
		o.Metric = metric
	}}, optFns...)

	s, err := New(m.K, m.Distribution, withMetric...)
	if err != nil {
		return nil, err
	}

	if len(m.Centers) != m.K {
		return nil, fmt.Errorf("model has %d centers for k=%d", len(m.Centers), m.K)
	}
	d := len(m.Centers[0])
	if d < 1 {
		return nil, fmt.Errorf("model centers have no feature dimensions")
	}
	centers := mat.NewDense(m.K, d, nil)
	for j, row := range m.Centers {
		if len(row) != d {
			return nil, fmt.Errorf("model center %d has dimension %d, want %d", j, len(row), d)
		}
		centers.SetRow(j, row)
	}
	if len(m.Eta) != m.K {
		return nil, fmt.Errorf("model eta has length %d, want %d", len(m.Eta), m.K)
	}

	s.fitted = true
	s.centers = centers
	s.eta = append([]float64(nil), m.Eta...)
	s.demand = append([]float64(nil), m.Demand...)
	s.beta = m.Beta
	s.labels = append([]int(nil), m.Labels...)
	s.capacity = capacities(len(m.Labels), s.lambda)
	return s, nil
}
