package optimal

import (
	"fmt"
)

// PointSample is one historical observation of the objective function
type PointSample struct {
	Point    []float64 `json:"point" binding:"required"`
	Value    float64   `json:"value"`
	ValueVar float64   `json:"value_var"`
}

// ClosedInterval is one [min, max] bound of the search domain
type ClosedInterval struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// GPInfo describes the Gaussian process prior and the sampled history
type GPInfo struct {
	PointsSampled  []PointSample    `json:"points_sampled" binding:"required"`
	Domain         []ClosedInterval `json:"domain,omitempty"`
	SignalVariance float64          `json:"signal_variance,omitempty"`
	LengthScale    float64          `json:"length_scale,omitempty"`
}

// EIRequest asks for expected improvement at a set of candidate points
type EIRequest struct {
	PointsToEvaluate   [][]float64 `json:"points_to_evaluate" binding:"required"`
	PointsBeingSampled [][]float64 `json:"points_being_sampled,omitempty"`
	GPInfo             GPInfo      `json:"gp_info" binding:"required"`
}

// EIResponse carries expected improvement per evaluated point, in order
type EIResponse struct {
	ExpectedImprovement []float64 `json:"expected_improvement"`
}

// MeanVarRequest asks for the GP posterior mean and variance at a set of points
type MeanVarRequest struct {
	PointsToSample [][]float64 `json:"points_to_sample" binding:"required"`
	GPInfo         GPInfo      `json:"gp_info" binding:"required"`
}

// MeanVarResponse carries the posterior mean and variance per point, in order
type MeanVarResponse struct {
	Mean []float64 `json:"mean"`
	Var  []float64 `json:"var"`
}

// NextPointsRequest asks for the next points to sample via expected
// parallel improvement
type NextPointsRequest struct {
	NumToSample        int         `json:"num_to_sample" binding:"required"`
	PointsBeingSampled [][]float64 `json:"points_being_sampled,omitempty"`
	GPInfo             GPInfo      `json:"gp_info" binding:"required"`
}

// NextPointsResponse carries the suggested points and their expected improvement
type NextPointsResponse struct {
	PointsToSample      [][]float64 `json:"points_to_sample"`
	ExpectedImprovement float64     `json:"expected_improvement"`
}

// dim returns the dimension of the sampled history, or an error when the
// history is empty or ragged
func (g *GPInfo) dim() (int, error) {
	if len(g.PointsSampled) == 0 {
		return 0, fmt.Errorf("gp_info.points_sampled must not be empty")
	}
	dim := len(g.PointsSampled[0].Point)
	if dim == 0 {
		return 0, fmt.Errorf("gp_info.points_sampled contains a zero-dimensional point")
	}
	for i, sample := range g.PointsSampled {
		if len(sample.Point) != dim {
			return 0, fmt.Errorf("gp_info.points_sampled[%d] has dimension %d, expected %d", i, len(sample.Point), dim)
		}
	}
	if len(g.Domain) != 0 && len(g.Domain) != dim {
		return 0, fmt.Errorf("domain has %d intervals, expected %d", len(g.Domain), dim)
	}
	return dim, nil
}

func checkPoints(name string, points [][]float64, dim int) error {
	for i, point := range points {
		if len(point) != dim {
			return fmt.Errorf("%s[%d] has dimension %d, expected %d", name, i, len(point), dim)
		}
	}
	return nil
}

// Validate checks the request for dimensional consistency
func (r *EIRequest) Validate() error {
	dim, err := r.GPInfo.dim()
	if err != nil {
		return err
	}
	if len(r.PointsToEvaluate) == 0 {
		return fmt.Errorf("points_to_evaluate must not be empty")
	}
	if err := checkPoints("points_to_evaluate", r.PointsToEvaluate, dim); err != nil {
		return err
	}
	return checkPoints("points_being_sampled", r.PointsBeingSampled, dim)
}

// Validate checks the request for dimensional consistency
func (r *MeanVarRequest) Validate() error {
	dim, err := r.GPInfo.dim()
	if err != nil {
		return err
	}
	if len(r.PointsToSample) == 0 {
		return fmt.Errorf("points_to_sample must not be empty")
	}
	return checkPoints("points_to_sample", r.PointsToSample, dim)
}

// Validate checks the request for dimensional consistency
func (r *NextPointsRequest) Validate() error {
	dim, err := r.GPInfo.dim()
	if err != nil {
		return err
	}
	if r.NumToSample <= 0 {
		return fmt.Errorf("num_to_sample must be positive")
	}
	return checkPoints("points_being_sampled", r.PointsBeingSampled, dim)
}
