package optimal

import (
	"context"
	"errors"
)

// ErrNotImplemented is returned by solvers that do not support an operation
var ErrNotImplemented = errors.New("solver not implemented")

// Solver computes Gaussian process quantities for the HTTP endpoints.
// The computation backend lives outside this service; implementations
// typically shell out to or link against an optimization engine.
type Solver interface {
	ExpectedImprovement(ctx context.Context, req *EIRequest) (*EIResponse, error)
	MeanVar(ctx context.Context, req *MeanVarRequest) (*MeanVarResponse, error)
	NextPoints(ctx context.Context, req *NextPointsRequest) (*NextPointsResponse, error)
}

// Unimplemented is the default solver wired when no computation backend
// is configured; every operation returns ErrNotImplemented.
type Unimplemented struct{}

func (Unimplemented) ExpectedImprovement(ctx context.Context, req *EIRequest) (*EIResponse, error) {
	return nil, ErrNotImplemented
}

func (Unimplemented) MeanVar(ctx context.Context, req *MeanVarRequest) (*MeanVarResponse, error) {
	return nil, ErrNotImplemented
}

func (Unimplemented) NextPoints(ctx context.Context, req *NextPointsRequest) (*NextPointsResponse, error) {
	return nil, ErrNotImplemented
}
