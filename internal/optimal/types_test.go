package optimal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampledHistory(points ...[]float64) GPInfo {
	info := GPInfo{}
	for _, p := range points {
		info.PointsSampled = append(info.PointsSampled, PointSample{Point: p, Value: 1.0, ValueVar: 0.01})
	}
	return info
}

func TestEIRequestValidate(t *testing.T) {
	t.Parallel()

	t.Run("accepts consistent dimensions", func(t *testing.T) {
		req := EIRequest{
			PointsToEvaluate: [][]float64{{0.1, 0.2}},
			GPInfo:           sampledHistory([]float64{0.0, 0.0}, []float64{1.0, 1.0}),
		}
		require.NoError(t, req.Validate())
	})

	t.Run("rejects empty history", func(t *testing.T) {
		req := EIRequest{PointsToEvaluate: [][]float64{{0.1}}}
		require.Error(t, req.Validate())
	})

	t.Run("rejects ragged history", func(t *testing.T) {
		req := EIRequest{
			PointsToEvaluate: [][]float64{{0.1}},
			GPInfo:           sampledHistory([]float64{0.0}, []float64{1.0, 2.0}),
		}
		require.Error(t, req.Validate())
	})

	t.Run("rejects empty points to evaluate", func(t *testing.T) {
		req := EIRequest{GPInfo: sampledHistory([]float64{0.0})}
		require.Error(t, req.Validate())
	})

	t.Run("rejects mismatched candidate dimension", func(t *testing.T) {
		req := EIRequest{
			PointsToEvaluate: [][]float64{{0.1, 0.2}},
			GPInfo:           sampledHistory([]float64{0.0}),
		}
		require.Error(t, req.Validate())
	})

	t.Run("rejects mismatched domain", func(t *testing.T) {
		info := sampledHistory([]float64{0.0, 0.0})
		info.Domain = []ClosedInterval{{Min: 0, Max: 1}}
		req := EIRequest{
			PointsToEvaluate: [][]float64{{0.1, 0.2}},
			GPInfo:           info,
		}
		require.Error(t, req.Validate())
	})
}

func TestMeanVarRequestValidate(t *testing.T) {
	t.Parallel()

	req := MeanVarRequest{
		PointsToSample: [][]float64{{0.5}},
		GPInfo:         sampledHistory([]float64{0.0}),
	}
	require.NoError(t, req.Validate())

	req.PointsToSample = nil
	require.Error(t, req.Validate())
}

func TestNextPointsRequestValidate(t *testing.T) {
	t.Parallel()

	req := NextPointsRequest{
		NumToSample: 2,
		GPInfo:      sampledHistory([]float64{0.0}),
	}
	require.NoError(t, req.Validate())

	req.NumToSample = 0
	require.Error(t, req.Validate())
}

func TestUnimplemented(t *testing.T) {
	t.Parallel()

	solver := Unimplemented{}
	ctx := context.Background()

	_, err := solver.ExpectedImprovement(ctx, &EIRequest{})
	require.ErrorIs(t, err, ErrNotImplemented)

	_, err = solver.MeanVar(ctx, &MeanVarRequest{})
	require.ErrorIs(t, err, ErrNotImplemented)

	_, err = solver.NextPoints(ctx, &NextPointsRequest{})
	require.ErrorIs(t, err, ErrNotImplemented)
}
