package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moehq/moe/internal/optimal"
)

// Gaussian process endpoints. Handlers bind and validate the payload,
// then delegate to the configured solver; the computation itself lives
// behind the optimal.Solver boundary.

// gpEI handles POST /gp/ei
func (s *Server) gpEI(c *gin.Context) {
	var req optimal.EIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.errorResponse(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := s.solver.ExpectedImprovement(c.Request.Context(), &req)
	if err != nil {
		s.solverError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// gpMeanVar handles POST /gp/mean_var
func (s *Server) gpMeanVar(c *gin.Context) {
	var req optimal.MeanVarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.errorResponse(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := s.solver.MeanVar(c.Request.Context(), &req)
	if err != nil {
		s.solverError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// gpNextPointsEPI handles POST /gp/next_points/epi
func (s *Server) gpNextPointsEPI(c *gin.Context) {
	var req optimal.NextPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.errorResponse(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := s.solver.NextPoints(c.Request.Context(), &req)
	if err != nil {
		s.solverError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) solverError(c *gin.Context, err error) {
	if errors.Is(err, optimal.ErrNotImplemented) {
		s.errorResponse(c, http.StatusNotImplemented, "no solver configured")
		return
	}
	s.errorResponse(c, http.StatusInternalServerError, "Solver failed: "+err.Error())
}

// Example payloads served by the pretty endpoints

var exampleGPInfo = optimal.GPInfo{
	PointsSampled: []optimal.PointSample{
		{Point: []float64{0.0}, Value: 1.0, ValueVar: 0.01},
		{Point: []float64{0.5}, Value: -1.2, ValueVar: 0.01},
	},
	Domain: []optimal.ClosedInterval{{Min: 0.0, Max: 1.0}},
}

// gpEIPretty handles GET /gp/ei/pretty
func (s *Server) gpEIPretty(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, gin.H{
		"endpoint": "/gp/ei",
		"method":   http.MethodPost,
		"request": optimal.EIRequest{
			PointsToEvaluate: [][]float64{{0.1}, {0.9}},
			GPInfo:           exampleGPInfo,
		},
		"response": optimal.EIResponse{
			ExpectedImprovement: []float64{0.23, 0.87},
		},
	})
}

// gpMeanVarPretty handles GET /gp/mean_var/pretty
func (s *Server) gpMeanVarPretty(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, gin.H{
		"endpoint": "/gp/mean_var",
		"method":   http.MethodPost,
		"request": optimal.MeanVarRequest{
			PointsToSample: [][]float64{{0.25}},
			GPInfo:         exampleGPInfo,
		},
		"response": optimal.MeanVarResponse{
			Mean: []float64{-0.1},
			Var:  []float64{0.5},
		},
	})
}

// gpNextPointsEPIPretty handles GET /gp/next_points/epi/pretty
func (s *Server) gpNextPointsEPIPretty(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, gin.H{
		"endpoint": "/gp/next_points/epi",
		"method":   http.MethodPost,
		"request": optimal.NextPointsRequest{
			NumToSample: 1,
			GPInfo:      exampleGPInfo,
		},
		"response": optimal.NextPointsResponse{
			PointsToSample:      [][]float64{{0.74}},
			ExpectedImprovement: 0.44,
		},
	})
}
