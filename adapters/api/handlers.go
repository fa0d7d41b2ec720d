package api

import (
	"net/http"

	"effsample/app"
	"effsample/domain/core"
	"effsample/domain/proportion"
	"effsample/domain/sample"
	"effsample/internal/analysis"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// handleCountUnivariate computes the effective sample size of one variable
func (s *Server) handleCountUnivariate(c *gin.Context) {
	var req UnivariateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBadRequest(c, err)
		return
	}

	seq, err := decodeSequence(req.Values)
	if err != nil {
		s.respondBadRequest(c, err)
		return
	}
	indicator, err := decodeIndicator(req.MissingIndicator)
	if err != nil {
		s.respondBadRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, sample.CountUnivariate(seq, indicator))
}

// handleCountMultivariate computes the jointly-complete sample size
// across named variables
func (s *Server) handleCountMultivariate(c *gin.Context) {
	var req MultivariateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBadRequest(c, err)
		return
	}

	indicator, err := decodeIndicator(req.MissingIndicator)
	if err != nil {
		s.respondBadRequest(c, err)
		return
	}

	seqs := make([]sample.Sequence, len(req.Variables))
	for i, v := range req.Variables {
		seq, err := decodeSequence(v.Values)
		if err != nil {
			s.respondBadRequest(c, err)
			return
		}
		seqs[i] = seq
	}

	result, err := sample.CountMultivariate(seqs, indicator)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// handleEstimate computes a proportion point estimate and interval
func (s *Server) handleEstimate(c *gin.Context) {
	var req EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBadRequest(c, err)
		return
	}

	level := proportion.DefaultConfidenceLevel
	if req.ConfidenceLevel != nil {
		level = *req.ConfidenceLevel
	}

	result, err := proportion.EstimateWith(req.Method, req.Successes, req.NEffective, level)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// handleCreateReport runs a full study and persists the report
func (s *Server) handleCreateReport(c *gin.Context) {
	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBadRequest(c, err)
		return
	}

	indicator, err := decodeIndicator(req.MissingIndicator)
	if err != nil {
		s.respondBadRequest(c, err)
		return
	}

	vars := make([]analysis.NamedSequence, len(req.Variables))
	for i, v := range req.Variables {
		seq, err := decodeSequence(v.Values)
		if err != nil {
			s.respondBadRequest(c, err)
			return
		}
		vars[i] = analysis.NamedSequence{Key: core.VariableKey(v.Name), Sequence: seq}
	}

	studyReq := app.StudyRequest{
		StudyName:        req.StudyName,
		Variables:        vars,
		MissingIndicator: indicator,
		Successes:        req.Successes,
		Method:           req.Method,
	}
	if req.ConfidenceLevel != nil {
		studyReq.ConfidenceLevel = *req.ConfidenceLevel
	}

	result, err := s.service.RunStudy(c.Request.Context(), studyReq)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// handleListReports returns the most recent reports
func (s *Server) handleListReports(c *gin.Context) {
	reports, err := s.reports.ListRecent(c.Request.Context(), 50)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// handleGetReport fetches one report by ID
func (s *Server) handleGetReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		s.respondBadRequest(c, err)
		return
	}

	report, err := s.reports.GetByID(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// handleRenderReport serves the report as rendered HTML
func (s *Server) handleRenderReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		s.respondBadRequest(c, err)
		return
	}

	report, err := s.reports.GetByID(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", RenderHTML(report))
}

// handleDeleteReport removes a report
func (s *Server) handleDeleteReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		s.respondBadRequest(c, err)
		return
	}

	if err := s.reports.Delete(c.Request.Context(), id); err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
