package api

import (
	"errors"
	"net/http"

	"effsample/app"
	"effsample/domain/core"
	"effsample/internal"
	"effsample/ports"

	"github.com/gin-gonic/gin"
)

// Server exposes the counting and estimation operations over HTTP
type Server struct {
	router  *gin.Engine
	service *app.ReportService
	reports ports.ReportRepository
	logger  *internal.Logger
}

// NewServer creates the API server and registers its routes
func NewServer(service *app.ReportService, reports ports.ReportRepository, logger *internal.Logger) *Server {
	s := &Server{
		router:  gin.Default(),
		service: service,
		reports: reports,
		logger:  logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/counts/univariate", s.handleCountUnivariate)
		v1.POST("/counts/multivariate", s.handleCountMultivariate)
		v1.POST("/estimate", s.handleEstimate)

		v1.POST("/reports", s.handleCreateReport)
		v1.GET("/reports", s.handleListReports)
		v1.GET("/reports/:id", s.handleGetReport)
		v1.GET("/reports/:id/rendered", s.handleRenderReport)
		v1.DELETE("/reports/:id", s.handleDeleteReport)
	}
}

// Run starts the HTTP server on the given port
func (s *Server) Run(port string) error {
	s.logger.Info("API server listening on :%s", port)
	return s.router.Run(":" + port)
}

// Handler exposes the underlying handler for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// respondError maps domain errors onto HTTP status codes
func (s *Server) respondError(c *gin.Context, err error) {
	switch {
	case core.IsInvalidArgument(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: invalidArgumentCode(err), Error: err.Error()})
	case core.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Code: "NOT_FOUND", Error: err.Error()})
	default:
		s.logger.Error("request failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR", Error: "internal error"})
	}
}

// respondBadRequest reports a malformed request body
func (s *Server) respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Code: "BAD_REQUEST", Error: err.Error()})
}

// invalidArgumentCode names which precondition failed
func invalidArgumentCode(err error) string {
	switch {
	case errors.Is(err, core.ErrEmptyInput):
		return "EMPTY_INPUT"
	case errors.Is(err, core.ErrLengthMismatch):
		return "LENGTH_MISMATCH"
	case errors.Is(err, core.ErrOutOfRange):
		return "OUT_OF_RANGE"
	default:
		return "INVALID_ARGUMENT"
	}
}
