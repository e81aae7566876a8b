package ui

import (
	"log"
	"net/http"

	"statq/app"
	"statq/internal/config"
	"statq/ports"

	"github.com/gin-gonic/gin"
)

// Server wires the evaluation and analysis services behind an HTTP API
type Server struct {
	router    *gin.Engine
	cfg       *config.Config
	eval      *app.EvaluationService
	analysis  *app.AnalysisService
	surveys   ports.SurveyRepository
	responses ports.ResponseRepository
}

// NewServer creates a server instance. Repositories may be nil for a
// compute-only deployment; the survey-scoped routes then return 503.
func NewServer(cfg *config.Config, surveys ports.SurveyRepository, responses ports.ResponseRepository) *Server {
	gin.SetMode(cfg.Server.GinMode)

	s := &Server{
		router: gin.Default(),
		cfg:    cfg,
		eval:   app.NewEvaluationService(),
		analysis: app.NewAnalysisService(app.AnalysisDefaults{
			ConfidenceLevel: cfg.Analysis.ConfidenceLevel,
			IQRMultiplier:   cfg.Analysis.IQRMultiplier,
			ZScoreThreshold: cfg.Analysis.ZScoreThreshold,
		}),
		surveys:   surveys,
		responses: responses,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	logicGroup := s.router.Group("/api/logic")
	{
		logicGroup.POST("/evaluate", s.handleEvaluate)
		logicGroup.POST("/cycles", s.handleCheckCycles)
		logicGroup.POST("/formula", s.handleFormula)
		logicGroup.POST("/validate", s.handleValidateAnswer)
	}

	analysisGroup := s.router.Group("/api/analysis")
	{
		analysisGroup.POST("/question", s.handleAnalyzeQuestion)
		analysisGroup.POST("/compare", s.handleCompareGroups)
		analysisGroup.POST("/crosstab", s.handleCrossTab)
		analysisGroup.POST("/independence", s.handleIndependence)
		analysisGroup.POST("/regression", s.handleRegression)
		analysisGroup.POST("/ttest/paired", s.handlePairedTTest)
		analysisGroup.POST("/proportion", s.handleProportion)
	}

	surveyGroup := s.router.Group("/api/surveys")
	{
		surveyGroup.POST("/:id/responses", s.handleSaveResponse)
		surveyGroup.GET("/:id/report", s.handleReport)
		surveyGroup.GET("/:id/report.html", s.handleReportHTML)
		surveyGroup.GET("/:id/export.xlsx", s.handleExport)
		surveyGroup.GET("/:id/velocity", s.handleVelocity)
	}
}

// Run starts the server on the configured port
func (s *Server) Run() error {
	addr := ":" + s.cfg.Server.Port
	log.Printf("[Server] listening on %s", addr)
	return s.router.Run(addr)
}

// Router exposes the gin engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) requireRepos(c *gin.Context) bool {
	if s.surveys == nil || s.responses == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "persistence is not configured"})
		return false
	}
	return true
}
