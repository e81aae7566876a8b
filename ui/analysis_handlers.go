package ui

import (
	"errors"
	"net/http"

	"statq/adapters/stats"
	"statq/domain/core"
	"statq/domain/survey"

	"github.com/gin-gonic/gin"
)

// AnalyzeQuestionRequest runs the full battery over one question's answers
type AnalyzeQuestionRequest struct {
	Question survey.Question `json:"question"`
	Answers  []survey.Answer `json:"answers"`
}

func (s *Server) handleAnalyzeQuestion(c *gin.Context) {
	var req AnalyzeQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	analysis, err := s.analysis.AnalyzeQuestion(c.Request.Context(), req.Question, req.Answers)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// CompareRequest splits a numeric target by a categorical filter
type CompareRequest struct {
	TargetAnswers []survey.Answer `json:"target_answers"`
	FilterAnswers []survey.Answer `json:"filter_answers"`
}

func (s *Server) handleCompareGroups(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.analysis.CompareGroups(req.TargetAnswers, req.FilterAnswers))
}

// CrossTabRequest groups a target question's answers by a filter category
type CrossTabRequest struct {
	Target        survey.Question `json:"target"`
	TargetAnswers []survey.Answer `json:"target_answers"`
	FilterAnswers []survey.Answer `json:"filter_answers"`
}

func (s *Server) handleCrossTab(c *gin.Context) {
	var req CrossTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.analysis.CrossTab(req.Target, req.TargetAnswers, req.FilterAnswers))
}

// IndependenceRequest tests two categorical questions for independence
type IndependenceRequest struct {
	Answers1 []survey.Answer `json:"answers1"`
	Answers2 []survey.Answer `json:"answers2"`
}

func (s *Server) handleIndependence(c *gin.Context) {
	var req IndependenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	result := s.analysis.Independence(req.Answers1, req.Answers2)
	if result == nil {
		c.JSON(http.StatusOK, gin.H{
			"applicable": false,
			"reason":     "chi-square needs at least 2 categories on each side",
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

// RegressionRequest regresses one numeric question on another
type RegressionRequest struct {
	XAnswers []survey.Answer `json:"x_answers"`
	YAnswers []survey.Answer `json:"y_answers"`
}

func (s *Server) handleRegression(c *gin.Context) {
	var req RegressionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	result, err := s.analysis.Correlate(req.XAnswers, req.YAnswers)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// PairedTTestRequest compares before/after measurements pair by pair
type PairedTTestRequest struct {
	Before []float64             `json:"before"`
	After  []float64             `json:"after"`
	Level  stats.ConfidenceLevel `json:"level"`
}

func (s *Server) handlePairedTTest(c *gin.Context) {
	var req PairedTTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.Level == 0 {
		req.Level = s.cfg.Analysis.ConfidenceLevel
	}

	result, err := stats.PairedTTest(req.Before, req.After, req.Level)
	if err != nil {
		if errors.Is(err, core.ErrMismatchedPairs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ProportionRequest builds a Wilson score interval for successes/total
type ProportionRequest struct {
	Successes int                   `json:"successes"`
	Total     int                   `json:"total"`
	Level     stats.ConfidenceLevel `json:"level"`
}

func (s *Server) handleProportion(c *gin.Context) {
	var req ProportionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.Level == 0 {
		req.Level = s.cfg.Analysis.ConfidenceLevel
	}
	c.JSON(http.StatusOK, stats.WilsonInterval(req.Successes, req.Total, req.Level))
}
