package ui

import (
	"net/http"

	"statq/adapters/logic/engine"
	"statq/domain/core"
	"statq/domain/logic"
	"statq/domain/survey"

	"github.com/gin-gonic/gin"
)

// EvaluateRequest carries everything one evaluation pass needs
type EvaluateRequest struct {
	Questions []survey.Question                      `json:"questions"`
	Answers   map[core.QuestionID]survey.AnswerValue `json:"answers"`
	Rules     []logic.Rule                           `json:"rules"`
}

// EvaluateResponse pairs the raw evaluation result with the filtered
// question list most clients actually want
type EvaluateResponse struct {
	Result  *logic.EvaluationResult `json:"result"`
	Visible []survey.Question       `json:"visible_questions"`
}

func (s *Server) handleEvaluate(c *gin.Context) {
	var req EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	result := s.eval.Evaluate(req.Questions, req.Answers, req.Rules)
	c.JSON(http.StatusOK, EvaluateResponse{
		Result:  result,
		Visible: s.eval.VisibleQuestions(req.Questions, result),
	})
}

// CycleCheckRequest is the rule set to probe for circular dependencies
type CycleCheckRequest struct {
	Questions []survey.Question `json:"questions"`
	Rules     []logic.Rule      `json:"rules"`
}

func (s *Server) handleCheckCycles(c *gin.Context) {
	var req CycleCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	circular := s.eval.CheckCycles(req.Questions, req.Rules)
	c.JSON(http.StatusOK, gin.H{
		"has_cycles":         len(circular) > 0,
		"circular_questions": circular,
	})
}

// FormulaRequest evaluates one formula against explicit variable bindings
type FormulaRequest struct {
	Formula   string             `json:"formula"`
	Variables map[string]float64 `json:"variables"`
}

func (s *Server) handleFormula(c *gin.Context) {
	var req FormulaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	value, err := engine.EvaluateFormula(req.Formula, req.Variables)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"value": value})
}

// ValidateRequest checks one submitted answer against its question
type ValidateRequest struct {
	Question survey.Question    `json:"question"`
	Value    survey.AnswerValue `json:"value"`
}

func (s *Server) handleValidateAnswer(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	issues := survey.ValidateAnswer(req.Question, req.Value)
	c.JSON(http.StatusOK, gin.H{
		"valid":  len(issues) == 0,
		"issues": issues,
	})
}
