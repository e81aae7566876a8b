package ui

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"statq/adapters/excel"
	"statq/app"
	"statq/domain/core"
	"statq/domain/survey"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

func (s *Server) handleSaveResponse(c *gin.Context) {
	if !s.requireRepos(c) {
		return
	}
	surveyID := core.SurveyID(c.Param("id"))

	var resp survey.Response
	if err := c.ShouldBindJSON(&resp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	resp.SurveyID = surveyID
	if resp.ID == "" {
		resp.ID = core.ResponseID(core.NewID())
	}
	if resp.SubmittedAt.IsZero() {
		resp.SubmittedAt = core.Now()
	}

	questions, err := s.surveys.GetQuestions(c.Request.Context(), surveyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	byID := make(map[core.QuestionID]survey.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	var issues []survey.ValidationIssue
	for _, a := range resp.Answers {
		if q, ok := byID[a.QuestionID]; ok {
			issues = append(issues, survey.ValidateAnswer(q, a.Value)...)
		}
	}
	if len(issues) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"valid": false, "issues": issues})
		return
	}

	if err := s.responses.SaveResponse(c.Request.Context(), resp); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": resp.ID})
}

// buildReport assembles the Markdown report for a survey from its stored
// questions and responses
func (s *Server) buildReport(c *gin.Context, surveyID core.SurveyID) (string, error) {
	ctx := c.Request.Context()

	questions, err := s.surveys.GetQuestions(ctx, surveyID)
	if err != nil {
		return "", err
	}
	responses, err := s.responses.GetResponses(ctx, surveyID)
	if err != nil {
		return "", err
	}

	report := app.NewReportBuilder(fmt.Sprintf("Survey %s", surveyID), time.Now())
	for _, q := range questions {
		answers := answersFor(responses, q.ID)
		analysis, err := s.analysis.AnalyzeQuestion(ctx, q, answers)
		if err != nil {
			return "", err
		}
		report.AddQuestion(q.Title, analysis)
	}
	report.AddVelocity(s.analysis.Velocity(responses))
	return report.String(), nil
}

func (s *Server) handleReport(c *gin.Context) {
	if !s.requireRepos(c) {
		return
	}
	doc, err := s.buildReport(c, core.SurveyID(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(doc))
}

func (s *Server) handleReportHTML(c *gin.Context) {
	if !s.requireRepos(c) {
		return
	}
	doc, err := s.buildReport(c, core.SurveyID(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	rendered := markdown.Render(p.Parse([]byte(doc)), renderer)

	c.Data(http.StatusOK, "text/html; charset=utf-8", rendered)
}

func (s *Server) handleExport(c *gin.Context) {
	if !s.requireRepos(c) {
		return
	}
	ctx := c.Request.Context()
	surveyID := core.SurveyID(c.Param("id"))

	questions, err := s.surveys.GetQuestions(ctx, surveyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	responses, err := s.responses.GetResponses(ctx, surveyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	analyses := make([]*app.QuestionAnalysis, 0, len(questions))
	for _, q := range questions {
		analysis, err := s.analysis.AnalyzeQuestion(ctx, q, answersFor(responses, q.ID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		analyses = append(analyses, analysis)
	}

	exporter := excel.NewExporter()
	if err := exporter.WriteSummary(analyses); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := exporter.WriteFrequencies(analyses); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="survey-%s.xlsx"`, surveyID))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := exporter.Save(c.Writer); err != nil {
		log.Printf("[handleExport] failed to stream workbook: %v", err)
	}
}

func (s *Server) handleVelocity(c *gin.Context) {
	if !s.requireRepos(c) {
		return
	}
	responses, err := s.responses.GetResponses(c.Request.Context(), core.SurveyID(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.analysis.Velocity(responses))
}

func answersFor(responses []survey.Response, questionID core.QuestionID) []survey.Answer {
	var out []survey.Answer
	for _, r := range responses {
		for _, a := range r.Answers {
			if a.QuestionID == questionID {
				out = append(out, a)
			}
		}
	}
	return out
}
