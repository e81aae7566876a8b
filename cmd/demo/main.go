package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"statq/app"
	"statq/internal/testkit"
)

// Generates a deterministic demo dataset, runs the full analysis battery over
// it and prints the Markdown report to stdout. Useful for eyeballing output
// formats without a database.
func main() {
	kit := testkit.NewTestKit(42)
	questions := kit.SatisfactionSurvey()
	responses := kit.Responses(200, time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC))

	analysis := app.NewAnalysisService(app.AnalysisDefaults{})
	report := app.NewReportBuilder("Satisfaction Survey Demo", time.Now())

	ctx := context.Background()
	for _, q := range questions {
		answers := testkit.AnswersFor(responses, q.ID)
		a, err := analysis.AnalyzeQuestion(ctx, q, answers)
		if err != nil {
			log.Fatalf("Analysis failed for %s: %v", q.ID, err)
		}
		report.AddQuestion(q.Title, a)
	}

	report.AddComparison("Rating by customer segment", analysis.CompareGroups(
		testkit.AnswersFor(responses, "q_rating"),
		testkit.AnswersFor(responses, "q_segment"),
	))
	report.AddVelocity(analysis.Velocity(responses))

	fmt.Print(report.String())
}
