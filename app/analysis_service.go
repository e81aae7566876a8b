package app

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"statq/adapters/stats"
	"statq/domain/core"
	"statq/domain/survey"
)

// AnalysisDefaults carries the statistical parameters applied when a request
// does not override them
type AnalysisDefaults struct {
	ConfidenceLevel stats.ConfidenceLevel
	IQRMultiplier   float64
	ZScoreThreshold float64
}

// QuestionAnalysis is the full battery of statistics for one question. Which
// blocks are populated depends on the question's type: numeric questions get
// the distribution battery, choice questions a frequency distribution, text
// questions a sample of responses.
type QuestionAnalysis struct {
	QuestionID    core.QuestionID            `json:"question_id"`
	QuestionType  survey.QuestionType        `json:"question_type"`
	ResponseCount int                        `json:"response_count"`
	Descriptive   *stats.DescriptiveStats    `json:"descriptive,omitempty"`
	Quartiles     *stats.QuartileAnalysis    `json:"quartiles,omitempty"`
	BoxPlot       *stats.BoxPlotData         `json:"box_plot,omitempty"`
	IQROutliers   *stats.OutlierResult       `json:"iqr_outliers,omitempty"`
	ZOutliers     *stats.OutlierResult       `json:"z_outliers,omitempty"`
	Normality     *stats.NormalityTestResult `json:"normality,omitempty"`
	Confidence    *stats.ConfidenceInterval  `json:"confidence,omitempty"`
	Frequencies   map[string]int             `json:"frequencies,omitempty"`
	TextSamples   []string                   `json:"text_samples,omitempty"`
}

// AnalysisService composes the statistical primitives over question answer
// sets. Each primitive is pure, so the battery fans out concurrently and
// assembles a deterministic result regardless of completion order.
type AnalysisService struct {
	defaults AnalysisDefaults
}

// NewAnalysisService creates the service with the given defaults
func NewAnalysisService(defaults AnalysisDefaults) *AnalysisService {
	if defaults.ConfidenceLevel == 0 {
		defaults.ConfidenceLevel = stats.Confidence95
	}
	if defaults.IQRMultiplier == 0 {
		defaults.IQRMultiplier = stats.DefaultIQRMultiplier
	}
	if defaults.ZScoreThreshold == 0 {
		defaults.ZScoreThreshold = stats.DefaultZScoreThreshold
	}
	return &AnalysisService{defaults: defaults}
}

// AnalyzeQuestion runs the battery appropriate to the question's type
func (s *AnalysisService) AnalyzeQuestion(ctx context.Context, q survey.Question, answers []survey.Answer) (*QuestionAnalysis, error) {
	analysis := &QuestionAnalysis{
		QuestionID:    q.ID,
		QuestionType:  q.Type,
		ResponseCount: len(answers),
	}

	switch {
	case q.Type.IsNumeric():
		values := stats.NumericValues(answers)
		if err := s.numericBattery(ctx, analysis, values); err != nil {
			return nil, err
		}
	case q.Type.IsChoice():
		analysis.Frequencies = stats.FrequencyDistribution(answers)
	default:
		texts := stats.TextValues(answers)
		if len(texts) > 5 {
			texts = texts[:5]
		}
		analysis.TextSamples = texts
	}

	log.Printf("[AnalysisService] analyzed question %s (%s) over %d answers",
		q.ID, q.Type, len(answers))
	return analysis, nil
}

// numericBattery fans the independent numeric statistics out on an errgroup.
// Every primitive writes to its own field, so the assembly is deterministic.
func (s *AnalysisService) numericBattery(ctx context.Context, analysis *QuestionAnalysis, values []float64) error {
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		d := stats.Describe(values)
		analysis.Descriptive = &d
		return nil
	})
	g.Go(func() error {
		q := stats.Quartiles(values)
		analysis.Quartiles = &q
		return nil
	})
	g.Go(func() error {
		b := stats.BoxPlot(values)
		analysis.BoxPlot = &b
		return nil
	})
	g.Go(func() error {
		o := stats.IQROutliers(values, s.defaults.IQRMultiplier)
		analysis.IQROutliers = &o
		return nil
	})
	g.Go(func() error {
		o := stats.ZScoreOutliers(values, s.defaults.ZScoreThreshold)
		analysis.ZOutliers = &o
		return nil
	})
	g.Go(func() error {
		n := stats.TestNormality(values)
		analysis.Normality = &n
		return nil
	})
	g.Go(func() error {
		c := stats.MeanConfidenceInterval(values, s.defaults.ConfidenceLevel)
		analysis.Confidence = &c
		return nil
	})

	return g.Wait()
}

// CompareGroups splits a numeric target question by a categorical filter
// question and t-tests the two largest categories. More than two categories
// fall through to a one-way ANOVA over all of them.
type GroupComparison struct {
	TTest *stats.TTestResult `json:"t_test,omitempty"`
	ANOVA *stats.ANOVAResult `json:"anova,omitempty"`
}

func (s *AnalysisService) CompareGroups(targetAnswers, filterAnswers []survey.Answer) GroupComparison {
	categoryByResponse := make(map[core.ResponseID]string, len(filterAnswers))
	for _, a := range filterAnswers {
		if c := a.Value.Category(); c != "" {
			categoryByResponse[a.ResponseID] = c
		}
	}

	grouped := make(map[string][]float64)
	for _, a := range targetAnswers {
		cat, ok := categoryByResponse[a.ResponseID]
		if !ok {
			continue
		}
		if v, numOK := a.Value.Numeric(); numOK {
			grouped[cat] = append(grouped[cat], v)
		}
	}

	groups := make([]stats.ANOVAGroup, 0, len(grouped))
	for label, values := range grouped {
		groups = append(groups, stats.ANOVAGroup{Label: label, Values: values})
	}
	sortGroupsBysize(groups)

	var cmp GroupComparison
	switch {
	case len(groups) == 2:
		t := stats.IndependentTTest(groups[0].Values, groups[1].Values, s.defaults.ConfidenceLevel)
		cmp.TTest = &t
	case len(groups) > 2:
		a := stats.OneWayANOVA(groups)
		cmp.ANOVA = &a
	}
	return cmp
}

// CrossTab delegates to the cross-tabulation primitive
func (s *AnalysisService) CrossTab(target survey.Question, targetAnswers, filterAnswers []survey.Answer) stats.CrossTabResult {
	return stats.CrossTabulate(target, targetAnswers, filterAnswers)
}

// Independence runs the chi-square test over two categorical questions
func (s *AnalysisService) Independence(answers1, answers2 []survey.Answer) *stats.ChiSquareResult {
	return stats.ChiSquareTest(answers1, answers2)
}

// Correlate regresses one numeric question on another over paired responses
func (s *AnalysisService) Correlate(xAnswers, yAnswers []survey.Answer) (stats.RegressionResult, error) {
	xs, ys := stats.PairedNumeric(xAnswers, yAnswers)
	return stats.SimpleLinearRegression(xs, ys)
}

// Velocity analyzes submission timing for a set of responses
func (s *AnalysisService) Velocity(responses []survey.Response) stats.VelocityAnalysis {
	timestamps := make([]time.Time, 0, len(responses))
	for _, r := range responses {
		if !r.SubmittedAt.IsZero() {
			timestamps = append(timestamps, r.SubmittedAt.Time())
		}
	}
	return stats.AnalyzeVelocity(timestamps)
}

func sortGroupsBysize(groups []stats.ANOVAGroup) {
	for i := 1; i < len(groups); i++ {
		for j := i; j > 0; j-- {
			gj, gp := groups[j], groups[j-1]
			if len(gj.Values) > len(gp.Values) ||
				(len(gj.Values) == len(gp.Values) && gj.Label < gp.Label) {
				groups[j], groups[j-1] = gp, gj
			} else {
				break
			}
		}
	}
}
