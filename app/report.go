package app

import (
	"fmt"
	"strings"
	"time"

	"statq/adapters/stats"
)

// ReportBuilder renders an analysis run as a Markdown document. The document
// is served raw from the API and rendered to HTML by the web layer.
type ReportBuilder struct {
	b strings.Builder
}

// NewReportBuilder starts a report with a title and timestamp header
func NewReportBuilder(title string, generatedAt time.Time) *ReportBuilder {
	r := &ReportBuilder{}
	fmt.Fprintf(&r.b, "# %s\n\n", title)
	fmt.Fprintf(&r.b, "_Generated %s_\n\n", generatedAt.UTC().Format("2006-01-02 15:04 MST"))
	return r
}

// AddQuestion appends the battery for one question as its own section
func (r *ReportBuilder) AddQuestion(title string, a *QuestionAnalysis) {
	fmt.Fprintf(&r.b, "## %s\n\n", title)
	fmt.Fprintf(&r.b, "%d responses (`%s`)\n\n", a.ResponseCount, a.QuestionType)

	if a.Descriptive != nil && a.Descriptive.Count > 0 {
		d := a.Descriptive
		r.b.WriteString("| Statistic | Value |\n|---|---|\n")
		fmt.Fprintf(&r.b, "| Mean | %s |\n", fmtPtr(d.Mean))
		fmt.Fprintf(&r.b, "| Median | %s |\n", fmtPtr(d.Median))
		fmt.Fprintf(&r.b, "| Mode | %s |\n", fmtPtr(d.Mode))
		fmt.Fprintf(&r.b, "| Std Dev | %s |\n", fmtPtr(d.StdDev))
		fmt.Fprintf(&r.b, "| Range | %s to %s |\n", fmtPtr(d.Min), fmtPtr(d.Max))
		r.b.WriteString("\n")
	}

	if a.Quartiles != nil && a.Quartiles.Count > 0 {
		q := a.Quartiles
		fmt.Fprintf(&r.b, "Quartiles: Q1 %.2f, Q2 %.2f, Q3 %.2f (IQR %.2f). P90 %.2f, P95 %.2f.\n\n",
			q.Q1, q.Q2, q.Q3, q.IQR, q.P90, q.P95)
	}

	if a.IQROutliers != nil && len(a.IQROutliers.Outliers) > 0 {
		fmt.Fprintf(&r.b, "**Outliers (IQR method):** %d value(s) outside [%.2f, %.2f].\n\n",
			len(a.IQROutliers.Outliers), a.IQROutliers.LowerBound, a.IQROutliers.UpperBound)
	}

	if a.Normality != nil && a.Normality.SampleSize >= 3 {
		fmt.Fprintf(&r.b, "%s\n\n", a.Normality.Interpretation)
	}

	if a.Confidence != nil && a.Confidence.SampleSize > 1 {
		c := a.Confidence
		fmt.Fprintf(&r.b, "%d%% confidence interval for the mean: [%.2f, %.2f].\n\n",
			int(c.Level), c.Lower, c.Upper)
	}

	if len(a.Frequencies) > 0 {
		r.b.WriteString("| Answer | Count |\n|---|---|\n")
		for _, category := range sortedCategories(a.Frequencies) {
			fmt.Fprintf(&r.b, "| %s | %d |\n", category, a.Frequencies[category])
		}
		r.b.WriteString("\n")
	}

	if len(a.TextSamples) > 0 {
		r.b.WriteString("Sample responses:\n\n")
		for _, t := range a.TextSamples {
			fmt.Fprintf(&r.b, "> %s\n\n", t)
		}
	}
}

// AddComparison appends a group comparison section
func (r *ReportBuilder) AddComparison(title string, cmp GroupComparison) {
	fmt.Fprintf(&r.b, "## %s\n\n", title)
	switch {
	case cmp.TTest != nil:
		t := cmp.TTest
		fmt.Fprintf(&r.b, "t(%d) = %.2f, p ≈ %.2f. %s\n\n", t.DegreesOfFreedom, t.TStatistic, t.PValue, t.Interpretation)
	case cmp.ANOVA != nil:
		a := cmp.ANOVA
		fmt.Fprintf(&r.b, "F(%d, %d) = %.2f, p ≈ %.2f. %s\n\n",
			a.DFBetween, a.DFWithin, a.FStatistic, a.PValue, a.Interpretation)
	default:
		r.b.WriteString("Not enough groups with sufficient data to compare.\n\n")
	}
}

// AddVelocity appends the response velocity section
func (r *ReportBuilder) AddVelocity(v stats.VelocityAnalysis) {
	r.b.WriteString("## Response Velocity\n\n")
	if v.TotalResponses == 0 {
		r.b.WriteString("No timestamped responses.\n\n")
		return
	}
	fmt.Fprintf(&r.b, "%d responses: %.2f/day, %.2f/hour.\n\n",
		v.TotalResponses, v.ResponsesPerDay, v.ResponsesPerHour)
	fmt.Fprintf(&r.b, "%s\n\n", v.Interpretation)
}

// String returns the assembled Markdown document
func (r *ReportBuilder) String() string {
	return r.b.String()
}

func fmtPtr(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *v)
}

func sortedCategories(freq map[string]int) []string {
	categories := make([]string, 0, len(freq))
	for c := range freq {
		categories = append(categories, c)
	}
	// descending count, category label breaks ties
	for i := 1; i < len(categories); i++ {
		for j := i; j > 0; j-- {
			a, b := categories[j], categories[j-1]
			if freq[a] > freq[b] || (freq[a] == freq[b] && a < b) {
				categories[j], categories[j-1] = b, a
			} else {
				break
			}
		}
	}
	return categories
}
