package stats

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// ANOVAGroup is one labeled sample entering a one-way ANOVA
type ANOVAGroup struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

// ANOVAResult reports a one-way analysis of variance. The F-to-p conversion
// uses fixed thresholds rather than an exact F distribution.
type ANOVAResult struct {
	Groups         int                `json:"groups"`
	TotalN         int                `json:"total_n"`
	SSBetween      float64            `json:"ss_between"`
	SSWithin       float64            `json:"ss_within"`
	DFBetween      int                `json:"df_between"`
	DFWithin       int                `json:"df_within"`
	MSBetween      float64            `json:"ms_between"`
	MSWithin       float64            `json:"ms_within"`
	FStatistic     float64            `json:"f_statistic"`
	PValue         float64            `json:"p_value"`
	IsSignificant  bool               `json:"is_significant"`
	EtaSquared     float64            `json:"eta_squared"`
	EffectSize     string             `json:"effect_size"`
	GroupMeans     map[string]float64 `json:"group_means"`
	Interpretation string             `json:"interpretation"`
}

// OneWayANOVA decomposes total variance into between/within sums of squares.
// Needs at least 2 groups with 2 observations each; anything less returns a
// degenerate result with an explanation instead of an error.
func OneWayANOVA(groups []ANOVAGroup) ANOVAResult {
	result := ANOVAResult{Groups: len(groups), PValue: 1, GroupMeans: make(map[string]float64)}

	usable := make([]ANOVAGroup, 0, len(groups))
	total := 0
	for _, g := range groups {
		if len(g.Values) >= 2 {
			usable = append(usable, g)
			total += len(g.Values)
		}
	}
	result.TotalN = total
	if len(usable) < 2 {
		result.Interpretation = "Insufficient data: ANOVA needs at least 2 groups with 2 observations each."
		return result
	}

	grandSum := 0.0
	for _, g := range usable {
		for _, v := range g.Values {
			grandSum += v
		}
	}
	grandMean := grandSum / float64(total)

	ssBetween := 0.0
	ssWithin := 0.0
	for _, g := range usable {
		gm, _ := stats.Mean(g.Values)
		result.GroupMeans[g.Label] = round2(gm)
		d := gm - grandMean
		ssBetween += float64(len(g.Values)) * d * d
		for _, v := range g.Values {
			w := v - gm
			ssWithin += w * w
		}
	}

	dfBetween := len(usable) - 1
	dfWithin := total - len(usable)
	msBetween := ssBetween / float64(dfBetween)
	msWithin := ssWithin / float64(dfWithin)

	result.SSBetween = round2(ssBetween)
	result.SSWithin = round2(ssWithin)
	result.DFBetween = dfBetween
	result.DFWithin = dfWithin
	result.MSBetween = round2(msBetween)
	result.MSWithin = round2(msWithin)

	if msWithin == 0 {
		// All groups internally constant: any between-group spread is exact
		if ssBetween > 0 {
			result.FStatistic = round2(msBetween)
			result.PValue = 0.01
			result.IsSignificant = true
			result.EtaSquared = 1
			result.EffectSize = "large"
			result.Interpretation = "Groups are internally constant but differ from each other."
		} else {
			result.Interpretation = "All observations are identical: nothing to compare."
		}
		return result
	}

	f := msBetween / msWithin
	eta := 0.0
	if ssBetween+ssWithin > 0 {
		eta = ssBetween / (ssBetween + ssWithin)
	}

	result.FStatistic = round2(f)
	result.PValue = approxFPValue(f)
	result.IsSignificant = result.PValue <= 0.05
	result.EtaSquared = round2(eta)
	result.EffectSize = etaSquaredLabel(eta)

	if result.IsSignificant {
		result.Interpretation = fmt.Sprintf(
			"At least one group mean differs significantly (F=%.2f, p≈%.2f, %s effect, η²=%.2f).",
			result.FStatistic, result.PValue, result.EffectSize, result.EtaSquared)
	} else {
		result.Interpretation = fmt.Sprintf(
			"No significant difference among group means (F=%.2f, p≈%.2f, η²=%.2f).",
			result.FStatistic, result.PValue, result.EtaSquared)
	}
	return result
}

// etaSquaredLabel applies the conventional eta-squared thresholds
func etaSquaredLabel(eta float64) string {
	switch {
	case eta < 0.01:
		return "negligible"
	case eta < 0.06:
		return "small"
	case eta < 0.14:
		return "medium"
	default:
		return "large"
	}
}
