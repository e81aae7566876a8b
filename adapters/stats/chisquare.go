package stats

import (
	"fmt"
	"math"
	"sort"

	"statq/domain/core"
	"statq/domain/survey"
)

// ChiSquareResult reports an independence test over two categorical
// questions. A nil result means the test was not applicable (fewer than 2
// distinct categories on either side).
type ChiSquareResult struct {
	RowCategories  []string    `json:"row_categories"`
	ColCategories  []string    `json:"col_categories"`
	Observed       [][]int     `json:"observed"`
	Expected       [][]float64 `json:"expected"`
	SampleSize     int         `json:"sample_size"`
	ChiSquare      float64     `json:"chi_square"`
	DegreesFreedom int         `json:"degrees_freedom"`
	PValue         float64     `json:"p_value"`
	IsSignificant  bool        `json:"is_significant"`
	CramersV       float64     `json:"cramers_v"`
	EffectSize     string      `json:"effect_size"`
	Interpretation string      `json:"interpretation"`
}

// ChiSquareTest pairs two questions' answers by response id, builds the
// contingency table and tests independence. Multi-select answers contribute
// only their first selected category (documented simplification). Returns
// nil when either variable has fewer than 2 distinct categories.
func ChiSquareTest(answers1, answers2 []survey.Answer) *ChiSquareResult {
	byResponse := make(map[core.ResponseID]string, len(answers2))
	for _, a := range answers2 {
		if cat := a.Value.Category(); cat != "" {
			byResponse[a.ResponseID] = cat
		}
	}

	type pair struct{ row, col string }
	var pairs []pair
	for _, a := range answers1 {
		row := a.Value.Category()
		if row == "" {
			continue
		}
		col, ok := byResponse[a.ResponseID]
		if !ok {
			continue
		}
		pairs = append(pairs, pair{row: row, col: col})
	}

	rowSet := make(map[string]bool)
	colSet := make(map[string]bool)
	for _, p := range pairs {
		rowSet[p.row] = true
		colSet[p.col] = true
	}
	if len(rowSet) < 2 || len(colSet) < 2 {
		return nil
	}

	rows := sortedKeys(rowSet)
	cols := sortedKeys(colSet)
	rowIdx := indexOf(rows)
	colIdx := indexOf(cols)

	observed := make([][]int, len(rows))
	for i := range observed {
		observed[i] = make([]int, len(cols))
	}
	for _, p := range pairs {
		observed[rowIdx[p.row]][colIdx[p.col]]++
	}

	total := len(pairs)
	rowTotals := make([]int, len(rows))
	colTotals := make([]int, len(cols))
	for i := range rows {
		for j := range cols {
			rowTotals[i] += observed[i][j]
			colTotals[j] += observed[i][j]
		}
	}

	chiSq := 0.0
	expected := make([][]float64, len(rows))
	for i := range rows {
		expected[i] = make([]float64, len(cols))
		for j := range cols {
			e := float64(rowTotals[i]*colTotals[j]) / float64(total)
			expected[i][j] = round2(e)
			if e > 0 {
				d := float64(observed[i][j]) - e
				chiSq += d * d / e
			}
		}
	}

	df := (len(rows) - 1) * (len(cols) - 1)
	minDim := math.Min(float64(len(rows)-1), float64(len(cols)-1))
	cramersV := math.Sqrt(chiSq / (float64(total) * minDim))
	pValue := approxChiSquarePValue(chiSq, df)

	result := &ChiSquareResult{
		RowCategories:  rows,
		ColCategories:  cols,
		Observed:       observed,
		Expected:       expected,
		SampleSize:     total,
		ChiSquare:      round2(chiSq),
		DegreesFreedom: df,
		PValue:         pValue,
		IsSignificant:  pValue <= 0.05,
		CramersV:       round2(cramersV),
		EffectSize:     cramersVLabel(cramersV),
	}

	if result.IsSignificant {
		result.Interpretation = fmt.Sprintf(
			"The two variables are associated (χ²=%.2f, df=%d, p≈%.2f, %s association, V=%.2f).",
			result.ChiSquare, df, pValue, result.EffectSize, result.CramersV)
	} else {
		result.Interpretation = fmt.Sprintf(
			"No significant association between the variables (χ²=%.2f, df=%d, p≈%.2f, V=%.2f).",
			result.ChiSquare, df, pValue, result.CramersV)
	}
	return result
}

// cramersVLabel applies the conventional Cramér's V thresholds
func cramersVLabel(v float64) string {
	switch {
	case v < 0.1:
		return "negligible"
	case v < 0.3:
		return "weak"
	case v < 0.5:
		return "moderate"
	default:
		return "strong"
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func indexOf(keys []string) map[string]int {
	idx := make(map[string]int, len(keys))
	for i, k := range keys {
		idx[k] = i
	}
	return idx
}
