package stats

import (
	"fmt"
	"sort"
	"time"
)

// VelocityAnalysis reports response timing: volume buckets, rates and the
// direction/strength of the daily trend
type VelocityAnalysis struct {
	TotalResponses   int            `json:"total_responses"`
	FirstResponse    time.Time      `json:"first_response"`
	LastResponse     time.Time      `json:"last_response"`
	ByHourOfDay      map[int]int    `json:"by_hour_of_day"`
	ByDay            map[string]int `json:"by_day"`
	ByDayOfWeek      map[string]int `json:"by_day_of_week"`
	ResponsesPerHour float64        `json:"responses_per_hour"`
	ResponsesPerDay  float64        `json:"responses_per_day"`
	TrendDirection   string         `json:"trend_direction"` // increasing, decreasing, stable
	TrendStrength    string         `json:"trend_strength"`  // strong, moderate, weak
	TrendSlope       float64        `json:"trend_slope"`
	TrendR2          float64        `json:"trend_r2"`
	Interpretation   string         `json:"interpretation"`
}

// Trend classification thresholds over the daily-count regression
const (
	trendStableSlope = 0.1
	trendStrongR2    = 0.7
	trendModerateR2  = 0.4
)

// AnalyzeVelocity buckets submission timestamps by hour-of-day, calendar day
// and day-of-week, computes per-hour/per-day rates and classifies the daily
// trend by regression slope and R². Buckets are keyed in UTC.
func AnalyzeVelocity(timestamps []time.Time) VelocityAnalysis {
	result := VelocityAnalysis{
		TotalResponses: len(timestamps),
		ByHourOfDay:    make(map[int]int),
		ByDay:          make(map[string]int),
		ByDayOfWeek:    make(map[string]int),
		TrendDirection: "stable",
		TrendStrength:  "weak",
	}
	if len(timestamps) == 0 {
		result.Interpretation = "No responses yet."
		return result
	}

	sorted := make([]time.Time, len(timestamps))
	copy(sorted, timestamps)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	result.FirstResponse = sorted[0]
	result.LastResponse = sorted[len(sorted)-1]

	for _, ts := range sorted {
		utc := ts.UTC()
		result.ByHourOfDay[utc.Hour()]++
		result.ByDay[utc.Format("2006-01-02")]++
		result.ByDayOfWeek[utc.Weekday().String()]++
	}

	span := result.LastResponse.Sub(result.FirstResponse)
	hours := span.Hours()
	if hours < 1 {
		hours = 1
	}
	days := hours / 24
	if days < 1 {
		days = 1
	}
	result.ResponsesPerHour = round2(float64(len(sorted)) / hours)
	result.ResponsesPerDay = round2(float64(len(sorted)) / days)

	// Trend over the ordered daily-count series
	dayKeys := make([]string, 0, len(result.ByDay))
	for k := range result.ByDay {
		dayKeys = append(dayKeys, k)
	}
	sort.Strings(dayKeys)

	if len(dayKeys) >= 3 {
		xs := make([]float64, len(dayKeys))
		ys := make([]float64, len(dayKeys))
		for i, k := range dayKeys {
			xs[i] = float64(i)
			ys[i] = float64(result.ByDay[k])
		}
		fit, err := SimpleLinearRegression(xs, ys)
		if err == nil {
			result.TrendSlope = fit.Slope
			result.TrendR2 = fit.RSquared
			switch {
			case fit.Slope > trendStableSlope:
				result.TrendDirection = "increasing"
			case fit.Slope < -trendStableSlope:
				result.TrendDirection = "decreasing"
			default:
				result.TrendDirection = "stable"
			}
			switch {
			case fit.RSquared > trendStrongR2:
				result.TrendStrength = "strong"
			case fit.RSquared > trendModerateR2:
				result.TrendStrength = "moderate"
			default:
				result.TrendStrength = "weak"
			}
		}
	}

	result.Interpretation = fmt.Sprintf(
		"%d responses over %d day(s); volume trend is %s (%s, slope=%.2f, R²=%.2f).",
		result.TotalResponses, len(dayKeys), result.TrendDirection,
		result.TrendStrength, result.TrendSlope, result.TrendR2)
	return result
}
