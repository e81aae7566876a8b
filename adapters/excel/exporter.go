package excel

import (
	"fmt"
	"io"
	"log"
	"sort"

	"statq/adapters/stats"
	"statq/app"

	"github.com/xuri/excelize/v2"
)

// Exporter writes analysis results into an Excel workbook, one sheet per
// concern: a summary sheet of per-question descriptives, a raw frequency
// sheet for choice questions, and an optional cross-tab sheet.
type Exporter struct {
	file *excelize.File
}

// NewExporter creates an exporter with a fresh workbook
func NewExporter() *Exporter {
	return &Exporter{file: excelize.NewFile()}
}

// WriteSummary writes the per-question analysis battery onto the Summary sheet
func (e *Exporter) WriteSummary(analyses []*app.QuestionAnalysis) error {
	const sheet = "Summary"
	index, err := e.file.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	e.file.SetActiveSheet(index)

	headers := []string{
		"Question", "Type", "Responses",
		"Mean", "Median", "Std Dev", "Min", "Max",
		"Q1", "Q3", "IQR Outliers", "Approx Normal",
	}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := e.file.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, a := range analyses {
		values := []interface{}{
			string(a.QuestionID), string(a.QuestionType), a.ResponseCount,
		}
		if a.Descriptive != nil {
			values = append(values,
				deref(a.Descriptive.Mean), deref(a.Descriptive.Median),
				deref(a.Descriptive.StdDev), deref(a.Descriptive.Min), deref(a.Descriptive.Max))
		} else {
			values = append(values, "", "", "", "", "")
		}
		if a.Quartiles != nil {
			values = append(values, a.Quartiles.Q1, a.Quartiles.Q3)
		} else {
			values = append(values, "", "")
		}
		if a.IQROutliers != nil {
			values = append(values, len(a.IQROutliers.Outliers))
		} else {
			values = append(values, "")
		}
		if a.Normality != nil {
			values = append(values, a.Normality.IsApproxNormal)
		} else {
			values = append(values, "")
		}

		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := e.file.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("failed to write summary row %d: %w", row+1, err)
			}
		}
	}

	log.Printf("[Exporter] wrote summary sheet with %d question rows", len(analyses))
	return nil
}

// WriteFrequencies writes one frequency block per choice question
func (e *Exporter) WriteFrequencies(analyses []*app.QuestionAnalysis) error {
	const sheet = "Frequencies"
	if _, err := e.file.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create frequencies sheet: %w", err)
	}

	row := 1
	for _, a := range analyses {
		if len(a.Frequencies) == 0 {
			continue
		}

		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := e.file.SetCellValue(sheet, cell, string(a.QuestionID)); err != nil {
			return fmt.Errorf("failed to write question header: %w", err)
		}
		row++

		categories := make([]string, 0, len(a.Frequencies))
		for c := range a.Frequencies {
			categories = append(categories, c)
		}
		sort.Strings(categories)

		for _, c := range categories {
			catCell, _ := excelize.CoordinatesToCellName(1, row)
			countCell, _ := excelize.CoordinatesToCellName(2, row)
			if err := e.file.SetCellValue(sheet, catCell, c); err != nil {
				return fmt.Errorf("failed to write category: %w", err)
			}
			if err := e.file.SetCellValue(sheet, countCell, a.Frequencies[c]); err != nil {
				return fmt.Errorf("failed to write count: %w", err)
			}
			row++
		}
		row++ // blank row between blocks
	}

	return nil
}

// WriteCrossTab writes one cross-tabulation result onto its own sheet
func (e *Exporter) WriteCrossTab(result stats.CrossTabResult) error {
	const sheet = "CrossTab"
	if _, err := e.file.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create crosstab sheet: %w", err)
	}

	headers := []string{"Filter Category", "N", "Mean", "Std Dev", "Top Answer", "Top Count"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := e.file.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to write crosstab header: %w", err)
		}
	}

	for row, block := range result.Categories {
		values := []interface{}{block.Category, block.Count}
		if block.Numeric != nil {
			values = append(values, deref(block.Numeric.Mean), deref(block.Numeric.StdDev))
		} else {
			values = append(values, "", "")
		}
		if len(block.Frequencies) > 0 {
			top, topCount := "", 0
			for category, count := range block.Frequencies {
				if count > topCount || (count == topCount && category < top) {
					top, topCount = category, count
				}
			}
			values = append(values, top, topCount)
		} else {
			values = append(values, "", "")
		}

		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := e.file.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("failed to write crosstab row %d: %w", row+1, err)
			}
		}
	}

	return nil
}

// Save writes the workbook to w and deletes the default empty sheet
func (e *Exporter) Save(w io.Writer) error {
	if err := e.file.DeleteSheet("Sheet1"); err != nil {
		log.Printf("[Exporter] could not delete default sheet: %v", err)
	}
	if err := e.file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// SaveFile writes the workbook to the given path
func (e *Exporter) SaveFile(path string) error {
	if err := e.file.DeleteSheet("Sheet1"); err != nil {
		log.Printf("[Exporter] could not delete default sheet: %v", err)
	}
	if err := e.file.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func deref(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
