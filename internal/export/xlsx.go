// Package export renders comparison results to spreadsheet files for
// sharing with clients.
package export

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/permitdesk/permit-cli/internal/model"
)

// comparisonHeader is the column layout of the comparison sheet.
var comparisonHeader = []string{
	"Jurisdiction", "Permit Fee", "Recommended Charge", "Profit Margin %",
	"Processing Time", "Weeks", "Expedite Fee", "Fee Rank", "Charge Rank",
	"Speed Rank", "Data Quality",
}

// WriteComparison writes a comparison result to an XLSX workbook with a
// detail sheet and a summary sheet.
func WriteComparison(result model.ComparisonResult, path string) error {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Comparison")
	if err != nil {
		return eris.Wrap(err, "export: add comparison sheet")
	}

	header := sheet.AddRow()
	for _, h := range comparisonHeader {
		header.AddCell().Value = h
	}

	for _, entry := range result.Comparisons {
		row := sheet.AddRow()
		row.AddCell().Value = entry.Jurisdiction
		row.AddCell().SetInt(entry.PermitFee)
		row.AddCell().SetInt(entry.RecommendedCharge)
		row.AddCell().SetInt(entry.ProfitMarginPct)
		row.AddCell().Value = entry.ProcessingTime
		row.AddCell().SetInt(entry.ProcessingWeeks)
		row.AddCell().SetFloat(entry.ExpediteFee)
		row.AddCell().SetInt(entry.Rank.ByPermitFee)
		row.AddCell().SetInt(entry.Rank.ByRecommendedCharge)
		row.AddCell().SetInt(entry.Rank.ByProcessingTime)
		row.AddCell().Value = entry.DataQuality.Quality
	}

	summary, err := file.AddSheet("Summary")
	if err != nil {
		return eris.Wrap(err, "export: add summary sheet")
	}
	addPair := func(label string, value int) {
		row := summary.AddRow()
		row.AddCell().Value = label
		row.AddCell().SetInt(value)
	}
	addPair("Jurisdictions compared", len(result.Comparisons))
	addPair("Lowest permit fee", result.Analysis.LowestPermitFee)
	addPair("Highest permit fee", result.Analysis.HighestPermitFee)
	addPair("Average permit fee", result.Analysis.AveragePermitFee)
	addPair("Lowest recommended charge", result.Analysis.LowestRecommendedCharge)
	addPair("Highest recommended charge", result.Analysis.HighestRecommendedCharge)
	addPair("Average recommended charge", result.Analysis.AverageRecommendedCharge)
	addPair("Charge variance", result.Analysis.Variance)

	for _, d := range result.Differences {
		row := summary.AddRow()
		row.AddCell().Value = d.Severity
		row.AddCell().Value = d.Message
	}

	if err := file.Save(path); err != nil {
		return eris.Wrapf(err, "export: save %s", path)
	}
	return nil
}
