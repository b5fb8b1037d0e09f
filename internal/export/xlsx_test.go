package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/permitdesk/permit-cli/internal/model"
)

func testResult() model.ComparisonResult {
	return model.ComparisonResult{
		JobType:        model.TradeElectrical,
		ReferenceValue: 5000,
		Comparisons: []model.ComparisonEntry{
			{
				PricingResult: model.PricingResult{
					Jurisdiction:      "Houston, TX",
					PermitFee:         115,
					RecommendedCharge: 782,
					ProfitMarginPct:   4,
					ProcessingTime:    "2-3 weeks",
					ExpediteFee:       200,
					DataQuality:       model.DataQualityRecord{Quality: model.QualityVerified},
				},
				Rank:            model.Ranks{ByPermitFee: 1, ByRecommendedCharge: 1, ByProcessingTime: 1},
				ProcessingWeeks: 2,
			},
			{
				PricingResult: model.PricingResult{
					Jurisdiction:      "New York, NY",
					PermitFee:         275,
					RecommendedCharge: 982,
					ProfitMarginPct:   7,
					ProcessingTime:    "2-3 months",
					ExpediteFee:       650,
					DataQuality:       model.DataQualityRecord{Quality: model.QualityVerified},
				},
				Rank:            model.Ranks{ByPermitFee: 2, ByRecommendedCharge: 2, ByProcessingTime: 2},
				ProcessingWeeks: 8,
			},
		},
		Analysis: model.Analysis{
			LowestPermitFee: 115, HighestPermitFee: 275, AveragePermitFee: 195,
			LowestRecommendedCharge: 782, HighestRecommendedCharge: 982,
			AverageRecommendedCharge: 882, Variance: 200,
		},
		Differences: []model.Difference{
			{Factor: model.FactorPermitFee, Severity: model.SeverityHigh, Message: "permit fees vary by $160 across jurisdictions ($115 to $275)", Spread: 160},
		},
	}
}

func TestWriteComparison(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "comparison.xlsx")
	require.NoError(t, WriteComparison(testResult(), path))

	file, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 2)

	sheet := file.Sheet["Comparison"]
	require.NotNil(t, sheet)
	// Header plus two jurisdictions.
	require.Len(t, sheet.Rows, 3)
	assert.Equal(t, "Jurisdiction", sheet.Rows[0].Cells[0].Value)
	assert.Equal(t, "Houston, TX", sheet.Rows[1].Cells[0].Value)
	fee, err := sheet.Rows[1].Cells[1].Int()
	require.NoError(t, err)
	assert.Equal(t, 115, fee)
	assert.Equal(t, "New York, NY", sheet.Rows[2].Cells[0].Value)
	assert.Equal(t, "verified", sheet.Rows[2].Cells[10].Value)

	summary := file.Sheet["Summary"]
	require.NotNil(t, summary)
	// Eight aggregate pairs plus one difference row.
	require.Len(t, summary.Rows, 9)
	assert.Equal(t, "Jurisdictions compared", summary.Rows[0].Cells[0].Value)
	n, err := summary.Rows[0].Cells[1].Int()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, model.SeverityHigh, summary.Rows[8].Cells[0].Value)
	assert.Contains(t, summary.Rows[8].Cells[1].Value, "permit fees vary")
}

func TestWriteComparisonEmptyResult(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, WriteComparison(model.ComparisonResult{}, path))

	file, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	sheet := file.Sheet["Comparison"]
	require.NotNil(t, sheet)
	assert.Len(t, sheet.Rows, 1, "header only")
}

func TestWriteComparisonBadPath(t *testing.T) {
	t.Parallel()

	err := WriteComparison(testResult(), filepath.Join(t.TempDir(), "missing", "out.xlsx"))
	assert.Error(t, err)
}
