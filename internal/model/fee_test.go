package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileClone(t *testing.T) {
	t.Parallel()

	base, rate := 100.0, 0.005
	orig := JurisdictionProfile{
		Fees: map[FeeCategory]TradeFeeParameters{
			FeeElectrical: {BaseFee: &base, ValuationRate: &rate, MinFee: 100, MaxFee: 2000},
			FeeSolar:      {MinFee: 300, MaxFee: 300},
		},
		ProcessingTime: "2-3 weeks",
	}

	clone := orig.Clone()
	*clone.Fees[FeeElectrical].BaseFee = 999
	clone.Fees[FeeSolar] = TradeFeeParameters{MinFee: 1, MaxFee: 1}

	assert.Equal(t, 100.0, *orig.Fees[FeeElectrical].BaseFee, "clone must not share fee pointers")
	assert.Equal(t, 300.0, orig.Fees[FeeSolar].MinFee, "clone must not share the fee map")
	assert.Equal(t, 0.005, *clone.Fees[FeeElectrical].ValuationRate)
}

func TestEstimated(t *testing.T) {
	t.Parallel()

	assert.True(t, DataQualityRecord{Quality: QualityEstimated}.Estimated())
	assert.False(t, DataQualityRecord{Quality: QualityVerified}.Estimated())
	assert.False(t, DataQualityRecord{Quality: QualityPartiallyVerified}.Estimated())
}

func TestLaborComponentSum(t *testing.T) {
	t.Parallel()

	lp := LaborProfile{DocumentPrep: 1.5, PlanDrawing: 2.0, Submission: 1.0, Inspection: 2.0, Corrections: 1.0, Total: 7.5}
	assert.InDelta(t, 7.5, lp.ComponentSum(), 0.001)
}
