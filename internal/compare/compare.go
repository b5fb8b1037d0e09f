// Package compare runs the pricing engine across multiple jurisdictions
// and ranks them on permit fee, recommended charge, and processing time.
package compare

import (
	"math"
	"sort"

	"github.com/permitdesk/permit-cli/internal/model"
	"github.com/permitdesk/permit-cli/internal/pricing"
)

// DefaultReferenceValue is the fixed project value every jurisdiction
// is priced at during comparison, so the set is compared on equal
// footing rather than the caller's real project value.
const DefaultReferenceValue = 5000

// Engine compares jurisdictions for a job type.
type Engine struct {
	pricer         *pricing.Engine
	referenceValue float64
}

// New creates a comparison engine. A non-positive reference value falls
// back to DefaultReferenceValue.
func New(pricer *pricing.Engine, referenceValue float64) *Engine {
	if referenceValue <= 0 {
		referenceValue = DefaultReferenceValue
	}
	return &Engine{pricer: pricer, referenceValue: referenceValue}
}

// Compare prices every jurisdiction at the reference value, computes
// aggregate analysis, assigns the three rank axes, and attaches key
// differences. A single jurisdiction yields rank 1 on every axis and
// zero variance; an empty input yields an empty result.
func (e *Engine) Compare(jurisdictions []string, jobType string) model.ComparisonResult {
	trade, _ := model.ParseTrade(jobType)
	result := model.ComparisonResult{
		JobType:        trade,
		ReferenceValue: e.referenceValue,
		Comparisons:    make([]model.ComparisonEntry, 0, len(jurisdictions)),
	}

	for _, j := range jurisdictions {
		pr := e.pricer.Price(j, jobType, e.referenceValue)
		result.Comparisons = append(result.Comparisons, model.ComparisonEntry{
			PricingResult:   pr,
			ProcessingWeeks: parseWeeks(pr.ProcessingTime),
		})
	}
	if len(result.Comparisons) == 0 {
		return result
	}

	result.Analysis = analyze(result.Comparisons)
	assignRanks(result.Comparisons)
	result.Differences = KeyDifferences(result.Comparisons)

	return result
}

// analyze computes min/max/average permit fee and recommended charge.
// Variance is exactly the recommended-charge spread.
func analyze(entries []model.ComparisonEntry) model.Analysis {
	a := model.Analysis{
		LowestPermitFee:          entries[0].PermitFee,
		HighestPermitFee:         entries[0].PermitFee,
		LowestRecommendedCharge:  entries[0].RecommendedCharge,
		HighestRecommendedCharge: entries[0].RecommendedCharge,
	}

	feeSum, chargeSum := 0, 0
	for _, e := range entries {
		feeSum += e.PermitFee
		chargeSum += e.RecommendedCharge
		a.LowestPermitFee = min(a.LowestPermitFee, e.PermitFee)
		a.HighestPermitFee = max(a.HighestPermitFee, e.PermitFee)
		a.LowestRecommendedCharge = min(a.LowestRecommendedCharge, e.RecommendedCharge)
		a.HighestRecommendedCharge = max(a.HighestRecommendedCharge, e.RecommendedCharge)
	}

	n := float64(len(entries))
	a.AveragePermitFee = int(math.Round(float64(feeSum) / n))
	a.AverageRecommendedCharge = int(math.Round(float64(chargeSum) / n))
	a.Variance = a.HighestRecommendedCharge - a.LowestRecommendedCharge

	return a
}

// assignRanks gives every entry a 1-based position on each axis. Ranks
// are unique within an axis; ties keep input order via stable sorting.
func assignRanks(entries []model.ComparisonEntry) {
	rank(entries, func(e model.ComparisonEntry) int { return e.PermitFee },
		func(e *model.ComparisonEntry, r int) { e.Rank.ByPermitFee = r })
	rank(entries, func(e model.ComparisonEntry) int { return e.RecommendedCharge },
		func(e *model.ComparisonEntry, r int) { e.Rank.ByRecommendedCharge = r })
	rank(entries, func(e model.ComparisonEntry) int { return e.ProcessingWeeks },
		func(e *model.ComparisonEntry, r int) { e.Rank.ByProcessingTime = r })
}

func rank(entries []model.ComparisonEntry, key func(model.ComparisonEntry) int, set func(*model.ComparisonEntry, int)) {
	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return key(entries[order[a]]) < key(entries[order[b]])
	})
	for pos, idx := range order {
		set(&entries[idx], pos+1)
	}
}
