// Package strategy derives competitive-positioning guidance from
// jurisdiction comparison output.
package strategy

import (
	"fmt"
	"math"

	"github.com/permitdesk/permit-cli/internal/compare"
	"github.com/permitdesk/permit-cli/internal/model"
)

// Position bands relative to the set average recommended charge.
const (
	budgetBand  = 0.90
	premiumBand = 1.10

	// alignedWindow is the dollar window around the average inside
	// which pricing advice is simply "hold".
	alignedWindow = 50
)

// Advisor classifies jurisdictions against their compared set.
type Advisor struct {
	cmp *compare.Engine
}

// New creates an Advisor over a comparison engine.
func New(cmp *compare.Engine) *Advisor {
	return &Advisor{cmp: cmp}
}

// Strategize compares the jurisdictions and derives per-jurisdiction
// positioning plus a market summary. An empty input yields an empty
// strategy with zero market size.
func (a *Advisor) Strategize(jurisdictions []string, jobType string) model.Strategy {
	result := a.cmp.Compare(jurisdictions, jobType)

	s := model.Strategy{
		JobType:         result.JobType,
		MarketSize:      len(result.Comparisons),
		AverageCharge:   result.Analysis.AverageRecommendedCharge,
		Recommendations: make([]model.JurisdictionStrategy, 0, len(result.Comparisons)),
	}
	if len(result.Comparisons) == 0 {
		return s
	}

	avg := float64(result.Analysis.AverageRecommendedCharge)
	fastest := 0

	for i, entry := range result.Comparisons {
		s.Recommendations = append(s.Recommendations, model.JurisdictionStrategy{
			Jurisdiction:      entry.Jurisdiction,
			Position:          position(float64(entry.RecommendedCharge), avg),
			Advice:            advice(float64(entry.RecommendedCharge), avg),
			RecommendedCharge: entry.RecommendedCharge,
			ProfitMarginPct:   entry.ProfitMarginPct,
		})

		if i == 0 || entry.ProfitMarginPct > s.BestMargin.MarginPct {
			s.BestMargin = model.MarginPoint{Jurisdiction: entry.Jurisdiction, MarginPct: entry.ProfitMarginPct}
		}
		if i == 0 || entry.ProfitMarginPct < s.WorstMargin.MarginPct {
			s.WorstMargin = model.MarginPoint{Jurisdiction: entry.Jurisdiction, MarginPct: entry.ProfitMarginPct}
		}
		// Strict less-than keeps the first occurrence on ties.
		if entry.ProcessingWeeks < result.Comparisons[fastest].ProcessingWeeks {
			fastest = i
		}
	}
	s.FastestJurisdiction = result.Comparisons[fastest].Jurisdiction

	return s
}

// position classifies a charge against the set average.
func position(charge, avg float64) string {
	switch {
	case avg > 0 && charge < avg*budgetBand:
		return model.PositionBudgetFriendly
	case avg > 0 && charge > avg*premiumBand:
		return model.PositionPremium
	default:
		return model.PositionCompetitive
	}
}

// advice produces the one-line pricing guidance for a jurisdiction.
func advice(charge, avg float64) string {
	if math.Abs(charge-avg) <= alignedWindow {
		return "pricing aligned with market average; hold current rates"
	}
	pct := int(math.Round(math.Abs(charge-avg) / avg * 100))
	if charge > avg {
		return fmt.Sprintf("%d%% above market average; justify with faster turnaround or bundled services", pct)
	}
	return fmt.Sprintf("%d%% below market average; room to capture additional margin", pct)
}
