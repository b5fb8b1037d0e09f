package compare

import (
	"fmt"

	"github.com/permitdesk/permit-cli/internal/model"
)

// Spread thresholds for key-difference findings, in dollars.
const (
	feeSpreadThreshold      = 50
	chargeSpreadThreshold   = 100
	expediteSpreadThreshold = 100
)

// KeyDifferences emits structured findings about how a compared set
// diverges: permit-fee and charge spreads above threshold, differing
// processing times, and expedite-fee spreads. Fewer than two
// jurisdictions yields nothing to compare.
func KeyDifferences(entries []model.ComparisonEntry) []model.Difference {
	if len(entries) < 2 {
		return nil
	}

	var diffs []model.Difference

	minFee, maxFee := entries[0].PermitFee, entries[0].PermitFee
	minCharge, maxCharge := entries[0].RecommendedCharge, entries[0].RecommendedCharge
	minExpedite, maxExpedite := entries[0].ExpediteFee, entries[0].ExpediteFee
	sameProcessing := true

	for _, e := range entries[1:] {
		minFee = min(minFee, e.PermitFee)
		maxFee = max(maxFee, e.PermitFee)
		minCharge = min(minCharge, e.RecommendedCharge)
		maxCharge = max(maxCharge, e.RecommendedCharge)
		if e.ExpediteFee < minExpedite {
			minExpedite = e.ExpediteFee
		}
		if e.ExpediteFee > maxExpedite {
			maxExpedite = e.ExpediteFee
		}
		if e.ProcessingTime != entries[0].ProcessingTime {
			sameProcessing = false
		}
	}

	if spread := maxFee - minFee; spread > feeSpreadThreshold {
		diffs = append(diffs, model.Difference{
			Factor:   model.FactorPermitFee,
			Severity: model.SeverityHigh,
			Message:  fmt.Sprintf("permit fees vary by $%d across jurisdictions ($%d to $%d)", spread, minFee, maxFee),
			Spread:   float64(spread),
		})
	}

	if spread := maxCharge - minCharge; spread > chargeSpreadThreshold {
		diffs = append(diffs, model.Difference{
			Factor:   model.FactorRecommendedCharge,
			Severity: model.SeverityHigh,
			Message:  fmt.Sprintf("recommended charges vary by $%d across jurisdictions ($%d to $%d)", spread, minCharge, maxCharge),
			Spread:   float64(spread),
		})
	}

	if !sameProcessing {
		diffs = append(diffs, model.Difference{
			Factor:   model.FactorProcessingTime,
			Severity: model.SeverityMedium,
			Message:  "processing times differ between jurisdictions; sequence submissions accordingly",
		})
	}

	if spread := maxExpedite - minExpedite; spread > expediteSpreadThreshold {
		diffs = append(diffs, model.Difference{
			Factor:   model.FactorExpediteFee,
			Severity: model.SeverityLow,
			Message:  fmt.Sprintf("expedite fees vary by $%.0f across jurisdictions", spread),
			Spread:   spread,
		})
	}

	return diffs
}
