// Package overlay reconciles freshly scraped fee values against the
// curated baseline. Scraped figures replace curated ones only when they
// pass per-field plausibility gates and stay within a deviation
// tolerance of the curated value; a merged trade that ends up
// internally inconsistent is reverted to the baseline wholesale.
package overlay

import (
	"math"

	"go.uber.org/zap"

	"github.com/permitdesk/permit-cli/internal/model"
)

// Merge gates.
const (
	// maxDeviation is the relative deviation allowed between a scraped
	// value and an existing curated value. Scrapers misread tables often
	// enough that a large jump is more likely a parse artifact than a
	// fee change.
	maxDeviation = 0.10

	// valuationRateCeiling bounds a plausible valuation rate. No
	// municipal schedule charges 10% of project value per permit.
	valuationRateCeiling = 0.1

	// minFeeFloor is the smallest credible published minimum fee.
	minFeeFloor = 10

	// rateDecimals rounds valuation rates to suppress float noise from
	// scraped percentage conversions.
	rateDecimals = 6
)

// Trades eligible for overlay. General and solar schedules are curated
// by hand and never overwritten by scrape data.
var eligible = []model.FeeCategory{model.FeeElectrical, model.FeePlumbing, model.FeeHVAC}

// Result is a merged view of the fee tables: the (possibly overlaid)
// profiles, quality records with scrape metadata applied, and the raw
// scrape records kept for audit. Raw values never feed computation.
type Result struct {
	Profiles map[string]model.JurisdictionProfile
	Quality  map[string]model.DataQualityRecord
	Raw      map[string]model.ScrapeRecord
}

// Merge applies scrape history to a deep copy of the baseline profiles
// and quality records. The inputs are never mutated. A nil or empty
// history returns the baseline unchanged.
func Merge(profiles map[string]model.JurisdictionProfile, quality map[string]model.DataQualityRecord, history map[string]model.ScrapeRecord) Result {
	out := Result{
		Profiles: make(map[string]model.JurisdictionProfile, len(profiles)),
		Quality:  make(map[string]model.DataQualityRecord, len(quality)),
		Raw:      history,
	}
	for k, p := range profiles {
		out.Profiles[k] = p.Clone()
	}
	for k, q := range quality {
		out.Quality[k] = q
	}
	if len(history) == 0 {
		return out
	}

	for key, rec := range history {
		profile, ok := out.Profiles[key]
		if !ok {
			// Scrapes for jurisdictions outside the curated table are
			// kept in Raw but never promoted.
			continue
		}

		for _, cat := range eligible {
			scraped, ok := rec.Trades[cat]
			if !ok {
				continue
			}
			baseline := profile.Fees[cat]
			merged, changed := mergeTrade(baseline, scraped)

			if merged.MinFee > merged.MaxFee {
				// Consistency guard: revert the whole trade, never a
				// partial field rollback.
				zap.L().Warn("overlay: merged fees inconsistent, reverting trade",
					zap.String("jurisdiction", key),
					zap.String("category", string(cat)),
					zap.Float64("min_fee", merged.MinFee),
					zap.Float64("max_fee", merged.MaxFee))
				continue
			}
			if changed {
				profile.Fees[cat] = merged
			}
		}
		out.Profiles[key] = profile

		// Metadata overlays unconditionally: there is no plausibility
		// gate on free text.
		q := out.Quality[key]
		if rec.Source != "" {
			q.Source = rec.Source
		}
		if rec.ScrapedAt != "" {
			q.LastVerified = rec.ScrapedAt
		}
		if rec.SourceURL != "" {
			q.URL = rec.SourceURL
		}
		out.Quality[key] = q
	}

	return out
}

// mergeTrade evaluates the four numeric fields independently and
// returns the merged parameters plus whether anything changed. The
// min<=max guard runs on the caller's side so a violation can revert
// the trade verbatim.
func mergeTrade(curated model.TradeFeeParameters, scraped model.ScrapedFees) (model.TradeFeeParameters, bool) {
	merged := curated
	changed := false

	if scraped.BaseFee != nil && *scraped.BaseFee > 0 &&
		withinDeviation(curated.BaseFee, *scraped.BaseFee) {
		v := *scraped.BaseFee
		merged.BaseFee = &v
		changed = true
	}

	if scraped.ValuationRate != nil {
		rate := roundTo(*scraped.ValuationRate, rateDecimals)
		if rate >= 0 && rate < valuationRateCeiling &&
			withinDeviation(curated.ValuationRate, rate) {
			merged.ValuationRate = &rate
			changed = true
		}
	}

	if scraped.MinFee != nil && *scraped.MinFee >= minFeeFloor &&
		withinDeviation(&curated.MinFee, *scraped.MinFee) {
		merged.MinFee = *scraped.MinFee
		changed = true
	}

	if scraped.MaxFee != nil && *scraped.MaxFee > 0 &&
		withinDeviation(&curated.MaxFee, *scraped.MaxFee) {
		merged.MaxFee = *scraped.MaxFee
		changed = true
	}

	if scraped.Notes != "" {
		merged.Notes = scraped.Notes
		changed = true
	}

	return merged, changed
}

// withinDeviation reports whether a scraped value stays within
// maxDeviation of the curated value. A nil or zero curated value has
// nothing to deviate from, so the plausibility gate alone governs.
func withinDeviation(curated *float64, scraped float64) bool {
	if curated == nil || *curated == 0 {
		return true
	}
	return math.Abs(scraped-*curated)/math.Abs(*curated) <= maxDeviation
}

func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
