// Package pricing computes permit-service quotes for a single
// (jurisdiction, trade, project value) evaluation.
package pricing

import (
	"math"

	"github.com/permitdesk/permit-cli/internal/feedb"
	"github.com/permitdesk/permit-cli/internal/model"
	"github.com/permitdesk/permit-cli/internal/region"
)

// Config holds the competitive benchmark heuristics. These are fixed
// multipliers with no empirical grounding, kept as configuration so
// they can be recalibrated without a code change.
type Config struct {
	UnlicensedMultiplier float64 `yaml:"unlicensed_multiplier" mapstructure:"unlicensed_multiplier"`
	ExpediterMultiplier  float64 `yaml:"expediter_multiplier" mapstructure:"expediter_multiplier"`
	ExpediterBase        float64 `yaml:"expediter_base" mapstructure:"expediter_base"`
}

// DefaultConfig returns the stock benchmark heuristics.
func DefaultConfig() Config {
	return Config{
		UnlicensedMultiplier: 0.5,
		ExpediterMultiplier:  2.5,
		ExpediterBase:        500,
	}
}

// Engine prices permit jobs against a fee snapshot service.
type Engine struct {
	fees     *feedb.Service
	resolver *region.Resolver
	cfg      Config
}

// New creates an Engine. The resolver's known-key set is the baseline's
// jurisdiction keys, which never change at runtime.
func New(fees *feedb.Service, cfg Config) *Engine {
	return &Engine{
		fees:     fees,
		resolver: region.New(fees.Tables().Keys()),
		cfg:      cfg,
	}
}

// Resolver exposes the engine's jurisdiction resolver for callers that
// only need key normalization.
func (e *Engine) Resolver() *region.Resolver {
	return e.resolver
}

// Price computes a full pricing result. It never fails: an unknown
// jurisdiction resolves to a fallback bucket (flagged estimated in the
// result's DataQuality), an unknown job type prices as general
// construction, and a non-positive project value clamps to the minimum
// fee.
func (e *Engine) Price(jurisdiction, jobType string, projectValue float64) model.PricingResult {
	trade, _ := model.ParseTrade(jobType)
	cat := trade.FeeCategory()
	key := e.resolver.Resolve(jurisdiction)

	snap := e.fees.Snapshot()
	profile, quality := snap.Profile(key)
	fp := profile.Fees[cat]
	labor := snap.Labor[trade]
	markup := snap.Markup[trade]

	fee := permitFee(fp, projectValue)
	markupAmt := round(float64(fee) * markup.PermitFeeMarkup)
	laborCost := round(labor.Total * markup.LaborRate)

	charge := fee + markupAmt + laborCost
	if float64(charge) < markup.MinimumCharge {
		charge = round(markup.MinimumCharge)
	}

	// charge is floored at the minimum charge, which is positive for
	// every trade, so the margin division is safe.
	margin := round(float64(charge-(fee+laborCost)) / float64(charge) * 100)

	return model.PricingResult{
		RequestedJurisdiction: jurisdiction,
		Jurisdiction:          key,
		Trade:                 trade,
		FeeCategory:           cat,
		ProjectValue:          projectValue,

		PermitFee:       fee,
		PermitFeeMarkup: markupAmt,
		LaborHours:      labor.Total,
		LaborCost:       laborCost,
		LaborBreakdown: model.LaborBreakdown{
			DocumentPrep: round(labor.DocumentPrep * markup.LaborRate),
			PlanDrawing:  round(labor.PlanDrawing * markup.LaborRate),
			Submission:   round(labor.Submission * markup.LaborRate),
			Inspection:   round(labor.Inspection * markup.LaborRate),
			Corrections:  round(labor.Corrections * markup.LaborRate),
		},
		RecommendedCharge: charge,
		ProfitMarginPct:   margin,
		Benchmarks: model.Benchmarks{
			UnlicensedPrice: round(float64(fee) * e.cfg.UnlicensedMultiplier),
			ExpediterPrice:  round(float64(fee)*e.cfg.ExpediterMultiplier + e.cfg.ExpediterBase),
		},

		ProcessingTime: profile.ProcessingTime,
		ExpediteFee:    profile.ExpediteFee,
		ExpediteTime:   profile.ExpediteTime,

		DataQuality: quality,
		Notes:       fp.Notes,
	}
}

// permitFee computes the raw additive fee and clamps it to the
// published bounds. A nil base fee or valuation rate contributes zero;
// the clamp is what collapses flat, valuation-based, and per-unit
// structures to a single number. The floor is applied before the cap,
// so an inverted schedule (min > max) yields the cap, reproducing the
// published defect rather than repairing it.
func permitFee(fp model.TradeFeeParameters, projectValue float64) int {
	var raw float64
	if fp.BaseFee != nil {
		raw += *fp.BaseFee
	}
	if fp.ValuationRate != nil {
		raw += projectValue * *fp.ValuationRate
	}

	if raw < fp.MinFee {
		raw = fp.MinFee
	}
	if raw > fp.MaxFee {
		raw = fp.MaxFee
	}
	return round(raw)
}

func round(v float64) int {
	return int(math.Round(v))
}
