package model

// Ranks holds a jurisdiction's 1-based position on each comparison axis.
// Within one ComparisonResult each axis is a permutation of 1..N.
type Ranks struct {
	ByPermitFee         int `json:"by_permit_fee"`
	ByRecommendedCharge int `json:"by_recommended_charge"`
	ByProcessingTime    int `json:"by_processing_time"`
}

// ComparisonEntry is one jurisdiction's pricing result annotated with
// its rank positions and parsed processing time.
type ComparisonEntry struct {
	PricingResult
	Rank            Ranks `json:"rank"`
	ProcessingWeeks int   `json:"processing_weeks"`
}

// Analysis aggregates permit fees and recommended charges across a
// compared set. Variance is exactly the recommended-charge spread.
type Analysis struct {
	LowestPermitFee          int `json:"lowest_permit_fee"`
	HighestPermitFee         int `json:"highest_permit_fee"`
	AveragePermitFee         int `json:"average_permit_fee"`
	LowestRecommendedCharge  int `json:"lowest_recommended_charge"`
	HighestRecommendedCharge int `json:"highest_recommended_charge"`
	AverageRecommendedCharge int `json:"average_recommended_charge"`
	Variance                 int `json:"variance"`
}

// Difference severity levels.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// Difference factors.
const (
	FactorPermitFee         = "permit_fee"
	FactorRecommendedCharge = "recommended_charge"
	FactorProcessingTime    = "processing_time"
	FactorExpediteFee       = "expedite_fee"
)

// Difference is one structured finding about how a compared set of
// jurisdictions diverges.
type Difference struct {
	Factor   string  `json:"factor"`
	Severity string  `json:"severity"`
	Message  string  `json:"message"`
	Spread   float64 `json:"spread,omitempty"`
}

// ComparisonResult holds pricing results for one job type across
// multiple jurisdictions, each evaluated at the same reference project
// value, plus aggregate analysis and key differences.
type ComparisonResult struct {
	JobType        Trade             `json:"job_type"`
	ReferenceValue float64           `json:"reference_value"`
	Comparisons    []ComparisonEntry `json:"comparisons"`
	Analysis       Analysis          `json:"analysis"`
	Differences    []Difference      `json:"differences"`
}

// Competitive positions relative to the set average recommended charge.
const (
	PositionBudgetFriendly = "budget-friendly"
	PositionCompetitive    = "competitive"
	PositionPremium        = "premium"
)

// JurisdictionStrategy is the advisor's per-jurisdiction guidance.
type JurisdictionStrategy struct {
	Jurisdiction      string `json:"jurisdiction"`
	Position          string `json:"position"`
	Advice            string `json:"advice"`
	RecommendedCharge int    `json:"recommended_charge"`
	ProfitMarginPct   int    `json:"profit_margin_pct"`
}

// MarginPoint names a jurisdiction together with its profit margin.
type MarginPoint struct {
	Jurisdiction string `json:"jurisdiction"`
	MarginPct    int    `json:"margin_pct"`
}

// Strategy is the advisor's market-level output for a compared set.
type Strategy struct {
	JobType             Trade                  `json:"job_type"`
	MarketSize          int                    `json:"market_size"`
	AverageCharge       int                    `json:"average_charge"`
	BestMargin          MarginPoint            `json:"best_margin"`
	WorstMargin         MarginPoint            `json:"worst_margin"`
	FastestJurisdiction string                 `json:"fastest_jurisdiction"`
	Recommendations     []JurisdictionStrategy `json:"recommendations"`
}
