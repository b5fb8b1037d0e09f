package model

// LaborBreakdown is the per-task labor cost in whole dollars. Each line
// is rounded independently, so the lines may differ from LaborCost by a
// few dollars; the rounded total is authoritative.
type LaborBreakdown struct {
	DocumentPrep int `json:"document_prep"`
	PlanDrawing  int `json:"plan_drawing"`
	Submission   int `json:"submission"`
	Inspection   int `json:"inspection"`
	Corrections  int `json:"corrections"`
}

// Benchmarks holds illustrative competitive price points derived from
// the permit fee. These are heuristics, not jurisdiction data.
type Benchmarks struct {
	UnlicensedPrice int `json:"unlicensed_price"`
	ExpediterPrice  int `json:"expediter_price"`
}

// PricingResult is the full computed output for one
// (jurisdiction, trade, project value) evaluation. It is recomputed on
// every call and never persisted as-is.
type PricingResult struct {
	RequestedJurisdiction string      `json:"requested_jurisdiction"`
	Jurisdiction          string      `json:"jurisdiction"` // resolved key
	Trade                 Trade       `json:"trade"`
	FeeCategory           FeeCategory `json:"fee_category"`
	ProjectValue          float64     `json:"project_value"`

	PermitFee         int            `json:"permit_fee"` // clamped to [min_fee, max_fee]
	PermitFeeMarkup   int            `json:"permit_fee_markup"`
	LaborHours        float64        `json:"labor_hours"`
	LaborCost         int            `json:"labor_cost"`
	LaborBreakdown    LaborBreakdown `json:"labor_breakdown"`
	RecommendedCharge int            `json:"recommended_charge"`
	ProfitMarginPct   int            `json:"profit_margin_pct"`
	Benchmarks        Benchmarks     `json:"benchmarks"`

	ProcessingTime string  `json:"processing_time"`
	ExpediteFee    float64 `json:"expedite_fee"`
	ExpediteTime   string  `json:"expedite_time"`

	DataQuality DataQualityRecord `json:"data_quality"`
	Notes       string            `json:"notes,omitempty"`
}
