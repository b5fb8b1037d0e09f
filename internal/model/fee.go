package model

// Reserved fallback jurisdiction keys. Regional buckets follow the
// "default-<region>" form; the generic bucket is plain "default".
const (
	KeyDefault             = "default"
	KeyDefaultMidwest      = "default-midwest"
	KeyDefaultTexas        = "default-texas"
	KeyDefaultCalifornia   = "default-california"
	KeyDefaultMountainWest = "default-mountain-west"
	KeyDefaultSoutheast    = "default-southeast"
	KeyDefaultNortheast    = "default-northeast"
)

// TradeFeeParameters holds one jurisdiction's fee schedule for one fee
// category. BaseFee and ValuationRate are pointers because flat and
// per-unit fee structures leave one or the other unset; MinFee and
// MaxFee are always published.
type TradeFeeParameters struct {
	BaseFee       *float64 `json:"base_fee" yaml:"base_fee"`
	ValuationRate *float64 `json:"valuation_rate" yaml:"valuation_rate"`
	MinFee        float64  `json:"min_fee" yaml:"min_fee"`
	MaxFee        float64  `json:"max_fee" yaml:"max_fee"`
	Notes         string   `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// JurisdictionProfile is a jurisdiction's full fee record: one
// TradeFeeParameters per fee category plus processing and expedite terms.
type JurisdictionProfile struct {
	Fees           map[FeeCategory]TradeFeeParameters `json:"fees" yaml:"fees"`
	ProcessingTime string                             `json:"processing_time" yaml:"processing_time"`
	ExpediteFee    float64                            `json:"expedite_fee" yaml:"expedite_fee"`
	ExpediteTime   string                             `json:"expedite_time" yaml:"expedite_time"`
}

// Clone returns a deep copy of the profile. Overlay merging operates on
// clones so the static baseline is never mutated.
func (p JurisdictionProfile) Clone() JurisdictionProfile {
	out := p
	out.Fees = make(map[FeeCategory]TradeFeeParameters, len(p.Fees))
	for cat, fp := range p.Fees {
		cp := fp
		if fp.BaseFee != nil {
			v := *fp.BaseFee
			cp.BaseFee = &v
		}
		if fp.ValuationRate != nil {
			v := *fp.ValuationRate
			cp.ValuationRate = &v
		}
		out.Fees[cat] = cp
	}
	return out
}

// Data quality levels.
const (
	QualityVerified          = "verified"
	QualityPartiallyVerified = "partially-verified"
	QualityEstimated         = "estimated"
)

// Confidence levels.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// DataQualityRecord annotates how trustworthy a jurisdiction's fee
// figures are. Regional fallback buckets are always estimated.
type DataQualityRecord struct {
	Quality      string `json:"quality" yaml:"quality"`
	Source       string `json:"source" yaml:"source"`
	LastVerified string `json:"last_verified" yaml:"last_verified"`
	Confidence   string `json:"confidence" yaml:"confidence"`
	URL          string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Estimated reports whether the record marks a regionally estimated
// figure rather than a verified one.
func (q DataQualityRecord) Estimated() bool {
	return q.Quality == QualityEstimated
}

// ScrapedFees holds the raw per-category fee fields from one scrape.
// All numeric fields are pointers: absence means the scraper found
// nothing for that field, which is not the same as zero.
type ScrapedFees struct {
	BaseFee       *float64 `json:"baseFee"`
	ValuationRate *float64 `json:"valuationRate"`
	MinFee        *float64 `json:"minFee"`
	MaxFee        *float64 `json:"maxFee"`
	Notes         string   `json:"notes,omitempty"`
}

// ScrapeRecord is one jurisdiction's entry in the scrape history store.
type ScrapeRecord struct {
	ScrapedAt string                      `json:"scrapedAt"`
	Source    string                      `json:"source"`
	SourceURL string                      `json:"sourceUrl"`
	Trades    map[FeeCategory]ScrapedFees `json:"trades"`
}
