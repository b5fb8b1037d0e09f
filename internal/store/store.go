// Package store persists quote and comparison activity for
// administrative reporting. It mirrors nothing back into the pricing
// core; pricing results are ephemeral and recomputed on every call.
package store

import (
	"context"
	"time"
)

// QuoteRecord is one logged pricing evaluation.
type QuoteRecord struct {
	ID                    string    `json:"id"`
	RequestedJurisdiction string    `json:"requested_jurisdiction"`
	Jurisdiction          string    `json:"jurisdiction"`
	Trade                 string    `json:"trade"`
	ProjectValue          float64   `json:"project_value"`
	PermitFee             int       `json:"permit_fee"`
	RecommendedCharge     int       `json:"recommended_charge"`
	ProfitMarginPct       int       `json:"profit_margin_pct"`
	DataQuality           string    `json:"data_quality"`
	CreatedAt             time.Time `json:"created_at"`
}

// ComparisonRecord is one logged comparison run.
type ComparisonRecord struct {
	ID             string    `json:"id"`
	JobType        string    `json:"job_type"`
	Jurisdictions  []string  `json:"jurisdictions"`
	ReferenceValue float64   `json:"reference_value"`
	Variance       int       `json:"variance"`
	CreatedAt      time.Time `json:"created_at"`
}

// QuoteFilter specifies criteria for listing quotes.
type QuoteFilter struct {
	Jurisdiction string `json:"jurisdiction,omitempty"`
	Trade        string `json:"trade,omitempty"`
	Limit        int    `json:"limit,omitempty"`
	Offset       int    `json:"offset,omitempty"`
}

// TradeActivity aggregates quote volume for one trade.
type TradeActivity struct {
	Trade     string `json:"trade"`
	Quotes    int    `json:"quotes"`
	AvgCharge int    `json:"avg_charge"`
}

// JurisdictionActivity aggregates quote volume for one jurisdiction.
type JurisdictionActivity struct {
	Jurisdiction string `json:"jurisdiction"`
	Quotes       int    `json:"quotes"`
	AvgCharge    int    `json:"avg_charge"`
}

// ActivityReport is the admin rollup over a time window.
type ActivityReport struct {
	Since            time.Time              `json:"since"`
	TotalQuotes      int                    `json:"total_quotes"`
	TotalComparisons int                    `json:"total_comparisons"`
	AverageCharge    int                    `json:"average_charge"`
	ByTrade          []TradeActivity        `json:"by_trade"`
	ByJurisdiction   []JurisdictionActivity `json:"by_jurisdiction"`
}

// Store defines the persistence interface for activity logging.
type Store interface {
	RecordQuote(ctx context.Context, q QuoteRecord) (string, error)
	RecordComparison(ctx context.Context, c ComparisonRecord) (string, error)
	ListQuotes(ctx context.Context, filter QuoteFilter) ([]QuoteRecord, error)
	ActivityReport(ctx context.Context, since time.Time) (*ActivityReport, error)

	Migrate(ctx context.Context) error
	Close() error
}
