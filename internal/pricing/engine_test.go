package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/permitdesk/permit-cli/internal/feedb"
	"github.com/permitdesk/permit-cli/internal/model"
)

func testEngine() *Engine {
	return New(feedb.NewService(feedb.DefaultTables(), ""), DefaultConfig())
}

func TestPriceLosAngelesElectrical(t *testing.T) {
	t.Parallel()
	e := testEngine()

	// LA electrical has no base fee: a $100 job prices at 100*0.008 =
	// $0.80 raw and clamps to the $150 minimum exactly.
	got := e.Price("Los Angeles, CA", "electrical", 100)

	assert.Equal(t, "Los Angeles, CA", got.Jurisdiction)
	assert.Equal(t, model.TradeElectrical, got.Trade)
	assert.Equal(t, 150, got.PermitFee)
	// markup: 150 * 0.25 = 37.5 -> 38
	assert.Equal(t, 38, got.PermitFeeMarkup)
	// labor: 7.5h * $85 = 637.5 -> 638
	assert.Equal(t, 638, got.LaborCost)
	// charge: 150 + 38 + 638 = 826, above the $500 minimum
	assert.Equal(t, 826, got.RecommendedCharge)
	// margin: 38 / 826 * 100 = 4.6 -> 5
	assert.Equal(t, 5, got.ProfitMarginPct)
	// benchmarks: 150*0.5 = 75; 150*2.5 + 500 = 875
	assert.Equal(t, 75, got.Benchmarks.UnlicensedPrice)
	assert.Equal(t, 875, got.Benchmarks.ExpediterPrice)
	assert.Equal(t, model.QualityVerified, got.DataQuality.Quality)
}

func TestPriceValuationScaling(t *testing.T) {
	t.Parallel()
	e := testEngine()

	tests := []struct {
		name    string
		value   float64
		wantFee int
	}{
		// Houston electrical: 95 base + 0.004/dollar, min 95, max 1800.
		{name: "small job clamps to minimum", value: 0, wantFee: 95},
		{name: "negative value clamps to minimum", value: -10000, wantFee: 95},
		// 95 + 5000*0.004 = 115
		{name: "mid job is additive", value: 5000, wantFee: 115},
		// 95 + 100000*0.004 = 495
		{name: "large job is additive", value: 100000, wantFee: 495},
		// 95 + 1000000*0.004 = 4095 -> cap 1800
		{name: "huge job clamps to cap", value: 1000000, wantFee: 1800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := e.Price("Houston, TX", "electrical", tt.value)
			assert.Equal(t, tt.wantFee, got.PermitFee)
		})
	}
}

func TestPriceInvertedBoundsYieldCap(t *testing.T) {
	t.Parallel()
	e := testEngine()

	// Denver's plumbing schedule publishes min 180 over cap 150. The
	// floor applies first, then the cap, so every job lands on the cap.
	for _, value := range []float64{0, 100, 5000, 500000} {
		got := e.Price("Denver, CO", "plumbing", value)
		assert.Equal(t, 150, got.PermitFee, "value %v", value)
		assert.NotEmpty(t, got.Notes)
	}
}

func TestPriceFlatSolarFee(t *testing.T) {
	t.Parallel()
	e := testEngine()

	// Flat schedules pin base, min, and max to one figure; project value
	// is irrelevant.
	small := e.Price("Miami, FL", "solar", 1000)
	large := e.Price("Miami, FL", "solar", 900000)
	assert.Equal(t, 300, small.PermitFee)
	assert.Equal(t, 300, large.PermitFee)
}

func TestPriceFallbacks(t *testing.T) {
	t.Parallel()
	e := testEngine()

	t.Run("unknown jurisdiction resolves regionally", func(t *testing.T) {
		t.Parallel()
		got := e.Price("El Paso, TX", "electrical", 5000)
		assert.Equal(t, "El Paso, TX", got.RequestedJurisdiction)
		assert.Equal(t, model.KeyDefaultTexas, got.Jurisdiction)
		assert.True(t, got.DataQuality.Estimated())
	})

	t.Run("no state code resolves to generic bucket", func(t *testing.T) {
		t.Parallel()
		got := e.Price("Springfield", "plumbing", 5000)
		assert.Equal(t, model.KeyDefault, got.Jurisdiction)
		assert.True(t, got.DataQuality.Estimated())
	})

	t.Run("unknown trade prices as general", func(t *testing.T) {
		t.Parallel()
		got := e.Price("Houston, TX", "underwater basket weaving", 5000)
		assert.Equal(t, model.TradeGeneral, got.Trade)
		assert.Equal(t, model.FeeGeneral, got.FeeCategory)
	})
}

func TestPriceMinimumCharge(t *testing.T) {
	t.Parallel()
	e := testEngine()

	// The recommended charge never drops below the trade's minimum,
	// even for zero-value jobs in the cheapest bucket.
	for _, trade := range model.AllTrades {
		got := e.Price("Columbus, OH", string(trade), 0)
		min := feedb.DefaultTables().Markup[trade].MinimumCharge
		assert.GreaterOrEqual(t, float64(got.RecommendedCharge), min, "trade %s", trade)
	}
}

func TestPriceLaborBreakdownSumsToCost(t *testing.T) {
	t.Parallel()
	e := testEngine()

	got := e.Price("Chicago, IL", "hvac", 20000)
	b := got.LaborBreakdown
	sum := b.DocumentPrep + b.PlanDrawing + b.Submission + b.Inspection + b.Corrections
	// Component rounding can drift from the rounded total by at most a
	// couple of dollars.
	assert.InDelta(t, got.LaborCost, sum, 3)
}

func TestPriceDeterministic(t *testing.T) {
	t.Parallel()
	e := testEngine()

	a := e.Price("Seattle, WA", "roofing", 42000)
	b := e.Price("Seattle, WA", "roofing", 42000)
	assert.Equal(t, a, b)
}

func TestPriceClampInvariantEverywhere(t *testing.T) {
	t.Parallel()
	e := testEngine()
	tables := feedb.DefaultTables()

	// For every jurisdiction and trade the fee stays inside the
	// published bounds; inverted schedules land on their cap.
	for _, key := range tables.Keys() {
		for _, trade := range model.AllTrades {
			got := e.Price(key, string(trade), 5000)
			fp := tables.Profiles[key].Fees[trade.FeeCategory()]
			if fp.MinFee > fp.MaxFee {
				assert.Equal(t, int(fp.MaxFee), got.PermitFee, "%s/%s", key, trade)
				continue
			}
			assert.GreaterOrEqual(t, float64(got.PermitFee), fp.MinFee, "%s/%s", key, trade)
			assert.LessOrEqual(t, float64(got.PermitFee), fp.MaxFee, "%s/%s", key, trade)
		}
	}
}

func TestPermitFee(t *testing.T) {
	t.Parallel()

	base, rate := 100.0, 0.01
	tests := []struct {
		name  string
		fp    model.TradeFeeParameters
		value float64
		want  int
	}{
		{
			name:  "nil base contributes zero",
			fp:    model.TradeFeeParameters{ValuationRate: &rate, MinFee: 50, MaxFee: 5000},
			value: 20000,
			want:  200,
		},
		{
			name:  "nil rate contributes zero",
			fp:    model.TradeFeeParameters{BaseFee: &base, MinFee: 50, MaxFee: 5000},
			value: 20000,
			want:  100,
		},
		{
			name:  "both nil clamps to floor",
			fp:    model.TradeFeeParameters{MinFee: 50, MaxFee: 5000},
			value: 20000,
			want:  50,
		},
		{
			name:  "fractional fee rounds half up",
			fp:    model.TradeFeeParameters{ValuationRate: &rate, MinFee: 0, MaxFee: 5000},
			value: 12550, // 125.5 -> 126
			want:  126,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, permitFee(tt.fp, tt.value))
		})
	}
}
