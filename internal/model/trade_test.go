package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTrade(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		want      Trade
		wantKnown bool
	}{
		{name: "canonical lowercase", input: "electrical", want: TradeElectrical, wantKnown: true},
		{name: "alias", input: "electrician", want: TradeElectrical, wantKnown: true},
		{name: "mixed case with padding", input: "  Plumbing  ", want: TradePlumbing, wantKnown: true},
		{name: "mechanical maps to hvac", input: "Mechanical", want: TradeHVAC, wantKnown: true},
		{name: "pv maps to solar", input: "PV", want: TradeSolar, wantKnown: true},
		{name: "reroof", input: "reroof", want: TradeRoofing, wantKnown: true},
		{name: "demo", input: "demo", want: TradeDemolition, wantKnown: true},
		{name: "unknown falls back to general", input: "basket weaving", want: TradeGeneral, wantKnown: false},
		{name: "empty falls back to general", input: "", want: TradeGeneral, wantKnown: false},
		{name: "typo falls back to general", input: "electical", want: TradeGeneral, wantKnown: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, known := ParseTrade(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantKnown, known)
		})
	}
}

func TestParseTradeAliasesAreCanonical(t *testing.T) {
	t.Parallel()

	// Every alias must resolve to one of the ten canonical trades.
	canonical := make(map[Trade]bool, len(AllTrades))
	for _, tr := range AllTrades {
		canonical[tr] = true
	}
	for alias, tr := range tradeAliases {
		assert.True(t, canonical[tr], "alias %q maps to unknown trade %q", alias, tr)
	}
}

func TestFeeCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		trade Trade
		want  FeeCategory
	}{
		{TradeElectrical, FeeElectrical},
		{TradePlumbing, FeePlumbing},
		{TradeHVAC, FeeHVAC},
		{TradeSolar, FeeSolar},
		{TradeGeneral, FeeGeneral},
		{TradeRemodeling, FeeGeneral},
		{TradeRoofing, FeeGeneral},
		{TradePool, FeeGeneral},
		{TradeFence, FeeGeneral},
		{TradeDemolition, FeeGeneral},
	}

	for _, tt := range tests {
		t.Run(string(tt.trade), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.trade.FeeCategory())
		})
	}
}

func TestFeeCategoryTotalOverAllTrades(t *testing.T) {
	t.Parallel()

	valid := make(map[FeeCategory]bool, len(AllFeeCategories))
	for _, cat := range AllFeeCategories {
		valid[cat] = true
	}
	for _, tr := range AllTrades {
		assert.True(t, valid[tr.FeeCategory()], "trade %q maps outside the fee schedule", tr)
	}
}
