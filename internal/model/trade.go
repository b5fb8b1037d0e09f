// Package model defines the domain types shared across the pricing core.
package model

import "strings"

// Trade is a canonical category of permitted work.
type Trade string

// The ten canonical trades.
const (
	TradeElectrical Trade = "Electrical"
	TradePlumbing   Trade = "Plumbing"
	TradeHVAC       Trade = "HVAC"
	TradeGeneral    Trade = "General Construction"
	TradeRemodeling Trade = "Remodeling"
	TradeSolar      Trade = "Solar"
	TradeRoofing    Trade = "Roofing"
	TradePool       Trade = "Pool"
	TradeFence      Trade = "Fence"
	TradeDemolition Trade = "Demolition"
)

// AllTrades lists the canonical trades in display order.
var AllTrades = []Trade{
	TradeElectrical, TradePlumbing, TradeHVAC, TradeGeneral, TradeRemodeling,
	TradeSolar, TradeRoofing, TradePool, TradeFence, TradeDemolition,
}

// FeeCategory is one of the five fee schedule columns a jurisdiction
// publishes. Several trades share the general schedule.
type FeeCategory string

// Fee schedule categories.
const (
	FeeElectrical FeeCategory = "electrical"
	FeePlumbing   FeeCategory = "plumbing"
	FeeHVAC       FeeCategory = "hvac"
	FeeGeneral    FeeCategory = "general"
	FeeSolar      FeeCategory = "solar"
)

// AllFeeCategories lists the fee schedule categories in table order.
var AllFeeCategories = []FeeCategory{
	FeeElectrical, FeePlumbing, FeeHVAC, FeeGeneral, FeeSolar,
}

// tradeAliases maps normalized free-form job-type strings to canonical
// trades. Anything not in this table parses as TradeGeneral.
var tradeAliases = map[string]Trade{
	"electrical":           TradeElectrical,
	"electric":             TradeElectrical,
	"electrician":          TradeElectrical,
	"plumbing":             TradePlumbing,
	"plumber":              TradePlumbing,
	"hvac":                 TradeHVAC,
	"mechanical":           TradeHVAC,
	"heating":              TradeHVAC,
	"air conditioning":     TradeHVAC,
	"general":              TradeGeneral,
	"general construction": TradeGeneral,
	"construction":         TradeGeneral,
	"remodel":              TradeRemodeling,
	"remodeling":           TradeRemodeling,
	"renovation":           TradeRemodeling,
	"solar":                TradeSolar,
	"pv":                   TradeSolar,
	"roofing":              TradeRoofing,
	"roof":                 TradeRoofing,
	"reroof":               TradeRoofing,
	"pool":                 TradePool,
	"swimming pool":        TradePool,
	"fence":                TradeFence,
	"fencing":              TradeFence,
	"demolition":           TradeDemolition,
	"demo":                 TradeDemolition,
}

// ParseTrade normalizes a free-form job-type string to a canonical trade.
// The mapping is total: unrecognized input falls back to TradeGeneral so
// a typo degrades the result instead of failing the request.
func ParseTrade(s string) (Trade, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	if t, ok := tradeAliases[key]; ok {
		return t, true
	}
	return TradeGeneral, false
}

// FeeCategory returns the fee schedule column a trade is billed under.
// Remodeling, roofing, pool, fence, and demolition work all pull permits
// from the general schedule.
func (t Trade) FeeCategory() FeeCategory {
	switch t {
	case TradeElectrical:
		return FeeElectrical
	case TradePlumbing:
		return FeePlumbing
	case TradeHVAC:
		return FeeHVAC
	case TradeSolar:
		return FeeSolar
	default:
		return FeeGeneral
	}
}
