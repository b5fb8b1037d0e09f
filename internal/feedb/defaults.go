package feedb

import "github.com/permitdesk/permit-cli/internal/model"

// f returns a pointer to v, for optional fee fields in table literals.
func f(v float64) *float64 { return &v }

// DefaultTables returns the curated baseline: jurisdiction fee profiles,
// data-quality annotations, and the shared labor and markup tables.
// Figures were transcribed from published municipal fee schedules;
// regional buckets are rough estimates by construction.
func DefaultTables() Tables {
	return Tables{
		Profiles: map[string]model.JurisdictionProfile{
			"Los Angeles, CA": {
				Fees: map[model.FeeCategory]model.TradeFeeParameters{
					// LADBS bills electrical on valuation alone; the $150
					// minimum dominates small jobs.
					model.FeeElectrical: {ValuationRate: f(0.008), MinFee: 150, MaxFee: 3200},
					model.FeePlumbing:   {BaseFee: f(120), ValuationRate: f(0.006), MinFee: 120, MaxFee: 2800},
					model.FeeHVAC:       {BaseFee: f(135), ValuationRate: f(0.007), MinFee: 135, MaxFee: 2600},
					model.FeeGeneral:    {BaseFee: f(200), ValuationRate: f(0.012), MinFee: 200, MaxFee: 18000},
					model.FeeSolar:      {BaseFee: f(450), MinFee: 450, MaxFee: 450, Notes: "flat residential PV fee"},
				},
				ProcessingTime: "4-6 weeks", ExpediteFee: 350, ExpediteTime: "1-2 weeks",
			},
			"San Francisco, CA": {
				Fees: map[model.FeeCategory]model.TradeFeeParameters{
					model.FeeElectrical: {BaseFee: f(190), ValuationRate: f(0.009), MinFee: 190, MaxFee: 4200},
					model.FeePlumbing:   {BaseFee: f(170), ValuationRate: f(0.008), MinFee: 170, MaxFee: 3800},
					model.FeeHVAC:       {BaseFee: f(180), ValuationRate: f(0.008), MinFee: 180, MaxFee: 3500},
					model.FeeGeneral:    {BaseFee: f(260), ValuationRate: f(0.015), MinFee: 260, MaxFee: 25000},
					model.FeeSolar:      {BaseFee: f(520), MinFee: 520, MaxFee: 520, Notes: "flat residential PV fee"},
				},
				ProcessingTime: "6-8 weeks", ExpediteFee: 500, ExpediteTime: "2-3 weeks",
			},
			"Houston, TX": {
				Fees: map[model.FeeCategory]model.TradeFeeParameters{
					model.FeeElectrical: {BaseFee: f(95), ValuationRate: f(0.004), MinFee: 95, MaxFee: 1800},
					model.FeePlumbing:   {BaseFee: f(85), ValuationRate: f(0.004), MinFee: 85, MaxFee: 1600},
					model.FeeHVAC:       {BaseFee: f(90), ValuationRate: f(0.004), MinFee: 90, MaxFee: 1500},
					model.FeeGeneral:    {BaseFee: f(140), ValuationRate: f(0.008), MinFee: 140, MaxFee: 9000},
					model.FeeSolar:      {BaseFee: f(280), MinFee: 280, MaxFee: 280},
				},
				ProcessingTime: "2-3 weeks", ExpediteFee: 200, ExpediteTime: "3-5 days",
			},
			"Austin, TX": {
				Fees: map[model.FeeCategory]model.TradeFeeParameters{
					model.FeeElectrical: {BaseFee: f(110), ValuationRate: f(0.005), MinFee: 110, MaxFee: 2200},
					model.FeePlumbing:   {BaseFee: f(100), ValuationRate: f(0.005), MinFee: 100, MaxFee: 2000},
					model.FeeHVAC:       {BaseFee: f(105), ValuationRate: f(0.005), MinFee: 105, MaxFee: 1900},
					model.FeeGeneral:    {BaseFee: f(160), ValuationRate: f(0.009), MinFee: 160, MaxFee: 11000},
					model.FeeSolar:      {BaseFee: f(310), MinFee: 310, MaxFee: 310},
				},
				ProcessingTime: "3-4 weeks", ExpediteFee: 250, ExpediteTime: "1 week",
			},
			"Chicago, IL": {
				Fees: map[model.FeeCategory]model.TradeFeeParameters{
					model.FeeElectrical: {BaseFee: f(125), ValuationRate: f(0.006), MinFee: 125, MaxFee: 2600},
					model.FeePlumbing:   {BaseFee: f(115), ValuationRate: f(0.006), MinFee: 115, MaxFee: 2400},
					model.FeeHVAC:       {BaseFee: f(120), ValuationRate: f(0.006), MinFee: 120, MaxFee: 2200},
					model.FeeGeneral:    {BaseFee: f(175), ValuationRate: f(0.01), MinFee: 175, MaxFee: 13000},
					model.FeeSolar:      {BaseFee: f(375), MinFee: 375, MaxFee: 375},
				},
				ProcessingTime: "1-2 months", ExpediteFee: 400, ExpediteTime: "2 weeks",
			},
			"Phoenix, AZ": {
				Fees: map[model.FeeCategory]model.TradeFeeParameters{
					model.FeeElectrical: {BaseFee: f(90), ValuationRate: f(0.004), MinFee: 90, MaxFee: 1700},
					model.FeePlumbing:   {BaseFee: f(80), ValuationRate: f(0.004), MinFee: 80, MaxFee: 1500},
					model.FeeHVAC:       {BaseFee: f(85), ValuationRate: f(0.004), MinFee: 85, MaxFee: 1400},
					model.FeeGeneral:    {BaseFee: f(130), ValuationRate: f(0.007), MinFee: 130, MaxFee: 8500},
					model.FeeSolar:      {BaseFee: f(250), MinFee: 250, MaxFee: 250},
				},
				ProcessingTime: "2-4 weeks", ExpediteFee: 175, ExpediteTime: "1 week",
			},
			"Denver, CO": {
				Fees: map[model.FeeCategory]model.TradeFeeParameters{
					model.FeeElectrical: {BaseFee: f(105), ValuationRate: f(0.005), MinFee: 105, MaxFee: 2100},
					// Denver's published residential plumbing schedule lists a
					// $180 minimum against a $150 cap. Known upstream data
					// defect, reproduced as published; see feedb tests.
					model.FeePlumbing: {BaseFee: f(95), ValuationRate: f(0.005), MinFee: 180, MaxFee: 150, Notes: "published minimum exceeds cap"},
					model.FeeHVAC:     {BaseFee: f(100), ValuationRate: f(0.005), MinFee: 100, MaxFee: 1800},
					model.FeeGeneral:  {BaseFee: f(150), ValuationRate: f(0.008), MinFee: 150, MaxFee: 10000},
					model.FeeSolar:    {BaseFee: f(290), MinFee: 290, MaxFee: 290},
				},
				ProcessingTime: "3-5 weeks", ExpediteFee: 225, ExpediteTime: "1-2 weeks",
			},
			"Miami, FL": {
				Fees: map[model.FeeCategory]model.TradeFeeParameters{
					model.FeeElectrical: {BaseFee: f(100), ValuationRate: f(0.005), MinFee: 100, MaxFee: 2000},
					model.FeePlumbing:   {BaseFee: f(90), ValuationRate: f(0.005), MinFee: 90, MaxFee: 1800},
					model.FeeHVAC:       {BaseFee: f(95), ValuationRate: f(0.005), MinFee: 95, MaxFee: 1700},
					model.FeeGeneral:    {BaseFee: f(150), ValuationRate: f(0.009), MinFee: 150, MaxFee: 10000},
					model.FeeSolar:      {BaseFee: f(300), MinFee: 300, MaxFee: 300},
				},
				ProcessingTime: "4-8 weeks", ExpediteFee: 300, ExpediteTime: "1-2 weeks",
			},
			"New York, NY": {
				Fees: map[model.FeeCategory]model.TradeFeeParameters{
					model.FeeElectrical: {BaseFee: f(225), ValuationRate: f(0.01), MinFee: 225, MaxFee: 5000},
					model.FeePlumbing:   {BaseFee: f(200), ValuationRate: f(0.009), MinFee: 200, MaxFee: 4500},
					model.FeeHVAC:       {BaseFee: f(210), ValuationRate: f(0.009), MinFee: 210, MaxFee: 4200},
					model.FeeGeneral:    {BaseFee: f(300), ValuationRate: f(0.018), MinFee: 300, MaxFee: 30000},
					model.FeeSolar:      {BaseFee: f(600), MinFee: 600, MaxFee: 600},
				},
				ProcessingTime: "2-3 months", ExpediteFee: 650, ExpediteTime: "3-4 weeks",
			},
			"Seattle, WA": {
				Fees: map[model.FeeCategory]model.TradeFeeParameters{
					model.FeeElectrical: {BaseFee: f(130), ValuationRate: f(0.006), MinFee: 130, MaxFee: 2700},
					model.FeePlumbing:   {BaseFee: f(120), ValuationRate: f(0.006), MinFee: 120, MaxFee: 2500},
					model.FeeHVAC:       {BaseFee: f(125), ValuationRate: f(0.006), MinFee: 125, MaxFee: 2300},
					model.FeeGeneral:    {BaseFee: f(185), ValuationRate: f(0.011), MinFee: 185, MaxFee: 14000},
					model.FeeSolar:      {BaseFee: f(400), MinFee: 400, MaxFee: 400},
				},
				ProcessingTime: "4-6 weeks", ExpediteFee: 350, ExpediteTime: "2 weeks",
			},

			// Regional fallback buckets. Estimated by construction.
			model.KeyDefault: {
				Fees: map[model.FeeCategory]model.TradeFeeParameters{
					model.FeeElectrical: {BaseFee: f(100), ValuationRate: f(0.005), MinFee: 100, MaxFee: 2000},
					model.FeePlumbing:   {BaseFee: f(90), ValuationRate: f(0.005), MinFee: 90, MaxFee: 1800},
					model.FeeHVAC:       {BaseFee: f(95), ValuationRate: f(0.005), MinFee: 95, MaxFee: 1700},
					model.FeeGeneral:    {BaseFee: f(150), ValuationRate: f(0.008), MinFee: 150, MaxFee: 10000},
					model.FeeSolar:      {BaseFee: f(300), MinFee: 300, MaxFee: 300},
				},
				ProcessingTime: "4-8 weeks", ExpediteFee: 250, ExpediteTime: "1-2 weeks",
			},
			model.KeyDefaultMidwest: {
				Fees: map[model.FeeCategory]model.TradeFeeParameters{
					model.FeeElectrical: {BaseFee: f(85), ValuationRate: f(0.004), MinFee: 85, MaxFee: 1600},
					model.FeePlumbing:   {BaseFee: f(75), ValuationRate: f(0.004), MinFee: 75, MaxFee: 1400},
					model.FeeHVAC:       {BaseFee: f(80), ValuationRate: f(0.004), MinFee: 80, MaxFee: 1300},
					model.FeeGeneral:    {BaseFee: f(120), ValuationRate: f(0.007), MinFee: 120, MaxFee: 8000},
					model.FeeSolar:      {BaseFee: f(240), MinFee: 240, MaxFee: 240},
				},
				ProcessingTime: "2-4 weeks", ExpediteFee: 150, ExpediteTime: "1 week",
			},
			model.KeyDefaultTexas: {
				Fees: map[model.FeeCategory]model.TradeFeeParameters{
					model.FeeElectrical: {BaseFee: f(90), ValuationRate: f(0.004), MinFee: 90, MaxFee: 1700},
					model.FeePlumbing:   {BaseFee: f(80), ValuationRate: f(0.004), MinFee: 80, MaxFee: 1500},
					model.FeeHVAC:       {BaseFee: f(85), ValuationRate: f(0.004), MinFee: 85, MaxFee: 1400},
					model.FeeGeneral:    {BaseFee: f(130), ValuationRate: f(0.007), MinFee: 130, MaxFee: 8500},
					model.FeeSolar:      {BaseFee: f(260), MinFee: 260, MaxFee: 260},
				},
				ProcessingTime: "2-3 weeks", ExpediteFee: 150, ExpediteTime: "3-5 days",
			},
			model.KeyDefaultCalifornia: {
				Fees: map[model.FeeCategory]model.TradeFeeParameters{
					model.FeeElectrical: {BaseFee: f(140), ValuationRate: f(0.007), MinFee: 140, MaxFee: 3000},
					model.FeePlumbing:   {BaseFee: f(125), ValuationRate: f(0.006), MinFee: 125, MaxFee: 2700},
					model.FeeHVAC:       {BaseFee: f(130), ValuationRate: f(0.006), MinFee: 130, MaxFee: 2500},
					model.FeeGeneral:    {BaseFee: f(200), ValuationRate: f(0.012), MinFee: 200, MaxFee: 16000},
					model.FeeSolar:      {BaseFee: f(420), MinFee: 420, MaxFee: 420},
				},
				ProcessingTime: "4-6 weeks", ExpediteFee: 350, ExpediteTime: "1-2 weeks",
			},
			model.KeyDefaultMountainWest: {
				Fees: map[model.FeeCategory]model.TradeFeeParameters{
					model.FeeElectrical: {BaseFee: f(95), ValuationRate: f(0.004), MinFee: 95, MaxFee: 1800},
					model.FeePlumbing:   {BaseFee: f(85), ValuationRate: f(0.004), MinFee: 85, MaxFee: 1600},
					model.FeeHVAC:       {BaseFee: f(90), ValuationRate: f(0.004), MinFee: 90, MaxFee: 1500},
					model.FeeGeneral:    {BaseFee: f(135), ValuationRate: f(0.007), MinFee: 135, MaxFee: 9000},
					model.FeeSolar:      {BaseFee: f(270), MinFee: 270, MaxFee: 270},
				},
				ProcessingTime: "3-5 weeks", ExpediteFee: 200, ExpediteTime: "1 week",
			},
			model.KeyDefaultSoutheast: {
				Fees: map[model.FeeCategory]model.TradeFeeParameters{
					model.FeeElectrical: {BaseFee: f(85), ValuationRate: f(0.004), MinFee: 85, MaxFee: 1600},
					model.FeePlumbing:   {BaseFee: f(75), ValuationRate: f(0.004), MinFee: 75, MaxFee: 1400},
					model.FeeHVAC:       {BaseFee: f(80), ValuationRate: f(0.004), MinFee: 80, MaxFee: 1300},
					model.FeeGeneral:    {BaseFee: f(125), ValuationRate: f(0.007), MinFee: 125, MaxFee: 8000},
					model.FeeSolar:      {BaseFee: f(250), MinFee: 250, MaxFee: 250},
				},
				ProcessingTime: "3-6 weeks", ExpediteFee: 175, ExpediteTime: "1 week",
			},
			model.KeyDefaultNortheast: {
				Fees: map[model.FeeCategory]model.TradeFeeParameters{
					model.FeeElectrical: {BaseFee: f(150), ValuationRate: f(0.007), MinFee: 150, MaxFee: 3200},
					model.FeePlumbing:   {BaseFee: f(135), ValuationRate: f(0.006), MinFee: 135, MaxFee: 2900},
					model.FeeHVAC:       {BaseFee: f(140), ValuationRate: f(0.006), MinFee: 140, MaxFee: 2700},
					model.FeeGeneral:    {BaseFee: f(210), ValuationRate: f(0.013), MinFee: 210, MaxFee: 17000},
					model.FeeSolar:      {BaseFee: f(440), MinFee: 440, MaxFee: 440},
				},
				ProcessingTime: "6-10 weeks", ExpediteFee: 400, ExpediteTime: "2-3 weeks",
			},
		},

		Quality: map[string]model.DataQualityRecord{
			"Los Angeles, CA":   {Quality: model.QualityVerified, Source: "LADBS fee schedule", LastVerified: "2026-05-12", Confidence: model.ConfidenceHigh, URL: "https://www.ladbs.org/services/core-services/plan-check-permit/permit-fees"},
			"San Francisco, CA": {Quality: model.QualityVerified, Source: "SF DBI fee tables", LastVerified: "2026-04-30", Confidence: model.ConfidenceHigh, URL: "https://sfdbi.org/fees"},
			"Houston, TX":       {Quality: model.QualityVerified, Source: "Houston Permitting Center", LastVerified: "2026-06-02", Confidence: model.ConfidenceHigh, URL: "https://www.houstonpermittingcenter.org/fees"},
			"Austin, TX":        {Quality: model.QualityPartiallyVerified, Source: "Austin DSD fee schedule", LastVerified: "2026-01-15", Confidence: model.ConfidenceMedium},
			"Chicago, IL":       {Quality: model.QualityVerified, Source: "Chicago DOB fee ordinance", LastVerified: "2026-03-20", Confidence: model.ConfidenceHigh},
			"Phoenix, AZ":       {Quality: model.QualityPartiallyVerified, Source: "Phoenix PDD fee estimator", LastVerified: "2025-11-08", Confidence: model.ConfidenceMedium},
			"Denver, CO":        {Quality: model.QualityPartiallyVerified, Source: "Denver CPD fee schedule", LastVerified: "2025-12-01", Confidence: model.ConfidenceMedium},
			"Miami, FL":         {Quality: model.QualityVerified, Source: "Miami-Dade permit fee schedule", LastVerified: "2026-02-17", Confidence: model.ConfidenceHigh},
			"New York, NY":      {Quality: model.QualityVerified, Source: "NYC DOB fee rules", LastVerified: "2026-05-01", Confidence: model.ConfidenceHigh, URL: "https://www.nyc.gov/site/buildings/about/fees.page"},
			"Seattle, WA":       {Quality: model.QualityPartiallyVerified, Source: "Seattle SDCI fee subtitle", LastVerified: "2025-10-22", Confidence: model.ConfidenceMedium},

			model.KeyDefault:             {Quality: model.QualityEstimated, Source: "national average estimate", LastVerified: "2026-01-01", Confidence: model.ConfidenceLow},
			model.KeyDefaultMidwest:      {Quality: model.QualityEstimated, Source: "regional estimate", LastVerified: "2026-01-01", Confidence: model.ConfidenceLow},
			model.KeyDefaultTexas:        {Quality: model.QualityEstimated, Source: "regional estimate", LastVerified: "2026-01-01", Confidence: model.ConfidenceMedium},
			model.KeyDefaultCalifornia:   {Quality: model.QualityEstimated, Source: "regional estimate", LastVerified: "2026-01-01", Confidence: model.ConfidenceMedium},
			model.KeyDefaultMountainWest: {Quality: model.QualityEstimated, Source: "regional estimate", LastVerified: "2026-01-01", Confidence: model.ConfidenceLow},
			model.KeyDefaultSoutheast:    {Quality: model.QualityEstimated, Source: "regional estimate", LastVerified: "2026-01-01", Confidence: model.ConfidenceLow},
			model.KeyDefaultNortheast:    {Quality: model.QualityEstimated, Source: "regional estimate", LastVerified: "2026-01-01", Confidence: model.ConfidenceLow},
		},

		Labor: map[model.Trade]model.LaborProfile{
			model.TradeElectrical: {DocumentPrep: 1.5, PlanDrawing: 2.0, Submission: 1.0, Inspection: 2.0, Corrections: 1.0, Total: 7.5},
			model.TradePlumbing:   {DocumentPrep: 1.5, PlanDrawing: 1.5, Submission: 1.0, Inspection: 2.0, Corrections: 1.0, Total: 7.0},
			model.TradeHVAC:       {DocumentPrep: 2.0, PlanDrawing: 2.5, Submission: 1.0, Inspection: 2.0, Corrections: 1.5, Total: 9.0},
			model.TradeGeneral:    {DocumentPrep: 2.5, PlanDrawing: 3.0, Submission: 1.5, Inspection: 2.5, Corrections: 1.5, Total: 11.0},
			model.TradeRemodeling: {DocumentPrep: 3.0, PlanDrawing: 4.0, Submission: 1.5, Inspection: 3.0, Corrections: 2.0, Total: 13.5},
			model.TradeSolar:      {DocumentPrep: 2.0, PlanDrawing: 3.0, Submission: 1.5, Inspection: 2.5, Corrections: 1.5, Total: 10.5},
			model.TradeRoofing:    {DocumentPrep: 1.0, PlanDrawing: 1.0, Submission: 1.0, Inspection: 1.5, Corrections: 0.5, Total: 5.0},
			model.TradePool:       {DocumentPrep: 2.5, PlanDrawing: 3.5, Submission: 1.5, Inspection: 3.0, Corrections: 1.5, Total: 12.0},
			model.TradeFence:      {DocumentPrep: 1.0, PlanDrawing: 1.0, Submission: 0.5, Inspection: 1.0, Corrections: 0.5, Total: 4.0},
			model.TradeDemolition: {DocumentPrep: 1.5, PlanDrawing: 1.0, Submission: 1.0, Inspection: 1.5, Corrections: 0.5, Total: 5.5},
		},

		Markup: map[model.Trade]model.MarkupProfile{
			model.TradeElectrical: {PermitFeeMarkup: 0.25, LaborRate: 85, MinimumCharge: 500},
			model.TradePlumbing:   {PermitFeeMarkup: 0.25, LaborRate: 85, MinimumCharge: 500},
			model.TradeHVAC:       {PermitFeeMarkup: 0.25, LaborRate: 90, MinimumCharge: 600},
			model.TradeGeneral:    {PermitFeeMarkup: 0.30, LaborRate: 75, MinimumCharge: 750},
			model.TradeRemodeling: {PermitFeeMarkup: 0.30, LaborRate: 75, MinimumCharge: 900},
			model.TradeSolar:      {PermitFeeMarkup: 0.20, LaborRate: 95, MinimumCharge: 850},
			model.TradeRoofing:    {PermitFeeMarkup: 0.25, LaborRate: 70, MinimumCharge: 450},
			model.TradePool:       {PermitFeeMarkup: 0.30, LaborRate: 80, MinimumCharge: 950},
			model.TradeFence:      {PermitFeeMarkup: 0.25, LaborRate: 65, MinimumCharge: 350},
			model.TradeDemolition: {PermitFeeMarkup: 0.25, LaborRate: 70, MinimumCharge: 400},
		},
	}
}
