package model

// LaborProfile holds per-trade task durations in hours. Total is carried
// in the table rather than derived so the table stays the single source
// of truth; the loader checks it against the component sum.
type LaborProfile struct {
	DocumentPrep float64 `json:"document_prep" yaml:"document_prep"`
	PlanDrawing  float64 `json:"plan_drawing" yaml:"plan_drawing"`
	Submission   float64 `json:"submission" yaml:"submission"`
	Inspection   float64 `json:"inspection" yaml:"inspection"`
	Corrections  float64 `json:"corrections" yaml:"corrections"`
	Total        float64 `json:"total" yaml:"total"`
}

// ComponentSum returns the sum of the five task durations.
func (l LaborProfile) ComponentSum() float64 {
	return l.DocumentPrep + l.PlanDrawing + l.Submission + l.Inspection + l.Corrections
}

// MarkupProfile holds per-trade pricing levers.
type MarkupProfile struct {
	PermitFeeMarkup float64 `json:"permit_fee_markup" yaml:"permit_fee_markup"` // fraction, 0 < x < 1
	LaborRate       float64 `json:"labor_rate" yaml:"labor_rate"`               // dollars per hour
	MinimumCharge   float64 `json:"minimum_charge" yaml:"minimum_charge"`       // floor on the client charge
}
