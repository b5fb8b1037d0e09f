// Package forms curates the government document packets required to
// pull a permit, keyed by jurisdiction and fee category. The catalog is
// a read-only lookup; the pricing core does not depend on it.
package forms

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/permitdesk/permit-cli/internal/model"
	"github.com/permitdesk/permit-cli/internal/region"
)

// Form is one government document in a permit packet.
type Form struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Agency    string `json:"agency" yaml:"agency"`
	URL       string `json:"url,omitempty" yaml:"url,omitempty"`
	Notarized bool   `json:"notarized" yaml:"notarized"`
}

// Catalog resolves permit packets with the same regional fallback the
// fee tables use.
type Catalog struct {
	entries  map[string]map[model.FeeCategory][]Form
	resolver *region.Resolver
}

// NewCatalog builds a catalog over the given entries. Keys mirror the
// fee table: exact "City, ST" entries plus default-* buckets.
func NewCatalog(entries map[string]map[model.FeeCategory][]Form) *Catalog {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	return &Catalog{entries: entries, resolver: region.New(keys)}
}

// Packet returns the ordered form list for a jurisdiction and trade.
// Unknown jurisdictions fall back regionally, then to the generic
// bucket; the result is never nil for a catalog that defines the
// generic bucket.
func (c *Catalog) Packet(jurisdiction string, trade model.Trade) []Form {
	key := c.resolver.Resolve(jurisdiction)
	cat := trade.FeeCategory()

	if byCat, ok := c.entries[key]; ok {
		if forms, ok := byCat[cat]; ok {
			return forms
		}
	}
	if byCat, ok := c.entries[model.KeyDefault]; ok {
		return byCat[cat]
	}
	return nil
}

// Load returns the default catalog, applying per-key overrides from a
// YAML file when path is non-empty.
func Load(path string) (*Catalog, error) {
	entries := defaultEntries()
	if path == "" {
		return NewCatalog(entries), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "forms: read catalog %s", path)
	}
	var override map[string]map[model.FeeCategory][]Form
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, eris.Wrapf(err, "forms: parse catalog %s", path)
	}
	for k, v := range override {
		entries[k] = v
	}
	return NewCatalog(entries), nil
}

// defaultEntries is the curated packet table. City entries carry the
// jurisdiction-specific applications; the generic bucket covers
// everything else with the standard application set.
func defaultEntries() map[string]map[model.FeeCategory][]Form {
	standard := func(prefix, agency string) map[model.FeeCategory][]Form {
		return map[model.FeeCategory][]Form{
			model.FeeElectrical: {
				{ID: prefix + "-E1", Name: "Electrical Permit Application", Agency: agency},
				{ID: prefix + "-E2", Name: "Load Calculation Worksheet", Agency: agency},
			},
			model.FeePlumbing: {
				{ID: prefix + "-P1", Name: "Plumbing Permit Application", Agency: agency},
			},
			model.FeeHVAC: {
				{ID: prefix + "-M1", Name: "Mechanical Permit Application", Agency: agency},
				{ID: prefix + "-M2", Name: "Equipment Schedule", Agency: agency},
			},
			model.FeeGeneral: {
				{ID: prefix + "-B1", Name: "Building Permit Application", Agency: agency},
				{ID: prefix + "-B2", Name: "Owner-Builder Declaration", Agency: agency, Notarized: true},
			},
			model.FeeSolar: {
				{ID: prefix + "-S1", Name: "Solar PV Permit Application", Agency: agency},
				{ID: prefix + "-S2", Name: "Single-Line Electrical Diagram", Agency: agency},
				{ID: prefix + "-S3", Name: "Structural Load Attestation", Agency: agency, Notarized: true},
			},
		}
	}

	return map[string]map[model.FeeCategory][]Form{
		"Los Angeles, CA":   standard("LA", "LA Dept. of Building and Safety"),
		"San Francisco, CA": standard("SF", "SF Dept. of Building Inspection"),
		"Houston, TX":       standard("HOU", "Houston Permitting Center"),
		"Chicago, IL":       standard("CHI", "Chicago Dept. of Buildings"),
		"New York, NY":      standard("NYC", "NYC Dept. of Buildings"),

		model.KeyDefault:             standard("STD", "local building department"),
		model.KeyDefaultMidwest:      standard("MW", "local building department"),
		model.KeyDefaultTexas:        standard("TXR", "local permitting office"),
		model.KeyDefaultCalifornia:   standard("CAR", "local building department"),
		model.KeyDefaultMountainWest: standard("MWR", "local building department"),
		model.KeyDefaultSoutheast:    standard("SER", "local building department"),
		model.KeyDefaultNortheast:    standard("NER", "local building department"),
	}
}
