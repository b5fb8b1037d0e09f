// Package feedb owns the curated fee baseline, the scrape-history
// overlay, and the TTL-cached merged snapshot served to the pricing
// engine.
package feedb

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/permitdesk/permit-cli/internal/model"
)

// Tables bundles the static baseline: jurisdiction fee profiles and
// quality records keyed by jurisdiction, plus the trade-keyed labor and
// markup tables shared across all jurisdictions.
type Tables struct {
	Profiles map[string]model.JurisdictionProfile `yaml:"profiles"`
	Quality  map[string]model.DataQualityRecord   `yaml:"quality"`
	Labor    map[model.Trade]model.LaborProfile   `yaml:"labor"`
	Markup   map[model.Trade]model.MarkupProfile  `yaml:"markup"`
}

// Keys returns all jurisdiction keys in sorted order.
func (t Tables) Keys() []string {
	keys := make([]string, 0, len(t.Profiles))
	for k := range t.Profiles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CityKeys returns the non-fallback jurisdiction keys in sorted order.
func (t Tables) CityKeys() []string {
	var keys []string
	for k := range t.Profiles {
		if !strings.HasPrefix(k, model.KeyDefault) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// CloneProfiles returns a deep copy of the profile map for overlay
// merging. The baseline itself is never handed out mutable.
func (t Tables) CloneProfiles() map[string]model.JurisdictionProfile {
	out := make(map[string]model.JurisdictionProfile, len(t.Profiles))
	for k, p := range t.Profiles {
		out[k] = p.Clone()
	}
	return out
}

// laborTotalTolerance bounds the drift allowed between a labor profile's
// carried total and the sum of its components.
const laborTotalTolerance = 0.1

// Validate checks cross-table consistency: every profile has a quality
// record and all five fee categories, fallback buckets are estimated,
// valuation rates are fractional, and labor totals match their
// components. The known inverted-bounds entries are exempt from the
// min<=max check when annotated in Notes.
func (t Tables) Validate() error {
	var errs []string

	for key, p := range t.Profiles {
		q, ok := t.Quality[key]
		if !ok {
			errs = append(errs, fmt.Sprintf("%s: missing quality record", key))
		} else if strings.HasPrefix(key, model.KeyDefault) && !q.Estimated() {
			errs = append(errs, fmt.Sprintf("%s: fallback bucket must be estimated", key))
		}

		for _, cat := range model.AllFeeCategories {
			fp, ok := p.Fees[cat]
			if !ok {
				errs = append(errs, fmt.Sprintf("%s/%s: missing fee parameters", key, cat))
				continue
			}
			if fp.ValuationRate != nil && (*fp.ValuationRate < 0 || *fp.ValuationRate >= 1) {
				errs = append(errs, fmt.Sprintf("%s/%s: valuation rate %v out of range", key, cat, *fp.ValuationRate))
			}
			if fp.MinFee > fp.MaxFee && fp.Notes == "" {
				errs = append(errs, fmt.Sprintf("%s/%s: min fee %v exceeds max fee %v", key, cat, fp.MinFee, fp.MaxFee))
			}
		}
	}

	for _, trade := range model.AllTrades {
		lp, ok := t.Labor[trade]
		if !ok {
			errs = append(errs, fmt.Sprintf("labor: missing profile for %s", trade))
		} else if math.Abs(lp.Total-lp.ComponentSum()) > laborTotalTolerance {
			errs = append(errs, fmt.Sprintf("labor %s: total %v != component sum %v", trade, lp.Total, lp.ComponentSum()))
		}

		mp, ok := t.Markup[trade]
		if !ok {
			errs = append(errs, fmt.Sprintf("markup: missing profile for %s", trade))
			continue
		}
		if mp.PermitFeeMarkup <= 0 || mp.PermitFeeMarkup >= 1 {
			errs = append(errs, fmt.Sprintf("markup %s: permit fee markup %v out of range", trade, mp.PermitFeeMarkup))
		}
		if mp.LaborRate <= 0 || mp.LaborRate >= 500 {
			errs = append(errs, fmt.Sprintf("markup %s: labor rate %v out of range", trade, mp.LaborRate))
		}
	}

	if len(errs) > 0 {
		return eris.Errorf("feedb: invalid tables: %s", strings.Join(errs, "; "))
	}
	return nil
}

// LoadTables returns the baseline tables, applying per-key overrides
// from a YAML file when path is non-empty. Override entries replace the
// default entry for the same key wholesale; new keys extend the table.
func LoadTables(path string) (Tables, error) {
	tables := DefaultTables()
	if path == "" {
		return tables, tables.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, eris.Wrapf(err, "feedb: read tables %s", path)
	}

	var override Tables
	if err := yaml.Unmarshal(data, &override); err != nil {
		return Tables{}, eris.Wrapf(err, "feedb: parse tables %s", path)
	}

	for k, p := range override.Profiles {
		tables.Profiles[k] = p
	}
	for k, q := range override.Quality {
		tables.Quality[k] = q
	}
	for trade, lp := range override.Labor {
		tables.Labor[trade] = lp
	}
	for trade, mp := range override.Markup {
		tables.Markup[trade] = mp
	}

	return tables, tables.Validate()
}
