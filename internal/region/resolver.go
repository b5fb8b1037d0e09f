// Package region maps free-form "City, ST" strings to known jurisdiction
// keys or regional fallback buckets.
package region

import (
	"regexp"
	"strings"

	"github.com/permitdesk/permit-cli/internal/model"
)

// stateCodeRe matches a trailing two-letter state code: ", CA", ", tx".
var stateCodeRe = regexp.MustCompile(`,\s*([A-Za-z]{2})\s*$`)

// regionByState partitions the US states into the six fee regions.
// Pacific-Northwest states alias to Mountain-West. Alaska and Hawaii fit
// no regional schedule and fall through to the generic bucket.
var regionByState = map[string]string{
	// Midwest
	"OH": model.KeyDefaultMidwest, "IN": model.KeyDefaultMidwest,
	"IL": model.KeyDefaultMidwest, "MI": model.KeyDefaultMidwest,
	"WI": model.KeyDefaultMidwest, "MN": model.KeyDefaultMidwest,
	"IA": model.KeyDefaultMidwest, "MO": model.KeyDefaultMidwest,
	"ND": model.KeyDefaultMidwest, "SD": model.KeyDefaultMidwest,
	"NE": model.KeyDefaultMidwest, "KS": model.KeyDefaultMidwest,

	// Texas and California price like nowhere else and get their own buckets.
	"TX": model.KeyDefaultTexas,
	"CA": model.KeyDefaultCalifornia,

	// Mountain-West, including the Pacific-Northwest alias.
	"MT": model.KeyDefaultMountainWest, "ID": model.KeyDefaultMountainWest,
	"WY": model.KeyDefaultMountainWest, "NV": model.KeyDefaultMountainWest,
	"UT": model.KeyDefaultMountainWest, "CO": model.KeyDefaultMountainWest,
	"AZ": model.KeyDefaultMountainWest, "NM": model.KeyDefaultMountainWest,
	"WA": model.KeyDefaultMountainWest, "OR": model.KeyDefaultMountainWest,

	// Southeast
	"FL": model.KeyDefaultSoutheast, "GA": model.KeyDefaultSoutheast,
	"SC": model.KeyDefaultSoutheast, "NC": model.KeyDefaultSoutheast,
	"VA": model.KeyDefaultSoutheast, "WV": model.KeyDefaultSoutheast,
	"KY": model.KeyDefaultSoutheast, "TN": model.KeyDefaultSoutheast,
	"AL": model.KeyDefaultSoutheast, "MS": model.KeyDefaultSoutheast,
	"AR": model.KeyDefaultSoutheast, "LA": model.KeyDefaultSoutheast,
	"OK": model.KeyDefaultSoutheast,

	// Northeast
	"ME": model.KeyDefaultNortheast, "NH": model.KeyDefaultNortheast,
	"VT": model.KeyDefaultNortheast, "MA": model.KeyDefaultNortheast,
	"RI": model.KeyDefaultNortheast, "CT": model.KeyDefaultNortheast,
	"NY": model.KeyDefaultNortheast, "NJ": model.KeyDefaultNortheast,
	"PA": model.KeyDefaultNortheast, "DE": model.KeyDefaultNortheast,
	"MD": model.KeyDefaultNortheast, "DC": model.KeyDefaultNortheast,
}

// Resolver resolves jurisdiction strings against a set of known keys.
type Resolver struct {
	known map[string]bool
}

// New creates a Resolver over the given set of known jurisdiction keys.
func New(known []string) *Resolver {
	set := make(map[string]bool, len(known))
	for _, k := range known {
		set[k] = true
	}
	return &Resolver{known: set}
}

// Resolve maps a jurisdiction string to a fee-table key. Exact matches
// pass through unchanged (case-sensitive, matching the table keys);
// everything else resolves through the state-code partition to a
// regional bucket, or to the generic default when no state code is
// present or the state has no regional schedule. Resolve is total: it
// never fails.
func (r *Resolver) Resolve(jurisdiction string) string {
	if r.known[jurisdiction] {
		return jurisdiction
	}

	m := stateCodeRe.FindStringSubmatch(jurisdiction)
	if m == nil {
		return model.KeyDefault
	}

	state := strings.ToUpper(m[1])
	if key, ok := regionByState[state]; ok {
		return key
	}
	return model.KeyDefault
}
