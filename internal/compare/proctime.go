package compare

import (
	"regexp"
	"strconv"
	"strings"
)

// unparseableWeeks ranks jurisdictions with free-text processing times
// the parser cannot read ("varies", "call for estimate") last.
const unparseableWeeks = 999

var firstIntRe = regexp.MustCompile(`\d+`)

// parseWeeks converts a free-text processing duration to a comparable
// week count. It takes the first integer in the string and multiplies
// by 4 when the unit reads as months; anything without a digit gets the
// sentinel. "2-4 weeks" parses as 2, "1-2 months" as 4.
func parseWeeks(s string) int {
	m := firstIntRe.FindString(s)
	if m == "" {
		return unparseableWeeks
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return unparseableWeeks
	}
	if strings.Contains(strings.ToLower(s), "month") {
		return n * 4
	}
	return n
}
