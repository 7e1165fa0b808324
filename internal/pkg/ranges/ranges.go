// Package ranges provides closed-interval matching over range strings.
//
// A range is either a single point "N" or an inclusive interval "N-M".
// Mapping tables use lists of ranges to classify game skill IDs into
// coarser categories, because the authoritative groupings are contiguous
// ID blocks rather than per-ID tables.
package ranges

import (
	"strconv"
	"strings"
)

// Matches reports whether value falls within any of the given ranges,
// bounds inclusive. Malformed ranges never match. Overlap between ranges
// is the table author's responsibility; no normalization is performed.
func Matches(rangeList []string, value int) bool {
	for _, r := range rangeList {
		lo, hi, ok := parse(r)
		if ok && value >= lo && value <= hi {
			return true
		}
	}
	return false
}

func parse(r string) (lo, hi int, ok bool) {
	min, max, dashed := strings.Cut(r, "-")

	lo, err := strconv.Atoi(min)
	if err != nil {
		return 0, 0, false
	}
	if !dashed {
		return lo, lo, true
	}

	hi, err = strconv.Atoi(max)
	if err != nil {
		return 0, 0, false
	}
	return lo, hi, true
}
