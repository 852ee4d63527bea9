package importer

import (
	"math"
	"strconv"
	"strings"
)

// CoerceDuration converts a raw duration cell to a number. Empty,
// non-numeric, NaN and infinite values are rejected. Prefixed integer
// literals (0x, 0o, 0b) are accepted; digit separators are not.
func CoerceDuration(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.Contains(s, "_") {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		n, intErr := parsePrefixedInt(s)
		if intErr != nil {
			return 0, false
		}
		v = float64(n)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func parsePrefixedInt(s string) (int64, error) {
	lower := strings.ToLower(s)
	if !strings.HasPrefix(lower, "0x") && !strings.HasPrefix(lower, "0o") && !strings.HasPrefix(lower, "0b") {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(s, 0, 64)
}
