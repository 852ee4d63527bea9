package importer

import "strings"

var spaceReplacer = strings.NewReplacer(
	"\u202f", " ", // narrow no-break space
	"\u00a0", " ", // no-break space
)

// NormalizeTimestamp maps no-break spaces to ordinary spaces, collapses
// whitespace runs to one space, and trims the ends.
func NormalizeTimestamp(s string) string {
	return strings.Join(strings.Fields(spaceReplacer.Replace(s)), " ")
}
