package formatting

import "strings"

// minTruncateLen leaves room for at least one character plus "...".
const minTruncateLen = 4

// truncateDescription collapses a description to a single line and
// truncates it to maxLen runes, appending "..." when cut. Splitting on
// whitespace handles newlines and tabs in one pass; rune slicing keeps
// multi-byte characters intact.
func truncateDescription(s string, maxLen int) string {
	if maxLen < minTruncateLen {
		maxLen = minTruncateLen
	}
	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}
