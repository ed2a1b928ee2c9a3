package document

import (
	"strconv"
	"strings"
)

// WrapText splits text into lines of at most limit characters using greedy
// word wrap: break at the last space before the limit, hard-split when a
// single word is longer than the limit. The remainder is always emitted, so
// the result is never empty.
func WrapText(text string, limit int) []string {
	if limit <= 0 {
		return []string{text}
	}

	var lines []string
	runes := []rune(text)
	for len(runes) > limit {
		split := -1
		for i := limit - 1; i >= 0; i-- {
			if runes[i] == ' ' {
				split = i
				break
			}
		}
		if split == -1 {
			lines = append(lines, string(runes[:limit]))
			runes = runes[limit:]
		} else {
			lines = append(lines, string(runes[:split]))
			runes = runes[split+1:]
		}
	}
	return append(lines, string(runes))
}

// FormatThousands renders n with a space between each three-digit group,
// e.g. 122990 -> "122 990".
func FormatThousands(n int) string {
	s := strconv.Itoa(n)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)
	return sign + strings.Join(groups, " ")
}
