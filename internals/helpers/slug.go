package helper

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reHyphen   = regexp.MustCompile(`-+`)

	// đ has no canonical decomposition, so NFD leaves it alone.
	strokeLetters = strings.NewReplacer("đ", "d", "Đ", "d")
)

// Slugify turns free text into [a-z0-9-]: diacritics stripped, runs of "-" compressed,
// ends trimmed, cut to maxLen (100 when <= 0). Empty results become fallback.
func Slugify(s string, maxLen int, fallback string) string {
	if maxLen <= 0 {
		maxLen = 100
	}
	s = strokeLetters.Replace(strings.ToLower(strings.TrimSpace(s)))

	var buf []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		buf = append(buf, r)
	}
	s = string(buf)

	s = reNonAlnum.ReplaceAllString(s, "-")
	s = reHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if utf8.RuneCountInString(s) > maxLen {
		s = strings.Trim(string([]rune(s)[:maxLen]), "-")
	}
	if s == "" {
		return fallback
	}
	return s
}
