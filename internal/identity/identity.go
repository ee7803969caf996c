package identity

import (
	"regexp"
	"strings"
)

// apostrophes unifies the curly and backtick glyphs that show up in county
// spellings (Murang’a, Murang`a) to a plain ASCII apostrophe.
var apostrophes = strings.NewReplacer("’", "'", "‘", "'", "`", "'")

// NormalizeCounty lower-cases, unifies apostrophe glyphs, collapses runs of
// whitespace to one space, and trims. Idempotent: two county strings that
// differ only by case, apostrophe glyph, or whitespace normalize identically.
func NormalizeCounty(name string) string {
	s := strings.ToLower(name)
	s = apostrophes.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

var (
	underscoreSuffix = regexp.MustCompile(`_([0-9]+)$`)
	spaceSuffix      = regexp.MustCompile(` ([0-9]+)$`)
	firstDigits      = regexp.MustCompile(`[0-9]+`)
)

// NumericSuffix extracts the numeric application number from an identifier.
// The two data sources encode the same number with different separators and
// prefixes ("Applicant_158" vs "Baringo_158"); the digits are the only stable
// invariant between them. Tried in order: digits after a trailing underscore,
// digits after a trailing space, then the first digit run anywhere. Returns
// the identifier unchanged when it contains no digits.
func NumericSuffix(id string) string {
	if m := underscoreSuffix.FindStringSubmatch(id); m != nil {
		return m[1]
	}
	if m := spaceSuffix.FindStringSubmatch(id); m != nil {
		return m[1]
	}
	if m := firstDigits.FindString(id); m != "" {
		return m
	}
	return id
}

// TailAlnum returns the last n alphanumeric characters of id, lower-cased.
// Empty when id has no alphanumeric characters.
func TailAlnum(id string, n int) string {
	runes := make([]rune, 0, len(id))
	for _, r := range strings.ToLower(id) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			runes = append(runes, r)
		}
	}
	if len(runes) == 0 {
		return ""
	}
	if len(runes) > n {
		runes = runes[len(runes)-n:]
	}
	return string(runes)
}

// PayloadFileName derives the county payload filename: the normalized county
// with apostrophes stripped, plus the .json extension.
func PayloadFileName(county string) string {
	s := strings.ReplaceAll(NormalizeCounty(county), "'", "")
	return s + ".json"
}
