package extract

import (
	"regexp"
	"strings"

	"github.com/fwojciec/campscout"
)

// countryPattern maps a word-boundary-delimited synonym pattern to a
// canonical country name.
type countryPattern struct {
	re   *regexp.Regexp
	name string
}

// countryPatterns covers the major study-destination countries. Order is
// significant: when a page mentions several countries, the first pattern
// in this table that matches wins, regardless of where in the text each
// country appears.
var countryPatterns = []countryPattern{
	{regexp.MustCompile(`\b(united kingdom|uk|britain|england)\b`), "United Kingdom"},
	{regexp.MustCompile(`\b(united states|usa|america)\b`), "United States"},
	{regexp.MustCompile(`\bcanada\b`), "Canada"},
	{regexp.MustCompile(`\baustralia\b`), "Australia"},
	{regexp.MustCompile(`\bnew zealand\b`), "New Zealand"},
	{regexp.MustCompile(`\bfrance\b`), "France"},
	{regexp.MustCompile(`\bgermany\b`), "Germany"},
	{regexp.MustCompile(`\bspain\b`), "Spain"},
	{regexp.MustCompile(`\bitaly\b`), "Italy"},
	{regexp.MustCompile(`\bjapan\b`), "Japan"},
	{regexp.MustCompile(`\bchina\b`), "China"},
	{regexp.MustCompile(`\bsouth korea\b`), "South Korea"},
	{regexp.MustCompile(`\bireland\b`), "Ireland"},
	{regexp.MustCompile(`\bnetherlands\b`), "Netherlands"},
	{regexp.MustCompile(`\bswitzerland\b`), "Switzerland"},
	{regexp.MustCompile(`\baustria\b`), "Austria"},
	{regexp.MustCompile(`\bbelgium\b`), "Belgium"},
	{regexp.MustCompile(`\bczech republic\b`), "Czech Republic"},
	{regexp.MustCompile(`\bdenmark\b`), "Denmark"},
	{regexp.MustCompile(`\bfinland\b`), "Finland"},
	{regexp.MustCompile(`\bnorway\b`), "Norway"},
	{regexp.MustCompile(`\bsweden\b`), "Sweden"},
	{regexp.MustCompile(`\bpoland\b`), "Poland"},
	{regexp.MustCompile(`\bportugal\b`), "Portugal"},
}

// extractCountry returns the canonical name of the first table entry
// whose pattern matches anywhere in the page text, or "".
func extractCountry(doc campscout.Document) string {
	text := strings.ToLower(doc.Text())
	for _, p := range countryPatterns {
		if p.re.MatchString(text) {
			return p.name
		}
	}
	return ""
}
