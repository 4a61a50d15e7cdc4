package extract

import (
	"strings"

	"github.com/fwojciec/campscout"
)

// categoryRule maps trigger phrases to a category.
type categoryRule struct {
	terms    []string
	category string
}

// categoryRules is evaluated in order; the first rule with a matching
// term wins. A page mentioning both "summer camp" and "online" is
// classified summer.
var categoryRules = []categoryRule{
	{[]string{"summer camp", "summer program", "summer school"}, campscout.CategorySummer},
	{[]string{"winter camp", "winter program", "winter school"}, campscout.CategoryWinter},
	{[]string{"online", "virtual", "remote", "distance learning"}, campscout.CategoryOnline},
}

// extractCategory classifies the program from the page text and title.
// Always returns a category; CategoryStudy is the default.
func extractCategory(doc campscout.Document) string {
	full := strings.ToLower(doc.Text())
	if el, ok := doc.Find("title"); ok {
		full += " " + strings.ToLower(el.Text())
	}

	for _, rule := range categoryRules {
		for _, term := range rule.terms {
			if strings.Contains(full, term) {
				return rule.category
			}
		}
	}
	return campscout.CategoryStudy
}
