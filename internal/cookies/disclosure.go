package cookies

import (
	"strings"

	"github.com/candorlabs/candor/internal/model"
	"github.com/candorlabs/candor/internal/rules"
)

// Disclosures reports, per cookie category, whether the policy text
// contains any of that category's disclosure phrases as a literal
// substring. Categories are independent; several may be disclosed or
// undisclosed at once.
func Disclosures(policyText string) map[model.CookieCategory]bool {
	text := strings.ToLower(policyText)
	disclosed := make(map[model.CookieCategory]bool, len(rules.DisclosureTerms))

	for _, class := range rules.DisclosureTerms {
		found := false
		for _, phrase := range class.Phrases {
			if strings.Contains(text, phrase) {
				found = true
				break
			}
		}
		disclosed[class.Category] = found
	}

	return disclosed
}
