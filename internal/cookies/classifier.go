package cookies

import (
	"strings"

	"github.com/candorlabs/candor/internal/model"
	"github.com/candorlabs/candor/internal/rules"
)

// Classify maps a cookie name to its tracking category. Classes are
// tested in fixed table order so a name matching patterns in two
// categories always resolves to the earlier one.
func Classify(name string) model.CookieCategory {
	lower := strings.ToLower(name)

	for _, class := range rules.TrackerPatterns {
		for _, pattern := range class.Patterns {
			if pattern.MatchString(lower) {
				return class.Category
			}
		}
	}

	return model.CookieUnknown
}
