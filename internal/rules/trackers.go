package rules

import (
	"regexp"

	"github.com/candorlabs/candor/internal/model"
)

// TrackerClass pairs a cookie category with the compiled name fragments
// that identify it. Classification tests classes in declaration order,
// so a name matching two classes always resolves to the earlier one.
type TrackerClass struct {
	Category model.CookieCategory
	Patterns []*regexp.Regexp
}

// TrackerPatterns is the fixed cookie classification table. Fragments
// are searched, not fully matched, against the lower-cased cookie name.
var TrackerPatterns = []TrackerClass{
	{model.CookieAnalytics, compileAll(`_ga`, `_gid`, `_gat`, `analytics`, `mixpanel`, `amplitude`, `segment`)},
	{model.CookieAdvertising, compileAll(`_fbp`, `doubleclick`, `ad[sx]?`, `ttclid`, `gcl_au`, `criteo`)},
	{model.CookieSession, compileAll(`session`, `sess`, `csrf`, `auth`, `token`)},
	{model.CookieFunctional, compileAll(`pref`, `lang`, `theme`, `remember`)},
}

// DisclosureClass pairs a cookie category with the literal phrases
// whose presence in policy text counts as disclosure of that purpose.
type DisclosureClass struct {
	Category model.CookieCategory
	Phrases  []string
}

// DisclosureTerms is the fixed disclosure phrase table. Phrases are
// matched as substrings of the lower-cased policy text.
var DisclosureTerms = []DisclosureClass{
	{model.CookieAnalytics, []string{"analytics", "measurement", "google analytics", "mixpanel", "amplitude", "segment"}},
	{model.CookieAdvertising, []string{"advertising", "ad network", "targeted ads", "remarketing", "doubleclick", "facebook pixel"}},
	{model.CookieSession, []string{"strictly necessary", "essential cookies", "authentication", "session cookies"}},
	{model.CookieFunctional, []string{"preferences", "functional cookies", "site settings", "language settings"}},
}

func compileAll(exprs ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		compiled[i] = regexp.MustCompile(expr)
	}
	return compiled
}
