package rules

import (
	"regexp"
	"strings"

	gocache "github.com/patrickmn/go-cache"
)

// letterHyphen identifies terms made only of letters and hyphens. Those
// get word-boundary anchors so "sell" does not match inside "reseller";
// terms with digits or punctuation are matched as plain substrings.
var letterHyphen = regexp.MustCompile(`^[A-Za-z-]+$`)

// patternCache holds compiled per-term patterns for the lifetime of the
// process. Terms come from the fixed dictionary, so the cache is
// bounded and entries never expire.
var patternCache = gocache.New(gocache.NoExpiration, 0)

// ExprForTerm builds the regular expression source for a dictionary
// term: metacharacters are escaped, literal spaces match any whitespace
// run (so terms match across line wraps), commas tolerate surrounding
// whitespace, and letters-and-hyphens-only terms are anchored on word
// boundaries.
func ExprForTerm(term string) string {
	expr := regexp.QuoteMeta(term)
	expr = strings.ReplaceAll(expr, " ", `\s+`)
	expr = strings.ReplaceAll(expr, ",", `\s*,\s*`)
	if letterHyphen.MatchString(term) {
		expr = `\b` + expr + `\b`
	}
	return expr
}

// PatternForTerm returns the compiled case-insensitive matcher for a
// term, compiling at most once per term.
func PatternForTerm(term string) *regexp.Regexp {
	if cached, found := patternCache.Get(term); found {
		return cached.(*regexp.Regexp)
	}

	pattern := regexp.MustCompile(`(?i)` + ExprForTerm(term))
	patternCache.Set(term, pattern, gocache.NoExpiration)
	return pattern
}
