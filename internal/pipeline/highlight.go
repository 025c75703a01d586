package pipeline

import (
	"html"
	"regexp"
	"sort"
	"strings"

	"github.com/candorlabs/candor/internal/model"
	"github.com/candorlabs/candor/internal/rules"
)

// HighlightDangers renders the policy text as an HTML fragment with
// every high- and medium-severity flagged term wrapped in a mark tag.
// Longer terms win overlaps because the alternation lists them first
// and Go's regexp picks the leftmost alternative that matches.
func HighlightDangers(text string, flaws []model.Flaw) string {
	var b strings.Builder
	b.WriteString(`<pre class='policy-text'>`)

	pattern := dangerPattern(flaws)
	if pattern == nil {
		b.WriteString(html.EscapeString(text))
		b.WriteString(`</pre>`)
		return b.String()
	}

	last := 0
	for _, loc := range pattern.FindAllStringIndex(text, -1) {
		b.WriteString(html.EscapeString(text[last:loc[0]]))
		b.WriteString(`<mark class='danger-mark'>`)
		b.WriteString(html.EscapeString(text[loc[0]:loc[1]]))
		b.WriteString(`</mark>`)
		last = loc[1]
	}
	b.WriteString(html.EscapeString(text[last:]))

	b.WriteString(`</pre>`)
	return b.String()
}

func dangerPattern(flaws []model.Flaw) *regexp.Regexp {
	seen := make(map[string]bool)
	var exprs []string
	for _, flaw := range flaws {
		if flaw.Severity != model.SeverityHigh && flaw.Severity != model.SeverityMedium {
			continue
		}
		key := strings.ToLower(flaw.Term)
		if seen[key] {
			continue
		}
		seen[key] = true
		exprs = append(exprs, rules.ExprForTerm(flaw.Term))
	}
	if len(exprs) == 0 {
		return nil
	}

	sort.SliceStable(exprs, func(i, j int) bool {
		return len(exprs[i]) > len(exprs[j])
	})

	return regexp.MustCompile(`(?i)(` + strings.Join(exprs, "|") + `)`)
}
