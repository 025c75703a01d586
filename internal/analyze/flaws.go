package analyze

import (
	"sort"
	"strings"

	"github.com/candorlabs/candor/internal/model"
	"github.com/candorlabs/candor/internal/rules"
)

// ExtractFlaws flattens every matched term of a policy report into a
// severity-tagged flaw record and sorts for display priority: severity
// rank ascending, then count descending, then term ascending
// (case-insensitive). High and medium flaws drive text highlighting.
func ExtractFlaws(report *model.PolicyReport) []model.Flaw {
	var flaws []model.Flaw

	for _, category := range report.Categories {
		for _, subgroup := range category.Subgroups {
			for _, hit := range subgroup.Hits {
				flaws = append(flaws, model.Flaw{
					Category: category.Name,
					Subgroup: subgroup.Name,
					Term:     hit.Term,
					Count:    hit.Count,
					Severity: flawSeverity(category.Name, subgroup.Name),
				})
			}
		}
	}

	sort.SliceStable(flaws, func(i, j int) bool {
		ri, rj := model.SeverityRank(flaws[i].Severity), model.SeverityRank(flaws[j].Severity)
		if ri != rj {
			return ri < rj
		}
		if flaws[i].Count != flaws[j].Count {
			return flaws[i].Count > flaws[j].Count
		}
		return strings.ToLower(flaws[i].Term) < strings.ToLower(flaws[j].Term)
	})

	return flaws
}

// flawSeverity applies the fixed precedence: weasel words and sharing
// are always high, high-risk identifiers are high, retention timelines
// are low, everything else defaults to medium.
func flawSeverity(category, subgroup string) model.Severity {
	switch {
	case category == rules.CategoryWeasel:
		return model.SeverityHigh
	case category == rules.CategorySharing:
		return model.SeverityHigh
	case category == rules.CategoryCollection && subgroup == rules.SubgroupHighRisk:
		return model.SeverityHigh
	case category == rules.CategorySecurity && subgroup == rules.SubgroupTimelines:
		return model.SeverityLow
	default:
		return model.SeverityMedium
	}
}
