package analyze

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/candorlabs/candor/internal/model"
	"github.com/candorlabs/candor/internal/rules"
)

// Analyzer scans policy text against the fixed term dictionary and
// derives a density-weighted risk score. It holds no state; any number
// of analyses may run concurrently.
type Analyzer struct{}

// NewAnalyzer creates a new analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

var wordPattern = regexp.MustCompile(`\w+`)

// Analyze counts case-insensitive occurrences of every dictionary term
// in the text and builds the complete policy report.
func (a *Analyzer) Analyze(text string) *model.PolicyReport {
	totalHits := 0
	weaselHits := 0
	categoryTotals := make(map[string]int, len(rules.Dictionary))
	categories := make([]model.CategoryResult, 0, len(rules.Dictionary))

	for _, category := range rules.Dictionary {
		categoryTotal := 0
		subgroups := make([]model.SubgroupResult, 0, len(category.Subgroups))

		for _, subgroup := range category.Subgroups {
			var hits []model.MatchResult
			for _, term := range subgroup.Terms {
				count := len(rules.PatternForTerm(term).FindAllStringIndex(text, -1))
				if count > 0 {
					hits = append(hits, model.MatchResult{Term: term, Count: count})
					categoryTotal += count
					totalHits += count
					if category.Name == rules.CategoryWeasel {
						weaselHits += count
					}
				}
			}

			sort.SliceStable(hits, func(i, j int) bool {
				if hits[i].Count != hits[j].Count {
					return hits[i].Count > hits[j].Count
				}
				return strings.ToLower(hits[i].Term) < strings.ToLower(hits[j].Term)
			})
			subgroups = append(subgroups, model.SubgroupResult{Name: subgroup.Name, Hits: hits})
		}

		categories = append(categories, model.CategoryResult{
			Name:      category.Name,
			TotalHits: categoryTotal,
			Subgroups: subgroups,
		})
		categoryTotals[category.Name] = categoryTotal
	}

	// Floor at 1 so density is defined for empty text.
	wordCount := len(wordPattern.FindAllString(text, -1))
	if wordCount < 1 {
		wordCount = 1
	}
	weaselDensity := float64(weaselHits) / float64(wordCount) * 100

	// Four capped contributions summing to at most 100.
	riskScore := 0
	riskScore += capAt(30, categoryTotals[rules.CategorySharing]*2)
	riskScore += capAt(25, categoryTotals[rules.CategoryCollection])
	riskScore += capAt(20, categoryTotals[rules.CategorySecurity])
	riskScore += capAt(25, int(weaselDensity*20))

	riskLevel := model.RiskLow
	switch {
	case riskScore >= 70:
		riskLevel = model.RiskHigh
	case riskScore >= 40:
		riskLevel = model.RiskMedium
	}

	ranking := make([]model.CategoryRank, 0, len(categories))
	for _, category := range categories {
		ranking = append(ranking, model.CategoryRank{Category: category.Name, TotalHits: category.TotalHits})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].TotalHits != ranking[j].TotalHits {
			return ranking[i].TotalHits > ranking[j].TotalHits
		}
		return ranking[i].Category < ranking[j].Category
	})

	return &model.PolicyReport{
		Summary: model.Summary{
			TotalHits:            totalHits,
			WeaselWordHits:       weaselHits,
			WeaselDensityPercent: math.Round(weaselDensity*1000) / 1000,
			TextWordCount:        wordCount,
		},
		Categories:       categories,
		CategoriesSorted: ranking,
		RiskScore:        riskScore,
		RiskLevel:        riskLevel,
	}
}

// PrivacyGrade maps an analyzer risk score to a letter grade. The scale
// inverts because a higher risk score means a worse policy.
func PrivacyGrade(riskScore int) string {
	switch {
	case riskScore >= 70:
		return "F"
	case riskScore >= 55:
		return "D"
	case riskScore >= 40:
		return "C"
	case riskScore >= 25:
		return "B"
	default:
		return "A"
	}
}

func capAt(limit, value int) int {
	if value > limit {
		return limit
	}
	return value
}
