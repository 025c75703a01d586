package cookies

import (
	"sort"
	"strings"

	"github.com/candorlabs/candor/internal/model"
)

// Grader cross-references observed cookies against policy disclosure
// claims and consent timing. Stateless; safe for concurrent use.
type Grader struct{}

// NewGrader creates a new grader
func NewGrader() *Grader {
	return &Grader{}
}

// Grade audits whether the policy's claims match actual cookie
// behavior. Deductions are additive from 100; the order below only
// fixes the issue list, not the score. Missing or empty inputs degrade
// to zero counts rather than failing.
func (g *Grader) Grade(policyText, observedCookieText, consentState string) *model.CookieAuditReport {
	names := ParseNames(observedCookieText)

	classifications := make([]model.CookieClassification, 0, len(names))
	counts := map[model.CookieCategory]int{
		model.CookieAnalytics:   0,
		model.CookieAdvertising: 0,
		model.CookieSession:     0,
		model.CookieFunctional:  0,
		model.CookieUnknown:     0,
	}
	for _, name := range names {
		category := Classify(name)
		classifications = append(classifications, model.CookieClassification{Name: name, Category: category})
		counts[category]++
	}

	disclosed := Disclosures(policyText)

	var issues []model.Issue
	score := 100

	nonEssential := counts[model.CookieAnalytics] + counts[model.CookieAdvertising]

	if (consentState == model.ConsentBeforeConsent || consentState == model.ConsentAfterReject) && nonEssential > 0 {
		deduction := nonEssential * 12
		if deduction > 45 {
			deduction = 45
		}
		score -= deduction
		issues = append(issues, model.Issue{
			Severity: model.SeverityHigh,
			Title:    "Non-essential cookies loaded before consent",
			Detail:   "Analytics/advertising cookies were observed when they should usually be blocked.",
		})
	}

	if counts[model.CookieAnalytics] > 0 && !disclosed[model.CookieAnalytics] {
		score -= 20
		issues = append(issues, model.Issue{
			Severity: model.SeverityHigh,
			Title:    "Undisclosed analytics tracking",
			Detail:   "Analytics-like cookies were observed but analytics disclosure language is weak or missing.",
		})
	}

	if counts[model.CookieAdvertising] > 0 && !disclosed[model.CookieAdvertising] {
		score -= 25
		issues = append(issues, model.Issue{
			Severity: model.SeverityHigh,
			Title:    "Undisclosed advertising tracking",
			Detail:   "Ad/remarketing-like cookies were observed but advertising disclosure language is weak or missing.",
		})
	}

	if counts[model.CookieUnknown] > 3 {
		score -= 10
		issues = append(issues, model.Issue{
			Severity: model.SeverityMedium,
			Title:    "Many unknown cookies",
			Detail:   "Several cookies could not be classified; manually verify vendor and purpose.",
		})
	}

	lowerPolicy := strings.ToLower(policyText)
	if !strings.Contains(lowerPolicy, "opt-out") && !strings.Contains(lowerPolicy, "do not sell") {
		score -= 8
		issues = append(issues, model.Issue{
			Severity: model.SeverityMedium,
			Title:    "Weak opt-out language",
			Detail:   "Policy text does not clearly mention opt-out or Do Not Sell controls.",
		})
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	grade, riskLevel := gradeForScore(score)

	sort.SliceStable(issues, func(i, j int) bool {
		return model.SeverityRank(issues[i].Severity) < model.SeverityRank(issues[j].Severity)
	})

	return &model.CookieAuditReport{
		Score:          score,
		Grade:          grade,
		RiskLevel:      riskLevel,
		Issues:         issues,
		Cookies:        classifications,
		CategoryCounts: counts,
		ConsentState:   consentState,
	}
}

func gradeForScore(score int) (string, model.RiskLevel) {
	switch {
	case score >= 85:
		return "A", model.RiskLow
	case score >= 70:
		return "B", model.RiskLow
	case score >= 55:
		return "C", model.RiskMedium
	case score >= 40:
		return "D", model.RiskHigh
	default:
		return "F", model.RiskHigh
	}
}
