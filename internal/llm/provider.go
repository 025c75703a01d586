package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/candorlabs/candor/internal/model"
)

// Provider generates a plain-language summary of an audit. The summary
// is presentation-only and never feeds back into scoring.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates a summary for the request
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)
}

// SummarizeRequest carries the report content to summarize
type SummarizeRequest struct {
	// Prompt is the fully built prompt text
	Prompt string

	// Model overrides the configured model when set
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse is the provider's output
type SummarizeResponse struct {
	Summary    string
	Model      string
	TokensUsed int
}

// BuildPolicyPrompt constructs the summarization prompt for a policy
// report and its ranked flaws.
func BuildPolicyPrompt(report *model.PolicyReport, flaws []model.Flaw) string {
	var b strings.Builder

	b.WriteString("You are summarizing a privacy-policy language audit for a non-lawyer.\n")
	b.WriteString("Describe what the policy emphasizes and where it is vague. Do not invent findings beyond the data below.\n\n")
	fmt.Fprintf(&b, "Risk score: %d/100 (%s)\n", report.RiskScore, report.RiskLevel)
	fmt.Fprintf(&b, "Total keyword hits: %d across %d words\n", report.Summary.TotalHits, report.Summary.TextWordCount)
	fmt.Fprintf(&b, "Weasel-word density: %.3f%%\n\n", report.Summary.WeaselDensityPercent)

	b.WriteString("Category ranking:\n")
	for _, rank := range report.CategoriesSorted {
		fmt.Fprintf(&b, "- %s: %d hits\n", rank.Category, rank.TotalHits)
	}

	b.WriteString("\nTop flagged terms:\n")
	for i, flaw := range flaws {
		if i >= 10 {
			fmt.Fprintf(&b, "... and %d more\n", len(flaws)-10)
			break
		}
		fmt.Fprintf(&b, "- [%s] %q x%d (%s / %s)\n", flaw.Severity, flaw.Term, flaw.Count, flaw.Category, flaw.Subgroup)
	}

	b.WriteString("\nProvide a 3-4 sentence summary of the policy's transparency, focused on the flagged language.")
	return b.String()
}

// BuildAuditPrompt constructs the summarization prompt for a cookie
// truthfulness audit.
func BuildAuditPrompt(report *model.CookieAuditReport) string {
	var b strings.Builder

	b.WriteString("You are summarizing a cookie truthfulness audit for a non-lawyer.\n")
	b.WriteString("Describe how well the policy's claims match observed cookie behavior. Do not invent findings beyond the data below.\n\n")
	fmt.Fprintf(&b, "Score: %d/100, grade %s (%s risk)\n", report.Score, report.Grade, report.RiskLevel)
	fmt.Fprintf(&b, "Consent state: %s\n", report.ConsentState)

	b.WriteString("\nCookie counts:\n")
	for _, classification := range report.Cookies {
		fmt.Fprintf(&b, "- %s: %s\n", classification.Name, classification.Category)
	}

	b.WriteString("\nIssues:\n")
	if len(report.Issues) == 0 {
		b.WriteString("- none\n")
	}
	for _, issue := range report.Issues {
		fmt.Fprintf(&b, "- [%s] %s: %s\n", issue.Severity, issue.Title, issue.Detail)
	}

	b.WriteString("\nProvide a 3-4 sentence summary of whether the policy is truthful about its cookies.")
	return b.String()
}
