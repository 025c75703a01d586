package pipeline

import (
	"encoding/json"
	"fmt"
	"html"
	"io"
	"os"
	"strings"
)

// RenderJSON writes v as indented JSON to path, or to stdout when path
// is empty.
func RenderJSON(v any, path string) error {
	var out io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

// RenderPolicyMarkdown formats a policy analysis result as a Markdown
// report.
func RenderPolicyMarkdown(result *Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Privacy Policy Analysis: %s\n\n", result.Source)
	fmt.Fprintf(&b, "**Risk score:** %d/100 (%s risk)  \n", result.Report.RiskScore, result.Report.RiskLevel)
	fmt.Fprintf(&b, "**Privacy grade:** %s  \n", result.Grade)
	fmt.Fprintf(&b, "**Analyzed:** %s\n\n", result.AnalyzedAt.Format("2006-01-02 15:04:05 UTC"))

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- Total keyword hits: %d\n", result.Report.Summary.TotalHits)
	fmt.Fprintf(&b, "- Text word count: %d\n", result.Report.Summary.TextWordCount)
	fmt.Fprintf(&b, "- Weasel-word hits: %d (%.3f%% density)\n\n", result.Report.Summary.WeaselWordHits, result.Report.Summary.WeaselDensityPercent)

	b.WriteString("## Category Ranking\n\n")
	b.WriteString("| Category | Hits |\n|---|---|\n")
	for _, rank := range result.Report.CategoriesSorted {
		fmt.Fprintf(&b, "| %s | %d |\n", rank.Category, rank.TotalHits)
	}
	b.WriteString("\n")

	b.WriteString("## Matched Terms\n\n")
	for _, category := range result.Report.Categories {
		if category.TotalHits == 0 {
			continue
		}
		fmt.Fprintf(&b, "### %s (%d hits)\n\n", category.Name, category.TotalHits)
		for _, subgroup := range category.Subgroups {
			if len(subgroup.Hits) == 0 {
				continue
			}
			fmt.Fprintf(&b, "**%s**\n\n", subgroup.Name)
			for _, hit := range subgroup.Hits {
				fmt.Fprintf(&b, "- %q x%d\n", hit.Term, hit.Count)
			}
			b.WriteString("\n")
		}
	}

	if len(result.Flaws) > 0 {
		b.WriteString("## Flagged Language\n\n")
		b.WriteString("| Severity | Term | Count | Category |\n|---|---|---|---|\n")
		for _, flaw := range result.Flaws {
			fmt.Fprintf(&b, "| %s | %q | %d | %s |\n", flaw.Severity, flaw.Term, flaw.Count, flaw.Category)
		}
		b.WriteString("\n")
	}

	if result.LLM != nil && result.LLM.Enabled {
		fmt.Fprintf(&b, "## Summary (%s, %s)\n\n%s\n", result.LLM.Provider, result.LLM.Model, result.LLM.SummaryMD)
	}

	return b.String()
}

// RenderAuditMarkdown formats a cookie audit result as a Markdown
// report.
func RenderAuditMarkdown(result *AuditResult) string {
	var b strings.Builder
	report := result.Report

	fmt.Fprintf(&b, "# Cookie Truthfulness Audit: %s\n\n", result.Source)
	fmt.Fprintf(&b, "**Score:** %d/100 (grade %s, %s risk)  \n", report.Score, report.Grade, report.RiskLevel)
	fmt.Fprintf(&b, "**Consent state:** %s  \n", report.ConsentState)
	fmt.Fprintf(&b, "**Audited:** %s\n\n", result.AuditedAt.Format("2006-01-02 15:04:05 UTC"))

	b.WriteString("## Issues\n\n")
	if len(report.Issues) == 0 {
		b.WriteString("No issues found.\n\n")
	}
	for _, issue := range report.Issues {
		fmt.Fprintf(&b, "- **[%s] %s**: %s\n", strings.ToUpper(string(issue.Severity)), issue.Title, issue.Detail)
	}
	if len(report.Issues) > 0 {
		b.WriteString("\n")
	}

	b.WriteString("## Observed Cookies\n\n")
	if len(report.Cookies) == 0 {
		b.WriteString("No cookies observed.\n")
	} else {
		b.WriteString("| Cookie | Category |\n|---|---|\n")
		for _, cookie := range report.Cookies {
			fmt.Fprintf(&b, "| %s | %s |\n", cookie.Name, cookie.Category)
		}
	}
	b.WriteString("\n")

	if result.LLM != nil && result.LLM.Enabled {
		fmt.Fprintf(&b, "## Summary (%s, %s)\n\n%s\n", result.LLM.Provider, result.LLM.Model, result.LLM.SummaryMD)
	}

	return b.String()
}

// WriteHighlight saves the highlighted policy HTML to a file, wrapped
// in a minimal standalone page.
func WriteHighlight(result *Result, path string) error {
	var b strings.Builder
	source := html.EscapeString(result.Source)
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>Candor: %s</title>\n", source)
	b.WriteString("<style>\n")
	b.WriteString(".policy-text { white-space: pre-wrap; font-family: sans-serif; max-width: 48em; margin: 2em auto; }\n")
	b.WriteString(".danger-mark { background: #ffd2d2; padding: 0 2px; border-radius: 2px; }\n")
	b.WriteString("</style>\n</head>\n<body>\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", source)
	fmt.Fprintf(&b, "<p>Risk score %d/100, grade %s.</p>\n", result.Report.RiskScore, result.Grade)
	b.WriteString(result.Highlighted)
	b.WriteString("\n</body>\n</html>\n")

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
