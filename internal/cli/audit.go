package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/candorlabs/candor/internal/model"
	"github.com/candorlabs/candor/internal/pipeline"
)

var (
	auditText string
	auditFile string
	auditURL  string

	cookiesArg   string
	cookiesFile  string
	consentState string
)

// auditCmd represents the audit command
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit whether a policy's cookie claims match observed cookies",
	Long: `Audit cross-references the cookies a site actually sets against what
its privacy policy discloses:
- Classifies observed cookies (analytics, advertising, session, functional)
- Checks the policy for disclosure language per tracker category
- Penalizes non-essential cookies loaded before consent or after reject
- Produces a truthfulness score (0-100), letter grade and issue list

The policy comes from --text, --file or --url; observed cookies from
--cookies or --cookies-file (names or name=value pairs separated by
newlines, commas or semicolons, e.g. a document.cookie dump).

Example:
  candor audit --file privacy.txt --cookies "_ga=1; _fbp=2"
  candor audit --url https://example.com/privacy --cookies-file cookies.txt --consent after_reject`,
	RunE: runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)

	auditCmd.Flags().StringVar(&auditText, "text", "", "policy text to audit against")
	auditCmd.Flags().StringVar(&auditFile, "file", "", "path to a policy text file")
	auditCmd.Flags().StringVar(&auditURL, "url", "", "URL of a policy page to fetch")

	auditCmd.Flags().StringVar(&cookiesArg, "cookies", "", "observed cookie names or name=value pairs")
	auditCmd.Flags().StringVar(&cookiesFile, "cookies-file", "", "path to a file of observed cookies")
	auditCmd.Flags().StringVar(&consentState, "consent", model.ConsentBeforeConsent,
		"consent state when cookies were observed (before_consent, after_reject, after_accept)")

	auditCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (default: stdout)")
	auditCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	auditCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall audit timeout")
	auditCmd.Flags().StringVar(&userAgent, "ua", "Candor/0.1 (+https://github.com/candorlabs/candor)", "HTTP User-Agent")
	auditCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	auditCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")

	auditCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM summary generation")
	auditCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	auditCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runAudit(cmd *cobra.Command, args []string) error {
	sources := 0
	for _, s := range []string{auditText, auditFile, auditURL} {
		if s != "" {
			sources++
		}
	}
	if sources != 1 {
		return fmt.Errorf("exactly one of --text, --file or --url is required")
	}
	if (cookiesArg == "") == (cookiesFile == "") {
		return fmt.Errorf("exactly one of --cookies or --cookies-file is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg := buildConfig()

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	source := "inline"
	policyText := auditText
	if policyText == "" {
		input := auditFile
		if input == "" {
			input = auditURL
		}
		source = input
		policyText, err = p.ResolveText(ctx, input)
		if err != nil {
			return err
		}
	}

	observed := cookiesArg
	if cookiesFile != "" {
		data, err := os.ReadFile(cookiesFile)
		if err != nil {
			return fmt.Errorf("read %s: %w", cookiesFile, err)
		}
		observed = string(data)
	}

	result, err := p.AuditCookies(ctx, source, policyText, observed, strings.TrimSpace(consentState))
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ %d cookies classified\n", len(result.Report.Cookies))
		fmt.Fprintf(os.Stderr, "✓ Score %d/100, grade %s (%s risk)\n", result.Report.Score, result.Report.Grade, result.Report.RiskLevel)
	}

	if outMD != "" {
		if err := os.WriteFile(outMD, []byte(pipeline.RenderAuditMarkdown(result)), 0o644); err != nil {
			return fmt.Errorf("write markdown: %w", err)
		}
	}
	return pipeline.RenderJSON(result, outJSON)
}
