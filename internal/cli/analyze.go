package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/candorlabs/candor/internal/model"
	"github.com/candorlabs/candor/internal/pipeline"
)

var (
	analyzeText string
	analyzeFile string
	analyzeURL  string

	outJSON      string
	outMD        string
	outHighlight string

	timeout   time.Duration
	userAgent string
	maxBytes  int64
	noCache   bool

	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze privacy policy text and score its transparency",
	Long: `Analyze scans privacy policy text against a fixed term dictionary:
- Counts data-collection, sharing, user-rights, security and weasel terms
- Derives a density-weighted risk score (0-100) and privacy grade
- Ranks categories by how much the policy dwells on them
- Optionally renders the policy with dangerous language highlighted

Exactly one of --text, --file or --url must be given.

Example:
  candor analyze --file privacy.txt
  candor analyze --url https://example.com/privacy --json report.json
  candor analyze --text "We may sell your data." --highlight policy.html
  candor analyze --file privacy.txt --llm --llm-provider openai`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeText, "text", "", "policy text to analyze")
	analyzeCmd.Flags().StringVar(&analyzeFile, "file", "", "path to a policy text file")
	analyzeCmd.Flags().StringVar(&analyzeURL, "url", "", "URL of a policy page to fetch")

	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (default: stdout)")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().StringVar(&outHighlight, "highlight", "", "output highlighted HTML path (optional)")

	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().StringVar(&userAgent, "ua", "Candor/0.1 (+https://github.com/candorlabs/candor)", "HTTP User-Agent")
	analyzeCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")

	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM summary generation")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	sources := 0
	for _, s := range []string{analyzeText, analyzeFile, analyzeURL} {
		if s != "" {
			sources++
		}
	}
	if sources != 1 {
		return fmt.Errorf("exactly one of --text, --file or --url is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg := buildConfig()

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	var result *pipeline.Result
	switch {
	case analyzeText != "":
		result, err = p.AnalyzeText(ctx, "inline", analyzeText)
	case analyzeFile != "":
		result, err = p.AnalyzeInput(ctx, analyzeFile)
	default:
		result, err = p.AnalyzeInput(ctx, analyzeURL)
	}
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ %d keyword hits across %d words\n", result.Report.Summary.TotalHits, result.Report.Summary.TextWordCount)
		fmt.Fprintf(os.Stderr, "✓ Risk score %d/100 (%s), grade %s\n", result.Report.RiskScore, result.Report.RiskLevel, result.Grade)
	}

	return renderAnalyzeResult(result)
}

func renderAnalyzeResult(result *pipeline.Result) error {
	if outMD != "" {
		if err := os.WriteFile(outMD, []byte(pipeline.RenderPolicyMarkdown(result)), 0o644); err != nil {
			return fmt.Errorf("write markdown: %w", err)
		}
	}
	if outHighlight != "" {
		if err := pipeline.WriteHighlight(result, outHighlight); err != nil {
			return err
		}
	}
	return pipeline.RenderJSON(result, outJSON)
}

// buildConfig merges flag values over defaults. Zero values mean the
// running command did not register the flag, so the default stands.
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()
	if timeout > 0 {
		cfg.HTTP.Timeout = timeout
	}
	if userAgent != "" {
		cfg.HTTP.UserAgent = userAgent
	}
	if maxBytes > 0 {
		cfg.HTTP.MaxBodyBytes = maxBytes
	}
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		case "ollama":
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}

	return cfg
}
