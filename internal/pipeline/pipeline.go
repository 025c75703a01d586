package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/candorlabs/candor/internal/analyze"
	"github.com/candorlabs/candor/internal/cache"
	"github.com/candorlabs/candor/internal/cookies"
	"github.com/candorlabs/candor/internal/fetch"
	"github.com/candorlabs/candor/internal/llm"
	"github.com/candorlabs/candor/internal/model"
)

// Pipeline wires the analyzer, cookie grader, fetcher and optional
// summarizer into the operations the CLI and server expose.
type Pipeline struct {
	analyzer   *analyze.Analyzer
	grader     *cookies.Grader
	fetcher    *fetch.Fetcher
	summarizer *llm.Summarizer
	config     *model.Config
}

// Result is the full outcome of a policy analysis
type Result struct {
	Source      string              `json:"source"`
	AnalyzedAt  time.Time           `json:"analyzed_at"`
	Report      *model.PolicyReport `json:"report"`
	Flaws       []model.Flaw        `json:"flaws"`
	Grade       string              `json:"grade"`
	Highlighted string              `json:"highlighted,omitempty"`
	LLM         *model.LLMSummary   `json:"llm,omitempty"`
}

// AuditResult is the full outcome of a cookie truthfulness audit
type AuditResult struct {
	Source    string                   `json:"source"`
	AuditedAt time.Time                `json:"audited_at"`
	Report    *model.CookieAuditReport `json:"report"`
	LLM       *model.LLMSummary        `json:"llm,omitempty"`
}

// NewPipeline builds a pipeline from configuration. The fetch cache and
// LLM summarizer are only constructed when enabled.
func NewPipeline(config *model.Config) (*Pipeline, error) {
	var store cache.Cache
	if config.Cache.Enabled {
		store = cache.NewLayeredCache(config.Cache.MemoryTTL, config.Cache.Dir, config.Cache.DiskTTL)
	}

	summarizer, err := llm.NewSummarizer(config.LLM)
	if err != nil {
		return nil, fmt.Errorf("configure LLM: %w", err)
	}

	return &Pipeline{
		analyzer:   analyze.NewAnalyzer(),
		grader:     cookies.NewGrader(),
		fetcher:    fetch.NewFetcher(config.HTTP, store),
		summarizer: summarizer,
		config:     config,
	}, nil
}

// AnalyzeText runs the full policy analysis over raw text
func (p *Pipeline) AnalyzeText(ctx context.Context, source, text string) (*Result, error) {
	report := p.analyzer.Analyze(text)
	flaws := analyze.ExtractFlaws(report)

	result := &Result{
		Source:      source,
		AnalyzedAt:  time.Now().UTC(),
		Report:      report,
		Flaws:       flaws,
		Grade:       analyze.PrivacyGrade(report.RiskScore),
		Highlighted: HighlightDangers(text, flaws),
	}

	if p.summarizer != nil {
		summary, err := p.summarizer.SummarizePolicy(ctx, report, flaws)
		if err != nil {
			return nil, fmt.Errorf("summarize: %w", err)
		}
		result.LLM = summary
	}

	return result, nil
}

// AnalyzeInput resolves an input to policy text and analyzes it. An
// http(s) URL is fetched; anything else is read as a file path.
func (p *Pipeline) AnalyzeInput(ctx context.Context, input string) (*Result, error) {
	text, err := p.resolveText(ctx, input)
	if err != nil {
		return nil, err
	}
	return p.AnalyzeText(ctx, input, text)
}

// AuditCookies runs the cookie truthfulness audit
func (p *Pipeline) AuditCookies(ctx context.Context, source, policyText, observedCookieText, consentState string) (*AuditResult, error) {
	report := p.grader.Grade(policyText, observedCookieText, consentState)

	result := &AuditResult{
		Source:    source,
		AuditedAt: time.Now().UTC(),
		Report:    report,
	}

	if p.summarizer != nil {
		summary, err := p.summarizer.SummarizeAudit(ctx, report)
		if err != nil {
			return nil, fmt.Errorf("summarize: %w", err)
		}
		result.LLM = summary
	}

	return result, nil
}

// ResolveText loads policy text from a URL or file path
func (p *Pipeline) ResolveText(ctx context.Context, input string) (string, error) {
	return p.resolveText(ctx, input)
}

func (p *Pipeline) resolveText(ctx context.Context, input string) (string, error) {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		text, err := p.fetcher.FetchText(ctx, input)
		if err != nil {
			return "", fmt.Errorf("fetch %s: %w", input, err)
		}
		return text, nil
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", input, err)
	}
	return string(data), nil
}
