package llm

import (
	"context"
	"fmt"

	"github.com/candorlabs/candor/internal/model"
)

// Summarizer dispatches to the configured provider. A nil Summarizer
// (or empty provider) means summarization is disabled.
type Summarizer struct {
	provider Provider
	config   model.LLMConfig
}

// NewSummarizer creates a summarizer for the configured provider
func NewSummarizer(config model.LLMConfig) (*Summarizer, error) {
	var provider Provider
	var err error

	switch config.Provider {
	case "":
		return nil, nil
	case "openai":
		provider, err = NewOpenAIProvider(config)
	case "ollama":
		provider, err = NewOllamaProvider(config)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", config.Provider)
	}
	if err != nil {
		return nil, err
	}

	return &Summarizer{provider: provider, config: config}, nil
}

// SummarizePolicy generates a summary of a policy report
func (s *Summarizer) SummarizePolicy(ctx context.Context, report *model.PolicyReport, flaws []model.Flaw) (*model.LLMSummary, error) {
	return s.summarize(ctx, BuildPolicyPrompt(report, flaws))
}

// SummarizeAudit generates a summary of a cookie audit report
func (s *Summarizer) SummarizeAudit(ctx context.Context, report *model.CookieAuditReport) (*model.LLMSummary, error) {
	return s.summarize(ctx, BuildAuditPrompt(report))
}

func (s *Summarizer) summarize(ctx context.Context, prompt string) (*model.LLMSummary, error) {
	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		Prompt:    prompt,
		Model:     s.config.Model,
		MaxTokens: s.config.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &model.LLMSummary{
		Enabled:    true,
		Provider:   s.provider.Name(),
		Model:      resp.Model,
		SummaryMD:  resp.Summary,
		TokensUsed: resp.TokensUsed,
	}, nil
}
