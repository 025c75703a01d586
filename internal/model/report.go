package model

// Severity flags how urgent a finding is for display ordering
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// SeverityRank returns the sort rank for a severity (high sorts first,
// unrecognized values sort last)
func SeverityRank(s Severity) int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 2
	default:
		return 3
	}
}

// RiskLevel buckets a numeric score into a coarse label
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// MatchResult is one term's occurrence count within one subgroup scan
type MatchResult struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// SubgroupResult holds the matched terms of one subgroup, sorted by
// count descending then term ascending (case-insensitive)
type SubgroupResult struct {
	Name string        `json:"name"`
	Hits []MatchResult `json:"hits"`
}

// CategoryResult aggregates the subgroup hits of one category
type CategoryResult struct {
	Name      string           `json:"name"`
	TotalHits int              `json:"total_hits"`
	Subgroups []SubgroupResult `json:"subgroups"`
}

// CategoryRank is one row of the flat category ranking list
type CategoryRank struct {
	Category  string `json:"category"`
	TotalHits int    `json:"total_hits"`
}

// Summary holds the aggregate statistics of a policy scan
type Summary struct {
	TotalHits            int     `json:"total_hits"`
	WeaselWordHits       int     `json:"weasel_word_hits"`
	WeaselDensityPercent float64 `json:"weasel_density_percent"`
	TextWordCount        int     `json:"text_word_count"`
}

// PolicyReport is the complete output of a policy text scan.
// Categories preserves dictionary order; CategoriesSorted ranks by
// total hits descending, ties broken by category name ascending.
type PolicyReport struct {
	Summary          Summary          `json:"summary"`
	Categories       []CategoryResult `json:"categories"`
	CategoriesSorted []CategoryRank   `json:"categories_sorted"`
	RiskScore        int              `json:"risk_score"`
	RiskLevel        RiskLevel        `json:"risk_level"`
}

// Flaw is one matched term flattened for display priority
type Flaw struct {
	Category string   `json:"category"`
	Subgroup string   `json:"subgroup"`
	Term     string   `json:"term"`
	Count    int      `json:"count"`
	Severity Severity `json:"severity"`
}

// LLMSummary contains an optional LLM-generated plain-language summary.
// It never affects any score, grade, or issue.
type LLMSummary struct {
	Enabled    bool   `json:"enabled"`
	Provider   string `json:"provider,omitempty"`
	Model      string `json:"model,omitempty"`
	SummaryMD  string `json:"summary_md,omitempty"`
	TokensUsed int    `json:"tokens_used,omitempty"`
}
