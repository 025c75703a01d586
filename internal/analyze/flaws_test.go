package analyze

import (
	"testing"

	"github.com/candorlabs/candor/internal/model"
	"github.com/candorlabs/candor/internal/rules"
)

func TestExtractFlaws_SeverityRules(t *testing.T) {
	report := &model.PolicyReport{
		Categories: []model.CategoryResult{
			{Name: rules.CategoryCollection, Subgroups: []model.SubgroupResult{
				{Name: "Explicit Data", Hits: []model.MatchResult{{Term: "collect", Count: 1}}},
				{Name: rules.SubgroupHighRisk, Hits: []model.MatchResult{{Term: "SSN", Count: 1}}},
			}},
			{Name: rules.CategorySharing, Subgroups: []model.SubgroupResult{
				{Name: "The Actions", Hits: []model.MatchResult{{Term: "sell", Count: 1}}},
			}},
			{Name: rules.CategoryRights, Subgroups: []model.SubgroupResult{
				{Name: "Consent Mechanisms", Hits: []model.MatchResult{{Term: "opt-out", Count: 1}}},
			}},
			{Name: rules.CategorySecurity, Subgroups: []model.SubgroupResult{
				{Name: rules.SubgroupTimelines, Hits: []model.MatchResult{{Term: "retain", Count: 1}}},
			}},
			{Name: rules.CategoryWeasel, Subgroups: []model.SubgroupResult{
				{Name: "Vague Qualifiers", Hits: []model.MatchResult{{Term: "could", Count: 1}}},
			}},
		},
	}

	flaws := ExtractFlaws(report)

	want := map[string]model.Severity{
		"collect": model.SeverityMedium,
		"SSN":     model.SeverityHigh,
		"sell":    model.SeverityHigh,
		"opt-out": model.SeverityMedium,
		"retain":  model.SeverityLow,
		"could":   model.SeverityHigh,
	}

	if len(flaws) != len(want) {
		t.Fatalf("Expected %d flaws, got %d", len(want), len(flaws))
	}
	for _, flaw := range flaws {
		if want[flaw.Term] != flaw.Severity {
			t.Errorf("Term %q: expected severity %s, got %s", flaw.Term, want[flaw.Term], flaw.Severity)
		}
	}
}

func TestExtractFlaws_Ordering(t *testing.T) {
	report := &model.PolicyReport{
		Categories: []model.CategoryResult{
			{Name: rules.CategoryCollection, Subgroups: []model.SubgroupResult{
				{Name: "Explicit Data", Hits: []model.MatchResult{{Term: "collect", Count: 3}}},
				{Name: rules.SubgroupHighRisk, Hits: []model.MatchResult{{Term: "SSN", Count: 1}}},
			}},
			{Name: rules.CategorySharing, Subgroups: []model.SubgroupResult{
				{Name: "The Actions", Hits: []model.MatchResult{{Term: "sell", Count: 2}}},
			}},
			{Name: rules.CategorySecurity, Subgroups: []model.SubgroupResult{
				{Name: "Security Standards", Hits: []model.MatchResult{{Term: "encryption", Count: 5}}},
				{Name: rules.SubgroupTimelines, Hits: []model.MatchResult{{Term: "retain", Count: 9}}},
			}},
			{Name: rules.CategoryWeasel, Subgroups: []model.SubgroupResult{
				{Name: "Vague Qualifiers", Hits: []model.MatchResult{{Term: "could", Count: 2}}},
			}},
		},
	}

	flaws := ExtractFlaws(report)

	// High severity first by count desc then term asc ("could" ties
	// "sell" at 2 and wins alphabetically), then mediums, then lows.
	wantOrder := []string{"could", "sell", "SSN", "encryption", "collect", "retain"}

	if len(flaws) != len(wantOrder) {
		t.Fatalf("Expected %d flaws, got %d", len(wantOrder), len(flaws))
	}
	for i, term := range wantOrder {
		if flaws[i].Term != term {
			t.Errorf("Position %d: expected %q, got %q", i, term, flaws[i].Term)
		}
	}
}

func TestExtractFlaws_EmptyReport(t *testing.T) {
	flaws := ExtractFlaws(&model.PolicyReport{})

	if len(flaws) != 0 {
		t.Errorf("Expected no flaws for empty report, got %d", len(flaws))
	}
}

func TestExtractFlaws_CarriesContext(t *testing.T) {
	report := &model.PolicyReport{
		Categories: []model.CategoryResult{
			{Name: rules.CategorySharing, Subgroups: []model.SubgroupResult{
				{Name: "The Entities", Hits: []model.MatchResult{{Term: "third party", Count: 4}}},
			}},
		},
	}

	flaws := ExtractFlaws(report)
	if len(flaws) != 1 {
		t.Fatalf("Expected 1 flaw, got %d", len(flaws))
	}
	flaw := flaws[0]
	if flaw.Category != rules.CategorySharing || flaw.Subgroup != "The Entities" || flaw.Count != 4 {
		t.Errorf("Flaw lost its origin context: %+v", flaw)
	}
}
