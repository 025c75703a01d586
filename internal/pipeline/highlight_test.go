package pipeline

import (
	"strings"
	"testing"

	"github.com/candorlabs/candor/internal/model"
)

func TestHighlightDangers_MarksTerms(t *testing.T) {
	text := "We may sell your data."
	flaws := []model.Flaw{
		{Term: "sell", Count: 1, Severity: model.SeverityHigh},
	}

	out := HighlightDangers(text, flaws)

	if !strings.Contains(out, "<mark class='danger-mark'>sell</mark>") {
		t.Errorf("Expected sell marked, got %q", out)
	}
	if !strings.HasPrefix(out, "<pre class='policy-text'>") || !strings.HasSuffix(out, "</pre>") {
		t.Errorf("Expected pre wrapper, got %q", out)
	}
}

func TestHighlightDangers_CaseInsensitive(t *testing.T) {
	out := HighlightDangers("We SELL data.", []model.Flaw{
		{Term: "sell", Severity: model.SeverityHigh},
	})

	if !strings.Contains(out, "<mark class='danger-mark'>SELL</mark>") {
		t.Errorf("Expected original casing preserved inside mark, got %q", out)
	}
}

func TestHighlightDangers_SkipsLowSeverity(t *testing.T) {
	out := HighlightDangers("We retain data.", []model.Flaw{
		{Term: "retain", Severity: model.SeverityLow},
	})

	if strings.Contains(out, "<mark") {
		t.Errorf("Expected no marks for low-severity flaws, got %q", out)
	}
}

func TestHighlightDangers_EscapesHTML(t *testing.T) {
	out := HighlightDangers("<b>We sell data</b>", []model.Flaw{
		{Term: "sell", Severity: model.SeverityHigh},
	})

	if strings.Contains(out, "<b>") {
		t.Errorf("Expected input HTML escaped, got %q", out)
	}
	if !strings.Contains(out, "&lt;b&gt;") {
		t.Errorf("Expected escaped angle brackets, got %q", out)
	}
	if !strings.Contains(out, "<mark class='danger-mark'>sell</mark>") {
		t.Errorf("Expected mark preserved, got %q", out)
	}
}

func TestHighlightDangers_LongerTermWins(t *testing.T) {
	out := HighlightDangers("We sell your data to third parties.", []model.Flaw{
		{Term: "sell", Severity: model.SeverityHigh},
		{Term: "sell your data", Severity: model.SeverityHigh},
	})

	if !strings.Contains(out, "<mark class='danger-mark'>sell your data</mark>") {
		t.Errorf("Expected longest term to win the overlap, got %q", out)
	}
}

func TestHighlightDangers_NoFlaws(t *testing.T) {
	out := HighlightDangers("Nothing suspicious here.", nil)

	if out != "<pre class='policy-text'>Nothing suspicious here.</pre>" {
		t.Errorf("Expected escaped passthrough, got %q", out)
	}
}
