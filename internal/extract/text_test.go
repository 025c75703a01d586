package extract

import (
	"strings"
	"testing"
)

func TestVisibleText_SkipsScriptsAndStyles(t *testing.T) {
	page := `<html><head><style>p { color: red }</style></head>
<body><p>We collect your data.</p><script>track()</script><noscript>enable js</noscript></body></html>`

	text, err := VisibleText(page)
	if err != nil {
		t.Fatalf("VisibleText returned error: %v", err)
	}

	if !strings.Contains(text, "We collect your data.") {
		t.Errorf("Expected visible paragraph text, got %q", text)
	}
	if strings.Contains(text, "track()") || strings.Contains(text, "color: red") || strings.Contains(text, "enable js") {
		t.Errorf("Expected script/style/noscript content skipped, got %q", text)
	}
}

func TestVisibleText_JoinsTextNodes(t *testing.T) {
	text, err := VisibleText("<p>third</p><p>party</p>")
	if err != nil {
		t.Fatalf("VisibleText returned error: %v", err)
	}

	if text != "third party" {
		t.Errorf("Expected joined text nodes, got %q", text)
	}
}

func TestLooksLikeHTML(t *testing.T) {
	if !LooksLikeHTML("<!DOCTYPE html><html><body>x</body></html>") {
		t.Error("Expected doctype document to look like HTML")
	}
	if LooksLikeHTML("We collect data. See our policy.") {
		t.Error("Expected plain text not to look like HTML")
	}
}
