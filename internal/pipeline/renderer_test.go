package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/candorlabs/candor/internal/model"
)

func TestRenderJSON_ToFile(t *testing.T) {
	p := testPipeline(t)
	result, err := p.AnalyzeText(context.Background(), "inline", "We collect data.")
	if err != nil {
		t.Fatalf("AnalyzeText returned error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "report.json")
	if err := RenderJSON(result, path); err != nil {
		t.Fatalf("RenderJSON returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	var decoded Result
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Source != "inline" || decoded.Report == nil {
		t.Errorf("Unexpected decoded result: %+v", decoded)
	}
}

func TestRenderPolicyMarkdown(t *testing.T) {
	p := testPipeline(t)
	result, err := p.AnalyzeText(context.Background(), "example.txt", "We collect data and could share it.")
	if err != nil {
		t.Fatalf("AnalyzeText returned error: %v", err)
	}

	md := RenderPolicyMarkdown(result)

	for _, want := range []string{
		"# Privacy Policy Analysis: example.txt",
		"**Risk score:**",
		"**Privacy grade:**",
		"## Category Ranking",
		"## Matched Terms",
		"## Flagged Language",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Expected markdown to contain %q", want)
		}
	}
}

func TestRenderAuditMarkdown(t *testing.T) {
	p := testPipeline(t)
	result, err := p.AuditCookies(context.Background(), "example.com",
		"We use cookies.", "_ga=1", model.ConsentBeforeConsent)
	if err != nil {
		t.Fatalf("AuditCookies returned error: %v", err)
	}

	md := RenderAuditMarkdown(result)

	for _, want := range []string{
		"# Cookie Truthfulness Audit: example.com",
		"**Score:**",
		"## Issues",
		"## Observed Cookies",
		"| _ga | analytics |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Expected markdown to contain %q", want)
		}
	}
}

func TestWriteHighlight(t *testing.T) {
	p := testPipeline(t)
	result, err := p.AnalyzeText(context.Background(), "inline", "We sell data.")
	if err != nil {
		t.Fatalf("AnalyzeText returned error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "policy.html")
	if err := WriteHighlight(result, path); err != nil {
		t.Fatalf("WriteHighlight returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	html := string(data)

	if !strings.Contains(html, "<!DOCTYPE html>") {
		t.Error("Expected standalone HTML page")
	}
	if !strings.Contains(html, "<mark class='danger-mark'>sell</mark>") {
		t.Error("Expected highlighted term in page")
	}
}

func TestWriteHighlight_EscapesSource(t *testing.T) {
	p := testPipeline(t)
	result, err := p.AnalyzeText(context.Background(), `<script>alert("x")</script>`, "We sell data.")
	if err != nil {
		t.Fatalf("AnalyzeText returned error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "policy.html")
	if err := WriteHighlight(result, path); err != nil {
		t.Fatalf("WriteHighlight returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	html := string(data)

	if strings.Contains(html, "<script>") {
		t.Error("Expected source escaped in title and heading")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("Expected escaped source text present")
	}
}
