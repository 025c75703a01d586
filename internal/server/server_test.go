package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/candorlabs/candor/internal/model"
	"github.com/candorlabs/candor/internal/pipeline"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	config := model.DefaultConfig()
	config.Cache.Enabled = false

	p, err := pipeline.NewPipeline(config)
	if err != nil {
		t.Fatalf("NewPipeline returned error: %v", err)
	}
	return New(p)
}

func postJSON(t *testing.T, s *Server, path, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.App().Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestHealthz(t *testing.T) {
	s := testServer(t)

	req, _ := http.NewRequest(http.MethodGet, "/healthz", nil)
	resp, err := s.App().Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	s := testServer(t)

	resp := postJSON(t, s, "/api/v1/analyze", `{"policy_text": "We collect data and may share it."}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var result pipeline.Result
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if result.Report == nil || result.Report.Summary.TotalHits == 0 {
		t.Errorf("expected hits in response, got %+v", result)
	}
	if result.Grade == "" {
		t.Error("expected a privacy grade in response")
	}
}

func TestAnalyzeEndpoint_BlankText(t *testing.T) {
	s := testServer(t)

	resp := postJSON(t, s, "/api/v1/analyze", `{"policy_text": "   "}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}

func TestAuditEndpoint(t *testing.T) {
	s := testServer(t)

	resp := postJSON(t, s, "/api/v1/audit",
		`{"policy_text": "We use cookies.", "observed_cookies": "_ga=1; _fbp=2", "consent_state": "before_consent"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var result pipeline.AuditResult
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if result.Report == nil || result.Report.Score >= 100 {
		t.Errorf("expected deductions for undisclosed trackers, got %+v", result.Report)
	}
}

func TestAuditEndpoint_DefaultConsentState(t *testing.T) {
	s := testServer(t)

	resp := postJSON(t, s, "/api/v1/audit",
		`{"policy_text": "We use cookies.", "observed_cookies": "_ga=1"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var result pipeline.AuditResult
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if result.Report.ConsentState != model.ConsentBeforeConsent {
		t.Errorf("expected default consent state, got %q", result.Report.ConsentState)
	}
}

func TestAuditEndpoint_MissingCookies(t *testing.T) {
	s := testServer(t)

	resp := postJSON(t, s, "/api/v1/audit", `{"policy_text": "We use cookies."}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}
