package model

// Consent states observed when cookies were captured. Only the first
// two trigger the non-essential-cookie penalty; anything else is echoed
// back untouched.
const (
	ConsentBeforeConsent = "before_consent"
	ConsentAfterReject   = "after_reject"
	ConsentAfterAccept   = "after_accept"
)

// CookieCategory classifies what a cookie is for
type CookieCategory string

const (
	CookieAnalytics   CookieCategory = "analytics"
	CookieAdvertising CookieCategory = "advertising"
	CookieSession     CookieCategory = "session"
	CookieFunctional  CookieCategory = "functional"
	CookieUnknown     CookieCategory = "unknown"
)

// CookieClassification maps one observed cookie name to a category
type CookieClassification struct {
	Name     string         `json:"name"`
	Category CookieCategory `json:"category"`
}

// Issue is one policy-level finding from the cookie audit
type Issue struct {
	Severity Severity `json:"severity"`
	Title    string   `json:"title"`
	Detail   string   `json:"detail"`
}

// CookieAuditReport is the complete output of a cookie truthfulness
// audit. Issues are sorted by severity rank, stable within equal ranks.
type CookieAuditReport struct {
	Score          int                    `json:"score"`
	Grade          string                 `json:"grade"`
	RiskLevel      RiskLevel              `json:"risk_level"`
	Issues         []Issue                `json:"issues"`
	Cookies        []CookieClassification `json:"cookies"`
	CategoryCounts map[CookieCategory]int `json:"category_counts"`
	ConsentState   string                 `json:"consent_state"`
}
