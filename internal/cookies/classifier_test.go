package cookies

import (
	"testing"

	"github.com/candorlabs/candor/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want model.CookieCategory
	}{
		{"_ga", model.CookieAnalytics},
		{"_gid", model.CookieAnalytics},
		{"mixpanel_super", model.CookieAnalytics},
		{"doubleclick_id", model.CookieAdvertising},
		{"_fbp", model.CookieAdvertising},
		{"criteo_uid", model.CookieAdvertising},
		{"session_id", model.CookieSession},
		{"csrf_token", model.CookieSession},
		{"lang_pref", model.CookieFunctional},
		{"theme", model.CookieFunctional},
		{"xyz123", model.CookieUnknown},
		{"", model.CookieUnknown},
	}

	for _, tt := range tests {
		if got := Classify(tt.name); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	if got := Classify("SESSION_ID"); got != model.CookieSession {
		t.Errorf("Classify(SESSION_ID) = %s, want session", got)
	}
}

func TestClassify_FixedOrderPrecedence(t *testing.T) {
	// Matches both the analytics and session tables; analytics comes
	// first in the fixed order and must win.
	if got := Classify("_ga_session"); got != model.CookieAnalytics {
		t.Errorf("Classify(_ga_session) = %s, want analytics", got)
	}

	// Matches both advertising and functional; advertising is earlier.
	if got := Classify("banner_ad_lang"); got != model.CookieAdvertising {
		t.Errorf("Classify(banner_ad_lang) = %s, want advertising", got)
	}
}
