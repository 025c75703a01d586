package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/candorlabs/candor/internal/cache"
	"github.com/candorlabs/candor/internal/extract"
	"github.com/candorlabs/candor/internal/model"
)

// Fetcher retrieves a policy page over HTTP, honoring robots.txt and
// caching bodies so repeat audits of the same URL stay cheap. A nil
// cache disables caching.
type Fetcher struct {
	httpClient *http.Client
	robots     *RobotsGate
	store      cache.Cache
	userAgent  string
	maxBytes   int64
}

// NewFetcher creates a fetcher from the HTTP configuration
func NewFetcher(cfg model.HTTPConfig, store cache.Cache) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		robots:    NewRobotsGate(cfg.UserAgent, cfg.Timeout),
		store:     store,
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
	}
}

// FetchText retrieves the URL and reduces HTML responses to visible
// policy text. Plain-text responses pass through untouched.
func (f *Fetcher) FetchText(ctx context.Context, rawURL string) (string, error) {
	body, err := f.fetch(ctx, rawURL)
	if err != nil {
		return "", err
	}

	content := string(body)
	if extract.LooksLikeHTML(content) {
		text, err := extract.VisibleText(content)
		if err != nil {
			return "", fmt.Errorf("extract text: %w", err)
		}
		return text, nil
	}

	return content, nil
}

func (f *Fetcher) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	key := cache.Key(rawURL)
	if f.store != nil {
		if body, found := f.store.Get(key); found {
			return body, nil
		}
	}

	if !f.robots.Allowed(ctx, rawURL) {
		return nil, fmt.Errorf("robots.txt disallows fetching %s", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/plain;q=0.9,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if f.store != nil {
		_ = f.store.Set(key, body, 0)
	}

	return body, nil
}
