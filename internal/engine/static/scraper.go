// internal/engine/static/scraper.go
package static

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/law-makers/pricealert/internal/config"
	"github.com/law-makers/pricealert/internal/engine"
	"github.com/law-makers/pricealert/internal/proxy"
	"github.com/law-makers/pricealert/internal/utils/headers"
	"github.com/law-makers/pricealert/pkg/models"
	"github.com/rs/zerolog/log"
)

// Scraper fetches pages with a plain HTTP GET
type Scraper struct {
	proxies   *proxy.Pool
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// NewClient builds the HTTP client used for fetches. A zero timeout means none.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               proxy.TransportProxy,
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// New creates a Scraper with dependency injection. pool may be nil.
func New(pool *proxy.Pool, client *http.Client, timeout time.Duration, ua string) *Scraper {
	if client == nil {
		client = NewClient(timeout)
	}
	if ua == "" {
		ua = config.DefaultUserAgent
	}
	return &Scraper{
		proxies:   pool,
		client:    client,
		timeout:   timeout,
		userAgent: ua,
	}
}

// Name returns the name of this scraper
func (s *Scraper) Name() string {
	return "StaticScraper"
}

// DefaultHeaders returns the header mapping sent with every request: only the
// browser User-Agent. Anything else comes from the caller.
func (s *Scraper) DefaultHeaders() map[string]string {
	return map[string]string{
		"User-Agent": s.userAgent,
	}
}

// Fetch issues one GET for fr.URL and returns the status and raw body.
// A non-200 status is not an error here; transport failures are.
func (s *Scraper) Fetch(ctx context.Context, fr models.FetchRequest) (*models.Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()

	log.Debug().
		Str("url", fr.URL).
		Str("scraper", s.Name()).
		Msg("Starting fetch")

	timeout := s.timeout
	if fr.Timeout > 0 {
		timeout = fr.Timeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fr.URL, nil)
	if err != nil {
		return nil, engine.NewEngineError(engine.ErrCodeValidation, "failed to create request", err)
	}

	hdrs := headers.Merge(s.DefaultHeaders(), fr.Headers)
	if hdrs["User-Agent"] == "" {
		hdrs["User-Agent"] = s.userAgent
	}
	for key, value := range hdrs {
		req.Header.Set(key, value)
	}

	chosen := s.proxies.GetNext()
	if chosen != "" {
		req = req.WithContext(proxy.WithProxy(req.Context(), chosen))
		log.Debug().Str("proxy", chosen).Msg("Routing through proxy")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.proxies.MarkFailed(chosen)
		e := engine.NewEngineError(engine.ErrCodeNetworkError, "failed to fetch URL", err).
			WithDetail("url", fr.URL)
		if chosen != "" {
			e.WithDetail("proxy", chosen)
		}
		return nil, e
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		s.proxies.MarkFailed(chosen)
		return nil, engine.NewEngineError(engine.ErrCodeNetworkError, "failed to read response body", err).
			WithDetail("url", fr.URL)
	}
	s.proxies.MarkHealthy(chosen)

	responseTime := time.Since(start).Milliseconds()

	out := &models.Response{
		URL:          fr.URL,
		StatusCode:   resp.StatusCode,
		Body:         body,
		Headers:      make(map[string]string, len(resp.Header)),
		FetchedAt:    time.Now(),
		ResponseTime: responseTime,
	}
	for key, values := range resp.Header {
		if len(values) > 0 {
			out.Headers[key] = values[0]
		}
	}

	log.Debug().
		Str("url", fr.URL).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Int64("response_time_ms", responseTime).
		Msg("Fetch completed")

	return out, nil
}

// String describes the scraper for logs
func (s *Scraper) String() string {
	return fmt.Sprintf("%s(timeout=%s, proxies=%d)", s.Name(), s.timeout, s.proxies.Len())
}

var _ engine.Fetcher = (*Scraper)(nil)
