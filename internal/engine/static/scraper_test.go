package static

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/law-makers/pricealert/internal/config"
	"github.com/law-makers/pricealert/internal/engine"
	"github.com/law-makers/pricealert/internal/proxy"
	"github.com/law-makers/pricealert/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScraper(pool *proxy.Pool) *Scraper {
	return New(pool, nil, 5*time.Second, "TestScraper/1.0")
}

func TestScraper_Fetch_BasicHTML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`<html><body><span class="a-offscreen">$19.99</span></body></html>`))
	}))
	defer server.Close()

	resp, err := newTestScraper(nil).Fetch(context.Background(), models.FetchRequest{URL: server.URL})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(resp.Body), "$19.99")
	assert.Equal(t, "text/html", resp.Headers["Content-Type"])
	assert.Equal(t, server.URL, resp.URL)
}

func TestScraper_Fetch_NonOKIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("robot check"))
	}))
	defer server.Close()

	resp, err := newTestScraper(nil).Fetch(context.Background(), models.FetchRequest{URL: server.URL})
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestScraper_Fetch_UserAgentAlwaysSent(t *testing.T) {
	var seen []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("User-Agent"))
	}))
	defer server.Close()

	s := newTestScraper(nil)
	requests := []models.FetchRequest{
		{URL: server.URL},
		{URL: server.URL, Headers: map[string]string{"X-Custom-Header": "TestValue"}},
		{URL: server.URL, Headers: map[string]string{"user-agent": ""}},
		{URL: server.URL, Headers: map[string]string{"User-Agent": "Override/1.0"}},
	}
	for _, fr := range requests {
		_, err := s.Fetch(context.Background(), fr)
		require.NoError(t, err)
	}

	require.Len(t, seen, len(requests))
	for i, ua := range seen {
		assert.NotEmpty(t, ua, "request %d had no User-Agent", i)
	}
	assert.Equal(t, "TestScraper/1.0", seen[0])
	assert.Equal(t, "TestScraper/1.0", seen[2])
	assert.Equal(t, "Override/1.0", seen[3])
}

func TestScraper_DefaultUserAgent(t *testing.T) {
	s := New(nil, nil, 0, "")
	assert.Equal(t, config.DefaultUserAgent, s.DefaultHeaders()["User-Agent"])
}

func TestScraper_Fetch_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	resp, err := newTestScraper(nil).Fetch(context.Background(), models.FetchRequest{URL: url})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, engine.IsNetworkError(err))
}

func TestScraper_Fetch_InvalidURL(t *testing.T) {
	_, err := newTestScraper(nil).Fetch(context.Background(), models.FetchRequest{URL: "http://[::1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrInvalidURL)
}

func TestScraper_Fetch_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer server.Close()

	_, err := newTestScraper(nil).Fetch(context.Background(), models.FetchRequest{
		URL:     server.URL,
		Timeout: 50 * time.Millisecond,
	})
	require.Error(t, err)
	assert.True(t, engine.IsNetworkError(err))
}

func TestScraper_Fetch_ThroughProxy(t *testing.T) {
	var proxied bool
	proxyServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A forward proxy receives the absolute target URL
		proxied = r.URL.Host == "product.test"
		w.Write([]byte("<html></html>"))
	}))
	defer proxyServer.Close()

	pool := proxy.NewPool([]string{proxyServer.URL}, time.Minute)
	resp, err := newTestScraper(pool).Fetch(context.Background(), models.FetchRequest{URL: "http://product.test/dp/X"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, proxied)
}

func TestScraper_Fetch_EnvironmentProxy(t *testing.T) {
	var proxied bool
	proxyServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		proxied = r.URL.Host == "product.test"
		w.Write([]byte("<html></html>"))
	}))
	defer proxyServer.Close()

	t.Setenv("HTTP_PROXY", proxyServer.URL)
	t.Setenv("NO_PROXY", "")
	t.Setenv("no_proxy", "")

	resp, err := newTestScraper(nil).Fetch(context.Background(), models.FetchRequest{URL: "http://product.test/dp/X"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, proxied)
}

func TestScraper_Fetch_OnlyUserAgentByDefault(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	}))
	defer server.Close()

	_, err := newTestScraper(nil).Fetch(context.Background(), models.FetchRequest{URL: server.URL})
	require.NoError(t, err)

	assert.Equal(t, "TestScraper/1.0", got.Get("User-Agent"))
	assert.Empty(t, got.Get("Accept"))
	assert.Empty(t, got.Get("Accept-Language"))
	assert.Equal(t, map[string]string{"User-Agent": "TestScraper/1.0"}, newTestScraper(nil).DefaultHeaders())
}

func TestScraper_Fetch_FailedProxyIsSkipped(t *testing.T) {
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := dead.URL
	dead.Close()

	live := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer live.Close()

	pool := proxy.NewPool([]string{deadURL, live.URL}, time.Minute)
	s := newTestScraper(pool)

	_, err := s.Fetch(context.Background(), models.FetchRequest{URL: "http://product.test/"})
	require.Error(t, err)

	// the dead proxy is cooling down, so the next two picks are the live one
	assert.Equal(t, live.URL, pool.GetNext())
	assert.Equal(t, live.URL, pool.GetNext())
}

func TestScraper_Name(t *testing.T) {
	if newTestScraper(nil).Name() != "StaticScraper" {
		t.Errorf("Expected name 'StaticScraper'")
	}
}
