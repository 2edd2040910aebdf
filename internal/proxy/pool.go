package proxy

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/net/http/httpproxy"
)

// Pool rotates through a list of proxies, skipping ones that failed recently
type Pool struct {
	proxies  []string
	index    int
	mu       sync.Mutex
	failed   map[string]time.Time
	cooldown time.Duration
	now      func() time.Time
}

// NewPool creates a Pool. A failed proxy is skipped for cooldown.
func NewPool(proxies []string, cooldown time.Duration) *Pool {
	if cooldown <= 0 {
		cooldown = 5 * time.Minute
	}
	return &Pool{
		proxies:  proxies,
		failed:   make(map[string]time.Time),
		cooldown: cooldown,
		now:      time.Now,
	}
}

// Len returns the number of configured proxies
func (p *Pool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.proxies)
}

// GetNext returns the next healthy proxy, or "" if the pool is empty.
// When every proxy is cooling down the next one in order is returned anyway.
func (p *Pool) GetNext() string {
	if p == nil {
		return ""
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.proxies) == 0 {
		return ""
	}

	for i := 0; i < len(p.proxies); i++ {
		candidate := p.proxies[p.index]
		p.index = (p.index + 1) % len(p.proxies)

		failTime, ok := p.failed[candidate]
		if !ok {
			return candidate
		}
		if p.now().Sub(failTime) >= p.cooldown {
			delete(p.failed, candidate)
			return candidate
		}
	}

	fallback := p.proxies[p.index]
	p.index = (p.index + 1) % len(p.proxies)
	return fallback
}

// MarkFailed marks a proxy as failed so it will be skipped for a while
func (p *Pool) MarkFailed(proxy string) {
	if p == nil || proxy == "" {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failed[proxy] = p.now()
}

// MarkHealthy clears the failure status of a proxy
func (p *Pool) MarkHealthy(proxy string) {
	if p == nil || proxy == "" {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.failed, proxy)
}

type ctxKey struct{}

// WithProxy records the proxy chosen for a request
func WithProxy(ctx context.Context, proxy string) context.Context {
	return context.WithValue(ctx, ctxKey{}, proxy)
}

// FromContext returns the proxy recorded by WithProxy
func FromContext(ctx context.Context) string {
	s, _ := ctx.Value(ctxKey{}).(string)
	return s
}

// TransportProxy is an http.Transport.Proxy func that dials through the
// proxy stored in the request context. Without one it falls back to
// HTTP_PROXY, HTTPS_PROXY and NO_PROXY, read on every call.
func TransportProxy(req *http.Request) (*url.URL, error) {
	if p := FromContext(req.Context()); p != "" {
		return url.Parse(p)
	}
	return httpproxy.FromEnvironment().ProxyFunc()(req.URL)
}
