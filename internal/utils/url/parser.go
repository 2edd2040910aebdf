package urlutil

import (
	"fmt"
	"net/url"
	"regexp"
)

// ValidateURL checks that urlStr is an absolute http(s) URL with a host
func ValidateURL(urlStr string) error {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid URL scheme: must be http or https, got %q", parsed.Scheme)
	}

	if parsed.Host == "" {
		return fmt.Errorf("invalid URL: missing host")
	}

	return nil
}

// ValidateProxyURL checks that a proxy address is usable by http.Transport
func ValidateProxyURL(proxyStr string) error {
	parsed, err := url.Parse(proxyStr)
	if err != nil {
		return fmt.Errorf("invalid proxy: %w", err)
	}

	switch parsed.Scheme {
	case "http", "https", "socks5", "socks5h":
	default:
		return fmt.Errorf("invalid proxy scheme: must be http, https or socks5, got %q", parsed.Scheme)
	}

	if parsed.Host == "" {
		return fmt.Errorf("invalid proxy: missing host")
	}

	return nil
}

var asinPattern = regexp.MustCompile(`/(?:dp|gp/product|gp/aw/d|exec/obidos/ASIN)/([A-Z0-9]{10})(?:[/?]|$)`)

// ASIN returns the Amazon product identifier in urlStr, or "" if the URL
// does not point at a product page
func ASIN(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	m := asinPattern.FindStringSubmatch(u.EscapedPath())
	if m == nil {
		return ""
	}
	return m[1]
}
