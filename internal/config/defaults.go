package config

import "time"

// Default constants for application configuration
const (
	DefaultLogLevel  = "error"
	DefaultJSONLog   = false
	DefaultURL       = "https://www.amazon.com/dp/B075CYMYK6?psc=1&ref_=cm_sw_r_cp_ud_ct_FM9M699VKHTT47YD50Q6"
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"
	DefaultTag       = "span"
	DefaultClass     = "a-offscreen"

	// Zero means the request may block until the remote side answers
	DefaultHTTPTimeout = 0 * time.Second

	DefaultProxyCooldown = 5 * time.Minute
)
