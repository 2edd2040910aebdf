package models

import "time"

// FetchRequest describes a single page fetch
type FetchRequest struct {
	URL     string
	Headers map[string]string
	Timeout time.Duration
}

// Response holds the raw result of a fetch. It is consumed once and discarded.
type Response struct {
	URL          string            `json:"url"`
	StatusCode   int               `json:"status_code"`
	Body         []byte            `json:"-"`
	Headers      map[string]string `json:"headers,omitempty"`
	FetchedAt    time.Time         `json:"fetched_at"`
	ResponseTime int64             `json:"response_time_ms"`
}

// PriceElement is the first element matching the price selector
type PriceElement struct {
	Tag       string  `json:"tag"`
	Class     string  `json:"class"`
	Text      string  `json:"text"`
	OuterHTML string  `json:"outer_html"`
	Amount    float64 `json:"amount,omitempty"`
	Currency  string  `json:"currency,omitempty"`
}

// HasAmount reports whether the element text was parsed into a price
func (p *PriceElement) HasAmount() bool {
	return p != nil && p.Amount > 0
}

// Outcome classifies a price check
type Outcome string

const (
	OutcomePriced         Outcome = "priced"
	OutcomeNotFound       Outcome = "not_found"
	OutcomeHTTPError      Outcome = "http_error"
	OutcomeTransportError Outcome = "transport_error"
)

// Result is what a single price check produced
type Result struct {
	URL        string        `json:"url"`
	Outcome    Outcome       `json:"outcome"`
	StatusCode int           `json:"status_code,omitempty"`
	Element    *PriceElement `json:"element,omitempty"`
	Err        error         `json:"-"`
}
