// Package check runs a single price check: fetch the product page, route on
// the status code, and report the price element on stdout.
package check

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/PuerkitoBio/goquery"
	"github.com/law-makers/pricealert/internal/engine"
	"github.com/law-makers/pricealert/internal/engine/extract"
	"github.com/law-makers/pricealert/internal/reqctx"
	"github.com/law-makers/pricealert/pkg/models"
	"github.com/rs/zerolog/log"
)

// NotFoundMarker is printed in place of the element when nothing matched
const NotFoundMarker = "None"

// Finder locates the price element in a parsed document
type Finder interface {
	First(doc *goquery.Document) *models.PriceElement
}

// Options configures a Checker
type Options struct {
	URL     string
	Headers map[string]string
	// PrintBody writes the raw HTML to the output before the element
	PrintBody bool
	Out       io.Writer
}

// Checker performs the fetch-and-extract sequence
type Checker struct {
	fetcher engine.Fetcher
	finder  Finder
	opts    Options
}

// New creates a Checker. A nil Out writes to stdout.
func New(fetcher engine.Fetcher, finder Finder, opts Options) *Checker {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &Checker{
		fetcher: fetcher,
		finder:  finder,
		opts:    opts,
	}
}

// Run fetches the page once and writes the outcome.
//
// A non-200 status prints "Error: <code>" and is not an error. A transport
// failure prints nothing and is returned as an error.
func (c *Checker) Run(ctx context.Context) (*models.Result, error) {
	ctx = reqctx.Start(ctx, c.opts.URL)
	rc := reqctx.From(ctx)
	logger := log.With().Str("request_id", rc.ID).Str("asin", rc.ASIN).Str("url", c.opts.URL).Logger()

	result := &models.Result{URL: c.opts.URL}

	resp, err := c.fetcher.Fetch(ctx, models.FetchRequest{
		URL:     c.opts.URL,
		Headers: c.opts.Headers,
	})
	if err != nil {
		result.Outcome = models.OutcomeTransportError
		result.Err = reqctx.WrapError(ctx, err)
		logger.Error().Err(err).Str("outcome", string(result.Outcome)).Msg("Price check failed")
		return result, result.Err
	}
	result.StatusCode = resp.StatusCode

	if resp.StatusCode != http.StatusOK {
		result.Outcome = models.OutcomeHTTPError
		result.Err = engine.NewEngineError(engine.ErrCodeHTTPStatus, http.StatusText(resp.StatusCode), nil).
			WithDetail("status", resp.StatusCode)
		logger.Warn().Int("status", resp.StatusCode).Msg("Unexpected status code")
		if _, err := fmt.Fprintln(c.opts.Out, "Error:", resp.StatusCode); err != nil {
			return result, fmt.Errorf("failed to write output: %w", err)
		}
		return result, nil
	}

	doc := extract.Parse(resp.Body)
	result.Element = c.finder.First(doc)
	if result.Element != nil {
		result.Outcome = models.OutcomePriced
	} else {
		result.Outcome = models.OutcomeNotFound
	}

	if err := c.write(resp.Body, result.Element); err != nil {
		return result, fmt.Errorf("failed to write output: %w", err)
	}

	ev := logger.Info().
		Str("outcome", string(result.Outcome)).
		Int64("response_time_ms", resp.ResponseTime).
		Dur("elapsed", rc.Elapsed())
	if result.Element.HasAmount() {
		ev = ev.Float64("amount", result.Element.Amount).Str("currency", result.Element.Currency)
	}
	ev.Msg("Price check completed")

	return result, nil
}

func (c *Checker) write(body []byte, el *models.PriceElement) error {
	if c.opts.PrintBody {
		if _, err := fmt.Fprintln(c.opts.Out, string(body)); err != nil {
			return err
		}
	}
	line := NotFoundMarker
	if el != nil {
		line = el.OuterHTML
	}
	_, err := fmt.Fprintln(c.opts.Out, line)
	return err
}
