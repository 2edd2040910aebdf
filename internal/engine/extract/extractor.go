// internal/engine/extract/extractor.go
package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/law-makers/pricealert/pkg/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
)

// Selector finds the first element with a given tag whose class attribute
// contains a given token.
type Selector struct {
	tag     string
	class   string
	matcher cascadia.Selector
}

// NewSelector compiles a tag + class-token selector
func NewSelector(tag, class string) (*Selector, error) {
	tag = strings.TrimSpace(tag)
	class = strings.TrimSpace(class)
	if tag == "" || class == "" {
		return nil, fmt.Errorf("tag and class are required")
	}
	if strings.ContainsAny(class, " \t\n\"\\") {
		return nil, fmt.Errorf("class must be a single token, got %q", class)
	}

	// [class~=...] matches a whitespace separated token, same as a class
	// selector, but tolerates tokens that are not valid CSS identifiers.
	expr := fmt.Sprintf(`%s[class~="%s"]`, tag, class)
	sel, err := cascadia.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %s: %w", expr, err)
	}

	return &Selector{tag: tag, class: class, matcher: sel}, nil
}

// String returns the selector in CSS form
func (s *Selector) String() string {
	return s.tag + "." + s.class
}

// Parse builds a document from raw HTML. It never fails: malformed or empty
// input produces a (possibly empty) document.
func Parse(body []byte) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		log.Debug().Err(err).Msg("HTML parse failed, using empty document")
		return goquery.NewDocumentFromNode(&html.Node{Type: html.DocumentNode})
	}
	return doc
}

// First returns the first matching element in document order, or nil
func (s *Selector) First(doc *goquery.Document) *models.PriceElement {
	if doc == nil {
		return nil
	}

	match := doc.FindMatcher(s.matcher).First()
	if match.Length() == 0 {
		return nil
	}

	node := match.Get(0)
	var buf bytes.Buffer
	if err := html.Render(&buf, node); err != nil {
		log.Debug().Err(err).Msg("Failed to render matched element")
	}

	class, _ := match.Attr("class")
	el := &models.PriceElement{
		Tag:       node.Data,
		Class:     class,
		Text:      strings.TrimSpace(match.Text()),
		OuterHTML: buf.String(),
	}
	if amount, currency, ok := ParseAmount(el.Text); ok {
		el.Amount = amount
		el.Currency = currency
	}
	return el
}
