// Package reqctx tags each price check with an identifier that carries the
// product it is about, so log lines and errors can be traced back to a page.
package reqctx

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	urlutil "github.com/law-makers/pricealert/internal/utils/url"
)

type key struct{}

// Check describes one price check in flight
type Check struct {
	ID        string
	ASIN      string
	URL       string
	StartTime time.Time
}

// Start attaches a new Check for target to ctx. The ID is "<ASIN>-<suffix>"
// for product URLs and a bare random suffix otherwise.
func Start(ctx context.Context, target string) context.Context {
	asin := urlutil.ASIN(target)
	id := randomSuffix()
	if asin != "" {
		id = asin + "-" + id
	}
	return context.WithValue(ctx, key{}, &Check{
		ID:        id,
		ASIN:      asin,
		URL:       target,
		StartTime: time.Now(),
	})
}

// From returns the Check attached to ctx, or a placeholder when none is
func From(ctx context.Context) *Check {
	if c, ok := ctx.Value(key{}).(*Check); ok {
		return c
	}
	return &Check{ID: "unknown", StartTime: time.Now()}
}

// Elapsed returns the time since the check started
func (c *Check) Elapsed() time.Duration {
	return time.Since(c.StartTime)
}

func randomSuffix() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%08x", uint32(time.Now().UnixNano()))
	}
	return hex.EncodeToString(b)
}

// Error ties a failure to the check that produced it
type Error struct {
	CheckID string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %v", e.CheckID, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WrapError wraps err with the ID of the check in ctx
func WrapError(ctx context.Context, err error) error {
	return &Error{CheckID: From(ctx).ID, Err: err}
}
