package engine

import (
	"context"

	"github.com/law-makers/pricealert/pkg/models"
)

// Fetcher is the interface that page fetchers must implement
type Fetcher interface {
	// Fetch issues a single GET and returns the raw response
	Fetch(ctx context.Context, req models.FetchRequest) (*models.Response, error)

	// Name returns the name of the fetcher implementation
	Name() string
}
