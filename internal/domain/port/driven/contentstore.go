package driven

import (
	"context"
	"errors"

	"github.com/tfccofficial/tfcc/internal/domain/model"
)

// ErrContentNotFound indicates a content section the site cannot render
// without is empty.
var ErrContentNotFound = errors.New("content not found")

// ContentStore defines the driven port for the read-only site content.
// Every List method returns its records ordered by position.
type ContentStore interface {
	ListBenchmarks(ctx context.Context) ([]model.Benchmark, error)
	ListEvents(ctx context.Context) ([]model.Event, error)
	ListShowcase(ctx context.Context) ([]model.ShowcaseImage, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
}
