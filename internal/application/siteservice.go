package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tfccofficial/tfcc/internal/domain/model"
	"github.com/tfccofficial/tfcc/internal/domain/port/driven"
)

// SiteContent is everything the home page renders.
type SiteContent struct {
	Benchmarks []model.Benchmark
	Events     []model.Event
	Showcase   []model.ShowcaseImage
	Products   []model.Product
}

// SiteService loads the site content from the content store and enforces the
// display invariants: benchmarks must exist, and products outside the closed
// category set are dropped. It depends only on port interfaces.
type SiteService struct {
	content driven.ContentStore
	logger  *slog.Logger
}

// NewSiteService creates a new SiteService with the required dependencies.
func NewSiteService(content driven.ContentStore, logger *slog.Logger) *SiteService {
	return &SiteService{
		content: content,
		logger:  logger,
	}
}

// Load assembles the full SiteContent. Events, showcase images and products
// may be empty; the page renders placeholders for them.
func (s *SiteService) Load(ctx context.Context) (*SiteContent, error) {
	benchmarks, err := s.Benchmarks(ctx)
	if err != nil {
		return nil, err
	}

	events, err := s.content.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}

	showcase, err := s.content.ListShowcase(ctx)
	if err != nil {
		return nil, fmt.Errorf("load showcase: %w", err)
	}

	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}

	return &SiteContent{
		Benchmarks: benchmarks,
		Events:     events,
		Showcase:   showcase,
		Products:   products,
	}, nil
}

// Benchmarks returns the governance benchmarks in display order. It returns
// driven.ErrContentNotFound when none are seeded.
func (s *SiteService) Benchmarks(ctx context.Context) ([]model.Benchmark, error) {
	benchmarks, err := s.content.ListBenchmarks(ctx)
	if err != nil {
		return nil, fmt.Errorf("load benchmarks: %w", err)
	}
	if len(benchmarks) == 0 {
		return nil, fmt.Errorf("load benchmarks: %w", driven.ErrContentNotFound)
	}
	return benchmarks, nil
}

// Products returns the shop catalog in display order, skipping entries whose
// category is set but not one of model.Categories(). An empty category is kept.
func (s *SiteService) Products(ctx context.Context) ([]model.Product, error) {
	products, err := s.content.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	valid := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.Category != "" && !p.Category.Valid() {
			s.logger.Warn("skipping product with unknown category",
				"product_id", p.ID,
				"category", string(p.Category),
			)
			continue
		}
		valid = append(valid, p)
	}

	return valid, nil
}
