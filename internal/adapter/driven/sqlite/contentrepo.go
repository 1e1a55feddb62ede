package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tfccofficial/tfcc/internal/domain/model"
	"github.com/tfccofficial/tfcc/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.ContentStore = (*ContentRepo)(nil)

// ContentRepo is the SQLite implementation of the ContentStore port interface.
// It only reads; content is written by the seed migrations.
type ContentRepo struct {
	db *DB
}

// NewContentRepo creates a new ContentRepo backed by the given DB.
func NewContentRepo(db *DB) *ContentRepo {
	return &ContentRepo{db: db}
}

// ListBenchmarks returns all governance benchmarks ordered by position.
func (r *ContentRepo) ListBenchmarks(ctx context.Context) ([]model.Benchmark, error) {
	const query = `SELECT id, position, number_label, title, description, contact_email FROM benchmarks ORDER BY position`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list benchmarks: %w", err)
	}
	defer rows.Close()

	var benchmarks []model.Benchmark
	for rows.Next() {
		var b model.Benchmark
		var email sql.NullString
		if err := rows.Scan(&b.ID, &b.Position, &b.Number, &b.Title, &b.Description, &email); err != nil {
			return nil, fmt.Errorf("scan benchmark: %w", err)
		}
		b.ContactEmail = email.String
		benchmarks = append(benchmarks, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate benchmarks: %w", err)
	}

	return benchmarks, nil
}

// ListEvents returns all listed events ordered by position.
func (r *ContentRepo) ListEvents(ctx context.Context) ([]model.Event, error) {
	const query = `SELECT id, position, title, date_label, location, description, image_url FROM events ORDER BY position`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		var imageURL sql.NullString
		if err := rows.Scan(&e.ID, &e.Position, &e.Title, &e.DateLabel, &e.Location, &e.Description, &imageURL); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.ImageURL = imageURL.String
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	return events, nil
}

// ListShowcase returns all showcase images ordered by position.
func (r *ContentRepo) ListShowcase(ctx context.Context) ([]model.ShowcaseImage, error) {
	const query = `SELECT id, position, image_url, caption FROM showcase_images ORDER BY position`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list showcase images: %w", err)
	}
	defer rows.Close()

	var images []model.ShowcaseImage
	for rows.Next() {
		var img model.ShowcaseImage
		if err := rows.Scan(&img.ID, &img.Position, &img.ImageURL, &img.Caption); err != nil {
			return nil, fmt.Errorf("scan showcase image: %w", err)
		}
		images = append(images, img)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate showcase images: %w", err)
	}

	return images, nil
}

// ListProducts returns all shop products ordered by position. Nullable
// columns map to empty strings, and a NULL price maps to a nil Price.
func (r *ContentRepo) ListProducts(ctx context.Context) ([]model.Product, error) {
	const query = `SELECT id, position, name, description, price, currency, image_url, category, in_stock FROM products ORDER BY position`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}

func scanProduct(rows *sql.Rows) (model.Product, error) {
	var (
		p                                               model.Product
		name, description, currency, imageURL, category sql.NullString
		price                                           sql.NullFloat64
	)

	err := rows.Scan(&p.ID, &p.Position, &name, &description, &price, &currency, &imageURL, &category, &p.InStock)
	if err != nil {
		return model.Product{}, err
	}

	p.Name = name.String
	p.Description = description.String
	p.Currency = currency.String
	p.ImageURL = imageURL.String
	p.Category = model.Category(category.String)
	if price.Valid {
		v := price.Float64
		p.Price = &v
	}

	return p, nil
}
