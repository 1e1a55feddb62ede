package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfccofficial/tfcc/internal/domain/model"
)

func TestContentRepo_ListBenchmarks_SeededInOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContentRepo(db)

	benchmarks, err := repo.ListBenchmarks(context.Background())
	require.NoError(t, err)
	require.Len(t, benchmarks, 6)

	numbers := make([]string, 0, len(benchmarks))
	for _, b := range benchmarks {
		numbers = append(numbers, b.Number)
	}
	if diff := cmp.Diff([]string{"01", "02", "03", "04", "05", "06"}, numbers); diff != "" {
		t.Errorf("benchmark order mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "Athlete Safety", benchmarks[0].Title)
	assert.False(t, benchmarks[0].HasContact())
	assert.Equal(t, "governance@tfcc.in", benchmarks[5].ContactEmail)
}

func TestContentRepo_ListBenchmarks_OrderedByPosition(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContentRepo(db)

	mustExec(t, db, `DELETE FROM benchmarks`)
	mustExec(t, db, `INSERT INTO benchmarks (position, number_label, title, description) VALUES (2, 'B', 'second', '')`)
	mustExec(t, db, `INSERT INTO benchmarks (position, number_label, title, description) VALUES (1, 'A', 'first', '')`)

	benchmarks, err := repo.ListBenchmarks(context.Background())
	require.NoError(t, err)
	require.Len(t, benchmarks, 2)
	assert.Equal(t, "first", benchmarks[0].Title)
	assert.Equal(t, "second", benchmarks[1].Title)
}

func TestContentRepo_ListEvents(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContentRepo(db)

	events, err := repo.ListEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, "TFCC Strongman Open", events[0].Title)
	assert.Equal(t, "Mumbai", events[0].Location)
	assert.Equal(t, "", events[2].ImageURL, "NULL image maps to empty string")
}

func TestContentRepo_ListShowcase(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContentRepo(db)

	images, err := repo.ListShowcase(context.Background())
	require.NoError(t, err)
	require.Len(t, images, 3)
	assert.Equal(t, 1, images[0].Position)
	assert.NotEmpty(t, images[0].ImageURL)
}

func TestContentRepo_ListProducts_AllOutOfStock(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContentRepo(db)

	products, err := repo.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 4)

	for _, p := range products {
		assert.False(t, p.InStock, "seeded product %q must be out of stock", p.Name)
		assert.True(t, p.Category.Valid(), "seeded product %q has category %q", p.Name, p.Category)
	}

	require.NotNil(t, products[0].Price)
	assert.InDelta(t, 1499.0, *products[0].Price, 0.001)
	assert.Equal(t, "INR", products[0].Currency)
	assert.Equal(t, model.CategoryApparel, products[0].Category)
}

func TestContentRepo_ListProducts_NullColumns(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContentRepo(db)

	mustExec(t, db, `DELETE FROM products`)
	mustExec(t, db, `INSERT INTO products (position, in_stock) VALUES (1, 1)`)

	products, err := repo.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)

	p := products[0]
	assert.Empty(t, p.Name)
	assert.Empty(t, p.Description)
	assert.Nil(t, p.Price)
	assert.Empty(t, p.Currency)
	assert.Empty(t, p.Category)
	assert.True(t, p.InStock)
}

func TestContentRepo_CategoryConstraint(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.Writer.ExecContext(context.Background(),
		`INSERT INTO products (position, name, category) VALUES (99, 'bad', 'weapons')`)
	assert.Error(t, err, "categories outside the closed set must be rejected")
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, RunMigrations(db.Writer))

	benchmarks, err := NewContentRepo(db).ListBenchmarks(context.Background())
	require.NoError(t, err)
	assert.Len(t, benchmarks, 6, "re-running migrations must not duplicate seed content")
}

func TestNewDB_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.db")

	db, err := NewDB(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(db.Writer))
	assert.Equal(t, path, db.Path())

	events, err := NewContentRepo(db).ListEvents(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, events)
}
