package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenant-bulk-import/internal/domain"
	"tenant-bulk-import/internal/repository"
)

func newProduct(tenantID, sku string) *domain.Product {
	return &domain.Product{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      "Widget " + sku,
		Slug:      "widget-" + uuid.New().String(),
		SKU:       sku,
		Price:     decimal.RequireFromString("49.99"),
		CostPrice: decimal.RequireFromString("30"),
		TaxRate:   decimal.RequireFromString("18"),
		Active:    true,
		CreatedAt: time.Now(),
	}
}

func TestPostgresProductRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresProductRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("creates product with inventory and stock movement", func(t *testing.T) {
		testDB.TruncateTables(t, "products", "inventory", "stock_movements")

		p := newProduct("tenant-a", "SKU-1")
		inv := &domain.Inventory{ID: uuid.New().String(), TenantID: "tenant-a", ProductID: p.ID, Quantity: 12}
		mv := &domain.StockMovement{
			ID:           uuid.New().String(),
			TenantID:     "tenant-a",
			ProductID:    p.ID,
			MovementType: domain.MovementTypeIn,
			Quantity:     12,
			NewQuantity:  12,
			Reason:       domain.DefaultStockStatus,
			Reference:    uuid.New().String(),
		}
		require.NoError(t, repo.CreateWithStock(ctx, p, inv, mv))

		assert.Equal(t, 1, testDB.Count(t, "products", "id = $1 AND price = 49.99", p.ID))
		assert.Equal(t, 1, testDB.Count(t, "inventory", "product_id = $1 AND quantity = 12", p.ID))
		assert.Equal(t, 1, testDB.Count(t, "stock_movements", "product_id = $1 AND previous_quantity = 0 AND new_quantity = 12", p.ID))
	})

	t.Run("creates product without stock records", func(t *testing.T) {
		testDB.TruncateTables(t, "products", "inventory", "stock_movements")

		p := newProduct("tenant-a", "SKU-2")
		require.NoError(t, repo.CreateWithStock(ctx, p, nil, nil))

		assert.Equal(t, 0, testDB.Count(t, "inventory", "product_id = $1", p.ID))
		assert.Equal(t, 0, testDB.Count(t, "stock_movements", "product_id = $1", p.ID))
	})

	t.Run("duplicate sku in tenant returns ErrDuplicate", func(t *testing.T) {
		testDB.TruncateTables(t, "products", "inventory", "stock_movements")

		require.NoError(t, repo.CreateWithStock(ctx, newProduct("tenant-a", "SKU-3"), nil, nil))

		dup := newProduct("tenant-a", "SKU-3")
		inv := &domain.Inventory{ID: uuid.New().String(), TenantID: "tenant-a", ProductID: dup.ID, Quantity: 5}
		err := repo.CreateWithStock(ctx, dup, inv, nil)
		assert.ErrorIs(t, err, domain.ErrDuplicate)
		assert.Equal(t, 0, testDB.Count(t, "inventory", "product_id = $1", dup.ID))

		require.NoError(t, repo.CreateWithStock(ctx, newProduct("tenant-b", "SKU-3"), nil, nil))
	})

	t.Run("find by sku", func(t *testing.T) {
		testDB.TruncateTables(t, "products", "inventory", "stock_movements")

		jobID := uuid.New().String()
		p := newProduct("tenant-a", "SKU-4")
		p.ImportJobID = jobID
		p.ImportRow = 7
		require.NoError(t, repo.CreateWithStock(ctx, p, nil, nil))

		found, err := repo.FindBySKU(ctx, "tenant-a", "SKU-4")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.True(t, found.CreatedBy(jobID, 7))

		missing, err := repo.FindBySKU(ctx, "tenant-b", "SKU-4")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}
