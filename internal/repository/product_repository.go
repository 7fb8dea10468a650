package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tenant-bulk-import/internal/domain"
)

// PostgresProductRepository implements ProductRepository using PostgreSQL.
type PostgresProductRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresProductRepository creates a new PostgresProductRepository.
func NewPostgresProductRepository(pool *pgxpool.Pool) *PostgresProductRepository {
	return &PostgresProductRepository{pool: pool}
}

// FindBySKU looks the SKU up within the tenant.
func (r *PostgresProductRepository) FindBySKU(ctx context.Context, tenantID, sku string) (*domain.ExistingRecord, error) {
	var rec domain.ExistingRecord
	err := r.pool.QueryRow(ctx, `
		SELECT id, import_job_id::text, import_row
		FROM products
		WHERE tenant_id = $1 AND sku = $2
	`, tenantID, sku).Scan(&rec.ID, &rec.ImportJobID, &rec.ImportRow)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify("find product by sku", err)
	}
	return &rec, nil
}

// CreateWithStock inserts the product and, when given, its opening inventory
// and the matching stock movement in one transaction.
func (r *PostgresProductRepository) CreateWithStock(ctx context.Context, product *domain.Product, inventory *domain.Inventory, movement *domain.StockMovement) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return classify("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO products (id, tenant_id, name, slug, sku, description, category, price, cost_price,
			tax_rate, hs_code, uom, low_stock_threshold, is_active, import_job_id, import_row, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`, product.ID, product.TenantID, product.Name, product.Slug, product.SKU,
		nullIfEmpty(product.Description), nullIfEmpty(product.Category),
		product.Price.String(), product.CostPrice.String(), product.TaxRate.String(),
		nullIfEmpty(product.HSCode), nullIfEmpty(product.UOM), product.LowStockThreshold,
		product.Active, nullIfEmpty(product.ImportJobID), nullIfZero(product.ImportRow), product.CreatedAt)
	if err != nil {
		return classify("insert product", err)
	}

	if inventory != nil {
		_, err = tx.Exec(ctx, `
			INSERT INTO inventory (id, tenant_id, product_id, quantity)
			VALUES ($1, $2, $3, $4)
		`, inventory.ID, inventory.TenantID, inventory.ProductID, inventory.Quantity)
		if err != nil {
			return classify("insert inventory", err)
		}
	}

	if movement != nil {
		_, err = tx.Exec(ctx, `
			INSERT INTO stock_movements (id, tenant_id, product_id, movement_type, quantity,
				previous_quantity, new_quantity, reason, reference)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, movement.ID, movement.TenantID, movement.ProductID, movement.MovementType, movement.Quantity,
			movement.PreviousQuantity, movement.NewQuantity, movement.Reason, nullIfEmpty(movement.Reference))
		if err != nil {
			return classify("insert stock movement", err)
		}
	}

	return classify("commit product", tx.Commit(ctx))
}
