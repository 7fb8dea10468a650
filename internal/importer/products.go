package importer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tenant-bulk-import/internal/domain"
	"tenant-bulk-import/internal/parser"
	"tenant-bulk-import/internal/repository"
	"tenant-bulk-import/internal/validator"
)

// DefaultProductChunkSize is the number of product rows processed per chunk.
// Product rows touch three tables so chunks are smaller than for users.
const DefaultProductChunkSize = 25

// ProductColumns is the product import header alias table.
var ProductColumns = []parser.Column{
	{Field: "name", Aliases: []string{"product name", "product_name", "title"}, Required: true},
	{Field: "sku", Aliases: []string{"product sku", "product_sku", "item code", "code"}, Required: true},
	{Field: "price", Aliases: []string{"selling price", "sale price", "unit price", "unit_price"}, Required: true},
	{Field: "description", Aliases: []string{"product description", "details"}},
	{Field: "category", Aliases: []string{"category name", "category_name"}},
	{Field: "costPrice", Aliases: []string{"cost price", "cost_price", "cost", "purchase price"}},
	{Field: "hsCode", Aliases: []string{"hs code", "hs_code", "hscode"}},
	{Field: "uom", Aliases: []string{"unit", "unit of measure", "unit_of_measure"}},
	{Field: "taxRate", Aliases: []string{"tax rate", "tax_rate", "tax", "gst"}},
	{Field: "stockQuantity", Aliases: []string{"stock quantity", "stock_quantity", "quantity", "qty", "stock"}},
	{Field: "stockStatus", Aliases: []string{"stock status", "stock_status", "stock reason"}},
	{Field: "lowStockThreshold", Aliases: []string{"low stock threshold", "low_stock_threshold", "reorder level"}},
	{Field: "isActive", Aliases: []string{"is active", "is_active", "active"}},
}

// ProductTemplate is the downloadable example for product imports.
var ProductTemplate = Template{
	Name:    "products",
	Headers: []string{"name", "sku", "price", "description", "category", "costPrice", "hsCode", "uom", "taxRate", "stockQuantity", "stockStatus", "lowStockThreshold", "isActive"},
	Samples: [][]string{
		{"Basmati Rice 5kg", "RICE-5KG", "1850.00", "Premium long grain rice", "Grocery", "1500.00", "1006.3090", "Bag", "18", "120", "Opening Stock", "10", "true"},
		{"Cooking Oil 1L", "OIL-1L", "620.50", "", "Grocery", "540.00", "1512.1100", "Bottle", "18", "0", "", "5", "true"},
	},
}

type productHandler struct {
	repo      repository.ProductRepository
	validator *validator.Validator
	now       func() time.Time
}

// NewProductStrategy creates the products import strategy.
func NewProductStrategy(repo repository.ProductRepository, v *validator.Validator, chunkSize int) Strategy {
	if chunkSize <= 0 {
		chunkSize = DefaultProductChunkSize
	}
	return NewStrategy[*validator.ProductRow](domain.ImportTypeProducts, ProductColumns, chunkSize, &productHandler{
		repo:      repo,
		validator: v,
		now:       time.Now,
	})
}

func (h *productHandler) Decode(rec parser.Record) *validator.ProductRow {
	return &validator.ProductRow{
		Name:              rec.Get("name"),
		SKU:               rec.Get("sku"),
		Price:             rec.Get("price"),
		Description:       rec.Get("description"),
		Category:          rec.Get("category"),
		CostPrice:         rec.Get("costPrice"),
		HSCode:            rec.Get("hsCode"),
		UOM:               rec.Get("uom"),
		TaxRate:           rec.Get("taxRate"),
		StockQuantity:     rec.Get("stockQuantity"),
		StockStatus:       rec.Get("stockStatus"),
		LowStockThreshold: rec.Get("lowStockThreshold"),
		IsActive:          rec.Get("isActive"),
	}
}

func (h *productHandler) Identifier(row *validator.ProductRow) string {
	return row.SKU
}

func (h *productHandler) Validate(row *validator.ProductRow) []string {
	return h.validator.ValidateProductRow(row)
}

func (h *productHandler) FindExisting(ctx context.Context, tenantID string, row *validator.ProductRow) (*domain.ExistingRecord, error) {
	return h.repo.FindBySKU(ctx, tenantID, row.SKU)
}

func (h *productHandler) DuplicateMessage(row *validator.ProductRow) string {
	return fmt.Sprintf("Product with SKU %s already exists", row.SKU)
}

func (h *productHandler) Write(ctx context.Context, scope Scope, row *validator.ProductRow) (string, error) {
	now := h.now()
	id := uuid.New().String()

	product := &domain.Product{
		ID:                id,
		TenantID:          scope.TenantID,
		Name:              row.Name,
		Slug:              Slugify(row.Name, now, strings.ReplaceAll(id, "-", "")),
		SKU:               row.SKU,
		Description:       row.Description,
		Category:          row.Category,
		Price:             ParseDecimal(row.Price, decimal.Zero),
		CostPrice:         ParseDecimal(row.CostPrice, decimal.Zero),
		TaxRate:           ParseDecimal(row.TaxRate, decimal.Zero),
		HSCode:            row.HSCode,
		UOM:               row.UOM,
		LowStockThreshold: ParseInt(row.LowStockThreshold, 0),
		Active:            ParseBool(row.IsActive, true),
		ImportJobID:       scope.JobID,
		ImportRow:         scope.Row,
		CreatedAt:         now,
	}

	var (
		inventory *domain.Inventory
		movement  *domain.StockMovement
	)
	if qty := ParseInt(row.StockQuantity, 0); qty > 0 {
		reason, ok := domain.NormalizeStockStatus(row.StockStatus)
		if !ok {
			reason = domain.DefaultStockStatus
		}
		inventory = &domain.Inventory{
			ID:        uuid.New().String(),
			TenantID:  scope.TenantID,
			ProductID: id,
			Quantity:  qty,
		}
		movement = &domain.StockMovement{
			ID:               uuid.New().String(),
			TenantID:         scope.TenantID,
			ProductID:        id,
			MovementType:     domain.MovementTypeIn,
			Quantity:         qty,
			PreviousQuantity: 0,
			NewQuantity:      qty,
			Reason:           reason,
			Reference:        scope.JobID,
		}
	}

	if err := h.repo.CreateWithStock(ctx, product, inventory, movement); err != nil {
		return "", fmt.Errorf("create product: %w", err)
	}
	return id, nil
}

func (h *productHandler) Summary(id string, row *validator.ProductRow) domain.EntitySummary {
	return domain.EntitySummary{
		ID: id,
		Display: map[string]string{
			"name": row.Name,
			"sku":  row.SKU,
		},
	}
}
