package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a tenant product created by an import.
type Product struct {
	ID                string          `json:"id"`
	TenantID          string          `json:"tenant_id"`
	Name              string          `json:"name"`
	Slug              string          `json:"slug"`
	SKU               string          `json:"sku"`
	Description       string          `json:"description,omitempty"`
	Category          string          `json:"category,omitempty"`
	Price             decimal.Decimal `json:"price"`
	CostPrice         decimal.Decimal `json:"cost_price"`
	TaxRate           decimal.Decimal `json:"tax_rate"`
	HSCode            string          `json:"hs_code,omitempty"`
	UOM               string          `json:"uom,omitempty"`
	LowStockThreshold int             `json:"low_stock_threshold"`
	Active            bool            `json:"is_active"`
	ImportJobID       string          `json:"import_job_id,omitempty"`
	ImportRow         int             `json:"import_row,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// Inventory holds the stock level of a product.
type Inventory struct {
	ID        string `json:"id"`
	TenantID  string `json:"tenant_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// StockMovement is the audit record of a stock level change.
type StockMovement struct {
	ID               string `json:"id"`
	TenantID         string `json:"tenant_id"`
	ProductID        string `json:"product_id"`
	MovementType     string `json:"movement_type"`
	Quantity         int    `json:"quantity"`
	PreviousQuantity int    `json:"previous_quantity"`
	NewQuantity      int    `json:"new_quantity"`
	Reason           string `json:"reason"`
	Reference        string `json:"reference,omitempty"`
}

// MovementTypeIn is the movement type of stock added to inventory.
const MovementTypeIn = "in"

// DefaultStockStatus is the stock movement reason used when none is given.
const DefaultStockStatus = "Opening Stock"

// ValidStockStatuses contains the accepted stock movement reasons.
var ValidStockStatuses = []string{
	"Opening Stock",
	"Purchase Order",
	"Stock Adjustment",
	"Customer Return",
	"Transfer In",
}

// NormalizeStockStatus returns the canonical spelling of a stock status, or
// false when it is not one of ValidStockStatuses.
func NormalizeStockStatus(status string) (string, bool) {
	status = strings.TrimSpace(status)
	if status == "" {
		return DefaultStockStatus, true
	}
	for _, s := range ValidStockStatuses {
		if strings.EqualFold(s, status) {
			return s, true
		}
	}
	return "", false
}
