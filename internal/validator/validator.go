package validator

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"tenant-bulk-import/internal/domain"
)

var (
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	ntnRegex      = regexp.MustCompile(`^(\d{7}|\d{13})$`)
	validRoles    = toInterfaces(domain.ValidRoles)
	userFields    = []string{"name", "email", "phone", "buyer_ntn_cnic", "buyer_registration_type", "role"}
	productFields = []string{"name", "sku", "price", "cost_price", "tax_rate", "stock_quantity", "stock_status", "low_stock_threshold"}
)

// UserRow is the validated projection of one user CSV line.
type UserRow struct {
	Name                  string `json:"name"`
	Email                 string `json:"email"`
	Phone                 string `json:"phone"`
	BuyerNTNCNIC          string `json:"buyer_ntn_cnic"`
	BuyerBusinessName     string `json:"buyer_business_name"`
	BuyerProvince         string `json:"buyer_province"`
	BuyerAddress          string `json:"buyer_address"`
	BuyerRegistrationType string `json:"buyer_registration_type"`
	Role                  string `json:"role"`
	IsActive              string `json:"is_active"`
}

// ProductRow is the validated projection of one product CSV line.
type ProductRow struct {
	Name              string `json:"name"`
	SKU               string `json:"sku"`
	Price             string `json:"price"`
	Description       string `json:"description"`
	Category          string `json:"category"`
	CostPrice         string `json:"cost_price"`
	HSCode            string `json:"hs_code"`
	UOM               string `json:"uom"`
	TaxRate           string `json:"tax_rate"`
	StockQuantity     string `json:"stock_quantity"`
	StockStatus       string `json:"stock_status"`
	LowStockThreshold string `json:"low_stock_threshold"`
	IsActive          string `json:"is_active"`
}

// Validator provides validation methods for import rows.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateUserRow returns the violations of a user row, empty when valid.
func (v *Validator) ValidateUserRow(u *UserRow) []string {
	err := validation.ValidateStruct(u,
		validation.Field(&u.Name,
			validation.Required.Error("Name is required"),
		),
		validation.Field(&u.Email,
			validation.Required.Error("Email is required"),
			validation.Match(emailRegex).Error("Invalid email format"),
		),
		validation.Field(&u.Phone,
			validation.Length(0, 20).Error("Phone number must be at most 20 characters"),
		),
		validation.Field(&u.BuyerNTNCNIC,
			validation.By(ntnCNICRule),
		),
		validation.Field(&u.BuyerRegistrationType,
			validation.By(oneOfFoldRule(domain.ValidRegistrationTypes, "Registration type must be Registered or Unregistered")),
		),
		validation.Field(&u.Role,
			validation.When(u.Role != "", validation.In(validRoles...).Error("Role must be one of: "+strings.Join(domain.ValidRoles, ", "))),
		),
	)
	return Messages(err, userFields)
}

// ValidateProductRow returns the violations of a product row, empty when valid.
func (v *Validator) ValidateProductRow(p *ProductRow) []string {
	err := validation.ValidateStruct(p,
		validation.Field(&p.Name,
			validation.Required.Error("Product name is required"),
		),
		validation.Field(&p.SKU,
			validation.Required.Error("SKU is required"),
		),
		validation.Field(&p.Price,
			validation.By(nonNegativeDecimalRule(true, "Price must be a valid positive number")),
		),
		validation.Field(&p.CostPrice,
			validation.By(nonNegativeDecimalRule(false, "Cost price must be a valid positive number")),
		),
		validation.Field(&p.TaxRate,
			validation.By(nonNegativeDecimalRule(false, "Tax rate must be a valid positive number")),
		),
		validation.Field(&p.StockQuantity,
			validation.By(nonNegativeIntRule("Stock quantity must be a whole number of 0 or more")),
		),
		validation.Field(&p.StockStatus,
			validation.By(oneOfFoldRule(domain.ValidStockStatuses, "Stock status must be one of: "+strings.Join(domain.ValidStockStatuses, ", "))),
		),
		validation.Field(&p.LowStockThreshold,
			validation.By(nonNegativeIntRule("Low stock threshold must be a whole number of 0 or more")),
		),
	)
	return Messages(err, productFields)
}

// Messages flattens ozzo validation errors into messages ordered by fields.
func Messages(err error, fields []string) []string {
	if err == nil {
		return nil
	}

	var ve validation.Errors
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(ve))
	for _, field := range fields {
		if fieldErr, ok := ve[field]; ok && fieldErr != nil {
			messages = append(messages, fieldErr.Error())
		}
	}
	return messages
}

func ntnCNICRule(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	digits := strings.ReplaceAll(s, "-", "")
	if !ntnRegex.MatchString(digits) {
		return validation.NewError("invalid_ntn_cnic", "NTN/CNIC must be a 7-digit NTN or 13-digit CNIC")
	}
	return nil
}

func oneOfFoldRule(allowed []string, message string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		for _, a := range allowed {
			if strings.EqualFold(a, strings.TrimSpace(s)) {
				return nil
			}
		}
		return validation.NewError("invalid_choice", message)
	}
}

func nonNegativeDecimalRule(required bool, message string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s == "" {
			if required {
				return validation.NewError("invalid_number", message)
			}
			return nil
		}
		d, err := decimal.NewFromString(strings.TrimSpace(s))
		if err != nil || d.IsNegative() {
			return validation.NewError("invalid_number", message)
		}
		return nil
	}
}

func nonNegativeIntRule(message string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n < 0 {
			return validation.NewError("invalid_integer", message)
		}
		return nil
	}
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
