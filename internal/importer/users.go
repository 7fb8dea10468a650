package importer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"tenant-bulk-import/internal/domain"
	"tenant-bulk-import/internal/parser"
	"tenant-bulk-import/internal/repository"
	"tenant-bulk-import/internal/validator"
)

// DefaultUserChunkSize is the number of user rows processed per chunk.
const DefaultUserChunkSize = 50

// UserColumns is the user import header alias table.
var UserColumns = []parser.Column{
	{Field: "name", Aliases: []string{"full name", "full_name", "user name", "username", "customer name"}, Required: true},
	{Field: "email", Aliases: []string{"email address", "email_address", "e-mail"}, Required: true},
	{Field: "phone", Aliases: []string{"phone number", "phone_number", "mobile", "contact"}},
	{Field: "buyerNTNCNIC", Aliases: []string{"buyer ntn/cnic", "buyer_ntn_cnic", "ntn/cnic", "ntn_cnic", "ntn", "cnic"}},
	{Field: "buyerBusinessName", Aliases: []string{"buyer business name", "buyer_business_name", "business name", "company"}},
	{Field: "buyerProvince", Aliases: []string{"buyer province", "buyer_province", "province"}},
	{Field: "buyerAddress", Aliases: []string{"buyer address", "buyer_address", "address"}},
	{Field: "buyerRegistrationType", Aliases: []string{"buyer registration type", "buyer_registration_type", "registration type"}},
	{Field: "role"},
	{Field: "isActive", Aliases: []string{"is active", "is_active", "active"}},
}

// UserTemplate is the downloadable example for user imports.
var UserTemplate = Template{
	Name:    "users",
	Headers: []string{"name", "email", "phone", "buyerNTNCNIC", "buyerBusinessName", "buyerProvince", "buyerAddress", "buyerRegistrationType", "role", "isActive"},
	Samples: [][]string{
		{"Ayesha Khan", "ayesha@example.com", "03001234567", "3520212345671", "", "Punjab", "12 Mall Road, Lahore", "Unregistered", "customer", "true"},
		{"Bilal Traders", "accounts@bilaltraders.pk", "02134567890", "1234567", "Bilal Traders (Pvt) Ltd", "Sindh", "Plot 4, SITE, Karachi", "Registered", "customer", "true"},
	},
}

type userHandler struct {
	repo      repository.UserRepository
	validator *validator.Validator
	now       func() time.Time
}

// NewUserStrategy creates the users import strategy.
func NewUserStrategy(repo repository.UserRepository, v *validator.Validator, chunkSize int) Strategy {
	if chunkSize <= 0 {
		chunkSize = DefaultUserChunkSize
	}
	return NewStrategy[*validator.UserRow](domain.ImportTypeUsers, UserColumns, chunkSize, &userHandler{
		repo:      repo,
		validator: v,
		now:       time.Now,
	})
}

func (h *userHandler) Decode(rec parser.Record) *validator.UserRow {
	return &validator.UserRow{
		Name:                  rec.Get("name"),
		Email:                 strings.ToLower(rec.Get("email")),
		Phone:                 rec.Get("phone"),
		BuyerNTNCNIC:          rec.Get("buyerNTNCNIC"),
		BuyerBusinessName:     rec.Get("buyerBusinessName"),
		BuyerProvince:         rec.Get("buyerProvince"),
		BuyerAddress:          rec.Get("buyerAddress"),
		BuyerRegistrationType: rec.Get("buyerRegistrationType"),
		Role:                  strings.ToLower(rec.Get("role")),
		IsActive:              rec.Get("isActive"),
	}
}

func (h *userHandler) Identifier(row *validator.UserRow) string {
	return row.Email
}

func (h *userHandler) Validate(row *validator.UserRow) []string {
	return h.validator.ValidateUserRow(row)
}

func (h *userHandler) FindExisting(ctx context.Context, tenantID string, row *validator.UserRow) (*domain.ExistingRecord, error) {
	return h.repo.FindByEmail(ctx, tenantID, row.Email)
}

func (h *userHandler) DuplicateMessage(row *validator.UserRow) string {
	return fmt.Sprintf("User with email %s already exists", row.Email)
}

func (h *userHandler) Write(ctx context.Context, scope Scope, row *validator.UserRow) (string, error) {
	role := row.Role
	if role == "" {
		role = domain.DefaultRole
	}

	user := &domain.User{
		ID:                    uuid.New().String(),
		TenantID:              scope.TenantID,
		Email:                 row.Email,
		Name:                  row.Name,
		Phone:                 row.Phone,
		BuyerNTNCNIC:          strings.ReplaceAll(row.BuyerNTNCNIC, "-", ""),
		BuyerBusinessName:     row.BuyerBusinessName,
		BuyerProvince:         row.BuyerProvince,
		BuyerAddress:          row.BuyerAddress,
		BuyerRegistrationType: canonical(domain.ValidRegistrationTypes, row.BuyerRegistrationType),
		Role:                  role,
		Active:                ParseBool(row.IsActive, true),
		ImportJobID:           scope.JobID,
		ImportRow:             scope.Row,
		CreatedAt:             h.now(),
	}
	points := &domain.LoyaltyPoints{
		ID:       uuid.New().String(),
		TenantID: scope.TenantID,
		UserID:   user.ID,
	}

	if err := h.repo.CreateWithLoyalty(ctx, user, points); err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}
	return user.ID, nil
}

func (h *userHandler) Summary(id string, row *validator.UserRow) domain.EntitySummary {
	return domain.EntitySummary{
		ID: id,
		Display: map[string]string{
			"name":  row.Name,
			"email": row.Email,
		},
	}
}

func canonical(allowed []string, value string) string {
	for _, a := range allowed {
		if strings.EqualFold(a, strings.TrimSpace(value)) {
			return a
		}
	}
	return value
}
