package importer_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"tenant-bulk-import/internal/domain"
	"tenant-bulk-import/internal/importer"
	"tenant-bulk-import/internal/mocks"
	"tenant-bulk-import/internal/parser"
	"tenant-bulk-import/internal/validator"
)

var scope = importer.Scope{TenantID: "tenant-a", JobID: "job-1"}

func record(values map[string]string) parser.Record {
	return parser.Record{Index: 0, Values: values}
}

func TestUserStrategy_ProcessRow(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user and loyalty points in the job tenant", func(t *testing.T) {
		repo := mocks.NewMockUserRepository(t)
		s := importer.NewUserStrategy(repo, validator.NewValidator(), 0)

		repo.EXPECT().FindByEmail(mock.Anything, "tenant-a", "jane@example.com").Return(nil, nil)
		repo.EXPECT().
			CreateWithLoyalty(mock.Anything, mock.AnythingOfType("*domain.User"), mock.AnythingOfType("*domain.LoyaltyPoints")).
			Run(func(_ context.Context, user *domain.User, points *domain.LoyaltyPoints) {
				assert.Equal(t, "tenant-a", user.TenantID)
				assert.Equal(t, "job-1", user.ImportJobID)
				assert.Equal(t, 2, user.ImportRow)
				assert.Equal(t, domain.DefaultRole, user.Role)
				assert.True(t, user.Active)
				assert.Equal(t, "Registered", user.BuyerRegistrationType)
				assert.Equal(t, "3520212345671", user.BuyerNTNCNIC)
				assert.Equal(t, "tenant-a", points.TenantID)
				assert.Equal(t, user.ID, points.UserID)
				assert.Zero(t, points.Balance)
			}).
			Return(nil)

		out, err := s.ProcessRow(ctx, scope, record(map[string]string{
			"name":                  "Jane",
			"email":                 "Jane@Example.com",
			"buyerNTNCNIC":          "35202-1234567-1",
			"buyerRegistrationType": "registered",
		}))

		require.NoError(t, err)
		assert.False(t, out.Failed())
		require.NotNil(t, out.Entity)
		assert.Equal(t, "jane@example.com", out.Entity.Display["email"])
		require.NotNil(t, out.Identifier)
		assert.Equal(t, "jane@example.com", *out.Identifier)
		assert.Equal(t, 50, s.ChunkSize())
	})

	t.Run("rejects invalid row without touching the store", func(t *testing.T) {
		repo := mocks.NewMockUserRepository(t)
		s := importer.NewUserStrategy(repo, validator.NewValidator(), 50)

		out, err := s.ProcessRow(ctx, scope, record(map[string]string{"name": "", "email": "not-an-email"}))

		require.NoError(t, err)
		assert.Equal(t, []string{"Name is required", "Invalid email format"}, out.Failure)
	})

	t.Run("rejects email that exists in the tenant", func(t *testing.T) {
		repo := mocks.NewMockUserRepository(t)
		s := importer.NewUserStrategy(repo, validator.NewValidator(), 50)

		other := "job-0"
		repo.EXPECT().FindByEmail(mock.Anything, "tenant-a", "dup@example.com").
			Return(&domain.ExistingRecord{ID: "u-1", ImportJobID: &other}, nil)

		out, err := s.ProcessRow(ctx, scope, record(map[string]string{"name": "Dup", "email": "dup@example.com"}))

		require.NoError(t, err)
		assert.Equal(t, []string{"User with email dup@example.com already exists"}, out.Failure)
	})

	t.Run("counts a record written by the same job as a success", func(t *testing.T) {
		repo := mocks.NewMockUserRepository(t)
		s := importer.NewUserStrategy(repo, validator.NewValidator(), 50)

		jobID, line := scope.JobID, 2
		repo.EXPECT().FindByEmail(mock.Anything, "tenant-a", "again@example.com").
			Return(&domain.ExistingRecord{ID: "u-9", ImportJobID: &jobID, ImportRow: &line}, nil)

		out, err := s.ProcessRow(ctx, scope, record(map[string]string{"name": "Again", "email": "again@example.com"}))

		require.NoError(t, err)
		require.NotNil(t, out.Entity)
		assert.Equal(t, "u-9", out.Entity.ID)
	})

	t.Run("rejects a repeat of an earlier row of the same job", func(t *testing.T) {
		repo := mocks.NewMockUserRepository(t)
		s := importer.NewUserStrategy(repo, validator.NewValidator(), 50)

		jobID, line := scope.JobID, 2
		repo.EXPECT().FindByEmail(mock.Anything, "tenant-a", "again@example.com").
			Return(&domain.ExistingRecord{ID: "u-9", ImportJobID: &jobID, ImportRow: &line}, nil)

		rec := parser.Record{Index: 4, Values: map[string]string{"name": "Again", "email": "again@example.com"}}
		out, err := s.ProcessRow(ctx, scope, rec)

		require.NoError(t, err)
		assert.Equal(t, []string{"User with email again@example.com already exists"}, out.Failure)
	})

	t.Run("maps a unique violation on insert to a duplicate failure", func(t *testing.T) {
		repo := mocks.NewMockUserRepository(t)
		s := importer.NewUserStrategy(repo, validator.NewValidator(), 50)

		repo.EXPECT().FindByEmail(mock.Anything, "tenant-a", "race@example.com").Return(nil, nil)
		repo.EXPECT().CreateWithLoyalty(mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrDuplicate)

		out, err := s.ProcessRow(ctx, scope, record(map[string]string{"name": "Race", "email": "race@example.com"}))

		require.NoError(t, err)
		assert.Equal(t, []string{"User with email race@example.com already exists"}, out.Failure)
	})

	t.Run("returns unexpected store errors", func(t *testing.T) {
		repo := mocks.NewMockUserRepository(t)
		s := importer.NewUserStrategy(repo, validator.NewValidator(), 50)

		repo.EXPECT().FindByEmail(mock.Anything, "tenant-a", "down@example.com").Return(nil, domain.ErrStoreUnavailable)

		_, err := s.ProcessRow(ctx, scope, record(map[string]string{"name": "Down", "email": "down@example.com"}))

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrStoreUnavailable))
	})

	t.Run("a panic in the store keeps the row identifier", func(t *testing.T) {
		repo := mocks.NewMockUserRepository(t)
		s := importer.NewUserStrategy(repo, validator.NewValidator(), 50)

		repo.EXPECT().FindByEmail(mock.Anything, "tenant-a", "crash@example.com").Return(nil, nil)
		repo.EXPECT().CreateWithLoyalty(mock.Anything, mock.Anything, mock.Anything).
			Run(func(context.Context, *domain.User, *domain.LoyaltyPoints) { panic("nil map") }).
			Return(nil)

		out, err := s.ProcessRow(ctx, scope, record(map[string]string{"name": "Crash", "email": "crash@example.com"}))

		require.Error(t, err)
		assert.Equal(t, "unexpected error: nil map", err.Error())
		require.NotNil(t, out.Identifier)
		assert.Equal(t, "crash@example.com", *out.Identifier)
		assert.Nil(t, out.Entity)
		assert.Empty(t, out.Failure)
	})
}

func TestProductStrategy_ProcessRow(t *testing.T) {
	ctx := context.Background()

	t.Run("creates inventory and stock movement for positive quantity", func(t *testing.T) {
		repo := mocks.NewMockProductRepository(t)
		s := importer.NewProductStrategy(repo, validator.NewValidator(), 0)

		repo.EXPECT().FindBySKU(mock.Anything, "tenant-a", "SKU-1").Return(nil, nil)
		repo.EXPECT().
			CreateWithStock(mock.Anything, mock.AnythingOfType("*domain.Product"), mock.AnythingOfType("*domain.Inventory"), mock.AnythingOfType("*domain.StockMovement")).
			Run(func(_ context.Context, p *domain.Product, inv *domain.Inventory, mv *domain.StockMovement) {
				assert.Equal(t, "tenant-a", p.TenantID)
				assert.True(t, p.Price.Equal(decimal.RequireFromString("49.99")))
				assert.True(t, strings.HasPrefix(p.Slug, "blue-widget-"))
				require.NotNil(t, inv)
				assert.Equal(t, 12, inv.Quantity)
				assert.Equal(t, "tenant-a", inv.TenantID)
				require.NotNil(t, mv)
				assert.Equal(t, domain.MovementTypeIn, mv.MovementType)
				assert.Equal(t, 0, mv.PreviousQuantity)
				assert.Equal(t, 12, mv.NewQuantity)
				assert.Equal(t, "Purchase Order", mv.Reason)
				assert.Equal(t, "job-1", mv.Reference)
			}).
			Return(nil)

		out, err := s.ProcessRow(ctx, scope, record(map[string]string{
			"name":          "Blue Widget",
			"sku":           "SKU-1",
			"price":         "49.99",
			"stockQuantity": "12",
			"stockStatus":   "purchase order",
		}))

		require.NoError(t, err)
		require.NotNil(t, out.Entity)
		assert.Equal(t, "SKU-1", out.Entity.Display["sku"])
		assert.Equal(t, 25, s.ChunkSize())
	})

	t.Run("skips stock records for zero quantity", func(t *testing.T) {
		repo := mocks.NewMockProductRepository(t)
		s := importer.NewProductStrategy(repo, validator.NewValidator(), 25)

		repo.EXPECT().FindBySKU(mock.Anything, "tenant-a", "SKU-2").Return(nil, nil)
		repo.EXPECT().
			CreateWithStock(mock.Anything, mock.Anything, (*domain.Inventory)(nil), (*domain.StockMovement)(nil)).
			Return(nil)

		out, err := s.ProcessRow(ctx, scope, record(map[string]string{"name": "Gadget", "sku": "SKU-2", "price": "10"}))

		require.NoError(t, err)
		assert.False(t, out.Failed())
	})

	t.Run("rejects negative price", func(t *testing.T) {
		repo := mocks.NewMockProductRepository(t)
		s := importer.NewProductStrategy(repo, validator.NewValidator(), 25)

		out, err := s.ProcessRow(ctx, scope, record(map[string]string{"name": "Bad", "sku": "SKU-3", "price": "-1"}))

		require.NoError(t, err)
		assert.Equal(t, []string{"Price must be a valid positive number"}, out.Failure)
	})

	t.Run("rejects SKU that exists in the tenant", func(t *testing.T) {
		repo := mocks.NewMockProductRepository(t)
		s := importer.NewProductStrategy(repo, validator.NewValidator(), 25)

		repo.EXPECT().FindBySKU(mock.Anything, "tenant-a", "SKU-4").Return(&domain.ExistingRecord{ID: "p-1"}, nil)

		out, err := s.ProcessRow(ctx, scope, record(map[string]string{"name": "Dup", "sku": "SKU-4", "price": "1"}))

		require.NoError(t, err)
		assert.Equal(t, []string{"Product with SKU SKU-4 already exists"}, out.Failure)
	})
}

func TestRegistry(t *testing.T) {
	v := validator.NewValidator()
	reg := importer.NewRegistry(
		importer.NewUserStrategy(mocks.NewMockUserRepository(t), v, 50),
		importer.NewProductStrategy(mocks.NewMockProductRepository(t), v, 25),
	)

	s, ok := reg.Get(domain.ImportTypeProducts)
	require.True(t, ok)
	assert.Equal(t, domain.ImportTypeProducts, s.Type())

	_, ok = reg.Get(domain.ImportType("orders"))
	assert.False(t, ok)
}

func TestCoerce(t *testing.T) {
	assert.True(t, importer.ParseBool("", true))
	assert.False(t, importer.ParseBool("No", true))
	assert.True(t, importer.ParseBool("YES", false))
	assert.True(t, importer.ParseBool("maybe", true))

	assert.True(t, importer.ParseDecimal("abc", decimal.Zero).IsZero())
	assert.Equal(t, 7, importer.ParseInt(" 7 ", 0))
	assert.Equal(t, 3, importer.ParseInt("x", 3))

	now := time.UnixMilli(1_700_000_000_000)
	assert.Equal(t, "acme-widget-pro-loyw3v28abc", importer.Slugify("  Acme Widget (Pro)! ", now, "abc"))
	assert.True(t, strings.HasPrefix(importer.Slugify("!!!", now, ""), "item-"))
}

func TestTemplates(t *testing.T) {
	for _, importType := range domain.ValidImportTypes {
		tpl, ok := importer.TemplateFor(importType)
		require.True(t, ok)

		t.Run(string(importType)+" csv parses with its own columns", func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, importer.WriteCSVTemplate(&buf, tpl))

			columns := importer.UserColumns
			if importType == domain.ImportTypeProducts {
				columns = importer.ProductColumns
			}
			file, err := parser.Parse(buf.String(), columns)
			require.NoError(t, err)
			assert.Len(t, file.Records, len(tpl.Samples))
		})

		t.Run(string(importType)+" xlsx", func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, importer.WriteXLSXTemplate(&buf, tpl))

			f, err := excelize.OpenReader(&buf)
			require.NoError(t, err)
			defer f.Close()

			rows, err := f.GetRows(tpl.Name)
			require.NoError(t, err)
			require.Len(t, rows, len(tpl.Samples)+1)
			assert.Equal(t, tpl.Headers, rows[0])

			assert.Equal(t, tpl.Name, f.GetSheetName(f.GetActiveSheetIndex()))
			note, err := f.GetCellValue("Instructions", "A1")
			require.NoError(t, err)
			assert.Equal(t, importer.XLSXTemplateNote, note)
		})
	}

	_, ok := importer.TemplateFor("orders")
	assert.False(t, ok)
}
