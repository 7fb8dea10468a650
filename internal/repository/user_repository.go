package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tenant-bulk-import/internal/domain"
)

// PostgresUserRepository implements UserRepository using PostgreSQL.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresUserRepository creates a new PostgresUserRepository.
func NewPostgresUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

// FindByEmail looks the email up case-insensitively within the tenant.
func (r *PostgresUserRepository) FindByEmail(ctx context.Context, tenantID, email string) (*domain.ExistingRecord, error) {
	var rec domain.ExistingRecord
	err := r.pool.QueryRow(ctx, `
		SELECT id, import_job_id::text, import_row
		FROM users
		WHERE tenant_id = $1 AND lower(email) = lower($2)
	`, tenantID, email).Scan(&rec.ID, &rec.ImportJobID, &rec.ImportRow)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify("find user by email", err)
	}
	return &rec, nil
}

// CreateWithLoyalty inserts the user and its loyalty points row in one
// transaction.
func (r *PostgresUserRepository) CreateWithLoyalty(ctx context.Context, user *domain.User, points *domain.LoyaltyPoints) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return classify("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO users (id, tenant_id, email, name, phone, buyer_ntn_cnic, buyer_business_name,
			buyer_province, buyer_address, buyer_registration_type, role, is_active, import_job_id, import_row, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`, user.ID, user.TenantID, user.Email, user.Name, nullIfEmpty(user.Phone), nullIfEmpty(user.BuyerNTNCNIC),
		nullIfEmpty(user.BuyerBusinessName), nullIfEmpty(user.BuyerProvince), nullIfEmpty(user.BuyerAddress),
		nullIfEmpty(user.BuyerRegistrationType), user.Role, user.Active, nullIfEmpty(user.ImportJobID), nullIfZero(user.ImportRow), user.CreatedAt)
	if err != nil {
		return classify("insert user", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO loyalty_points (id, tenant_id, user_id, balance, lifetime_points)
		VALUES ($1, $2, $3, $4, $5)
	`, points.ID, points.TenantID, points.UserID, points.Balance, points.LifetimePoints)
	if err != nil {
		return classify("insert loyalty points", err)
	}

	return classify("commit user", tx.Commit(ctx))
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullIfZero(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}
