// Package postgres implements store.Store on PostgreSQL through pgxpool.
package postgres

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"spendwise-backend/internal/config"
	"spendwise-backend/internal/models"
	"spendwise-backend/internal/store"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store is a pgxpool-backed store.Store.
type Store struct {
	pool *pgxpool.Pool
}

var _ store.Store = (*Store)(nil)

// Connect opens a pool from cfg, pings it and applies pending migrations.
func Connect(ctx context.Context, cfg *config.Config) (*Store, error) {
	return ConnectDSN(ctx, cfg.GetDSN(), cfg.Database)
}

// ConnectDSN is Connect with an explicit connection string.
func ConnectDSN(ctx context.Context, dsn string, dbCfg config.DatabaseConfig) (*Store, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	// simple protocol keeps us compatible with PgBouncer in transaction mode
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "spendwise-backend"
	if dbCfg.QueryTimeout > 0 {
		poolCfg.ConnConfig.RuntimeParams["statement_timeout"] = fmt.Sprintf("%d", dbCfg.QueryTimeout.Milliseconds())
	}
	if dbCfg.MaxConns > 0 {
		poolCfg.MaxConns = dbCfg.MaxConns
	}
	poolCfg.MinConns = dbCfg.MinConns
	if dbCfg.MaxLifetime > 0 {
		poolCfg.MaxConnLifetime = dbCfg.MaxLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	if err := Migrate(pool); err != nil {
		pool.Close()
		return nil, err
	}

	return &Store{pool: pool}, nil
}

// New wraps an existing pool without running migrations.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Migrate applies the embedded schema migrations.
func Migrate(pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)

	driver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		return fmt.Errorf("create pgx migrate driver: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}
	defer src.Close()

	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases the pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create user: %w", mapError(err))
	}
	return nil
}

const selectUser = `SELECT id, name, email, password_hash, created_at, updated_at FROM users`

func (s *Store) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, err := scanUser(s.pool.QueryRow(ctx, selectUser+` WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := scanUser(s.pool.QueryRow(ctx, selectUser+` WHERE email = $1`, email))
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

func (s *Store) UpdateUserName(ctx context.Context, id uuid.UUID, name string) (*models.User, error) {
	u, err := scanUser(s.pool.QueryRow(ctx,
		`UPDATE users SET name = $1, updated_at = $2 WHERE id = $3
		 RETURNING id, name, email, password_hash, created_at, updated_at`,
		name, time.Now().UTC(), id))
	if err != nil {
		return nil, fmt.Errorf("update user %s: %w", id, err)
	}
	return u, nil
}

func (s *Store) DeleteUser(ctx context.Context, id uuid.UUID) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete user: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM expenses WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("delete expenses of %s: %w", id, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM budgets WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("delete budgets of %s: %w", id, err)
	}
	ct, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("delete user %s: %w", id, store.ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete user: %w", err)
	}
	return nil
}

func (s *Store) CreateExpense(ctx context.Context, e *models.Expense) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO expenses (id, user_id, amount, description, category, date, payment_mode, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.UserID, e.Amount, e.Description, e.Category, e.Date, string(e.PaymentMode), e.CreatedAt)
	if err != nil {
		return fmt.Errorf("create expense: %w", mapError(err))
	}
	return nil
}

func (s *Store) ListExpenses(ctx context.Context, userID uuid.UUID) ([]models.Expense, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, amount, description, category, date, payment_mode, created_at
		 FROM expenses WHERE user_id = $1 ORDER BY date DESC, created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var (
			e    models.Expense
			mode string
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.Amount, &e.Description, &e.Category, &e.Date, &mode, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		e.PaymentMode = models.PaymentMode(mode)
		e.Date = e.Date.UTC()
		e.CreatedAt = e.CreatedAt.UTC()
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}
	return expenses, nil
}

func (s *Store) UpsertBudget(ctx context.Context, b *models.Budget) (*models.Budget, error) {
	var out models.Budget
	err := s.pool.QueryRow(ctx,
		`INSERT INTO budgets (id, user_id, category, limit_amount, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $5)
		 ON CONFLICT (user_id, category)
		 DO UPDATE SET limit_amount = EXCLUDED.limit_amount, updated_at = EXCLUDED.updated_at
		 RETURNING id, user_id, category, limit_amount, created_at, updated_at`,
		b.ID, b.UserID, b.Category, b.Limit, b.UpdatedAt,
	).Scan(&out.ID, &out.UserID, &out.Category, &out.Limit, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert budget: %w", mapError(err))
	}
	out.CreatedAt = out.CreatedAt.UTC()
	out.UpdatedAt = out.UpdatedAt.UTC()
	return &out, nil
}

func (s *Store) ListBudgets(ctx context.Context, userID uuid.UUID) ([]models.Budget, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, category, limit_amount, created_at, updated_at
		 FROM budgets WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer rows.Close()

	budgets := []models.Budget{}
	for rows.Next() {
		var b models.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.Category, &b.Limit, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		b.CreatedAt = b.CreatedAt.UTC()
		b.UpdatedAt = b.UpdatedAt.UTC()
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate budgets: %w", err)
	}
	return budgets, nil
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, mapError(err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return &u, nil
}

// mapError translates pgx errors into store sentinels.
func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			if pgErr.ConstraintName == "users_email_key" {
				return store.ErrDuplicateEmail
			}
		case "23503": // foreign_key_violation: owner row is gone
			return store.ErrNotFound
		}
	}
	return err
}
