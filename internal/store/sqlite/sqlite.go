// Package sqlite implements store.Store on an embedded SQLite file (modernc.org/sqlite).
// It backs local development and the test suites.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"spendwise-backend/internal/models"
	"spendwise-backend/internal/store"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store is a database/sql store on top of SQLite.
type Store struct {
	db *sql.DB
}

var _ store.Store = (*Store)(nil)

// Open creates the database file if needed, applies migrations and returns the store.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	if err := RunMigrations(path); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// a single writer avoids SQLITE_BUSY under concurrent requests
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Store{db: db}, nil
}

// RunMigrations applies the embedded migrations using a dedicated connection.
func RunMigrations(path string) error {
	migrateDB, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}
	defer migrateDB.Close()

	driver, err := migratesqlite.WithInstance(migrateDB, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Ping checks the database handle.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.CreatedAt.UTC(), u.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("create user: %w", mapError(err))
	}
	return nil
}

const selectUser = `SELECT id, name, email, password_hash, created_at, updated_at FROM users`

func (s *Store) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx, selectUser+` WHERE id = ?`, id))
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx, selectUser+` WHERE email = ?`, email))
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

func (s *Store) UpdateUserName(ctx context.Context, id uuid.UUID, name string) (*models.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx,
		`UPDATE users SET name = ?, updated_at = ? WHERE id = ?
		 RETURNING id, name, email, password_hash, created_at, updated_at`,
		name, time.Now().UTC(), id))
	if err != nil {
		return nil, fmt.Errorf("update user %s: %w", id, err)
	}
	return u, nil
}

func (s *Store) DeleteUser(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete user: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM expenses WHERE user_id = ?`, id); err != nil {
		return fmt.Errorf("delete expenses of %s: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM budgets WHERE user_id = ?`, id); err != nil {
		return fmt.Errorf("delete budgets of %s: %w", id, err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("delete user %s: %w", id, store.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete user: %w", err)
	}
	return nil
}

func (s *Store) CreateExpense(ctx context.Context, e *models.Expense) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO expenses (id, user_id, amount, description, category, date, payment_mode, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, e.Amount, e.Description, e.Category, e.Date.UTC(), string(e.PaymentMode), e.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("create expense: %w", mapError(err))
	}
	return nil
}

func (s *Store) ListExpenses(ctx context.Context, userID uuid.UUID) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, amount, description, category, date, payment_mode, created_at
		 FROM expenses WHERE user_id = ? ORDER BY date DESC, created_at DESC`, userID)
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
	ts := b.UpdatedAt.UTC()
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO budgets (id, user_id, category, limit_amount, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (user_id, category)
		 DO UPDATE SET limit_amount = excluded.limit_amount, updated_at = excluded.updated_at
		 RETURNING id, user_id, category, limit_amount, created_at, updated_at`,
		b.ID, b.UserID, b.Category, b.Limit, ts, ts,
	).Scan(&out.ID, &out.UserID, &out.Category, &out.Limit, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert budget: %w", mapError(err))
	}
	out.CreatedAt = out.CreatedAt.UTC()
	out.UpdatedAt = out.UpdatedAt.UTC()
	return &out, nil
}

func (s *Store) ListBudgets(ctx context.Context, userID uuid.UUID) ([]models.Budget, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, category, limit_amount, created_at, updated_at
		 FROM budgets WHERE user_id = ?`, userID)
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

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, mapError(err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return &u, nil
}

// mapError translates driver errors into store sentinels.
func mapError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return store.ErrDuplicateEmail
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return store.ErrNotFound
		}
	}
	return err
}
