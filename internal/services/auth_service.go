package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"spendwise-backend/internal/log"
	"spendwise-backend/internal/models"
	"spendwise-backend/internal/store"
)

const (
	minPasswordLength = 6
	// bcrypt rejects longer inputs
	maxPasswordBytes  = 72
)

// dummyHash stands in for the stored hash when the email is unknown.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("spendwise-dummy-password"), bcrypt.DefaultCost)

// AuthService manages credentials and account lifecycle.
type AuthService struct {
	users      store.UserStore
	bcryptCost int
	compare    func(hash, password []byte) error
	now        func() time.Time
	logger     *slog.Logger
}

// AuthOption customizes an AuthService.
type AuthOption func(*AuthService)

// WithBcryptCost overrides bcrypt.DefaultCost.
func WithBcryptCost(cost int) AuthOption {
	return func(s *AuthService) { s.bcryptCost = cost }
}

// WithAuthClock overrides time.Now.
func WithAuthClock(now func() time.Time) AuthOption {
	return func(s *AuthService) { s.now = now }
}

func NewAuthService(users store.UserStore, logger *slog.Logger, opts ...AuthOption) *AuthService {
	s := &AuthService{
		users:      users,
		bcryptCost: bcrypt.DefaultCost,
		compare:    bcrypt.CompareHashAndPassword,
		now:        time.Now,
		logger:     log.WithComponent(logger, log.ComponentAuth),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates an account and returns the new user.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	if name == "" {
		return nil, invalid("name", "is required")
	}
	if email == "" {
		return nil, invalid("email", "is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, invalid("email", "is not a valid address")
	}
	if len(password) < minPasswordLength {
		return nil, invalid("password", "must be at least %d characters", minPasswordLength)
	}
	if len(password) > maxPasswordBytes {
		return nil, invalid("password", "must be at most %d bytes", maxPasswordBytes)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC()
	user := &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "user registered", slog.String(log.FieldUserID, user.ID.String()))
	return user, nil
}

// Verify checks an email/password pair. Unknown email and wrong password
// return the same ErrInvalidCredential.
func (s *AuthService) Verify(ctx context.Context, email, password string) (*models.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, invalid("credentials", "email and password are required")
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		_ = s.compare(dummyHash, []byte(password))
		return nil, ErrInvalidCredential
	}
	if err != nil {
		return nil, err
	}

	if err := s.compare([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredential
	}
	return user, nil
}

// GetUser loads a user by id.
func (s *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.users.GetUserByID(ctx, id)
}

// UpdateName changes the display name. It is the only mutable user field.
func (s *AuthService) UpdateName(ctx context.Context, id uuid.UUID, name string) (*models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("name", "is required")
	}
	return s.users.UpdateUserName(ctx, id, name)
}

// DeleteAccount removes the user together with all expenses and budgets.
func (s *AuthService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	if err := s.users.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "account deleted", slog.String(log.FieldUserID, id.String()))
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
