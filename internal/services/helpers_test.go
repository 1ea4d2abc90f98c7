package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"spendwise-backend/internal/log"
	"spendwise-backend/internal/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	st, err := sqlite.Open(filepath.Join(t.TempDir(), "services.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func newTestAuth(t *testing.T, st *sqlite.Store) *AuthService {
	t.Helper()
	return NewAuthService(st, log.Discard(), WithBcryptCost(bcrypt.MinCost))
}

func registerUser(t *testing.T, auth *AuthService, email string) uuid.UUID {
	t.Helper()
	u, err := auth.Register(context.Background(), "Test User", email, "secret123")
	require.NoError(t, err)
	return u.ID
}

type fixedCategorizer string

func (c fixedCategorizer) Categorize(context.Context, string) string { return string(c) }
