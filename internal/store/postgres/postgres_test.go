package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"spendwise-backend/internal/config"
	"spendwise-backend/internal/store"
	"spendwise-backend/internal/store/storetest"
)

// TestPostgresStore needs a disposable database; every table is truncated between tests.
func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	s := &storetest.Suite{}
	s.NewStore = func() store.Store {
		ctx := context.Background()
		st, err := ConnectDSN(ctx, dsn, config.DatabaseConfig{MaxConns: 4})
		require.NoError(s.T(), err)
		_, err = st.pool.Exec(ctx, `TRUNCATE expenses, budgets, users`)
		require.NoError(s.T(), err)
		return st
	}
	suite.Run(t, s)
}
