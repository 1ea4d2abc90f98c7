package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"spendwise-backend/internal/store"
	"spendwise-backend/internal/store/storetest"
)

func TestSQLiteStore(t *testing.T) {
	s := &storetest.Suite{}
	s.NewStore = func() store.Store {
		st, err := Open(filepath.Join(s.T().TempDir(), "spendwise.db"))
		require.NoError(s.T(), err)
		return st
	}
	suite.Run(t, s)
}

func TestOpen_MigrationsAreRepeatable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "spendwise.db")

	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, second.Close())
}
