package repositories

import (
	"testing"
	"time"

	"ledger/internal/config"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open(config.DBConfig{
		Client:          "sqlite",
		URL:             ":memory:",
		MaxIdleConns:    1,
		MaxOpenConns:    1,
		ConnMaxLifetime: time.Hour,
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		_ = Close(db)
	})
	return db
}
