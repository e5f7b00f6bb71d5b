package database

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	ctx := context.Background()

	migrations := fstest.MapFS{
		"migrations/000001_first.up.sql":   {Data: []byte("CREATE TABLE a (id INT);")},
		"migrations/000001_first.down.sql": {Data: []byte("DROP TABLE a;")},
		"migrations/000002_second.up.sql":  {Data: []byte("CREATE TABLE b (id INT);")},
	}

	t.Run("applies unapplied migrations in order", func(t *testing.T) {
		mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer func() {
			_ = mockDB.Close()
		}()
		db := sqlx.NewDb(mockDB, "sqlmock")

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT version FROM schema_migrations ORDER BY version").
			WillReturnRows(sqlmock.NewRows([]string{"version"}).
				AddRow("migrations/000001_first.up.sql"))
		mock.ExpectExec("CREATE TABLE b").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO schema_migrations").
			WithArgs("migrations/000002_second.up.sql").
			WillReturnResult(sqlmock.NewResult(0, 1))

		count, err := Migrate(ctx, db, migrations)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no-op when everything is applied", func(t *testing.T) {
		mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer func() {
			_ = mockDB.Close()
		}()
		db := sqlx.NewDb(mockDB, "sqlmock")

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT version FROM schema_migrations ORDER BY version").
			WillReturnRows(sqlmock.NewRows([]string{"version"}).
				AddRow("migrations/000001_first.up.sql").
				AddRow("migrations/000002_second.up.sql"))

		count, err := Migrate(ctx, db, migrations)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
