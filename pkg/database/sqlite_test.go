package database

import (
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `CREATE TABLE teachers (id TEXT PRIMARY KEY);`

func newBootstrapMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestBootstrapSchemaRunsOnEmptyDatabase(t *testing.T) {
	db, mock, cleanup := newBootstrapMock(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM sqlite_master`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("CREATE TABLE teachers").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := bootstrapSchema(db, testSchema)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBootstrapSchemaSkipsInitializedDatabase(t *testing.T) {
	db, mock, cleanup := newBootstrapMock(t)
	defer cleanup()

	// Tables already present: the schema script must not run again.
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM sqlite_master`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	err := bootstrapSchema(db, testSchema)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
