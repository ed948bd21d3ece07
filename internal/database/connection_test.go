package database_test

import (
	"context"
	"testing"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/localnerve/reviewsdb/internal/config"
	"github.com/localnerve/reviewsdb/internal/database"
	"github.com/localnerve/reviewsdb/internal/models"
	"github.com/localnerve/reviewsdb/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMySQLDSNRoundTrips(t *testing.T) {
	cfg := &config.Config{
		DBType:     "mysql",
		DBHost:     "db.internal",
		DBPort:     "3306",
		DBDatabase: "reviewsdb",
		DBUser:     "app",
		DBPassword: "p@ss:word",
	}

	parsed, err := gomysql.ParseDSN(database.MySQLDSN(cfg))
	require.NoError(t, err)
	assert.Equal(t, "app", parsed.User)
	assert.Equal(t, "p@ss:word", parsed.Passwd)
	assert.Equal(t, "db.internal:3306", parsed.Addr)
	assert.Equal(t, "reviewsdb", parsed.DBName)
	assert.True(t, parsed.ParseTime)
}

func TestSQLiteDSNEnablesForeignKeys(t *testing.T) {
	assert.Equal(t, "app.db?_foreign_keys=on", database.SQLiteDSN("app.db"))
	assert.Equal(t, "file:app.db?cache=shared&_foreign_keys=on", database.SQLiteDSN("file:app.db?cache=shared"))
	assert.Equal(t, "app.db?_fk=1", database.SQLiteDSN("app.db?_fk=1"))
}

func TestDialectorRejectsUnknownType(t *testing.T) {
	_, err := database.Dialector(&config.Config{DBType: "oracle"})
	assert.Error(t, err)

	for _, dbType := range []string{"mysql", "mariadb", "postgres", "sqlite", "sqlserver", "mssql"} {
		d, err := database.Dialector(&config.Config{DBType: dbType, DBHost: "h", DBPort: "1", DBDatabase: "d"})
		require.NoError(t, err, dbType)
		assert.NotNil(t, d, dbType)
	}
}

func TestAutoMigrateCreatesTables(t *testing.T) {
	db := testutil.OpenSQLite(t)
	for _, table := range []string{"customers", "items", "reviews", "users"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.NoError(t, database.Ping(context.Background(), db))
}

func TestForeignKeyCascadeInStorage(t *testing.T) {
	db := testutil.OpenSQLite(t)

	customer := &models.Customer{Name: "Ada"}
	item := &models.Item{Name: "Lamp", Price: 3}
	require.NoError(t, db.Create(customer).Error)
	require.NoError(t, db.Create(item).Error)
	require.NoError(t, db.Create(&models.Review{Comment: "ok", CustomerID: &customer.ID, ItemID: &item.ID}).Error)

	// A plain row delete relies on the ON DELETE CASCADE constraint alone.
	require.NoError(t, db.Exec("DELETE FROM customers WHERE id = ?", customer.ID).Error)

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Count(&count).Error)
	assert.Zero(t, count)
}
