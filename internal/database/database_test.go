package database

import (
	"testing"

	"simpleadvert/internal/config"
	"simpleadvert/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig() *config.Config {
	return &config.Config{
		Env:                      "test",
		DBDriver:                 "sqlite",
		DBSQLitePath:             ":memory:",
		DBConnMaxLifetimeMinutes: 5,
	}
}

func TestConnect_SQLiteMigratesSchema(t *testing.T) {
	db, err := Connect(sqliteConfig())
	require.NoError(t, err)

	m := db.Migrator()
	for _, model := range PersistentModels() {
		assert.True(t, m.HasTable(model), "missing table for %T", model)
	}
	assert.True(t, m.HasIndex(&models.Advert{}, "uq_advert_description"))
	assert.True(t, m.HasConstraint(&models.Feedback{}, "Advert"))
	assert.True(t, m.HasConstraint(&models.Complaint{}, "Advert"))
}

func TestDialector_SelectsDriver(t *testing.T) {
	assert.Equal(t, "sqlite", Dialector(sqliteConfig()).Name())

	pg := &config.Config{DBDriver: "postgres", DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "ads"}
	assert.Equal(t, "postgres", Dialector(pg).Name())
}
