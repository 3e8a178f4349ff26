package database_test

import (
	"testing"

	"healthtrack/internal/database"
	"healthtrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLiteMigratesSchema(t *testing.T) {
	db, err := database.Open(database.DriverSQLite, "file::memory:")
	require.NoError(t, err)
	defer database.Close(db)

	assert.True(t, db.Migrator().HasTable(&models.User{}))
	assert.True(t, db.Migrator().HasTable(&models.DailyData{}))
	assert.True(t, db.Migrator().HasTable(&models.MedicalHistory{}))
	assert.True(t, db.Migrator().HasIndex(&models.DailyData{}, "idx_daily_data_user_date"))
	assert.True(t, db.Migrator().HasColumn(&models.DailyData{}, "entry_date"))
	assert.True(t, db.Migrator().HasColumn(&models.MedicalHistory{}, "condition_name"))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := database.Open("mysql", "whatever")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}
