package checks

import (
	"testing"

	"meeting-sync/core/database"
	"meeting-sync/feature/meetings/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	return db
}

func TestCheckSchema_NilDB(t *testing.T) {
	report, err := CheckSchema(nil, &models.CalendarEvent{})
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckSchema_Migrated(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.AutoMigrate(&models.CalendarEvent{}))

	report, err := CheckSchema(db, &models.CalendarEvent{})
	require.NoError(t, err)
	assert.Equal(t, "calendly_events", report.Table)
	assert.True(t, report.Exists)
	assert.True(t, report.Matched)
	assert.Equal(t, "ok", report.Status)
	assert.Empty(t, report.MissingColumns)
}

func TestCheckSchema_MissingTable(t *testing.T) {
	db := setupDB(t)

	report, err := CheckSchema(db, &models.CalendarEvent{})
	require.NoError(t, err)
	assert.False(t, report.Exists)
	assert.False(t, report.Matched)
	assert.Equal(t, "error", report.Status)
	assert.Contains(t, report.MissingColumns, "calendly_event_id")
	assert.Contains(t, report.MissingColumns, "event_start")
}

func TestCheckSchema_MissingColumns(t *testing.T) {
	db := setupDB(t)
	// An older deployment without the timezone and status columns.
	require.NoError(t, db.Exec("CREATE TABLE `calendly_events` (`id` integer PRIMARY KEY AUTOINCREMENT,`calendly_event_id` text NOT NULL UNIQUE,`invitee_name` text,`invitee_email` text,`event_start` datetime NOT NULL,`event_end` datetime NOT NULL)").Error)

	report, err := CheckSchema(db, &models.CalendarEvent{})
	require.NoError(t, err)
	assert.True(t, report.Exists)
	assert.False(t, report.Matched)
	assert.Equal(t, []string{"status", "timezone"}, report.MissingColumns)
}
