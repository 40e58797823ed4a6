package models

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mmdatafocus/fleetops_backend/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	mock.MatchExpectationsInOrder(false)
	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func TestLoadProjectRecords_RequiresProject(t *testing.T) {
	_, err := LoadProjectRecords(context.Background(), "  ")
	assert.True(t, errors.Is(err, utils.ErrorProjectRequired))
}

func TestLoadProjectRecordsFrom(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT \\* FROM `vessels` WHERE project_id = \\? ORDER BY id").
		WithArgs("P1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "name", "status"}).
			AddRow("V1", "P1", "Aurora", "ACTIVE").
			AddRow("V2", "P1", "Borealis", "ACTIVE"))
	mock.ExpectQuery("SELECT \\* FROM `certificates` WHERE project_id = \\? ORDER BY id").
		WithArgs("P1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "asset_id", "asset_name", "name", "status"}).
			AddRow("C1", "P1", "V1", "Aurora", "Safety Management", "VALID"))
	mock.ExpectQuery("SELECT \\* FROM `maintenance_tasks` WHERE project_id = \\? ORDER BY id").
		WithArgs("P1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "asset_id", "title", "status", "priority"}).
			AddRow("M1", "P1", "V2", "Overhaul", "OPEN", "HIGH"))
	mock.ExpectQuery("SELECT \\* FROM `fuel_events` WHERE project_id = \\? ORDER BY id").
		WithArgs("P1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "asset_id", "event_type", "fuel_type", "quantity", "unit"}).
			AddRow("F1", "P1", "V1", "BUNKERED", "VLSFO", "120.500", "MT"))
	mock.ExpectQuery("SELECT \\* FROM `crew_members` WHERE project_id = \\? ORDER BY id").
		WithArgs("P1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "asset_id", "full_name", "status"}))

	records, err := loadProjectRecordsFrom(context.Background(), db, "P1")
	require.NoError(t, err)

	assert.Equal(t, "P1", records.ProjectId)
	assert.Len(t, records.Vessels, 2)
	assert.Equal(t, "Borealis", records.Vessels[1].Name)
	require.Len(t, records.Certificates, 1)
	assert.Equal(t, "V1", records.Certificates[0].VesselId)
	require.Len(t, records.Fuel, 1)
	assert.Equal(t, "120.500", records.Fuel[0].Quantity)
	assert.Empty(t, records.Crew)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadProjectRecordsFrom_PropagatesQueryError(t *testing.T) {
	db, mock := newMockDB(t)

	for _, table := range []string{"vessels", "maintenance_tasks", "fuel_events", "crew_members"} {
		mock.ExpectQuery("SELECT \\* FROM `" + table + "`").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
	}
	mock.ExpectQuery("SELECT \\* FROM `certificates`").
		WillReturnError(errors.New("connection reset"))

	_, err := loadProjectRecordsFrom(context.Background(), db, "P1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load certificates")
}
