// seed-records loads a records JSON file into the database so the dashboard
// endpoints have something to read in development.
//
// Usage:
//
//	DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... go run ./cmd/seed-records -input records.json -project P1
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mmdatafocus/fleetops_backend/config"
	"github.com/mmdatafocus/fleetops_backend/models"
	"github.com/mmdatafocus/fleetops_backend/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	input := flag.String("input", "", "Path to a records JSON file.")
	projectID := flag.String("project", "", "Project id to store the records under (overrides the file's projectId).")
	flag.Parse()

	if strings.TrimSpace(*input) == "" {
		fmt.Fprintln(os.Stderr, "-input is required")
		os.Exit(2)
	}
	f, err := os.Open(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open input: %v\n", err)
		os.Exit(1)
	}
	records, err := models.DecodeProjectRecords(f, true)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to decode records: %v\n", err)
		os.Exit(1)
	}
	if id := strings.TrimSpace(*projectID); id != "" {
		records.ProjectId = id
	}
	if records.ProjectId == "" {
		fmt.Fprintln(os.Stderr, "no project id: pass -project or set projectId in the file")
		os.Exit(2)
	}

	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil). Set DB_* env vars.")
		os.Exit(1)
	}
	models.MigrateTable()

	ctx := utils.SetProjectIdInContext(context.Background(), records.ProjectId)
	assignProject(records)

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		upsert := tx.Clauses(clause.OnConflict{UpdateAll: true})
		if err := createAll(upsert, records.Vessels); err != nil {
			return fmt.Errorf("vessels: %w", err)
		}
		if err := createAll(upsert, records.Certificates); err != nil {
			return fmt.Errorf("certificates: %w", err)
		}
		if err := createAll(upsert, records.Maintenance); err != nil {
			return fmt.Errorf("maintenance: %w", err)
		}
		if err := createAll(upsert, records.Fuel); err != nil {
			return fmt.Errorf("fuel events: %w", err)
		}
		if err := createAll(upsert, records.Crew); err != nil {
			return fmt.Errorf("crew: %w", err)
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to seed project %s: %v\n", records.ProjectId, err)
		os.Exit(1)
	}

	fmt.Printf("seeded project %s: %d vessels, %d certificates, %d maintenance tasks, %d fuel events, %d crew\n",
		records.ProjectId, len(records.Vessels), len(records.Certificates), len(records.Maintenance), len(records.Fuel), len(records.Crew))

	var fleetVessels int64
	if err := db.WithContext(utils.WithoutProjectScope(ctx)).Model(&models.Vessel{}).Count(&fleetVessels).Error; err != nil {
		fmt.Fprintf(os.Stderr, "failed to count vessels: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("database now holds %d vessels across all projects\n", fleetVessels)
}

func createAll[T any](db *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return db.CreateInBatches(rows, 200).Error
}

func assignProject(records *models.ProjectRecords) {
	for i := range records.Vessels {
		records.Vessels[i].ProjectId = records.ProjectId
	}
	for i := range records.Certificates {
		records.Certificates[i].ProjectId = records.ProjectId
	}
	for i := range records.Maintenance {
		records.Maintenance[i].ProjectId = records.ProjectId
	}
	for i := range records.Fuel {
		records.Fuel[i].ProjectId = records.ProjectId
	}
	for i := range records.Crew {
		records.Crew[i].ProjectId = records.ProjectId
	}
}
