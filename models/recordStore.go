package models

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmdatafocus/fleetops_backend/config"
	"github.com/mmdatafocus/fleetops_backend/utils"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// LoadProjectRecords reads every collection of one project. Rows come back in
// id order so the stable sorts downstream are reproducible.
func LoadProjectRecords(ctx context.Context, projectId string) (*ProjectRecords, error) {
	projectId = strings.TrimSpace(projectId)
	if projectId == "" {
		return nil, utils.ErrorProjectRequired
	}
	db := config.GetDB()
	if db == nil {
		return nil, fmt.Errorf("load project records: database not connected")
	}
	return loadProjectRecordsFrom(ctx, db, projectId)
}

func loadProjectRecordsFrom(ctx context.Context, db *gorm.DB, projectId string) (*ProjectRecords, error) {
	ctx = utils.SetProjectIdInContext(ctx, projectId)
	records := ProjectRecords{ProjectId: projectId}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return wrapLoad("vessels", loadScoped(gctx, db, projectId, &records.Vessels)) })
	g.Go(func() error { return wrapLoad("certificates", loadScoped(gctx, db, projectId, &records.Certificates)) })
	g.Go(func() error { return wrapLoad("maintenance", loadScoped(gctx, db, projectId, &records.Maintenance)) })
	g.Go(func() error { return wrapLoad("fuel events", loadScoped(gctx, db, projectId, &records.Fuel)) })
	g.Go(func() error { return wrapLoad("crew", loadScoped(gctx, db, projectId, &records.Crew)) })
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &records, nil
}

func loadScoped[T any](ctx context.Context, db *gorm.DB, projectId string, dest *[]T) error {
	return db.WithContext(ctx).
		Where("project_id = ?", projectId).
		Order("id").
		Find(dest).Error
}

func wrapLoad(what string, err error) error {
	if err != nil {
		return fmt.Errorf("load %s: %w", what, err)
	}
	return nil
}
