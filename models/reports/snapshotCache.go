package reports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/mmdatafocus/fleetops_backend/config"
	"github.com/mmdatafocus/fleetops_backend/models"
	"github.com/mmdatafocus/fleetops_backend/utils"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("fleetops-dashboard")

const snapshotLockTTL = 30 * time.Second

func snapshotCacheKey(projectId string) string {
	return "dashboard:" + projectId
}

func snapshotLockKey(projectId string) string {
	return "lock:" + snapshotCacheKey(projectId)
}

// GetProjectSnapshot returns the project's live dashboard, evaluated at the
// current instant. With ENABLE_SNAPSHOT_CACHE the result is served from and
// stored in redis; only the caller holding the per-project lock writes the
// cache.
func GetProjectSnapshot(ctx context.Context, projectId string) (*ProjectSnapshot, error) {
	if projectId == "" {
		return nil, utils.ErrorProjectRequired
	}
	ctx = utils.SetProjectIdInContext(ctx, projectId)
	ctx, span := tracer.Start(ctx, "reports.GetProjectSnapshot")
	defer span.End()
	span.SetAttributes(attribute.String("project_id", projectId))

	if !config.SnapshotCacheEnabled() {
		return computeStoredSnapshot(ctx, projectId, time.Now().UTC())
	}

	key := snapshotCacheKey(projectId)
	var cached ProjectSnapshot
	found, err := config.GetRedisObject(ctx, key, &cached)
	if err != nil {
		config.LogError(config.GetLogger(), "snapshotCache.go", "GetProjectSnapshot", "read cache", key, err)
	} else if found {
		span.SetAttributes(attribute.Bool("cache_hit", true))
		return &cached, nil
	}

	lock := obtainSnapshotLock(ctx, projectId)
	defer func() {
		if lock == nil {
			return
		}
		if err := lock.Release(ctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			config.GetLogger().WithFields(logrus.Fields{
				"field":      "GetProjectSnapshot",
				"project_id": projectId,
			}).Warn("failed to release redis lock: " + err.Error())
		}
	}()

	snap, err := computeStoredSnapshot(ctx, projectId, time.Now().UTC())
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if lock != nil {
		if err := config.SetRedisObject(ctx, key, snap, config.SnapshotCacheTTL()); err != nil {
			config.LogError(config.GetLogger(), "snapshotCache.go", "GetProjectSnapshot", "write cache", key, err)
		}
	}
	return snap, nil
}

// GetProjectSnapshotAt replays the dashboard as of now. Replays never read or
// write the cache, which only holds live passes.
func GetProjectSnapshotAt(ctx context.Context, projectId string, now time.Time) (*ProjectSnapshot, error) {
	if projectId == "" {
		return nil, utils.ErrorProjectRequired
	}
	ctx = utils.SetProjectIdInContext(ctx, projectId)
	ctx, span := tracer.Start(ctx, "reports.GetProjectSnapshotAt")
	defer span.End()
	span.SetAttributes(attribute.String("project_id", projectId))

	snap, err := computeStoredSnapshot(ctx, projectId, now)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return snap, nil
}

func computeStoredSnapshot(ctx context.Context, projectId string, now time.Time) (*ProjectSnapshot, error) {
	started := time.Now()
	records, err := models.LoadProjectRecords(ctx, projectId)
	if err != nil {
		return nil, fmt.Errorf("load project %s: %w", projectId, err)
	}
	snap := ComputeProjectSnapshot(records, now, DefaultSnapshotOptions())
	logSlowSnapshot(ctx, started, snap)
	return &snap, nil
}

// InvalidateProjectSnapshot drops the cached dashboard for a project.
func InvalidateProjectSnapshot(ctx context.Context, projectId string) error {
	if projectId == "" {
		return utils.ErrorProjectRequired
	}
	return config.RemoveRedisKey(ctx, snapshotCacheKey(projectId))
}

// obtainSnapshotLock returns nil when the lock is held elsewhere or redis is
// not ready. The caller then computes without writing the cache.
func obtainSnapshotLock(ctx context.Context, projectId string) *redislock.Lock {
	locker := config.GetRedisLock()
	if locker == nil {
		return nil
	}
	lock, err := locker.Obtain(ctx, snapshotLockKey(projectId), snapshotLockTTL, nil)
	if err != nil {
		entry := config.GetLogger().WithFields(logrus.Fields{
			"field":      "GetProjectSnapshot",
			"project_id": projectId,
		})
		if errors.Is(err, redislock.ErrNotObtained) {
			entry.Debug("snapshot lock held elsewhere; computing without cache write")
		} else {
			entry.Warn("error obtaining redis lock: " + err.Error())
		}
		return nil
	}
	return lock
}

func logSlowSnapshot(ctx context.Context, started time.Time, snap ProjectSnapshot) {
	d := time.Since(started)
	if d < config.ReportSlowThreshold() {
		return
	}
	cid, _ := utils.GetCorrelationIdFromContext(ctx)
	userId, _ := utils.GetUserIdFromContext(ctx)
	role, _ := utils.GetUserRoleFromContext(ctx)
	config.GetLogger().WithFields(logrus.Fields{
		"field":          "slow_snapshot",
		"user_id":        userId,
		"role":           role,
		"ms":             d.Milliseconds(),
		"project_id":     snap.ProjectId,
		"pass_id":        snap.PassId,
		"correlation_id": cid,
		"certificates":   snap.Certificates.Total,
		"maintenance":    snap.Maintenance.Total,
		"fuel_events":    snap.Fuel.Total,
		"crew":           snap.Crew.Total,
	}).Warn("slow dashboard pass")
}
