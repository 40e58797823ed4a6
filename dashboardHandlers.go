package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/fleetops_backend/config"
	"github.com/mmdatafocus/fleetops_backend/models"
	"github.com/mmdatafocus/fleetops_backend/models/reports"
	"github.com/mmdatafocus/fleetops_backend/utils"
)

var errInvalidNow = errors.New("invalid now")

// requestNow reads the optional ?now=<ISO timestamp> used to replay a
// dashboard as of another instant. It returns nil when the query is absent.
func requestNow(c *gin.Context) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query("now"))
	if raw == "" {
		return nil, nil
	}
	t := utils.ParseTimestamp(&raw)
	if t == nil {
		return nil, fmt.Errorf("%w %q", errInvalidNow, raw)
	}
	return t, nil
}

// storedSnapshot serves live requests through the cache and replays directly.
func storedSnapshot(c *gin.Context, projectId string) (*reports.ProjectSnapshot, error) {
	asOf, err := requestNow(c)
	if err != nil {
		return nil, err
	}
	if asOf == nil {
		return reports.GetProjectSnapshot(c.Request.Context(), projectId)
	}
	return reports.GetProjectSnapshotAt(c.Request.Context(), projectId, *asOf)
}

func projectIdFrom(c *gin.Context) string {
	projectId, _ := utils.GetProjectIdFromContext(c.Request.Context())
	return projectId
}

func snapshotError(c *gin.Context, funcName string, projectId string, err error) {
	if errors.Is(err, utils.ErrorProjectRequired) || errors.Is(err, errInvalidNow) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	config.LogError(config.GetLogger(), "dashboardHandlers.go", funcName, "compute dashboard", projectId, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute dashboard"})
}

func getDashboardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		projectId := projectIdFrom(c)
		snap, err := storedSnapshot(c, projectId)
		if err != nil {
			snapshotError(c, "getDashboardHandler", projectId, err)
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

func refreshDashboardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		projectId := projectIdFrom(c)
		if err := reports.InvalidateProjectSnapshot(c.Request.Context(), projectId); err != nil {
			config.LogError(config.GetLogger(), "dashboardHandlers.go", "refreshDashboardHandler", "invalidate cache", projectId, err)
		}
		snap, err := reports.GetProjectSnapshot(c.Request.Context(), projectId)
		if err != nil {
			snapshotError(c, "refreshDashboardHandler", projectId, err)
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

func exportDashboardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		projectId := projectIdFrom(c)
		snap, err := storedSnapshot(c, projectId)
		if err != nil {
			snapshotError(c, "exportDashboardHandler", projectId, err)
			return
		}

		filename := fmt.Sprintf("dashboard-%s-%s.xlsx", projectId, snap.ComputedAt.Format("20060102"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Status(http.StatusOK)
		if err := reports.WriteSnapshotExcel(c.Writer, *snap); err != nil {
			_ = c.Error(err)
		}
	}
}

func computeDashboardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		asOf, err := requestNow(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		now := time.Now().UTC()
		if asOf != nil {
			now = *asOf
		}
		projectId := projectIdFrom(c)

		records, err := models.DecodeProjectRecords(c.Request.Body, config.StrictRecordTags())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if records.ProjectId == "" {
			records.ProjectId = projectId
		}
		if records.ProjectId != projectId {
			c.JSON(http.StatusBadRequest, gin.H{"error": "projectId does not match the route"})
			return
		}

		snap := reports.ComputeProjectSnapshot(records, now, reports.DefaultSnapshotOptions())
		c.JSON(http.StatusOK, snap)
	}
}
