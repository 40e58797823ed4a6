package config

import (
	"context"
	"strings"
	"testing"

	"github.com/mmdatafocus/fleetops_backend/appctx"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type guardedRow struct {
	ID        string
	ProjectId string
}

type unguardedRow struct {
	ID string
}

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "fleet:fleet@tcp(127.0.0.1:3306)/fleet?parseTime=true",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	if err := conn.Use(NewProjectGuardPlugin()); err != nil {
		t.Fatalf("install plugin: %v", err)
	}
	return conn
}

func TestProjectGuardScopesQueries(t *testing.T) {
	conn := dryRunDB(t)
	ctx := appctx.Set(context.Background(), appctx.ContextKeyProjectId, "P1")

	var rows []guardedRow
	stmt := conn.WithContext(ctx).Find(&rows).Statement
	sql := stmt.SQL.String()
	if !strings.Contains(sql, "`project_id` = ?") {
		t.Fatalf("expected project filter, got %s", sql)
	}
	if len(stmt.Vars) != 1 || stmt.Vars[0] != "P1" {
		t.Fatalf("expected vars [P1], got %v", stmt.Vars)
	}
}

func TestProjectGuardKeepsExplicitFilter(t *testing.T) {
	conn := dryRunDB(t)
	ctx := appctx.Set(context.Background(), appctx.ContextKeyProjectId, "P1")

	var rows []guardedRow
	sql := conn.WithContext(ctx).Where("project_id = ?", "P1").Find(&rows).Statement.SQL.String()
	if strings.Count(sql, "project_id") != 1 {
		t.Fatalf("expected a single project filter, got %s", sql)
	}
}

func TestProjectGuardSkipsUnscopedQueries(t *testing.T) {
	conn := dryRunDB(t)

	var rows []guardedRow
	if sql := conn.WithContext(context.Background()).Find(&rows).Statement.SQL.String(); strings.Contains(sql, "project_id") {
		t.Fatalf("no project in context should not filter, got %s", sql)
	}

	ctx := appctx.Set(context.Background(), appctx.ContextKeyProjectId, "P1")
	var other []unguardedRow
	if sql := conn.WithContext(ctx).Find(&other).Statement.SQL.String(); strings.Contains(sql, "project_id") {
		t.Fatalf("tables without project_id should not filter, got %s", sql)
	}
}

func TestProjectGuardHonoursSkipFlag(t *testing.T) {
	conn := dryRunDB(t)
	ctx := appctx.Set(context.Background(), appctx.ContextKeyProjectId, "P1")
	ctx = appctx.Set(ctx, appctx.ContextKeySkipProjectScope, true)

	var rows []guardedRow
	if sql := conn.WithContext(ctx).Find(&rows).Statement.SQL.String(); strings.Contains(sql, "project_id") {
		t.Fatalf("skip flag should bypass the guard, got %s", sql)
	}

	ctx = appctx.Set(ctx, appctx.ContextKeySkipProjectScope, false)
	if sql := conn.WithContext(ctx).Find(&rows).Statement.SQL.String(); !strings.Contains(sql, "`project_id` = ?") {
		t.Fatalf("a false skip flag must keep the guard, got %s", sql)
	}
}
