package config

import (
	"context"
	"strings"

	"github.com/mmdatafocus/fleetops_backend/appctx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectGuardPlugin scopes every query on a table with a project_id column to
// the request's project. Raw SQL is not covered, and contexts marked with
// ContextKeySkipProjectScope pass through unscoped.
type ProjectGuardPlugin struct{}

func NewProjectGuardPlugin() *ProjectGuardPlugin { return &ProjectGuardPlugin{} }

func (p *ProjectGuardPlugin) Name() string { return "project_guard" }

func (p *ProjectGuardPlugin) Initialize(db *gorm.DB) error {
	if err := db.Callback().Query().Before("gorm:query").Register("project_guard:query", projectGuardCallback); err != nil {
		return err
	}
	if err := db.Callback().Row().Before("gorm:row").Register("project_guard:row", projectGuardCallback); err != nil {
		return err
	}
	return nil
}

func projectGuardCallback(db *gorm.DB) {
	if db == nil || db.Statement == nil || db.Statement.Schema == nil {
		return
	}
	ctx := db.Statement.Context
	if ctx == nil || appctx.GetBool(ctx, appctx.ContextKeySkipProjectScope) {
		return
	}
	projectID := projectIdFromContext(ctx)
	if projectID == "" {
		return
	}

	hasProjectID := false
	for _, f := range db.Statement.Schema.Fields {
		if strings.EqualFold(f.DBName, "project_id") {
			hasProjectID = true
			break
		}
	}
	if !hasProjectID {
		return
	}

	// Don't duplicate an explicit project filter.
	if whereHasProjectID(db.Statement.Clauses["WHERE"]) {
		return
	}

	db.Statement.AddClause(clause.Where{
		Exprs: []clause.Expression{
			clause.Eq{
				Column: clause.Column{Table: db.Statement.Table, Name: "project_id"},
				Value:  projectID,
			},
		},
	})
}

func projectIdFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(appctx.ContextKeyProjectId).(string); ok && v != "" {
		return v
	}
	return ""
}

func whereHasProjectID(c clause.Clause) bool {
	if c.Expression == nil {
		return false
	}
	w, ok := c.Expression.(clause.Where)
	if !ok {
		return false
	}
	for _, e := range w.Exprs {
		if exprHasProjectID(e) {
			return true
		}
	}
	return false
}

func exprHasProjectID(e clause.Expression) bool {
	switch v := e.(type) {
	case clause.Eq:
		return colIsProjectID(v.Column)
	case clause.IN:
		return colIsProjectID(v.Column)
	case clause.Expr:
		return strings.Contains(strings.ToLower(v.SQL), "project_id")
	case clause.AndConditions:
		for _, x := range v.Exprs {
			if exprHasProjectID(x) {
				return true
			}
		}
	}
	return false
}

func colIsProjectID(col interface{}) bool {
	switch c := col.(type) {
	case clause.Column:
		return strings.EqualFold(c.Name, "project_id")
	case string:
		return strings.EqualFold(c, "project_id") || strings.HasSuffix(strings.ToLower(c), ".project_id")
	}
	return false
}
