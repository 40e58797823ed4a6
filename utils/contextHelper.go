package utils

import (
	"context"

	"github.com/mmdatafocus/fleetops_backend/appctx"
)

var (
	ContextKeyProjectId     = appctx.ContextKeyProjectId
	ContextKeyUserId        = appctx.ContextKeyUserId
	ContextKeyUserRole      = appctx.ContextKeyUserRole
	ContextKeyCorrelationId = appctx.ContextKeyCorrelationId
)

// WithoutProjectScope lets queries made with ctx skip the project guard.
// Only maintenance tools use it.
func WithoutProjectScope(ctx context.Context) context.Context {
	return appctx.Set(ctx, appctx.ContextKeySkipProjectScope, true)
}

func GetProjectIdFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyProjectId)
}

func GetUserIdFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyUserId)
}

func GetUserRoleFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyUserRole)
}

func GetCorrelationIdFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyCorrelationId)
}

func SetProjectIdInContext(ctx context.Context, projectId string) context.Context {
	return appctx.Set(ctx, ContextKeyProjectId, projectId)
}

func SetUserIdInContext(ctx context.Context, userId string) context.Context {
	return appctx.Set(ctx, ContextKeyUserId, userId)
}

func SetUserRoleInContext(ctx context.Context, role string) context.Context {
	return appctx.Set(ctx, ContextKeyUserRole, role)
}

func SetCorrelationIdInContext(ctx context.Context, correlationId string) context.Context {
	return appctx.Set(ctx, ContextKeyCorrelationId, correlationId)
}
