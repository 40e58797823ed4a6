package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/fleetops_backend/config"
	"github.com/mmdatafocus/fleetops_backend/session"
	"github.com/mmdatafocus/fleetops_backend/utils"
	"github.com/sirupsen/logrus"
)

type authString string

const bearerPrefix = "Bearer "

// AuthMiddleware requires a valid bearer token. Every rejection is reported
// to notifier, which collapses bursts of them.
func AuthMiddleware(notifier *session.UnauthorizedNotifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.Request.Header.Get("Authorization")
		if !strings.HasPrefix(auth, bearerPrefix) {
			unauthorized(c, notifier, "missing bearer token")
			return
		}
		token := strings.TrimSpace(auth[len(bearerPrefix):])

		validate, err := utils.JwtValidate(token)
		if err != nil || !validate.Valid {
			unauthorized(c, notifier, "invalid token")
			return
		}
		customClaim, ok := validate.Claims.(*utils.JwtCustomClaim)
		if !ok {
			unauthorized(c, notifier, "unexpected claims")
			return
		}

		ctx := context.WithValue(c.Request.Context(), authString("auth"), customClaim)
		ctx = utils.SetUserIdInContext(ctx, customClaim.UserID)
		ctx = utils.SetUserRoleInContext(ctx, customClaim.Role)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func unauthorized(c *gin.Context, notifier *session.UnauthorizedNotifier, reason string) {
	cid, _ := utils.GetCorrelationIdFromContext(c.Request.Context())
	config.GetLogger().WithFields(logrus.Fields{
		"field":          "AuthMiddleware",
		"path":           c.FullPath(),
		"correlation_id": cid,
	}).Info("rejecting request: " + reason)
	if notifier != nil {
		notifier.Emit()
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
}

// ProjectAccessMiddleware checks the :projectId route param against the token
// and puts the project id in the request context. It must run after
// AuthMiddleware.
func ProjectAccessMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		projectId := strings.TrimSpace(c.Param("projectId"))
		if projectId == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": utils.ErrorProjectRequired.Error()})
			return
		}
		if !CtxValue(c.Request.Context()).CanAccessProject(projectId) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Request = c.Request.WithContext(utils.SetProjectIdInContext(c.Request.Context(), projectId))
		c.Next()
	}
}

func CtxValue(ctx context.Context) *utils.JwtCustomClaim {
	raw, _ := ctx.Value(authString("auth")).(*utils.JwtCustomClaim)
	return raw
}
