package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doitintl/hello/cmp-data-api/framework/web"
)

// Health reports service liveness for the app engine health checks.
func Health(ctx *gin.Context) error {
	return web.Respond(ctx, map[string]string{"status": "ok"}, http.StatusOK)
}
