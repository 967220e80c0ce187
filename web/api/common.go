// Package api implements the JSON endpoints the builder client consumes.
package api

import (
	"net/http"

	"pageforge/config"
	"pageforge/models"
	"pageforge/views"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// cfg holds the runtime configuration handlers need (public URL,
// uploads dir, SMTP). Set once at server construction.
var cfg config.Config

// Init stores the runtime configuration for handlers.
func Init(c config.Config) {
	cfg = c
}

// APIResponse provides a consistent JSON response structure for all API endpoints.
// Success responses include data, error responses include an error message.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// writeSuccess sends a successful JSON response with data.
func writeSuccess(ctx rweb.Context, status int, data interface{}) error {
	ctx.SetStatus(status)
	return ctx.WriteJSON(APIResponse{Success: true, Data: data})
}

// writeError sends an error JSON response.
func writeError(ctx rweb.Context, status int, message string) error {
	ctx.SetStatus(status)
	return ctx.WriteJSON(APIResponse{Success: false, Error: message})
}

// isAuthenticated reports whether JWTAuthMiddleware validated a token.
func isAuthenticated(ctx rweb.Context) bool {
	authenticated, _ := ctx.Get("authenticated").(bool)
	return authenticated
}

// Banner handles GET /api/
func Banner(ctx rweb.Context) error {
	return ctx.WriteJSON(map[string]string{"message": "PageForge Landing Page Builder API"})
}

// HealthCheck returns the health status of the application
func HealthCheck(ctx rweb.Context) error {
	return ctx.WriteJSON(map[string]interface{}{
		"status":  "healthy",
		"service": "pageforge",
		"version": "1.0.0",
	})
}

// Home renders the pages index.
func Home(ctx rweb.Context) error {
	pages, err := models.ListPages()
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to list pages"), "home page")
		pages = nil
	}
	ctx.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
	return ctx.WriteHTML(views.RenderHome(pages))
}

// Preview handles GET /preview/:id - serves the rendered page directly.
// This is the URL iframe embeds point at.
func Preview(ctx rweb.Context) error {
	id := ctx.Request().Param("id")

	page, err := models.GetPageByID(id)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to get page"), "preview")
		return writeError(ctx, http.StatusInternalServerError, "database error")
	}
	if page == nil {
		ctx.SetStatus(http.StatusNotFound)
		return ctx.WriteHTML("<h1>404 - Page Not Found</h1>")
	}

	ctx.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
	return ctx.WriteHTML(views.ExportHTML(page))
}
