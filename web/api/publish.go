package api

import (
	"encoding/json"
	"net/http"

	"pageforge/models"
	"pageforge/publish"
	"pageforge/views"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// FTPUpload handles POST /api/pages/:id/ftp-upload
// Renders the page and pushes it to the caller's FTP server.
// Requires authentication; FTP credentials are used once, never stored.
func FTPUpload(ctx rweb.Context) error {
	if !isAuthenticated(ctx) {
		return writeError(ctx, http.StatusUnauthorized, "authentication required")
	}

	id := ctx.Request().Param("id")

	var req publish.FTPRequest
	if err := json.Unmarshal(ctx.Request().Body(), &req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid JSON body")
	}
	if req.Host == "" {
		return writeError(ctx, http.StatusBadRequest, "ftp_host is required")
	}

	page, err := models.GetPageByID(id)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to get page"), "ftp upload")
		return writeError(ctx, http.StatusInternalServerError, "database error")
	}
	if page == nil {
		return writeError(ctx, http.StatusNotFound, "page not found")
	}

	filename := exportFilename(page.Title) + ".html"
	location, err := publish.UploadHTML(req, filename, views.ExportHTML(page))
	if err != nil {
		logger.LogErr(serr.Wrap(err, "FTP upload failed"), "page_id", id, "host", req.Host)
		return writeError(ctx, http.StatusInternalServerError, "FTP upload failed: "+err.Error())
	}

	logger.Info("Page uploaded via FTP", "page_id", id, "location", location)
	return writeSuccess(ctx, http.StatusOK, map[string]string{
		"message": "Page uploaded successfully to " + location,
	})
}

// EmailPage handles POST /api/pages/:id/email
// Sends the rendered page as an attachment through the configured SMTP
// server. Requires authentication.
func EmailPage(ctx rweb.Context) error {
	if !isAuthenticated(ctx) {
		return writeError(ctx, http.StatusUnauthorized, "authentication required")
	}

	id := ctx.Request().Param("id")

	var req publish.EmailRequest
	if err := json.Unmarshal(ctx.Request().Body(), &req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid JSON body")
	}
	if req.To == "" {
		return writeError(ctx, http.StatusBadRequest, "to is required")
	}

	page, err := models.GetPageByID(id)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to get page"), "email page")
		return writeError(ctx, http.StatusInternalServerError, "database error")
	}
	if page == nil {
		return writeError(ctx, http.StatusNotFound, "page not found")
	}

	smtp := publish.SMTPConfig{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPass,
		From: cfg.SMTPFrom,
	}

	filename := exportFilename(page.Title) + ".html"
	if err := publish.EmailHTML(smtp, req, filename, views.ExportHTML(page)); err != nil {
		logger.LogErr(serr.Wrap(err, "email delivery failed"), "page_id", id, "to", req.To)
		return writeError(ctx, http.StatusInternalServerError, "email delivery failed: "+err.Error())
	}

	logger.Info("Page emailed", "page_id", id, "to", req.To)
	return writeSuccess(ctx, http.StatusOK, map[string]string{
		"message": "Page sent to " + req.To,
	})
}
