package api

import (
	"encoding/json"
	"html"
	"net/http"
	"strconv"
	"strings"

	"pageforge/models"
	"pageforge/publish"
	"pageforge/views"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// exportRequest selects the export flavor. Default is html.
type exportRequest struct {
	Format string `json:"format"`
}

// ExportPage handles POST /api/pages/:id/export
// Formats: html (standalone document), json (raw page), iframe (wrapper
// document embedding the public preview). The response is served as a
// file attachment named after the page title.
func ExportPage(ctx rweb.Context) error {
	id := ctx.Request().Param("id")

	var req exportRequest
	if body := ctx.Request().Body(); len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			return writeError(ctx, http.StatusBadRequest, "invalid JSON body")
		}
	}
	if req.Format == "" {
		req.Format = "html"
	}

	page, err := models.GetPageByID(id)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to get page"), "export")
		return writeError(ctx, http.StatusInternalServerError, "database error")
	}
	if page == nil {
		return writeError(ctx, http.StatusNotFound, "page not found")
	}

	base := exportFilename(page.Title)

	switch req.Format {
	case "html":
		ctx.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
		ctx.Response().SetHeader("Content-Disposition", "attachment; filename="+base+".html")
		return ctx.WriteHTML(views.ExportHTML(page))

	case "json":
		ctx.Response().SetHeader("Content-Disposition", "attachment; filename="+base+".json")
		return ctx.WriteJSON(page.ToOutput())

	case "iframe":
		embed, err := publish.EmbedCode(cfg.PublicURL, page.ID, publish.EmbedIframe)
		if err != nil {
			return writeError(ctx, http.StatusInternalServerError, "failed to build embed")
		}
		doc := "<!DOCTYPE html>\n<html><head><title>" + html.EscapeString(page.Title) + "</title></head><body>\n" +
			embed + "\n</body></html>\n"
		ctx.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
		ctx.Response().SetHeader("Content-Disposition", "attachment; filename="+base+"_embed.html")
		return ctx.WriteHTML(doc)
	}

	return writeError(ctx, http.StatusBadRequest, "unsupported export format: "+req.Format)
}

// embedRequest selects the embed snippet flavor.
type embedRequest struct {
	Format string `json:"format"`
}

// EmbedCode handles POST /api/pages/:id/embed-code
// Formats: iframe, javascript, html.
func EmbedCode(ctx rweb.Context) error {
	id := ctx.Request().Param("id")

	var req embedRequest
	if body := ctx.Request().Body(); len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			return writeError(ctx, http.StatusBadRequest, "invalid JSON body")
		}
	}
	if req.Format == "" {
		req.Format = "iframe"
	}

	page, err := models.GetPageByID(id)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to get page"), "embed code")
		return writeError(ctx, http.StatusInternalServerError, "database error")
	}
	if page == nil {
		return writeError(ctx, http.StatusNotFound, "page not found")
	}

	code, err := publish.EmbedCode(cfg.PublicURL, page.ID, publish.EmbedFormat(req.Format))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	return writeSuccess(ctx, http.StatusOK, map[string]string{"embed_code": code})
}

// ListRevisions handles GET /api/pages/:id/revisions
func ListRevisions(ctx rweb.Context) error {
	id := ctx.Request().Param("id")

	page, err := models.GetPageByID(id)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to get page"), "revisions")
		return writeError(ctx, http.StatusInternalServerError, "database error")
	}
	if page == nil {
		return writeError(ctx, http.StatusNotFound, "page not found")
	}

	revisions, err := models.ListRevisions(id)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to list revisions"), "page_id", id)
		return writeError(ctx, http.StatusInternalServerError, "database error")
	}
	if revisions == nil {
		revisions = []models.RevisionMeta{}
	}

	return writeSuccess(ctx, http.StatusOK, revisions)
}

// DiffRevisions handles GET /api/pages/:id/revisions/:from/diff/:to
// Returns a line diff between two revision snapshots.
func DiffRevisions(ctx rweb.Context) error {
	id := ctx.Request().Param("id")

	fromSeq, err := strconv.Atoi(ctx.Request().Param("from"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid from revision")
	}
	toSeq, err := strconv.Atoi(ctx.Request().Param("to"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid to revision")
	}

	diff, err := models.DiffRevisions(id, fromSeq, toSeq)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return writeError(ctx, http.StatusNotFound, "revision not found")
		}
		logger.LogErr(serr.Wrap(err, "failed to diff revisions"), "page_id", id)
		return writeError(ctx, http.StatusInternalServerError, "failed to diff revisions")
	}

	return writeSuccess(ctx, http.StatusOK, map[string]interface{}{
		"from": fromSeq,
		"to":   toSeq,
		"diff": diff,
	})
}

// exportFilename turns a page title into a safe download base name.
func exportFilename(title string) string {
	name := strings.ReplaceAll(title, " ", "_")
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		}
		return -1
	}, name)
	if name == "" {
		name = "page"
	}
	return name
}
