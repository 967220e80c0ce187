package api

import (
	"encoding/json"
	"net/http"

	"pageforge/models"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// CreatePage handles POST /api/pages
// Empty title gets the incrementing "Page N" default; background color
// and theme are persisted at creation time.
func CreatePage(ctx rweb.Context) error {
	var input models.PageInput
	if err := json.Unmarshal(ctx.Request().Body(), &input); err != nil {
		logger.LogErr(serr.Wrap(err, "failed to decode request body"), "invalid JSON")
		return writeError(ctx, http.StatusBadRequest, "invalid JSON body")
	}

	page, err := models.CreatePage(input)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to create page"), "database error")
		return writeError(ctx, http.StatusInternalServerError, "failed to create page")
	}

	logger.Info("Page created", "id", page.ID, "title", page.Title)
	return writeSuccess(ctx, http.StatusCreated, page.ToOutput())
}

// ListPages handles GET /api/pages
func ListPages(ctx rweb.Context) error {
	pages, err := models.ListPages()
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to list pages"), "database error")
		return writeError(ctx, http.StatusInternalServerError, "database error")
	}

	outputs := make([]models.PageOutput, len(pages))
	for i := range pages {
		outputs[i] = pages[i].ToOutput()
	}
	return writeSuccess(ctx, http.StatusOK, outputs)
}

// GetPage handles GET /api/pages/:id
func GetPage(ctx rweb.Context) error {
	id := ctx.Request().Param("id")

	page, err := models.GetPageByID(id)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to get page"), "database error")
		return writeError(ctx, http.StatusInternalServerError, "database error")
	}
	if page == nil {
		return writeError(ctx, http.StatusNotFound, "page not found")
	}

	return writeSuccess(ctx, http.StatusOK, page.ToOutput())
}

// UpdatePage handles PUT /api/pages/:id
// Accepts a partial body; absent fields are left untouched. The
// persisted copy comes back so the client can adopt it wholesale.
func UpdatePage(ctx rweb.Context) error {
	id := ctx.Request().Param("id")

	var input models.PageUpdateInput
	if err := json.Unmarshal(ctx.Request().Body(), &input); err != nil {
		logger.LogErr(serr.Wrap(err, "failed to decode request body"), "invalid JSON")
		return writeError(ctx, http.StatusBadRequest, "invalid JSON body")
	}

	page, err := models.UpdatePage(id, input)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to update page"), "database error")
		return writeError(ctx, http.StatusInternalServerError, "failed to update page")
	}
	if page == nil {
		return writeError(ctx, http.StatusNotFound, "page not found")
	}

	logger.Info("Page updated", "id", page.ID)
	return writeSuccess(ctx, http.StatusOK, page.ToOutput())
}

// DeletePage handles DELETE /api/pages/:id
func DeletePage(ctx rweb.Context) error {
	id := ctx.Request().Param("id")

	deleted, err := models.DeletePage(id)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to delete page"), "database error")
		return writeError(ctx, http.StatusInternalServerError, "failed to delete page")
	}
	if !deleted {
		return writeError(ctx, http.StatusNotFound, "page not found")
	}

	logger.Info("Page deleted", "id", id)
	return writeSuccess(ctx, http.StatusOK, map[string]interface{}{"deleted": true, "id": id})
}
