package api

import (
	"encoding/json"
	"net/http"

	"pageforge/models"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// AddComponent handles POST /api/pages/:id/components
// The body is a full component; an empty body's type falls through to
// the factory defaults table for whatever type tag it carries.
func AddComponent(ctx rweb.Context) error {
	id := ctx.Request().Param("id")

	var comp models.Component
	if err := json.Unmarshal(ctx.Request().Body(), &comp); err != nil {
		logger.LogErr(serr.Wrap(err, "failed to decode component"), "invalid JSON")
		return writeError(ctx, http.StatusBadRequest, "invalid component body")
	}
	if comp.ID == "" {
		return writeError(ctx, http.StatusBadRequest, "component id is required")
	}

	page, err := models.AddComponentToPage(id, comp)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to add component"), "database error")
		return writeError(ctx, http.StatusInternalServerError, "failed to add component")
	}
	if page == nil {
		return writeError(ctx, http.StatusNotFound, "page not found")
	}

	logger.Info("Component added", "page_id", id, "component_id", comp.ID, "type", string(comp.Type))
	return writeSuccess(ctx, http.StatusOK, page.ToOutput())
}

// UpdateComponent handles PUT /api/pages/:id/components/:component_id
// Replaces the matching component wholesale; last write wins.
func UpdateComponent(ctx rweb.Context) error {
	id := ctx.Request().Param("id")
	componentID := ctx.Request().Param("component_id")

	var comp models.Component
	if err := json.Unmarshal(ctx.Request().Body(), &comp); err != nil {
		logger.LogErr(serr.Wrap(err, "failed to decode component"), "invalid JSON")
		return writeError(ctx, http.StatusBadRequest, "invalid component body")
	}
	comp.ID = componentID

	page, err := models.UpdatePageComponent(id, comp)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to update component"), "database error")
		return writeError(ctx, http.StatusInternalServerError, "failed to update component")
	}
	if page == nil {
		return writeError(ctx, http.StatusNotFound, "page not found")
	}

	return writeSuccess(ctx, http.StatusOK, page.ToOutput())
}

// DeleteComponent handles DELETE /api/pages/:id/components/:component_id
// Removes exactly one entry by id; a missing component id is not an error.
func DeleteComponent(ctx rweb.Context) error {
	id := ctx.Request().Param("id")
	componentID := ctx.Request().Param("component_id")

	page, err := models.DeletePageComponent(id, componentID)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to delete component"), "database error")
		return writeError(ctx, http.StatusInternalServerError, "failed to delete component")
	}
	if page == nil {
		return writeError(ctx, http.StatusNotFound, "page not found")
	}

	logger.Info("Component deleted", "page_id", id, "component_id", componentID)
	return writeSuccess(ctx, http.StatusOK, page.ToOutput())
}
