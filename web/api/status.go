package api

import (
	"encoding/json"
	"net/http"

	"pageforge/models"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

type statusCheckInput struct {
	ClientName string `json:"client_name"`
}

// CreateStatusCheck handles POST /api/status
func CreateStatusCheck(ctx rweb.Context) error {
	var input statusCheckInput
	if err := json.Unmarshal(ctx.Request().Body(), &input); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid JSON body")
	}
	if input.ClientName == "" {
		return writeError(ctx, http.StatusBadRequest, "client_name is required")
	}

	sc, err := models.CreateStatusCheck(input.ClientName)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to create status check"), "database error")
		return writeError(ctx, http.StatusInternalServerError, "failed to create status check")
	}

	return writeSuccess(ctx, http.StatusCreated, sc)
}

// ListStatusChecks handles GET /api/status
func ListStatusChecks(ctx rweb.Context) error {
	checks, err := models.ListStatusChecks(1000)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to list status checks"), "database error")
		return writeError(ctx, http.StatusInternalServerError, "database error")
	}
	if checks == nil {
		checks = []models.StatusCheck{}
	}

	return writeSuccess(ctx, http.StatusOK, checks)
}
